package scraper

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"rsdhub/internal/cleaner"
	"rsdhub/pkg/models"
)

const siteOrigin = "https://recordstoreday.com"

// Markers the source site serves instead of content when it blocks
// automated access. Seeing one of these means "blocked", not "empty table".
var botBlockMarkers = []string{"AwsWafIntegration", "JavaScript is disabled"}

// ParseReleaseTable extracts raw release rows from a release-list page.
//
// The site renders one big table where each row is:
//
//	[thumbnail] [title] [artist] [label] [format] [release type] [quantity]
//
// The thumbnail column is sometimes absent, so the column offset is inferred
// per row: a first cell holding an image and almost no text shifts everything
// right by one. Rows with fewer than 6 cells are headers or decoration and
// are skipped, as is any row without both a title and an artist.
func ParseReleaseTable(html string) ([]models.RawRelease, error) {
	for _, marker := range botBlockMarkers {
		if strings.Contains(html, marker) {
			return nil, fmt.Errorf("%w: the website blocked automated access", ErrBlocked)
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	// tbody-scoped rows first, bare table rows as the fallback
	rows := doc.Find("table tbody tr")
	if rows.Length() == 0 {
		rows = doc.Find("table tr")
	}

	var releases []models.RawRelease
	rows.Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() < 6 {
			return
		}

		offset := 0
		first := cells.Eq(0)
		if first.Find("img").Length() > 0 && len(strings.TrimSpace(first.Text())) < 3 {
			offset = 1
		}

		cell := func(i int) string {
			return strings.TrimSpace(cells.Eq(offset + i).Text())
		}

		title := cell(0)
		artist := cell(1)
		if title == "" || artist == "" {
			return
		}

		raw := models.RawRelease{
			Title:       title,
			Artist:      artist,
			Label:       cell(2),
			Format:      cell(3),
			ReleaseType: cell(4),
			Quantity:    cleaner.ParseQuantity(cell(5)),
		}

		if link, ok := findRowLink(row, cells, offset); ok {
			abs := absoluteURL(link)
			raw.DetailsURL = &abs
		}
		if img, ok := row.Find("img").First().Attr("src"); ok && img != "" {
			abs := absoluteURL(img)
			raw.ImageURL = &abs
		}

		releases = append(releases, raw)
	})

	return releases, nil
}

// findRowLink prefers an anchor in the title cell, then the artist cell,
// then anywhere in the row.
func findRowLink(row, cells *goquery.Selection, offset int) (string, bool) {
	for _, i := range []int{offset, offset + 1} {
		if href, ok := cells.Eq(i).Find("a").First().Attr("href"); ok && href != "" {
			return href, true
		}
	}
	if href, ok := row.Find("a").First().Attr("href"); ok && href != "" {
		return href, true
	}
	return "", false
}

// absoluteURL resolves site-relative hrefs and image srcs against the known
// origin. Already-absolute URLs pass through.
func absoluteURL(link string) string {
	if strings.HasPrefix(link, "http") {
		return link
	}
	if strings.HasPrefix(link, "/") {
		return siteOrigin + link
	}
	return siteOrigin + "/" + link
}
