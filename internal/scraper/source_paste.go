package scraper

import (
	"context"
	"strings"

	"rsdhub/internal/cleaner"
	"rsdhub/pkg/models"
)

// PasteSource parses tab-separated release data pasted by an admin. It is
// the fallback when the site blocks scraping: columns are
// title/artist/label/format/release type/quantity, one release per line.
type PasteSource struct {
	Data string
}

func NewPasteSource(data string) *PasteSource {
	return &PasteSource{Data: data}
}

func (s *PasteSource) Name() string { return "paste" }

func (s *PasteSource) FetchAll(_ context.Context) ([]models.RawRelease, error) {
	return ParseTabSeparated(s.Data), nil
}

// ParseTabSeparated extracts raw rows from pasted tab-separated text.
// Header lines and lines with fewer than 5 fields are skipped; a missing
// trailing quantity column is tolerated. Plain text carries no links or
// images, so those stay nil.
func ParseTabSeparated(text string) []models.RawRelease {
	var releases []models.RawRelease

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		upper := strings.ToUpper(line)
		if strings.HasPrefix(upper, "TITLE") && strings.Contains(upper, "ARTIST") {
			continue
		}

		parts := strings.Split(line, "\t")
		if len(parts) < 5 {
			continue
		}

		field := func(i int) string {
			if i < len(parts) {
				return strings.TrimSpace(parts[i])
			}
			return ""
		}

		title := field(0)
		artist := field(1)
		if title == "" || artist == "" {
			continue
		}

		releases = append(releases, models.RawRelease{
			Title:       title,
			Artist:      artist,
			Label:       field(2),
			Format:      field(3),
			ReleaseType: field(4),
			Quantity:    cleaner.ParseQuantity(field(5)),
		})
	}

	return releases
}
