package scraper

import (
	"errors"
	"testing"
)

const tableWithThumbnails = `
<html><body>
<table>
<tbody>
<tr><th>Photo</th><th>Title</th><th>Artist</th></tr>
<tr>
  <td><img src="/images/boys-girls.jpg"></td>
  <td><a href="/SpecialRelease/12345">Boys &amp; Girls</a></td>
  <td>Alabama Shakes</td>
  <td>ATO</td>
  <td>LP</td>
  <td>RSD Exclusive</td>
  <td>3,000</td>
</tr>
<tr>
  <td><img src="https://cdn.example.net/easter.jpg"></td>
  <td>Easter Everywhere</td>
  <td>13th Floor Elevators</td>
  <td>International Artists</td>
  <td>2xLP</td>
  <td>RSD First</td>
  <td>unknown</td>
</tr>
<tr><td colspan="7">decorative banner</td></tr>
</tbody>
</table>
</body></html>`

func TestParseReleaseTableWithThumbnailColumn(t *testing.T) {
	rows, err := ParseReleaseTable(tableWithThumbnails)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Title != "Boys & Girls" || first.Artist != "Alabama Shakes" {
		t.Errorf("title/artist = %q / %q", first.Title, first.Artist)
	}
	if first.Label != "ATO" || first.Format != "LP" || first.ReleaseType != "RSD Exclusive" {
		t.Errorf("label/format/type = %q / %q / %q", first.Label, first.Format, first.ReleaseType)
	}
	if first.Quantity == nil || *first.Quantity != 3000 {
		t.Errorf("quantity = %v, want 3000", first.Quantity)
	}
	if first.DetailsURL == nil || *first.DetailsURL != "https://recordstoreday.com/SpecialRelease/12345" {
		t.Errorf("details url = %v", first.DetailsURL)
	}
	if first.ImageURL == nil || *first.ImageURL != "https://recordstoreday.com/images/boys-girls.jpg" {
		t.Errorf("image url = %v", first.ImageURL)
	}

	second := rows[1]
	if second.Quantity != nil {
		t.Errorf("non-numeric quantity = %v, want nil", *second.Quantity)
	}
	if second.ImageURL == nil || *second.ImageURL != "https://cdn.example.net/easter.jpg" {
		t.Errorf("absolute image url = %v", second.ImageURL)
	}
}

const tableNoThumbnails = `
<table>
<tr>
  <td>Boys &amp; Girls</td>
  <td>Alabama Shakes</td>
  <td>ATO</td>
  <td>LP</td>
  <td>RSD Exclusive</td>
  <td>3000</td>
</tr>
<tr>
  <td></td>
  <td>No Title Here</td>
  <td>x</td><td>x</td><td>x</td><td>x</td>
</tr>
</table>`

func TestParseReleaseTableWithoutThumbnailColumn(t *testing.T) {
	rows, err := ParseReleaseTable(tableNoThumbnails)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1 (empty-title row dropped)", len(rows))
	}
	if rows[0].Title != "Boys & Girls" || rows[0].Artist != "Alabama Shakes" {
		t.Errorf("title/artist = %q / %q", rows[0].Title, rows[0].Artist)
	}
	if rows[0].DetailsURL != nil {
		t.Errorf("details url = %v, want nil", *rows[0].DetailsURL)
	}
}

func TestParseReleaseTableBotBlocked(t *testing.T) {
	// a WAF marker anywhere trumps whatever table the page contains
	html := `<script>AwsWafIntegration.init()</script>` + tableWithThumbnails
	_, err := ParseReleaseTable(html)
	if !errors.Is(err, ErrBlocked) {
		t.Errorf("err = %v, want ErrBlocked", err)
	}

	_, err = ParseReleaseTable(`<noscript>JavaScript is disabled in your browser</noscript>`)
	if !errors.Is(err, ErrBlocked) {
		t.Errorf("err = %v, want ErrBlocked", err)
	}
}

func TestParseReleaseTableEmptyIsNotAnError(t *testing.T) {
	rows, err := ParseReleaseTable(`<html><body><p>nothing here</p></body></html>`)
	if err != nil {
		t.Fatalf("err = %v, want nil for an empty page", err)
	}
	if len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}
