package scraper

import "testing"

func TestParseTabSeparated(t *testing.T) {
	text := "TITLE\tARTIST\tLABEL\tFORMAT\tRELEASE TYPE\tQUANTITY\n" +
		"Boys & Girls\tAlabama Shakes\tATO\tLP\tRSD Exclusive\t3,000\n" +
		"Easter Everywhere\t13th Floor Elevators\tInternational Artists\t2xLP\tRSD First\n" +
		"too\tfew\tfields\n" +
		"\n" +
		"\tMissing Title\tx\tx\tx\tx\n"

	rows := ParseTabSeparated(text)
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want 2", len(rows))
	}

	first := rows[0]
	if first.Title != "Boys & Girls" || first.Artist != "Alabama Shakes" {
		t.Errorf("title/artist = %q / %q", first.Title, first.Artist)
	}
	if first.Quantity == nil || *first.Quantity != 3000 {
		t.Errorf("quantity = %v, want 3000", first.Quantity)
	}
	if first.DetailsURL != nil || first.ImageURL != nil {
		t.Error("paste rows must not carry urls")
	}

	// missing trailing quantity column degrades to nil
	second := rows[1]
	if second.Title != "Easter Everywhere" {
		t.Errorf("title = %q", second.Title)
	}
	if second.Quantity != nil {
		t.Errorf("quantity = %v, want nil", *second.Quantity)
	}
}

func TestParseTabSeparatedHeaderDetection(t *testing.T) {
	// header detection is case-insensitive and requires both words
	rows := ParseTabSeparated("Title\there is the artist\ta\tb\tc\t5\n")
	if len(rows) != 0 {
		t.Fatalf("got %d rows, want 0 (header skipped)", len(rows))
	}

	// "TITLE..." without ARTIST anywhere is a real row, not a header
	rows = ParseTabSeparated("Title Fight\tHyperview\tANTI-\tLP\tRSD Exclusive\t2000\n")
	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
}

func TestParseTabSeparatedEmptyInput(t *testing.T) {
	if rows := ParseTabSeparated(""); len(rows) != 0 {
		t.Errorf("got %d rows, want 0", len(rows))
	}
}
