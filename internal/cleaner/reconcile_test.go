package cleaner

import (
	"testing"

	"rsdhub/pkg/models"
)

func TestFixTitleArtist(t *testing.T) {
	cases := []struct {
		name       string
		title      string
		artist     string
		wantTitle  string
		wantArtist string
	}{
		{
			name:       "pattern A: artist field holds the album",
			title:      "Charly Records We Are Not Live",
			artist:     "We Are Not Live",
			wantTitle:  "We Are Not Live",
			wantArtist: "Charly Records",
		},
		{
			name:       "pattern B: title has a redundant artist prefix",
			title:      "13th Floor Elevators Easter Everywhere",
			artist:     "13th Floor Elevators",
			wantTitle:  "Easter Everywhere",
			wantArtist: "13th Floor Elevators",
		},
		{
			name:       "already clean passes through",
			title:      "Easter Everywhere",
			artist:     "13th Floor Elevators",
			wantTitle:  "Easter Everywhere",
			wantArtist: "13th Floor Elevators",
		},
		{
			name:       "identical title and artist untouched",
			title:      "Low",
			artist:     "Low",
			wantTitle:  "Low",
			wantArtist: "Low",
		},
		{
			name:       "empty artist untouched",
			title:      "Some Record",
			artist:     "",
			wantTitle:  "Some Record",
			wantArtist: "",
		},
		{
			name:       "dump suffix stripped before matching",
			title:      "Charly Records We Are Not Live DETAILS Date: 4/18/2026 Format: LP",
			artist:     "We Are Not Live",
			wantTitle:  "We Are Not Live",
			wantArtist: "Charly Records",
		},
		{
			name:       "title equal to artist after dump strip",
			title:      "We Are Not Live DETAILS junk",
			artist:     "We Are Not Live",
			wantTitle:  "We Are Not Live",
			wantArtist: "We Are Not Live",
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			title, artist := FixTitleArtist(c.title, c.artist)
			if title != c.wantTitle || artist != c.wantArtist {
				t.Errorf("got (%q, %q), want (%q, %q)", title, artist, c.wantTitle, c.wantArtist)
			}
		})
	}
}

func TestFixTitleArtistIdempotent(t *testing.T) {
	pairs := [][2]string{
		{"Charly Records We Are Not Live", "We Are Not Live"},
		{"13th Floor Elevators Easter Everywhere", "13th Floor Elevators"},
		{"Easter Everywhere", "13th Floor Elevators"},
		{"Low", "Low"},
	}
	for _, p := range pairs {
		t1, a1 := FixTitleArtist(p[0], p[1])
		t2, a2 := FixTitleArtist(t1, a1)
		if t1 != t2 || a1 != a2 {
			t.Errorf("not idempotent for (%q, %q): first (%q, %q), second (%q, %q)",
				p[0], p[1], t1, a1, t2, a2)
		}
	}
}

func TestReconcileDumpInTitle(t *testing.T) {
	qty := 500
	rel := models.Release{
		Title:    "We Are Not Live DETAILS Date: 4/18/2026 Format: 2xLP Label: Charly Quantity: 3,000 MORE INFO A stunning live set.",
		Artist:   "We Are Not Live",
		Format:   "LP",
		Label:    "Unknown",
		Quantity: &qty,
	}

	got := Reconcile(rel)

	if got.Title != "We Are Not Live" {
		t.Errorf("title = %q", got.Title)
	}
	if got.Artist != "We Are Not Live" {
		t.Errorf("artist = %q", got.Artist)
	}
	if got.Format != "2xLP" {
		t.Errorf("format = %q", got.Format)
	}
	if got.Label != "Charly" {
		t.Errorf("label = %q", got.Label)
	}
	if got.Quantity == nil || *got.Quantity != 3000 {
		t.Errorf("quantity = %v", got.Quantity)
	}
	if got.Description == nil || *got.Description != "A stunning live set." {
		t.Errorf("description = %v", got.Description)
	}
}

func TestReconcileMetadataFallback(t *testing.T) {
	// metadata section without Format/Label keys keeps the raw values
	qty := 500
	rel := models.Release{
		Title:    "Some Record DETAILS nothing useful here",
		Artist:   "Some Artist",
		Format:   "7\"",
		Label:    "Sub Pop",
		Quantity: &qty,
	}

	got := Reconcile(rel)

	if got.Format != "7\"" || got.Label != "Sub Pop" {
		t.Errorf("raw format/label not kept: %q / %q", got.Format, got.Label)
	}
	if got.Quantity == nil || *got.Quantity != 500 {
		t.Errorf("raw quantity not kept: %v", got.Quantity)
	}
	if got.Title != "Some Record" {
		t.Errorf("title = %q", got.Title)
	}
}

func TestReconcileUnparseableQuantityKeepsRaw(t *testing.T) {
	qty := 1200
	rel := models.Release{
		Title:    "Some Record DETAILS Quantity: limited MORE INFO Nice.",
		Artist:   "Some Artist",
		Quantity: &qty,
	}

	got := Reconcile(rel)
	if got.Quantity == nil || *got.Quantity != 1200 {
		t.Errorf("quantity = %v, want raw 1200 kept", got.Quantity)
	}
}

func TestReconcileCleanDataUntouched(t *testing.T) {
	desc := "A stunning reissue."
	rel := models.Release{
		Title:       "Easter Everywhere",
		Artist:      "13th Floor Elevators",
		Label:       "International Artists",
		Format:      "LP",
		Description: &desc,
	}

	got := Reconcile(rel)

	if got.Title != rel.Title || got.Artist != rel.Artist ||
		got.Label != rel.Label || got.Format != rel.Format {
		t.Errorf("clean release changed: %+v", got)
	}
	if got.Description == nil || *got.Description != desc {
		t.Errorf("description = %v", got.Description)
	}
}

func TestReconcileProseDetailsIsNotADump(t *testing.T) {
	// DETAILS appearing deep inside real prose must not trigger the dump
	// path: no metadata extraction, description untouched
	desc := "The record has a very long and unusually detailed backstory, and its liner notes add many DETAILS Format: LP about the original sessions."
	rel := models.Release{
		Title:       "Clean Title",
		Artist:      "Some Band",
		Format:      "7\"",
		Description: &desc,
	}

	got := Reconcile(rel)

	if got.Format != "7\"" {
		t.Errorf("format = %q, want raw value kept", got.Format)
	}
	if got.Description == nil || *got.Description != desc {
		t.Errorf("description = %v, want untouched prose", got.Description)
	}
}

func TestReconcileIdempotent(t *testing.T) {
	dirty := models.Release{
		Title:  "Charly Records We Are Not Live DETAILS Format: LP MORE INFO Great record.",
		Artist: "We Are Not Live",
	}

	once := Reconcile(dirty)
	twice := Reconcile(once)

	if once.Title != twice.Title || once.Artist != twice.Artist ||
		once.Format != twice.Format || once.Label != twice.Label {
		t.Errorf("not idempotent: %+v vs %+v", once, twice)
	}
	d1, d2 := "", ""
	if once.Description != nil {
		d1 = *once.Description
	}
	if twice.Description != nil {
		d2 = *twice.Description
	}
	if d1 != d2 {
		t.Errorf("description not idempotent: %q vs %q", d1, d2)
	}
}

func TestIsDirty(t *testing.T) {
	desc := "DETAILS Date: 4/18/2026"
	cases := []struct {
		title string
		desc  *string
		want  bool
	}{
		{"Record DETAILS Date: ...", nil, true},
		{"Clean Title", &desc, true},
		{"Clean Title", nil, false},
		// a DETAILS deep inside prose is not a dump
		{"Clean Title", ptr("The record has a very long and unusually detailed backstory, and its liner notes add many DETAILS about the original sessions."), false},
	}
	for _, c := range cases {
		if got := IsDirty(c.title, c.desc); got != c.want {
			t.Errorf("IsDirty(%q, %v) = %v, want %v", c.title, c.desc, got, c.want)
		}
	}
}

func ptr(s string) *string { return &s }
