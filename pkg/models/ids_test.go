package models

import (
	"strings"
	"testing"
)

func TestBuildEventID(t *testing.T) {
	if got := BuildEventID(2026, SeasonSpring); got != "rsd_2026_spring" {
		t.Errorf("BuildEventID = %q", got)
	}
	if got := BuildEventID(2025, SeasonFall); got != "rsd_2025_fall" {
		t.Errorf("BuildEventID = %q", got)
	}
}

func TestParseEventID(t *testing.T) {
	year, season, err := ParseEventID("rsd_2026_spring")
	if err != nil {
		t.Fatal(err)
	}
	if year != 2026 || season != SeasonSpring {
		t.Errorf("got %d %s", year, season)
	}

	for _, bad := range []string{"", "rsd_2026", "rsd_x_spring", "rsd_2026_summer", "foo_2026_spring"} {
		if _, _, err := ParseEventID(bad); err == nil {
			t.Errorf("ParseEventID(%q) expected error", bad)
		}
	}
}

func TestEventLabel(t *testing.T) {
	if got := EventLabel("rsd_2026_spring"); got != "Record Store Day 2026" {
		t.Errorf("label = %q", got)
	}
	if got := EventLabel("rsd_2025_fall"); got != "RSD Black Friday 2025" {
		t.Errorf("label = %q", got)
	}
	// malformed IDs fall back to the raw string
	if got := EventLabel("whatever"); got != "whatever" {
		t.Errorf("label = %q", got)
	}
}

func TestBuildReleaseID(t *testing.T) {
	id := BuildReleaseID("rsd_2026_spring", "Alabama Shakes", "Boys & Girls", "LP")
	want := "rsd_2026_spring_alabama-shakes-boys-girls-lp"
	if id != want {
		t.Errorf("BuildReleaseID = %q, want %q", id, want)
	}

	// deterministic: same inputs, same ID
	if again := BuildReleaseID("rsd_2026_spring", "Alabama Shakes", "Boys & Girls", "LP"); again != id {
		t.Errorf("not deterministic: %q vs %q", again, id)
	}
}

func TestBuildReleaseIDSlugTruncation(t *testing.T) {
	long := strings.Repeat("very long title ", 20)
	id := BuildReleaseID("rsd_2026_spring", "Someone", long, "LP")

	slug := strings.TrimPrefix(id, "rsd_2026_spring_")
	if len(slug) > 80 {
		t.Errorf("slug exceeds 80 chars: %d", len(slug))
	}
	for _, r := range slug {
		if !(r >= 'a' && r <= 'z') && !(r >= '0' && r <= '9') && r != '-' {
			t.Errorf("slug contains %q", r)
		}
	}
	if strings.Contains(slug, "--") {
		t.Errorf("slug contains a double hyphen: %q", slug)
	}
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Alabama Shakes", "alabama-shakes"},
		{"Boys & Girls!!!", "boys-girls"},
		{"  --weird--  ", "weird"},
		{"13th Floor Elevators", "13th-floor-elevators"},
		{"", ""},
		{"!!!", ""},
	}
	for _, c := range cases {
		if got := Slugify(c.in); got != c.want {
			t.Errorf("Slugify(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestBuildWantID(t *testing.T) {
	got := BuildWantID("rsd_2026_spring", "rsd_2026_spring_some-release-lp")
	if got != "rsd_2026_spring_rsd_2026_spring_some-release-lp" {
		t.Errorf("BuildWantID = %q", got)
	}
}
