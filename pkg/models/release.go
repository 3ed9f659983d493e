package models

import (
	"strings"
	"time"
)

// RawRelease is the unvalidated tuple produced by the table scraper or the
// tab-text parser. All fields are untrusted strings straight off the page;
// the cleaner reconciles them into a Release before anything is persisted.
type RawRelease struct {
	Title       string
	Artist      string
	Label       string
	Format      string
	ReleaseType string
	Quantity    *int
	DetailsURL  *string
	ImageURL    *string
	Description *string
}

// Release is the canonical stored entity. Artist and title are guaranteed
// non-empty and the right way around (performer in Artist, record name in
// Title); the reconciler enforces that before anything is stored.
type Release struct {
	ReleaseID   string    `json:"release_id"`
	EventID     string    `json:"event_id"`
	Artist      string    `json:"artist"`
	Title       string    `json:"title"`
	Label       string    `json:"label,omitempty"`
	Format      string    `json:"format,omitempty"`
	ReleaseType string    `json:"release_type,omitempty"`
	Quantity    *int      `json:"quantity"`
	DetailsURL  *string   `json:"details_url"`
	ImageURL    *string   `json:"image_url"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at,omitempty"`
	UpdatedAt   time.Time `json:"updated_at,omitempty"`
}

// maxSlugLen bounds the slug portion of a release ID. Truncation happens on
// the slug alone, before the event prefix, so two long titles sharing an
// 80-char prefix intentionally collide and merge on re-import.
const maxSlugLen = 80

// BuildReleaseID derives a stable, URL-safe release ID from the natural key
// (event + artist + title + format). Same inputs always produce the same ID,
// which is what makes catalog re-imports idempotent upserts.
func BuildReleaseID(eventID, artist, title, format string) string {
	slug := Slugify(artist + "-" + title + "-" + format)
	if len(slug) > maxSlugLen {
		slug = slug[:maxSlugLen]
	}
	return eventID + "_" + slug
}

// Slugify lowercases s and collapses every run of non-alphanumeric characters
// into a single hyphen, trimming hyphens from both ends.
func Slugify(s string) string {
	s = strings.ToLower(s)
	var b strings.Builder
	b.Grow(len(s))

	prevHyphen := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			prevHyphen = false
			continue
		}
		if !prevHyphen {
			b.WriteByte('-')
			prevHyphen = true
		}
	}
	return strings.Trim(b.String(), "-")
}
