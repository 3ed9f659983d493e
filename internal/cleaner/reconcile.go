// Package cleaner repairs dirty release data coming out of the scraper.
//
// Some releases arrive with their full detail-page text dump stored in the
// title field:
//
//	"Artist Title DETAILS Date: ... Format: ... MORE INFO description"
//
// Others have the title and artist swapped or concatenated. Every function
// here is a best-effort pure transform: when the input doesn't match a known
// failure shape it passes through unchanged, and re-running any of them on
// already-clean data is a no-op.
package cleaner

import (
	"regexp"
	"strings"

	"rsdhub/pkg/models"
)

const (
	detailsMarker  = "DETAILS"
	moreInfoMarker = "MORE INFO"

	// A DETAILS marker this far into the text is part of the prose, not a
	// leftover page dump.
	dumpWindow = 80
)

var metaKeyRe = map[string]*regexp.Regexp{
	"Format":   regexp.MustCompile(`(?i)Format\s*:\s*`),
	"Label":    regexp.MustCompile(`(?i)Label\s*:\s*`),
	"Quantity": regexp.MustCompile(`(?i)Quantity\s*:\s*`),
}

var nextMetaKeyRe = regexp.MustCompile(`(?i)(Date|Format|Label|Quantity|Release\s*type)\s*:`)

// IsDirty reports whether a release looks like it carries a page dump:
// a DETAILS marker near the start of the combined title+description text.
func IsDirty(title string, description *string) bool {
	combined := title
	if description != nil {
		combined = strings.TrimSpace(title + " " + *description)
	}
	idx := strings.Index(combined, detailsMarker)
	return idx >= 0 && idx < dumpWindow
}

// FixTitleArtist repairs swapped / concatenated title and artist fields.
//
// Pattern A: title = "RealArtist AlbumName", artist = "AlbumName"
// (title ends with the artist-field value, which actually holds the album).
// Pattern B: title = "Artist AlbumName", artist = "Artist"
// (artist field is right, title just repeats it as a prefix).
//
// Anything from a DETAILS marker onward in the title is dump noise and is
// stripped first. When neither pattern matches, both fields pass through
// unchanged rather than forcing a fix onto clean data.
func FixTitleArtist(rawTitle, rawArtist string) (title, artist string) {
	title = strings.TrimSpace(rawTitle)
	if idx := strings.Index(title, detailsMarker); idx != -1 {
		title = strings.TrimSpace(title[:idx])
	}

	artist = strings.TrimSpace(rawArtist)

	// nothing to fix when they're identical or empty
	if artist == "" || title == artist {
		return title, artist
	}

	// Pattern A: the real artist is whatever precedes the suffix
	if len(title) > len(artist) && strings.HasSuffix(title, artist) {
		realArtist := strings.TrimSpace(title[:len(title)-len(artist)])
		if realArtist != "" {
			return artist, realArtist
		}
	}

	// Pattern B: strip the redundant prefix, keep artist
	if strings.HasPrefix(title, artist+" ") {
		stripped := strings.TrimSpace(title[len(artist):])
		if stripped == "" {
			stripped = title
		}
		return stripped, artist
	}

	return title, artist
}

// Reconcile runs the full dirty-release pipeline on a release: dump
// detection, metadata recovery (Format/Label/Quantity between DETAILS and
// MORE INFO override the raw fields when they parse), title/artist repair on
// the dump-stripped title, and description cleaning. It never fails; fields
// that don't match a dirty shape keep their raw values.
func Reconcile(rel models.Release) models.Release {
	title := strings.TrimSpace(rel.Title)

	desc := ""
	if rel.Description != nil {
		desc = strings.TrimSpace(*rel.Description)
	}
	combined := strings.TrimSpace(title + " " + desc)

	if IsDirty(title, &desc) {
		idx := strings.Index(combined, detailsMarker)
		meta := combined[idx+len(detailsMarker):]

		// everything after MORE INFO is the real prose description
		if mi := strings.Index(meta, moreInfoMarker); mi != -1 {
			rel.Description = nilIfEmpty(strings.TrimSpace(meta[mi+len(moreInfoMarker):]))
			meta = meta[:mi]
		} else {
			rel.Description = CleanDescription(desc)
		}

		if v, ok := extractMetaValue(meta, "Format"); ok {
			rel.Format = v
		}
		if v, ok := extractMetaValue(meta, "Label"); ok {
			rel.Label = v
		}
		if v, ok := extractMetaValue(meta, "Quantity"); ok {
			if q := ParseQuantity(v); q != nil {
				rel.Quantity = q
			}
		}
	} else {
		rel.Description = CleanDescription(desc)
	}

	// FixTitleArtist strips the dump from the title itself, so the repair
	// only ever sees the clean prefix
	rel.Title, rel.Artist = FixTitleArtist(title, rel.Artist)
	return rel
}

// extractMetaValue pulls "<key>: <value>" out of a metadata section, where
// the value runs until the next known key or end of section.
func extractMetaValue(section, key string) (string, bool) {
	re, ok := metaKeyRe[key]
	if !ok {
		return "", false
	}
	loc := re.FindStringIndex(section)
	if loc == nil {
		return "", false
	}
	rest := section[loc[1]:]
	if next := nextMetaKeyRe.FindStringIndex(rest); next != nil {
		rest = rest[:next[0]]
	}
	val := strings.TrimSpace(rest)
	return val, val != ""
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
