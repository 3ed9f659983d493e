package cleaner

import (
	"regexp"
	"strings"
)

var (
	trackListRe = regexp.MustCompile(`(?i)Track\s*list`)
	sideRe      = regexp.MustCompile(`\s*(SIDE\s+[A-Z])`)
	trackNumRe  = regexp.MustCompile(`\s*(\d+\.\s*)`)
	manyBreaks  = regexp.MustCompile(`\n{3,}`)
)

// SplitDescription separates a cleaned description into prose and a track
// listing. The scraper flattens tracklists onto one line, so the track
// section gets a line break re-inserted before each SIDE marker and each
// numbered track.
//
// trackList is nil only when no tracklist section exists at all; a section
// that turns out to be blank is still returned non-nil so callers can tell
// "no tracklist" from "tracklist present but empty".
func SplitDescription(desc string) (prose, trackList *string) {
	loc := trackListRe.FindStringIndex(desc)
	if loc == nil {
		return nilIfEmpty(strings.TrimSpace(desc)), nil
	}

	prose = nilIfEmpty(strings.TrimSpace(desc[:loc[0]]))

	section := desc[loc[1]:]
	section = sideRe.ReplaceAllString(section, "\n$1")
	section = trackNumRe.ReplaceAllString(section, "\n$1")
	section = manyBreaks.ReplaceAllString(section, "\n\n")

	return prose, &section
}
