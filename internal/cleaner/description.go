package cleaner

import (
	"regexp"
	"strings"
)

// Leading run of "Key: value" metadata in the fixed order the detail pages
// use. Each key is optional; whatever matches is removed as one prefix.
var metadataPrefixRe = regexp.MustCompile(
	`(?i)^(Date:\s*[^\n]+\s*)?(Format:\s*[^\n]+\s*)?(Label:\s*[^\n]+\s*)?(Quantity:\s*[^\n]+\s*)?(Release\s*type:\s*[^\n]+\s*)?`,
)

// CleanDescription extracts the prose description from a raw description
// field that may contain embedded metadata or a page dump. Returns nil when
// nothing real is left.
//
// A MORE INFO marker wins over everything: the text after it is the real
// description. Otherwise a DETAILS marker near the start is stripped, and
// then any leading metadata lines.
func CleanDescription(raw string) *string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return nil
	}

	if idx := strings.Index(text, moreInfoMarker); idx != -1 {
		return nilIfEmpty(strings.TrimSpace(text[idx+len(moreInfoMarker):]))
	}

	if idx := strings.Index(text, detailsMarker); idx != -1 && idx < dumpWindow {
		text = strings.TrimSpace(text[idx+len(detailsMarker):])
	}

	text = metadataPrefixRe.ReplaceAllString(text, "")
	return nilIfEmpty(strings.TrimSpace(text))
}
