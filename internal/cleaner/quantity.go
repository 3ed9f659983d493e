package cleaner

import (
	"strconv"
	"strings"
)

// ParseQuantity parses a scraped pressing-quantity string. Thousands
// separators are stripped ("3,000" -> 3000) and trailing junk after the
// number is ignored ("3000 copies" -> 3000). Anything without a leading
// integer yields nil, never zero; a missing quantity must stay
// distinguishable from a pressing of zero copies.
func ParseQuantity(s string) *int {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return nil
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return nil
	}
	return &n
}
