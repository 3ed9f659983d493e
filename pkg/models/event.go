package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	SeasonSpring = "spring"
	SeasonFall   = "fall"
)

// Event is one Record Store Day drop (the April main event or Black Friday).
// Its ID is deterministic per year/season so repeated imports merge instead
// of duplicating.
type Event struct {
	EventID      string    `json:"event_id"`
	Year         int       `json:"year"`
	Season       string    `json:"season"` // "spring" or "fall"
	Name         string    `json:"name"`
	ReleaseDate  string    `json:"release_date,omitempty"`
	ReleaseCount int       `json:"release_count"`
	CreatedAt    time.Time `json:"created_at,omitempty"`
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
}

// ValidSeason reports whether s is one of the two recognized seasons.
func ValidSeason(s string) bool {
	return s == SeasonSpring || s == SeasonFall
}

// BuildEventID returns the deterministic event ID, e.g. "rsd_2026_spring".
func BuildEventID(year int, season string) string {
	return fmt.Sprintf("rsd_%d_%s", year, season)
}

// ParseEventID splits an event ID back into year and season.
// Returns an error for anything that is not "rsd_<year>_<season>".
func ParseEventID(eventID string) (year int, season string, err error) {
	parts := strings.Split(eventID, "_")
	if len(parts) != 3 || parts[0] != "rsd" {
		return 0, "", fmt.Errorf("malformed event id: %q", eventID)
	}
	year, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, "", fmt.Errorf("malformed event id year: %q", eventID)
	}
	if !ValidSeason(parts[2]) {
		return 0, "", fmt.Errorf("malformed event id season: %q", eventID)
	}
	return year, parts[2], nil
}

// EventLabel returns a human-readable name for an event ID.
func EventLabel(eventID string) string {
	year, season, err := ParseEventID(eventID)
	if err != nil {
		return eventID
	}
	if season == SeasonFall {
		return fmt.Sprintf("RSD Black Friday %d", year)
	}
	return fmt.Sprintf("Record Store Day %d", year)
}
