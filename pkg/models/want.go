package models

import "time"

const (
	WantStatusWanted   = "WANTED"
	WantStatusAcquired = "ACQUIRED"
)

// Want links a user to a release they are hunting for. It snapshots the
// display fields (artist, title, image, format) at add time so the list
// renders without joining back to the release.
//
// WantID is eventId + "_" + releaseId, so a user can hold at most one want
// per release and upserts need no existence check first.
type Want struct {
	WantID      string     `json:"want_id"`
	EventID     string     `json:"event_id"`
	ReleaseID   string     `json:"release_id"`
	Artist      string     `json:"artist"`
	Title       string     `json:"title"`
	ImageURL    *string    `json:"image_url"`
	Format      string     `json:"format,omitempty"`
	ReleaseType string     `json:"release_type,omitempty"`
	Status      string     `json:"status"` // WANTED or ACQUIRED
	AddedAt     time.Time  `json:"added_at,omitempty"`
	AcquiredAt  *time.Time `json:"acquired_at"`
	UpdatedAt   time.Time  `json:"updated_at,omitempty"`
}

// ValidWantStatus reports whether s is a recognized want status.
func ValidWantStatus(s string) bool {
	return s == WantStatusWanted || s == WantStatusAcquired
}

// BuildWantID derives the natural-key want ID.
func BuildWantID(eventID, releaseID string) string {
	return eventID + "_" + releaseID
}
