package sync

import (
	"time"

	"rsdhub/pkg/models"
)

const (
	EventWantUpdate = "want.update"
	EventWantDelete = "want.delete"
)

// WantEvent is the line-delimited JSON payload pushed to connected clients
// whenever a wants list changes.
type WantEvent struct {
	Type      string    `json:"type"` // "want.update" or "want.delete"
	UserID    string    `json:"user_id"`
	WantID    string    `json:"want_id"`
	EventID   string    `json:"event_id,omitempty"`
	ReleaseID string    `json:"release_id,omitempty"`
	Artist    string    `json:"artist,omitempty"`
	Title     string    `json:"title,omitempty"`
	Status    string    `json:"status,omitempty"`
	At        time.Time `json:"at"`
}

// Broadcaster fans want changes out through the hub. It satisfies the
// notifier the want handlers expect.
type Broadcaster struct {
	Hub *Hub
}

func NewBroadcaster(hub *Hub) *Broadcaster {
	return &Broadcaster{Hub: hub}
}

func (b *Broadcaster) WantUpserted(userID string, w models.Want) {
	b.Hub.BroadcastJSON(WantEvent{
		Type:      EventWantUpdate,
		UserID:    userID,
		WantID:    w.WantID,
		EventID:   w.EventID,
		ReleaseID: w.ReleaseID,
		Artist:    w.Artist,
		Title:     w.Title,
		Status:    w.Status,
		At:        time.Now().UTC(),
	})
}

func (b *Broadcaster) WantDeleted(userID, wantID string) {
	b.Hub.BroadcastJSON(WantEvent{
		Type:   EventWantDelete,
		UserID: userID,
		WantID: wantID,
		At:     time.Now().UTC(),
	})
}
