package models

import "time"

// ShareInfo is the public pointer to a shared wants list. It lives on its own
// (created/updated/deleted by the sharing feature) and is referenced from the
// owner's user row via share_id.
type ShareInfo struct {
	ShareID   string    `json:"share_id"`
	UID       string    `json:"uid"`
	OwnerName string    `json:"owner_name"`
	ListName  string    `json:"list_name"`
	CreatedAt time.Time `json:"created_at,omitempty"`
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}
