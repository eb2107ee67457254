package model

import "time"

// Notification is one entry in a user's notification feed. Lifecycle
// transitions append them; the recipient marks them read or deletes them.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ItemID    *int64    `json:"item_id,omitempty"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}
