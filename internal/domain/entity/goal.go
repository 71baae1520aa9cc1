package entity

import "time"

// Goal is a single tracked goal. UserID references the owning user; the
// reference is taken from the authenticated identity at creation time and
// is not re-verified afterwards.
type Goal struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
