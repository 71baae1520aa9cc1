package entity

import "time"

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash and is never serialized to clients.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
