package domain

import (
	"time"
)

// Username length bounds enforced on user create/update payloads.
const (
	UsernameMinLen = 2
	UsernameMaxLen = 50
)

// User represents a registered user of the microblog application.
// It contains essential profile information and authentication details.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"` // Never expose the password hash in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given username and email.
// The ID is zero until the store assigns one on insert.
func NewUser(username, email string) *User {
	now := time.Now().UTC()
	return &User{
		Username:  username,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
