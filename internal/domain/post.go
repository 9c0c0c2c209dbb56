package domain

import "time"

// Post represents a single entry authored by a user.
// Posts are read-only through the API; creation timestamps are
// assigned by the database and never change.
type Post struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UserID    int64     `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// PostWithUser is a Post joined with its author's public profile fields.
// Used by the listing endpoints that include author information.
type PostWithUser struct {
	Post
	Username string `json:"username"`
	Email    string `json:"email"`
}
