package store

import (
	"context"
	"database/sql"

	"github.com/dstebbins/microblog-api/internal/domain"
)

// PostStore defines the interface for post data retrieval.
// Posts are read-only through this API; rows are created elsewhere.
type PostStore interface {
	// ListByUser retrieves all posts authored by the given user,
	// ordered by creation time descending.
	ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error)

	// ListByUserWithAuthor retrieves the given user's posts joined with
	// the author's username and email, ordered by creation time descending.
	ListByUserWithAuthor(ctx context.Context, userID int64) ([]*domain.PostWithUser, error)

	// ListAllWithAuthor retrieves every post joined with author
	// information, ordered by creation time descending.
	ListAllWithAuthor(ctx context.Context) ([]*domain.PostWithUser, error)

	// WithTx returns a PostStore bound to the provided transaction.
	WithTx(tx *sql.Tx) PostStore
}
