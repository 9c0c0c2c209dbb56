package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dstebbins/microblog-api/internal/domain"
	"github.com/dstebbins/microblog-api/internal/store"
)

// PostStore implements the store.PostStore interface using a PostgreSQL
// database as the storage backend. Posts are read-only through the API,
// so this store only exposes listing queries.
type PostStore struct {
	db store.DBTX
}

// NewPostStore creates a new PostgreSQL implementation of the PostStore
// interface.
func NewPostStore(db store.DBTX) *PostStore {
	return &PostStore{db: db}
}

// Ensure PostStore implements store.PostStore
var _ store.PostStore = (*PostStore)(nil)

// WithTx implements store.PostStore.WithTx
func (s *PostStore) WithTx(tx *sql.Tx) store.PostStore {
	return &PostStore{db: tx}
}

// ListByUser implements store.PostStore.ListByUser
func (s *PostStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	query := `
		SELECT id, title, content, user_id, created_at
		FROM posts
		WHERE user_id = $1
		ORDER BY created_at DESC`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts for user: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*domain.Post, 0)
	for rows.Next() {
		post := &domain.Post{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Content,
			&post.UserID, &post.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}

	return posts, nil
}

// ListByUserWithAuthor implements store.PostStore.ListByUserWithAuthor
func (s *PostStore) ListByUserWithAuthor(ctx context.Context, userID int64) ([]*domain.PostWithUser, error) {
	query := `
		SELECT p.id, p.title, p.content, p.user_id, p.created_at, u.username, u.email
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.user_id = $1
		ORDER BY p.created_at DESC`

	return s.queryPostsWithAuthor(ctx, query, userID)
}

// ListAllWithAuthor implements store.PostStore.ListAllWithAuthor
func (s *PostStore) ListAllWithAuthor(ctx context.Context) ([]*domain.PostWithUser, error) {
	query := `
		SELECT p.id, p.title, p.content, p.user_id, p.created_at, u.username, u.email
		FROM posts p
		JOIN users u ON u.id = p.user_id
		ORDER BY p.created_at DESC`

	return s.queryPostsWithAuthor(ctx, query)
}

// queryPostsWithAuthor runs a posts-joined-with-users query and scans the
// result rows into PostWithUser values.
func (s *PostStore) queryPostsWithAuthor(ctx context.Context, query string, args ...any) ([]*domain.PostWithUser, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts with author: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]*domain.PostWithUser, 0)
	for rows.Next() {
		post := &domain.PostWithUser{}
		if err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID,
			&post.CreatedAt, &post.Username, &post.Email); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post rows: %w", err)
	}

	return posts, nil
}
