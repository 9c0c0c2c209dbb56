package mocks

import (
	"context"
	"database/sql"

	"github.com/dstebbins/microblog-api/internal/domain"
	"github.com/dstebbins/microblog-api/internal/store"
)

// MockPostStore implements store.PostStore for testing.
type MockPostStore struct {
	ListByUserFn           func(ctx context.Context, userID int64) ([]*domain.Post, error)
	ListByUserWithAuthorFn func(ctx context.Context, userID int64) ([]*domain.PostWithUser, error)
	ListAllWithAuthorFn    func(ctx context.Context) ([]*domain.PostWithUser, error)

	// Default return values
	Posts           []*domain.Post
	PostsWithAuthor []*domain.PostWithUser
	Err             error
}

var _ store.PostStore = (*MockPostStore)(nil)

// ListByUser implements the PostStore interface
func (m *MockPostStore) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	if m.ListByUserFn != nil {
		return m.ListByUserFn(ctx, userID)
	}
	return m.Posts, m.Err
}

// ListByUserWithAuthor implements the PostStore interface
func (m *MockPostStore) ListByUserWithAuthor(ctx context.Context, userID int64) ([]*domain.PostWithUser, error) {
	if m.ListByUserWithAuthorFn != nil {
		return m.ListByUserWithAuthorFn(ctx, userID)
	}
	return m.PostsWithAuthor, m.Err
}

// ListAllWithAuthor implements the PostStore interface
func (m *MockPostStore) ListAllWithAuthor(ctx context.Context) ([]*domain.PostWithUser, error) {
	if m.ListAllWithAuthorFn != nil {
		return m.ListAllWithAuthorFn(ctx)
	}
	return m.PostsWithAuthor, m.Err
}

// WithTx implements the PostStore interface. The mock has no transaction
// semantics, so it returns itself.
func (m *MockPostStore) WithTx(tx *sql.Tx) store.PostStore {
	return m
}
