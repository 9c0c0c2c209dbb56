package mocks

import (
	"context"
	"database/sql"
	"sort"

	"github.com/dstebbins/microblog-api/internal/domain"
	"github.com/dstebbins/microblog-api/internal/store"
)

// MockUserStore implements store.UserStore for testing. By default it
// behaves as an in-memory store; individual methods can be overridden
// through the function fields.
type MockUserStore struct {
	CreateFn        func(ctx context.Context, user *domain.User) error
	GetByIDFn       func(ctx context.Context, id int64) (*domain.User, error)
	GetByEmailFn    func(ctx context.Context, email string) (*domain.User, error)
	ListFn          func(ctx context.Context) ([]*domain.User, error)
	UpdateFn        func(ctx context.Context, user *domain.User) error
	UpdatePartialFn func(ctx context.Context, id int64, patch store.UserPatch) error
	DeleteFn        func(ctx context.Context, id int64) error

	// In-memory state for the default implementations
	Users  map[int64]*domain.User
	NextID int64
}

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users:  make(map[int64]*domain.User),
		NextID: 1,
	}
}

var _ store.UserStore = (*MockUserStore)(nil)

// Create implements the UserStore interface
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	for _, existing := range m.Users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}

	user.ID = m.NextID
	m.NextID++
	m.Users[user.ID] = user
	return nil
}

// GetByID implements the UserStore interface
func (m *MockUserStore) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	user, ok := m.Users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// GetByEmail implements the UserStore interface
func (m *MockUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}

	for _, user := range m.Users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// List implements the UserStore interface
func (m *MockUserStore) List(ctx context.Context) ([]*domain.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	ids := make([]int64, 0, len(m.Users))
	for id := range m.Users {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	users := make([]*domain.User, 0, len(ids))
	for _, id := range ids {
		copied := *m.Users[id]
		users = append(users, &copied)
	}
	return users, nil
}

// Update implements the UserStore interface
func (m *MockUserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}

	existing, ok := m.Users[user.ID]
	if !ok {
		return store.ErrUserNotFound
	}
	existing.Username = user.Username
	existing.Email = user.Email
	return nil
}

// UpdatePartial implements the UserStore interface
func (m *MockUserStore) UpdatePartial(ctx context.Context, id int64, patch store.UserPatch) error {
	if m.UpdatePartialFn != nil {
		return m.UpdatePartialFn(ctx, id, patch)
	}

	existing, ok := m.Users[id]
	if !ok {
		return store.ErrUserNotFound
	}
	if patch.Username != nil {
		existing.Username = *patch.Username
	}
	if patch.Email != nil {
		existing.Email = *patch.Email
	}
	return nil
}

// Delete implements the UserStore interface
func (m *MockUserStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, ok := m.Users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(m.Users, id)
	return nil
}

// WithTx implements the UserStore interface. The mock has no transaction
// semantics, so it returns itself.
func (m *MockUserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
