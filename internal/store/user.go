package store

import (
	"context"
	"database/sql"

	"github.com/dstebbins/microblog-api/internal/domain"
)

// UserPatch describes a partial update to a user. Nil fields are left
// untouched; a patch with no fields set is a valid no-op.
type UserPatch struct {
	Username *string
	Email    *string
}

// IsEmpty reports whether the patch changes nothing.
func (p UserPatch) IsEmpty() bool {
	return p.Username == nil && p.Email == nil
}

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store and assigns its ID.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id int64) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	// The returned user includes the password hash for credential checks.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List retrieves all users ordered by ID.
	List(ctx context.Context) ([]*domain.User, error)

	// Update replaces the username and email of an existing user.
	// Returns ErrUserNotFound if no row was affected.
	// Returns ErrEmailExists if updating to an email that already exists.
	Update(ctx context.Context, user *domain.User) error

	// UpdatePartial applies only the fields set in the patch.
	// An empty patch affects the row anyway (bumping updated_at) so that
	// a no-op PATCH against an existing user still succeeds.
	// Returns ErrUserNotFound if no row was affected.
	UpdatePartial(ctx context.Context, id int64, patch UserPatch) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if no row was affected.
	Delete(ctx context.Context, id int64) error

	// WithTx returns a UserStore bound to the provided transaction so
	// multiple operations can execute atomically.
	WithTx(tx *sql.Tx) UserStore
}
