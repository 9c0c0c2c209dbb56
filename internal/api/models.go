package api

import "github.com/dstebbins/microblog-api/internal/domain"

// Request and response structures for the users, posts, and auth endpoints.

// CreateUserRequest defines the payload for creating a user.
type CreateUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
}

// UpdateUserRequest defines the payload for replacing a user's profile
// fields (PUT). Both fields are required.
type UpdateUserRequest struct {
	Username string `json:"username" validate:"required,min=2,max=50"`
	Email    string `json:"email"    validate:"required,email"`
}

// PatchUserRequest defines the payload for a partial user update.
// Either field may be absent; an entirely empty payload is accepted and
// results in a no-op update.
type PatchUserRequest struct {
	Username *string `json:"username,omitempty" validate:"omitempty,min=2,max=50"`
	Email    *string `json:"email,omitempty"    validate:"omitempty,email"`
}

// RegisterRequest defines the payload for the user registration endpoint.
// The password policy is enforced by the custom "password" validator.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

// LoginRequest defines the payload for the user login endpoint.
// No complexity check is applied to the password at login.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UserResponse is the public representation of a user. The password hash
// is never part of any response body.
type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	UserID int64  `json:"user_id"`
	Token  string `json:"token"`
}

// userToResponse maps a domain user to its public representation.
func userToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	}
}
