// Package auth provides token issuance/verification and password hashing
// for the authentication layer.
package auth

import (
	"context"
	"time"
)

// TokenService defines operations for managing signed bearer tokens.
type TokenService interface {
	// GenerateToken creates a signed token carrying the user's identity.
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID int64) (string, error)

	// ValidateToken checks the signature and expiry of the provided token
	// string and extracts its claims. Expected failures surface as the
	// sentinel errors ErrInvalidToken, ErrExpiredToken, and
	// ErrTokenNotYetValid rather than panics; callers map them to HTTP
	// responses one layer up.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the verified payload of a bearer token.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID int64 `json:"uid"`

	// Standard registered claims carried through for logging and debugging.
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
