// Package middleware provides HTTP middleware for the API layer.
package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/dstebbins/microblog-api/internal/api/shared"
	"github.com/dstebbins/microblog-api/internal/service/auth"
)

// bearerPrefix is the literal scheme prefix expected on the
// Authorization header.
const bearerPrefix = "Bearer "

// AuthMiddleware provides bearer token authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
	}
}

// Authenticate validates bearer tokens from the Authorization header and
// adds the verified user ID to the request context. Each failure is
// terminal for the request:
//
//	missing header        -> 401 "Access token required"
//	wrong scheme          -> 401 "Token must be in format: Bearer <token>"
//	invalid/expired token -> 403 "Invalid or expired token"
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Access token required")
			return
		}

		if !strings.HasPrefix(authHeader, bearerPrefix) {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Token must be in format: Bearer <token>")
			return
		}

		token := authHeader[len(bearerPrefix):]

		claims, err := m.tokenService.ValidateToken(r.Context(), token)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusForbidden, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), shared.UserIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID extracts the authenticated user ID from the request context.
// Returns the user ID and a boolean indicating if it was found.
func GetUserID(r *http.Request) (int64, bool) {
	return shared.UserIDFromContext(r.Context())
}
