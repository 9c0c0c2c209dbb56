package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/dstebbins/microblog-api/internal/api/shared"
	"github.com/dstebbins/microblog-api/internal/domain"
	"github.com/dstebbins/microblog-api/internal/platform/logger"
	"github.com/dstebbins/microblog-api/internal/store"
)

// ownershipMessage is the literal 403 body used for every mutating user
// route when the authenticated user is not the resource owner.
const ownershipMessage = "Users can only update their own account"

// UserHandler handles user-related API requests.
type UserHandler struct {
	userStore store.UserStore
	db        *sql.DB
	validator *validator.Validate
	logger    *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
// The *sql.DB is used to run the patch-and-refetch sequence inside a
// single transaction.
func NewUserHandler(userStore store.UserStore, db *sql.DB, log *slog.Logger) *UserHandler {
	if log == nil {
		log = slog.Default()
	}
	return &UserHandler{
		userStore: userStore,
		db:        db,
		validator: newValidator(),
		logger:    log.With(slog.String("component", "user_handler")),
	}
}

// pathUserID extracts and validates the {id} route parameter.
// On failure it writes the 400 validation response and returns false.
func (h *UserHandler) pathUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, msg := parseUserID(chi.URLParam(r, "id"))
	if msg != "" {
		shared.RespondWithValidationErrors(w, r, []string{msg})
		return 0, false
	}
	return id, true
}

// requireOwner checks that the authenticated user owns the target
// resource. On failure it writes the appropriate response and returns
// false. Runs only on mutating operations; reads are unauthenticated.
func (h *UserHandler) requireOwner(w http.ResponseWriter, r *http.Request, targetID int64) bool {
	userID, ok := shared.UserIDFromContext(r.Context())
	if !ok {
		// The auth middleware always sets the user ID on protected
		// routes; a missing value means the route is miswired.
		h.logger.Warn("user ID not found in request context")
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Access token required")
		return false
	}
	if userID != targetID {
		shared.RespondWithError(w, r, http.StatusForbidden, ownershipMessage)
		return false
	}
	return true
}

// CreateUser handles POST /users requests.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationMessages(err))
		return
	}

	user := domain.NewUser(req.Username, req.Email)
	if err := h.userStore.Create(r.Context(), user); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("user created", slog.Int64("user_id", user.ID))
	shared.RespondWithJSON(w, r, http.StatusCreated, userToResponse(user))
}

// ListUsers handles GET /users requests. No authentication required.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.userStore.List(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list users", err)
		return
	}

	responses := make([]UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, userToResponse(user))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, responses)
}

// GetUser handles GET /users/{id} requests. No authentication required.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	user, err := h.userStore.GetByID(r.Context(), id)
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// ReplaceUser handles PUT /users/{id} requests. The full payload is
// required; both profile fields are replaced.
func (h *UserHandler) ReplaceUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationMessages(err))
		return
	}

	if !h.requireOwner(w, r, id) {
		return
	}

	user := &domain.User{ID: id, Username: req.Username, Email: req.Email}
	if err := h.userStore.Update(r.Context(), user); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("user replaced", slog.Int64("user_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(user))
}

// PatchUser handles PATCH /users/{id} requests. Only the supplied fields
// are updated; an empty payload is a valid no-op patch. The update and the
// re-fetch of the fresh representation run in one transaction.
func (h *UserHandler) PatchUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	var req PatchUserRequest
	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithValidationErrors(w, r, validationMessages(err))
		return
	}

	if !h.requireOwner(w, r, id) {
		return
	}

	patch := store.UserPatch{Username: req.Username, Email: req.Email}

	var updated *domain.User
	err := store.RunInTransaction(r.Context(), h.db, func(ctx context.Context, tx *sql.Tx) error {
		txStore := h.userStore.WithTx(tx)
		if err := txStore.UpdatePartial(ctx, id, patch); err != nil {
			return err
		}
		user, err := txStore.GetByID(ctx, id)
		if err != nil {
			return err
		}
		updated = user
		return nil
	})
	if err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("user patched", slog.Int64("user_id", id))
	shared.RespondWithJSON(w, r, http.StatusOK, userToResponse(updated))
}

// DeleteUser handles DELETE /users/{id} requests.
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, ok := h.pathUserID(w, r)
	if !ok {
		return
	}

	if !h.requireOwner(w, r, id) {
		return
	}

	if err := h.userStore.Delete(r.Context(), id); err != nil {
		status := MapErrorToStatusCode(err)
		shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err), err)
		return
	}

	log.Debug("user deleted", slog.Int64("user_id", id))
	w.WriteHeader(http.StatusNoContent)
}
