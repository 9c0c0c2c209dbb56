package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dstebbins/microblog-api/internal/api/shared"
	"github.com/dstebbins/microblog-api/internal/store"
)

// PostHandler handles post-related API requests. All post routes are
// read-only and unauthenticated.
type PostHandler struct {
	postStore store.PostStore
	logger    *slog.Logger
}

// NewPostHandler creates a new PostHandler with the given dependencies.
func NewPostHandler(postStore store.PostStore, log *slog.Logger) *PostHandler {
	if log == nil {
		log = slog.Default()
	}
	return &PostHandler{
		postStore: postStore,
		logger:    log.With(slog.String("component", "post_handler")),
	}
}

// ListUserPosts handles GET /users/{id}/posts requests. Posts are ordered
// by creation time, newest first.
func (h *PostHandler) ListUserPosts(w http.ResponseWriter, r *http.Request) {
	id, msg := parseUserID(chi.URLParam(r, "id"))
	if msg != "" {
		shared.RespondWithValidationErrors(w, r, []string{msg})
		return
	}

	posts, err := h.postStore.ListByUser(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list posts", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// ListUserPostsWithAuthor handles GET /users/{id}/posts-with-user requests.
func (h *PostHandler) ListUserPostsWithAuthor(w http.ResponseWriter, r *http.Request) {
	id, msg := parseUserID(chi.URLParam(r, "id"))
	if msg != "" {
		shared.RespondWithValidationErrors(w, r, []string{msg})
		return
	}

	posts, err := h.postStore.ListByUserWithAuthor(r.Context(), id)
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list posts", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}

// ListAllPosts handles GET /posts requests, returning every post with its
// author information.
func (h *PostHandler) ListAllPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postStore.ListAllWithAuthor(r.Context())
	if err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusInternalServerError,
			"Failed to list posts", err)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, posts)
}
