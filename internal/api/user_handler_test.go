package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dstebbins/microblog-api/internal/api/shared"
	"github.com/dstebbins/microblog-api/internal/domain"
	"github.com/dstebbins/microblog-api/internal/mocks"
)

// newUserTestRouter mounts a UserHandler on a chi router so path
// parameters resolve the same way they do in production.
func newUserTestRouter(t *testing.T, userStore *mocks.MockUserStore) (chi.Router, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	handler := NewUserHandler(userStore, db, nil)

	r := chi.NewRouter()
	r.Post("/users", handler.CreateUser)
	r.Get("/users", handler.ListUsers)
	r.Get("/users/{id}", handler.GetUser)
	r.Put("/users/{id}", handler.ReplaceUser)
	r.Patch("/users/{id}", handler.PatchUser)
	r.Delete("/users/{id}", handler.DeleteUser)
	return r, mock
}

// asUser attaches an authenticated user ID to the request context the
// same way the auth middleware does.
func asUser(req *http.Request, userID int64) *http.Request {
	ctx := context.WithValue(req.Context(), shared.UserIDContextKey, userID)
	return req.WithContext(ctx)
}

func seedUser(store *mocks.MockUserStore, id int64, username, email string) {
	store.Users[id] = &domain.User{ID: id, Username: username, Email: email}
	if id >= store.NextID {
		store.NextID = id + 1
	}
}

func TestCreateUser(t *testing.T) {
	t.Parallel()

	t.Run("valid payload returns 201 with new user", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		router, _ := newUserTestRouter(t, store)

		body := bytes.NewBufferString(`{"username":"ab","email":"a@b.com"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)

		var got UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(1), got.ID)
		assert.Equal(t, "ab", got.Username)
		assert.Equal(t, "a@b.com", got.Email)

		// The password hash never appears in the response body.
		assert.NotContains(t, rec.Body.String(), "password")
	})

	t.Run("invalid payload returns 400 with details", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		router, _ := newUserTestRouter(t, store)

		body := bytes.NewBufferString(`{"username":"a","email":"bad"}`)
		req := httptest.NewRequest(http.MethodPost, "/users", body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)

		var got shared.ValidationErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Validation failed", got.Error)
		assert.Equal(t, []string{
			"Username must be at least 2 characters",
			"Email must be a valid email address",
		}, got.Details)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		router, _ := newUserTestRouter(t, store)

		req := httptest.NewRequest(http.MethodPost, "/users", bytes.NewBufferString("{"))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestGetUser(t *testing.T) {
	t.Parallel()

	t.Run("existing user", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		seedUser(store, 5, "carol", "carol@example.com")
		router, _ := newUserTestRouter(t, store)

		req := httptest.NewRequest(http.MethodGet, "/users/5", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "carol", got.Username)
	})

	t.Run("missing user returns 404", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		router, _ := newUserTestRouter(t, store)

		req := httptest.NewRequest(http.MethodGet, "/users/999", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		router, _ := newUserTestRouter(t, store)

		req := httptest.NewRequest(http.MethodGet, "/users/abc", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Validation failed")
	})
}

func TestListUsers(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockUserStore()
	seedUser(store, 1, "alice", "alice@example.com")
	seedUser(store, 2, "bob", "bob@example.com")
	router, _ := newUserTestRouter(t, store)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []UserResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 2)
	assert.Equal(t, "alice", got[0].Username)
	assert.Equal(t, "bob", got[1].Username)
}

func TestReplaceUser(t *testing.T) {
	t.Parallel()

	t.Run("owner can replace their account", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		seedUser(store, 5, "carol", "carol@example.com")
		router, _ := newUserTestRouter(t, store)

		body := bytes.NewBufferString(`{"username":"caroline","email":"caroline@example.com"}`)
		req := asUser(httptest.NewRequest(http.MethodPut, "/users/5", body), 5)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "caroline", got.Username)
		assert.Equal(t, "caroline@example.com", got.Email)
	})

	t.Run("cross-user replace is rejected", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		seedUser(store, 5, "carol", "carol@example.com")
		router, _ := newUserTestRouter(t, store)

		body := bytes.NewBufferString(`{"username":"mallory","email":"mallory@example.com"}`)
		req := asUser(httptest.NewRequest(http.MethodPut, "/users/5", body), 3)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Users can only update their own account", got["error"])

		// The stored user is untouched.
		assert.Equal(t, "carol", store.Users[5].Username)
	})

	t.Run("replace of missing user returns 404", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		router, _ := newUserTestRouter(t, store)

		body := bytes.NewBufferString(`{"username":"ghost","email":"ghost@example.com"}`)
		req := asUser(httptest.NewRequest(http.MethodPut, "/users/999", body), 999)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPatchUser(t *testing.T) {
	t.Parallel()

	t.Run("owner can patch a single field", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		seedUser(store, 5, "carol", "carol@example.com")
		router, mock := newUserTestRouter(t, store)
		mock.ExpectBegin()
		mock.ExpectCommit()

		body := bytes.NewBufferString(`{"username":"x"}`)
		req := asUser(httptest.NewRequest(http.MethodPatch, "/users/5", body), 5)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "x", got.Username)
		assert.Equal(t, "carol@example.com", got.Email)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty payload is an accepted no-op", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		seedUser(store, 5, "carol", "carol@example.com")
		router, mock := newUserTestRouter(t, store)
		mock.ExpectBegin()
		mock.ExpectCommit()

		body := bytes.NewBufferString(`{}`)
		req := asUser(httptest.NewRequest(http.MethodPatch, "/users/5", body), 5)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var got UserResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "carol", got.Username)
	})

	t.Run("cross-user patch is rejected with the ownership message", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		seedUser(store, 5, "carol", "carol@example.com")
		router, _ := newUserTestRouter(t, store)

		body := bytes.NewBufferString(`{"username":"x"}`)
		req := asUser(httptest.NewRequest(http.MethodPatch, "/users/5", body), 3)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)

		var got map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, "Users can only update their own account", got["error"])
	})

	t.Run("patch of missing user returns 404", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		router, mock := newUserTestRouter(t, store)
		mock.ExpectBegin()
		mock.ExpectRollback()

		body := bytes.NewBufferString(`{"username":"x"}`)
		req := asUser(httptest.NewRequest(http.MethodPatch, "/users/999", body), 999)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("invalid field value returns 400", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		seedUser(store, 5, "carol", "carol@example.com")
		router, _ := newUserTestRouter(t, store)

		body := bytes.NewBufferString(`{"email":"not-an-email"}`)
		req := asUser(httptest.NewRequest(http.MethodPatch, "/users/5", body), 5)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestDeleteUser(t *testing.T) {
	t.Parallel()

	t.Run("owner delete returns 204", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		seedUser(store, 5, "carol", "carol@example.com")
		router, _ := newUserTestRouter(t, store)

		req := asUser(httptest.NewRequest(http.MethodDelete, "/users/5", nil), 5)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Empty(t, store.Users)
	})

	t.Run("delete of missing user returns 404", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		router, _ := newUserTestRouter(t, store)

		req := asUser(httptest.NewRequest(http.MethodDelete, "/users/999", nil), 999)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("cross-user delete is rejected", func(t *testing.T) {
		t.Parallel()

		store := mocks.NewMockUserStore()
		seedUser(store, 7, "dave", "dave@example.com")
		router, _ := newUserTestRouter(t, store)

		req := asUser(httptest.NewRequest(http.MethodDelete, "/users/7", nil), 5)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		require.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Users can only update their own account")
	})
}
