package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dstebbins/microblog-api/internal/api"
	apiMiddleware "github.com/dstebbins/microblog-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware. Reads are public; mutating user routes sit
// behind bearer authentication.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace)

	userHandler := api.NewUserHandler(app.userStore, app.db, app.logger)
	postHandler := api.NewPostHandler(app.postStore, app.logger)
	authHandler := api.NewAuthHandler(app.userStore, app.tokenService, app.hasher, app.hasher, app.logger)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	// Authentication endpoints (public)
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)

	// User endpoints
	r.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{id}", userHandler.GetUser)
		r.Get("/{id}/posts", postHandler.ListUserPosts)
		r.Get("/{id}/posts-with-user", postHandler.ListUserPostsWithAuthor)

		// Mutations require a bearer token and ownership of the resource
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Put("/{id}", userHandler.ReplaceUser)
			r.Patch("/{id}", userHandler.PatchUser)
			r.Delete("/{id}", userHandler.DeleteUser)
		})
	})

	// Post endpoints (read-only)
	r.Get("/posts", postHandler.ListAllPosts)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("failed to write health check response", "error", err)
		}
	})

	return r
}
