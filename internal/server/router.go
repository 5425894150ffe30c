// Package server wires the HTTP surface: router, middleware and routes.
package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/diestrin/social-media-automation/internal/accounts"
	"github.com/diestrin/social-media-automation/internal/auth"
	"github.com/diestrin/social-media-automation/internal/config"
	"github.com/diestrin/social-media-automation/internal/httpx"
)

// Deps carries everything the router needs.
type Deps struct {
	Config   config.Config
	Logger   *slog.Logger
	Issuer   *auth.TokenIssuer
	Auth     *auth.Handlers
	Accounts *accounts.Handlers
}

// New assembles the chi router with CORS, logging and all routes.
func New(d Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger(d.Logger))
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   d.Config.CORSOrigins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Requested-With"},
		ExposedHeaders:   []string{"Set-Cookie"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	guard := auth.Middleware(d.Issuer, d.Config.CookieName)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", d.Auth.Register)
		r.Post("/login", d.Auth.Login)
		r.Group(func(r chi.Router) {
			r.Use(guard)
			r.Post("/logout", d.Auth.Logout)
			r.Get("/me", d.Auth.Me)
		})
	})

	r.Route("/accounts", func(r chi.Router) {
		r.Use(guard)
		r.Post("/", d.Accounts.Create)
		r.Get("/", d.Accounts.List)
		r.Get("/{id}", d.Accounts.Get)
		r.Patch("/{id}", d.Accounts.Update)
		r.Delete("/{id}", d.Accounts.Delete)
		r.Post("/{id}/verify", d.Accounts.Verify)
	})

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]any{"ok": true})
	})

	return r
}
