package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/smilesofhope/hopecms/internal/admin"
	"github.com/smilesofhope/hopecms/internal/assistant"
	"github.com/smilesofhope/hopecms/internal/content"
	"github.com/smilesofhope/hopecms/internal/mailer"
	"github.com/smilesofhope/hopecms/internal/media"
)

// Deps bundles everything the API routes need. Optional collaborators
// (Media, Mail, Assistant, Events) may be nil.
type Deps struct {
	Repo      *content.Repository
	Manager   *admin.Manager
	Auth      *admin.Authenticator
	Media     *media.Library
	Mail      *mailer.Client
	Assistant *assistant.Assistant
	Events    http.Handler
	Logger    *slog.Logger
}

// NewRouter creates a chi router with all API routes mounted.
func NewRouter(d Deps) chi.Router {
	h := NewHandler(d.Repo, d.Manager, d.Auth, d.Logger)
	fh := NewFormHandler(d.Mail, d.Assistant, d.Logger)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	// Public content.
	r.Get("/posts", h.ListPosts)
	r.Get("/posts/{id}", h.GetPost)

	// Visitor forms and chat widget.
	r.Post("/forms/contact", fh.Contact)
	r.Post("/forms/join", fh.Join)
	r.Post("/forms/donate", fh.Donate)
	r.Post("/chat", fh.Chat)

	// Live updates.
	if d.Events != nil {
		r.Get("/events", d.Events.ServeHTTP)
	}

	// Admin console.
	r.Post("/admin/login", h.Login)
	r.Group(func(r chi.Router) {
		r.Use(AuthMiddleware(d.Auth))

		r.Post("/admin/posts", h.PublishPost)
		r.Delete("/admin/posts/{id}", h.DeletePost)

		r.Get("/admin/draft", h.GetDraft)
		r.Put("/admin/draft", h.PutDraft)
		r.Delete("/admin/draft", h.DeleteDraft)
		r.Post("/admin/draft/new", h.NewDraft)
		r.Post("/admin/draft/edit/{id}", h.EditDraft)

		r.Post("/admin/uploads", h.Upload)

		if d.Media != nil {
			mh := NewMediaHandler(d.Media, d.Logger)
			r.Get("/admin/media", mh.List)
			r.Post("/admin/media", mh.Upload)
			r.Delete("/admin/media/{name}", mh.Delete)
		}
	})

	return r
}
