// Package web serves the public site pages. Each view from the navigation
// model gets a server-rendered page; unknown paths fall back to the home
// page, mirroring the address-fragment fallback rule.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/smilesofhope/hopecms/internal/content"
	"github.com/smilesofhope/hopecms/internal/models"
	"github.com/smilesofhope/hopecms/internal/views"
)

//go:embed templates/*.html
var templatesFS embed.FS

//go:embed static
var staticFS embed.FS

// pageData is passed to every page template.
type pageData struct {
	View     views.View
	Title    string
	Posts    []models.Post
	Post     *models.Post
	Slides   []string
	BodyHTML template.HTML
}

// Server renders the site pages from the content repository.
type Server struct {
	repo   *content.Repository
	pages  map[views.View]*template.Template
	md     goldmark.Markdown
	logger *slog.Logger
}

// pageTemplates maps each view to its template file.
var pageTemplates = map[views.View]string{
	views.Home:          "home.html",
	views.About:         "about.html",
	views.Programs:      "programs.html",
	views.Missions:      "missions.html",
	views.MissionDetail: "mission_detail.html",
	views.Donate:        "donate.html",
	views.Join:          "join.html",
	views.Contact:       "contact.html",
	views.Admin:         "admin.html",
}

// NewServer parses the embedded templates and creates the page server.
func NewServer(repo *content.Repository, logger *slog.Logger) (*Server, error) {
	if logger == nil {
		logger = slog.Default()
	}
	pages := make(map[views.View]*template.Template, len(pageTemplates))
	for v, file := range pageTemplates {
		t, err := template.ParseFS(templatesFS, "templates/layout.html", "templates/"+file)
		if err != nil {
			return nil, fmt.Errorf("web: parse %s: %w", file, err)
		}
		pages[v] = t
	}
	return &Server{
		repo:   repo,
		pages:  pages,
		md:     goldmark.New(goldmark.WithExtensions(extension.GFM)),
		logger: logger,
	}, nil
}

// Routes mounts one route per view. The mission-detail page lives under
// /missions/{id} and has no standalone fragment route; detail links are not
// independently bookmarkable.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/", s.page(views.Home))
	r.Get("/missions/{id}", s.missionDetail)
	r.Handle("/static/*", http.FileServerFS(staticFS))
	r.Get("/{view}", s.viewPage)
	return r
}

// viewPage resolves the path segment the way the fragment router resolves
// fragments: recognized views render their page, anything else renders home.
func (s *Server) viewPage(w http.ResponseWriter, r *http.Request) {
	v := views.ParseFragment(chi.URLParam(r, "view"))
	if v == views.MissionDetail {
		v = views.Home
	}
	s.page(v)(w, r)
}

func (s *Server) page(v views.View) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		data := pageData{View: v, Title: pageTitle(v)}
		if v == views.Home || v == views.Missions {
			data.Posts = s.repo.List()
		}
		s.render(w, v, data)
	}
}

func (s *Server) missionDetail(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, ok := s.repo.Get(id)
	if !ok {
		http.NotFound(w, r)
		return
	}
	data := pageData{
		View:     views.MissionDetail,
		Title:    post.Title,
		Post:     &post,
		Slides:   post.Slides(),
		BodyHTML: s.renderBody(post),
	}
	s.render(w, views.MissionDetail, data)
}

// renderBody converts the story's long-form text (falling back to the
// excerpt) from Markdown to HTML. Unconvertible text is shown escaped.
func (s *Server) renderBody(p models.Post) template.HTML {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(p.Body()), &buf); err != nil {
		s.logger.Warn("web: markdown convert failed", slog.String("id", p.ID), slog.String("error", err.Error()))
		return template.HTML(template.HTMLEscapeString(p.Body()))
	}
	return template.HTML(buf.String())
}

func (s *Server) render(w http.ResponseWriter, v views.View, data pageData) {
	t, ok := s.pages[v]
	if !ok {
		t = s.pages[views.Home]
	}
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		s.logger.Error("web: render failed", slog.String("view", string(v)), slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func pageTitle(v views.View) string {
	switch v {
	case views.About:
		return "About Us"
	case views.Programs:
		return "Our Programs"
	case views.Missions:
		return "Missions & Outreach"
	case views.Donate:
		return "Donate"
	case views.Join:
		return "Join Us"
	case views.Contact:
		return "Contact"
	case views.Admin:
		return "Admin Panel"
	default:
		return "Smiles of Hope for Children Foundation"
	}
}
