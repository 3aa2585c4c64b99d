package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smilesofhope/hopecms/internal/admin"
	"github.com/smilesofhope/hopecms/internal/apperr"
	"github.com/smilesofhope/hopecms/internal/content"
	"github.com/smilesofhope/hopecms/internal/models"
)

// Handler holds the API route handlers.
type Handler struct {
	repo   *content.Repository
	mgr    *admin.Manager
	auth   *admin.Authenticator
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(repo *content.Repository, mgr *admin.Manager, auth *admin.Authenticator, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{repo: repo, mgr: mgr, auth: auth, logger: logger}
}

// ListPosts handles GET /posts.
func (h *Handler) ListPosts(w http.ResponseWriter, _ *http.Request) {
	posts := h.repo.List()
	writeJSON(w, http.StatusOK, PostListResponse{Posts: posts, Total: len(posts)})
}

// GetPost handles GET /posts/{id}.
func (h *Handler) GetPost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	post, ok := h.repo.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// Login handles POST /admin/login. Invalid credentials get an inline
// user-visible message; there is deliberately no lockout or rate limiting.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	token, err := h.auth.Login(req.Username, req.Password)
	if err != nil {
		writeJSON(w, http.StatusUnauthorized, errorBody("Invalid credentials. Please check your username and password."))
		return
	}
	writeJSON(w, http.StatusOK, LoginResponse{Token: token})
}

// NewDraft handles POST /admin/draft/new.
func (h *Handler) NewDraft(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusCreated, DraftResponse{Draft: h.mgr.StartNew()})
}

// EditDraft handles POST /admin/draft/edit/{id}.
func (h *Handler) EditDraft(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	draft, err := h.mgr.StartEdit(id)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorBody("not found"))
			return
		}
		h.logger.Error("edit draft failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, DraftResponse{Draft: draft})
}

// GetDraft handles GET /admin/draft (recovery of an abandoned draft).
func (h *Handler) GetDraft(w http.ResponseWriter, _ *http.Request) {
	draft, ok := h.mgr.RecoverDraft()
	if !ok {
		writeJSON(w, http.StatusNotFound, errorBody("no draft in progress"))
		return
	}
	writeJSON(w, http.StatusOK, DraftResponse{Draft: draft})
}

// PutDraft handles PUT /admin/draft: every field change re-persists the
// draft to the scratch slot so a reload recovers the in-progress work.
func (h *Handler) PutDraft(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<20)
	var draft models.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	h.mgr.SaveDraft(draft)
	writeJSON(w, http.StatusOK, DraftResponse{Draft: draft})
}

// DeleteDraft handles DELETE /admin/draft (explicit discard).
func (h *Handler) DeleteDraft(w http.ResponseWriter, _ *http.Request) {
	h.mgr.Discard()
	w.WriteHeader(http.StatusNoContent)
}

// PublishPost handles POST /admin/posts: validates the draft, commits it to
// the repository, and clears the scratch slot.
func (h *Handler) PublishPost(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 64<<20)
	var draft models.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	post, err := h.mgr.Publish(r.Context(), draft)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, post)
}

// DeletePost handles DELETE /admin/posts/{id}. The destructive action must
// carry confirm=true; deletion is irreversible.
func (h *Handler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	confirmed := r.URL.Query().Get("confirm") == "true"
	err := h.mgr.Delete(r.Context(), id, confirmed)
	switch {
	case errors.Is(err, apperr.ErrNotConfirmed):
		writeJSON(w, http.StatusBadRequest, errorBody("deletion requires confirm=true"))
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody("not found"))
	case err != nil:
		h.logger.Error("delete post failed", slog.String("id", id), slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// Upload handles POST /admin/uploads (multipart/form-data, field "file"):
// converts a local file selection into an embeddable data URI. Files over
// the 15 MB ceiling are rejected with a user-facing message.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, admin.MaxUploadBytes+1<<20)

	if err := r.ParseMultipartForm(admin.MaxUploadBytes); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge,
			errorBody("File is too large (>15MB). Please use a smaller file."))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return
	}
	defer file.Close()

	uri, err := admin.EncodeDataURI(file, header.Header.Get("Content-Type"))
	if err != nil {
		if errors.Is(err, apperr.ErrFileTooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge,
				errorBody("File is too large (>15MB). Please use a smaller file."))
			return
		}
		h.logger.Error("upload encode failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
		return
	}
	writeJSON(w, http.StatusCreated, UploadResponse{DataURI: uri, Size: header.Size})
}
