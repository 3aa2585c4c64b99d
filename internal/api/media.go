package api

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"

	"github.com/smilesofhope/hopecms/internal/media"
)

// MediaHandler serves and accepts media library assets.
type MediaHandler struct {
	lib    *media.Library
	logger *slog.Logger
}

// NewMediaHandler creates a handler over the asset library.
func NewMediaHandler(lib *media.Library, logger *slog.Logger) *MediaHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &MediaHandler{lib: lib, logger: logger}
}

// List handles GET /admin/media.
func (h *MediaHandler) List(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"assets": h.lib.List()})
}

// Upload handles POST /admin/media (multipart/form-data, field "file"):
// stores the file in the assets directory and returns its serving URL.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(16 << 20); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorBody("file too large or invalid multipart"))
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("missing 'file' field in multipart form"))
		return
	}
	defer file.Close()

	asset, err := h.lib.Save(header.Filename, file)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

// Delete handles DELETE /admin/media/{name}.
func (h *MediaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if err := h.lib.Remove(name); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody(err.Error()))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ServeAsset handles GET /assets/{name} (public, unauthenticated).
func (h *MediaHandler) ServeAsset(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	abs, err := h.lib.Path(name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if _, statErr := os.Stat(abs); os.IsNotExist(statErr) {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, abs)
}
