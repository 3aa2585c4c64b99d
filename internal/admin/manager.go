package admin

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/smilesofhope/hopecms/internal/apperr"
	"github.com/smilesofhope/hopecms/internal/content"
	"github.com/smilesofhope/hopecms/internal/models"
	"github.com/smilesofhope/hopecms/internal/scratch"
)

// DraftKey is the scratch-slot key the in-progress draft is mirrored under.
// Kept separate from the main content key so an abandoned edit survives a
// restart without touching published posts.
const DraftKey = "smiles_of_hope_draft_v3"

// Manager drives the editor session over the content repository and the
// draft scratch slot.
type Manager struct {
	repo    *content.Repository
	scratch *scratch.Store
	logger  *slog.Logger
}

// NewManager creates an editor session manager. scratch may be nil, in which
// case draft recovery is disabled and drafts live only in the caller.
func NewManager(repo *content.Repository, sc *scratch.Store, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{repo: repo, scratch: sc, logger: logger}
}

// StartNew opens a fresh draft with a generated id, today's date, and the
// default category, and mirrors it to the scratch slot.
func (m *Manager) StartNew() models.Draft {
	d := models.NewDraft()
	m.SaveDraft(d)
	return d
}

// StartEdit opens a draft seeded from a deep copy of an existing post, with
// the date normalized to canonical form.
func (m *Manager) StartEdit(id string) (models.Draft, error) {
	post, ok := m.repo.Get(id)
	if !ok {
		return models.Draft{}, apperr.ErrNotFound
	}
	d := models.DraftFromPost(post)
	m.SaveDraft(d)
	return d, nil
}

// RecoverDraft returns a previously abandoned draft from the scratch slot.
// Missing fields are defaulted the same way a fresh draft would be, so a
// partially written scratch file still recovers cleanly.
func (m *Manager) RecoverDraft() (models.Draft, bool) {
	if m.scratch == nil {
		return models.Draft{}, false
	}
	raw, ok, err := m.scratch.Get(DraftKey)
	if err != nil {
		m.logger.Warn("admin: draft recovery failed", slog.String("error", err.Error()))
		return models.Draft{}, false
	}
	if !ok {
		return models.Draft{}, false
	}

	var d models.Draft
	if err := json.Unmarshal([]byte(raw), &d); err != nil {
		m.logger.Warn("admin: scratch slot corrupted, discarding", slog.String("error", err.Error()))
		_ = m.scratch.Delete(DraftKey)
		return models.Draft{}, false
	}
	if d.ID == "" {
		d.ID = models.NewPostID()
	}
	if d.Date = models.NormalizeDate(d.Date); d.Date == "" {
		d.Date = models.Today()
	}
	if d.Category == "" {
		d.Category = models.CategoryUpcoming
	}
	if d.Gallery == nil {
		d.Gallery = []string{}
	}
	return d, true
}

// SaveDraft mirrors the draft to the scratch slot so a reload recovers the
// in-progress work. Failures are logged, never fatal: the draft still exists
// in the editing session.
func (m *Manager) SaveDraft(d models.Draft) {
	if m.scratch == nil {
		return
	}
	raw, err := json.Marshal(d)
	if err != nil {
		m.logger.Error("admin: marshal draft failed", slog.String("error", err.Error()))
		return
	}
	if err := m.scratch.Put(DraftKey, string(raw)); err != nil {
		m.logger.Warn("admin: persist draft failed", slog.String("error", err.Error()))
	}
}

// Publish validates the draft, finalizes it into a post, commits it to the
// repository (insert-if-absent, else replace in place), and clears the
// scratch slot.
func (m *Manager) Publish(ctx context.Context, d models.Draft) (models.Post, error) {
	if err := d.Validate(); err != nil {
		return models.Post{}, err
	}
	post := d.Finalize()
	m.repo.Upsert(ctx, post)
	m.Discard()
	return post, nil
}

// Discard clears the scratch slot.
func (m *Manager) Discard() {
	if m.scratch == nil {
		return
	}
	if err := m.scratch.Delete(DraftKey); err != nil {
		m.logger.Warn("admin: clear scratch slot failed", slog.String("error", err.Error()))
	}
}

// Delete removes a published post. The destructive action must be explicitly
// confirmed by the operator; deleting is irreversible within the system.
func (m *Manager) Delete(ctx context.Context, id string, confirmed bool) error {
	if !confirmed {
		return apperr.ErrNotConfirmed
	}
	if !m.repo.Remove(ctx, id) {
		return apperr.ErrNotFound
	}
	return nil
}
