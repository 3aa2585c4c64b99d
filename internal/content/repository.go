// Package content owns the canonical in-memory list of mission stories.
//
// The repository is the authoritative read source for a session. It seeds
// from the bundled defaults, overlays persisted data once at startup, and
// rewrites the whole list to the blob store after every mutation. Storage
// failures are logged and swallowed: the repository keeps serving from
// memory, and the persisted copy only matters across restarts.
package content

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/smilesofhope/hopecms/internal/models"
)

// PostsKey is the fixed key the serialized post list lives under.
const PostsKey = "current_posts"

// BlobStore is the durable single-key store the repository persists through.
// *kvstore.Store satisfies it; a nil BlobStore means memory-only mode.
type BlobStore interface {
	Read(ctx context.Context, key string) (value []byte, ok bool, err error)
	Write(ctx context.Context, key string, value []byte) error
}

// EventPublisher receives post change notifications. May be nil.
type EventPublisher interface {
	PublishPostEvent(kind, id string)
}

// Repository is the single source of truth for the post list.
type Repository struct {
	mu     sync.RWMutex
	posts  []models.Post
	store  BlobStore
	events EventPublisher
	logger *slog.Logger
}

// NewRepository creates a repository. store and events may be nil.
func NewRepository(store BlobStore, events EventPublisher, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{store: store, events: events, logger: logger}
}

// Initialize seeds the repository with the bundled defaults and overlays a
// persisted list when a non-empty, well-formed one exists. It never fails:
// any storage problem leaves the defaults active for the session.
func (r *Repository) Initialize(ctx context.Context) {
	posts := SeedPosts()

	if r.store != nil {
		raw, ok, err := r.store.Read(ctx, PostsKey)
		switch {
		case err != nil:
			r.logger.Warn("content: read persisted posts failed, using bundled defaults",
				slog.String("error", err.Error()))
		case ok:
			var loaded []models.Post
			if err := json.Unmarshal(raw, &loaded); err != nil {
				r.logger.Warn("content: persisted posts malformed, using bundled defaults",
					slog.String("error", err.Error()))
			} else if len(loaded) > 0 {
				posts = loaded
			}
		}
	}

	r.mu.Lock()
	r.posts = posts
	r.mu.Unlock()
}

// List returns a deep-copy snapshot of the current post list.
func (r *Repository) List() []models.Post {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]models.Post, len(r.posts))
	for i, p := range r.posts {
		out[i] = p.Clone()
	}
	return out
}

// Get returns a copy of the post with the given id.
func (r *Repository) Get(id string) (models.Post, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, p := range r.posts {
		if p.ID == id {
			return p.Clone(), true
		}
	}
	return models.Post{}, false
}

// Len returns the number of posts.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.posts)
}

// Upsert replaces the post with a matching id in place, or prepends the post
// when the id is new, then re-persists the whole list.
func (r *Repository) Upsert(ctx context.Context, post models.Post) {
	kind := "created"

	r.mu.Lock()
	replaced := false
	for i, p := range r.posts {
		if p.ID == post.ID {
			r.posts[i] = post.Clone()
			replaced = true
			kind = "updated"
			break
		}
	}
	if !replaced {
		r.posts = append([]models.Post{post.Clone()}, r.posts...)
	}
	r.persistLocked(ctx)
	r.mu.Unlock()

	if r.events != nil {
		r.events.PublishPostEvent(kind, post.ID)
	}
}

// Remove deletes the post with the given id. Removing an absent id leaves
// the list unchanged. Reports whether a post was removed.
func (r *Repository) Remove(ctx context.Context, id string) bool {
	r.mu.Lock()
	removed := false
	for i, p := range r.posts {
		if p.ID == id {
			r.posts = append(r.posts[:i], r.posts[i+1:]...)
			removed = true
			break
		}
	}
	if removed {
		r.persistLocked(ctx)
	}
	r.mu.Unlock()

	if removed && r.events != nil {
		r.events.PublishPostEvent("deleted", id)
	}
	return removed
}

// persistLocked serializes the full list back to the store. Last write wins;
// failures are logged and never surfaced, the in-memory copy stays
// authoritative for the session. Callers must hold the write lock.
func (r *Repository) persistLocked(ctx context.Context) {
	if r.store == nil {
		return
	}
	raw, err := json.Marshal(r.posts)
	if err != nil {
		r.logger.Error("content: marshal posts failed", slog.String("error", err.Error()))
		return
	}
	if err := r.store.Write(ctx, PostsKey, raw); err != nil {
		r.logger.Warn("content: persist posts failed, changes live in memory only",
			slog.String("error", err.Error()))
	}
}
