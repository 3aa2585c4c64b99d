// Package media manages the on-disk asset library: uploaded images and
// videos stored under an assets directory and served by URL, as an
// alternative to embedding files as data URIs.
package media

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// maxAssetBytes matches the editor's per-file upload ceiling.
const maxAssetBytes = 15 << 20

// allowedExts is the accepted set of asset file extensions.
var allowedExts = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".webp": true, ".svg": true, ".mp4": true, ".webm": true,
}

// Asset describes one file in the library.
type Asset struct {
	Name    string    `json:"name"`
	URL     string    `json:"url"`
	Size    int64     `json:"size"`
	ModTime time.Time `json:"mod_time"`
}

// Library is the in-memory index over the assets directory. The directory is
// the source of truth; the index is refreshed by uploads and by the watcher.
type Library struct {
	root string

	mu     sync.RWMutex
	assets map[string]Asset
}

// NewLibrary creates a library rooted at dir (created when missing) and runs
// an initial scan.
func NewLibrary(dir string) (*Library, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("media: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("media: create root: %w", err)
	}
	l := &Library{root: abs, assets: make(map[string]Asset)}
	if err := l.Rescan(); err != nil {
		return nil, err
	}
	return l, nil
}

// Root returns the absolute assets directory path.
func (l *Library) Root() string {
	return l.root
}

// safeName validates a plain filename (no separators, no traversal) with an
// allowed extension and returns its absolute path.
func (l *Library) safeName(name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("media: filename is required")
	}
	cleaned := filepath.Clean(name)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("media: invalid filename: %s", name)
	}
	if !allowedExts[strings.ToLower(filepath.Ext(cleaned))] {
		return "", fmt.Errorf("media: unsupported file type: %s", name)
	}
	return filepath.Join(l.root, cleaned), nil
}

// Save stores an upload under a collision-free name derived from the original
// filename and returns the indexed asset. Files over the size ceiling are
// rejected without a partial write.
func (l *Library) Save(filename string, r io.Reader) (Asset, error) {
	base := filepath.Base(filepath.Clean(filename))
	stored := uuid.NewString()[:8] + "-" + base
	abs, err := l.safeName(stored)
	if err != nil {
		return Asset{}, err
	}

	data, err := io.ReadAll(io.LimitReader(r, maxAssetBytes+1))
	if err != nil {
		return Asset{}, fmt.Errorf("media: read upload: %w", err)
	}
	if len(data) > maxAssetBytes {
		return Asset{}, fmt.Errorf("media: file exceeds %d bytes", maxAssetBytes)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return Asset{}, fmt.Errorf("media: write asset: %w", err)
	}

	a := Asset{Name: stored, URL: "/assets/" + stored, Size: int64(len(data)), ModTime: time.Now()}
	l.mu.Lock()
	l.assets[stored] = a
	l.mu.Unlock()
	return a, nil
}

// Remove deletes an asset from disk and the index.
func (l *Library) Remove(name string) error {
	abs, err := l.safeName(name)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("media: remove asset: %w", err)
	}
	l.mu.Lock()
	delete(l.assets, name)
	l.mu.Unlock()
	return nil
}

// Path resolves an asset name to its file path for serving.
func (l *Library) Path(name string) (string, error) {
	return l.safeName(name)
}

// List returns the indexed assets, newest first.
func (l *Library) List() []Asset {
	l.mu.RLock()
	out := make([]Asset, 0, len(l.assets))
	for _, a := range l.assets {
		out = append(out, a)
	}
	l.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ModTime.After(out[j].ModTime) })
	return out
}

// Rescan rebuilds the index from the directory contents.
func (l *Library) Rescan() error {
	entries, err := os.ReadDir(l.root)
	if err != nil {
		return fmt.Errorf("media: scan root: %w", err)
	}
	next := make(map[string]Asset, len(entries))
	for _, e := range entries {
		if e.IsDir() || !allowedExts[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		next[e.Name()] = Asset{
			Name:    e.Name(),
			URL:     "/assets/" + e.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
	}
	l.mu.Lock()
	l.assets = next
	l.mu.Unlock()
	return nil
}

// track adds or refreshes one asset in the index from disk state.
// Reports whether the file is an indexable asset.
func (l *Library) track(name string) bool {
	if !allowedExts[strings.ToLower(filepath.Ext(name))] {
		return false
	}
	info, err := os.Stat(filepath.Join(l.root, name))
	if err != nil {
		return false
	}
	l.mu.Lock()
	l.assets[name] = Asset{
		Name:    name,
		URL:     "/assets/" + name,
		Size:    info.Size(),
		ModTime: info.ModTime(),
	}
	l.mu.Unlock()
	return true
}

// untrack drops one asset from the index. Reports whether it was indexed.
func (l *Library) untrack(name string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.assets[name]; !ok {
		return false
	}
	delete(l.assets, name)
	return true
}
