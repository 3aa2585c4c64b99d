// Package scratch is a small file-backed string store, separate from the
// embedded database. Its only job is draft recovery: the in-progress draft is
// mirrored here on every change so an interrupted session can offer it back.
package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store keeps one file per key under a root directory.
type Store struct {
	root string
}

// New creates a scratch store rooted at dir, creating it when missing.
func New(dir string) (*Store, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("scratch: resolve root: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("scratch: create root: %w", err)
	}
	return &Store{root: abs}, nil
}

// path validates that key is a plain name and returns its file path.
func (s *Store) path(key string) (string, error) {
	if key == "" {
		return "", fmt.Errorf("scratch: key is required")
	}
	cleaned := filepath.Clean(key)
	if cleaned != filepath.Base(cleaned) || strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("scratch: invalid key: %s", key)
	}
	return filepath.Join(s.root, cleaned), nil
}

// Get returns the stored value. ok is false when the key is absent.
func (s *Store) Get(key string) (value string, ok bool, err error) {
	p, err := s.path(key)
	if err != nil {
		return "", false, err
	}
	data, err := os.ReadFile(p)
	if err != nil {
		if os.IsNotExist(err) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("scratch: read %s: %w", key, err)
	}
	return string(data), true, nil
}

// Put atomically replaces the value: tmp file, fsync, rename.
func (s *Store) Put(key, value string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(s.root, ".scratch-tmp-*")
	if err != nil {
		return fmt.Errorf("scratch: create temp: %w", err)
	}
	tmpName := tmp.Name()

	success := false
	defer func() {
		if !success {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmp.WriteString(value); err != nil {
		return fmt.Errorf("scratch: write temp: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		return fmt.Errorf("scratch: fsync: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("scratch: close temp: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("scratch: rename: %w", err)
	}
	success = true
	return nil
}

// Delete removes the value. Deleting an absent key is a no-op.
func (s *Store) Delete(key string) error {
	p, err := s.path(key)
	if err != nil {
		return err
	}
	if err := os.Remove(p); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("scratch: delete %s: %w", key, err)
	}
	return nil
}
