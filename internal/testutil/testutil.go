// Package testutil provides shared test helpers for setting up stores.
package testutil

import (
	"os"
	"testing"

	"github.com/smilesofhope/hopecms/internal/kvstore"
	"github.com/smilesofhope/hopecms/internal/scratch"
)

// TestStore creates a temporary blob store that is automatically cleaned up.
func TestStore(t *testing.T) *kvstore.Store {
	t.Helper()
	dbFile, err := os.CreateTemp("", "hopecms-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	store, err := kvstore.Open(dbFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// TestScratch creates a temporary scratch store.
func TestScratch(t *testing.T) *scratch.Store {
	t.Helper()
	sc, err := scratch.New(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	return sc
}
