package media

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestWatch_NewFileTracked(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLibrary(dir)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var mu sync.Mutex
	var events []string
	go l.Watch(ctx, quietLogger(), func(kind, name string) {
		mu.Lock()
		events = append(events, kind+":"+name)
		mu.Unlock()
	})

	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(dir, "drop.png"), []byte("x"), 0o644)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		for _, a := range l.List() {
			if a.Name == "drop.png" {
				return true
			}
		}
		return false
	}, "copied file not tracked by watcher")

	eventually(t, 2*time.Second, 50*time.Millisecond, func() bool {
		mu.Lock()
		defer mu.Unlock()
		for _, e := range events {
			if e == "created:drop.png" {
				return true
			}
		}
		return false
	}, "expected created:drop.png callback")
}

func TestWatch_NonAssetIgnored(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLibrary(dir)
	if err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Watch(ctx, quietLogger(), nil)
	time.Sleep(100 * time.Millisecond)

	_ = os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0o644)
	time.Sleep(300 * time.Millisecond)

	if len(l.List()) != 0 {
		t.Errorf("non-asset file tracked: %+v", l.List())
	}
}

func TestWatch_DeleteUntracked(t *testing.T) {
	dir := t.TempDir()
	l, err := NewLibrary(dir)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, "old.jpg")
	_ = os.WriteFile(path, []byte("x"), 0o644)
	if err := l.Rescan(); err != nil {
		t.Fatal(err)
	}
	if len(l.List()) != 1 {
		t.Fatal("precondition: file should be indexed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go l.Watch(ctx, quietLogger(), nil)
	time.Sleep(100 * time.Millisecond)

	_ = os.Remove(path)

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return len(l.List()) == 0
	}, "deleted file still tracked")
}
