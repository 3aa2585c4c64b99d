package media

import (
	"context"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// EventCallback is called after a watcher-driven index change.
// kind is one of "created", "updated", "deleted".
type EventCallback func(kind, name string)

// Watch runs an fsnotify watcher on the assets directory until ctx is
// cancelled, keeping the library index current for files added or removed
// outside the upload endpoint (rsync, manual copies). It calls cb (if
// non-nil) after each index mutation.
func (l *Library) Watch(ctx context.Context, logger *slog.Logger, cb EventCallback) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer w.Close()

	if err := w.Add(l.root); err != nil {
		return err
	}
	logger.Info("media: watcher started", slog.String("root", l.root))

	notify := func(kind, name string) {
		if cb != nil {
			cb(kind, name)
		}
	}

	for {
		select {
		case <-ctx.Done():
			logger.Info("media: watcher stopped")
			return nil

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			name := filepath.Base(ev.Name)
			switch {
			case ev.Op.Has(fsnotify.Create):
				if l.track(name) {
					notify("created", name)
				}
			case ev.Op.Has(fsnotify.Write):
				if l.track(name) {
					notify("updated", name)
				}
			case ev.Op.Has(fsnotify.Remove), ev.Op.Has(fsnotify.Rename):
				if l.untrack(name) {
					notify("deleted", name)
				}
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("media: watcher error", slog.String("error", err.Error()))
		}
	}
}
