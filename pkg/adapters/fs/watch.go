package fs

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/aretw0/performer/pkg/core"
)

// Watch emits an event for every document change whose ID matches pattern.
// An empty pattern matches everything. The returned channel is closed once ctx is done.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "**"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern %q", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := r.recursiveAdd(watcher, r.Path); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	events := make(chan core.Event)
	r.setWatcherActive(true)

	lifecycle.Go(ctx, func(ctx context.Context) error {
		defer close(events)
		defer r.setWatcherActive(false)
		defer watcher.Close()
		return r.watchLoop(ctx, watcher, pattern, events)
	}, lifecycle.WithErrorHandler(func(err error) {
		r.reportWatchError(fmt.Errorf("watcher stopped: %w", err))
	}))

	return events, nil
}

func (r *Repository) watchLoop(ctx context.Context, watcher *fsnotify.Watcher, pattern string, events chan<- core.Event) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}

			if event.Has(fsnotify.Create) {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if r.skipDir(info.Name()) {
						continue
					}
					if err := r.recursiveAdd(watcher, event.Name); err != nil {
						r.reportWatchError(err)
					}
					// Files can land in the directory before it is watched.
					for _, e := range r.existing(event.Name, pattern) {
						if !send(ctx, events, e) {
							return nil
						}
					}
					continue
				}
			}

			e, ok := r.translate(event, pattern)
			if !ok {
				continue
			}
			if !send(ctx, events, e) {
				return nil
			}

		case wErr, ok := <-watcher.Errors:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			r.reportWatchError(wErr)
		}
	}
}

func send(ctx context.Context, events chan<- core.Event, e core.Event) bool {
	select {
	case events <- e:
		return true
	case <-ctx.Done():
		return false
	}
}

// existing reports the documents already present under a newly created
// directory as Create events.
func (r *Repository) existing(dir, pattern string) []core.Event {
	var found []core.Event
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && r.skipDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if e, ok := r.translate(fsnotify.Event{Name: path, Op: fsnotify.Create}, pattern); ok {
			found = append(found, e)
		}
		return nil
	})
	if err != nil {
		r.logger().Debug("scan of new directory failed", "path", dir, "error", err)
	}
	return found
}

// translate maps a raw filesystem event to a document event, filtering out
// temp files, unsupported formats and IDs not matching pattern.
func (r *Repository) translate(event fsnotify.Event, pattern string) (core.Event, bool) {
	if isTempFile(event.Name) || r.ignored(event.Name) {
		return core.Event{}, false
	}
	if _, ok := r.serializer(filepath.Ext(event.Name)); !ok {
		return core.Event{}, false
	}

	var eType core.EventType
	switch {
	case event.Has(fsnotify.Create):
		eType = core.EventCreate
	case event.Has(fsnotify.Write):
		eType = core.EventModify
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		eType = core.EventDelete
	default:
		return core.Event{}, false
	}

	id, err := r.resolveID(event.Name)
	if err != nil {
		r.logger().Debug("resolveID failed", "path", event.Name, "error", err)
		return core.Event{}, false
	}
	if match, _ := doublestar.Match(pattern, id); !match {
		return core.Event{}, false
	}

	r.logger().Debug("event received", "type", eType, "id", id)
	return core.Event{Type: eType, ID: id, Timestamp: time.Now().Unix()}, true
}

func (r *Repository) recursiveAdd(watcher *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		if path != r.Path && r.skipDir(d.Name()) {
			return filepath.SkipDir
		}
		if err := watcher.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
		return nil
	})
}

func (r *Repository) reportWatchError(err error) {
	r.logger().Error("watcher error", "error", err)
	if r.config.ErrorHandler != nil {
		r.config.ErrorHandler(err)
	}
}

func (r *Repository) setWatcherActive(active bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.watcherActive = active
}
