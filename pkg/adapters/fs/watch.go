package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/parlorhq/parlor/pkg/core"
)

// debounceWindow coalesces the burst of fs events a single atomic save
// produces (create temp, chmod, rename) into one logical change.
const debounceWindow = 50 * time.Millisecond

// Watch implements core.Watchable. It observes the directory holding the
// snapshot file and emits an event when a file matching pattern changes.
// An empty pattern watches the snapshot file itself. The channel is closed
// when ctx is cancelled.
func (r *Repository) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = filepath.Base(r.config.Path)
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %s", pattern)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := watcher.Add(filepath.Dir(r.config.Path)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("failed to watch data directory: %w", err)
	}

	events := make(chan core.Event, 8)
	go r.forward(ctx, watcher, pattern, events)
	return events, nil
}

func (r *Repository) forward(ctx context.Context, watcher *fsnotify.Watcher, pattern string, out chan<- core.Event) {
	defer close(out)
	defer watcher.Close()

	var lastEmit time.Time
	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			name := filepath.Base(ev.Name)
			if match, _ := doublestar.Match(pattern, name); !match {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			now := time.Now()
			if now.Sub(lastEmit) < debounceWindow {
				continue
			}
			lastEmit = now

			out <- core.Event{
				Type:      eventTypeFor(ev.Op),
				Name:      name,
				Timestamp: now.Unix(),
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			r.logger.Warn("watch error", "error", err)
		}
	}
}

func eventTypeFor(op fsnotify.Op) core.EventType {
	if op&fsnotify.Create != 0 {
		return core.EventCreate
	}
	return core.EventModify
}
