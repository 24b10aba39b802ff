// Package watch implements the long-running notification loop: it keeps the
// store in sync with external edits to the backing file, advances the
// nearest-due reminder past elapsed triggers, and fires desktop
// notifications.
package watch

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jmhodges/clock"

	"github.com/aidanlsb/remind/internal/notify"
	"github.com/aidanlsb/remind/internal/store"
)

// Config holds configuration options for the Loop.
type Config struct {
	Store        *store.Store
	Notifier     notify.Notifier
	PollInterval time.Duration // Default: 500ms
	Clock        clock.Clock   // Default: the real clock
	Debug        bool
}

// Loop watches the backing file and delivers due reminders.
type Loop struct {
	store    *store.Store
	notifier notify.Notifier
	poll     time.Duration
	clk      clock.Clock
	debug    bool

	fsWatcher *fsnotify.Watcher
}

// New creates a Loop with the given configuration.
func New(cfg Config) (*Loop, error) {
	if cfg.Store == nil {
		return nil, fmt.Errorf("store is required")
	}
	if cfg.Notifier == nil {
		return nil, fmt.Errorf("notifier is required")
	}
	poll := cfg.PollInterval
	if poll == 0 {
		poll = 500 * time.Millisecond
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}
	return &Loop{
		store:    cfg.Store,
		notifier: cfg.Notifier,
		poll:     poll,
		clk:      clk,
		debug:    cfg.Debug,
	}, nil
}

// Start runs the loop until the context is cancelled. It creates the backing
// file if absent; failure to create it or to set up file notifications is a
// fatal startup error.
func (l *Loop) Start(ctx context.Context) error {
	if f, err := os.OpenFile(l.store.Path(), os.O_CREATE|os.O_RDONLY, 0o644); err != nil {
		return fmt.Errorf("create reminders file: %w", err)
	} else {
		f.Close()
	}

	var err error
	l.fsWatcher, err = fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer l.fsWatcher.Close()

	if err := l.fsWatcher.Add(l.store.Path()); err != nil {
		return fmt.Errorf("failed to watch reminders file: %w", err)
	}

	if err := l.store.Load(); err != nil {
		return err
	}
	l.logDebug("watching %s, %d reminders loaded", l.store.Path(), l.store.Len())

	ticker := time.NewTicker(l.poll)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-l.fsWatcher.Events:
			if !ok {
				return nil
			}
			l.handleEvent(event)

		case err, ok := <-l.fsWatcher.Errors:
			if !ok {
				return nil
			}
			l.logDebug("watcher error: %v", err)

		case <-ticker.C:
			if err := l.tick(l.clk.Now()); err != nil {
				l.logDebug("tick: %v", err)
			}
		}
	}
}

// handleEvent processes a single filesystem event on the backing file. The
// loop's own persists never show up here (the file is unwatched around them),
// so every data event is a genuine external edit.
func (l *Loop) handleEvent(event fsnotify.Event) {
	switch {
	case event.Op&(fsnotify.Create|fsnotify.Write) != 0:
		l.logDebug("reloading after %s", event.Op)
		_ = l.store.Load()
	case event.Op&(fsnotify.Remove|fsnotify.Rename) != 0:
		l.logDebug("file gone (%s), clearing", event.Op)
		l.store.Reset()
	}
}

// tick advances the nearest-due reminder. When its end time has passed, a
// pending skip is consumed silently or a notification fires, and the list is
// persisted with the loop's own write shielded from the event handler.
func (l *Loop) tick(now time.Time) error {
	i := l.store.Closest()
	if i < 0 {
		return nil
	}
	r := l.store.At(i)
	advanced, remove := r.Update(now)
	if !advanced {
		return nil
	}

	if r.Skips > 0 {
		r.Skips--
	} else if err := l.notifier.Send(r.Title); err != nil {
		// Best effort: a failed notification must not stall the schedule.
		l.logDebug("notification failed: %v", err)
	}

	return l.persist(i, remove)
}

// persist writes the list back without reacting to our own change: the file
// is unwatched around the write, so the rename behind the atomic save never
// surfaces as an event. External edits arriving after the rewatch are seen
// and reloaded as usual.
func (l *Loop) persist(i int, remove bool) error {
	l.unwatch()
	defer l.rewatch()

	if remove {
		return l.store.RemoveAt(i)
	}
	return l.store.Save()
}

func (l *Loop) unwatch() {
	if l.fsWatcher != nil {
		_ = l.fsWatcher.Remove(l.store.Path())
	}
}

func (l *Loop) rewatch() {
	if l.fsWatcher != nil {
		_ = l.fsWatcher.Add(l.store.Path())
	}
}

func (l *Loop) logDebug(format string, args ...any) {
	if l.debug {
		fmt.Fprintf(os.Stderr, "[remind-watch] "+format+"\n", args...)
	}
}
