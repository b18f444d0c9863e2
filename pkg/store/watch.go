package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a persistence change notification.
type EventType int

const (
	// EventTripsChanged indicates trips of the given kind were written or
	// erased.
	EventTripsChanged EventType = iota

	// EventTripsInvalidated signals a change that could not be attributed to
	// a kind; callers should reload everything.
	EventTripsInvalidated
)

func (t EventType) String() string {
	if t == EventTripsChanged {
		return "changed"
	}
	return "invalidated"
}

// Event is emitted by Persistence.Watch when underlying storage changes.
type Event struct {
	Type EventType
	Kind TripKind
}

// Watch streams change events until ctx is cancelled. Callers should drain the
// returned channel to avoid blocking the watcher. The channel is closed once
// ctx is done or the watcher encounters an unrecoverable error.
func (p *persistence) Watch(ctx context.Context) (<-chan Event, error) {
	if p.basePath == "" {
		return nil, errors.New("store: persistence base path unknown")
	}

	if err := os.MkdirAll(p.basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	var closeOnce sync.Once
	closeWatcher := func() {
		closeOnce.Do(func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		})
	}

	dirs, err := collectDirs(p.basePath)
	if err != nil {
		closeWatcher()
		return nil, fmt.Errorf("store: enumerate directories: %w", err)
	}

	for _, dir := range dirs {
		if err := watcher.Add(dir); err != nil {
			closeWatcher()
			return nil, fmt.Errorf("store: watch %s: %w", dir, err)
		}
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer closeWatcher()

		// Track directories we already watch so we can add new ones at runtime
		// without duplicating watches.
		watched := make(map[string]struct{}, len(dirs))
		for _, dir := range dirs {
			watched[dir] = struct{}{}
		}

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Dropped when the consumer is behind; the next event
				// triggers a full reload anyway.
			}
		}

		throttle := newEventThrottle(100 * time.Millisecond)
		defer throttle.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				fmt.Fprintf(os.Stderr, "store: watcher: %v\n", err)
				throttle.Enqueue(Event{Type: EventTripsInvalidated}, send)
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}

				if evt.Op&fsnotify.Create == fsnotify.Create {
					// diskv creates the whole kind/yyyy/mm/dd chain at once, so
					// watch every directory under a new one.
					if info, err := os.Stat(evt.Name); err == nil && info.IsDir() {
						subdirs, err := collectDirs(filepath.Clean(evt.Name))
						if err != nil {
							fmt.Fprintf(os.Stderr, "store: walk %s: %v\n", evt.Name, err)
						}
						for _, dir := range subdirs {
							if _, found := watched[dir]; found {
								continue
							}
							if err := watcher.Add(dir); err != nil {
								fmt.Fprintf(os.Stderr, "store: watch %s: %v\n", dir, err)
								continue
							}
							watched[dir] = struct{}{}
						}
					}
				}

				kind := p.kindForPath(evt.Name)
				if kind == "" {
					throttle.Enqueue(Event{Type: EventTripsInvalidated}, send)
					continue
				}

				throttle.Enqueue(Event{Type: EventTripsChanged, Kind: kind}, send)
			}
		}
	}()

	return events, nil
}

// collectDirs walks base and returns all directories that should be watched.
func collectDirs(base string) ([]string, error) {
	dirs := []string{base}
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil
			}
			return err
		}
		if d.IsDir() && path != base {
			dirs = append(dirs, path)
		}
		return nil
	})
	return dirs, err
}

// kindForPath reads the trip kind from the first element of a diskv path.
func (p *persistence) kindForPath(path string) TripKind {
	rel, err := filepath.Rel(p.basePath, path)
	if err != nil || rel == "." {
		return ""
	}
	parts := strings.Split(rel, string(os.PathSeparator))
	switch kind := TripKind(parts[0]); kind {
	case KindOneWay, KindReturn:
		return kind
	}
	return ""
}

// eventThrottle coalesces a burst of writes into one event per kind.
type eventThrottle struct {
	mu      sync.Mutex
	timer   *time.Timer
	pending map[EventType]map[TripKind]struct{}
	delay   time.Duration
}

func newEventThrottle(delay time.Duration) *eventThrottle {
	return &eventThrottle{
		delay:   delay,
		pending: make(map[EventType]map[TripKind]struct{}),
	}
}

func (t *eventThrottle) Enqueue(ev Event, send func(Event)) {
	t.mu.Lock()
	if t.pending[ev.Type] == nil {
		t.pending[ev.Type] = make(map[TripKind]struct{})
	}
	t.pending[ev.Type][ev.Kind] = struct{}{}

	if t.timer == nil {
		t.timer = time.AfterFunc(t.delay, func() {
			t.flush(send)
		})
	}
	t.mu.Unlock()
}

func (t *eventThrottle) flush(send func(Event)) {
	t.mu.Lock()
	pending := t.pending
	t.pending = make(map[EventType]map[TripKind]struct{})
	t.timer = nil
	t.mu.Unlock()

	for eventType, kinds := range pending {
		for kind := range kinds {
			send(Event{Type: eventType, Kind: kind})
		}
	}
}

func (t *eventThrottle) Stop() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.mu.Unlock()
}
