// Package watcher re-runs work when puzzle input files change. Bursts of
// filesystem events are debounced into one batch per quiet period.
package watcher

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/conneroisu/adventofcode/internal/errors"
	"github.com/conneroisu/adventofcode/internal/logging"
	"github.com/fsnotify/fsnotify"
)

// FileWatcher watches for file changes with debouncing
type FileWatcher struct {
	watcher  *fsnotify.Watcher
	delay    time.Duration
	logger   logging.Logger
	filters  []FileFilter
	handlers []ChangeHandler
	mutex    sync.RWMutex
}

// ChangeEvent represents a file change event
type ChangeEvent struct {
	Type EventType
	Path string
}

// EventType represents the type of file change
type EventType int

const (
	EventTypeCreated EventType = iota
	EventTypeModified
	EventTypeDeleted
	EventTypeRenamed
)

// String returns the string representation of the EventType
func (e EventType) String() string {
	switch e {
	case EventTypeCreated:
		return "created"
	case EventTypeModified:
		return "modified"
	case EventTypeDeleted:
		return "deleted"
	case EventTypeRenamed:
		return "renamed"
	default:
		return "unknown"
	}
}

// FileFilter determines if a file should be watched
type FileFilter func(path string) bool

// ChangeHandler handles one debounced batch of events.
type ChangeHandler func(ctx context.Context, events []ChangeEvent) error

// NewFileWatcher creates a new file watcher. A nil logger discards output.
func NewFileWatcher(debounceDelay time.Duration, logger logging.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewIOError(errors.ErrCodeInternalError, "cannot create file watcher", err)
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &FileWatcher{
		watcher: w,
		delay:   debounceDelay,
		logger:  logger.WithComponent("watcher"),
	}, nil
}

// AddFilter adds a file filter. An event must pass every filter.
func (fw *FileWatcher) AddFilter(filter FileFilter) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.filters = append(fw.filters, filter)
}

// AddHandler adds a change handler
func (fw *FileWatcher) AddHandler(handler ChangeHandler) {
	fw.mutex.Lock()
	defer fw.mutex.Unlock()
	fw.handlers = append(fw.handlers, handler)
}

// AddPath watches a directory, or a single file.
func (fw *FileWatcher) AddPath(path string) error {
	if err := fw.watcher.Add(filepath.Clean(path)); err != nil {
		return errors.NewIOError(errors.ErrCodeFileNotFound, "cannot watch path", err).
			WithLocation(path, 0, 0)
	}
	return nil
}

// WatchFile watches the directory holding path and only reports events for
// path itself. Editors often replace a file on save, which a watch on the file
// alone would lose.
func (fw *FileWatcher) WatchFile(path string) error {
	clean := filepath.Clean(path)
	if err := fw.AddPath(filepath.Dir(clean)); err != nil {
		return err
	}
	fw.AddFilter(NameFilter(clean))
	return nil
}

// Run processes events until ctx is cancelled, then closes the watcher.
// Handlers run on the caller's goroutine, one batch at a time.
func (fw *FileWatcher) Run(ctx context.Context) error {
	defer fw.watcher.Close()

	var (
		timer   *time.Timer
		timerC  <-chan time.Time
		pending = make(map[string]ChangeEvent)
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return nil
			}
			change, keep := fw.convert(event)
			if !keep {
				continue
			}
			pending[change.Path] = change
			if timer == nil {
				timer = time.NewTimer(fw.delay)
			} else {
				timer.Reset(fw.delay)
			}
			timerC = timer.C
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return nil
			}
			fw.logger.Warn(ctx, err, "File watcher error")
		case <-timerC:
			timerC = nil
			fw.dispatch(ctx, drain(pending))
		}
	}
}

func (fw *FileWatcher) convert(event fsnotify.Event) (ChangeEvent, bool) {
	fw.mutex.RLock()
	filters := fw.filters
	fw.mutex.RUnlock()

	for _, filter := range filters {
		if !filter(event.Name) {
			return ChangeEvent{}, false
		}
	}

	var eventType EventType
	switch {
	case event.Has(fsnotify.Create):
		eventType = EventTypeCreated
	case event.Has(fsnotify.Write):
		eventType = EventTypeModified
	case event.Has(fsnotify.Remove):
		eventType = EventTypeDeleted
	case event.Has(fsnotify.Rename):
		eventType = EventTypeRenamed
	case event.Has(fsnotify.Chmod):
		return ChangeEvent{}, false
	default:
		eventType = EventTypeModified
	}
	return ChangeEvent{Type: eventType, Path: event.Name}, true
}

func (fw *FileWatcher) dispatch(ctx context.Context, events []ChangeEvent) {
	fw.mutex.RLock()
	handlers := fw.handlers
	fw.mutex.RUnlock()

	fw.logger.Debug(ctx, "Dispatching file changes", "count", len(events))
	for _, handler := range handlers {
		if err := handler(ctx, events); err != nil {
			fw.logger.Error(ctx, err, "File watcher handler failed")
		}
	}
}

// drain empties pending and returns its events ordered by path.
func drain(pending map[string]ChangeEvent) []ChangeEvent {
	events := make([]ChangeEvent, 0, len(pending))
	for path, event := range pending {
		events = append(events, event)
		delete(pending, path)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].Path < events[j].Path })
	return events
}

// NameFilter accepts only events for the given path.
func NameFilter(path string) FileFilter {
	want := filepath.Clean(path)
	return func(p string) bool {
		return filepath.Clean(p) == want
	}
}

// InputFilter accepts puzzle input files.
func InputFilter(path string) bool {
	return filepath.Ext(path) == ".txt"
}

// NoHiddenFilter drops editor swap files and dotfiles.
func NoHiddenFilter(path string) bool {
	base := filepath.Base(path)
	return !strings.HasPrefix(base, ".") && !strings.HasSuffix(base, "~")
}

// String is used in log lines.
func (c ChangeEvent) String() string {
	return fmt.Sprintf("%s %s", c.Type, c.Path)
}
