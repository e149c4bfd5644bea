// Package watcher provides live reload notification for the configuration
// file. It watches the file's directory so that editors which replace the
// file via rename (the common atomic-save pattern) are still observed.
package watcher

import (
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce coalesces bursts of write events from a single save.
const DefaultDebounce = 100 * time.Millisecond

// Event signals that the watched file changed.
type Event struct {
	Path string
	Time time.Time
}

// Watcher monitors a single file for writes and creates.
type Watcher struct {
	fsw      *fsnotify.Watcher
	path     string
	debounce time.Duration
	events   chan Event

	closeOnce sync.Once
	done      chan struct{}
}

// New creates a watcher for the given file path. A debounce of 0 uses
// DefaultDebounce; pass a negative duration to disable debouncing.
func New(path string, debounce time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	if debounce == 0 {
		debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, err
	}

	w := &Watcher{
		fsw:      fsw,
		path:     abs,
		debounce: debounce,
		events:   make(chan Event, 1),
		done:     make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Events returns the channel of change notifications. The channel has a
// buffer of one; notifications arriving while the consumer is busy collapse
// into a single pending event.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		close(w.done)
		err = w.fsw.Close()
	})
	return err
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if w.debounce < 0 {
				w.emit()
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				timerC = timer.C
			} else {
				timer.Reset(w.debounce)
			}

		case <-timerC:
			w.emit()

		case _, ok := <-w.fsw.Errors:
			if !ok {
				return
			}

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

func (w *Watcher) emit() {
	select {
	case w.events <- Event{Path: w.path, Time: time.Now()}:
	default:
	}
}
