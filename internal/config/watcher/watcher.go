// Package watcher reports changes to a fixed set of files, such as the ox
// config file, after a short quiet period.
//
// The parent directories are watched rather than the files, so a file that
// is saved by writing a temporary copy and renaming it into place is still
// seen, as is a file that does not exist yet.
package watcher

import (
	"errors"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ErrRunning is returned by Watch once Start has been called.
var ErrRunning = errors.New("watcher already running")

// Event is one settled change to a watched file. Path is absolute.
type Event struct {
	Path string
	Op   Operation
	Time time.Time
}

// Operation is what happened to the file.
type Operation int

const (
	OpWrite Operation = iota
	OpCreate
	OpRemove
	OpRename
)

var opNames = [...]string{OpWrite: "write", OpCreate: "create", OpRemove: "remove", OpRename: "rename"}

func (op Operation) String() string {
	if op < 0 || int(op) >= len(opNames) {
		return "unknown"
	}
	return opNames[op]
}

// Handler receives settled events on a watcher goroutine.
type Handler func(event Event)

// ErrorHandler receives errors from the notifier.
type ErrorHandler func(err error)

// Watcher debounces fsnotify events for a set of files.
type Watcher struct {
	mu sync.Mutex

	files    map[string]bool
	handlers []Handler
	onError  ErrorHandler
	debounce time.Duration

	notifier *fsnotify.Watcher
	done     chan struct{}
	wg       sync.WaitGroup

	pending map[string]*time.Timer
	lastOp  map[string]Operation
}

// Option customizes New.
type Option func(*Watcher)

// WithDebounce sets how long a file must stay quiet before its event is
// delivered. Zero delivers every event at once. The default is 100ms.
func WithDebounce(d time.Duration) Option {
	return func(w *Watcher) {
		if d >= 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler sets the handler for notifier errors; by default they
// are dropped.
func WithErrorHandler(h ErrorHandler) Option {
	return func(w *Watcher) {
		w.onError = h
	}
}

// New returns a stopped watcher.
func New(opts ...Option) *Watcher {
	w := &Watcher{
		files:    make(map[string]bool),
		debounce: 100 * time.Millisecond,
		pending:  make(map[string]*time.Timer),
		lastOp:   make(map[string]Operation),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Watch adds path to the set. It fails with ErrRunning after Start.
func (w *Watcher) Watch(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.notifier != nil {
		return ErrRunning
	}
	w.files[absPath] = true
	return nil
}

// OnChange adds a handler.
func (w *Watcher) OnChange(handler Handler) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.handlers = append(w.handlers, handler)
}

// WatchedFiles returns the absolute paths in the set.
func (w *Watcher) WatchedFiles() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	files := make([]string, 0, len(w.files))
	for path := range w.files {
		files = append(files, path)
	}
	return files
}

// Start watches the parent directory of every file. A second call is a
// no-op.
func (w *Watcher) Start() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.notifier != nil {
		return nil
	}

	n, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs := make(map[string]bool)
	for path := range w.files {
		dirs[filepath.Dir(path)] = true
	}
	for dir := range dirs {
		if err := n.Add(dir); err != nil {
			n.Close()
			return err
		}
	}

	w.notifier = n
	w.done = make(chan struct{})
	w.wg.Add(1)
	go w.loop(n, w.done)
	return nil
}

// Stop closes the notifier and waits for its goroutine. Events still
// waiting out the debounce are dropped.
func (w *Watcher) Stop() {
	w.mu.Lock()
	n := w.notifier
	if n == nil {
		w.mu.Unlock()
		return
	}
	w.notifier = nil
	close(w.done)
	for path, t := range w.pending {
		t.Stop()
		delete(w.pending, path)
	}
	w.mu.Unlock()

	n.Close()
	w.wg.Wait()
}

// IsRunning reports whether Start was called without a matching Stop.
func (w *Watcher) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.notifier != nil
}

func (w *Watcher) loop(n *fsnotify.Watcher, done chan struct{}) {
	defer w.wg.Done()
	for {
		select {
		case <-done:
			return
		case ev, ok := <-n.Events:
			if !ok {
				return
			}
			w.handle(ev)
		case err, ok := <-n.Errors:
			if !ok {
				return
			}
			w.mu.Lock()
			onError := w.onError
			w.mu.Unlock()
			if onError != nil {
				onError(err)
			}
		}
	}
}

func (w *Watcher) handle(ev fsnotify.Event) {
	path, err := filepath.Abs(ev.Name)
	if err != nil {
		return
	}
	op, ok := convertOp(ev.Op)
	if !ok {
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.files[path] || w.notifier == nil {
		return
	}

	if w.debounce == 0 {
		go w.emit(Event{Path: path, Op: op, Time: time.Now()})
		return
	}

	// Remove takes precedence over anything still pending; create is kept
	// over a following write.
	if prev, ok := w.lastOp[path]; ok && w.pending[path] != nil {
		if prev == OpRemove || (prev == OpCreate && op == OpWrite) {
			op = prev
		}
	}
	w.lastOp[path] = op

	if t := w.pending[path]; t != nil {
		t.Stop()
	}
	w.pending[path] = time.AfterFunc(w.debounce, func() {
		w.mu.Lock()
		if w.notifier == nil {
			w.mu.Unlock()
			return
		}
		final := w.lastOp[path]
		delete(w.pending, path)
		delete(w.lastOp, path)
		w.mu.Unlock()

		w.emit(Event{Path: path, Op: final, Time: time.Now()})
	})
}

func (w *Watcher) emit(ev Event) {
	w.mu.Lock()
	handlers := make([]Handler, len(w.handlers))
	copy(handlers, w.handlers)
	w.mu.Unlock()

	for _, h := range handlers {
		h(ev)
	}
}

func convertOp(op fsnotify.Op) (Operation, bool) {
	switch {
	case op.Has(fsnotify.Remove):
		return OpRemove, true
	case op.Has(fsnotify.Rename):
		return OpRename, true
	case op.Has(fsnotify.Create):
		return OpCreate, true
	case op.Has(fsnotify.Write):
		return OpWrite, true
	default:
		return 0, false
	}
}
