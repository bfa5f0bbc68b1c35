// Package editor implements the editor controller: the cursor and viewport
// model, the undo/redo event log, the prompt protocol and the render cycle.
//
// An Editor exclusively owns one document and one terminal backend. All of
// its state is mutated from the goroutine that calls Run; the backend's own
// goroutines only ever feed it events.
package editor

import (
	"context"
	"fmt"

	"github.com/shelltips/ox/internal/config"
	"github.com/shelltips/ox/internal/engine/document"
	"github.com/shelltips/ox/internal/engine/position"
	"github.com/shelltips/ox/internal/logging"
	"github.com/shelltips/ox/internal/renderer"
	"github.com/shelltips/ox/internal/renderer/backend"
	"github.com/shelltips/ox/internal/renderer/statusline"
)

// WelcomeMessage is shown on the command line at startup.
const WelcomeMessage = "Welcome to Ox!"

// Editor is the state of a running editor.
type Editor struct {
	quit        bool
	showWelcome bool
	dirty       bool

	// graphemeIndex is the index within the current row of the grapheme the
	// cursor sits on. It is kept separately from the column because wide
	// characters make the two diverge.
	graphemeIndex int
	cursor        position.Position
	offset        position.Position
	commandLine   statusline.Message

	doc      *document.Document
	backend  backend.Backend
	renderer *renderer.Renderer
	cfg      *config.Config
	theme    renderer.Theme
	logger   *logging.Logger

	ctx context.Context
}

// Option configures an Editor.
type Option func(*Editor)

// WithConfig sets the configuration. The default is config.Default().
func WithConfig(cfg *config.Config) Option {
	return func(e *Editor) {
		if cfg != nil {
			e.cfg = cfg
		}
	}
}

// WithLogger sets the logger. The default is the process-wide logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Editor) {
		if l != nil {
			e.logger = l
		}
	}
}

// New creates an editor drawing to b with an empty document.
// The backend must already be initialised.
func New(b backend.Backend, opts ...Option) *Editor {
	e := &Editor{
		showWelcome: true,
		commandLine: statusline.Message{Severity: statusline.Info, Text: WelcomeMessage},
		backend:     b,
		renderer:    renderer.New(b),
		cfg:         config.Default(),
		logger:      logging.Get(),
		ctx:         context.Background(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.WithComponent("editor")
	e.theme = e.cfg.RendererTheme()
	e.replaceDocument(document.New())
	return e
}

// Open loads the file at path as the initial document. On failure the error
// is shown on the command line and the empty document is kept. Either way
// the welcome screen is dismissed.
func (e *Editor) Open(path string) error {
	e.showWelcome = false
	doc, err := document.Open(path)
	if err != nil {
		e.logger.Error("opening %s: %v", path, err)
		e.setError("File couldn't be opened")
		return err
	}
	e.replaceDocument(doc)
	e.logger.Info("opened %s (%d rows, %s)", path, doc.Len(), doc.Type)
	return nil
}

// Run renders and dispatches keys until the user quits or ctx is cancelled.
func (e *Editor) Run(ctx context.Context) error {
	e.ctx = ctx
	defer func() { e.ctx = context.Background() }()

	for !e.quit {
		e.render()
		ev, ok := e.readKey()
		if !ok {
			return ctx.Err()
		}
		e.handleKey(ev)
	}
	e.logger.Info("quit")
	return nil
}

// ApplyConfig switches to cfg. Changes take effect from the next frame. The
// log level changes at once; a new log file is only opened on restart.
func (e *Editor) ApplyConfig(cfg *config.Config) {
	if e.cfg != nil && cfg.Log.File != e.cfg.Log.File {
		e.logger.Warn("log file change to %q applies on restart", cfg.Log.File)
	}
	if level, err := logging.ParseLevel(cfg.Log.Level); err == nil {
		e.logger.SetLevel(level)
	}
	e.cfg = cfg
	e.theme = cfg.RendererTheme()
	e.doc.History().SetMaxEntries(cfg.Editor.HistoryLimit)
}

// Document returns the document being edited.
func (e *Editor) Document() *document.Document { return e.doc }

// Cursor returns the on-screen cursor position.
func (e *Editor) Cursor() position.Position { return e.cursor }

// Offset returns the scroll origin.
func (e *Editor) Offset() position.Position { return e.offset }

// Position returns the absolute document position of the cursor.
func (e *Editor) Position() position.Position { return e.cursor.Add(e.offset) }

// GraphemeIndex returns the index of the grapheme under the cursor.
func (e *Editor) GraphemeIndex() int { return e.graphemeIndex }

// Dirty reports whether the document has unsaved changes.
func (e *Editor) Dirty() bool { return e.dirty }

// Quitting reports whether the editor has been asked to quit.
func (e *Editor) Quitting() bool { return e.quit }

// Message returns the command line message.
func (e *Editor) Message() statusline.Message { return e.commandLine }

// replaceDocument makes doc the edited document and resets the view.
func (e *Editor) replaceDocument(doc *document.Document) {
	doc.History().SetMaxEntries(e.cfg.Editor.HistoryLimit)
	e.doc = doc
	e.dirty = false
	e.cursor = position.Position{}
	e.offset = position.Position{}
	e.graphemeIndex = 0
}

// readKey blocks until a key arrives. Resizes and interrupts that arrive
// first are handled in place. It returns false once the run context is done.
func (e *Editor) readKey() (backend.Event, bool) {
	for {
		select {
		case <-e.ctx.Done():
			return backend.Event{}, false
		default:
		}

		ev, ok := e.backend.PollEvent(e.cfg.Editor.ResizePoll.Duration)
		if !ok {
			if e.backend.CheckResize() {
				e.resized()
			}
			continue
		}

		switch ev.Type {
		case backend.EventKey:
			return ev, true
		case backend.EventResize:
			e.backend.CheckResize()
			e.resized()
		case backend.EventInterrupt:
			e.interrupt(ev.Data)
		}
	}
}

func (e *Editor) resized() {
	w, h := e.backend.Size()
	e.logger.Debug("resized to %dx%d", w, h)
	e.clamp()
	e.render()
}

// interrupt handles a value posted to the backend from another goroutine.
func (e *Editor) interrupt(data any) {
	switch v := data.(type) {
	case *config.Config:
		e.ApplyConfig(v)
		e.logger.Info("configuration reloaded from %s", v.Path)
	case error:
		e.logger.Warn("configuration reload failed: %v", v)
		e.setWarning(fmt.Sprintf("Config not reloaded: %v", v))
	default:
		return
	}
	e.render()
}

// handleKey dispatches one key outside of a prompt.
func (e *Editor) handleKey(ev backend.Event) {
	switch ev.Key {
	case backend.KeyCtrlQ:
		e.quitEditor()
	case backend.KeyCtrlS:
		e.save()
	case backend.KeyCtrlW:
		e.saveAs()
	case backend.KeyCtrlN:
		e.newDocument()
	case backend.KeyCtrlO:
		e.openDocument()
	case backend.KeyCtrlF:
		e.search()
	case backend.KeyCtrlU:
		e.undo()
	case backend.KeyCtrlY:
		e.redo()
	case backend.KeyUp:
		e.moveUp()
	case backend.KeyDown:
		e.moveDown()
	case backend.KeyLeft:
		e.moveLeft()
	case backend.KeyRight:
		e.moveRight()
	case backend.KeyHome:
		e.leapHome()
	case backend.KeyEnd:
		e.leapEnd()
	case backend.KeyPageUp:
		e.pageUp()
	case backend.KeyPageDown:
		e.pageDown()
	case backend.KeyTab:
		e.tab()
	case backend.KeyEnter:
		e.enter()
	case backend.KeyBackspace:
		e.backspace()
	case backend.KeyRune:
		if ev.Mod.Has(backend.ModCtrl) || ev.Mod.Has(backend.ModAlt) {
			return
		}
		e.character(string(ev.Rune))
	}
	e.clamp()
}

func (e *Editor) setInfo(text string) {
	e.commandLine = statusline.Message{Severity: statusline.Info, Text: text}
}

func (e *Editor) setWarning(text string) {
	e.commandLine = statusline.Message{Severity: statusline.Warning, Text: text}
}

func (e *Editor) setError(text string) {
	e.commandLine = statusline.Message{Severity: statusline.Error, Text: text}
}
