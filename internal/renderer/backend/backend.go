// Package backend abstracts the terminal the editor draws on and reads keys
// from. Terminal is the tcell implementation; NullBackend is an in-memory
// stand-in for tests.
package backend

import (
	"time"

	"github.com/shelltips/ox/internal/renderer/core"
)

// Backend is a cell grid plus an input queue.
type Backend interface {
	// Init takes over the display. It must be called before anything else.
	Init() error

	// Shutdown restores the terminal.
	Shutdown()

	Size() (width, height int)

	// CheckResize reports whether the size changed since the previous call.
	CheckResize() bool

	// SetCell draws one cell. Positions off the grid are ignored.
	SetCell(x, y int, cell core.Cell)

	Clear()

	// Show flushes drawn cells to the display.
	Show()

	ShowCursor(x, y int)
	HideCursor()

	// PollEvent waits up to timeout for the next event; a timeout of zero
	// or less waits forever. ok is false when the wait timed out.
	PollEvent(timeout time.Duration) (ev Event, ok bool)

	// PostEvent queues an event from any goroutine.
	PostEvent(event Event)
}
