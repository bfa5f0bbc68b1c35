package renderer

import (
	"github.com/shelltips/ox/internal/renderer/backend"
	"github.com/shelltips/ox/internal/renderer/core"
)

// Renderer draws frames into a backend.
type Renderer struct {
	backend    backend.Backend
	frameCount uint64
}

// New creates a renderer for the given backend.
func New(b backend.Backend) *Renderer {
	return &Renderer{backend: b}
}

// Render draws every line of f, positions the hardware cursor and flushes
// the backend once.
func (r *Renderer) Render(f *Frame) {
	b := r.backend
	b.Clear()
	for y, line := range f.Lines {
		placeLine(line, f.Width, func(x int, c core.Cell) {
			b.SetCell(x, y, c)
		})
	}
	if f.CursorVisible {
		b.ShowCursor(f.CursorX, f.CursorY)
	} else {
		b.HideCursor()
	}
	b.Show()
	r.frameCount++
}

// FrameCount returns the number of frames rendered.
func (r *Renderer) FrameCount() uint64 {
	return r.frameCount
}
