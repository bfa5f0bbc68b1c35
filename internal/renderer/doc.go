// Package renderer provides the display layer for the ox editor.
//
// Each update cycle the editor composes a Frame: exactly one Line per
// terminal row, each made of styled Spans. The Renderer then draws the frame
// cell by cell into a backend, flushes it once and places the hardware
// cursor.
//
//	┌─────────────────────────────────────────┐
//	│      Frame (Lines of styled Spans)      │
//	├─────────────────────────────────────────┤
//	│        Renderer (cell placement)        │
//	├─────────────────────────────────────────┤
//	│           Backend Abstraction           │
//	├─────────────────────────────────────────┤
//	│      Terminal (tcell) │ NullBackend     │
//	└─────────────────────────────────────────┘
//
// Usage:
//
//	term, _ := backend.NewTerminal()
//	r := renderer.New(term)
//	f := renderer.NewFrame(term.Size())
//	f.Set(0, renderer.Plain("hello"))
//	r.Render(f)
package renderer
