package backend

import (
	"time"

	"github.com/shelltips/ox/internal/renderer/core"
)

// NullBackend keeps the grid in memory and reads events from a queue filled
// with PostEvent, PostKeys and PostString.
type NullBackend struct {
	width, height int
	lastW, lastH  int
	grid          [][]core.Cell

	cursorX, cursorY int
	cursorVisible    bool
	shows            int

	queue chan Event
}

// NewNullBackend returns a width by height backend. Call Init before use.
func NewNullBackend(width, height int) *NullBackend {
	return &NullBackend{
		width:  width,
		height: height,
		lastW:  width,
		lastH:  height,
		queue:  make(chan Event, 1024),
	}
}

func (b *NullBackend) Init() error {
	b.grid = make([][]core.Cell, b.height)
	for y := range b.grid {
		b.grid[y] = make([]core.Cell, b.width)
	}
	b.Clear()
	return nil
}

func (b *NullBackend) Shutdown() {}

func (b *NullBackend) Size() (int, int) { return b.width, b.height }

func (b *NullBackend) CheckResize() bool {
	changed := b.width != b.lastW || b.height != b.lastH
	b.lastW, b.lastH = b.width, b.height
	return changed
}

func (b *NullBackend) inside(x, y int) bool {
	return y >= 0 && y < len(b.grid) && x >= 0 && x < len(b.grid[y])
}

func (b *NullBackend) SetCell(x, y int, cell core.Cell) {
	if b.inside(x, y) {
		b.grid[y][x] = cell
	}
}

// GetCell returns the cell at (x, y), or an empty cell off the grid.
func (b *NullBackend) GetCell(x, y int) core.Cell {
	if !b.inside(x, y) {
		return core.EmptyCell()
	}
	return b.grid[y][x]
}

func (b *NullBackend) Clear() {
	for _, line := range b.grid {
		for x := range line {
			line[x] = core.EmptyCell()
		}
	}
}

func (b *NullBackend) Show() { b.shows++ }

func (b *NullBackend) ShowCursor(x, y int) {
	b.cursorX, b.cursorY, b.cursorVisible = x, y, true
}

func (b *NullBackend) HideCursor() { b.cursorVisible = false }

func (b *NullBackend) PollEvent(timeout time.Duration) (Event, bool) {
	if timeout <= 0 {
		return <-b.queue, true
	}
	select {
	case ev := <-b.queue:
		return ev, true
	case <-time.After(timeout):
		return Event{}, false
	}
}

// PostEvent queues ev, dropping it when the queue is full.
func (b *NullBackend) PostEvent(ev Event) {
	select {
	case b.queue <- ev:
	default:
	}
}

// PostKeys queues events in order.
func (b *NullBackend) PostKeys(events ...Event) {
	for _, ev := range events {
		b.PostEvent(ev)
	}
}

// PostString queues one rune event per character of s.
func (b *NullBackend) PostString(s string) {
	for _, r := range s {
		b.PostEvent(RuneEvent(r))
	}
}

// Pending returns the number of queued events.
func (b *NullBackend) Pending() int { return len(b.queue) }

// CursorPosition returns where ShowCursor last put the cursor.
func (b *NullBackend) CursorPosition() (x, y int, visible bool) {
	return b.cursorX, b.cursorY, b.cursorVisible
}

// ShowCount returns how many times Show has been called.
func (b *NullBackend) ShowCount() int { return b.shows }

// Row returns the text on screen row y with trailing blanks trimmed. The
// continuation cells of wide characters are skipped.
func (b *NullBackend) Row(y int) string {
	if y < 0 || y >= len(b.grid) {
		return ""
	}
	var out []rune
	line := b.grid[y]
	for x := 0; x < len(line); x += max(1, line[x].Width) {
		out = append(out, line[x].Rune)
		out = append(out, line[x].Comb...)
	}
	for len(out) > 0 && out[len(out)-1] == ' ' {
		out = out[:len(out)-1]
	}
	return string(out)
}

// Resize changes the grid size, clearing it. The next CheckResize reports
// the change and a resize event is queued.
func (b *NullBackend) Resize(width, height int) {
	b.width, b.height = width, height
	b.Init()
	b.PostEvent(Event{Type: EventResize, Width: width, Height: height})
}
