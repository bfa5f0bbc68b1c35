package editor

import (
	"github.com/shelltips/ox/internal/engine/position"
	"github.com/shelltips/ox/internal/engine/row"
)

// The bottom two terminal rows hold the status and command lines.
const reservedRows = 2

// lastScreenRow is the lowest row the cursor may occupy.
func (e *Editor) lastScreenRow() int {
	_, h := e.backend.Size()
	return max(0, h-reservedRows-1)
}

// contentWidth is the number of columns available to text, after the gutter.
func (e *Editor) contentWidth() int {
	w, _ := e.backend.Size()
	return max(1, w-e.doc.LineOffset)
}

// column returns the absolute column of the cursor.
func (e *Editor) column() int {
	return e.cursor.X + e.offset.X
}

// line returns the absolute row index of the cursor.
func (e *Editor) line() int {
	return e.cursor.Y + e.offset.Y
}

// currentRow returns the row under the cursor. It is never nil: every
// movement keeps the cursor on an existing row.
func (e *Editor) currentRow() *row.Row {
	return e.doc.Row(e.line())
}

// scrollToColumn puts the cursor on absolute column col, moving offset.X
// only as far as needed to keep it visible.
func (e *Editor) scrollToColumn(col int) {
	last := e.contentWidth() - 1
	switch {
	case col < e.offset.X:
		e.offset.X = col
	case col > e.offset.X+last:
		e.offset.X = col - last
	}
	e.cursor.X = col - e.offset.X
}

// scrollToLine puts the cursor on absolute row y, moving offset.Y only as
// far as needed to keep it visible.
func (e *Editor) scrollToLine(y int) {
	last := e.lastScreenRow()
	switch {
	case y < e.offset.Y:
		e.offset.Y = y
	case y > e.offset.Y+last:
		e.offset.Y = y - last
	}
	e.cursor.Y = y - e.offset.Y
}

// moveLeft steps back one grapheme. At the left edge the view scrolls by the
// grapheme's width and the cursor keeps its screen column.
func (e *Editor) moveLeft() {
	col := e.column()
	if col == 0 {
		return
	}
	w := e.currentRow().WidthBefore(col)
	switch {
	case e.cursor.X-w >= 0:
		e.cursor.X -= w
	case e.offset.X >= w:
		e.offset.X -= w
	default:
		e.scrollToColumn(col - w)
	}
	e.graphemeIndex--
}

// moveRight steps forward one grapheme. At the right edge the view scrolls
// by the grapheme's width and the cursor keeps its screen column.
func (e *Editor) moveRight() {
	r := e.currentRow()
	col := e.column()
	if col >= r.Length() {
		return
	}
	w := r.WidthAt(col)
	if e.cursor.X+w > e.contentWidth()-1 {
		e.offset.X += w
	} else {
		e.cursor.X += w
	}
	e.graphemeIndex++
}

func (e *Editor) moveUp() {
	if e.line() == 0 {
		return
	}
	e.scrollToLine(e.line() - 1)
	e.settle()
}

func (e *Editor) moveDown() {
	if e.line()+1 >= e.doc.Len() {
		return
	}
	e.scrollToLine(e.line() + 1)
	e.settle()
}

// settle runs after the cursor lands on a different row: it snaps to the
// row end, steps off the middle of any wide grapheme and recomputes the
// grapheme index from the column.
func (e *Editor) settle() {
	e.snap()
	e.fixBoundary()
	e.recalculateGraphemes()
}

// snap moves the cursor to the end of the row when the column is at or past
// it, the same way a Home then End leap would.
func (e *Editor) snap() {
	if e.column() >= e.currentRow().Length() {
		e.leapHome()
		e.leapEnd()
	}
}

// fixBoundary retreats the cursor one cell at a time until it sits on the
// first column of a grapheme.
func (e *Editor) fixBoundary() {
	r := e.currentRow()
	for col := e.column(); col > 0 && !r.IsBoundary(col); col-- {
		e.scrollToColumn(col - 1)
	}
}

func (e *Editor) recalculateGraphemes() {
	e.graphemeIndex = e.currentRow().IndexAt(e.column())
}

func (e *Editor) leapHome() {
	e.offset.X = 0
	e.cursor.X = 0
	e.graphemeIndex = 0
}

func (e *Editor) leapEnd() {
	r := e.currentRow()
	length := r.Length()
	width := e.contentWidth()
	if length >= width {
		e.offset.X = length - (width - 1)
		e.cursor.X = width - 1
	} else {
		e.offset.X = 0
		e.cursor.X = length
	}
	e.graphemeIndex = r.Count()
}

func (e *Editor) pageUp() {
	e.cursor.Y = 0
	e.settle()
}

func (e *Editor) pageDown() {
	e.cursor.Y = max(0, min(e.doc.Len()-1-e.offset.Y, e.lastScreenRow()))
	e.settle()
}

// visible reports whether the absolute position p is inside the viewport.
func (e *Editor) visible(p position.Position) bool {
	return e.rowVisible(p.Y) && e.columnVisible(p.X)
}

func (e *Editor) rowVisible(y int) bool {
	return y >= e.offset.Y && y <= e.offset.Y+e.lastScreenRow()
}

func (e *Editor) columnVisible(x int) bool {
	return x >= e.offset.X && x < e.offset.X+e.contentWidth()
}

// gotoAhead moves to p, a position after the cursor. If the row is off
// screen it is brought in at the bottom edge.
func (e *Editor) gotoAhead(p position.Position) {
	if !e.rowVisible(p.Y) {
		e.offset.Y = max(0, p.Y-e.lastScreenRow())
	}
	e.cursor.Y = p.Y - e.offset.Y
	e.gotoColumn(p.X)
}

// gotoBehind moves to p, a position before the cursor. If the row is off
// screen it is brought in at the top edge, unless it lies on the first
// screen of the document.
func (e *Editor) gotoBehind(p position.Position) {
	if !e.rowVisible(p.Y) {
		if p.Y <= e.lastScreenRow() {
			e.offset.Y = 0
		} else {
			e.offset.Y = p.Y
		}
	}
	e.cursor.Y = p.Y - e.offset.Y
	e.gotoColumn(p.X)
}

func (e *Editor) gotoColumn(x int) {
	switch {
	case e.columnVisible(x):
	case x < e.contentWidth():
		e.offset.X = 0
	default:
		e.offset.X = x
	}
	e.cursor.X = x - e.offset.X
	e.recalculateGraphemes()
}

// place puts the cursor on absolute position p with the least scrolling.
// Positions outside the document are pulled back onto its last row and the
// end of the row, and columns inside a wide grapheme onto its first cell.
func (e *Editor) place(p position.Position) {
	y := max(0, min(p.Y, e.doc.Len()-1))
	r := e.doc.Row(y)
	x := max(0, min(p.X, r.Length()))
	for x > 0 && !r.IsBoundary(x) {
		x--
	}
	e.scrollToLine(y)
	e.scrollToColumn(x)
	e.graphemeIndex = r.IndexAt(x)
}

// clamp re-establishes the viewport bounds after the terminal or the gutter
// changed size, keeping the cursor on the same document position.
func (e *Editor) clamp() {
	e.place(e.Position())
}
