package editor

import (
	"github.com/shelltips/ox/internal/engine/history"
	"github.com/shelltips/ox/internal/engine/position"
	"github.com/shelltips/ox/internal/engine/row"
)

// character inserts a grapheme at the cursor.
func (e *Editor) character(ch string) {
	e.commit(history.InsertChar{At: e.Position(), Char: ch})
}

// tab inserts tab_width spaces as a single edit.
func (e *Editor) tab() {
	e.commit(history.InsertTab{At: e.Position(), Width: e.cfg.Editor.TabWidth})
}

// enter splits the current row at the cursor.
func (e *Editor) enter() {
	at := e.Position()
	r := e.currentRow()
	switch {
	case at.X == 0:
		e.commit(history.SplitAtStart{At: at})
	case e.graphemeIndex >= r.Count():
		e.commit(history.SplitAtEnd{At: at})
	default:
		e.commit(history.SplitAtMiddle{At: at, Breakpoint: e.graphemeIndex})
	}
}

// backspace removes the grapheme before the cursor, or joins the row onto
// the previous one when the cursor is at its start.
func (e *Editor) backspace() {
	at := e.Position()
	switch {
	case at.X == 0 && at.Y == 0:
		return
	case at.X == 0:
		prev := e.doc.Row(at.Y - 1)
		e.commit(history.JoinLines{At: at, Breakpoint: prev.Count()})
	default:
		r := e.currentRow()
		ch, _ := r.Grapheme(e.graphemeIndex - 1)
		e.commit(history.DeleteChar{At: at, Char: ch})
	}
}

// commit applies a new edit at the cursor and records it.
func (e *Editor) commit(ev history.Event) {
	e.forward(ev)
	e.doc.History().Record(ev)
	e.modified()
}

// modified marks the document as changed.
func (e *Editor) modified() {
	e.dirty = true
	e.showWelcome = false
}

// forward performs ev with the cursor at ev.Pos(), leaving the cursor where
// the edit left it.
func (e *Editor) forward(ev history.Event) {
	at := ev.Pos()
	switch ev := ev.(type) {
	case history.InsertChar:
		e.currentRow().Insert(ev.Char, e.graphemeIndex)
		e.moveRight()
	case history.InsertTab:
		for range ev.Width {
			e.currentRow().Insert(" ", e.graphemeIndex)
			e.moveRight()
		}
	case history.DeleteChar:
		e.moveLeft()
		e.currentRow().Delete(e.graphemeIndex)
	case history.SplitAtStart:
		e.doc.InsertRow(at.Y, row.New(""))
		e.place(position.New(0, at.Y+1))
	case history.SplitAtEnd:
		e.doc.InsertRow(at.Y+1, row.New(""))
		e.place(position.New(0, at.Y+1))
	case history.SplitAtMiddle:
		e.doc.SplitRow(at.Y, ev.Breakpoint)
		e.place(position.New(0, at.Y+1))
	case history.JoinLines:
		bp := e.doc.JoinRows(at.Y - 1)
		e.place(position.New(e.doc.Row(at.Y-1).ColumnOf(bp), at.Y-1))
	}
}
