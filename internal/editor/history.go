package editor

import (
	"errors"
	"fmt"

	"github.com/shelltips/ox/internal/engine/history"
	"github.com/shelltips/ox/internal/engine/position"
	"github.com/shelltips/ox/internal/engine/row"
)

func (e *Editor) undo() {
	ev, err := e.doc.History().Undo(e.revert)
	if err != nil {
		e.historyFailed(err)
		return
	}
	e.modified()
	e.setInfo(ev.String())
}

func (e *Editor) redo() {
	ev, err := e.doc.History().Redo(e.replay)
	if err != nil {
		e.historyFailed(err)
		return
	}
	e.modified()
	e.setInfo(ev.String())
}

func (e *Editor) historyFailed(err error) {
	switch {
	case errors.Is(err, history.ErrNothingToUndo):
		e.setError("Empty undo stack")
	case errors.Is(err, history.ErrNothingToRedo):
		e.setError("Empty redo stack")
	default:
		e.logger.Error("history: %v", err)
		e.setError(err.Error())
	}
}

// replay re-applies an undone edit.
func (e *Editor) replay(ev history.Event) error {
	e.place(ev.Pos())
	e.forward(ev)
	return nil
}

// revert applies the inverse of ev and leaves the cursor on the position
// the edit was made at.
func (e *Editor) revert(ev history.Event) error {
	at := ev.Pos()
	switch ev := ev.(type) {
	case history.InsertChar:
		e.place(at)
		e.currentRow().Delete(e.graphemeIndex)
	case history.InsertTab:
		e.place(position.New(at.X+ev.Width, at.Y))
		for range ev.Width {
			e.moveLeft()
			e.currentRow().Delete(e.graphemeIndex)
		}
	case history.DeleteChar:
		e.place(position.New(at.X-row.Width(ev.Char), at.Y))
		e.currentRow().Insert(ev.Char, e.graphemeIndex)
		e.moveRight()
	case history.SplitAtStart:
		e.doc.RemoveRow(at.Y)
		e.place(at)
	case history.SplitAtEnd:
		e.doc.RemoveRow(at.Y + 1)
		e.place(at)
	case history.SplitAtMiddle:
		e.doc.JoinRows(at.Y)
		e.place(at)
	case history.JoinLines:
		e.doc.SplitRow(at.Y-1, ev.Breakpoint)
		e.place(at)
	default:
		return fmt.Errorf("cannot undo %T", ev)
	}
	return nil
}
