package history

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelltips/ox/internal/engine/position"
)

func noop(Event) error { return nil }

// Event Tests

func TestEventKindsAndPositions(t *testing.T) {
	at := position.New(3, 1)
	tests := []struct {
		ev   Event
		kind Kind
	}{
		{InsertTab{At: at, Width: 4}, KindInsertTab},
		{InsertChar{At: at, Char: "x"}, KindInsertChar},
		{DeleteChar{At: at, Char: "x"}, KindDeleteChar},
		{SplitAtStart{At: at}, KindSplitAtStart},
		{SplitAtEnd{At: at}, KindSplitAtEnd},
		{SplitAtMiddle{At: at, Breakpoint: 2}, KindSplitAtMiddle},
		{JoinLines{At: at, Breakpoint: 5}, KindJoinLines},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.ev.Kind())
			assert.Equal(t, at, tt.ev.Pos())
			assert.Contains(t, tt.ev.String(), tt.kind.String())
		})
	}
}

func TestEventString(t *testing.T) {
	assert.Equal(t, `InsertChar(3, 1) "x"`, InsertChar{At: position.New(3, 1), Char: "x"}.String())
	assert.Equal(t, "SplitAtMiddle(2, 0) at 2", SplitAtMiddle{At: position.New(2, 0), Breakpoint: 2}.String())
	assert.Equal(t, "Unknown", Kind(99).String())
}

// History Tests

func TestHistoryRecordClearsRedo(t *testing.T) {
	h := New(10)
	h.Record(InsertChar{Char: "a"})
	h.Record(InsertChar{Char: "b"})

	_, err := h.Undo(noop)
	require.NoError(t, err)
	assert.Equal(t, 1, h.RedoCount())

	h.Record(InsertChar{Char: "c"})
	assert.Equal(t, 0, h.RedoCount())
	assert.Equal(t, 2, h.UndoCount())

	_, err = h.Redo(noop)
	assert.ErrorIs(t, err, ErrNothingToRedo)
}

func TestHistoryUndoRedoMovesSameEvent(t *testing.T) {
	h := New(10)
	ev := SplitAtMiddle{At: position.New(2, 0), Breakpoint: 2}
	h.Record(ev)

	var applied []Event
	apply := func(e Event) error {
		applied = append(applied, e)
		return nil
	}

	got, err := h.Undo(apply)
	require.NoError(t, err)
	assert.Equal(t, ev, got)
	assert.Equal(t, 0, h.UndoCount())
	assert.Equal(t, 1, h.RedoCount())

	got, err = h.Redo(apply)
	require.NoError(t, err)
	assert.Equal(t, ev, got)
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 0, h.RedoCount())

	assert.Equal(t, []Event{ev, ev}, applied)
}

func TestHistoryEmptyStacks(t *testing.T) {
	h := New(0)
	assert.Equal(t, DefaultMaxEntries, h.MaxEntries())

	called := false
	apply := func(Event) error {
		called = true
		return nil
	}

	_, err := h.Undo(apply)
	assert.ErrorIs(t, err, ErrNothingToUndo)
	_, err = h.Redo(apply)
	assert.ErrorIs(t, err, ErrNothingToRedo)
	assert.False(t, called)
}

func TestHistoryApplyFailureRestoresEntry(t *testing.T) {
	h := New(10)
	ev := InsertChar{Char: "x"}
	h.Record(ev)

	boom := errors.New("boom")
	_, err := h.Undo(func(Event) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 0, h.RedoCount())

	_, err = h.Undo(noop)
	require.NoError(t, err)

	_, err = h.Redo(func(Event) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, h.RedoCount())
}

func TestHistoryMaxEntries(t *testing.T) {
	h := New(3)
	for _, c := range []string{"a", "b", "c", "d", "e"} {
		h.Record(InsertChar{Char: c})
	}
	assert.Equal(t, 3, h.UndoCount())

	top, err := h.Undo(noop)
	require.NoError(t, err)
	assert.Equal(t, InsertChar{Char: "e"}, top)

	h.SetMaxEntries(1)
	assert.Equal(t, 1, h.UndoCount())
	assert.Equal(t, 1, h.RedoCount())

	got, err := h.Undo(noop)
	require.NoError(t, err)
	assert.Equal(t, InsertChar{Char: "d"}, got)
	assert.Equal(t, 1, h.RedoCount(), "redo is capped too")
}
