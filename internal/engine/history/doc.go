// Package history provides the undo/redo log for the text editor.
//
// The log is event sourced: each edit is recorded as an immutable Event that
// carries the absolute document position at which it happened and exactly the
// payload needed to invert it. No document snapshots are kept, so undoing or
// redoing an edit costs time proportional to the edit, not the document.
//
// # Events
//
// Event is a closed sum type. The concrete variants are:
//   - InsertTab: a tab expanded to Width spaces, recorded as one unit
//   - InsertChar: a grapheme typed at a position
//   - DeleteChar: a grapheme removed by backspace
//   - SplitAtStart, SplitAtEnd, SplitAtMiddle: the return key
//   - JoinLines: backspace at the start of a row
//
// Consumers dispatch over the variants with a type switch.
//
// # History Stack
//
// The History type manages the undo and redo stacks:
//
//	h := history.New(1000) // Max 1000 undo entries
//
//	// Record an edit that has already been applied
//	h.Record(history.InsertChar{At: pos, Char: "x"})
//
//	// Undo/redo with a caller-supplied applier
//	ev, err := h.Undo(func(ev history.Event) error { ... })
//	ev, err = h.Redo(func(ev history.Event) error { ... })
//
// Recording always clears the redo stack; history is linear.
package history
