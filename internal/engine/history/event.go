package history

import (
	"fmt"
	"strconv"

	"github.com/shelltips/ox/internal/engine/position"
)

// Position is an alias for position.Position for convenience.
type Position = position.Position

// Kind identifies an event variant.
type Kind int

const (
	KindInsertTab Kind = iota
	KindInsertChar
	KindDeleteChar
	KindSplitAtStart
	KindSplitAtEnd
	KindSplitAtMiddle
	KindJoinLines
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInsertTab:
		return "InsertTab"
	case KindInsertChar:
		return "InsertChar"
	case KindDeleteChar:
		return "DeleteChar"
	case KindSplitAtStart:
		return "SplitAtStart"
	case KindSplitAtEnd:
		return "SplitAtEnd"
	case KindSplitAtMiddle:
		return "SplitAtMiddle"
	case KindJoinLines:
		return "JoinLines"
	default:
		return "Unknown"
	}
}

// Event is a single recorded edit.
// Every event carries the absolute document position of the cursor before
// the edit was applied.
type Event interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Pos returns the absolute position before the edit.
	Pos() Position
	// String returns a description suitable for the command line.
	String() string

	sealed()
}

// InsertTab records a tab key press that inserted Width spaces at At.
type InsertTab struct {
	At    Position
	Width int
}

// InsertChar records Char typed at At.
type InsertChar struct {
	At   Position
	Char string
}

// DeleteChar records a backspace at At that removed Char,
// the grapheme immediately before At.
type DeleteChar struct {
	At   Position
	Char string
}

// SplitAtStart records a return pressed at column 0, which opened an empty
// row above the cursor.
type SplitAtStart struct {
	At Position
}

// SplitAtEnd records a return pressed at the end of a row, which opened an
// empty row below.
type SplitAtEnd struct {
	At Position
}

// SplitAtMiddle records a return pressed inside a row. Breakpoint is the
// number of graphemes left on the original row.
type SplitAtMiddle struct {
	At         Position
	Breakpoint int
}

// JoinLines records a backspace at column 0 of row At.Y, which appended the
// row to the previous one. Breakpoint is the grapheme count of the previous
// row before the join.
type JoinLines struct {
	At         Position
	Breakpoint int
}

func (InsertTab) Kind() Kind     { return KindInsertTab }
func (InsertChar) Kind() Kind    { return KindInsertChar }
func (DeleteChar) Kind() Kind    { return KindDeleteChar }
func (SplitAtStart) Kind() Kind  { return KindSplitAtStart }
func (SplitAtEnd) Kind() Kind    { return KindSplitAtEnd }
func (SplitAtMiddle) Kind() Kind { return KindSplitAtMiddle }
func (JoinLines) Kind() Kind     { return KindJoinLines }

func (e InsertTab) Pos() Position     { return e.At }
func (e InsertChar) Pos() Position    { return e.At }
func (e DeleteChar) Pos() Position    { return e.At }
func (e SplitAtStart) Pos() Position  { return e.At }
func (e SplitAtEnd) Pos() Position    { return e.At }
func (e SplitAtMiddle) Pos() Position { return e.At }
func (e JoinLines) Pos() Position     { return e.At }

func (InsertTab) sealed()     {}
func (InsertChar) sealed()    {}
func (DeleteChar) sealed()    {}
func (SplitAtStart) sealed()  {}
func (SplitAtEnd) sealed()    {}
func (SplitAtMiddle) sealed() {}
func (JoinLines) sealed()     {}

func (e InsertTab) String() string {
	return fmt.Sprintf("%s%s width %d", e.Kind(), e.At, e.Width)
}

func (e InsertChar) String() string {
	return fmt.Sprintf("%s%s %s", e.Kind(), e.At, strconv.Quote(e.Char))
}

func (e DeleteChar) String() string {
	return fmt.Sprintf("%s%s %s", e.Kind(), e.At, strconv.Quote(e.Char))
}

func (e SplitAtStart) String() string {
	return fmt.Sprintf("%s%s", e.Kind(), e.At)
}

func (e SplitAtEnd) String() string {
	return fmt.Sprintf("%s%s", e.Kind(), e.At)
}

func (e SplitAtMiddle) String() string {
	return fmt.Sprintf("%s%s at %d", e.Kind(), e.At, e.Breakpoint)
}

func (e JoinLines) String() string {
	return fmt.Sprintf("%s%s at %d", e.Kind(), e.At, e.Breakpoint)
}
