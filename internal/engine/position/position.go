// Package position defines the cell coordinate shared by the editor, the
// document and the undo log.
package position

import "fmt"

// Position is a 0-indexed cell coordinate.
// X is measured in display columns, not bytes or graphemes.
// Depending on context it is either screen-relative (cursor, scroll offset)
// or absolute within the document (cursor + offset).
type Position struct {
	X int
	Y int
}

// New returns the position (x, y).
func New(x, y int) Position {
	return Position{X: x, Y: y}
}

// Add returns the componentwise sum of p and other.
func (p Position) Add(other Position) Position {
	return Position{X: p.X + other.X, Y: p.Y + other.Y}
}

// Compare returns -1 if p comes before other in document order,
// 1 if it comes after, and 0 if they are equal.
func (p Position) Compare(other Position) int {
	switch {
	case p.Y < other.Y:
		return -1
	case p.Y > other.Y:
		return 1
	case p.X < other.X:
		return -1
	case p.X > other.X:
		return 1
	}
	return 0
}

// Before returns true if p comes strictly before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes strictly after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}
