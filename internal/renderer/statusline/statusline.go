// Package statusline builds the two bottom rows of the editor: the status
// line describing the document and the command line showing the latest
// message.
package statusline

import (
	"fmt"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/shelltips/ox/internal/renderer"
)

// Severity classifies a command line message.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "info"
	}
}

// Message is the content of the command line.
type Message struct {
	Severity Severity
	Text     string
}

// Separator divides the fields of the status line.
const Separator = "│"

// DirtyMarker follows the document name when there are unsaved changes.
const DirtyMarker = "[+]"

// Status is the information shown on the status line.
type Status struct {
	Name  string
	Dirty bool
	Type  string
	// Line is the 1-indexed current document line.
	Line  int
	Total int
	// X and Y are the on-screen cursor coordinates.
	X, Y int
}

// Left returns the left-hand part of the status line.
func (s Status) Left() string {
	name := s.Name
	if s.Dirty {
		name += DirtyMarker
	}
	return fmt.Sprintf(" %s %s %s", name, Separator, s.Type)
}

// Right returns the right-hand part of the status line.
func (s Status) Right() string {
	return fmt.Sprintf("%d / %d %s (%d, %d) ", s.Line, s.Total, Separator, s.X, s.Y)
}

// Align joins left and right with enough padding to fill width cells.
// When both do not fit, left is truncated first and then right. Widths are
// measured per grapheme cluster, the same way document rows are.
func Align(left, right string, width int) string {
	if width <= 0 {
		return ""
	}
	rw := uniseg.StringWidth(right)
	if rw >= width {
		return truncate(right, width, "")
	}
	left = truncate(left, width-rw, "…")
	pad := width - rw - uniseg.StringWidth(left)
	return left + strings.Repeat(" ", pad) + right
}

// truncate cuts s to at most width cells, never splitting a grapheme
// cluster. When s is cut, tail is appended within the width.
func truncate(s string, width int, tail string) string {
	if uniseg.StringWidth(s) <= width {
		return s
	}
	width -= uniseg.StringWidth(tail)
	var b strings.Builder
	used := 0
	state := -1
	for s != "" {
		var cluster string
		var boundaries int
		cluster, s, boundaries, state = uniseg.StepString(s, state)
		w := boundaries >> uniseg.ShiftWidth
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}
	return b.String() + tail
}

// StatusLine returns the status line for s at the given width.
func StatusLine(s Status, width int, theme renderer.Theme) renderer.Line {
	return renderer.Styled(Align(s.Left(), s.Right(), width), theme.Status())
}

// CommandLine returns the command line showing m.
func CommandLine(m Message, width int, theme renderer.Theme) renderer.Line {
	style := theme.Text()
	switch m.Severity {
	case Error:
		style = style.WithForeground(theme.Error).Bold()
	case Warning:
		style = style.WithForeground(theme.Warning).Bold()
	}
	return renderer.Styled(truncate(m.Text, max(0, width), ""), style)
}
