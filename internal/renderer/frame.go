package renderer

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/shelltips/ox/internal/renderer/core"
)

// Span is a run of text drawn in one style.
type Span struct {
	Text  string
	Style core.Style
}

// Line is one terminal row. Cells after the last span are painted with the
// Fill style.
type Line struct {
	Spans []Span
	Fill  core.Style
}

// Plain returns a line holding s in the default style.
func Plain(s string) Line {
	return Styled(s, core.DefaultStyle())
}

// Styled returns a line holding s in style, padded with the same style.
func Styled(s string, style core.Style) Line {
	return Line{Spans: []Span{{Text: s, Style: style}}, Fill: style}
}

// Append adds a span to the line.
func (l *Line) Append(text string, style core.Style) {
	l.Spans = append(l.Spans, Span{Text: text, Style: style})
}

// String returns the text of the line without styling.
func (l Line) String() string {
	var sb strings.Builder
	for _, s := range l.Spans {
		sb.WriteString(s.Text)
	}
	return sb.String()
}

// Frame is a full screen of lines plus the hardware cursor position.
type Frame struct {
	Width, Height int
	Lines         []Line

	CursorX, CursorY int
	CursorVisible    bool
}

// NewFrame creates a frame of blank lines.
func NewFrame(width, height int) *Frame {
	f := &Frame{
		Width:  max(0, width),
		Height: max(0, height),
	}
	f.Lines = make([]Line, f.Height)
	for i := range f.Lines {
		f.Lines[i] = Line{Fill: core.DefaultStyle()}
	}
	return f
}

// Set replaces line y. Out of range rows are ignored.
func (f *Frame) Set(y int, line Line) {
	if y < 0 || y >= len(f.Lines) {
		return
	}
	f.Lines[y] = line
}

// SetCursor places the hardware cursor.
func (f *Frame) SetCursor(x, y int) {
	f.CursorX, f.CursorY = x, y
	f.CursorVisible = true
}

// Text returns the plain text of every line.
func (f *Frame) Text() []string {
	out := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = l.String()
	}
	return out
}

// placeLine writes the cells of one line through set, never past width.
// A wide grapheme that would straddle the right edge is replaced by spaces.
func placeLine(line Line, width int, set func(x int, c core.Cell)) {
	x := 0
	for _, span := range line.Spans {
		g := uniseg.NewGraphemes(span.Text)
		for g.Next() && x < width {
			cluster := g.Str()
			w := g.Width()
			if w < 1 {
				w = 1
				cluster = " "
			}
			if x+w > width {
				for ; x < width; x++ {
					set(x, core.EmptyCell().WithStyle(span.Style))
				}
				break
			}
			cell := core.NewGraphemeCell(cluster, span.Style)
			cell.Width = w
			set(x, cell)
			x += w
		}
	}
	for ; x < width; x++ {
		set(x, core.EmptyCell().WithStyle(line.Fill))
	}
}
