package editor

import (
	"strings"

	"github.com/rivo/uniseg"

	"github.com/shelltips/ox/internal/renderer"
	"github.com/shelltips/ox/internal/renderer/gutter"
	"github.com/shelltips/ox/internal/renderer/statusline"
	"github.com/shelltips/ox/internal/version"
)

// EmptyRow marks screen rows past the end of the document.
const EmptyRow = "~"

// welcomeLines maps a row offset from a quarter of the screen height to the
// text drawn there while the welcome screen is up.
var welcomeLines = map[int]string{
	0: "Ox editor  v" + version.Version,
	1: "A small terminal text editor",
	3: "Ctrl + Q: Exit   ",
	4: "Ctrl + S: Save   ",
	5: "Ctrl + W: Save as",
}

func (e *Editor) render() {
	e.renderer.Render(e.frame())
}

// frame composes the full screen for the current state.
func (e *Editor) frame() *renderer.Frame {
	w, h := e.backend.Size()
	f := renderer.NewFrame(w, h)
	if h < reservedRows {
		return f
	}

	text := h - reservedRows
	for y := 0; y < text; y++ {
		f.Set(y, e.documentLine(y, w, h))
	}

	status := statusline.Status{
		Name:  e.doc.Name,
		Dirty: e.dirty,
		Type:  e.doc.Type,
		Line:  e.line() + 1,
		Total: e.doc.Len(),
		X:     e.cursor.X,
		Y:     e.cursor.Y,
	}
	f.Set(text, statusline.StatusLine(status, w, e.theme))
	f.Set(text+1, statusline.CommandLine(e.commandLine, w, e.theme))

	f.SetCursor(e.cursor.X+e.doc.LineOffset, e.cursor.Y)
	return f
}

// documentLine renders screen row y.
func (e *Editor) documentLine(y, width, height int) renderer.Line {
	if e.showWelcome {
		if msg, ok := welcomeLines[y-height/4]; ok {
			return e.welcomeLine(msg, width)
		}
	}

	line := renderer.Line{Fill: e.theme.Text()}
	index := e.offset.Y + y
	r := e.doc.Row(index)
	if r == nil {
		line.Append(EmptyRow, e.theme.Gutter())
		return line
	}

	gutterWidth := e.doc.LineOffset
	line.Append(gutter.Format(index, gutterWidth), e.theme.Gutter())
	line.Append(r.Render(e.offset.X, max(0, width-gutterWidth), index, 0), e.theme.Text())
	return line
}

// welcomeLine centres msg on the row after the empty row marker.
func (e *Editor) welcomeLine(msg string, width int) renderer.Line {
	line := renderer.Line{Fill: e.theme.Text()}
	line.Append(EmptyRow, e.theme.Gutter())
	pad := max(0, (width-uniseg.StringWidth(msg))/2-uniseg.StringWidth(EmptyRow))
	line.Append(strings.Repeat(" ", pad)+msg, e.theme.Text())
	return line
}
