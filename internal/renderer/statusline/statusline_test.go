package statusline

import (
	"testing"

	"github.com/rivo/uniseg"
	"github.com/stretchr/testify/assert"

	"github.com/shelltips/ox/internal/renderer"
	"github.com/shelltips/ox/internal/renderer/core"
)

func TestStatusParts(t *testing.T) {
	s := Status{Name: "main.go", Dirty: true, Type: "Go", Line: 3, Total: 10, X: 4, Y: 2}
	assert.Equal(t, " main.go[+] │ Go", s.Left())
	assert.Equal(t, "3 / 10 │ (4, 2) ", s.Right())

	s.Dirty = false
	assert.Equal(t, " main.go │ Go", s.Left())
}

func TestAlign(t *testing.T) {
	tests := []struct {
		name        string
		left, right string
		width       int
		want        string
	}{
		{"padded", "ab", "cd", 8, "ab    cd"},
		{"exact", "ab", "cd", 4, "abcd"},
		{"left truncated", "abcdef", "xy", 6, "abc…xy"},
		{"right only", "abc", "xyz", 3, "xyz"},
		{"right truncated", "abc", "wxyz", 2, "wx"},
		{"zero width", "a", "b", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Align(tt.left, tt.right, tt.width)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlignWide(t *testing.T) {
	got := Align(" 世界.txt", "1 / 1 ", 20)
	assert.Equal(t, 20, uniseg.StringWidth(got))
}

func TestAlignKeepsGraphemesWhole(t *testing.T) {
	got := Align(" 👩‍💻 notes.txt", "1 / 1 ", 20)
	assert.Equal(t, 20, uniseg.StringWidth(got))

	assert.Equal(t, "a… ", Align("a👩‍💻b", "", 3), "the emoji sequence is dropped, not split")
	assert.Equal(t, "e\u0301…", Align("e\u0301xyz", "", 2))
}

func TestStatusLineStyle(t *testing.T) {
	theme := renderer.DefaultTheme()
	l := StatusLine(Status{Name: "x", Type: "Text", Line: 1, Total: 1}, 30, theme)
	assert.Equal(t, 30, uniseg.StringWidth(l.String()))
	assert.True(t, l.Fill.Attributes.Has(core.AttrBold))
	assert.True(t, l.Fill.Background.Equals(theme.StatusBG))
}

func TestCommandLineSeverity(t *testing.T) {
	theme := renderer.DefaultTheme()

	info := CommandLine(Message{Severity: Info, Text: "Search exited"}, 40, theme)
	assert.Equal(t, "Search exited", info.String())
	assert.False(t, info.Fill.Attributes.Has(core.AttrBold))

	errLine := CommandLine(Message{Severity: Error, Text: "Empty undo stack"}, 40, theme)
	assert.True(t, errLine.Fill.Foreground.Equals(theme.Error))
	assert.True(t, errLine.Fill.Attributes.Has(core.AttrBold))

	warn := CommandLine(Message{Severity: Warning, Text: "Unsaved Changes!"}, 8, theme)
	assert.Equal(t, "Unsaved ", warn.String())
	assert.True(t, warn.Fill.Foreground.Equals(theme.Warning))
}

func TestSeverityString(t *testing.T) {
	assert.Equal(t, "info", Info.String())
	assert.Equal(t, "warning", Warning.String())
	assert.Equal(t, "error", Error.String())
}
