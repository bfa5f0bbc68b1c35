package renderer

import "github.com/shelltips/ox/internal/renderer/core"

// Theme holds the colours used to draw the editor.
type Theme struct {
	Background core.Color
	Foreground core.Color
	LineNumber core.Color
	StatusFG   core.Color
	StatusBG   core.Color
	Error      core.Color
	Warning    core.Color
}

// DefaultTheme returns the built-in colours.
func DefaultTheme() Theme {
	return Theme{
		Background: core.ColorDefault,
		Foreground: core.ColorDefault,
		LineNumber: core.ColorGray,
		StatusFG:   core.ColorBlack,
		StatusBG:   core.ColorFromRGB(0x9c, 0xcf, 0xd8),
		Error:      core.ColorRed,
		Warning:    core.ColorYellow,
	}
}

// Text is the style for document text.
func (t Theme) Text() core.Style {
	return core.DefaultStyle().WithForeground(t.Foreground).WithBackground(t.Background)
}

// Gutter is the style for line numbers and empty row markers.
func (t Theme) Gutter() core.Style {
	return t.Text().WithForeground(t.LineNumber)
}

// Status is the style of the status line.
func (t Theme) Status() core.Style {
	return core.DefaultStyle().WithForeground(t.StatusFG).WithBackground(t.StatusBG).Bold()
}
