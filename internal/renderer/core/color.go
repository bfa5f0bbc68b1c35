// Package core holds the cell, style and colour types shared by the renderer
// and its backends.
package core

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

type colorKind uint8

const (
	kindDefault colorKind = iota
	kindPalette
	kindRGB
)

// Color is the terminal's default colour, a palette entry or a true colour.
// The zero Color is the terminal default.
type Color struct {
	kind    colorKind
	r, g, b uint8
}

// ColorDefault leaves the colour to the terminal.
var ColorDefault = Color{}

var (
	ColorBlack  = ColorFromRGB(0, 0, 0)
	ColorWhite  = ColorFromRGB(255, 255, 255)
	ColorRed    = ColorFromRGB(255, 0, 0)
	ColorYellow = ColorFromRGB(255, 255, 0)
	ColorGray   = ColorFromRGB(128, 128, 128)
)

func ColorFromRGB(r, g, b uint8) Color {
	return Color{kind: kindRGB, r: r, g: g, b: b}
}

// ColorFromIndex returns palette entry index.
func ColorFromIndex(index uint8) Color {
	return Color{kind: kindPalette, r: index}
}

// ColorFromHex parses "#rgb" or "#rrggbb"; the '#' is optional. The empty
// string and "default" give ColorDefault.
func ColorFromHex(s string) (Color, error) {
	if s == "" || strings.EqualFold(s, "default") {
		return ColorDefault, nil
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}
	r, g, b := c.RGB255()
	return ColorFromRGB(r, g, b), nil
}

func (c Color) IsDefault() bool { return c.kind == kindDefault }

// Palette returns the palette index of a palette colour.
func (c Color) Palette() (uint8, bool) {
	return c.r, c.kind == kindPalette
}

// RGB returns the components of a true colour.
func (c Color) RGB() (r, g, b uint8, ok bool) {
	return c.r, c.g, c.b, c.kind == kindRGB
}

func (c Color) Equals(other Color) bool { return c == other }

func (c Color) String() string {
	switch c.kind {
	case kindPalette:
		return fmt.Sprintf("idx(%d)", c.r)
	case kindRGB:
		return fmt.Sprintf("#%02X%02X%02X", c.r, c.g, c.b)
	}
	return "default"
}
