package core

import "github.com/rivo/uniseg"

// Cell is one terminal cell holding a grapheme cluster. A wide cluster
// occupies Width cells; the cells it covers are not drawn separately.
type Cell struct {
	// Rune is the first code point of the cluster and Comb the rest.
	Rune rune
	Comb []rune

	Width int
	Style Style
}

// EmptyCell is a blank in the default style.
func EmptyCell() Cell {
	return Cell{Rune: ' ', Width: 1}
}

// NewGraphemeCell returns a cell displaying cluster. An empty cluster gives
// a blank cell in style.
func NewGraphemeCell(cluster string, style Style) Cell {
	if cluster == "" {
		return EmptyCell().WithStyle(style)
	}
	runes := []rune(cluster)
	c := Cell{Rune: runes[0], Width: uniseg.StringWidth(cluster), Style: style}
	if len(runes) > 1 {
		c.Comb = runes[1:]
	}
	return c
}

func (c Cell) WithStyle(style Style) Cell {
	c.Style = style
	return c
}

// String returns the cluster held by the cell.
func (c Cell) String() string {
	return string(c.Rune) + string(c.Comb)
}

func (c Cell) Equals(other Cell) bool {
	return c.String() == other.String() && c.Width == other.Width && c.Style == other.Style
}
