package core

// Attribute is a set of text attributes.
type Attribute uint8

const (
	AttrNone Attribute = 0
	AttrBold Attribute = 1 << iota
	AttrReverse
)

func (a Attribute) Has(attr Attribute) bool { return a&attr != 0 }

// Style is how a cell is drawn. The zero Style uses the terminal defaults.
type Style struct {
	Foreground Color
	Background Color
	Attributes Attribute
}

func DefaultStyle() Style { return Style{} }

func (s Style) WithForeground(fg Color) Style {
	s.Foreground = fg
	return s
}

func (s Style) WithBackground(bg Color) Style {
	s.Background = bg
	return s
}

func (s Style) Bold() Style {
	s.Attributes |= AttrBold
	return s
}

func (s Style) Reverse() Style {
	s.Attributes |= AttrReverse
	return s
}

func (s Style) Equals(other Style) bool { return s == other }
