// Package gutter formats the line number margin drawn to the left of each
// document row.
package gutter

import "strconv"

// Separator is the number of blank cells between a line number and the text.
const Separator = 1

// Width returns the total gutter width, in cells, for a document with the
// given number of rows: enough digits for the largest line number plus the
// separator.
func Width(lineCount int) int {
	return CalculateWidth(lineCount, 1) + Separator
}

// CalculateWidth calculates the minimum width needed to display line numbers
// for the given line count.
func CalculateWidth(lineCount int, minWidth int) int {
	digits := countDigits(lineCount)
	if digits < minWidth {
		return minWidth
	}
	return digits
}

// Format returns the 1-indexed line number for row, right-aligned in a gutter
// of the given total width (separator included).
func Format(row, width int) string {
	s := PadLeft(FormatNumber(row+1), width-Separator)
	for i := 0; i < Separator; i++ {
		s += " "
	}
	return s
}

// PadLeft pads a string with spaces on the left to the specified width.
func PadLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	padding := make([]byte, width-len(s))
	for i := range padding {
		padding[i] = ' '
	}
	return string(padding) + s
}

// FormatNumber converts a number to a string.
func FormatNumber(n int) string {
	return strconv.Itoa(n)
}

func countDigits(n int) int {
	if n <= 0 {
		return 1
	}
	digits := 0
	for n > 0 {
		digits++
		n /= 10
	}
	return digits
}
