// Package row provides the line store used by documents: a single mutable
// line of text kept as a sequence of grapheme clusters.
//
// Three units of measurement meet in a row:
//
//  1. Bytes: the storage unit of the underlying Go string.
//  2. Graphemes: the clusters a user perceives as one character. Insert and
//     Delete address graphemes by index.
//  3. Columns: terminal cells. Length, Boundaries and Render work in columns.
//     Every grapheme occupies at least one column; wide clusters (CJK, most
//     emoji) occupy two.
//
// Clusters are stored as they were inserted and are never re-segmented after
// construction, so inserting a lone combining mark next to a base character
// yields two graphemes rather than silently merging them. That keeps every
// insert exactly invertible by a delete at the same index.
package row

import (
	"sort"
	"strings"

	"github.com/rivo/uniseg"

	"github.com/shelltips/ox/internal/renderer/gutter"
)

// Row is a single line of text.
type Row struct {
	graphemes []string
	widths    []int
	length    int
}

// New segments s into grapheme clusters and returns the resulting row.
func New(s string) *Row {
	r := &Row{}
	state := -1
	for len(s) > 0 {
		var cluster string
		var boundaries int
		cluster, s, boundaries, state = uniseg.StepString(s, state)
		w := clampWidth(boundaries >> uniseg.ShiftWidth)
		r.graphemes = append(r.graphemes, cluster)
		r.widths = append(r.widths, w)
		r.length += w
	}
	return r
}

// Width returns the number of columns a single grapheme cluster occupies.
// Zero-width clusters (control characters, lone combining marks) are given
// one column so the cursor can always address them.
func Width(cluster string) int {
	return clampWidth(uniseg.StringWidth(cluster))
}

func clampWidth(w int) int {
	if w < 1 {
		return 1
	}
	return w
}

// String returns the text of the row.
func (r *Row) String() string {
	return strings.Join(r.graphemes, "")
}

// Length returns the display width of the row in columns.
func (r *Row) Length() int {
	return r.length
}

// Count returns the number of grapheme clusters in the row.
func (r *Row) Count() int {
	return len(r.graphemes)
}

// Chars returns a copy of the row's grapheme clusters.
func (r *Row) Chars() []string {
	out := make([]string, len(r.graphemes))
	copy(out, r.graphemes)
	return out
}

// Jumps returns a copy of the per-grapheme display widths.
func (r *Row) Jumps() []int {
	out := make([]int, len(r.widths))
	copy(out, r.widths)
	return out
}

// Boundaries returns the column at which each grapheme starts, in ascending
// order. The row length itself is not included.
func (r *Row) Boundaries() []int {
	out := make([]int, len(r.widths))
	col := 0
	for i, w := range r.widths {
		out[i] = col
		col += w
	}
	return out
}

// IsBoundary reports whether col is the first column of a grapheme or the
// end of the row.
func (r *Row) IsBoundary(col int) bool {
	if col == r.length {
		return true
	}
	b := r.Boundaries()
	i := sort.SearchInts(b, col)
	return i < len(b) && b[i] == col
}

// Grapheme returns the cluster at the given grapheme index.
func (r *Row) Grapheme(index int) (string, bool) {
	if index < 0 || index >= len(r.graphemes) {
		return "", false
	}
	return r.graphemes[index], true
}

// ColumnOf returns the column at which the grapheme with the given index
// starts. Indexes past the end map to the row length.
func (r *Row) ColumnOf(index int) int {
	if index <= 0 {
		return 0
	}
	if index >= len(r.widths) {
		return r.length
	}
	col := 0
	for _, w := range r.widths[:index] {
		col += w
	}
	return col
}

// IndexAt converts a column to a grapheme index by accumulating widths until
// the running total reaches or passes col.
func (r *Row) IndexAt(col int) int {
	total := 0
	for i, w := range r.widths {
		if total >= col {
			return i
		}
		total += w
	}
	return len(r.widths)
}

// WidthAt returns the width of the grapheme occupying col.
// Columns at or past the end of the row report a width of one.
func (r *Row) WidthAt(col int) int {
	if col < 0 {
		return 1
	}
	total := 0
	for _, w := range r.widths {
		if col < total+w {
			return w
		}
		total += w
	}
	return 1
}

// WidthBefore returns the width of the grapheme that ends at or contains
// col-1, which is the distance a cursor at col travels when moving left.
func (r *Row) WidthBefore(col int) int {
	if col <= 0 {
		return 1
	}
	return r.WidthAt(col - 1)
}

// Insert inserts a grapheme cluster before the grapheme at index.
// The index is clamped to [0, Count()].
func (r *Row) Insert(cluster string, index int) {
	if cluster == "" {
		return
	}
	index = clampIndex(index, len(r.graphemes))
	w := Width(cluster)

	r.graphemes = append(r.graphemes, "")
	copy(r.graphemes[index+1:], r.graphemes[index:])
	r.graphemes[index] = cluster

	r.widths = append(r.widths, 0)
	copy(r.widths[index+1:], r.widths[index:])
	r.widths[index] = w

	r.length += w
}

// Delete removes the grapheme at index and returns it.
// It returns false if the index is out of range.
func (r *Row) Delete(index int) (string, bool) {
	if index < 0 || index >= len(r.graphemes) {
		return "", false
	}
	cluster := r.graphemes[index]
	r.length -= r.widths[index]
	r.graphemes = append(r.graphemes[:index], r.graphemes[index+1:]...)
	r.widths = append(r.widths[:index], r.widths[index+1:]...)
	return cluster, true
}

// Split divides the row before the grapheme at index, returning the two
// halves as new rows. The receiver is left unchanged.
func (r *Row) Split(index int) (before, after *Row) {
	index = clampIndex(index, len(r.graphemes))
	before = &Row{
		graphemes: append([]string(nil), r.graphemes[:index]...),
		widths:    append([]int(nil), r.widths[:index]...),
	}
	after = &Row{
		graphemes: append([]string(nil), r.graphemes[index:]...),
		widths:    append([]int(nil), r.widths[index:]...),
	}
	for _, w := range before.widths {
		before.length += w
	}
	after.length = r.length - before.length
	return before, after
}

// Append adds the graphemes of other to the end of the row.
func (r *Row) Append(other *Row) {
	r.graphemes = append(r.graphemes, other.graphemes...)
	r.widths = append(r.widths, other.widths...)
	r.length += other.length
}

// Find returns the starting column of every occurrence of text that begins
// on a grapheme boundary, in ascending order.
func (r *Row) Find(text string) []int {
	if text == "" {
		return nil
	}
	s := r.String()
	var cols []int
	byteOff, col := 0, 0
	for i, g := range r.graphemes {
		if strings.HasPrefix(s[byteOff:], text) {
			cols = append(cols, col)
		}
		byteOff += len(g)
		col += r.widths[i]
	}
	return cols
}

// Render produces the displayable text of the row for a viewport that starts
// at column offsetX and is width cells wide, including a gutter of
// gutterWidth cells holding the 1-indexed rowNumber.
// Wide graphemes cut by either edge are replaced by spaces.
func (r *Row) Render(offsetX, width, rowNumber, gutterWidth int) string {
	var sb strings.Builder
	if gutterWidth > 0 {
		sb.WriteString(gutter.Format(rowNumber, gutterWidth))
	}

	avail := width - gutterWidth
	if avail <= 0 {
		return sb.String()
	}
	end := offsetX + avail

	col := 0
	for i, g := range r.graphemes {
		w := r.widths[i]
		start, stop := col, col+w
		col = stop
		if stop <= offsetX {
			continue
		}
		if start >= end {
			break
		}
		if start < offsetX || stop > end {
			visible := min(stop, end) - max(start, offsetX)
			sb.WriteString(strings.Repeat(" ", visible))
			continue
		}
		sb.WriteString(displayable(g))
	}
	return sb.String()
}

// displayable returns what to draw for a cluster. Clusters the terminal would
// draw with no width are shown as a single placeholder cell.
func displayable(cluster string) string {
	if uniseg.StringWidth(cluster) > 0 {
		return cluster
	}
	if cluster == "\t" {
		return " "
	}
	return "?"
}

func clampIndex(index, n int) int {
	if index < 0 {
		return 0
	}
	if index > n {
		return n
	}
	return index
}
