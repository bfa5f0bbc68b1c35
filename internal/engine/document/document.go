// Package document holds an ordered list of rows together with the file it
// was loaded from and the undo/redo history of edits made to it.
package document

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/shelltips/ox/internal/engine/history"
	"github.com/shelltips/ox/internal/engine/position"
	"github.com/shelltips/ox/internal/engine/row"
	"github.com/shelltips/ox/internal/filetype"
	"github.com/shelltips/ox/internal/renderer/gutter"
)

// UnnamedName is the display name of a document without a file.
const UnnamedName = "[No Name]"

// Document is the text being edited.
//
// A document always contains at least one row.
type Document struct {
	// Rows holds the lines of the document in order.
	Rows []*row.Row

	// Name is the display name, the base of Path or UnnamedName.
	Name string

	// Path is the file the document is saved to; empty if never saved.
	Path string

	// Type is the file type label set by Identify.
	Type string

	// LineOffset is the gutter width in cells, set by RecalculateOffset.
	LineOffset int

	crlf            bool
	trailingNewline bool
	history         *history.History
}

// New creates an empty unnamed document.
func New() *Document {
	d := &Document{
		Rows:            []*row.Row{row.New("")},
		Name:            UnnamedName,
		trailingNewline: true,
		history:         history.New(history.DefaultMaxEntries),
	}
	d.Identify()
	d.RecalculateOffset()
	return d
}

// FromString creates an unnamed document holding text.
func FromString(text string) *Document {
	d := New()
	d.setText(text)
	d.RecalculateOffset()
	return d
}

// Open reads the file at path into a new document.
func Open(path string) (*Document, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, newOpError("open", path, err)
	}
	if info.IsDir() {
		return nil, newOpError("open", path, ErrIsDirectory)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, newOpError("open", path, err)
	}

	d := New()
	d.Path = path
	d.Name = filepath.Base(path)
	d.setText(string(data))
	d.Identify()
	d.RecalculateOffset()
	return d, nil
}

func (d *Document) setText(text string) {
	d.crlf = strings.Contains(text, "\r\n")
	if d.crlf {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}
	d.trailingNewline = text == "" || strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")

	lines := strings.Split(text, "\n")
	d.Rows = make([]*row.Row, len(lines))
	for i, l := range lines {
		d.Rows[i] = row.New(l)
	}
}

// History returns the document's undo/redo log.
func (d *Document) History() *history.History {
	return d.history
}

// Len returns the number of rows.
func (d *Document) Len() int {
	return len(d.Rows)
}

// Row returns the row at index y, or nil if y is out of range.
func (d *Document) Row(y int) *row.Row {
	if y < 0 || y >= len(d.Rows) {
		return nil
	}
	return d.Rows[y]
}

// InsertRow inserts r so that it becomes row y.
func (d *Document) InsertRow(y int, r *row.Row) {
	y = max(0, min(y, len(d.Rows)))
	d.Rows = append(d.Rows, nil)
	copy(d.Rows[y+1:], d.Rows[y:])
	d.Rows[y] = r
	d.RecalculateOffset()
}

// RemoveRow deletes row y and returns it. Removing the only row leaves a
// single empty row in its place.
func (d *Document) RemoveRow(y int) *row.Row {
	if y < 0 || y >= len(d.Rows) {
		return nil
	}
	r := d.Rows[y]
	if len(d.Rows) == 1 {
		d.Rows[0] = row.New("")
		return r
	}
	d.Rows = append(d.Rows[:y], d.Rows[y+1:]...)
	d.RecalculateOffset()
	return r
}

// SplitRow breaks row y before grapheme index, moving the remainder onto a
// new row y+1.
func (d *Document) SplitRow(y, index int) {
	r := d.Row(y)
	if r == nil {
		return
	}
	before, after := r.Split(index)
	d.Rows[y] = before
	d.InsertRow(y+1, after)
}

// JoinRows appends row y+1 onto row y and removes it. It returns the number
// of graphemes row y held before the join.
func (d *Document) JoinRows(y int) int {
	r, next := d.Row(y), d.Row(y+1)
	if r == nil || next == nil {
		return 0
	}
	breakpoint := r.Count()
	r.Append(next)
	d.RemoveRow(y + 1)
	return breakpoint
}

// Identify determines the document's file type from its name.
func (d *Document) Identify() string {
	if d.Path == "" {
		d.Type = filetype.Unknown
	} else {
		d.Type = filetype.Identify(d.Path)
	}
	return d.Type
}

// RecalculateOffset updates LineOffset for the current number of rows.
func (d *Document) RecalculateOffset() {
	d.LineOffset = gutter.Width(len(d.Rows))
}

// Scan returns the position of every occurrence of text, ordered by row and
// then by column.
func (d *Document) Scan(text string) []position.Position {
	var out []position.Position
	for y, r := range d.Rows {
		for _, x := range r.Find(text) {
			out = append(out, position.New(x, y))
		}
	}
	return out
}

// Text returns the document content as it would be written to disk.
func (d *Document) Text() string {
	sep := "\n"
	if d.crlf {
		sep = "\r\n"
	}
	lines := make([]string, len(d.Rows))
	for i, r := range d.Rows {
		lines[i] = r.String()
	}
	text := strings.Join(lines, sep)
	if d.trailingNewline && text != "" {
		text += sep
	}
	return text
}

// Save writes the document to its path.
func (d *Document) Save() error {
	if d.Path == "" {
		return newOpError("save", "", ErrNoPath)
	}
	if err := writeAtomic(d.Path, []byte(d.Text())); err != nil {
		return newOpError("save", d.Path, err)
	}
	return nil
}

// SaveAs writes the document to path and, on success, makes path the
// document's file.
func (d *Document) SaveAs(path string) error {
	if path == "" {
		return newOpError("save", "", ErrNoPath)
	}
	if err := writeAtomic(path, []byte(d.Text())); err != nil {
		return newOpError("save", path, err)
	}
	d.Path = path
	d.Name = filepath.Base(path)
	d.Identify()
	return nil
}

// writeAtomic writes data to a temp file beside path and renames it over
// path, keeping the permissions of any existing file.
func writeAtomic(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return ErrIsDirectory
		}
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)
	tempPath := filepath.Join(dir, fmt.Sprintf(".%s.%s.tmp", filepath.Base(path), uuid.NewString()))

	f, err := os.OpenFile(tempPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, mode)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tempPath)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}
