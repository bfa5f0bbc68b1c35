package document

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelltips/ox/internal/engine/position"
	"github.com/shelltips/ox/internal/engine/row"
	"github.com/shelltips/ox/internal/filetype"
)

func TestNew(t *testing.T) {
	d := New()
	require.Equal(t, 1, d.Len())
	assert.Zero(t, d.Row(0).Count())
	assert.Equal(t, UnnamedName, d.Name)
	assert.Equal(t, filetype.Unknown, d.Type)
	assert.Equal(t, 2, d.LineOffset)
	assert.NotNil(t, d.History())
	assert.Equal(t, "", d.Text())
}

func TestFromString(t *testing.T) {
	tests := []struct {
		name string
		text string
		rows []string
	}{
		{"empty", "", []string{""}},
		{"single", "hello", []string{"hello"}},
		{"trailing newline", "a\nb\n", []string{"a", "b"}},
		{"blank lines", "a\n\nb", []string{"a", "", "b"}},
		{"crlf", "a\r\nb\r\n", []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := FromString(tt.text)
			require.Equal(t, len(tt.rows), d.Len())
			for i, want := range tt.rows {
				assert.Equal(t, want, d.Row(i).String())
			}
			assert.Equal(t, tt.text, d.Text())
		})
	}
}

func TestRowAccessOutOfRange(t *testing.T) {
	d := FromString("a")
	assert.Nil(t, d.Row(-1))
	assert.Nil(t, d.Row(1))
	assert.Nil(t, d.RemoveRow(5))
}

func TestInsertRemoveRow(t *testing.T) {
	d := FromString("a\nc")
	d.InsertRow(1, row.New("b"))
	assert.Equal(t, "a\nb\nc", d.Text())

	r := d.RemoveRow(0)
	assert.Equal(t, "a", r.String())
	assert.Equal(t, "b\nc", d.Text())

	d.RemoveRow(0)
	d.RemoveRow(0)
	require.Equal(t, 1, d.Len(), "a document never has zero rows")
	assert.Zero(t, d.Row(0).Count())
}

func TestSplitJoin(t *testing.T) {
	d := FromString("hello world")
	d.SplitRow(0, 5)
	require.Equal(t, 2, d.Len())
	assert.Equal(t, "hello", d.Row(0).String())
	assert.Equal(t, " world", d.Row(1).String())

	bp := d.JoinRows(0)
	assert.Equal(t, 5, bp)
	require.Equal(t, 1, d.Len())
	assert.Equal(t, "hello world", d.Row(0).String())

	assert.Equal(t, 0, d.JoinRows(0), "nothing to join")
}

func TestRecalculateOffset(t *testing.T) {
	d := FromString("")
	assert.Equal(t, 2, d.LineOffset)
	for i := 0; i < 9; i++ {
		d.InsertRow(0, row.New("x"))
	}
	assert.Equal(t, 10, d.Len())
	assert.Equal(t, 3, d.LineOffset)
}

func TestScan(t *testing.T) {
	d := FromString("foo bar\nbar\n世bar foo")
	got := d.Scan("bar")
	assert.Equal(t, []position.Position{
		{X: 4, Y: 0},
		{X: 0, Y: 1},
		{X: 2, Y: 2},
	}, got)
	assert.Empty(t, d.Scan("zzz"))
	assert.Empty(t, d.Scan(""))
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("package main\n\nfunc main() {}\n"), 0o644))

	d, err := Open(path)
	require.NoError(t, err)
	assert.Equal(t, "main.go", d.Name)
	assert.Equal(t, path, d.Path)
	assert.Equal(t, "Go", d.Type)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, "func main() {}", d.Row(2).String())
}

func TestOpenErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Open(filepath.Join(dir, "missing.txt"))
	require.Error(t, err)
	var opErr *OperationError
	require.True(t, errors.As(err, &opErr))
	assert.Equal(t, "open", opErr.Op)
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	_, err = Open(dir)
	assert.ErrorIs(t, err, ErrIsDirectory)
}

func TestSaveWithoutPath(t *testing.T) {
	d := FromString("x")
	assert.ErrorIs(t, d.Save(), ErrNoPath)
	assert.ErrorIs(t, d.SaveAs(""), ErrNoPath)
}

func TestSaveAsThenSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.md")

	d := FromString("")
	d.Row(0).Insert("h", 0)
	d.Row(0).Insert("i", 1)
	require.NoError(t, d.SaveAs(path))
	assert.Equal(t, "notes.md", d.Name)
	assert.Equal(t, "Markdown", d.Type)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hi\n", string(data))

	d.SplitRow(0, 1)
	require.NoError(t, d.Save())
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "h\ni\n", string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files are renamed away")
}

func TestSavePreservesFormat(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "win.txt")
	require.NoError(t, os.WriteFile(path, []byte("a\r\nb"), 0o600))

	d, err := Open(path)
	require.NoError(t, err)
	d.Row(1).Insert("c", 1)
	require.NoError(t, d.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a\r\nbc", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestSaveFailureKeepsPath(t *testing.T) {
	dir := t.TempDir()
	d := FromString("x")
	err := d.SaveAs(filepath.Join(dir, "no", "such", "dir", "f.txt"))
	require.Error(t, err)
	assert.Empty(t, d.Path)
	assert.Equal(t, UnnamedName, d.Name)
}

func TestOperationErrorString(t *testing.T) {
	tests := []struct {
		err  *OperationError
		want string
	}{
		{nil, ""},
		{&OperationError{Op: "save"}, "save"},
		{&OperationError{Op: "open", Target: "/f"}, "open /f"},
		{&OperationError{Op: "open", Target: "/f", Err: ErrIsDirectory}, "open /f: is a directory"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.err.Error())
	}
}
