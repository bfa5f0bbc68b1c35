package renderer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shelltips/ox/internal/renderer/backend"
	"github.com/shelltips/ox/internal/renderer/core"
)

func newNull(t *testing.T, w, h int) *backend.NullBackend {
	t.Helper()
	b := backend.NewNullBackend(w, h)
	require.NoError(t, b.Init())
	return b
}

func TestRenderPlainLines(t *testing.T) {
	b := newNull(t, 10, 3)
	r := New(b)

	f := NewFrame(10, 3)
	f.Set(0, Plain("hello"))
	f.Set(2, Plain("abcdefghijklmnop"))
	f.Set(7, Plain("ignored"))
	f.SetCursor(2, 1)
	r.Render(f)

	assert.Equal(t, "hello", b.Row(0))
	assert.Equal(t, "", b.Row(1))
	assert.Equal(t, "abcdefghij", b.Row(2))

	x, y, visible := b.CursorPosition()
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
	assert.True(t, visible)
	assert.Equal(t, 1, b.ShowCount())
	assert.Equal(t, uint64(1), r.FrameCount())
}

func TestRenderWideGraphemes(t *testing.T) {
	b := newNull(t, 5, 1)
	r := New(b)

	f := NewFrame(5, 1)
	f.Set(0, Plain("ab世界"))
	r.Render(f)

	assert.Equal(t, "ab世", b.Row(0))
	assert.Equal(t, 2, b.GetCell(2, 0).Width)
	assert.Equal(t, ' ', b.GetCell(4, 0).Rune, "straddling grapheme becomes a space")
}

func TestRenderFillStyle(t *testing.T) {
	b := newNull(t, 6, 1)
	r := New(b)

	style := core.DefaultStyle().Reverse()
	f := NewFrame(6, 1)
	f.Set(0, Styled("ab", style))
	r.Render(f)

	for x := 0; x < 6; x++ {
		assert.True(t, b.GetCell(x, 0).Style.Attributes.Has(core.AttrReverse), "cell %d", x)
	}
}

func TestRenderHiddenCursor(t *testing.T) {
	b := newNull(t, 4, 1)
	b.ShowCursor(1, 0)
	New(b).Render(NewFrame(4, 1))

	_, _, visible := b.CursorPosition()
	assert.False(t, visible)
}

func TestLineString(t *testing.T) {
	var l Line
	l.Append("foo", core.DefaultStyle())
	l.Append(" bar", core.DefaultStyle().Bold())
	assert.Equal(t, "foo bar", l.String())

	f := NewFrame(3, 2)
	f.Set(1, l)
	assert.Equal(t, []string{"", "foo bar"}, f.Text())
}
