package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shelltips/ox/internal/engine/position"
	"github.com/shelltips/ox/internal/renderer/backend"
	"github.com/shelltips/ox/internal/renderer/statusline"
)

type promptCall struct {
	ev     PromptEvent
	buffer string
}

func recordPrompt(calls *[]promptCall) Reaction {
	return func(_ *Editor, ev PromptEvent, buffer string) {
		*calls = append(*calls, promptCall{ev, buffer})
	}
}

func TestPromptCollectsText(t *testing.T) {
	e, b := newTestEditor(t, 40, 10, "")
	b.PostString("ab世")
	b.PostKeys(backend.KeyEvent(backend.KeyBackspace), backend.KeyEvent(backend.KeyEnter))

	var calls []promptCall
	got, ok := e.Prompt("Name", recordPrompt(&calls))
	assert.True(t, ok)
	assert.Equal(t, "ab", got)

	char := PromptEvent{Kind: PromptCharPress}
	update := PromptEvent{Kind: PromptUpdate}
	assert.Equal(t, []promptCall{
		{char, "a"}, {update, "a"},
		{char, "ab"}, {update, "ab"},
		{char, "ab世"}, {update, "ab世"},
		{char, "ab"}, {update, "ab"},
	}, calls)
	assert.Equal(t, statusline.Message{Severity: statusline.Info, Text: "Name: ab"}, e.Message())
}

func TestPromptEscape(t *testing.T) {
	e, b := newTestEditor(t, 40, 10, "")
	b.PostString("x")
	b.PostKeys(backend.KeyEvent(backend.KeyEscape))

	var calls []promptCall
	got, ok := e.Prompt("Name", recordPrompt(&calls))
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.Equal(t, promptCall{PromptEvent{Kind: PromptKeyPress, Key: backend.KeyEscape}, "x"}, calls[len(calls)-1])
}

func TestPromptOtherKeys(t *testing.T) {
	e, b := newTestEditor(t, 40, 10, "")
	b.PostKeys(backend.KeyEvent(backend.KeyUp), backend.KeyEvent(backend.KeyEnter))

	var calls []promptCall
	got, ok := e.Prompt("Name", recordPrompt(&calls))
	assert.True(t, ok)
	assert.Empty(t, got)
	assert.Equal(t, []promptCall{
		{PromptEvent{Kind: PromptKeyPress, Key: backend.KeyUp}, ""},
		{PromptEvent{Kind: PromptUpdate}, ""},
	}, calls)
}

func TestPromptRendersLiveBuffer(t *testing.T) {
	e, b := newTestEditor(t, 40, 10, "")
	b.PostString("hey")
	b.PostKeys(backend.KeyEvent(backend.KeyEnter))

	before := b.ShowCount()
	_, ok := e.Prompt("Find", nil)
	assert.True(t, ok)
	assert.Equal(t, before+4, b.ShowCount(), "one frame on entry and one per key")
	assert.Equal(t, "Find: hey", b.Row(9))
}

func TestSearch(t *testing.T) {
	const text = "foo bar\nbaz foo\nfoo"

	tests := []struct {
		name string
		keys []backend.Event
		want position.Position
	}{
		{"first match", []backend.Event{backend.KeyEvent(backend.KeyEnter)}, position.New(0, 0)},
		{"next", []backend.Event{backend.KeyEvent(backend.KeyRight), backend.KeyEvent(backend.KeyEnter)}, position.New(4, 1)},
		{"next twice", []backend.Event{backend.KeyEvent(backend.KeyDown), backend.KeyEvent(backend.KeyDown), backend.KeyEvent(backend.KeyEnter)}, position.New(0, 2)},
		{"past last", []backend.Event{backend.KeyEvent(backend.KeyRight), backend.KeyEvent(backend.KeyRight), backend.KeyEvent(backend.KeyRight), backend.KeyEvent(backend.KeyEnter)}, position.New(0, 2)},
		{"back", []backend.Event{backend.KeyEvent(backend.KeyRight), backend.KeyEvent(backend.KeyRight), backend.KeyEvent(backend.KeyLeft), backend.KeyEvent(backend.KeyEnter)}, position.New(4, 1)},
		{"escape restores", []backend.Event{backend.KeyEvent(backend.KeyRight), backend.KeyEvent(backend.KeyEscape)}, position.New(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, b := newTestEditor(t, 40, 10, text)
			b.PostString("foo")
			b.PostKeys(tt.keys...)

			press(e, backend.KeyCtrlF)
			assert.Equal(t, tt.want, e.Position())
			assert.Equal(t, e.currentRow().IndexAt(e.column()), e.GraphemeIndex())
			assert.Equal(t, statusline.Message{Severity: statusline.Info, Text: "Search exited"}, e.Message())
		})
	}
}

func TestSearchStartsFromCursor(t *testing.T) {
	e, b := newTestEditor(t, 40, 10, "foo bar\nbaz foo\nfoo")
	press(e, backend.KeyDown)

	b.PostString("foo")
	b.PostKeys(backend.KeyEvent(backend.KeyEnter))
	press(e, backend.KeyCtrlF)
	assert.Equal(t, position.New(4, 1), e.Position())
}

func TestSearchRetypeReturnsToStart(t *testing.T) {
	e, b := newTestEditor(t, 40, 10, "ab\nax\nab")
	b.PostString("ax")
	b.PostKeys(backend.KeyEvent(backend.KeyBackspace), backend.KeyEvent(backend.KeyEnter))

	press(e, backend.KeyCtrlF)
	assert.Equal(t, position.New(0, 0), e.Position(), "erasing a character searches again from the start")
}

func TestSearchShowsMatchCount(t *testing.T) {
	e, _ := newTestEditor(t, 40, 10, "foo bar\nbaz foo\nfoo")
	react := searchReaction(e.saveView(), e.Position())

	react(e, PromptEvent{Kind: PromptUpdate}, "o")
	assert.Equal(t, "Search: o (6 matches)", e.Message().Text)

	react(e, PromptEvent{Kind: PromptUpdate}, "bar")
	assert.Equal(t, "Search: bar (1 match)", e.Message().Text)

	react(e, PromptEvent{Kind: PromptUpdate}, "qux")
	assert.Equal(t, "Search: qux (0 matches)", e.Message().Text)
}

func TestSearchScrollsToMatch(t *testing.T) {
	text := ""
	for i := 0; i < 30; i++ {
		text += "line\n"
	}
	text += "needle\n"
	e, b := newTestEditor(t, 40, 10, text)
	b.PostString("needle")
	b.PostKeys(backend.KeyEvent(backend.KeyEnter))

	press(e, backend.KeyCtrlF)
	assert.Equal(t, position.New(0, 30), e.Position())
	assert.Equal(t, 7, e.Cursor().Y)
	assert.Equal(t, 23, e.Offset().Y)
}
