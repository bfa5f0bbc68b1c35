package editor

import (
	"strings"

	"github.com/shelltips/ox/internal/renderer/backend"
)

// PromptEventKind identifies why a prompt reaction was invoked.
type PromptEventKind int

const (
	// PromptUpdate fires after every keystroke, once the command line shows
	// the current buffer.
	PromptUpdate PromptEventKind = iota
	// PromptCharPress fires when a character was typed or erased.
	PromptCharPress
	// PromptKeyPress fires for any other key, including Escape.
	PromptKeyPress
)

// PromptEvent is passed to a prompt reaction.
type PromptEvent struct {
	Kind PromptEventKind
	// Key is set for PromptKeyPress.
	Key backend.Key
}

// Reaction is called by Prompt as the user types. It receives the editor,
// the event and the text entered so far.
type Reaction func(e *Editor, ev PromptEvent, buffer string)

// Prompt reads a line of text on the command line. It returns the text and
// true when the user pressed Enter, or false when they pressed Escape.
// A nil reaction is allowed.
func (e *Editor) Prompt(label string, react Reaction) (string, bool) {
	if react == nil {
		react = func(*Editor, PromptEvent, string) {}
	}
	prefix := label + ": "
	var buf []string

	e.setInfo(prefix)
	e.render()
	for {
		ev, ok := e.readKey()
		if !ok {
			return "", false
		}

		switch {
		case ev.Key == backend.KeyEnter:
			return strings.Join(buf, ""), true
		case ev.Key == backend.KeyEscape:
			react(e, PromptEvent{Kind: PromptKeyPress, Key: ev.Key}, strings.Join(buf, ""))
			return "", false
		case ev.Key == backend.KeyBackspace:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
			react(e, PromptEvent{Kind: PromptCharPress}, strings.Join(buf, ""))
		case ev.Key == backend.KeyRune && !ev.Mod.Has(backend.ModCtrl) && !ev.Mod.Has(backend.ModAlt):
			buf = append(buf, string(ev.Rune))
			react(e, PromptEvent{Kind: PromptCharPress}, strings.Join(buf, ""))
		default:
			react(e, PromptEvent{Kind: PromptKeyPress, Key: ev.Key}, strings.Join(buf, ""))
		}

		text := strings.Join(buf, "")
		e.setInfo(prefix + text)
		react(e, PromptEvent{Kind: PromptUpdate}, text)
		e.clamp()
		e.render()
	}
}
