package editor

import (
	"fmt"

	"github.com/shelltips/ox/internal/engine/position"
	"github.com/shelltips/ox/internal/renderer/backend"
)

// view is a saved cursor and scroll position.
type view struct {
	cursor, offset position.Position
	graphemeIndex  int
}

func (e *Editor) saveView() view {
	return view{cursor: e.cursor, offset: e.offset, graphemeIndex: e.graphemeIndex}
}

func (e *Editor) restoreView(v view) {
	e.cursor, e.offset, e.graphemeIndex = v.cursor, v.offset, v.graphemeIndex
}

// search finds text interactively. Typing jumps to the first match at or
// after the starting position; the arrow keys step between matches; Escape
// returns to where the search began.
func (e *Editor) search() {
	e.Prompt("Search", searchReaction(e.saveView(), e.Position()))
	e.setInfo("Search exited")
}

// searchReaction returns the prompt reaction for a search that began with
// the view start, whose cursor was on origin.
func searchReaction(start view, origin position.Position) Reaction {
	return func(e *Editor, ev PromptEvent, text string) {
		switch ev.Kind {
		case PromptCharPress:
			e.restoreView(start)
			if text == "" {
				return
			}
			for _, p := range e.doc.Scan(text) {
				if !p.Before(origin) {
					e.gotoAhead(p)
					return
				}
			}
		case PromptKeyPress:
			switch ev.Key {
			case backend.KeyLeft, backend.KeyUp:
				e.previousMatch(text)
			case backend.KeyRight, backend.KeyDown:
				e.nextMatch(text)
			case backend.KeyEscape:
				e.restoreView(start)
			}
		case PromptUpdate:
			if text == "" {
				return
			}
			n := len(e.doc.Scan(text))
			e.setInfo(fmt.Sprintf("Search: %s (%s)", text, matches(n)))
		}
	}
}

func (e *Editor) nextMatch(text string) {
	if text == "" {
		return
	}
	cur := e.Position()
	for _, p := range e.doc.Scan(text) {
		if p.After(cur) {
			e.gotoAhead(p)
			return
		}
	}
}

func (e *Editor) previousMatch(text string) {
	if text == "" {
		return
	}
	cur := e.Position()
	points := e.doc.Scan(text)
	for i := len(points) - 1; i >= 0; i-- {
		if points[i].Before(cur) {
			e.gotoBehind(points[i])
			return
		}
	}
}

func matches(n int) string {
	if n == 1 {
		return "1 match"
	}
	return fmt.Sprintf("%d matches", n)
}
