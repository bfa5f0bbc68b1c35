package history

import "errors"

var (
	ErrNothingToUndo = errors.New("empty undo stack")
	ErrNothingToRedo = errors.New("empty redo stack")
)

// DefaultMaxEntries is the undo depth used when none is configured.
const DefaultMaxEntries = 1000

// Applier applies an event to the document. Undo passes it the event whose
// inverse must be applied; Redo passes the event to re-apply.
type Applier func(ev Event) error

// History holds the undo and redo stacks of one document. It is not safe for
// concurrent use; the editor owns it exclusively.
type History struct {
	undo, redo []Event
	maxEntries int
}

// New returns an empty history holding at most maxEntries events per stack.
func New(maxEntries int) *History {
	if maxEntries <= 0 {
		maxEntries = DefaultMaxEntries
	}
	return &History{maxEntries: maxEntries}
}

// Record pushes an event that has already been applied onto the undo stack
// and clears the redo stack.
func (h *History) Record(ev Event) {
	h.undo = h.push(h.undo, ev)
	h.redo = nil
}

// push appends ev, dropping the oldest events beyond the limit.
func (h *History) push(stack []Event, ev Event) []Event {
	stack = append(stack, ev)
	if n := len(stack) - h.maxEntries; n > 0 {
		stack = stack[n:]
	}
	return stack
}

// move pops the top of *from, hands it to apply and on success pushes it
// onto *to. A failed apply leaves both stacks as they were.
func (h *History) move(from, to *[]Event, empty error, apply Applier) (Event, error) {
	if len(*from) == 0 {
		return nil, empty
	}
	ev := (*from)[len(*from)-1]
	if err := apply(ev); err != nil {
		return nil, err
	}
	*from = (*from)[:len(*from)-1]
	*to = h.push(*to, ev)
	return ev, nil
}

// Undo pops the most recent event, hands it to apply, and on success pushes
// the same event onto the redo stack.
func (h *History) Undo(apply Applier) (Event, error) {
	return h.move(&h.undo, &h.redo, ErrNothingToUndo, apply)
}

// Redo pops the most recently undone event, hands it to apply, and on
// success pushes the same event back onto the undo stack.
func (h *History) Redo(apply Applier) (Event, error) {
	return h.move(&h.redo, &h.undo, ErrNothingToRedo, apply)
}

// UndoCount returns the number of events Undo can pop.
func (h *History) UndoCount() int { return len(h.undo) }

// RedoCount returns the number of events Redo can pop.
func (h *History) RedoCount() int { return len(h.redo) }

// SetMaxEntries changes the limit, trimming the oldest events of both
// stacks to fit.
func (h *History) SetMaxEntries(max int) {
	if max <= 0 {
		max = DefaultMaxEntries
	}
	h.maxEntries = max
	if n := len(h.undo) - max; n > 0 {
		h.undo = h.undo[n:]
	}
	if n := len(h.redo) - max; n > 0 {
		h.redo = h.redo[n:]
	}
}

func (h *History) MaxEntries() int { return h.maxEntries }
