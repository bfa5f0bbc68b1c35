package backend

import (
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/shelltips/ox/internal/renderer/core"
)

// Terminal draws on the real terminal through tcell. A reader goroutine
// moves tcell events into a channel so PollEvent can wait with a timeout.
type Terminal struct {
	screen tcell.Screen
	events chan Event
	done   chan struct{}

	mu           sync.Mutex
	lastW, lastH int
	started      bool
}

// NewTerminal opens the controlling terminal.
func NewTerminal() (*Terminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewTerminalWithScreen(screen), nil
}

// NewTerminalWithScreen wraps an existing tcell screen, such as a
// simulation screen in tests.
func NewTerminalWithScreen(screen tcell.Screen) *Terminal {
	return &Terminal{
		screen: screen,
		events: make(chan Event, 256),
		done:   make(chan struct{}),
	}
}

func (t *Terminal) Init() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.screen.Init(); err != nil {
		return err
	}
	t.lastW, t.lastH = t.screen.Size()
	t.started = true

	go t.readEvents()
	return nil
}

func (t *Terminal) readEvents() {
	defer close(t.done)
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			return
		}
		converted := convertEvent(ev)
		if converted.Type == EventNone {
			continue
		}
		t.events <- converted
	}
}

func (t *Terminal) Shutdown() {
	t.mu.Lock()
	started := t.started
	t.started = false
	t.mu.Unlock()

	if !started {
		return
	}
	t.screen.Fini()
	// Unblock the reader if the queue is full.
	for {
		select {
		case <-t.done:
			return
		case <-t.events:
		}
	}
}

func (t *Terminal) Size() (int, int) {
	return t.screen.Size()
}

func (t *Terminal) CheckResize() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	w, h := t.screen.Size()
	if w == t.lastW && h == t.lastH {
		return false
	}
	t.lastW, t.lastH = w, h
	t.screen.Sync()
	return true
}

func (t *Terminal) SetCell(x, y int, cell core.Cell) {
	t.screen.SetContent(x, y, cell.Rune, cell.Comb, convertStyle(cell.Style))
}

func (t *Terminal) Clear() {
	t.screen.Clear()
}

func (t *Terminal) Show() {
	t.screen.Show()
}

func (t *Terminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

func (t *Terminal) HideCursor() {
	t.screen.HideCursor()
}

func (t *Terminal) PollEvent(timeout time.Duration) (Event, bool) {
	if timeout <= 0 {
		ev, ok := <-t.events
		return ev, ok
	}
	select {
	case ev, ok := <-t.events:
		return ev, ok
	case <-time.After(timeout):
		return Event{}, false
	}
}

func (t *Terminal) PostEvent(event Event) {
	var ev tcell.Event
	switch event.Type {
	case EventInterrupt:
		ev = tcell.NewEventInterrupt(event.Data)
	case EventKey:
		ev = tcell.NewEventKey(convertToTcellKey(event.Key), event.Rune, convertToTcellMod(event.Mod))
	default:
		return
	}
	// tcell drops the event when its queue is full.
	_ = t.screen.PostEvent(ev)
}

var attrPairs = []struct {
	attr core.Attribute
	tc   tcell.AttrMask
}{
	{core.AttrBold, tcell.AttrBold},
	{core.AttrReverse, tcell.AttrReverse},
}

func convertStyle(s core.Style) tcell.Style {
	style := tcell.StyleDefault
	if !s.Foreground.IsDefault() {
		style = style.Foreground(convertColor(s.Foreground))
	}
	if !s.Background.IsDefault() {
		style = style.Background(convertColor(s.Background))
	}
	var attrs tcell.AttrMask
	for _, p := range attrPairs {
		if s.Attributes.Has(p.attr) {
			attrs |= p.tc
		}
	}
	return style.Attributes(attrs)
}

func convertColor(c core.Color) tcell.Color {
	if idx, ok := c.Palette(); ok {
		return tcell.PaletteColor(int(idx))
	}
	if r, g, b, ok := c.RGB(); ok {
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	}
	return tcell.ColorDefault
}

// convertEvent translates a tcell event. Events the editor ignores become
// EventNone.
func convertEvent(ev tcell.Event) Event {
	switch e := ev.(type) {
	case *tcell.EventKey:
		mod := convertMod(e.Modifiers())
		if e.Key() == tcell.KeyRune {
			// Some terminals report Ctrl+letter as a modified rune.
			if mod.Has(ModCtrl) && e.Rune() < 0x80 {
				if k := Ctrl(byte(e.Rune())); k != KeyNone {
					return Event{Type: EventKey, Key: k, Mod: mod}
				}
			}
			return Event{Type: EventKey, Key: KeyRune, Rune: e.Rune(), Mod: mod}
		}
		return Event{Type: EventKey, Key: convertKey(e.Key()), Mod: mod}

	case *tcell.EventResize:
		w, h := e.Size()
		return Event{Type: EventResize, Width: w, Height: h}

	case *tcell.EventInterrupt:
		return Event{Type: EventInterrupt, Data: e.Data()}
	}
	return Event{}
}

// namedKeys pairs each named key with its tcell code. tcell reports
// Backspace both as KeyBackspace and KeyBackspace2; the latter is what
// modern terminals send.
var namedKeys = []struct {
	key Key
	tc  tcell.Key
}{
	{KeyEscape, tcell.KeyEscape},
	{KeyEnter, tcell.KeyEnter},
	{KeyTab, tcell.KeyTab},
	{KeyBackspace, tcell.KeyBackspace2},
	{KeyBackspace, tcell.KeyBackspace},
	{KeyHome, tcell.KeyHome},
	{KeyEnd, tcell.KeyEnd},
	{KeyPageUp, tcell.KeyPgUp},
	{KeyPageDown, tcell.KeyPgDn},
	{KeyUp, tcell.KeyUp},
	{KeyDown, tcell.KeyDown},
	{KeyLeft, tcell.KeyLeft},
	{KeyRight, tcell.KeyRight},
}

// convertKey maps a tcell key code. Terminals send Ctrl+H, Ctrl+I and Ctrl+M
// as the control bytes tcell reports as Backspace, Tab and Enter; tcell's own
// KeyCtrlH, KeyCtrlI and KeyCtrlM codes map to no chord.
func convertKey(k tcell.Key) Key {
	for _, nk := range namedKeys {
		if nk.tc == k {
			return nk.key
		}
	}
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ {
		return Ctrl(byte('A' + k - tcell.KeyCtrlA))
	}
	return KeyNone
}

func convertToTcellKey(k Key) tcell.Key {
	for _, nk := range namedKeys {
		if nk.key == k {
			return nk.tc
		}
	}
	if c, ok := k.CtrlLetter(); ok {
		return tcell.KeyCtrlA + tcell.Key(c-'A')
	}
	return tcell.KeyRune
}

var modPairs = []struct {
	mod ModMask
	tc  tcell.ModMask
}{
	{ModShift, tcell.ModShift},
	{ModCtrl, tcell.ModCtrl},
	{ModAlt, tcell.ModAlt},
	{ModMeta, tcell.ModMeta},
}

func convertMod(m tcell.ModMask) ModMask {
	var out ModMask
	for _, p := range modPairs {
		if m&p.tc != 0 {
			out |= p.mod
		}
	}
	return out
}

func convertToTcellMod(m ModMask) tcell.ModMask {
	var out tcell.ModMask
	for _, p := range modPairs {
		if m.Has(p.mod) {
			out |= p.tc
		}
	}
	return out
}
