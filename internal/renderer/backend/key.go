package backend

// EventType identifies the type of terminal event.
type EventType int

const (
	EventNone EventType = iota
	EventKey
	EventResize
	// EventInterrupt carries a value posted from another goroutine.
	EventInterrupt
)

// Event is one decoded terminal event. Only the fields for its Type are set.
type Event struct {
	Type EventType

	Key  Key
	Rune rune
	Mod  ModMask

	Width, Height int

	Data any
}

// KeyEvent returns a key press event for k.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent returns a key press event for a printable character.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// Key identifies a key the editor distinguishes. Printable input is KeyRune
// with the character in Event.Rune.
type Key int

const (
	KeyNone Key = iota
	KeyRune
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// ctrlBase offsets Ctrl chords so that a chord's value minus ctrlBase is its
// upper case letter.
const ctrlBase Key = 0x100

// Ctrl+letter chords. Terminals send Ctrl+H, Ctrl+I and Ctrl+M as Backspace,
// Tab and Enter, so those three have no chord of their own.
const (
	KeyCtrlA = ctrlBase + 'A'
	KeyCtrlB = ctrlBase + 'B'
	KeyCtrlC = ctrlBase + 'C'
	KeyCtrlD = ctrlBase + 'D'
	KeyCtrlE = ctrlBase + 'E'
	KeyCtrlF = ctrlBase + 'F'
	KeyCtrlG = ctrlBase + 'G'
	KeyCtrlJ = ctrlBase + 'J'
	KeyCtrlK = ctrlBase + 'K'
	KeyCtrlL = ctrlBase + 'L'
	KeyCtrlN = ctrlBase + 'N'
	KeyCtrlO = ctrlBase + 'O'
	KeyCtrlP = ctrlBase + 'P'
	KeyCtrlQ = ctrlBase + 'Q'
	KeyCtrlR = ctrlBase + 'R'
	KeyCtrlS = ctrlBase + 'S'
	KeyCtrlT = ctrlBase + 'T'
	KeyCtrlU = ctrlBase + 'U'
	KeyCtrlV = ctrlBase + 'V'
	KeyCtrlW = ctrlBase + 'W'
	KeyCtrlX = ctrlBase + 'X'
	KeyCtrlY = ctrlBase + 'Y'
	KeyCtrlZ = ctrlBase + 'Z'
)

// Ctrl returns the chord for an ASCII letter of either case. Letters that
// terminals cannot deliver as chords (H, I and M) yield KeyNone.
func Ctrl(letter byte) Key {
	if letter >= 'a' && letter <= 'z' {
		letter -= 'a' - 'A'
	}
	switch {
	case letter < 'A' || letter > 'Z':
		return KeyNone
	case letter == 'H' || letter == 'I' || letter == 'M':
		return KeyNone
	}
	return ctrlBase + Key(letter)
}

// CtrlLetter returns the upper case letter of a Ctrl chord.
func (k Key) CtrlLetter() (byte, bool) {
	if k < KeyCtrlA || k > KeyCtrlZ {
		return 0, false
	}
	return byte(k - ctrlBase), true
}

var keyNames = [...]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEscape:    "Esc",
	KeyEnter:     "Enter",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyLeft:      "Left",
	KeyRight:     "Right",
}

func (k Key) String() string {
	if c, ok := k.CtrlLetter(); ok {
		return "Ctrl+" + string(c)
	}
	if k >= 0 && int(k) < len(keyNames) {
		return keyNames[k]
	}
	return "None"
}

// ModMask is the set of modifiers held during a key press.
type ModMask int

const (
	ModNone  ModMask = 0
	ModShift ModMask = 1 << iota
	ModCtrl
	ModAlt
	ModMeta
)

// Has reports whether the mask contains mod.
func (m ModMask) Has(mod ModMask) bool {
	return m&mod != 0
}
