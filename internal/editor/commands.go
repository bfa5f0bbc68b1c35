package editor

import (
	"fmt"
	"strings"

	"github.com/shelltips/ox/internal/engine/document"
	"github.com/shelltips/ox/internal/renderer/backend"
)

// confirmDiscard guards an action that would throw away unsaved changes.
// A clean document passes straight through. Otherwise the user is warned and
// the next key decides: Enter or the action's own key proceed, anything else
// cancels.
func (e *Editor) confirmDiscard(subject string, key backend.Key) bool {
	if !e.dirty {
		return true
	}

	letter, _ := key.CtrlLetter()
	e.setWarning(fmt.Sprintf("Unsaved Changes! Ctrl + %c to force %s", letter, subject))
	e.render()

	ev, ok := e.readKey()
	if !ok {
		return false
	}
	if ev.Key == backend.KeyEnter || ev.Key == key {
		return true
	}
	e.setInfo(strings.ToUpper(subject[:1]) + subject[1:] + " cancelled")
	return false
}

func (e *Editor) quitEditor() {
	if e.confirmDiscard("quit", backend.KeyCtrlQ) {
		e.quit = true
	}
}

func (e *Editor) newDocument() {
	if !e.confirmDiscard("new", backend.KeyCtrlN) {
		return
	}
	e.replaceDocument(document.New())
	e.setInfo("New document")
	e.logger.Debug("new document")
}

func (e *Editor) openDocument() {
	if !e.confirmDiscard("open", backend.KeyCtrlO) {
		return
	}
	path, ok := e.Prompt("Open", nil)
	if !ok {
		e.setInfo("Open cancelled")
		return
	}
	if err := e.Open(path); err != nil {
		return
	}
	e.setInfo(fmt.Sprintf("Opened %s", path))
}

func (e *Editor) save() {
	if e.doc.Path == "" {
		e.saveAs()
		return
	}
	e.saved(e.doc.Path, e.doc.Save())
}

func (e *Editor) saveAs() {
	path, ok := e.Prompt("Save as", nil)
	if !ok {
		e.setInfo("Save as cancelled")
		return
	}
	e.saved(path, e.doc.SaveAs(path))
}

// saved reports the outcome of writing the document to path.
func (e *Editor) saved(path string, err error) {
	if err != nil {
		e.logger.Error("saving %s: %v", path, err)
		e.setError(fmt.Sprintf("Failed to save file to %s", path))
		return
	}
	e.dirty = false
	e.logger.Info("saved %s", path)
	e.setInfo(fmt.Sprintf("File saved to %s successfully", path))
}
