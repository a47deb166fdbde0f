package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// submitShortcut is Ctrl+Enter (Cmd+Enter on macOS).
var submitShortcut = &desktop.CustomShortcut{
	KeyName:  fyne.KeyReturn,
	Modifier: fyne.KeyModifierShortcutDefault,
}

// sourceEntry is the multi-line input pane. Plain Enter inserts a newline,
// the submit shortcut triggers onSubmit.
type sourceEntry struct {
	widget.Entry
	onSubmit func()
}

func newSourceEntry(onSubmit func()) *sourceEntry {
	e := &sourceEntry{onSubmit: onSubmit}
	e.MultiLine = true
	e.Wrapping = fyne.TextWrapWord
	e.ExtendBaseWidget(e)
	return e
}

// TypedShortcut intercepts the submit shortcut before the entry handles it
func (e *sourceEntry) TypedShortcut(s fyne.Shortcut) {
	if isSubmitShortcut(s) {
		if e.onSubmit != nil {
			e.onSubmit()
		}
		return
	}
	e.Entry.TypedShortcut(s)
}

func isSubmitShortcut(s fyne.Shortcut) bool {
	custom, ok := s.(*desktop.CustomShortcut)
	if !ok {
		return false
	}
	return (custom.KeyName == fyne.KeyReturn || custom.KeyName == fyne.KeyEnter) &&
		custom.Modifier == submitShortcut.Modifier
}
