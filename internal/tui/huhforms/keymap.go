package huhforms

import (
	"charm.land/bubbles/v2/key"
	"charm.land/huh/v2"
)

// Keys that start a new line in the widget text field
var newLineKeys = []string{"shift+enter", "alt+enter", "ctrl+j"}

// AddWidgetKeyMap returns the key bindings of the add widget form.
// Enter moves on from the text field instead of inserting a newline, and
// the external editor binding is disabled because the dashboard owns the
// terminal while the form is open.
func AddWidgetKeyMap() *huh.KeyMap {
	km := huh.NewDefaultKeyMap()

	km.Text.NewLine = key.NewBinding(
		key.WithKeys(newLineKeys...),
		key.WithHelp("shift+enter", "new line"),
	)
	km.Text.Next = key.NewBinding(
		key.WithKeys("enter", "tab"),
		key.WithHelp("enter", "next"),
	)
	km.Text.Editor = key.NewBinding(key.WithDisabled())

	return km
}
