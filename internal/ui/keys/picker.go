// Package keys holds the key bindings of the interactive picker.
package keys

import "github.com/charmbracelet/bubbles/key"

type PickerKeyMap struct {
	Choose  key.Binding
	Mark    key.Binding
	Unmark  key.Binding
	MarkAll key.Binding
	Clear   key.Binding
	Cancel  key.Binding
}

func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Choose, k.Mark}
}

func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Choose, k.Mark, k.Unmark, k.MarkAll, k.Clear, k.Cancel},
	}
}

var Picker = PickerKeyMap{
	Choose: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "choose"),
	),
	Mark: key.NewBinding(
		key.WithKeys("tab", " "),
		key.WithHelp("tab/space", "mark"),
	),
	Unmark: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("s+tab", "unmark"),
	),
	MarkAll: key.NewBinding(
		key.WithKeys("ctrl+a"),
		key.WithHelp("ctrl+a", "mark all"),
	),
	Clear: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear marks"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("ctrl+c", "q"),
		key.WithHelp("q", "cancel"),
	),
}
