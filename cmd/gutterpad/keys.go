package main

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/gutterpad/editor"
)

// appKeys are the host bindings, checked before keys reach the editor.
type appKeys struct {
	Save     key.Binding
	Quit     key.Binding
	ReadOnly key.Binding
	Help     key.Binding

	editor editor.KeyMap
}

func newAppKeys(em editor.KeyMap) appKeys {
	return appKeys{
		Save:     key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+q"), key.WithHelp("ctrl+q", "quit")),
		ReadOnly: key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "read-only")),
		Help:     key.NewBinding(key.WithKeys("ctrl+g"), key.WithHelp("ctrl+g", "help")),
		editor:   em,
	}
}

func (k appKeys) ShortHelp() []key.Binding {
	return append([]key.Binding{k.Save, k.Quit, k.Help}, k.editor.ShortHelp()...)
}

func (k appKeys) FullHelp() [][]key.Binding {
	return append([][]key.Binding{{k.Save, k.Quit, k.ReadOnly, k.Help}}, k.editor.FullHelp()...)
}
