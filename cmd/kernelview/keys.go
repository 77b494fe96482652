package main

import "github.com/charmbracelet/bubbles/key"

// keyMap mirrors the teacher's per-component Keys struct
// (cmd/hiveexplorer/keytree/keys.go), collapsed into one set since
// kernelview has far fewer panes and modes than hiveexplorer.
type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Enter   key.Binding
	Tab     key.Binding
	Copy    key.Binding
	Help    key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:    key.NewBinding(key.WithKeys("up", "k")),
		Down:  key.NewBinding(key.WithKeys("down", "j")),
		Left:  key.NewBinding(key.WithKeys("left", "h")),
		Right: key.NewBinding(key.WithKeys("right", "l")),
		Enter: key.NewBinding(key.WithKeys("enter")),
		Tab:   key.NewBinding(key.WithKeys("tab")),
		Copy:  key.NewBinding(key.WithKeys("y")),
		Help:  key.NewBinding(key.WithKeys("?")),
		Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c")),
	}
}
