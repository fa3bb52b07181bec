package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up      key.Binding
	down    key.Binding
	left    key.Binding
	right   key.Binding
	enter   key.Binding
	esc     key.Binding
	tab     key.Binding
	backtab key.Binding
	quit    key.Binding
	clear   key.Binding
	copy    key.Binding
	version key.Binding
}

var keys = keyMap{
	up:      key.NewBinding(key.WithKeys("up", "k")),
	down:    key.NewBinding(key.WithKeys("down", "j")),
	left:    key.NewBinding(key.WithKeys("left", "h")),
	right:   key.NewBinding(key.WithKeys("right", "l")),
	enter:   key.NewBinding(key.WithKeys("enter")),
	esc:     key.NewBinding(key.WithKeys("esc")),
	tab:     key.NewBinding(key.WithKeys("tab", "down")),
	backtab: key.NewBinding(key.WithKeys("shift+tab", "up")),
	quit:    key.NewBinding(key.WithKeys("q")),
	clear:   key.NewBinding(key.WithKeys("x", "backspace", "delete")),
	copy:    key.NewBinding(key.WithKeys("c")),
	version: key.NewBinding(key.WithKeys("v")),
}
