// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	up         key.Binding
	down       key.Binding
	enter      key.Binding
	esc        key.Binding
	tab        key.Binding
	backtab    key.Binding
	quit       key.Binding
	lock       key.Binding
	newItem    key.Binding
	delete     key.Binding
	copy       key.Binding
	saveClip   key.Binding
	monitoring key.Binding
	changePIN  key.Binding
	export     key.Binding
	importFile key.Binding
	reset      key.Binding
	forgotPIN  key.Binding
	yes        key.Binding
	no         key.Binding
}

var keys = keyMap{
	up:         key.NewBinding(key.WithKeys("up", "k")),
	down:       key.NewBinding(key.WithKeys("down", "j")),
	enter:      key.NewBinding(key.WithKeys("enter")),
	esc:        key.NewBinding(key.WithKeys("esc")),
	tab:        key.NewBinding(key.WithKeys("tab")),
	backtab:    key.NewBinding(key.WithKeys("shift+tab")),
	quit:       key.NewBinding(key.WithKeys("q")),
	lock:       key.NewBinding(key.WithKeys("l")),
	newItem:    key.NewBinding(key.WithKeys("n")),
	delete:     key.NewBinding(key.WithKeys("d")),
	copy:       key.NewBinding(key.WithKeys("c")),
	saveClip:   key.NewBinding(key.WithKeys("s")),
	monitoring: key.NewBinding(key.WithKeys("m")),
	changePIN:  key.NewBinding(key.WithKeys("p")),
	export:     key.NewBinding(key.WithKeys("e")),
	importFile: key.NewBinding(key.WithKeys("i")),
	reset:      key.NewBinding(key.WithKeys("R")),
	forgotPIN:  key.NewBinding(key.WithKeys("ctrl+r")),
	yes:        key.NewBinding(key.WithKeys("y")),
	no:         key.NewBinding(key.WithKeys("n", "esc")),
}
