// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clip-vault/internal/service"
)

// RootModel is a TUI router:
// 1) keeps the active page
// 2) handles global Ctrl+C quit
// 3) handles navigateMsg
// 4) delegates all other messages to the active page
type RootModel struct {
	deps    deps
	current screen
	pin     pinModel
	list    listModel
}

// newRootModel opens the page that matches the session state: PIN setup for
// a fresh vault, the list for an unlocked one and the unlock form otherwise.
func newRootModel(d deps) RootModel {
	r := RootModel{deps: d}
	switch d.session.State() {
	case service.StateUninitialized:
		r.pin = newPINModel(d, pinSetup)
	case service.StateUnlocked:
		r.current = screenList
		r.list = newListModel(d, "", "")
	default:
		r.pin = newPINModel(d, pinUnlock)
	}
	return r
}

func (r RootModel) Init() tea.Cmd {
	if r.current == screenList {
		return r.list.Init()
	}
	return r.pin.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return r, tea.Quit
	}

	if nav, ok := msg.(navigateMsg); ok {
		r.current = nav.screen
		if nav.screen == screenList {
			r.list = newListModel(r.deps, nav.status, nav.errMsg)
			return r, r.list.Init()
		}
		r.pin = newPINModel(r.deps, nav.mode)
		return r, r.pin.Init()
	}

	var cmd tea.Cmd
	if r.current == screenList {
		r.list, cmd = r.list.Update(msg)
	} else {
		r.pin, cmd = r.pin.Update(msg)
	}
	return r, cmd
}

func (r RootModel) View() string {
	if r.current == screenList {
		return r.list.View()
	}
	return r.pin.View()
}
