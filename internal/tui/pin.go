// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clip-vault/internal/app"
	"github.com/MKhiriev/clip-vault/internal/service"
	"github.com/MKhiriev/clip-vault/internal/validators"
)

// pinMode selects which session operation the PIN screen performs.
type pinMode int

const (
	pinUnlock pinMode = iota
	pinSetup
	pinRekey
)

func (m pinMode) title() string {
	switch m {
	case pinSetup:
		return "clip-vault: create a PIN"
	case pinRekey:
		return "clip-vault: change PIN"
	default:
		return "clip-vault: unlock"
	}
}

// needsConfirm reports whether the PIN must be typed twice.
func (m pinMode) needsConfirm() bool {
	return m == pinSetup || m == pinRekey
}

// pinModel is the PIN form. Unlock has one input; setup and PIN change have a
// second confirmation input. Submission runs the key derivation in a command
// and shows a spinner until [pinDoneMsg] arrives.
type pinModel struct {
	deps deps
	mode pinMode

	inputs     []textinput.Model
	focus      int
	submitting bool
	confirming bool
	spinner    spinner.Model
	errMsg     string
}

func newPINModel(d deps, mode pinMode) pinModel {
	count := 1
	if mode.needsConfirm() {
		count = 2
	}

	inputs := make([]textinput.Model, count)
	for i := range inputs {
		in := newTextInput("6 digits", 6, 10)
		in.EchoMode = textinput.EchoPassword
		in.EchoCharacter = '*'
		inputs[i] = in
	}
	inputs[0].Focus()
	if count == 2 {
		inputs[1].Placeholder = "repeat PIN"
	}

	s := spinner.New()
	s.Spinner = spinner.MiniDot

	return pinModel{
		deps:    d,
		mode:    mode,
		inputs:  inputs,
		spinner: s,
	}
}

func (m pinModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles:
//   - [pinDoneMsg]: finishes the submission and navigates on success.
//   - [resetDoneMsg]: opens the setup form once the vault is erased.
//   - ctrl+r: asks to erase the vault from the unlock form.
//   - esc: leaves the PIN change form.
//   - tab, shift+tab: moves focus between the inputs.
//   - enter: moves to the confirmation input or submits the form.
//
// Other keys go to the focused input.
func (m pinModel) Update(msg tea.Msg) (pinModel, tea.Cmd) {
	switch msg := msg.(type) {
	case pinDoneMsg:
		return m.finish(msg)

	case resetDoneMsg:
		if msg.err != nil {
			m.submitting = false
			m.errMsg = app.Humanize(msg.err)
			return m, nil
		}
		m = newPINModel(m.deps, pinSetup)
		return m, nil

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		if m.confirming {
			return m.updateConfirm(msg)
		}
		switch {
		case m.mode == pinUnlock && key.Matches(msg, keys.forgotPIN):
			m.confirming = true
			m.clear()
			return m, nil
		case key.Matches(msg, keys.esc):
			if m.mode == pinRekey {
				return m, navigate(navigateMsg{screen: screenList})
			}
			return m, nil
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			cmd := m.setFocus((m.focus + 1) % len(m.inputs))
			return m, cmd
		case key.Matches(msg, keys.enter):
			if m.focus < len(m.inputs)-1 {
				cmd := m.setFocus(m.focus + 1)
				return m, cmd
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m pinModel) updateConfirm(msg tea.KeyMsg) (pinModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirming = false
		m.submitting = true
		return m, tea.Batch(m.spinner.Tick, cmdReset(m.deps))
	case key.Matches(msg, keys.no):
		m.confirming = false
	}
	return m, nil
}

func (m pinModel) View() string {
	if m.confirming {
		msg := "Forgot the PIN or the vault is damaged?\nErase the whole vault? This can't be undone."
		return renderPage(m.mode.title(), confirmModel{message: msg}.View(), "")
	}

	var b strings.Builder

	switch m.mode {
	case pinSetup:
		b.WriteString("No vault yet. Choose a 6-digit PIN.\n")
		b.WriteString("The PIN can't be recovered: losing it means losing the vault.\n\n")
	case pinRekey:
		b.WriteString("Enter the new 6-digit PIN.\n\n")
	default:
		b.WriteString("Enter your PIN to open the vault.\n\n")
	}

	labels := []string{"PIN:     ", "Confirm: "}
	for i, in := range m.inputs {
		b.WriteString(labels[i])
		b.WriteString(in.View())
		b.WriteString("\n")
	}

	if m.submitting {
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(" working...")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	hotKeys := "enter: submit"
	if m.mode.needsConfirm() {
		hotKeys = "tab: next field | enter: submit"
	}
	switch m.mode {
	case pinRekey:
		hotKeys += " | esc: back"
	case pinUnlock:
		hotKeys += " | ctrl+r: erase vault"
	}
	return renderPage(m.mode.title(), b.String(), hotKeys)
}

func (m *pinModel) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	return m.inputs[m.focus].Focus()
}

func (m pinModel) submit() (pinModel, tea.Cmd) {
	pin := m.inputs[0].Value()
	if err := validators.ValidatePIN(pin); err != nil {
		m.errMsg = app.MsgInvalidPIN
		return m, nil
	}
	if m.mode.needsConfirm() && m.inputs[1].Value() != pin {
		m.errMsg = app.MsgPINMismatch
		m.clear()
		cmd := m.setFocus(0)
		return m, cmd
	}

	m.errMsg = ""
	m.submitting = true
	return m, tea.Batch(m.spinner.Tick, cmdSubmitPIN(m.deps, m.mode, pin))
}

func (m pinModel) finish(msg pinDoneMsg) (pinModel, tea.Cmd) {
	m.submitting = false
	m.clear()

	// Unlock may succeed and still report a failed reconciliation write.
	if m.deps.session.State() == service.StateUnlocked {
		next := navigateMsg{screen: screenList, errMsg: app.Humanize(msg.err)}
		if msg.err == nil && msg.mode == pinRekey {
			next.status = "PIN changed"
		}
		if msg.err == nil || msg.mode != pinRekey {
			return m, navigate(next)
		}
	}

	m.errMsg = app.Humanize(msg.err)

	// The vault may have been created or removed by another process.
	switch st := m.deps.session.State(); {
	case m.mode == pinUnlock && st == service.StateUninitialized:
		m = newPINModel(m.deps, pinSetup)
		m.errMsg = app.MsgVaultMissing
	case m.mode == pinSetup && st == service.StateLocked:
		m = newPINModel(m.deps, pinUnlock)
		m.errMsg = app.MsgVaultExists
	}
	cmd := m.setFocus(0)
	return m, cmd
}

// clear wipes the typed PINs.
func (m *pinModel) clear() {
	for i := range m.inputs {
		m.inputs[i].Reset()
	}
}

func cmdSubmitPIN(d deps, mode pinMode, pin string) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch mode {
		case pinSetup:
			err = d.session.Setup(d.ctx, pin)
		case pinRekey:
			err = d.session.Rekey(d.ctx, pin)
		default:
			err = d.session.Unlock(d.ctx, pin)
		}
		return pinDoneMsg{mode: mode, err: err}
	}
}

func navigate(msg navigateMsg) tea.Cmd {
	return func() tea.Msg { return msg }
}
