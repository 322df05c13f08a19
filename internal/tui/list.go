// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clip-vault/internal/app"
	"github.com/MKhiriev/clip-vault/models"
)

// listModel is the main screen of an unlocked vault.
type listModel struct {
	deps deps

	items      models.Collection
	idx        int
	loading    bool
	monitoring bool

	adding  bool
	input   textinput.Model
	confirm confirmKind

	status string
	errMsg string
}

func newListModel(d deps, status, errMsg string) listModel {
	return listModel{
		deps:    d,
		loading: true,
		input:   newTextInput("snippet text", 0, previewWidth),
		status:  status,
		errMsg:  errMsg,
	}
}

func (m listModel) Init() tea.Cmd {
	return tea.Batch(cmdLoadSnippets(m.deps), cmdLoadMonitoring(m.deps))
}

func (m listModel) current() (models.Snippet, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.Snippet{}, false
	}
	return m.items[m.idx], true
}

func (m listModel) Update(msg tea.Msg) (listModel, tea.Cmd) {
	switch msg := msg.(type) {
	case snippetsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = app.Humanize(msg.err)
			return m, nil
		}
		m.items = msg.items
		if m.idx >= len(m.items) {
			m.idx = max(len(m.items)-1, 0)
		}
		return m, nil

	case monitoringMsg:
		if msg.err != nil {
			m.errMsg = app.Humanize(msg.err)
			return m, nil
		}
		m.monitoring = msg.enabled
		return m, nil

	case actionDoneMsg:
		m.status = msg.status
		m.errMsg = app.Humanize(msg.err)
		if msg.reload {
			return m, cmdLoadSnippets(m.deps)
		}
		return m, nil

	case resetDoneMsg:
		if msg.err != nil {
			m.errMsg = app.Humanize(msg.err)
			return m, nil
		}
		return m, navigate(navigateMsg{screen: screenPIN, mode: pinSetup})

	case tea.KeyMsg:
		switch {
		case m.adding:
			return m.updateAdding(msg)
		case m.confirm != confirmNone:
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m listModel) updateKeys(msg tea.KeyMsg) (listModel, tea.Cmd) {
	m.status = ""
	m.errMsg = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.items)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.copy), key.Matches(msg, keys.enter):
		if item, ok := m.current(); ok {
			return m, cmdCopy(m.deps, item)
		}
	case key.Matches(msg, keys.newItem):
		m.adding = true
		m.input.Reset()
		cmd := m.input.Focus()
		return m, cmd
	case key.Matches(msg, keys.delete):
		if _, ok := m.current(); ok {
			m.confirm = confirmDelete
		}
	case key.Matches(msg, keys.saveClip):
		return m, cmdSaveClipboard(m.deps)
	case key.Matches(msg, keys.monitoring):
		return m, cmdSetMonitoring(m.deps, !m.monitoring)
	case key.Matches(msg, keys.export):
		return m, cmdExport(m.deps)
	case key.Matches(msg, keys.importFile):
		return m, cmdImport(m.deps)
	case key.Matches(msg, keys.lock):
		return m, cmdLock(m.deps)
	case key.Matches(msg, keys.changePIN):
		return m, navigate(navigateMsg{screen: screenPIN, mode: pinRekey})
	case key.Matches(msg, keys.reset):
		m.confirm = confirmReset
	}

	return m, nil
}

func (m listModel) updateAdding(msg tea.KeyMsg) (listModel, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.adding = false
		m.input.Blur()
		return m, nil
	case key.Matches(msg, keys.enter):
		text := m.input.Value()
		if strings.TrimSpace(text) == "" {
			m.errMsg = app.MsgInvalidInput
			return m, nil
		}
		m.adding = false
		m.input.Blur()
		m.input.Reset()
		return m, cmdAddText(m.deps, text)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m listModel) updateConfirm(msg tea.KeyMsg) (listModel, tea.Cmd) {
	kind := m.confirm
	switch {
	case key.Matches(msg, keys.yes):
		m.confirm = confirmNone
		if kind == confirmReset {
			return m, cmdReset(m.deps)
		}
		if item, ok := m.current(); ok {
			return m, cmdDelete(m.deps, item.ID)
		}
	case key.Matches(msg, keys.no):
		m.confirm = confirmNone
	}
	return m, nil
}

func (m listModel) View() string {
	title := fmt.Sprintf("clip-vault: %d snippets", len(m.items))
	if m.monitoring {
		title += " | capture on"
	} else {
		title += " | capture off"
	}

	switch m.confirm {
	case confirmDelete:
		item, _ := m.current()
		return renderPage(title, confirmModel{message: "Delete \"" + fitText(snippetLabel(item), 32) + "\"?"}.View(), "")
	case confirmReset:
		return renderPage(title, confirmModel{message: "Erase the whole vault? This can't be undone."}.View(), "")
	}

	var b strings.Builder
	switch {
	case m.loading:
		b.WriteString("loading...\n")
	case len(m.items) == 0:
		b.WriteString("The vault is empty. Press n to add a snippet or s to save the clipboard.\n")
	}

	for i, item := range m.items {
		line := fmt.Sprintf("%s %s  %s", snippetIcon(item), item.Date.Local().Format("2006-01-02 15:04"), fitText(snippetLabel(item), previewWidth))
		if len(item.Tags) > 0 {
			line += "  #" + strings.Join(item.Tags, " #")
		}
		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.adding {
		b.WriteString("\nNew snippet: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(m.errMsg))
	}

	hotKeys := "↑/↓: move | c: copy | n: new | d: delete | s: save clipboard | m: capture\n" +
		"e: export | i: import | p: change PIN | l: lock | R: reset | q: quit"
	if m.adding {
		hotKeys = "enter: save | esc: cancel"
	}
	return renderPage(title, b.String(), hotKeys)
}

func snippetIcon(s models.Snippet) string {
	switch {
	case s.Type == models.SnippetImage:
		return "[I]"
	case s.HasTag(models.TagAuto):
		return "[A]"
	default:
		return "[T]"
	}
}

// snippetLabel is the text shown for a snippet. Image data URIs are never
// printed.
func snippetLabel(s models.Snippet) string {
	if s.Type == models.SnippetImage {
		if s.MetaText != "" {
			return s.MetaText
		}
		return "image"
	}
	return s.Content
}

func cmdLoadSnippets(d deps) tea.Cmd {
	return func() tea.Msg {
		items, err := d.session.Snippets()
		return snippetsLoadedMsg{items: items, err: err}
	}
}

func cmdLoadMonitoring(d deps) tea.Cmd {
	return func() tea.Msg {
		enabled, err := d.settings.Monitoring(d.ctx)
		return monitoringMsg{enabled: enabled, err: err}
	}
}

func cmdSetMonitoring(d deps, enabled bool) tea.Cmd {
	return func() tea.Msg {
		if err := d.settings.SetMonitoring(d.ctx, enabled); err != nil {
			return monitoringMsg{enabled: !enabled, err: err}
		}
		return monitoringMsg{enabled: enabled}
	}
}

func cmdCopy(d deps, item models.Snippet) tea.Cmd {
	return func() tea.Msg {
		if item.Type == models.SnippetImage {
			return actionDoneMsg{status: "images can't be copied as text"}
		}
		if err := d.clipboard.WriteAll(item.Content); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: "copied to clipboard"}
	}
}

func cmdAddText(d deps, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := d.session.AddText(d.ctx, text, nil)
		return actionDoneMsg{status: statusIfOK(err, "snippet saved"), err: err, reload: true}
	}
}

func cmdSaveClipboard(d deps) tea.Cmd {
	return func() tea.Msg {
		text, err := d.clipboard.ReadAll()
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if strings.TrimSpace(text) == "" {
			return actionDoneMsg{status: "clipboard is empty"}
		}
		_, err = d.session.AddText(d.ctx, text, nil)
		return actionDoneMsg{status: statusIfOK(err, "clipboard saved"), err: err, reload: true}
	}
}

func cmdDelete(d deps, id string) tea.Cmd {
	return func() tea.Msg {
		err := d.session.Delete(d.ctx, id)
		return actionDoneMsg{status: statusIfOK(err, "snippet deleted"), err: err, reload: true}
	}
}

func cmdExport(d deps) tea.Cmd {
	return func() tea.Msg {
		items, err := d.session.Export()
		if err != nil {
			return actionDoneMsg{err: err}
		}
		if err = d.transfer.Write(items); err != nil {
			return actionDoneMsg{err: err}
		}
		return actionDoneMsg{status: fmt.Sprintf("exported %d snippets to %s", len(items), d.transfer.Path())}
	}
}

func cmdImport(d deps) tea.Cmd {
	return func() tea.Msg {
		snippets, err := d.transfer.Read()
		if err != nil {
			return actionDoneMsg{err: err}
		}
		added, err := d.session.Import(d.ctx, snippets)
		return actionDoneMsg{
			status: statusIfOK(err, fmt.Sprintf("imported %d of %d snippets", added, len(snippets))),
			err:    err,
			reload: true,
		}
	}
}

func cmdLock(d deps) tea.Cmd {
	return func() tea.Msg {
		d.session.Lock()
		return navigateMsg{screen: screenPIN, mode: pinUnlock}
	}
}

func cmdReset(d deps) tea.Cmd {
	return func() tea.Msg {
		return resetDoneMsg{err: d.session.Reset(d.ctx)}
	}
}

func statusIfOK(err error, status string) string {
	if err != nil {
		return ""
	}
	return status
}
