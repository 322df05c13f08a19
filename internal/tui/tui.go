// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the terminal interface of clip-vault with
// bubbletea: the PIN screen (setup, unlock, PIN change) and the snippet list.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/clip-vault/internal/capture"
	"github.com/MKhiriev/clip-vault/internal/logger"
	"github.com/MKhiriev/clip-vault/internal/service"
	"github.com/MKhiriev/clip-vault/models"
)

// MonitoringSettings toggles the auto-capture flag read by the capture
// worker. The vault store satisfies it.
type MonitoringSettings interface {
	Monitoring(ctx context.Context) (bool, error)
	SetMonitoring(ctx context.Context, enabled bool) error
}

// Transfer writes and reads plaintext snippet backups.
type Transfer interface {
	Path() string
	Write(c models.Collection) error
	Read() ([]models.Snippet, error)
}

// deps is everything the pages need. Commands capture it by value.
type deps struct {
	ctx       context.Context
	session   service.VaultSession
	clipboard capture.Clipboard
	settings  MonitoringSettings
	transfer  Transfer
}

// TUI runs the interactive program.
type TUI struct {
	session   service.VaultSession
	clipboard capture.Clipboard
	settings  MonitoringSettings
	transfer  Transfer
	logger    *logger.Logger
}

// New creates a [TUI]. All collaborators are required.
func New(
	session service.VaultSession,
	clipboard capture.Clipboard,
	settings MonitoringSettings,
	transfer Transfer,
	log *logger.Logger,
) (*TUI, error) {
	if session == nil || clipboard == nil || settings == nil || transfer == nil {
		return nil, errors.New("tui: session, clipboard, settings and transfer are required")
	}
	if log == nil {
		log = logger.Nop()
	}
	return &TUI{
		session:   session,
		clipboard: clipboard,
		settings:  settings,
		transfer:  transfer,
		logger:    log,
	}, nil
}

// Run blocks until the user quits or ctx is cancelled. The session is locked
// on the way out so the key doesn't outlive the interface.
func (t *TUI) Run(ctx context.Context) error {
	defer t.session.Lock()

	root := newRootModel(deps{
		ctx:       ctx,
		session:   t.session,
		clipboard: t.clipboard,
		settings:  t.settings,
		transfer:  t.transfer,
	})

	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Str("func", "TUI.Run").Msg("interface stopped by shutdown")
		return nil
	}
	if err != nil {
		t.logger.Err(err).Str("func", "TUI.Run").Msg("interface failed")
		return err
	}
	return nil
}
