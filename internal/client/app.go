// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clip-vault/internal/capture"
	"github.com/MKhiriev/clip-vault/internal/config"
	"github.com/MKhiriev/clip-vault/internal/crypto"
	"github.com/MKhiriev/clip-vault/internal/logger"
	"github.com/MKhiriev/clip-vault/internal/service"
	"github.com/MKhiriev/clip-vault/internal/store"
	"github.com/MKhiriev/clip-vault/internal/transfer"
	"github.com/MKhiriev/clip-vault/internal/tui"
	"github.com/MKhiriev/clip-vault/internal/utils"
	"github.com/MKhiriev/clip-vault/internal/validators"
	"github.com/MKhiriev/clip-vault/internal/workers"
)

// App is the clip-vault client process.
type App struct {
	store   store.VaultStore
	session service.VaultSession
	ui      UI
	capture workers.Worker

	logger *logger.Logger
}

// NewApp builds the application from cfg. The capture worker is created only
// when cfg.Capture.Enabled is set.
func NewApp(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*App, error) {
	vaultStore, err := store.NewVaultStore(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create vault storage: %w", err)
	}

	keychain := crypto.NewKeyChainService(crypto.KDFParams{
		Time:      cfg.KDF.Time,
		MemoryKiB: cfg.KDF.MemoryKiB,
		Threads:   cfg.KDF.Threads,
	})

	session, err := service.NewVaultSession(
		ctx,
		vaultStore,
		keychain,
		validators.NewSnippetValidator(),
		utils.NewUUIDGenerator(),
		log,
	)
	if err != nil {
		vaultStore.Close()
		return nil, fmt.Errorf("create vault session: %w", err)
	}

	clipboard := capture.SystemClipboard()
	ui, err := tui.New(session, clipboard, vaultStore, transfer.NewFile(cfg.Transfer.ExportPath), log)
	if err != nil {
		vaultStore.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	app := &App{
		store:   vaultStore,
		session: session,
		ui:      ui,
		logger:  log,
	}

	if cfg.Capture.Enabled {
		if capture.Unsupported() {
			log.Warn().Str("func", "client.NewApp").Msg("no clipboard utility found, capture disabled")
			return app, nil
		}
		worker, err := capture.NewWorker(vaultStore, clipboard, cfg.Capture.PollInterval, log)
		if err != nil {
			vaultStore.Close()
			return nil, fmt.Errorf("create capture worker: %w", err)
		}
		app.capture = worker
	}

	return app, nil
}

// Run shows the UI and, if configured, captures the clipboard in the
// background. Quitting the UI stops the capture worker; the store is closed
// before Run returns.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Err(err).Str("func", "App.Run").Msg("failed to close vault storage")
		}
	}()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := []workers.Worker{
		workers.WorkerFunc(func(ctx context.Context) error {
			defer cancel()
			return a.ui.Run(ctx)
		}),
	}
	if a.capture != nil {
		jobs = append(jobs, a.capture)
	}

	a.logger.Info().Str("func", "App.Run").Bool("capture", a.capture != nil).Msg("client started")
	err := workers.New(jobs...).Run(ctx)
	a.session.Lock()
	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return err
}
