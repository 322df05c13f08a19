// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command clip-vault-capture watches the system clipboard and queues copied
// text for the vault while monitoring is enabled. It never sees the PIN or
// the key: queued clips are folded into the vault on the next unlock.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/clip-vault/internal/capture"
	"github.com/MKhiriev/clip-vault/internal/config"
	"github.com/MKhiriev/clip-vault/internal/logger"
	"github.com/MKhiriev/clip-vault/internal/store"
	"github.com/MKhiriev/clip-vault/internal/workers"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("clip-vault-capture")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("driver", cfg.Storage.Driver).Dur("poll_interval", cfg.Capture.PollInterval).Msg("received configs")

	if capture.Unsupported() {
		log.Fatal().Msg("no clipboard utility available on this system")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	vaultStore, err := store.NewVaultStore(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating vault storage")
	}
	defer vaultStore.Close()

	worker, err := capture.NewWorker(vaultStore, capture.SystemClipboard(), cfg.Capture.PollInterval, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating capture worker")
	}

	if err = workers.New(worker).Run(ctx); err != nil {
		log.Err(err).Msg("capture stopped with error")
		return
	}
	log.Info().Msg("capture stopped")
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
