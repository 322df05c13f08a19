// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/clip-vault/internal/config"
	"github.com/MKhiriev/clip-vault/internal/logger"
)

const (
	// DriverFile stores the vault record as a single JSON document.
	DriverFile = "file"
	// DriverSQLite stores the vault record in a SQLite database.
	DriverSQLite = "sqlite"
)

// NewVaultStore initialises the storage backend selected by cfg.Driver:
//   - "file":   a JSON document at cfg.DSN;
//   - "sqlite": a SQLite database at cfg.DSN, migrated on open.
//
// Returns [ErrUnsupportedDriver] for any other driver name.
func NewVaultStore(ctx context.Context, cfg config.Storage, logger *logger.Logger) (VaultStore, error) {
	logger.Info().Str("driver", cfg.Driver).Msg("creating vault storage...")

	switch cfg.Driver {
	case DriverFile:
		return NewFileVaultStore(cfg.DSN, logger), nil

	case DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return NewSQLiteVaultStore(db, logger), nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}
