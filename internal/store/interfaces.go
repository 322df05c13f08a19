// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/clip-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_store_mock.go -package=mock

// VaultStore is the persistence boundary of the vault. It stores exactly the
// bytes it is given and knows nothing about keys or ciphers.
//
// Salt and envelope are one unit: every write that changes either of them
// goes through Save, which replaces both in a single atomic operation.
type VaultStore interface {
	// Load returns the whole persisted record. A store that has never been
	// written returns a zero record and no error.
	Load(ctx context.Context) (models.VaultRecord, error)

	// Save atomically replaces the salt and the envelope.
	Save(ctx context.Context, salt []byte, envelope models.CipherEnvelope) error

	// IsInitialized reports whether a salt has ever been saved.
	IsInitialized(ctx context.Context) (bool, error)

	// LoadPending returns the capture queue, newest first.
	LoadPending(ctx context.Context) ([]models.PendingClip, error)

	// AddPending pushes a clip onto the capture queue. The queue keeps at
	// most models.MaxPendingClips entries and ignores a clip whose content
	// equals the current head. It reports whether the clip was queued.
	AddPending(ctx context.Context, clip models.PendingClip) (bool, error)

	// ClearPending empties the capture queue.
	ClearPending(ctx context.Context) error

	// Monitoring returns the auto-capture flag.
	Monitoring(ctx context.Context) (bool, error)

	// SetMonitoring stores the auto-capture flag.
	SetMonitoring(ctx context.Context, enabled bool) error

	// Reset erases salt, envelope and capture queue in one operation.
	Reset(ctx context.Context) error

	// Close releases underlying resources.
	Close() error
}
