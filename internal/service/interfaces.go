// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/clip-vault/models"
)

// MutateFunc receives a private copy of the collection and returns the
// collection that should replace it. Returning an error aborts the mutation.
type MutateFunc func(c models.Collection) (models.Collection, error)

// VaultSession owns the only live (key, collection) pair of the process.
// Every state-changing method is serialized: two derive/encrypt/persist
// sequences never interleave.
//
// Lifecycle:
//
//	Uninitialized --Setup--> Unlocked
//	Locked --Unlock--> Unlocking --> Unlocked (or back to Locked)
//	Unlocked --Lock--> Locked
//	any --Reset--> Uninitialized
type VaultSession interface {
	// State returns the current lifecycle phase. It never blocks.
	State() State

	// Setup creates a new vault protected by pin and leaves the session
	// unlocked with an empty collection.
	Setup(ctx context.Context, pin string) error

	// Unlock opens the vault with pin and folds the pending capture queue
	// into the collection before returning.
	Unlock(ctx context.Context, pin string) error

	// Lock wipes the key and drops the collection. It is a no-op unless the
	// session is unlocked.
	Lock()

	// Mutate applies fn to the collection, re-encrypts the whole result and
	// persists it. A persistence failure is reported but memory keeps the
	// new collection.
	Mutate(ctx context.Context, fn MutateFunc) error

	// Rekey re-encrypts the collection under a key derived from newPIN and a
	// fresh salt. The session keeps the old key unless the write succeeds.
	Rekey(ctx context.Context, newPIN string) error

	// Reset erases the persisted vault and all in-memory state.
	Reset(ctx context.Context) error

	// Snippets returns a copy of the collection.
	Snippets() (models.Collection, error)

	// Snippet returns a copy of the snippet with the given id.
	Snippet(id string) (models.Snippet, error)

	// AddText prepends a new text snippet.
	AddText(ctx context.Context, content string, tags []string) (models.Snippet, error)

	// AddImage prepends a new image snippet; dataURI must be an image data URI.
	AddImage(ctx context.Context, dataURI, metaText string, tags []string) (models.Snippet, error)

	// UpdateContent replaces the content of one snippet in place.
	UpdateContent(ctx context.Context, id, content string) error

	// Delete removes one snippet.
	Delete(ctx context.Context, id string) error

	// Import appends snippets whose content is not yet present, assigning
	// fresh ids. It returns the number of snippets added.
	Import(ctx context.Context, snippets []models.Snippet) (int, error)

	// Export returns the plaintext collection for backup.
	Export() (models.Collection, error)
}

// IDGenerator produces unique snippet ids.
type IDGenerator interface {
	Generate() string
}
