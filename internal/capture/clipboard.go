// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package capture

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/clip-vault/models"
)

// Clipboard reads and writes the system clipboard text.
type Clipboard interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

// PendingQueue is the part of the vault store the worker needs.
type PendingQueue interface {
	Monitoring(ctx context.Context) (bool, error)
	AddPending(ctx context.Context, clip models.PendingClip) (bool, error)
}

type systemClipboard struct{}

// SystemClipboard returns a [Clipboard] backed by the OS clipboard.
func SystemClipboard() Clipboard {
	return systemClipboard{}
}

func (systemClipboard) ReadAll() (string, error) {
	text, err := clipboard.ReadAll()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return text, nil
}

func (systemClipboard) WriteAll(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("%w: %w", ErrClipboardUnavailable, err)
	}
	return nil
}

// Unsupported reports whether the host has no usable clipboard utility.
func Unsupported() bool {
	return clipboard.Unsupported
}
