// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package transfer moves plaintext snippets in and out of the vault as a
// JSON array stored in a regular file.
//
// Export files are NOT encrypted. They are written with owner-only
// permissions and are meant for backup or migration between devices.
package transfer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/clip-vault/models"
)

// ErrTransfer is returned when the export file can't be written, read or
// decoded.
var ErrTransfer = errors.New("snippet transfer failed")

// File exports and imports snippets through a single JSON file.
type File struct {
	path string
}

// NewFile returns a [File] bound to path.
func NewFile(path string) *File {
	return &File{path: path}
}

// Path returns the file the snippets are written to and read from.
func (f *File) Path() string {
	return f.path
}

// Write replaces the export file with c encoded as a JSON array.
func (f *File) Write(c models.Collection) error {
	if c == nil {
		c = models.Collection{}
	}
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode snippets: %w", ErrTransfer, err)
	}

	if dir := filepath.Dir(f.path); dir != "." {
		if err = os.MkdirAll(dir, 0o700); err != nil {
			return fmt.Errorf("%w: create export dir: %w", ErrTransfer, err)
		}
	}
	if err = os.WriteFile(f.path, data, 0o600); err != nil {
		return fmt.Errorf("%w: write %s: %w", ErrTransfer, f.path, err)
	}
	return nil
}

// Read decodes the export file. Missing fields are left zero; the vault
// session fills them on import.
func (f *File) Read() ([]models.Snippet, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("%w: read %s: %w", ErrTransfer, f.path, err)
	}

	var snippets []models.Snippet
	if err = json.Unmarshal(data, &snippets); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %w", ErrTransfer, f.path, err)
	}
	return snippets, nil
}
