// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/clip-vault/internal/crypto"
	"github.com/MKhiriev/clip-vault/internal/validators"
)

// mapStoreError translates a storage error into ErrPersistence.
func mapStoreError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrPersistence, err)
}

// mapValidationError translates a validators error into ErrValidation.
func mapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrValidation, err)
}

// mapDeriveError separates a malformed PIN from every other derivation
// failure. A bad persisted salt must look like a wrong PIN to the caller.
func mapDeriveError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, validators.ErrInvalidPIN):
		return mapValidationError(err)
	case errors.Is(err, crypto.ErrInvalidSalt):
		return ErrAuthenticationFailed
	default:
		return fmt.Errorf("derive key: %w", err)
	}
}
