// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

var (
	// ErrStorage wraps every failure of the underlying medium (disk, database).
	// The service layer maps it to a persistence error.
	ErrStorage = errors.New("vault storage failure")

	// ErrUnsupportedDriver is returned by NewVaultStore for an unknown
	// storage driver name.
	ErrUnsupportedDriver = errors.New("unsupported storage driver")

	// ErrCorruptRecord is returned when the persisted record can't be decoded.
	ErrCorruptRecord = errors.New("vault record is corrupt")
)
