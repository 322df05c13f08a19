// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates an unknown driver or an empty DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidKDFConfigs indicates Argon2id parameters out of range.
	ErrInvalidKDFConfigs = errors.New("invalid kdf configuration")
	// ErrInvalidCaptureConfigs indicates an unusable poll interval.
	ErrInvalidCaptureConfigs = errors.New("invalid capture configuration")
	// ErrInvalidTransferConfigs indicates a missing import/export path.
	ErrInvalidTransferConfigs = errors.New("invalid transfer configuration")
)
