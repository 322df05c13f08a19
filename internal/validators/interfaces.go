// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds input validation for the vault: the PIN format
// guard used before key derivation and structural checks on snippets and
// collections before they are sealed.
//
// Rules are expressed with ozzo-validation; every failure is wrapped in one
// of the package sentinels so callers can match it with [errors.Is].
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
