// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidPIN        = errors.New("PIN must be exactly 6 digits")
	ErrInvalidSnippet    = errors.New("invalid snippet")
	ErrDuplicateSnippet  = errors.New("duplicate snippet id")
	ErrInvalidCollection = errors.New("invalid collection")
)
