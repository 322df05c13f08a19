// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation reports malformed input (a PIN that is not six digits, an
	// invalid snippet). Session state is unchanged.
	ErrValidation = errors.New("validation failed")

	// ErrAuthenticationFailed reports a wrong PIN or an envelope that does not
	// open. The two are indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")

	// ErrPersistence reports a storage failure. In-memory state may be ahead
	// of what is on disk.
	ErrPersistence = errors.New("persistence failed")

	// ErrState reports an operation invoked in the wrong session state.
	ErrState = errors.New("invalid session state")

	// ErrSnippetNotFound is returned when no snippet has the requested id.
	ErrSnippetNotFound = errors.New("snippet not found")

	// errNothingToReconcile aborts the reconciliation mutation when every
	// pending clip is already in the collection.
	errNothingToReconcile = errors.New("no new pending clips")
)
