// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// clip-vault user interface.
//
// All Msg* constants are human-readable message strings shown to the user
// to describe the outcome of an operation. Keeping them in one place ensures
// consistent wording throughout the UI.
package app

const (
	// MsgInvalidPIN is shown when the PIN is not exactly six digits.
	MsgInvalidPIN = "PIN must be exactly 6 digits"

	// MsgPINMismatch is shown when the PIN confirmation differs from the PIN.
	MsgPINMismatch = "PINs do not match"

	// MsgWrongPIN is shown when the vault could not be opened. A wrong PIN and
	// a damaged vault produce the same message.
	MsgWrongPIN = "wrong PIN"

	// MsgInvalidInput is shown when a snippet fails validation.
	MsgInvalidInput = "invalid data provided"

	// MsgNotSaved is shown when a change stays in memory because storage
	// refused the write. The next successful save will include it.
	MsgNotSaved = "change is not saved to disk yet; it will be retried on the next save"

	// MsgStorageUnavailable is shown when the vault file or database can't be
	// read or written.
	MsgStorageUnavailable = "vault storage is unavailable"

	// MsgVaultLocked is shown when an action needs an unlocked vault.
	MsgVaultLocked = "vault is locked"

	// MsgVaultMissing is shown when the vault disappeared while it was locked.
	MsgVaultMissing = "no vault found; create a new PIN"

	// MsgVaultExists is shown when another process created the vault first.
	MsgVaultExists = "a vault already exists; enter its PIN"

	// MsgSnippetNotFound is shown when the selected snippet no longer exists.
	MsgSnippetNotFound = "snippet not found"

	// MsgClipboardUnavailable is shown when the system clipboard can't be used.
	MsgClipboardUnavailable = "clipboard is unavailable"

	// MsgTransferFailed is shown when the export file can't be written or read.
	MsgTransferFailed = "export file can't be written or read"

	// MsgInternalError is shown for any failure without a dedicated message.
	MsgInternalError = "internal error"
)
