// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"

	"github.com/MKhiriev/clip-vault/internal/capture"
	"github.com/MKhiriev/clip-vault/internal/service"
	"github.com/MKhiriev/clip-vault/internal/store"
	"github.com/MKhiriev/clip-vault/internal/transfer"
	"github.com/MKhiriev/clip-vault/internal/validators"
)

// Humanize maps an error returned by the vault session to a message that can
// be shown to the user. Internal details never leak into the result.
func Humanize(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, validators.ErrInvalidPIN):
		return MsgInvalidPIN
	case errors.Is(err, service.ErrValidation):
		return MsgInvalidInput
	case errors.Is(err, service.ErrAuthenticationFailed):
		return MsgWrongPIN
	case errors.Is(err, service.ErrPersistence) && errors.Is(err, store.ErrStorage):
		return MsgNotSaved
	case errors.Is(err, service.ErrPersistence), errors.Is(err, store.ErrStorage):
		return MsgStorageUnavailable
	case errors.Is(err, service.ErrState):
		return MsgVaultLocked
	case errors.Is(err, service.ErrSnippetNotFound):
		return MsgSnippetNotFound
	case errors.Is(err, capture.ErrClipboardUnavailable):
		return MsgClipboardUnavailable
	case errors.Is(err, transfer.ErrTransfer):
		return MsgTransferFailed
	default:
		return MsgInternalError
	}
}
