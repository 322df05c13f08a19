package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/clip-vault/internal/capture"
	"github.com/MKhiriev/clip-vault/internal/service"
	"github.com/MKhiriev/clip-vault/internal/store"
	"github.com/MKhiriev/clip-vault/internal/transfer"
	"github.com/MKhiriev/clip-vault/internal/validators"
)

func TestHumanize(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{
			name: "malformed pin",
			err:  fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidPIN),
			want: MsgInvalidPIN,
		},
		{
			name: "invalid snippet",
			err:  fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidSnippet),
			want: MsgInvalidInput,
		},
		{name: "wrong pin", err: service.ErrAuthenticationFailed, want: MsgWrongPIN},
		{
			name: "write failed",
			err:  fmt.Errorf("%w: %w", service.ErrPersistence, store.ErrStorage),
			want: MsgNotSaved,
		},
		{
			name: "encrypt failed",
			err:  fmt.Errorf("%w: encrypt collection", service.ErrPersistence),
			want: MsgStorageUnavailable,
		},
		{name: "wrong state", err: fmt.Errorf("%w: mutate in state locked", service.ErrState), want: MsgVaultLocked},
		{name: "missing snippet", err: fmt.Errorf("%w: id-1", service.ErrSnippetNotFound), want: MsgSnippetNotFound},
		{name: "settings write failed", err: fmt.Errorf("%w: set monitoring", store.ErrStorage), want: MsgStorageUnavailable},
		{name: "clipboard", err: fmt.Errorf("%w: xclip missing", capture.ErrClipboardUnavailable), want: MsgClipboardUnavailable},
		{name: "transfer", err: fmt.Errorf("%w: read x.json", transfer.ErrTransfer), want: MsgTransferFailed},
		{name: "unknown", err: errors.New("/home/user/.vault: boom"), want: MsgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Humanize(tt.err))
		})
	}
}
