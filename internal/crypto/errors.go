// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrDecryption is the single error returned by Decrypt. It
	// carries no cause: a wrong key and corrupted data look the same.
	ErrDecryption = errors.New("decryption failed")

	// ErrInvalidSalt is returned by DeriveKey when the salt has the wrong length.
	ErrInvalidSalt = errors.New("invalid salt")

	// ErrInvalidKey is returned by Encrypt when the key is not 32 bytes long.
	ErrInvalidKey = errors.New("invalid key length")
)
