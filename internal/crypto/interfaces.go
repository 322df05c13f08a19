// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "github.com/MKhiriev/clip-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/keychain_service_mock.go -package=mock

// KeyChainService holds all vault cryptography in the zero-knowledge scheme.
// It knows nothing about storage or sessions: it turns a PIN into a key and
// seals or opens payloads with that key.
//
// Scheme:
//
//	Salt     = GenerateSalt()                    (setup, every re-key)
//	Key      = DeriveKey(pin, salt)              (Argon2id)
//	Envelope = Encrypt(collection, Key)          (AES-256-GCM, fresh IV)
//	_        = Decrypt(Envelope, Key, &target)   (tag verified)
type KeyChainService interface {
	// GenerateSalt returns 16 random bytes. The salt is not a secret and is
	// stored next to the envelope in plaintext.
	GenerateSalt() ([]byte, error)

	// DeriveKey derives a 256-bit key from a 6-digit PIN and a salt.
	// The same (pin, salt) always yields the same key. A PIN that is not
	// exactly six ASCII digits is rejected before any work is done.
	DeriveKey(pin string, salt []byte) ([]byte, error)

	// Encrypt serializes data to JSON and seals it under key with a freshly
	// generated 12-byte IV.
	Encrypt(data any, key []byte) (models.CipherEnvelope, error)

	// Decrypt opens envelope with key and unmarshals the plaintext into
	// target (a non-nil pointer, as for json.Unmarshal). Every failure is
	// reported as ErrDecryption and nothing else.
	Decrypt(envelope models.CipherEnvelope, key []byte, target any) error
}
