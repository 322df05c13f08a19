// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/clip-vault/internal/validators"
	"github.com/MKhiriev/clip-vault/models"
)

const (
	// SaltSize is the length of the key-derivation salt in bytes.
	SaltSize = 16
	// KeySize is the length of the derived AES-256 key in bytes.
	KeySize = 32
	// IVSize is the length of the GCM nonce in bytes.
	IVSize = 12
)

// KDFParams are the Argon2id tuning parameters.
type KDFParams struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
}

// DefaultKDFParams returns parameters suitable for a desktop client. PINs
// come from a space of only one million values, so derivation is expensive:
//   - time cost:   3 iterations
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func DefaultKDFParams() KDFParams {
	return KDFParams{
		Time:      3,
		MemoryKiB: 64 * 1024,
		Threads:   4,
	}
}

// keyChainService is the private implementation of [KeyChainService].
type keyChainService struct {
	params KDFParams
	rand   io.Reader
}

// NewKeyChainService constructs a [KeyChainService]. Zero fields of params
// are replaced by the corresponding [DefaultKDFParams] value.
func NewKeyChainService(params KDFParams) KeyChainService {
	def := DefaultKDFParams()
	if params.Time == 0 {
		params.Time = def.Time
	}
	if params.MemoryKiB == 0 {
		params.MemoryKiB = def.MemoryKiB
	}
	if params.Threads == 0 {
		params.Threads = def.Threads
	}

	return &keyChainService{
		params: params,
		rand:   rand.Reader,
	}
}

// GenerateSalt implements [KeyChainService]. It reads SaltSize bytes from
// the OS CSPRNG.
func (k *keyChainService) GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(k.rand, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}

// DeriveKey implements [KeyChainService]. The PIN format is checked first;
// the key is then derived with Argon2id using the receiver's parameters.
func (k *keyChainService) DeriveKey(pin string, salt []byte) ([]byte, error) {
	if err := validators.ValidatePIN(pin); err != nil {
		return nil, err
	}
	if len(salt) != SaltSize {
		return nil, ErrInvalidSalt
	}

	return argon2.IDKey(
		[]byte(pin),
		salt,
		k.params.Time,
		k.params.MemoryKiB,
		k.params.Threads,
		KeySize,
	), nil
}

// Encrypt implements [KeyChainService].
func (k *keyChainService) Encrypt(data any, key []byte) (models.CipherEnvelope, error) {
	// 1. Serialize to JSON
	plaintext, err := json.Marshal(data)
	if err != nil {
		return models.CipherEnvelope{}, fmt.Errorf("marshal data: %w", err)
	}
	defer Zero(plaintext)

	// 2. Build AES-GCM cipher from key
	gcm, err := newGCM(key)
	if err != nil {
		return models.CipherEnvelope{}, err
	}

	// 3. Fresh random IV for every seal
	iv := make([]byte, IVSize)
	if _, err := io.ReadFull(k.rand, iv); err != nil {
		return models.CipherEnvelope{}, fmt.Errorf("generate iv: %w", err)
	}

	// 4. Seal; the tag is appended to the ciphertext
	return models.CipherEnvelope{
		IV:      iv,
		Content: gcm.Seal(nil, iv, plaintext, nil),
	}, nil
}

// Decrypt implements [KeyChainService].
func (k *keyChainService) Decrypt(envelope models.CipherEnvelope, key []byte, target any) error {
	gcm, err := newGCM(key)
	if err != nil {
		return ErrDecryption
	}

	if len(envelope.IV) != gcm.NonceSize() || len(envelope.Content) < gcm.Overhead() {
		return ErrDecryption
	}

	// Verifies the tag. A wrong PIN ends up here.
	plaintext, err := gcm.Open(nil, envelope.IV, envelope.Content, nil)
	if err != nil {
		return ErrDecryption
	}
	defer Zero(plaintext)

	if err = json.Unmarshal(plaintext, target); err != nil {
		return ErrDecryption
	}

	return nil
}

func newGCM(key []byte) (cipher.AEAD, error) {
	if len(key) != KeySize {
		return nil, ErrInvalidKey
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}

	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}

	return gcm, nil
}

// Zero overwrites b with zeros. Used to wipe keys and plaintext buffers
// once they are no longer needed.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
