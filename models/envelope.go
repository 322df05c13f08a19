// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strconv"
)

// ByteArray is a byte slice that is encoded in JSON as an array of numbers
// (0-255) instead of the base64 string encoding/json uses for []byte.
// This keeps the persisted vault record readable by tools that store raw
// byte arrays. Decoding also accepts a base64 string.
type ByteArray []byte

// MarshalJSON implements [json.Marshaler].
func (b ByteArray) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}

	buf := make([]byte, 0, 2+len(b)*4)
	buf = append(buf, '[')
	for i, v := range b {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendUint(buf, uint64(v), 10)
	}
	buf = append(buf, ']')
	return buf, nil
}

// UnmarshalJSON implements [json.Unmarshaler].
func (b *ByteArray) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*b = nil
		return nil

	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw, err := base64.StdEncoding.DecodeString(s)
		if err != nil {
			return fmt.Errorf("decode base64 byte array: %w", err)
		}
		*b = raw
		return nil
	}

	var values []int
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	out := make([]byte, len(values))
	for i, v := range values {
		if v < 0 || v > 255 {
			return fmt.Errorf("byte array value %d out of range at index %d", v, i)
		}
		out[i] = byte(v)
	}
	*b = out
	return nil
}

// CipherEnvelope is the sealed form of a Collection: a random IV and the
// authenticated ciphertext produced under it. It is opaque without the
// session key.
type CipherEnvelope struct {
	// IV is the 12-byte GCM nonce. A fresh one is generated for every seal.
	IV ByteArray `json:"iv"`

	// Content is ciphertext with the authentication tag appended.
	Content ByteArray `json:"content"`
}

// IsZero reports whether the envelope carries no data at all.
func (e CipherEnvelope) IsZero() bool {
	return len(e.IV) == 0 && len(e.Content) == 0
}
