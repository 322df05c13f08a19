// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

// State is the lifecycle phase of a [VaultSession].
type State int32

const (
	// StateUninitialized means no salt has ever been saved; only Setup is
	// allowed.
	StateUninitialized State = iota
	// StateLocked means the vault exists but no key is held.
	StateLocked
	// StateUnlocking is held while a PIN is being checked.
	StateUnlocking
	// StateUnlocked means a key and the decrypted collection are in memory.
	StateUnlocked
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLocked:
		return "locked"
	case StateUnlocking:
		return "unlocking"
	case StateUnlocked:
		return "unlocked"
	default:
		return "unknown"
	}
}
