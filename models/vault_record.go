// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// VaultRecord is everything the vault keeps on disk. Salt and EncryptedData
// are always written together; PendingClips and Monitoring belong to the
// capture side and are plaintext.
type VaultRecord struct {
	Salt          ByteArray       `json:"salt,omitempty"`
	EncryptedData *CipherEnvelope `json:"encryptedData,omitempty"`
	PendingClips  []PendingClip   `json:"pendingClips,omitempty"`
	Monitoring    bool            `json:"monitoring"`
}

// Initialized reports whether a salt has ever been saved.
func (r VaultRecord) Initialized() bool {
	return len(r.Salt) > 0
}
