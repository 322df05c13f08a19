// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// MaxPendingClips bounds the unencrypted capture queue.
const MaxPendingClips = 20

// PendingClip is text captured while no session key was available.
// It stays in plaintext until the next unlock folds it into the vault.
type PendingClip struct {
	Content string `json:"content"`

	// Timestamp is the capture time in Unix milliseconds.
	Timestamp int64 `json:"timestamp"`
}

// PushPending places clip at the head of queue (newest first) and trims the
// queue to MaxPendingClips, dropping the oldest entries. A clip whose content
// equals the current head is ignored. The second result reports whether the
// queue changed.
func PushPending(queue []PendingClip, clip PendingClip) ([]PendingClip, bool) {
	if len(queue) > 0 && queue[0].Content == clip.Content {
		return queue, false
	}

	out := make([]PendingClip, 0, min(len(queue)+1, MaxPendingClips))
	out = append(out, clip)
	for _, c := range queue {
		if len(out) == MaxPendingClips {
			break
		}
		out = append(out, c)
	}
	return out, true
}
