// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/MKhiriev/clip-vault/models"
)

// reconcilePending folds the plaintext capture queue into the collection.
// Clips are visited in storage order and each new one is prepended as a text
// snippet tagged "auto". Content that is already present, including content
// added earlier in the same pass, is skipped. The queue is cleared once the
// collection is safely persisted, or right away when nothing was added; a
// failed write leaves it for the next unlock. The caller holds mu.
func (s *vaultSession) reconcilePending(ctx context.Context) error {
	clips, err := s.store.LoadPending(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "vaultSession.reconcilePending").Msg("failed to load pending clips")
		return mapStoreError(err)
	}
	if len(clips) == 0 {
		return nil
	}

	added := 0
	err = s.mutateLocked(ctx, func(c models.Collection) (models.Collection, error) {
		for _, clip := range clips {
			if strings.TrimSpace(clip.Content) == "" || c.ContainsContent(clip.Content) {
				continue
			}
			c = append(models.Collection{s.pendingSnippet(clip)}, c...)
			added++
		}
		if added == 0 {
			return nil, errNothingToReconcile
		}
		return c, nil
	})
	if err != nil && !errors.Is(err, errNothingToReconcile) {
		return err
	}

	if err = s.store.ClearPending(ctx); err != nil {
		s.logger.Err(err).Str("func", "vaultSession.reconcilePending").Msg("failed to clear pending clips")
		return mapStoreError(err)
	}

	s.logger.Info().
		Str("func", "vaultSession.reconcilePending").
		Int("pending", len(clips)).
		Int("added", added).
		Msg("pending clips reconciled")
	return nil
}

func (s *vaultSession) pendingSnippet(clip models.PendingClip) models.Snippet {
	date := s.now()
	if clip.Timestamp > 0 {
		date = time.UnixMilli(clip.Timestamp)
	}
	return models.Snippet{
		ID:      s.ids.Generate(),
		Type:    models.SnippetText,
		Content: clip.Content,
		Tags:    []string{models.TagAuto},
		Date:    date.UTC(),
	}
}
