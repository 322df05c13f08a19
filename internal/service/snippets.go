// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/clip-vault/models"
)

func (s *vaultSession) AddText(ctx context.Context, content string, tags []string) (models.Snippet, error) {
	return s.add(ctx, models.Snippet{
		Type:    models.SnippetText,
		Content: content,
		Tags:    tags,
	})
}

func (s *vaultSession) AddImage(ctx context.Context, dataURI, metaText string, tags []string) (models.Snippet, error) {
	return s.add(ctx, models.Snippet{
		Type:     models.SnippetImage,
		Content:  dataURI,
		MetaText: metaText,
		Tags:     tags,
	})
}

func (s *vaultSession) add(ctx context.Context, snippet models.Snippet) (models.Snippet, error) {
	snippet.ID = s.ids.Generate()
	snippet.Tags = normalizeTags(snippet.Tags)
	snippet.Date = s.now().UTC()

	if err := s.validator.Validate(ctx, snippet); err != nil {
		return models.Snippet{}, mapValidationError(err)
	}

	err := s.Mutate(ctx, func(c models.Collection) (models.Collection, error) {
		return append(models.Collection{snippet}, c...), nil
	})
	switch {
	case errors.Is(err, ErrPersistence):
		// memory already holds the snippet
		return snippet, err
	case err != nil:
		return models.Snippet{}, err
	}
	return snippet, nil
}

func (s *vaultSession) UpdateContent(ctx context.Context, id, content string) error {
	return s.Mutate(ctx, func(c models.Collection) (models.Collection, error) {
		i := c.IndexOf(id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrSnippetNotFound, id)
		}
		c[i].Content = content
		return c, nil
	})
}

func (s *vaultSession) Delete(ctx context.Context, id string) error {
	return s.Mutate(ctx, func(c models.Collection) (models.Collection, error) {
		i := c.IndexOf(id)
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrSnippetNotFound, id)
		}
		return append(c[:i], c[i+1:]...), nil
	})
}

// Import appends snippets after the existing ones in the order given. A
// snippet whose content is already present, or appeared earlier in the same
// batch, is skipped. Every imported snippet gets a new id.
func (s *vaultSession) Import(ctx context.Context, snippets []models.Snippet) (int, error) {
	added := 0
	err := s.Mutate(ctx, func(c models.Collection) (models.Collection, error) {
		for _, in := range snippets {
			if c.ContainsContent(in.Content) {
				continue
			}
			in.ID = s.ids.Generate()
			if in.Type == "" {
				in.Type = models.SnippetText
			}
			in.Tags = normalizeTags(in.Tags)
			if in.Date.IsZero() {
				in.Date = s.now().UTC()
			}
			c = append(c, in)
			added++
		}
		return c, nil
	})
	switch {
	case errors.Is(err, ErrPersistence):
		return added, err
	case err != nil:
		return 0, err
	}

	s.logger.Info().Str("func", "vaultSession.Import").Int("offered", len(snippets)).Int("added", added).Msg("snippets imported")
	return added, nil
}

func (s *vaultSession) Export() (models.Collection, error) {
	return s.Snippets()
}

// normalizeTags trims tags, drops empty ones and duplicates, and never
// returns nil so the persisted form is always an array.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
