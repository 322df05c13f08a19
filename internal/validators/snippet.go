// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/MKhiriev/clip-vault/models"
)

const (
	FieldID       = "id"
	FieldType     = "type"
	FieldContent  = "content"
	FieldMetaText = "metaText"
)

const imageDataURIPrefix = "data:image/"

// SnippetValidator checks snippets and whole collections before they are
// handed to the cipher.
type SnippetValidator struct {
}

// NewSnippetValidator returns a [Validator] for [models.Snippet] and
// [models.Collection] values.
func NewSnippetValidator() Validator {
	return &SnippetValidator{}
}

// Validate implements [Validator]. For a snippet, fields limits the check to
// the named fields; for a collection every snippet is fully checked and ids
// must be unique.
func (v *SnippetValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Snippet:
		return v.validateSnippet(value, fields...)
	case *models.Snippet:
		return v.validateSnippet(*value, fields...)

	case models.Collection:
		return v.validateCollection(value)
	case []models.Snippet:
		return v.validateCollection(value)

	default:
		return ErrUnsupportedType
	}
}

func (v *SnippetValidator) validateSnippet(s models.Snippet, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldType, FieldContent, FieldMetaText}
	}

	rules := make([]*validation.FieldRules, 0, len(fields))
	for _, field := range fields {
		switch field {
		case FieldID:
			rules = append(rules, validation.Field(&s.ID, validation.Required))
		case FieldType:
			rules = append(rules, validation.Field(&s.Type,
				validation.Required,
				validation.In(models.SnippetText, models.SnippetImage),
			))
		case FieldContent:
			rules = append(rules, validation.Field(&s.Content,
				validation.Required,
				validation.When(s.Type == models.SnippetImage, validation.By(isImageDataURI)),
			))
		case FieldMetaText:
			rules = append(rules, validation.Field(&s.MetaText,
				validation.When(s.Type != models.SnippetImage, validation.Empty),
			))
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if err := validation.ValidateStruct(&s, rules...); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSnippet, err)
	}
	return nil
}

func (v *SnippetValidator) validateCollection(c []models.Snippet) error {
	seen := make(map[string]struct{}, len(c))
	for i, s := range c {
		if err := v.validateSnippet(s); err != nil {
			return fmt.Errorf("%w: snippet %d: %w", ErrInvalidCollection, i, err)
		}
		if _, ok := seen[s.ID]; ok {
			return fmt.Errorf("%w: %w: %s", ErrInvalidCollection, ErrDuplicateSnippet, s.ID)
		}
		seen[s.ID] = struct{}{}
	}
	return nil
}

func isImageDataURI(value any) error {
	s, _ := value.(string)
	if !strings.HasPrefix(s, imageDataURIPrefix) {
		return fmt.Errorf("must be an image data URI")
	}
	return nil
}
