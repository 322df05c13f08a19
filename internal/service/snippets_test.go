package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-vault/models"
)

func TestAddText(t *testing.T) {
	ctx := context.Background()
	s, _ := newUnlockedSession(t)
	fixed := time.Date(2026, 5, 6, 7, 8, 9, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	first, err := s.AddText(ctx, "first", []string{" work ", "", "work", "misc"})
	require.NoError(t, err)
	second, err := s.AddText(ctx, "second", nil)
	require.NoError(t, err)

	assert.Equal(t, models.Snippet{
		ID:      "id-1",
		Type:    models.SnippetText,
		Content: "first",
		Tags:    []string{"work", "misc"},
		Date:    fixed,
	}, first)
	assert.Equal(t, []string{}, second.Tags)

	snippets, err := s.Snippets()
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, second.ID, snippets[0].ID, "newest first")
	assert.Equal(t, first.ID, snippets[1].ID)
}

func TestAddText_Empty(t *testing.T) {
	s, f := newUnlockedSession(t)
	before := f.raw(t)

	_, err := s.AddText(context.Background(), "", nil)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, before, f.raw(t))
}

func TestAddImage(t *testing.T) {
	ctx := context.Background()
	s, _ := newUnlockedSession(t)

	img, err := s.AddImage(ctx, "data:image/png;base64,iVBORw0KGgo=", "logo", []string{"design"})
	require.NoError(t, err)
	assert.Equal(t, models.SnippetImage, img.Type)
	assert.Equal(t, "logo", img.MetaText)

	_, err = s.AddImage(ctx, "https://example.com/logo.png", "", nil)
	assert.ErrorIs(t, err, ErrValidation)

	got, err := s.Snippet(img.ID)
	require.NoError(t, err)
	assert.Equal(t, img, got)
}

func TestUpdateContent(t *testing.T) {
	ctx := context.Background()
	s, _ := newUnlockedSession(t)
	sn, err := s.AddText(ctx, "draft", nil)
	require.NoError(t, err)

	require.NoError(t, s.UpdateContent(ctx, sn.ID, "final"))
	got, err := s.Snippet(sn.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Content)
	assert.Equal(t, sn.ID, got.ID)
	assert.Equal(t, sn.Date, got.Date)

	assert.ErrorIs(t, s.UpdateContent(ctx, "missing", "x"), ErrSnippetNotFound)
	assert.ErrorIs(t, s.UpdateContent(ctx, sn.ID, ""), ErrValidation)
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s, f := newUnlockedSession(t)
	a, err := s.AddText(ctx, "a", nil)
	require.NoError(t, err)
	b, err := s.AddText(ctx, "b", nil)
	require.NoError(t, err)

	require.NoError(t, s.Delete(ctx, a.ID))
	assert.ErrorIs(t, s.Delete(ctx, a.ID), ErrSnippetNotFound)

	_, err = s.Snippet(a.ID)
	assert.ErrorIs(t, err, ErrSnippetNotFound)

	reopened := f.open(t)
	require.NoError(t, reopened.Unlock(ctx, testPIN))
	snippets, err := reopened.Snippets()
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Equal(t, b.ID, snippets[0].ID)
}

func TestImport(t *testing.T) {
	ctx := context.Background()
	s, _ := newUnlockedSession(t)
	existing, err := s.AddText(ctx, "existing", nil)
	require.NoError(t, err)

	when := time.Date(2025, 12, 31, 23, 0, 0, 0, time.UTC)
	added, err := s.Import(ctx, []models.Snippet{
		{ID: existing.ID, Type: models.SnippetText, Content: "imported one", Date: when},
		{ID: "foreign", Content: "existing"},
		{ID: "foreign", Type: models.SnippetText, Content: "imported two", Tags: []string{"x"}},
		{ID: "again", Type: models.SnippetText, Content: "imported one"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, added)

	snippets, err := s.Snippets()
	require.NoError(t, err)
	require.Len(t, snippets, 3)

	assert.Equal(t, existing.ID, snippets[0].ID)
	assert.Equal(t, "imported one", snippets[1].Content)
	assert.Equal(t, when, snippets[1].Date)
	assert.Equal(t, "imported two", snippets[2].Content)
	assert.Equal(t, []string{"x"}, snippets[2].Tags)

	ids := map[string]struct{}{}
	for _, sn := range snippets {
		ids[sn.ID] = struct{}{}
	}
	assert.Len(t, ids, 3, "imported snippets get fresh ids")
	assert.NotContains(t, ids, "foreign")
}

func TestImport_InvalidBatchRejected(t *testing.T) {
	ctx := context.Background()
	s, _ := newUnlockedSession(t)

	added, err := s.Import(ctx, []models.Snippet{
		{Type: models.SnippetText, Content: "fine"},
		{Type: models.SnippetImage, Content: "not a data uri"},
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, added)

	snippets, err := s.Snippets()
	require.NoError(t, err)
	assert.Empty(t, snippets)
}

func TestExport_ReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s, _ := newUnlockedSession(t)
	_, err := s.AddText(ctx, "secret", []string{"a"})
	require.NoError(t, err)

	exported, err := s.Export()
	require.NoError(t, err)
	exported[0].Content = "changed"
	exported[0].Tags[0] = "changed"

	again, err := s.Export()
	require.NoError(t, err)
	assert.Equal(t, "secret", again[0].Content)
	assert.Equal(t, []string{"a"}, again[0].Tags)
}
