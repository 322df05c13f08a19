package transfer

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-vault/models"
)

func TestFile_WriteRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup", "export.json")
	f := NewFile(path)
	assert.Equal(t, path, f.Path())

	date := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	in := models.Collection{
		{ID: "a", Type: models.SnippetText, Content: "hello", Tags: []string{"x"}, Date: date},
		{ID: "b", Type: models.SnippetImage, Content: "data:image/png;base64,AAAA", MetaText: "logo", Tags: []string{}, Date: date},
	}
	require.NoError(t, f.Write(in))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	out, err := f.Read()
	require.NoError(t, err)
	assert.Equal(t, []models.Snippet(in), out)
}

func TestFile_WriteNilCollection(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	f := NewFile(path)

	require.NoError(t, f.Write(nil))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestFile_ReadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := NewFile(filepath.Join(t.TempDir(), "nope.json")).Read()
		assert.ErrorIs(t, err, ErrTransfer)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not a json array", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"id":"a"}`), 0o600))

		_, err := NewFile(path).Read()
		assert.ErrorIs(t, err, ErrTransfer)
	})
}

func TestFile_PartialSnippets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"content":"only content"}]`), 0o600))

	out, err := NewFile(path).Read()
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "only content", out[0].Content)
	assert.Empty(t, out[0].ID)
	assert.True(t, out[0].Date.IsZero())
}
