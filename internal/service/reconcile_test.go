package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-vault/models"
)

func queue(t *testing.T, f *fileFixture, contents ...string) {
	t.Helper()
	for i, c := range contents {
		_, err := f.store.AddPending(context.Background(), models.PendingClip{Content: c, Timestamp: int64(1000 + i)})
		require.NoError(t, err)
	}
}

// TestScenario_PendingClipsFolded covers a queue of foo and bar folded into an
// empty collection on unlock.
func TestScenario_PendingClipsFolded(t *testing.T) {
	ctx := context.Background()
	s, f := newUnlockedSession(t)
	s.Lock()

	// pushed oldest first, so storage order is foo, bar
	queue(t, f, "bar", "foo")
	pending, err := f.store.LoadPending(ctx)
	require.NoError(t, err)
	require.Equal(t, "foo", pending[0].Content)

	require.NoError(t, s.Unlock(ctx, testPIN))

	snippets, err := s.Snippets()
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	for _, sn := range snippets {
		assert.Equal(t, models.SnippetText, sn.Type)
		assert.True(t, sn.HasTag(models.TagAuto))
		assert.NotEmpty(t, sn.ID)
	}
	// each clip is prepended in storage order
	assert.Equal(t, "bar", snippets[0].Content)
	assert.Equal(t, "foo", snippets[1].Content)
	assert.Equal(t, time.UnixMilli(1000).UTC(), snippets[0].Date)
	assert.Equal(t, time.UnixMilli(1001).UTC(), snippets[1].Date)

	pending, err = f.store.LoadPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)

	// the folded clips were persisted, not only kept in memory
	reopened := f.open(t)
	require.NoError(t, reopened.Unlock(ctx, testPIN))
	persisted, err := reopened.Snippets()
	require.NoError(t, err)
	assert.Equal(t, snippets, persisted)
}

func TestReconcile_SecondRunIsNoop(t *testing.T) {
	ctx := context.Background()
	s, f := newUnlockedSession(t)
	s.Lock()
	queue(t, f, "one", "two")
	require.NoError(t, s.Unlock(ctx, testPIN))

	before := f.raw(t)
	first, err := s.Snippets()
	require.NoError(t, err)

	s.mu.Lock()
	err = s.reconcilePending(ctx)
	s.mu.Unlock()
	require.NoError(t, err)

	second, err := s.Snippets()
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, before, f.raw(t))
}

func TestReconcile_KnownContentNeverReAdded(t *testing.T) {
	ctx := context.Background()
	s, f := newUnlockedSession(t)
	_, err := s.AddText(ctx, "already saved", nil)
	require.NoError(t, err)
	s.Lock()

	queue(t, f, "already saved")
	require.NoError(t, s.Unlock(ctx, testPIN))

	snippets, err := s.Snippets()
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.False(t, snippets[0].HasTag(models.TagAuto))

	// a duplicate-only queue is discarded
	pending, err := f.store.LoadPending(ctx)
	require.NoError(t, err)
	assert.Empty(t, pending)
}

func TestReconcile_DuplicatesWithinQueue(t *testing.T) {
	ctx := context.Background()
	s, f := newUnlockedSession(t)
	s.Lock()

	// only an immediate repeat of the head is suppressed on capture
	queue(t, f, "x", "y", "x")
	pending, err := f.store.LoadPending(ctx)
	require.NoError(t, err)
	require.Len(t, pending, 3)

	require.NoError(t, s.Unlock(ctx, testPIN))

	snippets, err := s.Snippets()
	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "y", snippets[0].Content)
	assert.Equal(t, "x", snippets[1].Content)
}

func TestReconcile_BlankClipsSkipped(t *testing.T) {
	ctx := context.Background()
	s, f := newUnlockedSession(t)
	s.Lock()
	queue(t, f, "  \n", "real")

	require.NoError(t, s.Unlock(ctx, testPIN))

	snippets, err := s.Snippets()
	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Equal(t, "real", snippets[0].Content)
}

func TestReconcile_MissingTimestampUsesNow(t *testing.T) {
	ctx := context.Background()
	s, f := newUnlockedSession(t)
	s.Lock()
	fixed := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	s.now = func() time.Time { return fixed }

	_, err := f.store.AddPending(ctx, models.PendingClip{Content: "undated"})
	require.NoError(t, err)
	require.NoError(t, s.Unlock(ctx, testPIN))

	snippet, err := s.Snippet("id-1")
	require.NoError(t, err)
	assert.Equal(t, fixed, snippet.Date)
}
