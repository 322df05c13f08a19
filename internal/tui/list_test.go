package tui

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-vault/internal/app"
	"github.com/MKhiriev/clip-vault/internal/capture"
	"github.com/MKhiriev/clip-vault/models"
)

func unlockedHarness(t *testing.T) (*harness, *fixture) {
	t.Helper()
	f := newFixture(t)
	h := newHarness(t, f)
	h.enterPIN(testPIN)
	require.Equal(t, screenList, h.root.current)
	return h, f
}

func TestList_AddCopyDelete(t *testing.T) {
	h, f := unlockedHarness(t)

	h.typeText("n")
	require.True(t, h.root.list.adding)
	h.typeText("hello vault")
	h.press(tea.KeyEnter)

	require.False(t, h.root.list.adding)
	require.Len(t, h.root.list.items, 1)
	assert.Equal(t, "snippet saved", h.root.list.status)
	assert.Contains(t, h.root.View(), "hello vault")

	h.typeText("c")
	assert.Equal(t, "hello vault", f.clipboard.get())
	assert.Equal(t, "copied to clipboard", h.root.list.status)

	h.typeText("d")
	assert.Equal(t, confirmDelete, h.root.list.confirm)
	h.press(tea.KeyEsc)
	assert.Len(t, h.root.list.items, 1)

	h.typeText("d")
	h.typeText("y")
	assert.Empty(t, h.root.list.items)
	assert.Equal(t, "snippet deleted", h.root.list.status)

	snippets, err := f.deps.session.Snippets()
	require.NoError(t, err)
	assert.Empty(t, snippets)
}

func TestList_AddBlankIsRejected(t *testing.T) {
	h, _ := unlockedHarness(t)

	h.typeText("n")
	h.typeText("   ")
	h.press(tea.KeyEnter)

	assert.True(t, h.root.list.adding)
	assert.Equal(t, app.MsgInvalidInput, h.root.list.errMsg)

	h.press(tea.KeyEsc)
	assert.False(t, h.root.list.adding)
	assert.Empty(t, h.root.list.items)
}

func TestList_Navigation(t *testing.T) {
	h, f := unlockedHarness(t)
	ctx := context.Background()
	for i := range 3 {
		_, err := f.deps.session.AddText(ctx, fmt.Sprintf("snippet %d", i), nil)
		require.NoError(t, err)
	}
	h.send(execCmd(cmdLoadSnippets(f.deps))[0])
	require.Len(t, h.root.list.items, 3)

	h.press(tea.KeyUp)
	assert.Equal(t, 0, h.root.list.idx)
	h.press(tea.KeyDown)
	h.typeText("j")
	assert.Equal(t, 2, h.root.list.idx)
	h.press(tea.KeyDown)
	assert.Equal(t, 2, h.root.list.idx)
	h.typeText("k")
	assert.Equal(t, 1, h.root.list.idx)

	h.typeText("c")
	assert.Equal(t, "snippet 1", f.clipboard.get())

	h.typeText("d")
	h.typeText("y")
	h.press(tea.KeyDown)
	h.press(tea.KeyDown)
	assert.Equal(t, 1, h.root.list.idx)
}

func TestList_SaveClipboard(t *testing.T) {
	h, f := unlockedHarness(t)

	f.clipboard.text = "  \n"
	h.typeText("s")
	assert.Equal(t, "clipboard is empty", h.root.list.status)
	assert.Empty(t, h.root.list.items)

	f.clipboard.text = "from the clipboard"
	h.typeText("s")
	require.Len(t, h.root.list.items, 1)
	assert.Equal(t, "from the clipboard", h.root.list.items[0].Content)
	assert.Equal(t, models.SnippetText, h.root.list.items[0].Type)
}

func TestList_ClipboardFailure(t *testing.T) {
	h, f := unlockedHarness(t)

	f.clipboard.err = fmt.Errorf("%w: no xclip", capture.ErrClipboardUnavailable)
	h.typeText("s")
	assert.Equal(t, app.MsgClipboardUnavailable, h.root.list.errMsg)

	f.clipboard.err = nil
	_, err := f.deps.session.AddText(context.Background(), "x", nil)
	require.NoError(t, err)
	h.send(execCmd(cmdLoadSnippets(f.deps))[0])

	f.clipboard.err = fmt.Errorf("%w: no xclip", capture.ErrClipboardUnavailable)
	h.typeText("c")
	assert.Equal(t, app.MsgClipboardUnavailable, h.root.list.errMsg)
}

func TestList_ToggleMonitoring(t *testing.T) {
	h, f := unlockedHarness(t)
	ctx := context.Background()
	assert.Contains(t, h.root.View(), "capture off")

	h.typeText("m")
	enabled, err := f.store.Monitoring(ctx)
	require.NoError(t, err)
	assert.True(t, enabled)
	assert.Contains(t, h.root.View(), "capture on")

	h.typeText("m")
	enabled, err = f.store.Monitoring(ctx)
	require.NoError(t, err)
	assert.False(t, enabled)
}

func TestList_ExportImport(t *testing.T) {
	h, f := unlockedHarness(t)
	ctx := context.Background()
	_, err := f.deps.session.AddText(ctx, "one", []string{"work"})
	require.NoError(t, err)
	_, err = f.deps.session.AddText(ctx, "two", nil)
	require.NoError(t, err)

	h.typeText("e")
	assert.Equal(t, fmt.Sprintf("exported 2 snippets to %s", f.transfer.Path()), h.root.list.status)

	exported, err := f.transfer.Read()
	require.NoError(t, err)
	require.Len(t, exported, 2)

	// A second vault receives the backup plus one snippet it already has.
	g := newFixture(t)
	g.transfer = f.transfer
	g.deps.transfer = f.transfer
	require.NoError(t, g.deps.session.Setup(ctx, testPIN))
	_, err = g.deps.session.AddText(ctx, "two", nil)
	require.NoError(t, err)

	h2 := newHarness(t, g)
	h2.typeText("i")
	assert.Equal(t, "imported 1 of 2 snippets", h2.root.list.status)
	assert.Len(t, h2.root.list.items, 2)
}

func TestList_ImportMissingFile(t *testing.T) {
	h, f := unlockedHarness(t)
	_, err := os.Stat(f.transfer.Path())
	require.True(t, os.IsNotExist(err))

	h.typeText("i")
	assert.Equal(t, app.MsgTransferFailed, h.root.list.errMsg)
}

func TestList_View(t *testing.T) {
	m := newListModel(deps{}, "", "")
	m.loading = false
	m.items = models.Collection{
		{ID: "1", Type: models.SnippetImage, Content: "data:image/png;base64,SECRETBYTES", MetaText: "diagram", Date: time.Now()},
		{ID: "2", Type: models.SnippetText, Content: "line one\nline two", Tags: []string{"auto"}, Date: time.Now()},
	}

	view := m.View()
	assert.Contains(t, view, "[I]")
	assert.Contains(t, view, "diagram")
	assert.NotContains(t, view, "SECRETBYTES")
	assert.Contains(t, view, "line one line two")
	assert.Contains(t, view, "#auto")
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "ab", fitText("abcdef", 2))
	assert.Equal(t, "a b c", fitText("a\n b\t\tc", 0))
	assert.Equal(t, "привет...", fitText("привет мир", 9))
}
