package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_AllFields verifies that every env-tagged field is read.
func TestParseEnv_AllFields(t *testing.T) {
	t.Setenv("STORAGE_DRIVER", "sqlite")
	t.Setenv("STORAGE_DSN", "/tmp/vault.db")
	t.Setenv("KDF_TIME", "2")
	t.Setenv("KDF_MEMORY_KIB", "1024")
	t.Setenv("KDF_THREADS", "2")
	t.Setenv("CAPTURE_ENABLED", "true")
	t.Setenv("CAPTURE_POLL_INTERVAL", "2s")
	t.Setenv("TRANSFER_EXPORT_PATH", "out.json")
	t.Setenv("CONFIG", "cfg.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, Storage{Driver: "sqlite", DSN: "/tmp/vault.db"}, cfg.Storage)
	assert.Equal(t, KDF{Time: 2, MemoryKiB: 1024, Threads: 2}, cfg.KDF)
	assert.Equal(t, Capture{Enabled: true, PollInterval: 2 * time.Second}, cfg.Capture)
	assert.Equal(t, "out.json", cfg.Transfer.ExportPath)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
}

// TestParseEnv_InvalidValue verifies that a malformed value is reported.
func TestParseEnv_InvalidValue(t *testing.T) {
	t.Setenv("KDF_TIME", "many")

	err := parseEnv(&StructuredConfig{})
	assert.Error(t, err)
}

// TestLoadDotEnv_SetsUnsetVariables verifies that a dotenv file populates
// variables that are not already present.
func TestLoadDotEnv_SetsUnsetVariables(t *testing.T) {
	const key = "CLIPVAULT_DOTENV_TEST_VALUE"
	t.Cleanup(func() { _ = os.Unsetenv(key) })

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(key+"=from-dotenv\n"), 0o600))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "from-dotenv", os.Getenv(key))
}

// TestLoadDotEnv_DoesNotOverride verifies that real environment variables
// keep precedence over the dotenv file.
func TestLoadDotEnv_DoesNotOverride(t *testing.T) {
	t.Setenv("STORAGE_DSN", "real.json")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("STORAGE_DSN=dotenv.json\n"), 0o600))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "real.json", os.Getenv("STORAGE_DSN"))
}
