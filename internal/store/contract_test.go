package store

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/clip-vault/internal/config"
	"github.com/MKhiriev/clip-vault/internal/logger"
	"github.com/MKhiriev/clip-vault/models"
)

// storeFactories builds one fresh store per backend in a temp dir.
func storeFactories() map[string]func(t *testing.T) VaultStore {
	return map[string]func(t *testing.T) VaultStore{
		DriverFile: func(t *testing.T) VaultStore {
			s, err := NewVaultStore(context.Background(), config.Storage{
				Driver: DriverFile,
				DSN:    filepath.Join(t.TempDir(), "vault.json"),
			}, logger.Nop())
			require.NoError(t, err)
			return s
		},
		DriverSQLite: func(t *testing.T) VaultStore {
			s, err := NewVaultStore(context.Background(), config.Storage{
				Driver: DriverSQLite,
				DSN:    filepath.Join(t.TempDir(), "nested", "vault.db"),
			}, logger.Nop())
			require.NoError(t, err)
			t.Cleanup(func() { _ = s.Close() })
			return s
		},
	}
}

func testEnvelope(seed byte) models.CipherEnvelope {
	return models.CipherEnvelope{
		IV:      models.ByteArray{seed, seed + 1, seed + 2, 0, 0, 0, 0, 0, 0, 0, 0, 1},
		Content: models.ByteArray{seed, 0xAA, 0xBB, 0xCC},
	}
}

func TestVaultStore_Contract(t *testing.T) {
	for name, newStore := range storeFactories() {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("fresh store is empty", func(t *testing.T) {
				s := newStore(t)

				rec, err := s.Load(ctx)
				require.NoError(t, err)
				assert.False(t, rec.Initialized())
				assert.Nil(t, rec.EncryptedData)
				assert.Empty(t, rec.PendingClips)
				assert.False(t, rec.Monitoring)

				initialized, err := s.IsInitialized(ctx)
				require.NoError(t, err)
				assert.False(t, initialized)
			})

			t.Run("save replaces salt and envelope together", func(t *testing.T) {
				s := newStore(t)

				require.NoError(t, s.Save(ctx, []byte("salt-one-16bytes"), testEnvelope(1)))
				require.NoError(t, s.Save(ctx, []byte("salt-two-16bytes"), testEnvelope(7)))

				rec, err := s.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, models.ByteArray("salt-two-16bytes"), rec.Salt)
				require.NotNil(t, rec.EncryptedData)
				assert.Equal(t, testEnvelope(7), *rec.EncryptedData)

				initialized, err := s.IsInitialized(ctx)
				require.NoError(t, err)
				assert.True(t, initialized)
			})

			t.Run("pending queue is newest first and bounded", func(t *testing.T) {
				s := newStore(t)

				for i := 0; i < models.MaxPendingClips+5; i++ {
					queued, err := s.AddPending(ctx, models.PendingClip{Content: fmt.Sprintf("clip-%d", i), Timestamp: int64(i)})
					require.NoError(t, err)
					assert.True(t, queued)
				}

				clips, err := s.LoadPending(ctx)
				require.NoError(t, err)
				require.Len(t, clips, models.MaxPendingClips)
				assert.Equal(t, fmt.Sprintf("clip-%d", models.MaxPendingClips+4), clips[0].Content)
				assert.Equal(t, "clip-5", clips[len(clips)-1].Content)
				assert.Equal(t, int64(5), clips[len(clips)-1].Timestamp)
			})

			t.Run("duplicate of head is ignored", func(t *testing.T) {
				s := newStore(t)

				queued, err := s.AddPending(ctx, models.PendingClip{Content: "a", Timestamp: 1})
				require.NoError(t, err)
				assert.True(t, queued)

				queued, err = s.AddPending(ctx, models.PendingClip{Content: "a", Timestamp: 2})
				require.NoError(t, err)
				assert.False(t, queued)

				_, err = s.AddPending(ctx, models.PendingClip{Content: "b", Timestamp: 3})
				require.NoError(t, err)
				queued, err = s.AddPending(ctx, models.PendingClip{Content: "a", Timestamp: 4})
				require.NoError(t, err)
				assert.True(t, queued, "non-adjacent duplicate is queued")

				clips, err := s.LoadPending(ctx)
				require.NoError(t, err)
				assert.Equal(t, []models.PendingClip{
					{Content: "a", Timestamp: 4},
					{Content: "b", Timestamp: 3},
					{Content: "a", Timestamp: 1},
				}, clips)
			})

			t.Run("clear pending keeps the vault", func(t *testing.T) {
				s := newStore(t)

				require.NoError(t, s.Save(ctx, []byte("salt-one-16bytes"), testEnvelope(1)))
				_, err := s.AddPending(ctx, models.PendingClip{Content: "x", Timestamp: 1})
				require.NoError(t, err)

				require.NoError(t, s.ClearPending(ctx))
				require.NoError(t, s.ClearPending(ctx))

				rec, err := s.Load(ctx)
				require.NoError(t, err)
				assert.Empty(t, rec.PendingClips)
				assert.True(t, rec.Initialized())
			})

			t.Run("monitoring flag round trips", func(t *testing.T) {
				s := newStore(t)

				require.NoError(t, s.SetMonitoring(ctx, true))
				on, err := s.Monitoring(ctx)
				require.NoError(t, err)
				assert.True(t, on)

				require.NoError(t, s.Save(ctx, []byte("salt-one-16bytes"), testEnvelope(1)))
				on, err = s.Monitoring(ctx)
				require.NoError(t, err)
				assert.True(t, on, "save must not touch the flag")

				require.NoError(t, s.SetMonitoring(ctx, false))
				on, err = s.Monitoring(ctx)
				require.NoError(t, err)
				assert.False(t, on)
			})

			t.Run("reset erases vault and queue", func(t *testing.T) {
				s := newStore(t)

				require.NoError(t, s.Save(ctx, []byte("salt-one-16bytes"), testEnvelope(1)))
				_, err := s.AddPending(ctx, models.PendingClip{Content: "x", Timestamp: 1})
				require.NoError(t, err)
				require.NoError(t, s.SetMonitoring(ctx, true))

				require.NoError(t, s.Reset(ctx))

				rec, err := s.Load(ctx)
				require.NoError(t, err)
				assert.False(t, rec.Initialized())
				assert.Nil(t, rec.EncryptedData)
				assert.Empty(t, rec.PendingClips)
				assert.True(t, rec.Monitoring)
			})
		})
	}
}

func TestNewVaultStore_UnsupportedDriver(t *testing.T) {
	s, err := NewVaultStore(context.Background(), config.Storage{Driver: "postgres", DSN: "x"}, logger.Nop())
	assert.Nil(t, s)
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
