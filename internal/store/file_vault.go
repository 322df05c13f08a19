// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/MKhiriev/clip-vault/internal/logger"
	"github.com/MKhiriev/clip-vault/models"
)

// fileVaultStore keeps the vault record as one JSON document. The file is
// re-read on every call so that a capture process writing the pending queue
// and the interactive client see each other's changes.
type fileVaultStore struct {
	path   string
	logger *logger.Logger

	mu sync.RWMutex
}

// NewFileVaultStore returns a [VaultStore] backed by the JSON file at path.
// The file and its directory are created on first write.
func NewFileVaultStore(path string, logger *logger.Logger) VaultStore {
	return &fileVaultStore{
		path:   path,
		logger: logger,
	}
}

func (s *fileVaultStore) Load(ctx context.Context) (models.VaultRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.read()
}

func (s *fileVaultStore) Save(ctx context.Context, salt []byte, envelope models.CipherEnvelope) error {
	return s.update(func(rec *models.VaultRecord) bool {
		rec.Salt = append(models.ByteArray(nil), salt...)
		rec.EncryptedData = &models.CipherEnvelope{
			IV:      append(models.ByteArray(nil), envelope.IV...),
			Content: append(models.ByteArray(nil), envelope.Content...),
		}
		return true
	})
}

func (s *fileVaultStore) IsInitialized(ctx context.Context) (bool, error) {
	rec, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return rec.Initialized(), nil
}

func (s *fileVaultStore) LoadPending(ctx context.Context) ([]models.PendingClip, error) {
	rec, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return rec.PendingClips, nil
}

func (s *fileVaultStore) AddPending(ctx context.Context, clip models.PendingClip) (bool, error) {
	var queued bool
	err := s.update(func(rec *models.VaultRecord) bool {
		rec.PendingClips, queued = models.PushPending(rec.PendingClips, clip)
		return queued
	})
	return queued, err
}

func (s *fileVaultStore) ClearPending(ctx context.Context) error {
	return s.update(func(rec *models.VaultRecord) bool {
		if len(rec.PendingClips) == 0 {
			return false
		}
		rec.PendingClips = nil
		return true
	})
}

func (s *fileVaultStore) Monitoring(ctx context.Context) (bool, error) {
	rec, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	return rec.Monitoring, nil
}

func (s *fileVaultStore) SetMonitoring(ctx context.Context, enabled bool) error {
	return s.update(func(rec *models.VaultRecord) bool {
		if rec.Monitoring == enabled {
			return false
		}
		rec.Monitoring = enabled
		return true
	})
}

// Reset keeps the collaborator-owned monitoring flag and drops everything else.
func (s *fileVaultStore) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read()
	if err != nil && !errors.Is(err, ErrCorruptRecord) {
		return err
	}

	return s.write(models.VaultRecord{Monitoring: rec.Monitoring})
}

func (s *fileVaultStore) Close() error {
	return nil
}

// update runs fn on the current record under the write lock and persists
// the result if fn reports a change.
func (s *fileVaultStore) update(fn func(rec *models.VaultRecord) bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.read()
	if err != nil {
		return err
	}
	if !fn(&rec) {
		return nil
	}
	return s.write(rec)
}

func (s *fileVaultStore) read() (models.VaultRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return models.VaultRecord{}, nil
		}
		s.logger.Err(err).Str("func", "fileVaultStore.read").Str("path", s.path).Msg("failed to read vault file")
		return models.VaultRecord{}, fmt.Errorf("%w: read vault file: %w", ErrStorage, err)
	}
	if len(data) == 0 {
		return models.VaultRecord{}, nil
	}

	var rec models.VaultRecord
	if err = json.Unmarshal(data, &rec); err != nil {
		s.logger.Err(err).Str("func", "fileVaultStore.read").Str("path", s.path).Msg("failed to decode vault file")
		return models.VaultRecord{}, fmt.Errorf("%w: %w: %w", ErrStorage, ErrCorruptRecord, err)
	}

	return rec, nil
}

// write replaces the vault file atomically: the record is written to a
// temporary file in the same directory, synced, then renamed over the
// original. An interrupted write leaves the previous record intact.
func (s *fileVaultStore) write(rec models.VaultRecord) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("%w: create vault dir: %w", ErrStorage, err)
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("%w: encode vault record: %w", ErrStorage, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %w", ErrStorage, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err = tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write temp file: %w", ErrStorage, err)
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync temp file: %w", ErrStorage, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: close temp file: %w", ErrStorage, err)
	}
	if err = os.Chmod(tmpName, 0o600); err != nil {
		return fmt.Errorf("%w: chmod temp file: %w", ErrStorage, err)
	}
	if err = os.Rename(tmpName, s.path); err != nil {
		s.logger.Err(err).Str("func", "fileVaultStore.write").Str("path", s.path).Msg("failed to replace vault file")
		return fmt.Errorf("%w: replace vault file: %w", ErrStorage, err)
	}

	return nil
}
