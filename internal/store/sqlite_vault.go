// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MKhiriev/clip-vault/internal/logger"
	"github.com/MKhiriev/clip-vault/models"
)

type sqliteVaultStore struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSQLiteVaultStore returns a [VaultStore] on top of a migrated SQLite
// database. Salt and envelope live in a single row, so every Save replaces
// both with one statement.
func NewSQLiteVaultStore(db *DB, logger *logger.Logger) VaultStore {
	return &sqliteVaultStore{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (s *sqliteVaultStore) Load(ctx context.Context) (models.VaultRecord, error) {
	var rec models.VaultRecord

	query, args, err := buildSelectVaultQuery()
	if err != nil {
		return rec, fmt.Errorf("%w: build select vault query: %w", ErrStorage, err)
	}

	var salt, iv, content []byte
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&salt, &iv, &content)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		// never saved
	case err != nil:
		s.logger.Err(err).Str("func", "sqliteVaultStore.Load").Msg("failed to query vault row")
		return rec, fmt.Errorf("%w: query vault row: %w", ErrStorage, err)
	default:
		rec.Salt = salt
		rec.EncryptedData = &models.CipherEnvelope{IV: iv, Content: content}
	}

	if rec.PendingClips, err = s.LoadPending(ctx); err != nil {
		return models.VaultRecord{}, err
	}
	if rec.Monitoring, err = s.Monitoring(ctx); err != nil {
		return models.VaultRecord{}, err
	}

	return rec, nil
}

func (s *sqliteVaultStore) Save(ctx context.Context, salt []byte, envelope models.CipherEnvelope) error {
	query, args, err := buildUpsertVaultQuery(salt, envelope, s.now().UTC())
	if err != nil {
		return fmt.Errorf("%w: build upsert vault query: %w", ErrStorage, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultStore.Save").Msg("failed to upsert vault row")
		return fmt.Errorf("%w: save vault row: %w", ErrStorage, err)
	}

	return nil
}

func (s *sqliteVaultStore) IsInitialized(ctx context.Context) (bool, error) {
	query, args, err := buildCountVaultQuery()
	if err != nil {
		return false, fmt.Errorf("%w: build count vault query: %w", ErrStorage, err)
	}

	var n int
	if err = s.DB.QueryRowContext(ctx, query, args...).Scan(&n); err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultStore.IsInitialized").Msg("failed to count vault rows")
		return false, fmt.Errorf("%w: count vault rows: %w", ErrStorage, err)
	}

	return n > 0, nil
}

func (s *sqliteVaultStore) LoadPending(ctx context.Context) ([]models.PendingClip, error) {
	query, args, err := buildSelectPendingQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: build select pending query: %w", ErrStorage, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultStore.LoadPending").Msg("failed to query pending clips")
		return nil, fmt.Errorf("%w: query pending clips: %w", ErrStorage, err)
	}
	defer rows.Close()

	var clips []models.PendingClip
	for rows.Next() {
		var clip models.PendingClip
		if err = rows.Scan(&clip.Content, &clip.Timestamp); err != nil {
			s.logger.Err(err).Str("func", "sqliteVaultStore.LoadPending").Msg("failed to scan pending clip row")
			return nil, fmt.Errorf("%w: scan pending clip: %w", ErrStorage, err)
		}
		clips = append(clips, clip)
	}

	if err = rows.Err(); err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultStore.LoadPending").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: iterate pending clips: %w", ErrStorage, err)
	}

	return clips, nil
}

func (s *sqliteVaultStore) AddPending(ctx context.Context, clip models.PendingClip) (queued bool, err error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("%w: begin transaction: %w", ErrStorage, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	query, args, err := buildSelectPendingHeadQuery()
	if err != nil {
		return false, fmt.Errorf("%w: build select head query: %w", ErrStorage, err)
	}
	var head string
	err = tx.QueryRowContext(ctx, query, args...).Scan(&head)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		err = nil
	case err != nil:
		return false, fmt.Errorf("%w: query pending head: %w", ErrStorage, err)
	case head == clip.Content:
		return false, tx.Rollback()
	}

	if query, args, err = buildInsertPendingQuery(clip); err != nil {
		return false, fmt.Errorf("%w: build insert pending query: %w", ErrStorage, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultStore.AddPending").Msg("failed to insert pending clip")
		return false, fmt.Errorf("%w: insert pending clip: %w", ErrStorage, err)
	}

	if query, args, err = buildTrimPendingQuery(); err != nil {
		return false, fmt.Errorf("%w: build trim pending query: %w", ErrStorage, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultStore.AddPending").Msg("failed to trim pending clips")
		return false, fmt.Errorf("%w: trim pending clips: %w", ErrStorage, err)
	}

	if err = tx.Commit(); err != nil {
		return false, fmt.Errorf("%w: commit transaction: %w", ErrStorage, err)
	}

	return true, nil
}

func (s *sqliteVaultStore) ClearPending(ctx context.Context) error {
	query, args, err := buildDeletePendingQuery()
	if err != nil {
		return fmt.Errorf("%w: build delete pending query: %w", ErrStorage, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultStore.ClearPending").Msg("failed to delete pending clips")
		return fmt.Errorf("%w: clear pending clips: %w", ErrStorage, err)
	}

	return nil
}

func (s *sqliteVaultStore) Monitoring(ctx context.Context) (bool, error) {
	query, args, err := buildSelectSettingQuery(settingMonitoring)
	if err != nil {
		return false, fmt.Errorf("%w: build select setting query: %w", ErrStorage, err)
	}

	var value string
	err = s.DB.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultStore.Monitoring").Msg("failed to query monitoring flag")
		return false, fmt.Errorf("%w: query monitoring flag: %w", ErrStorage, err)
	}

	enabled, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %w: monitoring flag %q", ErrStorage, ErrCorruptRecord, value)
	}
	return enabled, nil
}

func (s *sqliteVaultStore) SetMonitoring(ctx context.Context, enabled bool) error {
	query, args, err := buildUpsertSettingQuery(settingMonitoring, enabled)
	if err != nil {
		return fmt.Errorf("%w: build upsert setting query: %w", ErrStorage, err)
	}

	if _, err = s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultStore.SetMonitoring").Msg("failed to store monitoring flag")
		return fmt.Errorf("%w: store monitoring flag: %w", ErrStorage, err)
	}

	return nil
}

// Reset deletes the vault row and the pending queue in one transaction.
func (s *sqliteVaultStore) Reset(ctx context.Context) (err error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", ErrStorage, err)
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	for _, build := range []func() (string, []any, error){buildDeleteVaultQuery, buildDeletePendingQuery} {
		query, args, buildErr := build()
		if buildErr != nil {
			return fmt.Errorf("%w: build reset query: %w", ErrStorage, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			s.logger.Err(err).Str("func", "sqliteVaultStore.Reset").Msg("failed to erase vault state")
			return fmt.Errorf("%w: erase vault state: %w", ErrStorage, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit transaction: %w", ErrStorage, err)
	}

	return nil
}

func (s *sqliteVaultStore) Close() error {
	return s.DB.Close()
}
