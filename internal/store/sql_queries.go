// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strconv"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/clip-vault/models"
)

const (
	vaultTable    = "vault"
	pendingTable  = "pending_clips"
	settingsTable = "settings"

	// vaultRowID is the id of the single row holding salt and envelope.
	vaultRowID = 1

	settingMonitoring = "monitoring"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildSelectVaultQuery() (string, []any, error) {
	return psql.
		Select("salt", "iv", "content").
		From(vaultTable).
		Where(sq.Eq{"id": vaultRowID}).
		ToSql()
}

// buildUpsertVaultQuery writes salt and envelope in one statement so the
// pair can never be persisted half-updated.
func buildUpsertVaultQuery(salt []byte, envelope models.CipherEnvelope, now time.Time) (string, []any, error) {
	return psql.
		Insert(vaultTable).
		Columns("id", "salt", "iv", "content", "updated_at").
		Values(vaultRowID, salt, []byte(envelope.IV), []byte(envelope.Content), now).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			salt       = excluded.salt,
			iv         = excluded.iv,
			content    = excluded.content,
			updated_at = excluded.updated_at`).
		ToSql()
}

func buildCountVaultQuery() (string, []any, error) {
	return psql.
		Select("COUNT(*)").
		From(vaultTable).
		Where(sq.Eq{"id": vaultRowID}).
		ToSql()
}

func buildSelectPendingQuery() (string, []any, error) {
	return psql.
		Select("content", "captured_at").
		From(pendingTable).
		OrderBy("seq DESC").
		ToSql()
}

func buildSelectPendingHeadQuery() (string, []any, error) {
	return psql.
		Select("content").
		From(pendingTable).
		OrderBy("seq DESC").
		Limit(1).
		ToSql()
}

func buildInsertPendingQuery(clip models.PendingClip) (string, []any, error) {
	return psql.
		Insert(pendingTable).
		Columns("content", "captured_at").
		Values(clip.Content, clip.Timestamp).
		ToSql()
}

// buildTrimPendingQuery drops everything but the newest MaxPendingClips rows.
func buildTrimPendingQuery() (string, []any, error) {
	return psql.
		Delete(pendingTable).
		Where("seq NOT IN (SELECT seq FROM "+pendingTable+" ORDER BY seq DESC LIMIT ?)", models.MaxPendingClips).
		ToSql()
}

func buildDeletePendingQuery() (string, []any, error) {
	return psql.Delete(pendingTable).ToSql()
}

func buildDeleteVaultQuery() (string, []any, error) {
	return psql.Delete(vaultTable).ToSql()
}

func buildSelectSettingQuery(key string) (string, []any, error) {
	return psql.
		Select("value").
		From(settingsTable).
		Where(sq.Eq{"name": key}).
		ToSql()
}

func buildUpsertSettingQuery(key string, value bool) (string, []any, error) {
	return psql.
		Insert(settingsTable).
		Columns("name", "value").
		Values(key, strconv.FormatBool(value)).
		Suffix("ON CONFLICT(name) DO UPDATE SET value = excluded.value").
		ToSql()
}
