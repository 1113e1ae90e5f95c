package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cinestream-cms/internal/database"
)

// Persisted state layout: each aggregate is one whole JSON document stored
// under a fixed key, read and written as a unit. The schema version tag
// allows future blob migrations.
const (
	articlesKey   = "articles"
	siteConfigKey = "site_config"

	blobSchemaVersion = 1
)

// readBlob returns the raw JSON document under key. A missing key returns
// sql.ErrNoRows so callers can seed defaults.
func readBlob(ctx context.Context, db *database.DB, key string) (string, error) {
	var raw string
	err := db.QueryRowContext(ctx, "SELECT value FROM kv_store WHERE key = ?", key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return "", err
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s blob: %w", key, err)
	}
	return raw, nil
}

// writeBlob replaces the whole JSON document under key
func writeBlob(ctx context.Context, db *database.DB, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, schema_version, updated_at)
		VALUES (?, ?, ?, datetime('now'))
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			schema_version = excluded.schema_version,
			updated_at = excluded.updated_at
	`, key, value, blobSchemaVersion)
	if err != nil {
		return fmt.Errorf("failed to write %s blob: %w", key, err)
	}
	return nil
}
