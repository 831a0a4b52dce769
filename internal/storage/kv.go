package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	apperrors "github.com/SanketKumarKar/FeelBack/internal/core/errors"
)

// Get returns the live value for key. Expired rows behave as absent; they are
// physically removed by the cleanup sweep, not on read.
func (db *DB) Get(ctx context.Context, key string) ([]byte, error) {
	row := db.Pool.QueryRow(ctx, `
		SELECT value
		FROM kv_entries
		WHERE key = $1 AND expires_at > now()
	`, key)

	var value []byte

	if err := row.Scan(&value); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrCacheNotFound
		}

		return nil, fmt.Errorf("get kv entry: %w", err)
	}

	return value, nil
}

// SetWithTTL upserts a value with an expiry. Overwriting an existing key
// replaces its value and resets the TTL.
func (db *DB) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	_, err := db.Pool.Exec(ctx, `
		INSERT INTO kv_entries (key, value, expires_at, created_at)
		VALUES ($1, $2, now() + make_interval(secs => $3), now())
		ON CONFLICT (key) DO UPDATE SET
			value = EXCLUDED.value,
			expires_at = EXCLUDED.expires_at
	`, key, value, ttl.Seconds())
	if err != nil {
		return fmt.Errorf("set kv entry: %w", err)
	}

	return nil
}

// KeysByPrefix returns all live keys starting with prefix in ascending order.
func (db *DB) KeysByPrefix(ctx context.Context, prefix string) ([]string, error) {
	rows, err := db.Pool.Query(ctx, `
		SELECT key
		FROM kv_entries
		WHERE key LIKE $1 || '%' AND expires_at > now()
		ORDER BY key
	`, prefix)
	if err != nil {
		return nil, fmt.Errorf("scan kv keys: %w", err)
	}
	defer rows.Close()

	var keys []string

	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan kv key: %w", err)
		}

		keys = append(keys, key)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate kv keys: %w", err)
	}

	return keys, nil
}

// DeleteMany removes the given keys and returns how many rows existed.
func (db *DB) DeleteMany(ctx context.Context, keys []string) (int64, error) {
	if len(keys) == 0 {
		return 0, nil
	}

	tag, err := db.Pool.Exec(ctx, `DELETE FROM kv_entries WHERE key = ANY($1)`, keys)
	if err != nil {
		return 0, fmt.Errorf("delete kv entries: %w", err)
	}

	return tag.RowsAffected(), nil
}

// Ping reports whether the database is reachable.
func (db *DB) Ping(ctx context.Context) error {
	if err := db.Pool.Ping(ctx); err != nil {
		return fmt.Errorf("ping: %w", err)
	}

	return nil
}

// DeleteExpired removes rows past their expiry. Run periodically by the
// cleanup worker; reads already filter expired rows so this is purely
// space reclamation.
func (db *DB) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := db.Pool.Exec(ctx, `DELETE FROM kv_entries WHERE expires_at <= now()`)
	if err != nil {
		return 0, fmt.Errorf("delete expired kv entries: %w", err)
	}

	return tag.RowsAffected(), nil
}
