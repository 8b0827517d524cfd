// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/shiftlog/portal-auth/internal/logger"
	"github.com/shiftlog/portal-auth/models"
)

const sessionTable = "session_fields"

// sqliteStore is the SQLite-backed implementation of [Store].
type sqliteStore struct {
	db     *DB
	logger *logger.Logger
}

// NewStore constructs the durable [Store] on top of an already-migrated
// session database.
func NewStore(db *DB, log *logger.Logger) Store {
	log.Debug().Msg("creating session store")
	return &sqliteStore{db: db, logger: log}
}

func upsertField(key models.SessionKey, value string) sq.InsertBuilder {
	return sq.Insert(sessionTable).
		Columns("key", "value", "updated_at").
		Values(string(key), value, time.Now().UTC()).
		Suffix("ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at")
}

// Set implements [Store]. It upserts one field.
func (s *sqliteStore) Set(ctx context.Context, key models.SessionKey, value string) error {
	query, args, err := upsertField(key, value).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// Get implements [Store]. An absent key returns ("", false, nil).
func (s *sqliteStore) Get(ctx context.Context, key models.SessionKey) (string, bool, error) {
	query, args, err := sq.Select("value").
		From(sessionTable).
		Where(sq.Eq{"key": string(key)}).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	var value string
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return value, true, nil
}

// GetOr implements [Store]. Reads must tolerate "key absent" by
// substituting a documented default, e.g. the time zone baseline.
func (s *sqliteStore) GetOr(ctx context.Context, key models.SessionKey, fallback string) (string, error) {
	value, ok, err := s.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if !ok {
		return fallback, nil
	}
	return value, nil
}

// SetAll implements [Store]. All fields are written inside one
// transaction so a verifier commit is all-or-nothing.
func (s *sqliteStore) SetAll(ctx context.Context, fields map[models.SessionKey]string) error {
	if len(fields) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	for key, value := range fields {
		query, args, err := upsertField(key, value).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %v", ErrCommitingTransaction, err)
	}

	return nil
}

// Clear implements [Store]. Deleting keys that are not present is a
// no-op, which makes teardown idempotent.
func (s *sqliteStore) Clear(ctx context.Context, keys ...models.SessionKey) error {
	if len(keys) == 0 {
		return nil
	}

	names := make([]string, 0, len(keys))
	for _, key := range keys {
		names = append(names, string(key))
	}

	query, args, err := sq.Delete(sessionTable).
		Where(sq.Eq{"key": names}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return nil
}

// ClearAll implements [Store]. It removes the whole enumerated namespace
// plus the legacy-alias keys written by earlier portal builds.
func (s *sqliteStore) ClearAll(ctx context.Context) error {
	keys := make([]models.SessionKey, 0, len(models.SessionKeys)+len(models.LegacySessionKeys))
	keys = append(keys, models.SessionKeys...)
	keys = append(keys, models.LegacySessionKeys...)

	return s.Clear(ctx, keys...)
}

// Prune implements [Store].
func (s *sqliteStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-olderThan)

	query, args, err := sq.Delete(sessionTable).
		Where(sq.Lt{"updated_at": cutoff}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBuildingSQLQuery, err)
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrExecutingQuery, err)
	}

	return removed, nil
}
