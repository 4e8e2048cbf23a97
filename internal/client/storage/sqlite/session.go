package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/storefront/internal/client/storage"
)

// Get returns the value stored under key; a missing key is ok=false
func (s *Storage) Get(ctx context.Context, key storage.Key) (string, bool, error) {
	query := `SELECT value FROM session WHERE key = ?`

	var value string
	err := s.db.QueryRowContext(ctx, query, string(key)).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", false, nil
		}
		return "", false, storage.NewStorageError("get", key, classify(err))
	}

	return value, true, nil
}

// Set overwrites the value stored under key
func (s *Storage) Set(ctx context.Context, key storage.Key, value string) error {
	query := `
		INSERT INTO session (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at
	`

	_, err := s.db.ExecContext(ctx, query, string(key), value, time.Now().Unix())
	if err != nil {
		return storage.NewStorageError("set", key, classify(err))
	}

	return nil
}

// Clear removes all listed keys in a single transaction.
// Every key is attempted; any failure rolls the whole transaction back.
func (s *Storage) Clear(ctx context.Context, keys ...storage.Key) error {
	if len(keys) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return storage.NewStorageError("clear", "", classify(err))
	}

	var errs []error
	for _, key := range keys {
		if _, err := tx.ExecContext(ctx, `DELETE FROM session WHERE key = ?`, string(key)); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete %q: %w", key, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		_ = tx.Rollback()
		return storage.NewStorageError("clear", "", err)
	}

	if err := tx.Commit(); err != nil {
		return storage.NewStorageError("clear", "", classify(err))
	}

	return nil
}

// classify marks closed-database errors with the storage sentinels
func classify(err error) error {
	if strings.Contains(err.Error(), "database is closed") {
		return fmt.Errorf("%w: %v", storage.ErrStorageClosed, err)
	}
	if strings.Contains(err.Error(), "no such table") {
		return fmt.Errorf("%w: %v", storage.ErrStorageUnavailable, err)
	}
	return err
}
