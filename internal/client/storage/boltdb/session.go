package boltdb

import (
	"context"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/storefront/internal/client/storage"
)

// Get returns the value stored under key; a missing key is ok=false
func (s *Storage) Get(ctx context.Context, key storage.Key) (string, bool, error) {
	var (
		value string
		found bool
	)

	err := s.view(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found: %w", storage.ErrStorageUnavailable)
		}

		// Значение валидно только внутри транзакции, поэтому копируем
		data := bucket.Get([]byte(key))
		if data == nil {
			return nil
		}
		value = string(data)
		found = true
		return nil
	})
	if err != nil {
		return "", false, storage.NewStorageError("get", key, err)
	}

	return value, found, nil
}

// Set overwrites the value stored under key
func (s *Storage) Set(ctx context.Context, key storage.Key, value string) error {
	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found: %w", storage.ErrStorageUnavailable)
		}

		if err := bucket.Put([]byte(key), []byte(value)); err != nil {
			return fmt.Errorf("failed to save value: %w", err)
		}
		return nil
	})
	return storage.NewStorageError("set", key, err)
}

// Clear removes all listed keys in a single transaction.
// Every key is attempted; any failure rolls the whole transaction back.
func (s *Storage) Clear(ctx context.Context, keys ...storage.Key) error {
	if len(keys) == 0 {
		return nil
	}

	err := s.update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSession)
		if bucket == nil {
			return fmt.Errorf("session bucket not found: %w", storage.ErrStorageUnavailable)
		}

		var errs []error
		for _, key := range keys {
			if err := bucket.Delete([]byte(key)); err != nil {
				errs = append(errs, fmt.Errorf("failed to delete %q: %w", key, err))
			}
		}
		return errors.Join(errs...)
	})
	return storage.NewStorageError("clear", "", err)
}
