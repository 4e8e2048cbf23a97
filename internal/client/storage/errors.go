package storage

import (
	"errors"
	"fmt"
)

// Common client storage errors
var (
	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")

	// ErrStorageUnavailable indicates that the underlying persistence cannot be used
	// (missing bucket/table, disk full, permission denied)
	ErrStorageUnavailable = errors.New("storage is unavailable")
)

// StorageError describes a failed session store operation.
// Op is one of "get", "set", "clear"; Key is empty for multi-key operations.
type StorageError struct {
	Err error
	Op  string
	Key string
}

func (e *StorageError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("session store %s failed: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("session store %s %q failed: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// NewStorageError wraps err into *StorageError. Nil stays nil.
func NewStorageError(op string, key Key, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Key: string(key), Err: err}
}
