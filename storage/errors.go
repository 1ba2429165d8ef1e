package storage

import "errors"

var (
	// ErrNotFound indicates no value exists for the given key.
	ErrNotFound = errors.New("storage: key not found")

	// ErrBucketNotFound indicates the bucket was never created.
	ErrBucketNotFound = errors.New("storage: bucket not found")

	// ErrReadOnly indicates a write was attempted inside a View transaction.
	ErrReadOnly = errors.New("storage: read-only transaction")

	// ErrEmptyKey indicates an attempt to store a value under an empty key.
	ErrEmptyKey = errors.New("storage: key is empty")

	// ErrClosed indicates the store has already been closed.
	ErrClosed = errors.New("storage: store is closed")

	// ErrInvalidPath indicates the database path is invalid.
	ErrInvalidPath = errors.New("storage: invalid database path")
)
