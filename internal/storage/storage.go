// Package storage provides the string key-value stores the tracker persists into.
package storage

import (
	"context"
	"errors"
)

//go:generate mockgen -source=storage.go -destination=../mocks/storage/mock_storage.go -package=mock_storage

// Storage is a key-value store over string keys and string values.
// Callers serialize their own values.
type Storage interface {
	// Get returns the value for key. found is false when the key does not exist.
	Get(ctx context.Context, key string) (value string, found bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key, value string) error
	// Remove deletes the given keys. Missing keys are ignored.
	Remove(ctx context.Context, keys ...string) error
}

// ErrUnsupportedDriver is returned for an unknown storage driver name.
var ErrUnsupportedDriver = errors.New("unsupported storage driver")
