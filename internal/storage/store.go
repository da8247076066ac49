// Package storage provides the durable key/value slot the board data is
// persisted into. Every backend stores whole string values under string
// keys, writes atomically, and reports capacity failures as ErrQuotaExceeded.
package storage

import (
	"context"
	"errors"
	"strings"
	"syscall"
)

// Store is a string-keyed slot with get/set semantics
type Store interface {
	// Get returns the stored value. ok is false when nothing is stored under key.
	Get(ctx context.Context, key string) (value string, ok bool, err error)

	// Set replaces the value under key. Either the full value is stored or
	// the previous value is left in place.
	Set(ctx context.Context, key, value string) error

	// Close releases any resources held by the store
	Close() error
}

// Storage errors
var (
	// ErrQuotaExceeded indicates the store has no room for the value
	ErrQuotaExceeded = errors.New("storage quota exceeded")

	// ErrClosed indicates the store was used after Close
	ErrClosed = errors.New("storage is closed")

	// ErrUnknownBackend indicates a backend name Open does not recognise
	ErrUnknownBackend = errors.New("unknown storage backend")
)

// isCapacityError reports whether a native error means "out of space"
func isCapacityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrQuotaExceeded) || errors.Is(err, syscall.ENOSPC) {
		return true
	}
	return strings.HasPrefix(err.Error(), "OOM ")
}
