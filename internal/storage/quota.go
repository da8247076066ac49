package storage

import "context"

// DefaultQuotaBytes mirrors the common browser local-storage allowance
const DefaultQuotaBytes = 5 * 1024 * 1024

// quotaStore rejects values larger than a fixed budget before they reach
// the wrapped store
type quotaStore struct {
	Store
	maxBytes int
}

// WithQuota wraps store so that values larger than maxBytes (key included)
// fail with ErrQuotaExceeded. A non-positive maxBytes disables the check.
func WithQuota(store Store, maxBytes int) Store {
	if maxBytes <= 0 {
		return store
	}
	return &quotaStore{Store: store, maxBytes: maxBytes}
}

// Set implements Store
func (q *quotaStore) Set(ctx context.Context, key, value string) error {
	if len(key)+len(value) > q.maxBytes {
		return ErrQuotaExceeded
	}
	return q.Store.Set(ctx, key, value)
}
