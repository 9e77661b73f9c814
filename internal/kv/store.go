// Package kv defines the durable key-value contract the review core
// persists schedule state through, plus an in-memory implementation
// used both standalone and as the degradation target when a durable
// backend stops accepting writes.
package kv

import "context"

// Store is the minimal durable contract. Implementations return
// domain.ErrNotFound for missing keys and must be safe for concurrent
// use. There is no delete: callers that need removal write an empty
// value, which readers treat as absent.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}
