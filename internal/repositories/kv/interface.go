// Package kv defines the durable key-value capability injected into the
// session and theme stores. Values are opaque bytes; the stores decide the
// encoding (JSON for accounts and sessions, string booleans for theme
// flags).
package kv

import "context"

// Repository is the persisted key-value store.
//
// Contract:
//   - Get returns (nil, nil) when the key is absent.
//   - Set upserts.
//   - SetAll upserts every pair atomically.
//   - Delete is idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetAll(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
}
