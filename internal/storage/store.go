// Package storage provides the string-keyed blob store the repositories
// persist into. Values are whole JSON-serialized collections; every write
// replaces the previous value for its key (last writer wins, no transactions).
package storage

import "context"

// Store is a synchronous key-value store local to one profile.
type Store interface {
	// Get returns the value stored under key, or nil when the key is absent.
	Get(ctx context.Context, key string) ([]byte, error)
	// Set replaces the value stored under key.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}
