package repositories

import (
	"context"
)

// KVReader defines read operations on the blob store.
type KVReader interface {
	// Get returns the blob stored under key, or apperrors.ErrNotFound when absent.
	Get(ctx context.Context, key string) ([]byte, error)
}

// KVWriter defines write operations on the blob store.
// Put overwrites the whole value; there are no partial writes.
type KVWriter interface {
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// KVStore is the persistence port of the ledger core: any key-value medium
// that can read and overwrite whole blobs.
type KVStore interface {
	KVReader
	KVWriter
	Close() error
}
