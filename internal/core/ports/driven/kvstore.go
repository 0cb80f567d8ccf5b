package driven

import "context"

// KeyValueStore holds opaque values under string keys.
// Every write replaces the previous value for its key.
type KeyValueStore interface {
	// Get returns the value stored under key.
	// Returns domain.ErrNotFound if the key was never written or was deleted.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any prior value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns every stored key in lexical order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases resources.
	Close() error
}
