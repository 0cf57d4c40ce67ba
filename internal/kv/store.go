// Package kv abstracts the flat key-value storage service that holds user
// accounts, the session pointer, and conversation records. Keys and values
// are opaque strings; ownership is expressed purely through key prefixes
// such as "conversation:{email}:".
package kv

import "context"

// Store is the minimal contract every storage backend provides.
//
// Contract:
//   - Get returns common.ErrNotFound when the key is absent.
//   - Set creates or overwrites a key in a single atomic write.
//   - Delete is idempotent: deleting an absent key is not an error.
//   - List returns the keys (not values) matching the given prefix, in no
//     particular order.
//
// All methods must honor context cancellation/timeouts.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) ([]string, error)
	Close() error
}
