package cache

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned by Get when the key does not exist.
var ErrNotFound = errors.New("key not found")

// Cache is the durable key-value port behind sessions and notices.
type Cache interface {
	// Get retrieves a value by key. Returns ErrNotFound (wrapped) when absent.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with the specified TTL. TTL of 0 means no expiration.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// SetMany stores all entries in a single transaction with a shared TTL.
	SetMany(ctx context.Context, entries map[string][]byte, ttl time.Duration) error

	// Push appends value to the list at key, keeps only its last keep entries and
	// resets its TTL, all in one transaction.
	Push(ctx context.Context, key string, value []byte, keep int, ttl time.Duration) error

	// Range returns every entry of the list at key, oldest first. A missing key is empty.
	Range(ctx context.Context, key string) ([][]byte, error)

	// Delete removes the given keys. Missing keys are ignored.
	Delete(ctx context.Context, keys ...string) error

	// Ping checks if the cache service is reachable.
	Ping(ctx context.Context) error

	// Close closes the cache connection.
	Close() error
}
