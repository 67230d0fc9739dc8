// Package kv holds the key/value backends the persistent store writes its
// JSON blobs to. Every backend stores opaque bytes under string keys; the
// store owns encoding and namespacing.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

// Backend is a flat key/value space.
type Backend interface {
	// Get returns the bytes stored at key or ErrNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put stores value at key, replacing any previous value.
	Put(ctx context.Context, key string, value []byte) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys lists every key starting with prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)

	Close() error
}
