// Package repository provides the key/value persistence behind the catalog
// stores: one JSON-encoded array per category key. Services depend on the KV
// interface, not on a concrete implementation, enabling clean unit testing
// with the in-memory variant.
package repository

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no collection has been persisted under
// the category key yet. Callers treat it as "seed the defaults".
var ErrNotFound = errors.New("collection not found")

// KV stores one opaque value per category key. Put fully replaces the value;
// there is no partial update and no cross-key transaction.
type KV interface {
	Get(ctx context.Context, category string) ([]byte, error)
	Put(ctx context.Context, category string, data []byte) error
	Ping(ctx context.Context) error
	Close() error
}
