// Package kv provides the persistent key-value contract the mood
// journal is built on: point writes, point reads, and prefix scans.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists for the key.
var ErrNotFound = errors.New("key not found")

// Store is the narrow persistence capability required by the journal.
// Values are JSON-marshalled by the driver; GetByPrefix returns raw
// JSON documents in no guaranteed order.
type Store interface {
	Set(ctx context.Context, key string, value any) error
	Get(ctx context.Context, key string) ([]byte, error)
	GetByPrefix(ctx context.Context, prefix string) ([][]byte, error)
	Close() error
}
