// Package metadata is the device-local key/value table backing the client's
// persisted store.
package metadata

import (
	"context"
)

// Repository stores opaque values by key. Get returns (nil, nil) for an
// absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context, prefix string) (map[string][]byte, error)
}
