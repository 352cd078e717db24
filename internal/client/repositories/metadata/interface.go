// Package metadata stores small key/value records in the local client
// database. The auth token lives here when the sqlite store is selected.
package metadata

import (
	"context"
)

// Repository is a key/value view over the metadata table.
// Get returns (nil, nil) for a missing key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
