package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("key not found")

// KV is the device-local blob store the domain stores persist into. Each key
// holds one whole serialized collection; a single Set is atomic, there is no
// transactionality across keys.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
