package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by a Store when the key has no saved value.
var ErrNotFound = errors.New("storage: key not found")

// Store is a string key/value backend. The Bridge sits on top of it and
// turns backend failures into "nothing saved" for its callers.
type Store interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
