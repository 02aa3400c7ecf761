package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// Bridge is the persistent key/value view the visitor stores work with.
// Reads and writes never fail from the caller's point of view: a backend
// error or a corrupt value is logged and reported as "nothing saved", and a
// failed write is dropped. Last write wins.
type Bridge struct {
	store  Store
	prefix string
	log    *zap.Logger
}

func NewBridge(store Store, log *zap.Logger) *Bridge {
	return &Bridge{store: store, log: log}
}

// Scope returns a bridge whose keys live under visitor:<id>:.
func (b *Bridge) Scope(visitorID string) *Bridge {
	return &Bridge{
		store:  b.store,
		prefix: fmt.Sprintf("%svisitor:%s:", b.prefix, visitorID),
		log:    b.log.With(zap.String("visitor_id", visitorID)),
	}
}

func (b *Bridge) Get(ctx context.Context, key string) (string, bool) {
	v, err := b.store.Get(ctx, b.key(key))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			b.log.Warn("storage read failed", zap.String("key", key), zap.Error(err))
		}
		return "", false
	}
	return v, true
}

func (b *Bridge) Set(ctx context.Context, key, value string) {
	if err := b.store.Set(ctx, b.key(key), value); err != nil {
		b.log.Warn("storage write dropped", zap.String("key", key), zap.Error(err))
	}
}

func (b *Bridge) Remove(ctx context.Context, key string) {
	if err := b.store.Delete(ctx, b.key(key)); err != nil {
		b.log.Warn("storage remove dropped", zap.String("key", key), zap.Error(err))
	}
}

// Load decodes the JSON value saved under key into v. It reports false when
// nothing usable is saved, including when the saved value is corrupt.
func (b *Bridge) Load(ctx context.Context, key string, v any) bool {
	raw, ok := b.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		b.log.Warn("discarding corrupt saved value", zap.String("key", key), zap.Error(err))
		return false
	}
	return true
}

// Save stores v as JSON under key.
func (b *Bridge) Save(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		b.log.Error("failed to encode value", zap.String("key", key), zap.Error(err))
		return
	}
	b.Set(ctx, key, string(raw))
}

func (b *Bridge) key(key string) string {
	return b.prefix + key
}
