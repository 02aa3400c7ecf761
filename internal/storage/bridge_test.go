package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type failingStore struct {
	err error
}

func (f failingStore) Get(context.Context, string) (string, error) { return "", f.err }
func (f failingStore) Set(context.Context, string, string) error   { return f.err }
func (f failingStore) Delete(context.Context, string) error        { return f.err }

type savedCart struct {
	Items []int `json:"items"`
}

func TestBridge_SetGetRemove(t *testing.T) {
	ctx := context.Background()
	b := NewBridge(NewMemoryStore(), zap.NewNop())

	_, ok := b.Get(ctx, "yayah-theme")
	assert.False(t, ok)

	b.Set(ctx, "yayah-theme", "dark")
	v, ok := b.Get(ctx, "yayah-theme")
	require.True(t, ok)
	assert.Equal(t, "dark", v)

	b.Remove(ctx, "yayah-theme")
	_, ok = b.Get(ctx, "yayah-theme")
	assert.False(t, ok)
}

func TestBridge_LastWriteWins(t *testing.T) {
	ctx := context.Background()
	b := NewBridge(NewMemoryStore(), zap.NewNop())

	b.Set(ctx, "k", "first")
	b.Set(ctx, "k", "second")

	v, _ := b.Get(ctx, "k")
	assert.Equal(t, "second", v)
}

func TestBridge_SaveLoadJSON(t *testing.T) {
	ctx := context.Background()
	b := NewBridge(NewMemoryStore(), zap.NewNop())

	b.Save(ctx, "cart", savedCart{Items: []int{1, 2}})

	var got savedCart
	require.True(t, b.Load(ctx, "cart", &got))
	assert.Equal(t, []int{1, 2}, got.Items)
}

func TestBridge_CorruptJSONIsNothingSaved(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	b := NewBridge(store, zap.NewNop())
	require.NoError(t, store.Set(ctx, "cart", `{"items":[1,`))

	var got savedCart
	assert.False(t, b.Load(ctx, "cart", &got))
	assert.Nil(t, got.Items)
}

func TestBridge_BackendFailureIsSilent(t *testing.T) {
	ctx := context.Background()
	b := NewBridge(failingStore{err: errors.New("quota exceeded")}, zap.NewNop())

	assert.NotPanics(t, func() {
		b.Set(ctx, "k", "v")
		b.Remove(ctx, "k")
		b.Save(ctx, "k", savedCart{})
	})

	_, ok := b.Get(ctx, "k")
	assert.False(t, ok)
	assert.False(t, b.Load(ctx, "k", &savedCart{}))
}

func TestBridge_ScopeNamespacesKeys(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	root := NewBridge(store, zap.NewNop())

	alice := root.Scope("alice")
	bob := root.Scope("bob")

	alice.Set(ctx, "yayah-cart", "[1]")
	bob.Set(ctx, "yayah-cart", "[2]")

	raw, err := store.Get(ctx, "visitor:alice:yayah-cart")
	require.NoError(t, err)
	assert.Equal(t, "[1]", raw)

	v, _ := bob.Get(ctx, "yayah-cart")
	assert.Equal(t, "[2]", v)
	assert.Equal(t, 2, store.Len())
}
