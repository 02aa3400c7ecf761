package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/checkout"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/currency"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/events"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/monitor"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
)

type okAPI struct{}

func (okAPI) CreateOrder(context.Context, domain.OrderRequest) error { return nil }

func newTestManager(store storage.Store) *Manager {
	bridge := storage.NewBridge(store, zap.NewNop())
	rates := currency.NewRateSource(nil, time.Second, monitor.Nop{}, zap.NewNop())
	cfg := checkout.Config{OrderTimeout: time.Second, ClearDelay: time.Hour, WhatsAppNumber: "224666885555"}
	return NewManager(bridge, rates, okAPI{}, events.NopPublisher{}, cfg, zap.NewNop())
}

func TestGet_ReturnsSameSession(t *testing.T) {
	m := newTestManager(storage.NewMemoryStore())
	ctx := context.Background()

	a := m.Get(ctx, "alice")
	assert.Same(t, a, m.Get(ctx, "alice"))
	assert.NotSame(t, a, m.Get(ctx, "bob"))
	assert.Equal(t, 2, m.Len())
}

func TestGet_VisitorsAreIsolated(t *testing.T) {
	m := newTestManager(storage.NewMemoryStore())
	ctx := context.Background()

	m.Get(ctx, "alice").Cart.AddToCart(ctx, domain.CartItem{ID: 1, Name: "Huile", Price: 45000}, 1)

	assert.True(t, m.Get(ctx, "bob").Cart.IsEmpty())
	assert.Equal(t, 1, m.Get(ctx, "alice").Cart.ItemsCount())
}

func TestGet_ReloadsFromStorage(t *testing.T) {
	store := storage.NewMemoryStore()
	ctx := context.Background()

	first := newTestManager(store)
	s := first.Get(ctx, "alice")
	s.Cart.AddToCart(ctx, domain.CartItem{ID: 3, Name: "Crême mains", Price: 29000}, 2)
	require.NoError(t, s.Currency.SetCurrency(ctx, "EUR"))
	require.NoError(t, s.Language.SetLanguage(ctx, "en"))
	s.Theme.Toggle(ctx)

	// a fresh manager stands in for a restarted process
	restored := newTestManager(store).Get(ctx, "alice")
	assert.Equal(t, 2, restored.Cart.ItemsCount())
	assert.Equal(t, domain.CurrencyEUR, restored.Currency.Currency())
	assert.Equal(t, domain.LanguageEN, restored.Language.Language())
	assert.Equal(t, domain.ThemeDark, restored.Theme.Theme())
}

func TestEvict(t *testing.T) {
	m := newTestManager(storage.NewMemoryStore())
	ctx := context.Background()

	now := time.Date(2025, 6, 8, 4, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return now }
	m.Get(ctx, "old")

	now = now.Add(time.Hour)
	m.Get(ctx, "fresh")

	assert.Equal(t, 1, m.Evict(30*time.Minute))
	assert.Equal(t, 1, m.Len())
}
