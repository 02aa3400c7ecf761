// Package session builds and keeps the per-visitor stores.
package session

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/cart"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/checkout"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/currency"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/events"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/theme"
)

// Session is everything one visitor's pages read and mutate.
type Session struct {
	ID       string
	Cart     *cart.Store
	Currency *currency.Converter
	Language *i18n.Store
	Theme    *theme.Store
	Checkout *checkout.Flow

	lastSeen time.Time
}

type Manager struct {
	mu       sync.Mutex
	sessions map[string]*Session

	bridge    *storage.Bridge
	rates     currency.RatesProvider
	api       checkout.OrderCreator
	publisher events.Publisher
	cfg       checkout.Config
	log       *zap.Logger
	now       func() time.Time
}

func NewManager(bridge *storage.Bridge, rates currency.RatesProvider, api checkout.OrderCreator,
	publisher events.Publisher, cfg checkout.Config, log *zap.Logger) *Manager {
	return &Manager{
		sessions:  make(map[string]*Session),
		bridge:    bridge,
		rates:     rates,
		api:       api,
		publisher: publisher,
		cfg:       cfg,
		log:       log,
		now:       time.Now,
	}
}

// Get returns the visitor's session, loading it from storage on first use.
func (m *Manager) Get(ctx context.Context, visitorID string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	if s, ok := m.sessions[visitorID]; ok {
		s.lastSeen = m.now()
		return s
	}

	s := m.load(ctx, visitorID)
	s.lastSeen = m.now()
	m.sessions[visitorID] = s
	return s
}

func (m *Manager) load(ctx context.Context, visitorID string) *Session {
	scoped := m.bridge.Scope(visitorID)

	s := &Session{
		ID:       visitorID,
		Cart:     cart.NewStore(ctx, scoped),
		Currency: currency.NewConverter(ctx, scoped, m.rates),
		Language: i18n.NewStore(ctx, scoped),
		Theme:    theme.NewStore(ctx, scoped),
	}
	s.Checkout = checkout.NewFlow(m.cfg, checkout.Deps{
		API:        m.api,
		Cart:       s.Cart,
		Prices:     s.Currency,
		Translator: s.Language,
		History:    checkout.NewHistory(scoped),
		Publisher:  m.publisher,
		VisitorID:  visitorID,
		Log:        m.log,
	})
	return s
}

func (m *Manager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Evict drops sessions idle for longer than maxIdle. Their state stays in
// storage and is reloaded on the next visit.
func (m *Manager) Evict(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := m.now().Add(-maxIdle)
	evicted := 0
	for id, s := range m.sessions {
		if s.lastSeen.Before(cutoff) {
			delete(m.sessions, id)
			evicted++
		}
	}
	return evicted
}

// Run evicts idle sessions every interval until ctx is done.
func (m *Manager) Run(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			if n := m.Evict(maxIdle); n > 0 {
				m.log.Debug("evicted idle sessions", zap.Int("count", n))
			}
		case <-ctx.Done():
			return
		}
	}
}
