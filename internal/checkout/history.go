package checkout

import (
	"context"
	"sync"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
)

// History is the visitor's append-only order log.
type History struct {
	mu     sync.Mutex
	bridge *storage.Bridge
}

func NewHistory(bridge *storage.Bridge) *History {
	return &History{bridge: bridge}
}

func (h *History) Append(ctx context.Context, record domain.OrderRecord) {
	h.mu.Lock()
	defer h.mu.Unlock()

	records := h.load(ctx)
	records = append(records, record)
	h.bridge.Save(ctx, domain.KeyOrders, records)
}

// List returns every recorded order, oldest first.
func (h *History) List(ctx context.Context) []domain.OrderRecord {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.load(ctx)
}

func (h *History) load(ctx context.Context) []domain.OrderRecord {
	var records []domain.OrderRecord
	if !h.bridge.Load(ctx, domain.KeyOrders, &records) || records == nil {
		return []domain.OrderRecord{}
	}
	return records
}
