package cart

import (
	"context"
	"sync"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
)

// Store is one visitor's cart. Items keep insertion order and are unique by
// product id. Every mutation is written back to the bridge under
// domain.KeyCart.
type Store struct {
	mu     sync.RWMutex
	items  []domain.CartItem
	bridge *storage.Bridge
}

// NewStore loads the saved cart, if any. A corrupt or missing value starts
// an empty cart.
func NewStore(ctx context.Context, bridge *storage.Bridge) *Store {
	s := &Store{bridge: bridge}

	var saved []domain.CartItem
	if bridge.Load(ctx, domain.KeyCart, &saved) {
		for _, item := range saved {
			if item.Quantity < 1 {
				continue
			}
			s.items = append(s.items, item)
		}
	}
	return s
}

// AddToCart adds quantity units of item. A quantity below 1 counts as 1.
// Adding a product already in the cart increments its quantity.
func (s *Store) AddToCart(ctx context.Context, item domain.CartItem, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(item.ID); i >= 0 {
		s.items[i].Quantity += quantity
	} else {
		item.Quantity = quantity
		s.items = append(s.items, item)
	}
	s.persist(ctx)
}

// RemoveFromCart drops the line for id. Unknown ids are a no-op.
func (s *Store) RemoveFromCart(ctx context.Context, id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items = append(s.items[:i], s.items[i+1:]...)
	s.persist(ctx)
}

// UpdateQuantity sets the quantity of id. A quantity of 0 or less removes
// the line.
func (s *Store) UpdateQuantity(ctx context.Context, id int64, quantity int) {
	if quantity <= 0 {
		s.RemoveFromCart(ctx, id)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return
	}
	s.items[i].Quantity = quantity
	s.persist(ctx)
}

// ClearCart empties the cart and removes the saved value.
func (s *Store) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = nil
	s.bridge.Remove(ctx, domain.KeyCart)
}

// Total is the sum of price * quantity in GNF.
func (s *Store) Total() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// ItemsCount is the number of units in the cart, not the number of lines.
func (s *Store) ItemsCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

func (s *Store) Items() []domain.CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]domain.CartItem, len(s.items))
	copy(items, s.items)
	return items
}

func (s *Store) IsEmpty() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items) == 0
}

// caller holds mu
func (s *Store) indexOf(id int64) int {
	for i, item := range s.items {
		if item.ID == id {
			return i
		}
	}
	return -1
}

// caller holds mu
func (s *Store) persist(ctx context.Context) {
	items := s.items
	if items == nil {
		items = []domain.CartItem{}
	}
	s.bridge.Save(ctx, domain.KeyCart, items)
}
