package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
)

var ErrUnsupportedTheme = errors.New("unsupported theme")

// Store is one visitor's light/dark preference. Light is the default.
type Store struct {
	mu     sync.RWMutex
	theme  domain.Theme
	bridge *storage.Bridge
}

func NewStore(ctx context.Context, bridge *storage.Bridge) *Store {
	s := &Store{theme: domain.ThemeLight, bridge: bridge}
	if saved, ok := bridge.Get(ctx, domain.KeyTheme); ok {
		if t := domain.Theme(saved); t.Valid() {
			s.theme = t
		}
	}
	return s
}

func (s *Store) Theme() domain.Theme {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.theme
}

func (s *Store) SetTheme(ctx context.Context, code string) error {
	t := domain.Theme(code)
	if !t.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedTheme, code)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.theme = t
	s.bridge.Set(ctx, domain.KeyTheme, string(t))
	return nil
}

// Toggle flips between light and dark and returns the new theme.
func (s *Store) Toggle(ctx context.Context) domain.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.theme == domain.ThemeDark {
		s.theme = domain.ThemeLight
	} else {
		s.theme = domain.ThemeDark
	}
	s.bridge.Set(ctx, domain.KeyTheme, string(s.theme))
	return s.theme
}
