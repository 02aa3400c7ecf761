// Package i18n holds the storefront's message tables and the visitor's
// language selection.
package i18n

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Translator is what views and the checkout flow need.
type Translator interface {
	T(key Key) string
	Tf(key Key, args ...any) string
}

// Translate looks key up in lang's table, then in the default table. An
// unknown key is returned as is, so the result is never blank.
func Translate(lang domain.Language, key Key) string {
	if s := tables[lang][key]; s != "" {
		return s
	}
	if s := tables[domain.DefaultLanguage][key]; s != "" {
		return s
	}
	return string(key)
}

// Table returns a copy of lang's messages with missing keys filled from the
// default table.
func Table(lang domain.Language) map[Key]string {
	out := make(map[Key]string, len(AllKeys))
	for _, k := range AllKeys {
		out[k] = Translate(lang, k)
	}
	return out
}

// Store is one visitor's language selection.
type Store struct {
	mu     sync.RWMutex
	lang   domain.Language
	bridge *storage.Bridge
}

func NewStore(ctx context.Context, bridge *storage.Bridge) *Store {
	s := &Store{lang: domain.DefaultLanguage, bridge: bridge}
	if saved, ok := bridge.Get(ctx, domain.KeyLanguage); ok {
		if lang := domain.Language(saved); lang.Valid() {
			s.lang = lang
		}
	}
	return s
}

func (s *Store) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

func (s *Store) SetLanguage(ctx context.Context, code string) error {
	lang := domain.Language(code)
	if !lang.Valid() {
		return fmt.Errorf("%w: %q", ErrUnsupportedLanguage, code)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.lang = lang
	s.bridge.Set(ctx, domain.KeyLanguage, string(lang))
	return nil
}

func (s *Store) T(key Key) string {
	return Translate(s.Language(), key)
}

// Tf formats a parameterised message.
func (s *Store) Tf(key Key, args ...any) string {
	return fmt.Sprintf(s.T(key), args...)
}
