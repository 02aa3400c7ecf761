// Package http serves the storefront pages and its JSON API.
package http

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/session"
)

const maxQuantity = 99

// Catalog is satisfied by *catalog.Loader.
type Catalog interface {
	FetchProducts(ctx context.Context) []domain.Product
}

// ImageResolver is satisfied by *commerce.Client.
type ImageResolver interface {
	ImageURL(photo string) string
}

// Sessions is satisfied by *session.Manager.
type Sessions interface {
	Get(ctx context.Context, visitorID string) *session.Session
}

type RouterConfig struct {
	Products    *ProductHandler
	Cart        *CartHandler
	Preferences *PreferencesHandler
	Checkout    *CheckoutHandler
	Pages       *PageHandler
	Health      *HealthHandler

	RequestTimeout time.Duration
	Log            *zap.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestIDMiddleware)
	r.Use(RequestLogger(cfg.Log))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))
	r.Use(middleware.Compress(5))

	r.Get("/health", cfg.Health.Health)

	r.Group(func(r chi.Router) {
		r.Use(VisitorMiddleware)

		r.Get("/", cfg.Pages.Home)
		r.Get("/product/{id}", cfg.Pages.Product)
		r.Get("/cart", cfg.Pages.Cart)
		r.Post("/cart/items", cfg.Pages.AddToCart)
		r.Post("/cart/items/{id}/quantity", cfg.Pages.UpdateQuantity)
		r.Post("/cart/items/{id}/remove", cfg.Pages.RemoveFromCart)
		r.Post("/checkout", cfg.Pages.Checkout)
		r.Post("/preferences", cfg.Pages.Preferences)

		r.Route("/api/v1", func(r chi.Router) {
			r.Get("/products", cfg.Products.ListProducts)
			r.Get("/products/{id}", cfg.Products.GetProduct)
			r.Get("/categories", cfg.Products.ListCategories)

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cfg.Cart.GetCart)
				r.Delete("/", cfg.Cart.ClearCart)
				r.Post("/items", cfg.Cart.AddItem)
				r.Put("/items/{id}", cfg.Cart.UpdateItem)
				r.Delete("/items/{id}", cfg.Cart.RemoveItem)
			})

			r.Route("/preferences", func(r chi.Router) {
				r.Get("/", cfg.Preferences.GetPreferences)
				r.Put("/currency", cfg.Preferences.SetCurrency)
				r.Put("/language", cfg.Preferences.SetLanguage)
				r.Put("/theme", cfg.Preferences.SetTheme)
				r.Post("/theme/toggle", cfg.Preferences.ToggleTheme)
			})

			r.Get("/translations", cfg.Preferences.Translations)

			r.Post("/checkout", cfg.Checkout.Submit)
			r.Post("/checkout/whatsapp", cfg.Checkout.SubmitViaWhatsApp)
			r.Get("/checkout/status", cfg.Checkout.Status)
			r.Get("/orders", cfg.Checkout.ListOrders)
		})
	})

	return r
}
