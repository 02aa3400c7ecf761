package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/checkout"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/currency"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/events"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/monitor"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/session"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
)

const testVisitor = "5f0c6a8e-2c1b-4f7e-9d0a-3b2c1d4e5f60"

type CatalogMock struct {
	products []domain.Product
}

func (c CatalogMock) FetchProducts(context.Context) []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

type ImagesMock struct{}

func (ImagesMock) ImageURL(photo string) string { return "https://api.test/" + photo }

type OrderAPIMock struct {
	mu     sync.Mutex
	err    error
	orders []domain.OrderRequest
}

func (m *OrderAPIMock) CreateOrder(_ context.Context, order domain.OrderRequest) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.orders = append(m.orders, order)
	return nil
}

type HealthMock struct {
	sources []monitor.SourceStatus
}

func (h HealthMock) Snapshot() []monitor.SourceStatus { return h.sources }
func (h HealthMock) Degraded() bool {
	for _, s := range h.sources {
		if s.Degraded {
			return true
		}
	}
	return false
}

func strPtr(s string) *string { return &s }

func testProducts() []domain.Product {
	return []domain.Product{
		{ID: 1, Category: "Cuisine", Name: "Huile d'olive", Price: 45000, Photo: "huile.jpg", Status: domain.ProductStatusStock,
			Description: strPtr("Huile vierge extra")},
		{ID: 2, Category: "Beauté", Name: "Savon noir", Price: 15000, Photo: "savon.jpg", Status: domain.ProductStatusStock},
		{ID: 3, Category: "Beauté", Name: "Parfum", Price: 120000, Photo: "parfum.jpg", Status: "RUPTURE"},
	}
}

type fixture struct {
	sessions *session.Manager
	api      *OrderAPIMock
	catalog  CatalogMock

	products    *ProductHandler
	cart        *CartHandler
	preferences *PreferencesHandler
	checkout    *CheckoutHandler
	pages       *PageHandler
	router      http.Handler
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	bridge := storage.NewBridge(storage.NewMemoryStore(), zap.NewNop())
	rates := currency.NewRateSource(nil, time.Second, monitor.Nop{}, zap.NewNop())
	api := &OrderAPIMock{}
	cfg := checkout.Config{
		OrderTimeout:   time.Second,
		ClearDelay:     time.Hour,
		WhatsAppNumber: "224666885555",
	}
	sessions := session.NewManager(bridge, rates, api, events.NopPublisher{}, cfg, zap.NewNop())
	cat := CatalogMock{products: testProducts()}

	pages, err := NewPageHandler(cat, ImagesMock{}, sessions, "+224666885555", 5*time.Second, zap.NewNop())
	require.NoError(t, err)

	f := &fixture{
		sessions:    sessions,
		api:         api,
		catalog:     cat,
		products:    NewProductHandler(cat, ImagesMock{}, sessions, 5*time.Second),
		cart:        NewCartHandler(cat, ImagesMock{}, sessions, 5*time.Second),
		preferences: NewPreferencesHandler(sessions, rates, 5*time.Second),
		checkout:    NewCheckoutHandler(sessions),
		pages:       pages,
	}
	f.router = NewRouter(RouterConfig{
		Products:       f.products,
		Cart:           f.cart,
		Preferences:    f.preferences,
		Checkout:       f.checkout,
		Pages:          f.pages,
		Health:         NewHealthHandler(HealthMock{}, "storefront"),
		RequestTimeout: 5 * time.Second,
		Log:            zap.NewNop(),
	})
	return f
}

func (f *fixture) session() *session.Session {
	return f.sessions.Get(context.Background(), testVisitor)
}

// newRequest builds a request for calling a handler method directly, with
// the visitor id and chi URL params already in its context.
func newRequest(method, target string, body interface{}, params map[string]string) *http.Request {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	request := httptest.NewRequest(method, target, reader)

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(request.Context(), chi.RouteCtxKey, rctx)
	ctx = context.WithValue(ctx, visitorIDKey, testVisitor)
	return request.WithContext(ctx)
}

func decodeError(t *testing.T, recorder *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var response ErrorResponse
	require.NoError(t, json.NewDecoder(recorder.Body).Decode(&response))
	return response
}
