package checkout

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/cart"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/commerce"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/events"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/storage"
)

type mockAPI struct {
	mu      sync.Mutex
	orders  []domain.OrderRequest
	err     error
	block   chan struct{} // when set, CreateOrder waits for it or ctx
	waitCtx bool          // when set, CreateOrder waits for ctx
}

func (m *mockAPI) CreateOrder(ctx context.Context, order domain.OrderRequest) error {
	if m.block != nil {
		select {
		case <-m.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	if m.waitCtx {
		<-ctx.Done()
		return fmt.Errorf("failed to call orders API: %w", ctx.Err())
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockAPI) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.orders)
}

type mockPublisher struct {
	mu     sync.Mutex
	events []events.OrderConfirmedEvent
	err    error
}

func (m *mockPublisher) PublishOrderConfirmed(_ context.Context, e events.OrderConfirmedEvent) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.events = append(m.events, e)
	return m.err
}

func (m *mockPublisher) Close() error { return nil }

type plainPrices struct{}

func (plainPrices) Currency() domain.Currency { return domain.CurrencyGNF }
func (plainPrices) FormatPrice(amount int64) string {
	return fmt.Sprintf("%d GNF", amount)
}

type fixture struct {
	flow      *Flow
	cart      *cart.Store
	api       *mockAPI
	publisher *mockPublisher
	tr        *i18n.Store
}

func newFixture(t *testing.T, cfg Config) *fixture {
	t.Helper()
	ctx := context.Background()
	bridge := storage.NewBridge(storage.NewMemoryStore(), zap.NewNop())

	c := cart.NewStore(ctx, bridge)
	c.AddToCart(ctx, domain.CartItem{ID: 1, Name: "Huile", Price: 45000}, 2)
	c.AddToCart(ctx, domain.CartItem{ID: 11, Name: "Rool On", Price: 21000}, 1)

	api := &mockAPI{}
	pub := &mockPublisher{}
	tr := i18n.NewStore(ctx, bridge)

	if cfg.OrderTimeout == 0 {
		cfg.OrderTimeout = time.Second
	}
	if cfg.ClearDelay == 0 {
		cfg.ClearDelay = time.Hour
	}
	if cfg.WhatsAppNumber == "" {
		cfg.WhatsAppNumber = "224666885555"
	}

	flow := NewFlow(cfg, Deps{
		API:        api,
		Cart:       c,
		Prices:     plainPrices{},
		Translator: tr,
		History:    NewHistory(bridge),
		Publisher:  pub,
		VisitorID:  "visitor-1",
		Log:        zap.NewNop(),
	})
	return &fixture{flow: flow, cart: c, api: api, publisher: pub, tr: tr}
}

var validInfo = domain.CustomerInfo{
	Customer: "Moussa TOURE",
	Phone:    "+224620879890",
	Address:  "Aéroport International AST, Conakry",
}

func TestSubmit_Success(t *testing.T) {
	fx := newFixture(t, Config{})
	fixed := time.Date(2025, 6, 8, 4, 0, 0, 0, time.UTC)
	fx.flow.now = func() time.Time { return fixed }
	fx.flow.newID = func() string { return "order-1" }

	res, err := fx.flow.Submit(context.Background(), validInfo)
	require.NoError(t, err)

	assert.Equal(t, "Commande validée avec succès ! Vous recevrez une confirmation.", res.Message)
	assert.Equal(t, int64(2*45000+21000), res.Order.Total)
	assert.Equal(t, "order-1", res.Order.ID)
	assert.Equal(t, domain.OrderStatusConfirmed, res.Order.Status)
	assert.Equal(t, "2025-06-08T04:00:00Z", res.Order.Date)

	require.Equal(t, 1, fx.api.count())
	assert.Equal(t, []domain.OrderLine{{ProductID: 1, Qty: 2}, {ProductID: 11, Qty: 1}}, fx.api.orders[0].Details)

	status, msg := fx.flow.Status()
	assert.Equal(t, domain.CheckoutStatusSuccess, status)
	assert.Equal(t, res.Message, msg)

	history := fx.flow.History(context.Background())
	require.Len(t, history, 1)
	assert.Equal(t, res.Order, history[0])

	require.Len(t, fx.publisher.events, 1)
	assert.Equal(t, "order-1", fx.publisher.events[0].OrderID)
	assert.Equal(t, "visitor-1", fx.publisher.events[0].VisitorID)
	assert.False(t, fx.publisher.events[0].Simulated)
}

func TestSubmit_CartClearedAfterDelay(t *testing.T) {
	fx := newFixture(t, Config{ClearDelay: 50 * time.Millisecond})

	_, err := fx.flow.Submit(context.Background(), validInfo)
	require.NoError(t, err)

	assert.False(t, fx.cart.IsEmpty(), "cart is kept while the success message shows")
	require.Eventually(t, fx.cart.IsEmpty, time.Second, 10*time.Millisecond)
	require.Eventually(t, func() bool {
		status, _ := fx.flow.Status()
		return status == domain.CheckoutStatusIdle
	}, time.Second, 10*time.Millisecond)
}

func TestAcknowledge_ReturnsSuccessToIdle(t *testing.T) {
	fx := newFixture(t, Config{ClearDelay: time.Hour})

	_, err := fx.flow.Submit(context.Background(), validInfo)
	require.NoError(t, err)

	fx.flow.Acknowledge()
	status, msg := fx.flow.Status()
	assert.Equal(t, domain.CheckoutStatusIdle, status)
	assert.Empty(t, msg)
}

func TestAcknowledge_KeepsErrorMessage(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.api.err = &commerce.StatusError{StatusCode: 500, Body: "boom"}

	_, err := fx.flow.Submit(context.Background(), validInfo)
	require.Error(t, err)

	fx.flow.Acknowledge()
	status, msg := fx.flow.Status()
	assert.Equal(t, domain.CheckoutStatusError, status)
	assert.NotEmpty(t, msg)
}

func TestSubmit_HistoryAccumulates(t *testing.T) {
	fx := newFixture(t, Config{ClearDelay: time.Hour})

	for i := 0; i < 3; i++ {
		_, err := fx.flow.Submit(context.Background(), validInfo)
		require.NoError(t, err)
	}
	assert.Len(t, fx.flow.History(context.Background()), 3)
}

func TestSubmit_ValidationLeavesStateUntouched(t *testing.T) {
	cases := []struct {
		name  string
		info  domain.CustomerInfo
		field string
		key   i18n.Key
	}{
		{"missing customer", domain.CustomerInfo{Phone: "+224620879890", Address: "Kaloum"}, "customer", i18n.KeyFillRequired},
		{"blank address", domain.CustomerInfo{Customer: "Awa", Phone: "+224620879890", Address: "   "}, "address", i18n.KeyFillRequired},
		{"missing phone", domain.CustomerInfo{Customer: "Awa", Address: "Kaloum"}, "phone", i18n.KeyFillRequired},
		{"no country code", domain.CustomerInfo{Customer: "Awa", Phone: "620879890", Address: "Kaloum"}, "phone", i18n.KeyInvalidPhone},
		{"bad email", domain.CustomerInfo{Customer: "Awa", Phone: "+224620879890", Email: "awa@", Address: "Kaloum"}, "email", i18n.KeyInvalidEmail},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fx := newFixture(t, Config{})

			_, err := fx.flow.Submit(context.Background(), tc.info)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
			assert.Equal(t, tc.key, verr.Key)

			status, _ := fx.flow.Status()
			assert.Equal(t, domain.CheckoutStatusIdle, status)
			assert.Equal(t, 0, fx.api.count())
		})
	}
}

func TestSubmit_EmailOptional(t *testing.T) {
	fx := newFixture(t, Config{})

	info := validInfo
	info.Email = ""
	_, err := fx.flow.Submit(context.Background(), info)
	require.NoError(t, err)

	info.Email = "awa@example.gn"
	_, err = fx.flow.Submit(context.Background(), info)
	require.NoError(t, err)
}

func TestSubmit_EmptyCart(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.cart.ClearCart(context.Background())

	_, err := fx.flow.Submit(context.Background(), validInfo)
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Equal(t, 0, fx.api.count())
}

func TestSubmit_Timeout(t *testing.T) {
	fx := newFixture(t, Config{OrderTimeout: 30 * time.Millisecond})
	fx.api.waitCtx = true

	_, err := fx.flow.Submit(context.Background(), validInfo)

	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, KindTimeout, te.Kind)

	status, msg := fx.flow.Status()
	assert.Equal(t, domain.CheckoutStatusError, status)
	assert.Equal(t, "Timeout de la requête. Veuillez réessayer.", msg)
	assert.Len(t, fx.cart.Items(), 2, "cart is untouched on failure")
	assert.Empty(t, fx.flow.History(context.Background()))
}

func TestSubmit_ServerErrorThenRetry(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.api.err = &commerce.StatusError{StatusCode: 500, Body: "boom"}

	_, err := fx.flow.Submit(context.Background(), validInfo)
	var te *TransportError
	require.True(t, errors.As(err, &te))
	assert.Equal(t, KindServerStatus, te.Kind)

	_, msg := fx.flow.Status()
	assert.Equal(t, "Erreur serveur: 500. Veuillez réessayer.", msg)

	fx.api.err = nil
	_, err = fx.flow.Submit(context.Background(), validInfo)
	require.NoError(t, err)
	status, _ := fx.flow.Status()
	assert.Equal(t, domain.CheckoutStatusSuccess, status)
}

func TestSubmit_LocalizedFailureMessage(t *testing.T) {
	fx := newFixture(t, Config{})
	require.NoError(t, fx.tr.SetLanguage(context.Background(), "en"))
	fx.api.err = &url.Error{Op: "Post", URL: "https://api.groupmafamo.com/v1/orders", Err: errors.New("connection refused")}

	_, err := fx.flow.Submit(context.Background(), validInfo)
	require.Error(t, err)

	_, msg := fx.flow.Status()
	assert.Equal(t, "The API cannot be reached from this environment. Use the WhatsApp option to complete your order.", msg)
}

func TestSubmit_RejectsWhileSubmitting(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.api.block = make(chan struct{})

	done := make(chan error, 1)
	go func() {
		_, err := fx.flow.Submit(context.Background(), validInfo)
		done <- err
	}()

	require.Eventually(t, func() bool {
		status, _ := fx.flow.Status()
		return status == domain.CheckoutStatusSubmitting
	}, time.Second, 5*time.Millisecond)

	_, err := fx.flow.Submit(context.Background(), validInfo)
	assert.ErrorIs(t, err, ErrSubmitInProgress)

	close(fx.api.block)
	require.NoError(t, <-done)
	assert.Equal(t, 1, fx.api.count())
}

func TestSubmit_Simulated(t *testing.T) {
	fx := newFixture(t, Config{SimulateOrders: true, SimulatedDelay: 30 * time.Millisecond})

	start := time.Now()
	res, err := fx.flow.Submit(context.Background(), validInfo)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 30*time.Millisecond)
	assert.Equal(t, 0, fx.api.count(), "simulated orders never reach the API")
	assert.Len(t, fx.flow.History(context.Background()), 1)
	assert.True(t, fx.publisher.events[0].Simulated)
	assert.NotEmpty(t, res.Order.ID)
}

func TestSubmit_PublishFailureDoesNotFailOrder(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.publisher.err = errors.New("broker down")

	_, err := fx.flow.Submit(context.Background(), validInfo)
	require.NoError(t, err)
	status, _ := fx.flow.Status()
	assert.Equal(t, domain.CheckoutStatusSuccess, status)
}

func TestSubmitViaWhatsApp(t *testing.T) {
	fx := newFixture(t, Config{ClearDelay: time.Hour})
	info := validInfo
	info.Email = "moussa@example.gn"

	link, res, err := fx.flow.SubmitViaWhatsApp(context.Background(), info)
	require.NoError(t, err)
	require.NotNil(t, res)

	require.True(t, strings.HasPrefix(link, "https://wa.me/224666885555?text="))
	assert.NotContains(t, link, "+")

	u, err := url.Parse(link)
	require.NoError(t, err)
	text := u.Query().Get("text")

	assert.Contains(t, text, "*Client:* Moussa TOURE")
	assert.Contains(t, text, "*Téléphone:* +224620879890")
	assert.Contains(t, text, "*Email:* moussa@example.gn")
	assert.Contains(t, text, "• Huile x2 - 90000 GNF")
	assert.Contains(t, text, "• Rool On x1 - 21000 GNF")
	assert.Contains(t, text, "*Total:* 111000 GNF")

	assert.Equal(t, 1, fx.api.count(), "the order is recorded before the handoff")
	assert.Len(t, fx.flow.History(context.Background()), 1)
}

func TestSubmitViaWhatsApp_NoLinkOnFailure(t *testing.T) {
	fx := newFixture(t, Config{})
	fx.api.err = &commerce.StatusError{StatusCode: 502}

	link, res, err := fx.flow.SubmitViaWhatsApp(context.Background(), validInfo)
	require.Error(t, err)
	assert.Empty(t, link)
	assert.Nil(t, res)
}

func TestWhatsAppSummary_OmitsBlankEmail(t *testing.T) {
	tr := i18n.NewStore(context.Background(), storage.NewBridge(storage.NewMemoryStore(), zap.NewNop()))
	text := WhatsAppSummary(tr, validInfo, nil, 0, plainPrices{}.FormatPrice)

	assert.NotContains(t, text, "Email")
	assert.Contains(t, text, "NOUVELLE COMMANDE YAYAH LIVRAISON")
}
