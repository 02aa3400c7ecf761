// Package checkout validates the order form and submits the cart as an
// order, either to the commerce API or as a simulated success.
package checkout

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/events"
	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/i18n"
)

const publishTimeout = 5 * time.Second

// OrderCreator is satisfied by *commerce.Client.
type OrderCreator interface {
	CreateOrder(ctx context.Context, order domain.OrderRequest) error
}

// Cart is the part of the cart store the flow reads and clears.
type Cart interface {
	Items() []domain.CartItem
	Total() int64
	ClearCart(ctx context.Context)
}

// Prices is satisfied by *currency.Converter.
type Prices interface {
	Currency() domain.Currency
	FormatPrice(amount int64) string
}

type Config struct {
	// SimulateOrders skips the API call and succeeds after SimulatedDelay.
	SimulateOrders bool
	SimulatedDelay time.Duration
	OrderTimeout   time.Duration
	// ClearDelay is how long the success message stays up before the cart
	// is emptied.
	ClearDelay     time.Duration
	WhatsAppNumber string
}

type Deps struct {
	API        OrderCreator
	Cart       Cart
	Prices     Prices
	Translator i18n.Translator
	History    *History
	Publisher  events.Publisher
	VisitorID  string
	Log        *zap.Logger
}

// Result describes an accepted order.
type Result struct {
	Order   domain.OrderRecord `json:"order"`
	Items   []domain.CartItem  `json:"items"`
	Message string             `json:"message"`
}

// Flow is one visitor's checkout state machine:
// idle -> submitting -> success | error, and error -> submitting.
type Flow struct {
	mu      sync.Mutex
	status  domain.CheckoutStatus
	message string

	cfg       Config
	api       OrderCreator
	cart      Cart
	prices    Prices
	tr        i18n.Translator
	history   *History
	publisher events.Publisher
	visitorID string
	log       *zap.Logger

	now   func() time.Time
	newID func() string
	after func(d time.Duration, f func()) *time.Timer
}

func NewFlow(cfg Config, deps Deps) *Flow {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &Flow{
		status:    domain.CheckoutStatusIdle,
		cfg:       cfg,
		api:       deps.API,
		cart:      deps.Cart,
		prices:    deps.Prices,
		tr:        deps.Translator,
		history:   deps.History,
		publisher: publisher,
		visitorID: deps.VisitorID,
		log:       deps.Log.With(zap.String("visitor_id", deps.VisitorID)),
		now:       time.Now,
		newID:     uuid.NewString,
		after:     time.AfterFunc,
	}
}

// Status returns the current state and the last outcome message.
func (f *Flow) Status() (domain.CheckoutStatus, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status, f.message
}

// Acknowledge returns a successful flow to idle once its outcome has been
// shown, so the next order starts from a fresh form.
func (f *Flow) Acknowledge() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == domain.CheckoutStatusSuccess {
		f.status = domain.CheckoutStatusIdle
		f.message = ""
	}
}

// Submit validates info and records the cart as an order. Validation
// failures return *ValidationError and leave the state untouched. Transport
// failures return *TransportError, move the flow to error and keep the cart.
func (f *Flow) Submit(ctx context.Context, info domain.CustomerInfo) (*Result, error) {
	if err := Validate(info); err != nil {
		return nil, err
	}

	items := f.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	total := f.cart.Total()

	f.mu.Lock()
	if !f.status.CanSubmit() {
		f.mu.Unlock()
		return nil, ErrSubmitInProgress
	}
	f.status = domain.CheckoutStatusSubmitting
	f.message = ""
	f.mu.Unlock()

	order := domain.NewOrderRequest(info, items)
	if err := f.send(ctx, order); err != nil {
		te := classify(err)
		f.log.Warn("order submission failed",
			zap.Stringer("kind", te.Kind), zap.Int("status_code", te.StatusCode), zap.Error(err))

		msg := te.Message(f.tr)
		f.finish(domain.CheckoutStatusError, msg)
		return nil, te
	}

	return f.succeed(ctx, order, items, total), nil
}

// SubmitViaWhatsApp runs Submit and, only once the order is recorded,
// returns the wa.me link carrying the order summary.
func (f *Flow) SubmitViaWhatsApp(ctx context.Context, info domain.CustomerInfo) (string, *Result, error) {
	res, err := f.Submit(ctx, info)
	if err != nil {
		return "", nil, err
	}
	text := WhatsAppSummary(f.tr, info, res.Items, res.Order.Total, f.prices.FormatPrice)
	return WhatsAppLink(f.cfg.WhatsAppNumber, text), res, nil
}

func (f *Flow) History(ctx context.Context) []domain.OrderRecord {
	return f.history.List(ctx)
}

func (f *Flow) send(ctx context.Context, order domain.OrderRequest) error {
	if f.cfg.SimulateOrders {
		f.log.Info("simulating order submission", zap.Int("lines", len(order.Details)))
		t := time.NewTimer(f.cfg.SimulatedDelay)
		defer t.Stop()
		select {
		case <-t.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	ctx, cancel := context.WithTimeout(ctx, f.cfg.OrderTimeout)
	defer cancel()
	return f.api.CreateOrder(ctx, order)
}

func (f *Flow) succeed(ctx context.Context, order domain.OrderRequest, items []domain.CartItem, total int64) *Result {
	record := domain.OrderRecord{
		OrderRequest: order,
		ID:           f.newID(),
		Total:        total,
		Date:         f.now().UTC().Format(time.RFC3339Nano),
		Status:       domain.OrderStatusConfirmed,
	}
	f.history.Append(ctx, record)

	msg := f.tr.T(i18n.KeyOrderSuccess)
	f.finish(domain.CheckoutStatusSuccess, msg)
	f.log.Info("order recorded", zap.String("order_id", record.ID), zap.Int64("total", total))

	f.publish(ctx, record)

	f.after(f.cfg.ClearDelay, func() {
		f.cart.ClearCart(context.Background())
		f.Acknowledge()
	})

	return &Result{Order: record, Items: items, Message: msg}
}

func (f *Flow) publish(ctx context.Context, record domain.OrderRecord) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), publishTimeout)
	defer cancel()

	event := events.OrderConfirmedEvent{
		OrderID:         record.ID,
		VisitorID:       f.visitorID,
		Customer:        record.Order,
		Details:         record.Details,
		Total:           record.Total,
		DisplayCurrency: f.prices.Currency(),
		Simulated:       f.cfg.SimulateOrders,
		ConfirmedAt:     f.now().UTC(),
	}
	if err := f.publisher.PublishOrderConfirmed(ctx, event); err != nil {
		f.log.Error("failed to publish order event", zap.String("order_id", record.ID), zap.Error(err))
	}
}

func (f *Flow) finish(status domain.CheckoutStatus, msg string) {
	f.mu.Lock()
	f.status = status
	f.message = msg
	f.mu.Unlock()
}
