// Package events publishes order lifecycle events to a message broker.
package events

import (
	"context"
	"time"

	"github.com/Yamoon224/YAYAH-LIVRAISON/internal/domain"
)

const (
	EventTypeOrderConfirmed = "OrderConfirmed"
	TopicOrderConfirmed     = "order-confirmed"
)

// OrderConfirmedEvent is emitted once per recorded order.
type OrderConfirmedEvent struct {
	OrderID         string              `json:"order_id"`
	VisitorID       string              `json:"visitor_id"`
	Customer        domain.CustomerInfo `json:"customer"`
	Details         []domain.OrderLine  `json:"details"`
	Total           int64               `json:"total"` // GNF
	DisplayCurrency domain.Currency     `json:"display_currency"`
	Simulated       bool                `json:"simulated"`
	ConfirmedAt     time.Time           `json:"confirmed_at"`
}

type Publisher interface {
	PublishOrderConfirmed(ctx context.Context, event OrderConfirmedEvent) error
	Close() error
}

// NopPublisher drops every event.
type NopPublisher struct{}

func (NopPublisher) PublishOrderConfirmed(context.Context, OrderConfirmedEvent) error { return nil }
func (NopPublisher) Close() error                                                     { return nil }
