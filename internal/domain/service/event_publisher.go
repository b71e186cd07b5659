package service

import (
	"context"
	"time"
)

// Order event types
const (
	EventOrderPlaced               = "order.placed"
	EventOrderStatusChanged        = "order.status_changed"
	EventOrderPaymentStatusChanged = "order.payment_status_changed"
	EventOrderAmountsAdjusted      = "order.amounts_adjusted"
)

// OrderEventItem carries the quantities an inventory consumer needs to adjust stock.
type OrderEventItem struct {
	ProductID string `json:"product_id"`
	VariantID string `json:"variant_id,omitempty"`
	SKU       string `json:"sku"`
	Quantity  int    `json:"quantity"`
}

// OrderEvent is published after an order mutation has been committed.
// Monetary values are decimal strings.
type OrderEvent struct {
	EventID       string           `json:"event_id"`
	Type          string           `json:"type"`
	RequestID     string           `json:"request_id,omitempty"` // For distributed tracing
	OrderID       string           `json:"order_id"`
	OrderNumber   string           `json:"order_number"`
	CustomerID    string           `json:"customer_id"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"payment_status"`
	Total         string           `json:"total"`
	Currency      string           `json:"currency"`
	Items         []OrderEventItem `json:"items,omitempty"`
	OccurredAt    time.Time        `json:"occurred_at"`
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishOrderEvent publishes an order event for downstream consumers
	PublishOrderEvent(ctx context.Context, event *OrderEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
