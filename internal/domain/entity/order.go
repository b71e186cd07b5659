package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is a placed purchase. Its items and snapshotted totals never change after
// creation; only status fields, tracking and the adjustable amounts (tax, shipping,
// discount, followed by a total recalculation) may be edited.
type Order struct {
	ID             uuid.UUID
	OrderNumber    string
	CustomerID     uuid.UUID
	Status         OrderStatus
	PaymentStatus  PaymentStatus
	PaymentMethod  string
	ShippingMethod string
	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
	Total          decimal.Decimal
	Currency       string
	Notes          string
	TrackingNumber string
	Items          []*OrderItem
	PlacedAt       time.Time
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OrderItem is the permanent snapshot of one purchased line. Names, SKU and price
// are captured at placement and are not re-derived from the catalog afterwards.
type OrderItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	ProductID   uuid.UUID
	VariantID   *uuid.UUID
	Quantity    int
	Price       decimal.Decimal
	Total       decimal.Decimal
	ProductName string
	VariantName string
	SKU         string
	Weight      decimal.Decimal
	Attributes  Attributes
	CreatedAt   time.Time
}

// ItemCount sums the item quantities.
func (o *Order) ItemCount() int {
	n := 0
	for _, item := range o.Items {
		n += item.Quantity
	}

	return n
}

// ApplyStatus moves the order to next and stamps the matching timestamp.
// Callers must check CanTransitionTo first.
func (o *Order) ApplyStatus(next OrderStatus, at time.Time) {
	o.Status = next
	o.UpdatedAt = at

	switch next {
	case OrderStatusShipped:
		o.ShippedAt = &at
	case OrderStatusDelivered:
		o.DeliveredAt = &at
	case OrderStatusCancelled:
		o.CancelledAt = &at
	}
}
