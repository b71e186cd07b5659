package usecase

import (
	"context"

	"commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// --- Input DTOs ---

// OrderLineInput is one line to be turned into an order item.
type OrderLineInput struct {
	// CartLineID links the line back to the cart line it came from.
	CartLineID *uuid.UUID
	ProductID  uuid.UUID
	VariantID  *uuid.UUID
	Quantity   int
	// Price is the snapshot to honor; nil prices the line from the catalog.
	Price      *decimal.Decimal
	Attributes entity.Attributes
}

// OrderAmountsInput carries the adjustable order amounts.
type OrderAmountsInput struct {
	TaxAmount      decimal.Decimal
	ShippingAmount decimal.Decimal
	DiscountAmount decimal.Decimal
}

// PlaceOrderInput defines the data required to place an order.
type PlaceOrderInput struct {
	CustomerID     uuid.UUID
	Lines          []*OrderLineInput
	ShippingMethod string
	PaymentMethod  string
	OrderAmountsInput
	// OrderNumber is generated when empty.
	OrderNumber string
	Currency    string
	Notes       string
	// CartOwner, when set, has the lines consumed by this order removed from its cart.
	CartOwner *entity.CartOwner
}

// CheckoutInput defines the data required to turn a cart into an order.
type CheckoutInput struct {
	Owner          entity.CartOwner
	CustomerID     uuid.UUID
	ShippingMethod string
	PaymentMethod  string
	OrderAmountsInput
	Currency string
	Notes    string
}

// AdjustAmountsInput changes any subset of the adjustable amounts.
type AdjustAmountsInput struct {
	TaxAmount      *decimal.Decimal
	ShippingAmount *decimal.Decimal
	DiscountAmount *decimal.Decimal
}

// UpdateOrderStatusInput defines a fulfillment status change.
type UpdateOrderStatusInput struct {
	Status         entity.OrderStatus
	TrackingNumber string
}

// --- Output DTOs ---

// OrderListOutput is a page of orders.
type OrderListOutput struct {
	Orders []*entity.Order
	Total  int64
	Limit  int
	Offset int
}

// OrderUsecase defines the interface for order assembly and lifecycle operations
type OrderUsecase interface {
	// PlaceOrder validates, snapshots and persists the lines as one order.
	PlaceOrder(ctx context.Context, input *PlaceOrderInput) (*entity.Order, error)

	// Checkout places an order from every line of the owner's cart.
	Checkout(ctx context.Context, input *CheckoutInput) (*entity.Order, error)

	// RecalculateTotal re-derives the stored total from subtotal and adjustable amounts.
	RecalculateTotal(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// AdjustOrderAmounts changes tax, shipping or discount and recalculates the total.
	AdjustOrderAmounts(ctx context.Context, orderID uuid.UUID, input *AdjustAmountsInput) (*entity.Order, error)

	// GetOrder returns an order after verifying its aggregates.
	GetOrder(ctx context.Context, orderID uuid.UUID) (*entity.Order, error)

	// ListCustomerOrders returns a customer's orders, newest first.
	ListCustomerOrders(ctx context.Context, customerID uuid.UUID, limit, offset int) (*OrderListOutput, error)

	// UpdateOrderStatus moves an order along its fulfillment lifecycle.
	UpdateOrderStatus(ctx context.Context, orderID uuid.UUID, input *UpdateOrderStatusInput) (*entity.Order, error)

	// UpdatePaymentStatus moves an order along its payment lifecycle.
	UpdatePaymentStatus(ctx context.Context, orderID uuid.UUID, status entity.PaymentStatus) (*entity.Order, error)
}
