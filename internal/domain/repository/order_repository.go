package repository

import (
	"context"

	"commerce/internal/domain/entity"
	"commerce/internal/errors"

	"github.com/google/uuid"
)

// Domain-specific errors for order persistence.
var (
	// ErrOrderNotFound is returned when an order does not exist.
	ErrOrderNotFound = errors.New("order not found")
	// ErrOrderNumberTaken is returned when the order number is already used.
	ErrOrderNumberTaken = errors.New("order number already exists")
)

// OrderRepository persists orders together with their items.
type OrderRepository interface {
	// CreateOrder inserts the order and all of its items.
	CreateOrder(ctx context.Context, order *entity.Order) error

	// FindOrderByID retrieves an order with its items.
	FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// LockOrderByID retrieves an order with its items and holds an exclusive row lock
	// on the order until the surrounding transaction ends.
	LockOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// FindOrdersByCustomer lists a customer's orders, newest first, with the total count.
	FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, int64, error)

	// UpdateOrderStatus persists status, payment status, tracking and lifecycle timestamps only.
	UpdateOrderStatus(ctx context.Context, order *entity.Order) error

	// UpdateOrderAmounts persists tax, shipping, discount and total only.
	UpdateOrderAmounts(ctx context.Context, order *entity.Order) error
}
