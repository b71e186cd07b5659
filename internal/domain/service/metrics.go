package service

import "github.com/shopspring/decimal"

// CommerceMetrics records business outcomes of cart and checkout operations.
type CommerceMetrics interface {
	// CartItemAdded counts an addItem call; merged reports whether an existing line grew.
	CartItemAdded(merged bool)

	// OrderPlaced counts a committed order and observes its total.
	OrderPlaced(currency string, total decimal.Decimal)

	// CheckoutRejected counts a checkout that failed with the given business error code.
	CheckoutRejected(reason string)

	// TransactionRetried counts a retried transaction for the named operation.
	TransactionRetried(operation string)
}
