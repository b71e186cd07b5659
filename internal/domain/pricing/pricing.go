// Package pricing holds the monetary rules shared by the cart and order flows:
// line totals, order aggregates and their validation.
package pricing

import (
	"commerce/internal/domain/entity"
	domainerrors "commerce/internal/domain/errors"

	"github.com/shopspring/decimal"
)

// MoneyScale is the number of decimal places money is stored with.
const MoneyScale = 2

// RoundMoney rounds an amount to the stored money scale.
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyScale)
}

// LineTotal returns price × quantity.
func LineTotal(price decimal.Decimal, quantity int) decimal.Decimal {
	return price.Mul(decimal.NewFromInt(int64(quantity)))
}

// Subtotal sums the item totals.
func Subtotal(items []*entity.OrderItem) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Total)
	}

	return sum
}

// OrderTotal returns max(0, subtotal + tax + shipping - discount).
func OrderTotal(subtotal, tax, shipping, discount decimal.Decimal) decimal.Decimal {
	total := subtotal.Add(tax).Add(shipping).Sub(discount)
	if total.IsNegative() {
		return decimal.Zero
	}

	return total
}

// Recalculate re-derives the order total from its current subtotal and adjustable
// amounts. It reports whether the stored total changed.
func Recalculate(order *entity.Order) bool {
	total := OrderTotal(order.Subtotal, order.TaxAmount, order.ShippingAmount, order.DiscountAmount)
	if total.Equal(order.Total) {
		return false
	}
	order.Total = total

	return true
}

// ValidateAmounts rejects negative tax, shipping or discount amounts.
func ValidateAmounts(tax, shipping, discount decimal.Decimal) error {
	switch {
	case tax.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("tax amount must not be negative")
	case shipping.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("shipping amount must not be negative")
	case discount.IsNegative():
		return domainerrors.ErrValidationFailed.WithDetails("discount amount must not be negative")
	}

	return nil
}

// ValidateOrder checks the aggregate invariants of an order:
// every item total equals price × quantity, the subtotal equals the sum of item
// totals and the total equals max(0, subtotal + tax + shipping - discount).
func ValidateOrder(order *entity.Order) error {
	for i, item := range order.Items {
		if item.Quantity < 1 {
			return domainerrors.ErrInvalidQuantity.WithDetailsf("item %d has quantity %d", i, item.Quantity)
		}
		if want := LineTotal(item.Price, item.Quantity); !item.Total.Equal(want) {
			return domainerrors.ErrInconsistentTotals.WithDetailsf(
				"item %d total %s does not equal %s x %d", i, item.Total, item.Price, item.Quantity)
		}
	}

	if want := Subtotal(order.Items); !order.Subtotal.Equal(want) {
		return domainerrors.ErrInconsistentTotals.WithDetailsf(
			"subtotal %s does not equal item sum %s", order.Subtotal, want)
	}

	want := OrderTotal(order.Subtotal, order.TaxAmount, order.ShippingAmount, order.DiscountAmount)
	if !order.Total.Equal(want) {
		return domainerrors.ErrInconsistentTotals.WithDetailsf(
			"total %s does not equal derived total %s", order.Total, want)
	}

	return nil
}
