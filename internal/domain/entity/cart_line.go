package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLine is one (product, variant, quantity, snapshotted price) entry of a
// pre-purchase cart. Removal is an explicit delete; a line never holds quantity 0.
type CartLine struct {
	ID         uuid.UUID
	Owner      CartOwner
	ProductID  uuid.UUID
	VariantID  *uuid.UUID
	Quantity   int
	Price      decimal.Decimal // Unit price captured when the line was first added.
	Attributes Attributes      // Copied from the variant at add time.
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// LineTotal returns price × quantity.
func (l *CartLine) LineTotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SameItem reports whether both lines refer to the same (product, variant) pair.
func (l *CartLine) SameItem(other *CartLine) bool {
	if l.ProductID != other.ProductID {
		return false
	}
	if l.VariantID == nil || other.VariantID == nil {
		return l.VariantID == nil && other.VariantID == nil
	}

	return *l.VariantID == *other.VariantID
}

// Cart is a read model of all lines held by one owner.
type Cart struct {
	Owner CartOwner
	Lines []*CartLineView
}

// CartLineView decorates a line with its derived total and live availability.
type CartLineView struct {
	*CartLine
	Total     decimal.Decimal
	Available bool
}

// Subtotal sums the line totals.
func (c *Cart) Subtotal() decimal.Decimal {
	sum := decimal.Zero
	for _, l := range c.Lines {
		sum = sum.Add(l.Total)
	}

	return sum
}

// ItemCount sums the line quantities.
func (c *Cart) ItemCount() int {
	n := 0
	for _, l := range c.Lines {
		n += l.Quantity
	}

	return n
}
