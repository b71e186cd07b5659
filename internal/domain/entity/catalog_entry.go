package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogEntry is the authoritative, point-in-time view of what buying a
// (product, variant) pair means: its price, display identity and stock.
type CatalogEntry struct {
	ProductID     uuid.UUID
	VariantID     *uuid.UUID // Set only when a variant of the product was matched.
	ProductName   string
	VariantName   string
	SKU           string
	UnitPrice     decimal.Decimal
	Quantity      int // Stock of the matched variant, else of the product.
	TrackQuantity bool
	Active        bool
	Weight        decimal.Decimal
	Attributes    Attributes
}

// ResolveCatalogEntry resolves a product and an optional variant ID into a CatalogEntry.
// The variant's price, SKU and stock take precedence when the variant exists on the
// product; an unknown variant ID falls back to the product itself.
func ResolveCatalogEntry(product *Product, variantID *uuid.UUID) *CatalogEntry {
	entry := &CatalogEntry{
		ProductID:     product.ID,
		ProductName:   product.Name,
		SKU:           product.SKU,
		UnitPrice:     product.Price,
		Quantity:      product.Quantity,
		TrackQuantity: product.TrackQuantity,
		Active:        product.Active,
		Weight:        product.Weight,
	}

	if variantID == nil {
		return entry
	}

	variant, ok := product.FindVariant(*variantID)
	if !ok {
		return entry
	}

	id := variant.ID
	entry.VariantID = &id
	entry.VariantName = variant.Name
	entry.UnitPrice = variant.Price
	entry.Quantity = variant.Quantity
	entry.Attributes = variant.Attributes.Clone()
	entry.SKU = variant.SKU
	if entry.SKU == "" {
		entry.SKU = DeriveVariantSKU(product.SKU, variant.Name)
	}

	return entry
}

// IsAvailable reports whether quantity units can be bought right now.
func (e *CatalogEntry) IsAvailable(quantity int) bool {
	if !e.Active {
		return false
	}
	if !e.TrackQuantity {
		return true
	}

	return e.Quantity >= quantity
}
