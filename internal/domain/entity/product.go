package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
)

// Product is a sellable catalog entry. The core only reads products; catalog
// management owns their lifecycle.
type Product struct {
	ID            uuid.UUID
	Name          string
	Slug          string
	SKU           string
	Price         decimal.Decimal
	CompareAt     *decimal.Decimal // Optional "was" price shown by storefronts.
	CostPrice     *decimal.Decimal
	Quantity      int  // Quantity on hand.
	TrackQuantity bool // When false the product is always considered in stock.
	Active        bool
	Weight        decimal.Decimal // Unit weight.
	Variants      []*ProductVariant
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Rename sets a new name. The slug is regenerated from the name unless an explicit
// slug is given.
func (p *Product) Rename(name, explicitSlug string) {
	p.Name = name
	if strings.TrimSpace(explicitSlug) != "" {
		p.Slug = explicitSlug

		return
	}
	p.Slug = Slugify(name)
}

// FindVariant returns the variant with the given ID that belongs to this product.
func (p *Product) FindVariant(id uuid.UUID) (*ProductVariant, bool) {
	for _, v := range p.Variants {
		if v.ID == id {
			return v, true
		}
	}

	return nil, false
}

// ProductVariant is a priced, stocked sub-SKU of a product (size/color combination).
type ProductVariant struct {
	ID         uuid.UUID
	ProductID  uuid.UUID
	Name       string
	SKU        string
	Price      decimal.Decimal
	Quantity   int
	Attributes Attributes
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EnsureSKU fills in a derived SKU when none was supplied.
func (v *ProductVariant) EnsureSKU(parentSKU string) {
	if strings.TrimSpace(v.SKU) == "" {
		v.SKU = DeriveVariantSKU(parentSKU, v.Name)
	}
}

// Slugify derives a URL slug from a product name.
func Slugify(name string) string {
	return slug.Make(name)
}

// DeriveVariantSKU builds a variant SKU from its parent SKU and the variant name,
// e.g. ("TSHIRT-01", "Large / Red") -> "TSHIRT-01-LARGE-RED".
func DeriveVariantSKU(parentSKU, variantName string) string {
	suffix := strings.ToUpper(slug.Make(variantName))
	if suffix == "" {
		return parentSKU
	}
	if parentSKU == "" {
		return suffix
	}

	return parentSKU + "-" + suffix
}
