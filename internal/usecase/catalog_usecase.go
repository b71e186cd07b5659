// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CatalogUsecase resolves the authoritative price, identity and stock of a
// product or one of its variants.
type CatalogUsecase interface {
	// Resolve returns the catalog entry for the product, or for the variant when
	// variantID names one of its variants. Missing or inactive products are not found.
	Resolve(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID) (*entity.CatalogEntry, error)

	// ResolvePrice returns the current unit price.
	ResolvePrice(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID) (decimal.Decimal, error)

	// ResolveAvailability reports whether quantity units can be ordered.
	// Inactive products are unavailable; missing products are not found.
	ResolveAvailability(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID, quantity int) (bool, error)
}
