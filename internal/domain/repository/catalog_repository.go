// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"commerce/internal/domain/entity"
	"commerce/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when a product does not exist.
var ErrProductNotFound = errors.New("product not found")

// CatalogRepository reads products and their variants.
type CatalogRepository interface {
	// FindProductByID loads a product with its variants. Outside a transaction the
	// read may be served by a replica.
	FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// LockProductForCheckout loads a product with its variants from the primary and
	// takes a shared row lock on them until the surrounding transaction ends, so stock
	// cannot change between the availability check and the order insert.
	LockProductForCheckout(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// SaveProduct inserts or updates a product and its variants keyed by SKU.
	// Only catalog tooling writes products.
	SaveProduct(ctx context.Context, product *entity.Product) error
}
