package impl

import (
	"context"
	"log/slog"

	deliverycontext "commerce/internal/delivery/context"
	"commerce/internal/domain/entity"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/domain/repository"
	"commerce/internal/errors"
	"commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalogRepo repository.CatalogRepository
	logger      *slog.Logger
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	CatalogRepo repository.CatalogRepository
	Logger      *slog.Logger
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	return &catalogService{
		catalogRepo: params.CatalogRepo,
		logger:      params.Logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// lookupEntry loads the product and resolves the entry for the optional variant.
// An unknown variant resolves to the product itself. When lock is set the rows
// are read from the primary under a shared lock.
func lookupEntry(ctx context.Context, repo repository.CatalogRepository, productID uuid.UUID, variantID *uuid.UUID, lock bool) (*entity.CatalogEntry, error) {
	var (
		product *entity.Product
		err     error
	)
	if lock {
		product, err = repo.LockProductForCheckout(ctx, productID)
	} else {
		product, err = repo.FindProductByID(ctx, productID)
	}
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound.WithDetailsf("product %s", productID)
		}

		return nil, errors.Wrap(err, "failed to load product")
	}

	return entity.ResolveCatalogEntry(product, variantID), nil
}

// Resolve returns the catalog entry of an active product.
func (srv *catalogService) Resolve(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID) (*entity.CatalogEntry, error) {
	entry, err := lookupEntry(ctx, srv.catalogRepo, productID, variantID, false)
	if err != nil {
		return nil, err
	}
	if !entry.Active {
		srv.log(ctx).Debug("Product is inactive", slog.String("productID", productID.String()))

		return nil, domainerrors.ErrProductNotFound.WithDetailsf("product %s is not active", productID)
	}

	return entry, nil
}

// ResolvePrice returns the variant price when the variant exists, else the product price.
func (srv *catalogService) ResolvePrice(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID) (decimal.Decimal, error) {
	entry, err := srv.Resolve(ctx, productID, variantID)
	if err != nil {
		return decimal.Zero, err
	}

	return entry.UnitPrice, nil
}

// ResolveAvailability reports whether quantity units of the product or variant can be ordered.
func (srv *catalogService) ResolveAvailability(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID, quantity int) (bool, error) {
	if !validLineQuantity(quantity) {
		return false, domainerrors.ErrInvalidQuantity
	}

	entry, err := lookupEntry(ctx, srv.catalogRepo, productID, variantID, false)
	if err != nil {
		return false, err
	}

	return entry.IsAvailable(quantity), nil
}
