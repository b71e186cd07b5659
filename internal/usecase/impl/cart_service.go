package impl

import (
	"context"
	"log/slog"
	"time"

	"commerce/config"
	deliverycontext "commerce/internal/delivery/context"
	"commerce/internal/domain/entity"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/domain/pricing"
	"commerce/internal/domain/repository"
	"commerce/internal/domain/service"
	"commerce/internal/errors"
	"commerce/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// cartService implements the CartUsecase interface.
type cartService struct {
	txManager   repository.TransactionManager
	cartRepo    repository.CartRepository
	catalogRepo repository.CatalogRepository
	metrics     service.CommerceMetrics
	retrier     *txRetrier
	logger      *slog.Logger
	now         func() time.Time
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	CartRepo    repository.CartRepository
	CatalogRepo repository.CatalogRepository
	Metrics     service.CommerceMetrics
	Config      *config.Config
	Logger      *slog.Logger
}

// NewCartService creates a new cart service instance
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	return &cartService{
		txManager:   params.TxManager,
		cartRepo:    params.CartRepo,
		catalogRepo: params.CatalogRepo,
		metrics:     params.Metrics,
		retrier:     newTxRetrier(params.Config, params.Metrics, params.Logger),
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *cartService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// AddItem snapshots the catalog price and merges into the existing line of the same item.
func (srv *cartService) AddItem(ctx context.Context, input *usecase.AddCartItemInput) (*usecase.AddCartItemOutput, error) {
	if !input.Owner.IsValid() {
		return nil, domainerrors.ErrInvalidOwner
	}
	if !validLineQuantity(input.Quantity) {
		return nil, domainerrors.ErrInvalidQuantity.WithDetailsf("got %d", input.Quantity)
	}
	if input.Price != nil && input.Price.IsNegative() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("price must not be negative")
	}

	entry, err := lookupEntry(ctx, srv.catalogRepo, input.ProductID, input.VariantID, false)
	if err != nil {
		return nil, err
	}
	if !entry.Active {
		return nil, domainerrors.ErrProductNotFound.WithDetailsf("product %s is not active", input.ProductID)
	}

	price := entry.UnitPrice
	if input.Price != nil {
		price = *input.Price
	}

	now := srv.now()
	line := &entity.CartLine{
		ID:         uuid.New(),
		Owner:      input.Owner,
		ProductID:  entry.ProductID,
		VariantID:  entry.VariantID,
		Quantity:   input.Quantity,
		Price:      pricing.RoundMoney(price),
		Attributes: entry.Attributes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	var stored *entity.CartLine
	err = srv.retrier.Do(ctx, "cart_add_item", nil, func() error {
		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			var err error
			stored, err = repoFactory.CartRepo().UpsertLine(ctx, line)

			return err
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to add cart item",
			slog.String("owner", input.Owner.String()),
			slog.String("productID", input.ProductID.String()),
			slog.Any("error", err),
		)

		return nil, errors.Wrap(err, "failed to add cart item")
	}

	merged := stored.ID != line.ID
	srv.metrics.CartItemAdded(merged)
	srv.log(ctx).Debug("Cart item added",
		slog.String("owner", input.Owner.String()),
		slog.String("lineID", stored.ID.String()),
		slog.Int("quantity", stored.Quantity),
		slog.Bool("merged", merged),
	)

	return &usecase.AddCartItemOutput{Line: stored, Merged: merged}, nil
}

// UpdateQuantity sets the quantity of a line the owner holds.
func (srv *cartService) UpdateQuantity(ctx context.Context, owner entity.CartOwner, lineID uuid.UUID, quantity int) (*entity.CartLine, error) {
	if !owner.IsValid() {
		return nil, domainerrors.ErrInvalidOwner
	}
	if !validLineQuantity(quantity) {
		return nil, domainerrors.ErrInvalidQuantity.WithDetailsf("got %d", quantity)
	}

	var updated *entity.CartLine
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		line, err := findOwnedLine(ctx, cartRepo, owner, lineID)
		if err != nil {
			return err
		}

		if err := cartRepo.UpdateLineQuantity(ctx, line.ID, quantity); err != nil {
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrCartLineNotFound
			}

			return errors.Wrap(err, "failed to update cart line quantity")
		}

		line.Quantity = quantity
		line.UpdatedAt = srv.now()
		updated = line

		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}

// RemoveItem deletes a line the owner holds.
func (srv *cartService) RemoveItem(ctx context.Context, owner entity.CartOwner, lineID uuid.UUID) error {
	if !owner.IsValid() {
		return domainerrors.ErrInvalidOwner
	}

	return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		cartRepo := repoFactory.CartRepo()

		line, err := findOwnedLine(ctx, cartRepo, owner, lineID)
		if err != nil {
			return err
		}

		if err := cartRepo.DeleteLine(ctx, line.ID); err != nil {
			if errors.Is(err, repository.ErrCartLineNotFound) {
				return domainerrors.ErrCartLineNotFound
			}

			return errors.Wrap(err, "failed to delete cart line")
		}

		return nil
	})
}

// ClearCart deletes every line of the owner. Clearing an empty cart is not an error.
func (srv *cartService) ClearCart(ctx context.Context, owner entity.CartOwner) error {
	if !owner.IsValid() {
		return domainerrors.ErrInvalidOwner
	}

	deleted, err := srv.cartRepo.DeleteLinesByOwner(ctx, owner)
	if err != nil {
		return errors.Wrap(err, "failed to clear cart")
	}

	srv.log(ctx).Debug("Cart cleared", slog.String("owner", owner.String()), slog.Int64("deleted", deleted))

	return nil
}

// GetCart returns the owner's lines with line totals and availability.
func (srv *cartService) GetCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error) {
	if !owner.IsValid() {
		return nil, domainerrors.ErrInvalidOwner
	}

	lines, err := srv.cartRepo.FindLinesByOwner(ctx, owner)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load cart lines")
	}

	cart := &entity.Cart{
		Owner: owner,
		Lines: make([]*entity.CartLineView, 0, len(lines)),
	}
	for _, line := range lines {
		available, err := srv.IsAvailable(ctx, line)
		if err != nil {
			return nil, err
		}

		cart.Lines = append(cart.Lines, &entity.CartLineView{
			CartLine:  line,
			Total:     line.LineTotal(),
			Available: available,
		})
	}

	return cart, nil
}

// IsAvailable checks the line against current stock. Lines of removed or
// deactivated products are unavailable.
func (srv *cartService) IsAvailable(ctx context.Context, line *entity.CartLine) (bool, error) {
	entry, err := lookupEntry(ctx, srv.catalogRepo, line.ProductID, line.VariantID, false)
	if err != nil {
		if errors.Is(err, domainerrors.ErrProductNotFound) {
			return false, nil
		}

		return false, err
	}

	return entry.IsAvailable(line.Quantity), nil
}

// MergeGuestCart moves every line of the guest session into the user's cart in one
// transaction. Lines for items the user already has are merged by adding quantities.
func (srv *cartService) MergeGuestCart(ctx context.Context, sessionToken string, userID uuid.UUID) (*usecase.MergeCartOutput, error) {
	guest := entity.SessionOwner(sessionToken)
	if !guest.IsValid() || userID == uuid.Nil {
		return nil, domainerrors.ErrInvalidOwner
	}
	user := entity.UserOwner(userID)

	var moved, merged int
	err := srv.retrier.Do(ctx, "cart_merge", nil, func() error {
		moved, merged = 0, 0

		return srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			cartRepo := repoFactory.CartRepo()

			guestLines, err := cartRepo.FindLinesByOwner(ctx, guest)
			if err != nil {
				return errors.Wrap(err, "failed to load guest cart")
			}

			for _, guestLine := range guestLines {
				line := *guestLine
				line.ID = uuid.New()
				line.Owner = user
				line.UpdatedAt = srv.now()

				stored, err := cartRepo.UpsertLine(ctx, &line)
				if err != nil {
					return errors.Wrap(err, "failed to move guest cart line")
				}
				if stored.ID != line.ID {
					merged++
				} else {
					moved++
				}
			}

			if _, err := cartRepo.DeleteLinesByOwner(ctx, guest); err != nil {
				return errors.Wrap(err, "failed to delete guest cart")
			}

			return nil
		})
	})
	if err != nil {
		srv.log(ctx).Error("Failed to merge guest cart", slog.String("userID", userID.String()), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to merge guest cart")
	}

	srv.log(ctx).Info("Guest cart merged",
		slog.String("userID", userID.String()),
		slog.Int("moved", moved),
		slog.Int("merged", merged),
	)

	cart, err := srv.GetCart(ctx, user)
	if err != nil {
		return nil, err
	}

	return &usecase.MergeCartOutput{MovedLines: moved, MergedLines: merged, Cart: cart}, nil
}

// findOwnedLine loads a line and hides lines of other owners behind not found.
func findOwnedLine(ctx context.Context, cartRepo repository.CartRepository, owner entity.CartOwner, lineID uuid.UUID) (*entity.CartLine, error) {
	line, err := cartRepo.FindLineByID(ctx, lineID)
	if err != nil {
		if errors.Is(err, repository.ErrCartLineNotFound) {
			return nil, domainerrors.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line")
	}
	if line.Owner != owner {
		return nil, domainerrors.ErrCartLineNotFound
	}

	return line, nil
}
