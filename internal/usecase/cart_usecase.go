package usecase

import (
	"context"

	"commerce/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AddCartItemInput defines the data required to add an item to a cart.
type AddCartItemInput struct {
	Owner     entity.CartOwner
	ProductID uuid.UUID
	VariantID *uuid.UUID
	Quantity  int
	// Price overrides the catalog price snapshot when set.
	Price *decimal.Decimal
}

// AddCartItemOutput returns the stored line and whether it was merged into an existing one.
type AddCartItemOutput struct {
	Line   *entity.CartLine
	Merged bool
}

// MergeCartOutput summarizes a guest cart merge.
type MergeCartOutput struct {
	MovedLines  int
	MergedLines int
	Cart        *entity.Cart
}

// CartUsecase defines the interface for cart line operations
type CartUsecase interface {
	// AddItem creates a line or adds to the quantity of the existing line for the same item.
	AddItem(ctx context.Context, input *AddCartItemInput) (*AddCartItemOutput, error)

	// UpdateQuantity sets the quantity of a line owned by owner.
	UpdateQuantity(ctx context.Context, owner entity.CartOwner, lineID uuid.UUID, quantity int) (*entity.CartLine, error)

	// RemoveItem deletes a line owned by owner.
	RemoveItem(ctx context.Context, owner entity.CartOwner, lineID uuid.UUID) error

	// ClearCart deletes every line of owner.
	ClearCart(ctx context.Context, owner entity.CartOwner) error

	// GetCart returns the owner's lines with totals and current availability.
	GetCart(ctx context.Context, owner entity.CartOwner) (*entity.Cart, error)

	// IsAvailable reports whether the line can be fulfilled at its current quantity.
	IsAvailable(ctx context.Context, line *entity.CartLine) (bool, error)

	// MergeGuestCart moves the lines of a guest session into the user's cart.
	MergeGuestCart(ctx context.Context, sessionToken string, userID uuid.UUID) (*MergeCartOutput, error)
}
