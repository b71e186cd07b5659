package repository

import (
	"context"

	"commerce/internal/domain/entity"
	"commerce/internal/errors"

	"github.com/google/uuid"
)

// ErrCartLineNotFound is returned when a cart line does not exist.
var ErrCartLineNotFound = errors.New("cart line not found")

// CartRepository persists cart lines keyed by (owner, product, variant).
type CartRepository interface {
	// UpsertLine inserts the line, or, when a line for the same owner, product and
	// variant already exists, atomically adds line.Quantity to it. The stored line is
	// returned; its ID differs from line.ID when a merge happened.
	UpsertLine(ctx context.Context, line *entity.CartLine) (*entity.CartLine, error)

	// FindLineByID retrieves a line by its ID.
	FindLineByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error)

	// FindLinesByOwner retrieves all lines of an owner, oldest first.
	FindLinesByOwner(ctx context.Context, owner entity.CartOwner) ([]*entity.CartLine, error)

	// UpdateLineQuantity sets the quantity of a line.
	UpdateLineQuantity(ctx context.Context, id uuid.UUID, quantity int) error

	// DeleteLine removes a single line.
	DeleteLine(ctx context.Context, id uuid.UUID) error

	// DeleteLines removes the given lines of an owner and returns how many were deleted.
	DeleteLines(ctx context.Context, owner entity.CartOwner, ids []uuid.UUID) (int64, error)

	// DeleteLinesByOwner removes every line of an owner.
	DeleteLinesByOwner(ctx context.Context, owner entity.CartOwner) (int64, error)
}
