package postgres

import (
	"context"
	"time"

	"commerce/internal/domain/entity"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/domain/repository"
	"commerce/internal/errors"
	"commerce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// cartRepository implements the repository.CartRepository interface.
type cartRepository struct {
	db *gorm.DB
}

// NewCartRepository is the constructor for cartRepository.
func NewCartRepository(db *gorm.DB) repository.CartRepository {
	return &cartRepository{
		db: db,
	}
}

// UpsertLine inserts a line or adds its quantity to the existing line of the same item
// in a single INSERT ... ON CONFLICT statement. The existing line keeps its price snapshot.
func (repo *cartRepository) UpsertLine(ctx context.Context, line *entity.CartLine) (*entity.CartLine, error) {
	lineM := fromCartLineDomain(line)

	if err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns: []clause.Column{
					{Name: "owner_kind"},
					{Name: "owner_id"},
					{Name: "product_id"},
					{Name: "variant_id"},
				},
				DoUpdates: clause.Assignments(map[string]any{
					"quantity":   gorm.Expr("cart_lines.quantity + EXCLUDED.quantity"),
					"updated_at": gorm.Expr("EXCLUDED.updated_at"),
				}),
			},
			clause.Returning{},
		).
		Create(lineM).Error; err != nil {
		if isQuantityRejected(err) {
			return nil, domainerrors.ErrInvalidQuantity
		}

		return nil, domainerrors.NewStorageError(err, "upsert cart line")
	}

	return toCartLineDomain(lineM), nil
}

// FindLineByID retrieves a cart line by its ID.
func (repo *cartRepository) FindLineByID(ctx context.Context, id uuid.UUID) (*entity.CartLine, error) {
	var lineM model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&lineM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCartLineNotFound
		}

		return nil, errors.Wrap(err, "failed to find cart line by ID")
	}

	return toCartLineDomain(&lineM), nil
}

// FindLinesByOwner retrieves all lines of an owner in insertion order.
func (repo *cartRepository) FindLinesByOwner(ctx context.Context, owner entity.CartOwner) ([]*entity.CartLine, error) {
	var lineModels []*model.CartLineModel

	if err := repo.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ?", owner.Kind.String(), owner.ID).
		Order("created_at ASC, id ASC").
		Find(&lineModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to find cart lines by owner")
	}

	lines := make([]*entity.CartLine, 0, len(lineModels))
	for _, lineM := range lineModels {
		lines = append(lines, toCartLineDomain(lineM))
	}

	return lines, nil
}

// UpdateLineQuantity sets the quantity of a cart line.
func (repo *cartRepository) UpdateLineQuantity(ctx context.Context, id uuid.UUID, quantity int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CartLineModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"quantity":   quantity,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		if isQuantityRejected(result.Error) {
			return domainerrors.ErrInvalidQuantity
		}

		return errors.Wrap(result.Error, "failed to update cart line quantity")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLine removes a cart line by its ID.
func (repo *cartRepository) DeleteLine(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&model.CartLineModel{})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete cart line")
	}

	if result.RowsAffected == 0 {
		return repository.ErrCartLineNotFound
	}

	return nil
}

// DeleteLines removes the given lines of an owner.
func (repo *cartRepository) DeleteLines(ctx context.Context, owner entity.CartOwner, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ? AND id IN ?", owner.Kind.String(), owner.ID, ids).
		Delete(&model.CartLineModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to delete cart lines")
	}

	return result.RowsAffected, nil
}

// DeleteLinesByOwner removes every line of an owner.
func (repo *cartRepository) DeleteLinesByOwner(ctx context.Context, owner entity.CartOwner) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("owner_kind = ? AND owner_id = ?", owner.Kind.String(), owner.ID).
		Delete(&model.CartLineModel{})

	if result.Error != nil {
		return 0, errors.Wrap(result.Error, "failed to clear cart")
	}

	return result.RowsAffected, nil
}

// toCartLineDomain converts a GORM CartLineModel to a domain CartLine entity.
func toCartLineDomain(data *model.CartLineModel) *entity.CartLine {
	if data == nil {
		return nil
	}

	line := &entity.CartLine{
		ID: data.ID,
		Owner: entity.CartOwner{
			Kind: entity.OwnerKind(data.OwnerKind),
			ID:   data.OwnerID,
		},
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		Price:      data.Price,
		Attributes: entity.Attributes(data.Attributes),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.VariantID != uuid.Nil {
		variantID := data.VariantID
		line.VariantID = &variantID
	}

	return line
}

// fromCartLineDomain converts a domain CartLine entity to a GORM CartLineModel.
func fromCartLineDomain(data *entity.CartLine) *model.CartLineModel {
	if data == nil {
		return nil
	}

	lineM := &model.CartLineModel{
		ID:         data.ID,
		OwnerKind:  data.Owner.Kind.String(),
		OwnerID:    data.Owner.ID,
		ProductID:  data.ProductID,
		Quantity:   data.Quantity,
		Price:      data.Price,
		Attributes: map[string]string(data.Attributes),
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
	if data.VariantID != nil {
		lineM.VariantID = *data.VariantID
	}

	return lineM
}
