package postgres

import (
	"context"

	"commerce/internal/domain/entity"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/domain/repository"
	"commerce/internal/errors"
	"commerce/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// catalogRepository implements the repository.CatalogRepository interface.
type catalogRepository struct {
	db *gorm.DB
}

// NewCatalogRepository is the constructor for catalogRepository.
func NewCatalogRepository(db *gorm.DB) repository.CatalogRepository {
	return &catalogRepository{
		db: db,
	}
}

// FindProductByID retrieves a product and its variants.
func (repo *catalogRepository) FindProductByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var productM model.ProductModel

	if err := repo.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by ID")
	}

	return toProductDomain(&productM), nil
}

// LockProductForCheckout reads the product and its variants from the primary with FOR SHARE.
func (repo *catalogRepository) LockProductForCheckout(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	var productM model.ProductModel
	if err := db.
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("id = ?", id).
		First(&productM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to lock product")
	}

	var variantModels []*model.ProductVariantModel
	if err := db.
		Clauses(clause.Locking{Strength: "SHARE"}).
		Where("product_id = ?", id).
		Order("created_at ASC").
		Find(&variantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to lock product variants")
	}
	productM.Variants = variantModels

	return toProductDomain(&productM), nil
}

// SaveProduct upserts the product and its variants by SKU.
func (repo *catalogRepository) SaveProduct(ctx context.Context, product *entity.Product) error {
	productM := fromProductDomain(product)
	variants := productM.Variants
	productM.Variants = nil

	db := repo.db.WithContext(ctx)

	if err := db.
		Omit(clause.Associations).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "sku"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"name", "slug", "price", "compare_at_price", "cost_price",
				"quantity", "track_quantity", "is_active", "weight", "updated_at",
			}),
		}).
		Create(productM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetailsf("slug %q is already used by another product", product.Slug)
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("product quantity must not be negative")
		}

		return domainerrors.NewStorageError(err, "save product")
	}

	product.ID = productM.ID
	product.CreatedAt = productM.CreatedAt
	product.UpdatedAt = productM.UpdatedAt

	for i, variantM := range variants {
		variantM.ProductID = productM.ID
		if err := db.
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "sku"}},
				DoUpdates: clause.AssignmentColumns([]string{"product_id", "name", "price", "quantity", "attributes", "updated_at"}),
			}).
			Create(variantM).Error; err != nil {
			return domainerrors.NewStorageError(err, "save product variant "+variantM.SKU)
		}

		product.Variants[i].ID = variantM.ID
		product.Variants[i].ProductID = productM.ID
	}

	return nil
}

// toProductDomain converts a GORM ProductModel (with variants) to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	product := &entity.Product{
		ID:            data.ID,
		Name:          data.Name,
		Slug:          data.Slug,
		SKU:           data.SKU,
		Price:         data.Price,
		CompareAt:     data.CompareAt,
		CostPrice:     data.CostPrice,
		Quantity:      data.Quantity,
		TrackQuantity: data.TrackQuantity,
		Active:        data.Active,
		Weight:        data.Weight,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}

	product.Variants = make([]*entity.ProductVariant, 0, len(data.Variants))
	for _, variantM := range data.Variants {
		product.Variants = append(product.Variants, &entity.ProductVariant{
			ID:         variantM.ID,
			ProductID:  variantM.ProductID,
			Name:       variantM.Name,
			SKU:        variantM.SKU,
			Price:      variantM.Price,
			Quantity:   variantM.Quantity,
			Attributes: entity.Attributes(variantM.Attributes),
			CreatedAt:  variantM.CreatedAt,
			UpdatedAt:  variantM.UpdatedAt,
		})
	}

	return product
}

// fromProductDomain converts a domain Product entity to a GORM ProductModel.
func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	productM := &model.ProductModel{
		ID:            data.ID,
		Name:          data.Name,
		Slug:          data.Slug,
		SKU:           data.SKU,
		Price:         data.Price,
		CompareAt:     data.CompareAt,
		CostPrice:     data.CostPrice,
		Quantity:      data.Quantity,
		TrackQuantity: data.TrackQuantity,
		Active:        data.Active,
		Weight:        data.Weight,
	}

	for _, v := range data.Variants {
		productM.Variants = append(productM.Variants, &model.ProductVariantModel{
			ID:         v.ID,
			ProductID:  data.ID,
			Name:       v.Name,
			SKU:        v.SKU,
			Price:      v.Price,
			Quantity:   v.Quantity,
			Attributes: map[string]string(v.Attributes),
		})
	}

	return productM
}
