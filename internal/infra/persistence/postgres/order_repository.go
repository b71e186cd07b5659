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

// orderRepository implements the repository.OrderRepository interface.
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{
		db: db,
	}
}

func preloadItems(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// CreateOrder inserts the order header and its items in one statement batch.
func (repo *orderRepository) CreateOrder(ctx context.Context, order *entity.Order) error {
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrOrderNumberTaken
		}
		if isQuantityRejected(err) {
			return domainerrors.ErrInvalidQuantity
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WithDetails("missing required order information")
		}

		return domainerrors.NewStorageError(err, "create order")
	}

	order.ID = orderM.ID
	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt
	for i, itemM := range orderM.Items {
		order.Items[i].ID = itemM.ID
		order.Items[i].OrderID = orderM.ID
		order.Items[i].CreatedAt = itemM.CreatedAt
	}

	return nil
}

// FindOrderByID retrieves an order with its items.
func (repo *orderRepository) FindOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// LockOrderByID retrieves an order from the primary with FOR UPDATE on the header row.
func (repo *orderRepository) LockOrderByID(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	db := repo.db.WithContext(ctx).Clauses(dbresolver.Write)

	var orderM model.OrderModel
	if err := db.
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to lock order")
	}

	if err := db.
		Where("order_id = ?", id).
		Order("position ASC").
		Find(&orderM.Items).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order items")
	}

	return toOrderDomain(&orderM), nil
}

// FindOrdersByCustomer lists a customer's orders, newest first.
func (repo *orderRepository) FindOrdersByCustomer(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Order, int64, error) {
	var total int64
	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("customer_id = ?", customerID).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count customer orders")
	}

	var orderModels []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Preload("Items", preloadItems).
		Where("customer_id = ?", customerID).
		Order("placed_at DESC, id DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to find customer orders")
	}

	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders, total, nil
}

// UpdateOrderStatus persists the lifecycle columns of an order.
func (repo *orderRepository) UpdateOrderStatus(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"status":          order.Status.String(),
			"payment_status":  order.PaymentStatus.String(),
			"tracking_number": order.TrackingNumber,
			"shipped_at":      order.ShippedAt,
			"delivered_at":    order.DeliveredAt,
			"cancelled_at":    order.CancelledAt,
			"updated_at":      order.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// UpdateOrderAmounts persists the adjustable amounts and the derived total.
func (repo *orderRepository) UpdateOrderAmounts(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("id = ?", order.ID).
		Updates(map[string]any{
			"subtotal":        order.Subtotal,
			"tax_amount":      order.TaxAmount,
			"shipping_amount": order.ShippingAmount,
			"discount_amount": order.DiscountAmount,
			"total":           order.Total,
			"updated_at":      order.UpdatedAt,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update order amounts")
	}

	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

// toOrderDomain converts a GORM OrderModel (with items) to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:             data.ID,
		OrderNumber:    data.OrderNumber,
		CustomerID:     data.CustomerID,
		Status:         entity.OrderStatus(data.Status),
		PaymentStatus:  entity.PaymentStatus(data.PaymentStatus),
		PaymentMethod:  data.PaymentMethod,
		ShippingMethod: data.ShippingMethod,
		Subtotal:       data.Subtotal,
		TaxAmount:      data.TaxAmount,
		ShippingAmount: data.ShippingAmount,
		DiscountAmount: data.DiscountAmount,
		Total:          data.Total,
		Currency:       data.Currency,
		Notes:          data.Notes,
		TrackingNumber: data.TrackingNumber,
		PlacedAt:       data.PlacedAt,
		ShippedAt:      data.ShippedAt,
		DeliveredAt:    data.DeliveredAt,
		CancelledAt:    data.CancelledAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	order.Items = make([]*entity.OrderItem, 0, len(data.Items))
	for _, itemM := range data.Items {
		order.Items = append(order.Items, &entity.OrderItem{
			ID:          itemM.ID,
			OrderID:     itemM.OrderID,
			ProductID:   itemM.ProductID,
			VariantID:   itemM.VariantID,
			Quantity:    itemM.Quantity,
			Price:       itemM.Price,
			Total:       itemM.Total,
			ProductName: itemM.ProductName,
			VariantName: itemM.VariantName,
			SKU:         itemM.SKU,
			Weight:      itemM.Weight,
			Attributes:  entity.Attributes(itemM.Attributes),
			CreatedAt:   itemM.CreatedAt,
		})
	}

	return order
}

// fromOrderDomain converts a domain Order entity to a GORM OrderModel.
func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:             data.ID,
		OrderNumber:    data.OrderNumber,
		CustomerID:     data.CustomerID,
		Status:         data.Status.String(),
		PaymentStatus:  data.PaymentStatus.String(),
		PaymentMethod:  data.PaymentMethod,
		ShippingMethod: data.ShippingMethod,
		Subtotal:       data.Subtotal,
		TaxAmount:      data.TaxAmount,
		ShippingAmount: data.ShippingAmount,
		DiscountAmount: data.DiscountAmount,
		Total:          data.Total,
		Currency:       data.Currency,
		Notes:          data.Notes,
		TrackingNumber: data.TrackingNumber,
		PlacedAt:       data.PlacedAt,
		ShippedAt:      data.ShippedAt,
		DeliveredAt:    data.DeliveredAt,
		CancelledAt:    data.CancelledAt,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	for i, item := range data.Items {
		orderM.Items = append(orderM.Items, &model.OrderItemModel{
			ID:          item.ID,
			OrderID:     data.ID,
			Position:    i,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			Quantity:    item.Quantity,
			Price:       item.Price,
			Total:       item.Total,
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			SKU:         item.SKU,
			Weight:      item.Weight,
			Attributes:  map[string]string(item.Attributes),
			CreatedAt:   item.CreatedAt,
		})
	}

	return orderM
}
