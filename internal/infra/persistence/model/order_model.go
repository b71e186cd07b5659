package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel is the GORM-specific struct for the 'orders' table.
type OrderModel struct {
	ID             uuid.UUID       `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderNumber    string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	CustomerID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_customer_placed,priority:1"`
	Status         string          `gorm:"type:varchar(20);not null;default:'pending';index"`
	PaymentStatus  string          `gorm:"type:varchar(20);not null;default:'pending'"`
	PaymentMethod  string          `gorm:"type:varchar(50)"`
	ShippingMethod string          `gorm:"type:varchar(50)"`
	Subtotal       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	ShippingAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(12,2);not null;default:0"`
	Total          decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency       string          `gorm:"type:char(3);not null"`
	Notes          string          `gorm:"type:text"`
	TrackingNumber string          `gorm:"type:varchar(100)"`
	PlacedAt       time.Time       `gorm:"not null;index:idx_orders_customer_placed,priority:2,sort:desc"`
	ShippedAt      *time.Time
	DeliveredAt    *time.Time
	CancelledAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Items []*OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel is the GORM-specific struct for the 'order_items' table.
// Name, SKU, price and attributes are snapshots taken when the order was placed.
type OrderItemModel struct {
	ID          uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OrderID     uuid.UUID         `gorm:"type:uuid;not null;index"`
	Position    int               `gorm:"not null;default:0"`
	ProductID   uuid.UUID         `gorm:"type:uuid;not null;index"`
	VariantID   *uuid.UUID        `gorm:"type:uuid"`
	Quantity    int               `gorm:"not null;check:order_item_quantity_range,quantity BETWEEN 1 AND 10000"`
	Price       decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Total       decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	ProductName string            `gorm:"type:varchar(255);not null"`
	VariantName string            `gorm:"type:varchar(255)"`
	SKU         string            `gorm:"column:sku;type:varchar(100);not null"`
	Weight      decimal.Decimal   `gorm:"type:numeric(10,3);not null;default:0"`
	Attributes  map[string]string `gorm:"type:jsonb;serializer:json"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// AllModels lists every table managed by the migration command, parents first.
func AllModels() []any {
	return []any{
		&ProductModel{},
		&ProductVariantModel{},
		&CartLineModel{},
		&OrderModel{},
		&OrderItemModel{},
	}
}
