package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductModel is the GORM-specific struct for the 'products' table.
type ProductModel struct {
	ID            uuid.UUID        `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	Name          string           `gorm:"type:varchar(255);not null"`
	Slug          string           `gorm:"type:varchar(255);not null;uniqueIndex"`
	SKU           string           `gorm:"column:sku;type:varchar(100);not null;uniqueIndex"`
	Price         decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	CompareAt     *decimal.Decimal `gorm:"column:compare_at_price;type:numeric(12,2)"`
	CostPrice     *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Quantity      int              `gorm:"not null;default:0;check:quantity >= 0"`
	TrackQuantity bool             `gorm:"not null;default:true"`
	Active        bool             `gorm:"column:is_active;not null;default:true;index"`
	Weight        decimal.Decimal  `gorm:"type:numeric(10,3);not null;default:0"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	Variants []*ProductVariantModel `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}

// ProductVariantModel is the GORM-specific struct for the 'product_variants' table.
type ProductVariantModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	ProductID  uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name       string            `gorm:"type:varchar(255);not null"`
	SKU        string            `gorm:"column:sku;type:varchar(100);not null;uniqueIndex"`
	Price      decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Quantity   int               `gorm:"not null;default:0;check:variant_quantity_non_negative,quantity >= 0"`
	Attributes map[string]string `gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProductVariantModel) TableName() string {
	return "product_variants"
}
