package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineModel is the GORM-specific struct for the 'cart_lines' table.
// VariantID is uuid.Nil for lines without a variant so that the unique index
// over (owner, product, variant) also covers them.
type CartLineModel struct {
	ID         uuid.UUID         `gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	OwnerKind  string            `gorm:"type:varchar(20);not null;uniqueIndex:idx_cart_lines_item,priority:1"`
	OwnerID    string            `gorm:"type:varchar(255);not null;uniqueIndex:idx_cart_lines_item,priority:2"`
	ProductID  uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_item,priority:3"`
	VariantID  uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_cart_lines_item,priority:4"`
	Quantity   int               `gorm:"not null;check:cart_line_quantity_range,quantity BETWEEN 1 AND 10000"`
	Price      decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Attributes map[string]string `gorm:"type:jsonb;serializer:json"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CartLineModel) TableName() string {
	return "cart_lines"
}
