package handler

import (
	"time"

	"commerce/internal/domain/entity"
	"commerce/internal/domain/pricing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartLineResponse is a cart line with its derived total.
type CartLineResponse struct {
	ID         uuid.UUID         `json:"id"`
	ProductID  uuid.UUID         `json:"product_id"`
	VariantID  *uuid.UUID        `json:"variant_id,omitempty"`
	Quantity   int               `json:"quantity"`
	Price      string            `json:"price"`
	LineTotal  string            `json:"line_total"`
	Available  *bool             `json:"available,omitempty"`
	Attributes entity.Attributes `json:"attributes,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at"`
}

// CartResponse is the full cart of one owner.
type CartResponse struct {
	Owner     string              `json:"owner"`
	Lines     []*CartLineResponse `json:"lines"`
	ItemCount int                 `json:"item_count"`
	Subtotal  string              `json:"subtotal"`
}

// AddCartItemResponse reports whether the item was merged into an existing line.
type AddCartItemResponse struct {
	Line   *CartLineResponse `json:"line"`
	Merged bool              `json:"merged"`
}

// MergeCartResponse summarizes a guest cart merge.
type MergeCartResponse struct {
	MovedLines  int           `json:"moved_lines"`
	MergedLines int           `json:"merged_lines"`
	Cart        *CartResponse `json:"cart"`
}

// OrderItemResponse is the immutable snapshot of a purchased line.
type OrderItemResponse struct {
	ID          uuid.UUID         `json:"id"`
	ProductID   uuid.UUID         `json:"product_id"`
	VariantID   *uuid.UUID        `json:"variant_id,omitempty"`
	ProductName string            `json:"product_name"`
	VariantName string            `json:"variant_name,omitempty"`
	SKU         string            `json:"sku"`
	Quantity    int               `json:"quantity"`
	Price       string            `json:"price"`
	Total       string            `json:"total"`
	Attributes  entity.Attributes `json:"attributes,omitempty"`
}

// OrderResponse is a placed order.
type OrderResponse struct {
	ID             uuid.UUID            `json:"id"`
	OrderNumber    string               `json:"order_number"`
	CustomerID     uuid.UUID            `json:"customer_id"`
	Status         entity.OrderStatus   `json:"status"`
	PaymentStatus  entity.PaymentStatus `json:"payment_status"`
	PaymentMethod  string               `json:"payment_method,omitempty"`
	ShippingMethod string               `json:"shipping_method,omitempty"`
	Subtotal       string               `json:"subtotal"`
	TaxAmount      string               `json:"tax_amount"`
	ShippingAmount string               `json:"shipping_amount"`
	DiscountAmount string               `json:"discount_amount"`
	Total          string               `json:"total"`
	Currency       string               `json:"currency"`
	Notes          string               `json:"notes,omitempty"`
	TrackingNumber string               `json:"tracking_number,omitempty"`
	Items          []*OrderItemResponse `json:"items"`
	PlacedAt       time.Time            `json:"placed_at"`
	ShippedAt      *time.Time           `json:"shipped_at,omitempty"`
	DeliveredAt    *time.Time           `json:"delivered_at,omitempty"`
	CancelledAt    *time.Time           `json:"cancelled_at,omitempty"`
	UpdatedAt      time.Time            `json:"updated_at"`
}

// PriceResponse is the current unit price of a product or variant.
type PriceResponse struct {
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Price     string     `json:"price"`
}

// AvailabilityResponse answers whether a quantity can be ordered now.
type AvailabilityResponse struct {
	ProductID uuid.UUID  `json:"product_id"`
	VariantID *uuid.UUID `json:"variant_id,omitempty"`
	Quantity  int        `json:"quantity"`
	Available bool       `json:"available"`
}

func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(pricing.MoneyScale)
}

func newCartLineResponse(line *entity.CartLine) *CartLineResponse {
	return &CartLineResponse{
		ID:         line.ID,
		ProductID:  line.ProductID,
		VariantID:  line.VariantID,
		Quantity:   line.Quantity,
		Price:      formatMoney(line.Price),
		LineTotal:  formatMoney(line.LineTotal()),
		Attributes: line.Attributes,
		CreatedAt:  line.CreatedAt,
		UpdatedAt:  line.UpdatedAt,
	}
}

func newCartResponse(cart *entity.Cart) *CartResponse {
	resp := &CartResponse{
		Owner:     cart.Owner.String(),
		Lines:     make([]*CartLineResponse, 0, len(cart.Lines)),
		ItemCount: cart.ItemCount(),
		Subtotal:  formatMoney(cart.Subtotal()),
	}
	for _, view := range cart.Lines {
		line := newCartLineResponse(view.CartLine)
		line.LineTotal = formatMoney(view.Total)
		available := view.Available
		line.Available = &available
		resp.Lines = append(resp.Lines, line)
	}

	return resp
}

func newOrderResponse(order *entity.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:             order.ID,
		OrderNumber:    order.OrderNumber,
		CustomerID:     order.CustomerID,
		Status:         order.Status,
		PaymentStatus:  order.PaymentStatus,
		PaymentMethod:  order.PaymentMethod,
		ShippingMethod: order.ShippingMethod,
		Subtotal:       formatMoney(order.Subtotal),
		TaxAmount:      formatMoney(order.TaxAmount),
		ShippingAmount: formatMoney(order.ShippingAmount),
		DiscountAmount: formatMoney(order.DiscountAmount),
		Total:          formatMoney(order.Total),
		Currency:       order.Currency,
		Notes:          order.Notes,
		TrackingNumber: order.TrackingNumber,
		Items:          make([]*OrderItemResponse, 0, len(order.Items)),
		PlacedAt:       order.PlacedAt,
		ShippedAt:      order.ShippedAt,
		DeliveredAt:    order.DeliveredAt,
		CancelledAt:    order.CancelledAt,
		UpdatedAt:      order.UpdatedAt,
	}
	for _, item := range order.Items {
		resp.Items = append(resp.Items, &OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			VariantName: item.VariantName,
			SKU:         item.SKU,
			Quantity:    item.Quantity,
			Price:       formatMoney(item.Price),
			Total:       formatMoney(item.Total),
			Attributes:  item.Attributes,
		})
	}

	return resp
}
