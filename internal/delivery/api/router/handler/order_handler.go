package handler

import (
	"log/slog"
	"net/http"

	"commerce/internal/delivery/api/middleware"
	"commerce/internal/delivery/api/response"
	"commerce/internal/domain/entity"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// OrderHandlerParams holds dependencies for OrderHandler, injected by Fx.
type OrderHandlerParams struct {
	fx.In

	OrderUC usecase.OrderUsecase
	Logger  *slog.Logger
}

// OrderHandler serves checkout, customer order history and order administration.
type OrderHandler struct {
	orderUC usecase.OrderUsecase
	logger  *slog.Logger
}

// NewOrderHandler is the constructor for OrderHandler
func NewOrderHandler(params OrderHandlerParams) *OrderHandler {
	return &OrderHandler{
		orderUC: params.OrderUC,
		logger:  params.Logger,
	}
}

// AmountsRequest carries the adjustable order amounts.
type AmountsRequest struct {
	TaxAmount      decimal.Decimal `json:"tax_amount" validate:"gte=0"`
	ShippingAmount decimal.Decimal `json:"shipping_amount" validate:"gte=0"`
	DiscountAmount decimal.Decimal `json:"discount_amount" validate:"gte=0"`
}

// CheckoutRequest represents the request body for checking out the cart
type CheckoutRequest struct {
	AmountsRequest
	ShippingMethod string `json:"shipping_method" validate:"max=50"`
	PaymentMethod  string `json:"payment_method" validate:"max=50"`
	Currency       string `json:"currency" validate:"omitempty,len=3,alpha"`
	Notes          string `json:"notes" validate:"max=1000"`
}

// OrderLineRequest is one line of a directly placed order.
type OrderLineRequest struct {
	ProductID  uuid.UUID         `json:"product_id" validate:"required"`
	VariantID  *uuid.UUID        `json:"variant_id"`
	Quantity   int               `json:"quantity" validate:"required,gte=1,lte=10000"`
	Price      *decimal.Decimal  `json:"price" validate:"omitempty,gte=0"`
	Attributes map[string]string `json:"attributes"`
}

// PlaceOrderRequest represents the request body for placing an order from explicit lines
type PlaceOrderRequest struct {
	CheckoutRequest
	CustomerID  uuid.UUID           `json:"customer_id" validate:"required"`
	OrderNumber string              `json:"order_number" validate:"max=50"`
	Lines       []*OrderLineRequest `json:"lines" validate:"required,min=1,dive,required"`
}

// UpdateStatusRequest represents the request body for a fulfilment status change
type UpdateStatusRequest struct {
	Status         entity.OrderStatus `json:"status" validate:"required"`
	TrackingNumber string             `json:"tracking_number" validate:"max=100"`
}

// UpdatePaymentStatusRequest represents the request body for a payment status change
type UpdatePaymentStatusRequest struct {
	PaymentStatus entity.PaymentStatus `json:"payment_status" validate:"required"`
}

// AdjustAmountsRequest changes any subset of the adjustable amounts
type AdjustAmountsRequest struct {
	TaxAmount      *decimal.Decimal `json:"tax_amount" validate:"omitempty,gte=0"`
	ShippingAmount *decimal.Decimal `json:"shipping_amount" validate:"omitempty,gte=0"`
	DiscountAmount *decimal.Decimal `json:"discount_amount" validate:"omitempty,gte=0"`
}

func (r *AmountsRequest) toInput() usecase.OrderAmountsInput {
	return usecase.OrderAmountsInput{
		TaxAmount:      r.TaxAmount,
		ShippingAmount: r.ShippingAmount,
		DiscountAmount: r.DiscountAmount,
	}
}

// Checkout turns the signed-in user's cart into an order
func (h *OrderHandler) Checkout(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	order, err := h.orderUC.Checkout(c.Request().Context(), &usecase.CheckoutInput{
		Owner:             entity.UserOwner(userID),
		CustomerID:        userID,
		ShippingMethod:    req.ShippingMethod,
		PaymentMethod:     req.PaymentMethod,
		OrderAmountsInput: req.toInput(),
		Currency:          req.Currency,
		Notes:             req.Notes,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}

// GetOrder returns one order. Customers only see their own orders.
func (h *OrderHandler) GetOrder(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.GetOrder(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	if order.CustomerID != userID && !isAdmin(c) {
		return response.HandleAppError(c, domainerrors.ErrOrderNotFound)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// ListOrders returns the signed-in user's orders, newest first
func (h *OrderHandler) ListOrders(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	limit, err := intQuery(c, "limit", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	out, err := h.orderUC.ListCustomerOrders(c.Request().Context(), userID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	orders := make([]*OrderResponse, 0, len(out.Orders))
	for _, order := range out.Orders {
		orders = append(orders, newOrderResponse(order))
	}

	return response.Page(c, orders, &response.Pagination{Total: out.Total, Limit: out.Limit, Offset: out.Offset})
}

// PlaceOrder places an order from explicit lines on behalf of a customer
func (h *OrderHandler) PlaceOrder(c echo.Context) error {
	var req PlaceOrderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid order input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	input := &usecase.PlaceOrderInput{
		CustomerID:        req.CustomerID,
		Lines:             make([]*usecase.OrderLineInput, 0, len(req.Lines)),
		ShippingMethod:    req.ShippingMethod,
		PaymentMethod:     req.PaymentMethod,
		OrderAmountsInput: req.toInput(),
		OrderNumber:       req.OrderNumber,
		Currency:          req.Currency,
		Notes:             req.Notes,
	}
	for _, line := range req.Lines {
		input.Lines = append(input.Lines, &usecase.OrderLineInput{
			ProductID:  line.ProductID,
			VariantID:  line.VariantID,
			Quantity:   line.Quantity,
			Price:      line.Price,
			Attributes: line.Attributes,
		})
	}

	order, err := h.orderUC.PlaceOrder(c.Request().Context(), input)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newOrderResponse(order))
}

// UpdateStatus applies a fulfilment status transition
func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	order, err := h.orderUC.UpdateOrderStatus(c.Request().Context(), orderID, &usecase.UpdateOrderStatusInput{
		Status:         req.Status,
		TrackingNumber: req.TrackingNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// UpdatePaymentStatus applies a payment status transition
func (h *OrderHandler) UpdatePaymentStatus(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req UpdatePaymentStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment status input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	order, err := h.orderUC.UpdatePaymentStatus(c.Request().Context(), orderID, req.PaymentStatus)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// AdjustAmounts changes tax, shipping or discount and recalculates the total
func (h *OrderHandler) AdjustAmounts(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	var req AdjustAmountsRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid amounts input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	order, err := h.orderUC.AdjustOrderAmounts(c.Request().Context(), orderID, &usecase.AdjustAmountsInput{
		TaxAmount:      req.TaxAmount,
		ShippingAmount: req.ShippingAmount,
		DiscountAmount: req.DiscountAmount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

// RecalculateTotal re-derives the stored total from the current amounts
func (h *OrderHandler) RecalculateTotal(c echo.Context) error {
	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid order ID")
	}

	order, err := h.orderUC.RecalculateTotal(c.Request().Context(), orderID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newOrderResponse(order))
}

func isAdmin(c echo.Context) bool {
	roles, _ := middleware.GetRoles(c)

	return entity.RoleAdmin.GrantedBy(roles)
}
