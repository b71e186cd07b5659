package handler

import (
	"log/slog"
	"net/http"

	"commerce/internal/delivery/api/middleware"
	"commerce/internal/delivery/api/response"
	"commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler serves the cart of the calling user or guest session.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddCartItemRequest represents the request body for adding an item to the cart
type AddCartItemRequest struct {
	ProductID uuid.UUID        `json:"product_id" validate:"required"`
	VariantID *uuid.UUID       `json:"variant_id"`
	Quantity  int              `json:"quantity" validate:"required,gte=1,lte=10000"`
	Price     *decimal.Decimal `json:"price" validate:"omitempty,gte=0"`
}

// UpdateCartItemRequest represents the request body for changing a line quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=1,lte=10000"`
}

// GetCart returns the caller's cart with line totals and availability
func (h *CartHandler) GetCart(c echo.Context) error {
	owner, ok := middleware.ResolveCartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_OWNER", "Sign in or send an X-Session-Token header")
	}

	cart, err := h.cartUC.GetCart(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartResponse(cart))
}

// AddItem adds a product or variant to the caller's cart
func (h *CartHandler) AddItem(c echo.Context) error {
	owner, ok := middleware.ResolveCartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_OWNER", "Sign in or send an X-Session-Token header")
	}

	var req AddCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item input")
	}

	if err := c.Validate(&req); err != nil {
		return validationFailed(c, err)
	}

	out, err := h.cartUC.AddItem(c.Request().Context(), &usecase.AddCartItemInput{
		Owner:     owner,
		ProductID: req.ProductID,
		VariantID: req.VariantID,
		Quantity:  req.Quantity,
		Price:     req.Price,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	status := http.StatusCreated
	if out.Merged {
		status = http.StatusOK
	}

	return response.Success(c, status, &AddCartItemResponse{
		Line:   newCartLineResponse(out.Line),
		Merged: out.Merged,
	})
}

// UpdateItem sets the quantity of one of the caller's lines
func (h *CartHandler) UpdateItem(c echo.Context) error {
	owner, ok := middleware.ResolveCartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_OWNER", "Sign in or send an X-Session-Token header")
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart line ID")
	}

	var req UpdateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	// Quantity 0 is rejected by the usecase with INVALID_QUANTITY; removal is DELETE.
	line, err := h.cartUC.UpdateQuantity(c.Request().Context(), owner, lineID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCartLineResponse(line))
}

// RemoveItem deletes one of the caller's lines
func (h *CartHandler) RemoveItem(c echo.Context) error {
	owner, ok := middleware.ResolveCartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_OWNER", "Sign in or send an X-Session-Token header")
	}

	lineID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart line ID")
	}

	if err := h.cartUC.RemoveItem(c.Request().Context(), owner, lineID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// ClearCart deletes every line of the caller's cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, ok := middleware.ResolveCartOwner(c)
	if !ok {
		return response.BadRequest(c, "INVALID_CART_OWNER", "Sign in or send an X-Session-Token header")
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), owner); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}

// MergeGuestCart moves the guest session cart into the signed-in user's cart
func (h *CartHandler) MergeGuestCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	sessionToken := middleware.GetSessionToken(c)
	if sessionToken == "" {
		return response.BadRequest(c, "INVALID_CART_OWNER", "X-Session-Token header is required")
	}

	out, err := h.cartUC.MergeGuestCart(c.Request().Context(), sessionToken, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &MergeCartResponse{
		MovedLines:  out.MovedLines,
		MergedLines: out.MergedLines,
		Cart:        newCartResponse(out.Cart),
	})
}
