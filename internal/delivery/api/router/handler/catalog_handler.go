package handler

import (
	"net/http"

	"commerce/internal/delivery/api/response"
	"commerce/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CatalogHandlerParams holds dependencies for CatalogHandler, injected by Fx.
type CatalogHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CatalogHandler exposes price and stock lookups.
type CatalogHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCatalogHandler is the constructor for CatalogHandler
func NewCatalogHandler(params CatalogHandlerParams) *CatalogHandler {
	return &CatalogHandler{catalogUC: params.CatalogUC}
}

// GetPrice returns the current unit price of a product or, with ?variant_id=, a variant
func (h *CatalogHandler) GetPrice(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	variantID, err := optionalUUIDQuery(c, "variant_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	price, err := h.catalogUC.ResolvePrice(c.Request().Context(), productID, variantID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &PriceResponse{
		ProductID: productID,
		VariantID: variantID,
		Price:     formatMoney(price),
	})
}

// GetAvailability reports whether ?quantity= units (default 1) can be ordered now
func (h *CatalogHandler) GetAvailability(c echo.Context) error {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	variantID, err := optionalUUIDQuery(c, "variant_id")
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid variant ID")
	}

	quantity, err := intQuery(c, "quantity", 1)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	available, err := h.catalogUC.ResolveAvailability(c.Request().Context(), productID, variantID, quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, &AvailabilityResponse{
		ProductID: productID,
		VariantID: variantID,
		Quantity:  quantity,
		Available: available,
	})
}
