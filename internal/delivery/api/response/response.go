// Package response renders the JSON envelopes of the commerce API.
package response

import (
	"net/http"

	deliverycontext "commerce/internal/delivery/context"
	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/errors"

	"github.com/labstack/echo/v4"
)

type SuccessResponse struct {
	Data any       `json:"data"`
	Meta *MetaInfo `json:"meta"`
}

type ErrorResponse struct {
	Error *ErrorInfo `json:"error"`
	Meta  *MetaInfo  `json:"meta"`
}

// ErrorInfo is the error body. Code is stable and machine-readable, for
// example INSUFFICIENT_STOCK; Details is omitted on 401, 403 and 5xx.
type ErrorInfo struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type MetaInfo struct {
	RequestID  string      `json:"request_id"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes one page of a list response.
type Pagination struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

// StockDetails identifies the order line that failed the availability check.
type StockDetails struct {
	LineIndex  int     `json:"line_index"`
	CartLineID *string `json:"cart_line_id,omitempty"`
	ProductID  string  `json:"product_id"`
	VariantID  *string `json:"variant_id,omitempty"`
	SKU        string  `json:"sku"`
	Requested  int     `json:"requested"`
	Available  int     `json:"available"`
}

func meta(c echo.Context) *MetaInfo {
	return &MetaInfo{RequestID: deliverycontext.GetRequestID(c)}
}

func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, SuccessResponse{Data: data, Meta: meta(c)})
}

// Page returns a 200 list response with pagination metadata.
func Page(c echo.Context, data any, page *Pagination) error {
	m := meta(c)
	m.Pagination = page

	return c.JSON(http.StatusOK, SuccessResponse{Data: data, Meta: m})
}

func NoContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	if statusCode >= http.StatusInternalServerError || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, ErrorResponse{
		Error: &ErrorInfo{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError answers a body or query that could not be decoded.
func BindingError(c echo.Context, errorCode string, message string) error {
	return BadRequest(c, errorCode, message)
}

func Unauthorized(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusUnauthorized, errorCode, message, nil)
}

func Forbidden(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusForbidden, errorCode, message, nil)
}

func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// HandleAppError renders domain errors. Anything that is not an AppError is
// returned to the central error handler.
func HandleAppError(c echo.Context, err error) error {
	if stockErr, ok := errors.AsType[*domainerrors.InsufficientStockError](err); ok {
		return Error(c, stockErr.HTTPCode(), stockErr.ErrorCode(), stockErr.Message(), newStockDetails(stockErr))
	}

	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		var details any
		if d := appErr.Details(); d != "" {
			details = d
		}

		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
	}

	return errors.WithStack(err)
}

func newStockDetails(err *domainerrors.InsufficientStockError) *StockDetails {
	details := &StockDetails{
		LineIndex: err.LineIndex,
		ProductID: err.ProductID.String(),
		SKU:       err.SKU,
		Requested: err.Requested,
		Available: err.Available,
	}
	if err.CartLineID != nil {
		id := err.CartLineID.String()
		details.CartLineID = &id
	}
	if err.VariantID != nil {
		id := err.VariantID.String()
		details.VariantID = &id
	}

	return details
}
