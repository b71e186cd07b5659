// Package errors holds the business errors usecases return and the HTTP layer
// renders as {code, message, details}.
package errors

import (
	"fmt"
	"net/http"
)

// AppError is an error the API can render without leaking internals.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	// Message is safe to show to shoppers.
	Message() string
	Details() string
}

type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any BaseError carrying the same business code, so copies made by
// WithDetails still satisfy errors.Is against the predefined value.
// Every 404 error also matches ErrNotFound.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}
	if t.errorCode == ErrNotFound.errorCode {
		return e.httpCode == http.StatusNotFound
	}

	return e.errorCode == t.errorCode
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy of e; predefined errors are never mutated.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

func (e *BaseError) WithDetailsf(format string, args ...any) *BaseError {
	return e.WithDetails(fmt.Sprintf(format, args...))
}

func newError(httpCode int, errorCode, message string) *BaseError {
	return NewBaseError(httpCode, errorCode, message, "")
}

// ErrNotFound is the family every specific not-found error belongs to.
var ErrNotFound = newError(http.StatusNotFound, "NOT_FOUND", "resource not found")

// Catalog and cart.
var (
	ErrProductNotFound  = newError(http.StatusNotFound, "PRODUCT_NOT_FOUND", "product not found")
	ErrCartLineNotFound = newError(http.StatusNotFound, "CART_LINE_NOT_FOUND", "cart line not found")
	ErrInvalidQuantity  = newError(http.StatusBadRequest, "INVALID_QUANTITY", "quantity must be between 1 and 10000")
	ErrInvalidOwner     = newError(http.StatusBadRequest, "INVALID_CART_OWNER", "a user or session token is required")
	ErrEmptyCart        = newError(http.StatusBadRequest, "EMPTY_CART", "cannot place an order without items")
)

// Orders.
var (
	ErrOrderNotFound     = newError(http.StatusNotFound, "ORDER_NOT_FOUND", "order not found")
	ErrInsufficientStock = newError(http.StatusConflict, "INSUFFICIENT_STOCK",
		"one or more items are not available in the requested quantity")
	// ErrInconsistentTotals means a persisted order no longer satisfies
	// total = subtotal + tax + shipping - discount.
	ErrInconsistentTotals      = newError(http.StatusInternalServerError, "INCONSISTENT_TOTALS", "order totals are inconsistent")
	ErrInvalidStatusTransition = newError(http.StatusConflict, "INVALID_STATUS_TRANSITION", "the requested status change is not allowed")
	ErrOrderNumberConflict     = newError(http.StatusConflict, "ORDER_NUMBER_CONFLICT", "order number already in use")
)

// Request handling and infrastructure.
var (
	ErrValidationFailed = newError(http.StatusBadRequest, "VALIDATION_FAILED", "input validation failed")
	// ErrTransactionFailed is returned once transient database conflicts
	// outlast the retry budget.
	ErrTransactionFailed = newError(http.StatusServiceUnavailable, "TRANSACTION_FAILED",
		"the operation could not be committed, please retry")
	ErrInternalError = newError(http.StatusInternalServerError, "INTERNAL_ERROR", "internal error")
	ErrUnauthorized  = newError(http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
	ErrForbidden     = newError(http.StatusForbidden, "FORBIDDEN", "access denied")
)
