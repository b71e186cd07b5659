package errors

import (
	"fmt"

	"github.com/google/uuid"
)

// InsufficientStockError identifies the line that failed the availability check
// during checkout. It matches ErrInsufficientStock under errors.Is.
type InsufficientStockError struct {
	LineIndex  int
	CartLineID *uuid.UUID
	ProductID  uuid.UUID
	VariantID  *uuid.UUID
	SKU        string
	Requested  int
	Available  int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("line %d (%s): requested %d, available %d", e.LineIndex, e.SKU, e.Requested, e.Available)
}

func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

func (e *InsufficientStockError) HTTPCode() int     { return ErrInsufficientStock.HTTPCode() }
func (e *InsufficientStockError) ErrorCode() string { return ErrInsufficientStock.ErrorCode() }
func (e *InsufficientStockError) Message() string   { return ErrInsufficientStock.Message() }
func (e *InsufficientStockError) Details() string   { return e.Error() }
