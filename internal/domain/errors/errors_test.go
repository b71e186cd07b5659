package errors

import (
	"net/http"
	"testing"

	"commerce/internal/errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestBaseError_WithDetailsKeepsIdentity(t *testing.T) {
	err := ErrCartLineNotFound.WithDetailsf("line %d", 3)

	assert.Equal(t, "cart line not found: line 3", err.Error())
	assert.Empty(t, ErrCartLineNotFound.Details())
	assert.True(t, errors.Is(err, ErrCartLineNotFound))
	assert.True(t, errors.Is(errors.Wrap(err, "update"), ErrNotFound))
	assert.False(t, errors.Is(err, ErrOrderNotFound))
	assert.False(t, errors.Is(ErrInvalidQuantity, ErrNotFound))
}

func TestInsufficientStockError(t *testing.T) {
	err := &InsufficientStockError{LineIndex: 1, ProductID: uuid.New(), SKU: "MUG-01", Requested: 5, Available: 2}
	wrapped := errors.Wrap(err, "checkout")

	assert.True(t, errors.Is(wrapped, ErrInsufficientStock))
	stockErr, ok := errors.AsType[*InsufficientStockError](wrapped)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, stockErr.HTTPCode())
	assert.Equal(t, "INSUFFICIENT_STOCK", stockErr.ErrorCode())
	assert.Equal(t, "line 1 (MUG-01): requested 5, available 2", stockErr.Details())
}

func TestStorageError(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewStorageError(cause, "create order")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Equal(t, "storage: create order: connection refused", err.Error())
	assert.NotContains(t, err.Message(), "connection refused")
}
