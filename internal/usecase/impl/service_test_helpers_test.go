package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"commerce/config"
	"commerce/internal/domain/constants"
	"commerce/internal/domain/entity"
	"commerce/internal/domain/repository"
	mockRepo "commerce/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(pricePolicy string) *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{
			PricePolicy:     pricePolicy,
			DefaultCurrency: constants.DefaultCurrency,
		},
		Transaction: &config.TransactionConfig{
			MaxRetries:      2,
			InitialInterval: time.Millisecond,
			MaxInterval:     2 * time.Millisecond,
		},
	}
}

// expectTransactions makes every Execute call run fn against factory.
func expectTransactions(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func moneyPtr(s string) *decimal.Decimal {
	d := money(s)

	return &d
}

func newTestProduct(price string, quantity int) *entity.Product {
	return &entity.Product{
		ID:            uuid.New(),
		Name:          "Test Product",
		Slug:          "test-product",
		SKU:           "TEST-1",
		Price:         money(price),
		Quantity:      quantity,
		TrackQuantity: true,
		Active:        true,
		Weight:        money("0.5"),
	}
}

func addTestVariant(product *entity.Product, name, price string, quantity int, attributes entity.Attributes) *entity.ProductVariant {
	variant := &entity.ProductVariant{
		ID:         uuid.New(),
		ProductID:  product.ID,
		Name:       name,
		SKU:        entity.DeriveVariantSKU(product.SKU, name),
		Price:      money(price),
		Quantity:   quantity,
		Attributes: attributes,
	}
	product.Variants = append(product.Variants, variant)

	return variant
}
