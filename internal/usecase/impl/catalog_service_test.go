package impl

import (
	"context"
	"testing"

	domainerrors "commerce/internal/domain/errors"
	"commerce/internal/domain/repository"
	"commerce/internal/errors"
	mockRepo "commerce/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestCatalogService(t *testing.T) (*catalogService, *mockRepo.MockCatalogRepository) {
	catalogRepo := mockRepo.NewMockCatalogRepository(t)
	srv := NewCatalogService(CatalogServiceParams{
		CatalogRepo: catalogRepo,
		Logger:      newDiscardLogger(),
	}).(*catalogService)

	return srv, catalogRepo
}

func TestCatalogService_ResolvePrice(t *testing.T) {
	ctx := context.Background()
	product := newTestProduct("20.00", 10)
	variant := addTestVariant(product, "Large", "24.50", 3, nil)
	unknownVariant := uuid.New()

	tests := []struct {
		name      string
		variantID *uuid.UUID
		want      string
	}{
		{name: "product price without variant", variantID: nil, want: "20.00"},
		{name: "variant price", variantID: &variant.ID, want: "24.50"},
		{name: "unknown variant falls back to product", variantID: &unknownVariant, want: "20.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, catalogRepo := createTestCatalogService(t)
			catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

			price, err := srv.ResolvePrice(ctx, product.ID, tt.variantID)
			require.NoError(t, err)
			assert.True(t, price.Equal(money(tt.want)), "got %s", price)
		})
	}
}

func TestCatalogService_ResolvePrice_NotFound(t *testing.T) {
	ctx := context.Background()

	t.Run("missing product", func(t *testing.T) {
		srv, catalogRepo := createTestCatalogService(t)
		id := uuid.New()
		catalogRepo.EXPECT().FindProductByID(ctx, id).Return(nil, repository.ErrProductNotFound)

		_, err := srv.ResolvePrice(ctx, id, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
		assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
	})

	t.Run("inactive product", func(t *testing.T) {
		srv, catalogRepo := createTestCatalogService(t)
		product := newTestProduct("5.00", 1)
		product.Active = false
		catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

		_, err := srv.ResolvePrice(ctx, product.ID, nil)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})
}

func TestCatalogService_ResolveAvailability(t *testing.T) {
	ctx := context.Background()

	t.Run("quantity boundary", func(t *testing.T) {
		srv, catalogRepo := createTestCatalogService(t)
		product := newTestProduct("1.00", 5)
		catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil).Times(2)

		ok, err := srv.ResolveAvailability(ctx, product.ID, nil, 5)
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = srv.ResolveAvailability(ctx, product.ID, nil, 6)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("untracked stock is always available", func(t *testing.T) {
		srv, catalogRepo := createTestCatalogService(t)
		product := newTestProduct("1.00", 0)
		product.TrackQuantity = false
		catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

		ok, err := srv.ResolveAvailability(ctx, product.ID, nil, 1000)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("variant checked against its own stock", func(t *testing.T) {
		srv, catalogRepo := createTestCatalogService(t)
		product := newTestProduct("1.00", 100)
		variant := addTestVariant(product, "Small", "1.00", 1, nil)
		catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

		ok, err := srv.ResolveAvailability(ctx, product.ID, &variant.ID, 2)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("inactive product is unavailable without error", func(t *testing.T) {
		srv, catalogRepo := createTestCatalogService(t)
		product := newTestProduct("1.00", 100)
		product.Active = false
		catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

		ok, err := srv.ResolveAvailability(ctx, product.ID, nil, 1)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("missing product is not found", func(t *testing.T) {
		srv, catalogRepo := createTestCatalogService(t)
		id := uuid.New()
		catalogRepo.EXPECT().FindProductByID(ctx, id).Return(nil, repository.ErrProductNotFound)

		_, err := srv.ResolveAvailability(ctx, id, nil, 1)
		assert.True(t, errors.Is(err, domainerrors.ErrProductNotFound))
	})

	t.Run("zero quantity is rejected", func(t *testing.T) {
		srv, _ := createTestCatalogService(t)

		_, err := srv.ResolveAvailability(ctx, uuid.New(), nil, 0)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidQuantity))
	})
}

func TestCatalogService_Resolve_VariantSnapshot(t *testing.T) {
	ctx := context.Background()
	srv, catalogRepo := createTestCatalogService(t)
	product := newTestProduct("20.00", 10)
	variant := addTestVariant(product, "Navy Blue", "22.00", 4, map[string]string{"color": "navy"})
	variant.SKU = ""
	catalogRepo.EXPECT().FindProductByID(ctx, product.ID).Return(product, nil)

	entry, err := srv.Resolve(ctx, product.ID, &variant.ID)
	require.NoError(t, err)
	require.NotNil(t, entry.VariantID)
	assert.Equal(t, variant.ID, *entry.VariantID)
	assert.Equal(t, "TEST-1-NAVY-BLUE", entry.SKU)
	assert.Equal(t, "Navy Blue", entry.VariantName)
	assert.Equal(t, "navy", entry.Attributes["color"])
	assert.Equal(t, 4, entry.Quantity)
}
