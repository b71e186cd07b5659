package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog(t *testing.T) {
	products, err := loadCatalog(filepath.Join("testdata", "catalog.yaml"))
	require.NoError(t, err)
	require.Len(t, products, 2)

	mug := products[0]
	assert.Equal(t, "coffee-mug", mug.Slug)
	assert.True(t, mug.Price.Equal(decimal.RequireFromString("12.50")))
	assert.True(t, mug.Weight.Equal(decimal.RequireFromString("0.35")))
	assert.True(t, mug.Active)
	assert.True(t, mug.TrackQuantity)
	require.Len(t, mug.Variants, 2)

	large := mug.Variants[0]
	assert.Equal(t, "MUG-01-LARGE-BLUE", large.SKU)
	assert.True(t, large.Price.Equal(decimal.RequireFromString("14")))
	assert.Equal(t, "blue", large.Attributes["color"])

	small := mug.Variants[1]
	assert.Equal(t, "MUG-01-S", small.SKU)
	assert.True(t, small.Price.Equal(mug.Price), "variant without a price inherits the product price")

	gift := products[1]
	assert.Equal(t, "gift-card-digital", gift.Slug)
	assert.True(t, gift.Price.Equal(decimal.NewFromInt(25)))
	assert.False(t, gift.TrackQuantity)
	assert.False(t, gift.Active)
}

func TestLoadCatalog_Rejects(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "missing sku",
			content: "products:\n  - name: Mug\n    price: 1\n",
			errMsg:  "sku is required",
		},
		{
			name:    "negative price",
			content: "products:\n  - name: Mug\n    sku: M\n    price: \"-1\"\n",
			errMsg:  "price must not be negative",
		},
		{
			name:    "duplicate sku",
			content: "products:\n  - name: A\n    sku: M\n  - name: B\n    sku: M\n",
			errMsg:  "duplicate sku M",
		},
		{
			name:    "unnamed variant",
			content: "products:\n  - name: A\n    sku: M\n    variants:\n      - quantity: 1\n",
			errMsg:  "variant name is required",
		},
		{
			name:    "bad decimal",
			content: "products:\n  - name: A\n    sku: M\n    price: twelve\n",
			errMsg:  "unmarshal catalog",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "catalog.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o600))

			_, err := loadCatalog(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
