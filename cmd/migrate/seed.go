package main

import (
	"reflect"
	"strings"

	"commerce/internal/domain/entity"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

type catalogFile struct {
	Products []productSeed `koanf:"products"`
}

type productSeed struct {
	Name          string           `koanf:"name"`
	Slug          string           `koanf:"slug"`
	SKU           string           `koanf:"sku"`
	Price         decimal.Decimal  `koanf:"price"`
	CompareAt     *decimal.Decimal `koanf:"compareAt"`
	CostPrice     *decimal.Decimal `koanf:"costPrice"`
	Quantity      int              `koanf:"quantity"`
	TrackQuantity *bool            `koanf:"trackQuantity"`
	Active        *bool            `koanf:"active"`
	Weight        decimal.Decimal  `koanf:"weight"`
	Variants      []variantSeed    `koanf:"variants"`
}

type variantSeed struct {
	Name       string            `koanf:"name"`
	SKU        string            `koanf:"sku"`
	Price      *decimal.Decimal  `koanf:"price"`
	Quantity   int               `koanf:"quantity"`
	Attributes map[string]string `koanf:"attributes"`
}

// loadCatalog reads a catalog YAML file into products ready to be saved.
func loadCatalog(path string) ([]*entity.Product, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read catalog %s failed", path)
	}

	var doc catalogFile
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &doc,
			TagName:          "koanf",
			WeaklyTypedInput: true,
			DecodeHook:       stringToDecimalHookFunc(),
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal catalog %s failed", path)
	}

	products := make([]*entity.Product, 0, len(doc.Products))
	seen := make(map[string]struct{}, len(doc.Products))
	for i, seed := range doc.Products {
		product, err := seed.toEntity()
		if err != nil {
			return nil, errors.Wrapf(err, "product #%d", i)
		}
		if _, dup := seen[product.SKU]; dup {
			return nil, errors.Errorf("product #%d: duplicate sku %s", i, product.SKU)
		}
		seen[product.SKU] = struct{}{}
		products = append(products, product)
	}

	return products, nil
}

func (s productSeed) toEntity() (*entity.Product, error) {
	if strings.TrimSpace(s.Name) == "" {
		return nil, errors.New("name is required")
	}
	if strings.TrimSpace(s.SKU) == "" {
		return nil, errors.New("sku is required")
	}
	if s.Price.IsNegative() {
		return nil, errors.Errorf("sku %s: price must not be negative", s.SKU)
	}
	if s.Quantity < 0 {
		return nil, errors.Errorf("sku %s: quantity must not be negative", s.SKU)
	}

	product := &entity.Product{
		SKU:           s.SKU,
		Price:         s.Price,
		CompareAt:     s.CompareAt,
		CostPrice:     s.CostPrice,
		Quantity:      s.Quantity,
		TrackQuantity: boolOr(s.TrackQuantity, true),
		Active:        boolOr(s.Active, true),
		Weight:        s.Weight,
		Variants:      make([]*entity.ProductVariant, 0, len(s.Variants)),
	}
	product.Rename(s.Name, s.Slug)

	for _, vs := range s.Variants {
		if strings.TrimSpace(vs.Name) == "" {
			return nil, errors.Errorf("sku %s: variant name is required", s.SKU)
		}
		if vs.Quantity < 0 {
			return nil, errors.Errorf("sku %s: variant %q quantity must not be negative", s.SKU, vs.Name)
		}

		// Variants without their own price inherit the product price.
		price := s.Price
		if vs.Price != nil {
			price = *vs.Price
		}

		variant := &entity.ProductVariant{
			Name:       vs.Name,
			SKU:        vs.SKU,
			Price:      price,
			Quantity:   vs.Quantity,
			Attributes: entity.Attributes(vs.Attributes),
		}
		variant.EnsureSKU(product.SKU)
		product.Variants = append(product.Variants, variant)
	}

	return product, nil
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}

	return *v
}

// stringToDecimalHookFunc decodes YAML strings and numbers into decimal.Decimal.
func stringToDecimalHookFunc() mapstructure.DecodeHookFuncType {
	target := reflect.TypeOf(decimal.Decimal{})

	return func(from, to reflect.Type, data any) (any, error) {
		if to != target {
			return data, nil
		}

		switch v := data.(type) {
		case string:
			return decimal.NewFromString(strings.TrimSpace(v))
		case int:
			return decimal.NewFromInt(int64(v)), nil
		case int64:
			return decimal.NewFromInt(v), nil
		case uint64:
			return decimal.NewFromUint64(v), nil
		case float64:
			return decimal.NewFromFloat(v), nil
		}

		return data, nil
	}
}
