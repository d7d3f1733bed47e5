package schema

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEnumRoundTrip(t *testing.T) {
	for _, v := range ProviderVariants {
		parsed, err := ParseProviderVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	for _, v := range CatalogVariants {
		parsed, err := ParseCatalogVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	for _, v := range VerifiedShops {
		parsed, err := ParseVerifiedShop(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	for _, v := range RegionVariants {
		parsed, err := ParseRegionVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
	for _, v := range EntryVariants {
		parsed, err := ParseEntryVariant(v.String())
		require.NoError(t, err)
		assert.Equal(t, v, parsed)
	}
}

func TestEnumLiterals(t *testing.T) {
	assert.Equal(t, "priceComparator", string(CatalogPriceComparator))
	assert.Equal(t, "cataloger", string(ProviderCataloger))
	assert.Equal(t, "unknown", string(RegionUnknown))
}

func TestParseInvalidValue(t *testing.T) {
	tests := []struct {
		name  string
		parse func(string) error
		input string
		typ   string
	}{
		{"provider", func(s string) error { _, err := ParseProviderVariant(s); return err }, "Cataloger", "ProviderVariant"},
		{"catalog", func(s string) error { _, err := ParseCatalogVariant(s); return err }, "price_comparator", "CatalogVariant"},
		{"shop", func(s string) error { _, err := ParseVerifiedShop(s); return err }, "ebay", "VerifiedShop"},
		{"region", func(s string) error { _, err := ParseRegionVariant(s); return err }, "", "RegionVariant"},
		{"entry", func(s string) error { _, err := ParseEntryVariant(s); return err }, "cataloger", "EntryVariant"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.parse(tt.input)
			require.Error(t, err)

			var invalid *InvalidValueError
			require.True(t, errors.As(err, &invalid))
			assert.Equal(t, tt.typ, invalid.Type)
			assert.Equal(t, tt.input, invalid.Value)
			assert.Contains(t, err.Error(), "invalid value")
		})
	}
}

func TestEnumJSON(t *testing.T) {
	data, err := json.Marshal(CatalogDatabase)
	require.NoError(t, err)
	assert.Equal(t, `"database"`, string(data))

	var shop VerifiedShop
	require.NoError(t, json.Unmarshal([]byte(`"amazon"`), &shop))
	assert.Equal(t, ShopAmazon, shop)

	assert.Error(t, json.Unmarshal([]byte(`"ebay"`), &shop))

	_, err = json.Marshal(VerifiedShop("ebay"))
	assert.Error(t, err)
}

func TestEnumYAML(t *testing.T) {
	var doc struct {
		Variant ProviderVariant `yaml:"variant"`
		Shop    VerifiedShop    `yaml:"shop"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("variant: reviewer\nshop: fairphone\n"), &doc))
	assert.Equal(t, ProviderReviewer, doc.Variant)
	assert.Equal(t, ShopFairphone, doc.Shop)

	err := yaml.Unmarshal([]byte("variant: retailer\n"), &doc)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid value")
}
