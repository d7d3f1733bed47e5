package schema

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"
)

// InvalidValueError reports a string that is not a declared enum literal.
type InvalidValueError struct {
	Type  string
	Value string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value %q for %s", e.Value, e.Type)
}

func parseEnum[T ~string](typ, s string, values []T) (T, error) {
	if slices.Contains(values, T(s)) {
		return T(s), nil
	}
	return "", &InvalidValueError{Type: typ, Value: s}
}

func decodeEnumYAML[T ~string](node *yaml.Node, parse func(string) (T, error)) (T, error) {
	var s string
	if err := node.Decode(&s); err != nil {
		return "", err
	}
	return parse(s)
}

// ProviderVariant is the role a document is written from.
type ProviderVariant string

const (
	ProviderCataloger ProviderVariant = "cataloger"
	ProviderProducer  ProviderVariant = "producer"
	ProviderReviewer  ProviderVariant = "reviewer"
)

// ProviderVariants lists every declared provider variant.
var ProviderVariants = []ProviderVariant{ProviderCataloger, ProviderProducer, ProviderReviewer}

// ParseProviderVariant parses the wire literal of a provider variant.
func ParseProviderVariant(s string) (ProviderVariant, error) {
	return parseEnum("ProviderVariant", s, ProviderVariants)
}

func (v ProviderVariant) String() string { return string(v) }

// AboutKey is the key of the role's about record in a merged root object.
func (v ProviderVariant) AboutKey() string { return string(v) }

func (v ProviderVariant) MarshalText() ([]byte, error) {
	if _, err := ParseProviderVariant(string(v)); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (v *ProviderVariant) UnmarshalText(text []byte) error {
	parsed, err := ParseProviderVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v *ProviderVariant) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := decodeEnumYAML(node, ParseProviderVariant)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// CatalogVariant is the kind of cataloger.
type CatalogVariant string

const (
	CatalogStore           CatalogVariant = "store"
	CatalogPriceComparator CatalogVariant = "priceComparator"
	CatalogDatabase        CatalogVariant = "database"
)

// CatalogVariants lists every declared catalog variant.
var CatalogVariants = []CatalogVariant{CatalogStore, CatalogPriceComparator, CatalogDatabase}

// ParseCatalogVariant parses the wire literal of a catalog variant.
func ParseCatalogVariant(s string) (CatalogVariant, error) {
	return parseEnum("CatalogVariant", s, CatalogVariants)
}

func (v CatalogVariant) String() string { return string(v) }

func (v CatalogVariant) MarshalText() ([]byte, error) {
	if _, err := ParseCatalogVariant(string(v)); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (v *CatalogVariant) UnmarshalText(text []byte) error {
	parsed, err := ParseCatalogVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v *CatalogVariant) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := decodeEnumYAML(node, ParseCatalogVariant)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// VerifiedShop is a shop whose listings can be linked from a product.
type VerifiedShop string

const (
	ShopFairphone VerifiedShop = "fairphone"
	ShopAmazon    VerifiedShop = "amazon"
)

// VerifiedShops lists every declared shop.
var VerifiedShops = []VerifiedShop{ShopFairphone, ShopAmazon}

// ParseVerifiedShop parses the wire literal of a verified shop.
func ParseVerifiedShop(s string) (VerifiedShop, error) {
	return parseEnum("VerifiedShop", s, VerifiedShops)
}

func (v VerifiedShop) String() string { return string(v) }

func (v VerifiedShop) MarshalText() ([]byte, error) {
	if _, err := ParseVerifiedShop(string(v)); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (v *VerifiedShop) UnmarshalText(text []byte) error {
	parsed, err := ParseVerifiedShop(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v *VerifiedShop) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := decodeEnumYAML(node, ParseVerifiedShop)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// RegionVariant names a region set that is not an explicit list.
type RegionVariant string

const (
	RegionAll     RegionVariant = "all"
	RegionUnknown RegionVariant = "unknown"
)

// RegionVariants lists every declared region variant.
var RegionVariants = []RegionVariant{RegionAll, RegionUnknown}

// ParseRegionVariant parses the wire literal of a region variant.
func ParseRegionVariant(s string) (RegionVariant, error) {
	return parseEnum("RegionVariant", s, RegionVariants)
}

func (v RegionVariant) String() string { return string(v) }

func (v RegionVariant) MarshalText() ([]byte, error) {
	if _, err := ParseRegionVariant(string(v)); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (v *RegionVariant) UnmarshalText(text []byte) error {
	parsed, err := ParseRegionVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func (v *RegionVariant) UnmarshalYAML(node *yaml.Node) error {
	parsed, err := decodeEnumYAML(node, ParseRegionVariant)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

// EntryVariant is the "type" tag of an entry line.
type EntryVariant string

const (
	EntryAbout    EntryVariant = "about"
	EntryProduct  EntryVariant = "product"
	EntryProducer EntryVariant = "producer"
	EntryReviewer EntryVariant = "reviewer"
)

// EntryVariants lists every declared entry variant.
var EntryVariants = []EntryVariant{EntryAbout, EntryProduct, EntryProducer, EntryReviewer}

// ParseEntryVariant parses the wire literal of an entry variant.
func ParseEntryVariant(s string) (EntryVariant, error) {
	return parseEnum("EntryVariant", s, EntryVariants)
}

func (v EntryVariant) String() string { return string(v) }

func (v EntryVariant) MarshalText() ([]byte, error) {
	if _, err := ParseEntryVariant(string(v)); err != nil {
		return nil, err
	}
	return []byte(v), nil
}

func (v *EntryVariant) UnmarshalText(text []byte) error {
	parsed, err := ParseEntryVariant(string(text))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
