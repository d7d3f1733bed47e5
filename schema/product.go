package schema

import "slices"

// ProductCategory is a category path such as "smartphone".
type ProductCategory string

// ProductCategorisation lists the categories a product belongs to.
// Category order is meaningful and survives Sort.
type ProductCategorisation struct {
	Categories []ProductCategory `json:"categories" yaml:"categories"`
}

func (c ProductCategorisation) Validate() error {
	return requireFields("ProductCategorisation").
		present("categories", c.Categories != nil).
		err()
}

func (c ProductCategorisation) Clone() ProductCategorisation {
	return ProductCategorisation{Categories: slices.Clone(c.Categories)}
}

// ProductAvailability records where a product can be bought.
type ProductAvailability struct {
	Regions Regions `json:"regions" yaml:"regions"`
}

func (a ProductAvailability) Validate() error {
	return requireFields("ProductAvailability").
		present("regions", !a.Regions.isZero()).
		err()
}

func (a ProductAvailability) Clone() ProductAvailability {
	return ProductAvailability{Regions: a.Regions.Clone()}
}

// ShoppingEntry points at a product listing in a verified shop.
type ShoppingEntry struct {
	Description string       `json:"description" yaml:"description"`
	ID          string       `json:"id" yaml:"id"`
	Shop        VerifiedShop `json:"shop" yaml:"shop"`
}

func (s ShoppingEntry) Validate() error {
	return requireFields("ShoppingEntry").
		str("description", s.Description).
		str("id", s.ID).
		str("shop", string(s.Shop)).
		err()
}

// Shopping is the ordered list of listings of a product.
type Shopping []ShoppingEntry

// Report is an external report about an entity.
type Report struct {
	Title *string `json:"title,omitempty" yaml:"title,omitempty"`
	URL   *string `json:"url,omitempty" yaml:"url,omitempty"`
}

func (r Report) Clone() Report {
	return Report{Title: clonePtr(r.Title), URL: clonePtr(r.URL)}
}

// Reports is the ordered list of reports attached to a reviewed entity.
type Reports []Report

func (r Reports) Clone() Reports {
	if r == nil {
		return nil
	}
	out := make(Reports, len(r))
	for i, report := range r {
		out[i] = report.Clone()
	}
	return out
}

// CatalogProduct is a product as listed by a cataloger.
type CatalogProduct struct {
	Availability   *ProductAvailability   `json:"availability,omitempty" yaml:"availability,omitempty"`
	Categorisation *ProductCategorisation `json:"categorisation,omitempty" yaml:"categorisation,omitempty"`
	Description    *string                `json:"description,omitempty" yaml:"description,omitempty"`
	ID             string                 `json:"id" yaml:"id"`
	IDs            ProductIDs             `json:"ids" yaml:"ids"`
	Images         []string               `json:"images,omitempty" yaml:"images,omitempty"`
	Names          []string               `json:"names" yaml:"names"`
	Origins        *ProductOrigins        `json:"origins,omitempty" yaml:"origins,omitempty"`
	Related        *RelatedProducts       `json:"related,omitempty" yaml:"related,omitempty"`
	Shopping       Shopping               `json:"shopping,omitempty" yaml:"shopping,omitempty"`
}

func NewCatalogProduct(id string, names ...string) CatalogProduct {
	return CatalogProduct{ID: id, Names: append([]string{}, names...)}
}

func (p CatalogProduct) Validate() error {
	r := requireFields("CatalogProduct").
		str("id", p.ID).
		present("names", p.Names != nil)
	if p.Availability != nil {
		r.nested("availability", p.Availability)
	}
	if p.Categorisation != nil {
		r.nested("categorisation", p.Categorisation)
	}
	nestedEach(r, "shopping", p.Shopping)
	return r.err()
}

func (p CatalogProduct) Clone() CatalogProduct {
	out := p
	out.Availability = cloneStruct(p.Availability)
	out.Categorisation = cloneStruct(p.Categorisation)
	out.Description = clonePtr(p.Description)
	out.IDs = p.IDs.Clone()
	out.Images = slices.Clone(p.Images)
	out.Names = slices.Clone(p.Names)
	out.Origins = cloneStruct(p.Origins)
	out.Related = cloneStruct(p.Related)
	out.Shopping = slices.Clone(p.Shopping)
	return out
}

// ProducerProduct is a product as described by its own producer.
type ProducerProduct struct {
	Availability   *ProductAvailability  `json:"availability,omitempty" yaml:"availability,omitempty"`
	Categorisation ProductCategorisation `json:"categorisation" yaml:"categorisation"`
	Description    string                `json:"description" yaml:"description"`
	ID             string                `json:"id" yaml:"id"`
	IDs            ProductIDs            `json:"ids" yaml:"ids"`
	Images         []string              `json:"images,omitempty" yaml:"images,omitempty"`
	Names          []string              `json:"names" yaml:"names"`
	Origins        *ProductOrigins       `json:"origins,omitempty" yaml:"origins,omitempty"`
	Related        *RelatedProducts      `json:"related,omitempty" yaml:"related,omitempty"`
	Shopping       Shopping              `json:"shopping,omitempty" yaml:"shopping,omitempty"`
}

func NewProducerProduct(id, description string, categories []ProductCategory, names ...string) ProducerProduct {
	return ProducerProduct{
		Categorisation: ProductCategorisation{Categories: append([]ProductCategory{}, categories...)},
		Description:    description,
		ID:             id,
		Names:          append([]string{}, names...),
	}
}

func (p ProducerProduct) Validate() error {
	r := requireFields("ProducerProduct").
		nested("categorisation", p.Categorisation).
		str("description", p.Description).
		str("id", p.ID).
		present("names", p.Names != nil)
	if p.Availability != nil {
		r.nested("availability", p.Availability)
	}
	nestedEach(r, "shopping", p.Shopping)
	return r.err()
}

func (p ProducerProduct) Clone() ProducerProduct {
	out := p
	out.Availability = cloneStruct(p.Availability)
	out.Categorisation = p.Categorisation.Clone()
	out.IDs = p.IDs.Clone()
	out.Images = slices.Clone(p.Images)
	out.Names = slices.Clone(p.Names)
	out.Origins = cloneStruct(p.Origins)
	out.Related = cloneStruct(p.Related)
	out.Shopping = slices.Clone(p.Shopping)
	return out
}

// ReviewProduct is a product as reviewed by a reviewer.
type ReviewProduct struct {
	Availability   *ProductAvailability   `json:"availability,omitempty" yaml:"availability,omitempty"`
	Categorisation *ProductCategorisation `json:"categorisation,omitempty" yaml:"categorisation,omitempty"`
	ID             string                 `json:"id" yaml:"id"`
	IDs            ProductIDs             `json:"ids" yaml:"ids"`
	Images         []string               `json:"images,omitempty" yaml:"images,omitempty"`
	Names          []string               `json:"names" yaml:"names"`
	Origins        *ProductOrigins        `json:"origins,omitempty" yaml:"origins,omitempty"`
	Related        *RelatedProducts       `json:"related,omitempty" yaml:"related,omitempty"`
	Reports        Reports                `json:"reports,omitempty" yaml:"reports,omitempty"`
	Review         *Review                `json:"review,omitempty" yaml:"review,omitempty"`
	Shopping       Shopping               `json:"shopping,omitempty" yaml:"shopping,omitempty"`
	Summary        *string                `json:"summary,omitempty" yaml:"summary,omitempty"`
}

func NewReviewProduct(id string, names ...string) ReviewProduct {
	return ReviewProduct{ID: id, Names: append([]string{}, names...)}
}

func (p ReviewProduct) Validate() error {
	r := requireFields("ReviewProduct").
		str("id", p.ID).
		present("names", p.Names != nil)
	if p.Availability != nil {
		r.nested("availability", p.Availability)
	}
	if p.Categorisation != nil {
		r.nested("categorisation", p.Categorisation)
	}
	nestedEach(r, "shopping", p.Shopping)
	return r.err()
}

func (p ReviewProduct) Clone() ReviewProduct {
	out := p
	out.Availability = cloneStruct(p.Availability)
	out.Categorisation = cloneStruct(p.Categorisation)
	out.IDs = p.IDs.Clone()
	out.Images = slices.Clone(p.Images)
	out.Names = slices.Clone(p.Names)
	out.Origins = cloneStruct(p.Origins)
	out.Related = cloneStruct(p.Related)
	out.Reports = p.Reports.Clone()
	out.Review = cloneStruct(p.Review)
	out.Shopping = slices.Clone(p.Shopping)
	out.Summary = clonePtr(p.Summary)
	return out
}
