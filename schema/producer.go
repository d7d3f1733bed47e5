package schema

import "slices"

// CatalogProducer is a producer as listed by a cataloger.
type CatalogProducer struct {
	Description *string          `json:"description,omitempty" yaml:"description,omitempty"`
	ID          string           `json:"id" yaml:"id"`
	IDs         ProducerIDs      `json:"ids" yaml:"ids"`
	Images      []string         `json:"images,omitempty" yaml:"images,omitempty"`
	Names       []string         `json:"names" yaml:"names"`
	Origins     *ProducerOrigins `json:"origins,omitempty" yaml:"origins,omitempty"`
	Websites    []string         `json:"websites,omitempty" yaml:"websites,omitempty"`
}

func NewCatalogProducer(id string, names ...string) CatalogProducer {
	return CatalogProducer{ID: id, Names: append([]string{}, names...)}
}

func (p CatalogProducer) Validate() error {
	return requireFields("CatalogProducer").
		str("id", p.ID).
		present("names", p.Names != nil).
		err()
}

func (p CatalogProducer) Clone() CatalogProducer {
	out := p
	out.Description = clonePtr(p.Description)
	out.IDs = p.IDs.Clone()
	out.Images = slices.Clone(p.Images)
	out.Names = slices.Clone(p.Names)
	out.Origins = cloneStruct(p.Origins)
	out.Websites = slices.Clone(p.Websites)
	return out
}

// ProducerReviewer is a reviewer recognized by a producer.
type ProducerReviewer struct {
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	ID          string   `json:"id" yaml:"id"`
	Names       []string `json:"names" yaml:"names"`
}

func NewProducerReviewer(id string, names ...string) ProducerReviewer {
	return ProducerReviewer{ID: id, Names: append([]string{}, names...)}
}

func (p ProducerReviewer) Validate() error {
	return requireFields("ProducerReviewer").
		str("id", p.ID).
		present("names", p.Names != nil).
		err()
}

func (p ProducerReviewer) Clone() ProducerReviewer {
	return ProducerReviewer{
		Description: clonePtr(p.Description),
		ID:          p.ID,
		Names:       slices.Clone(p.Names),
	}
}

// ReviewProducer is a producer as reviewed by a reviewer.
type ReviewProducer struct {
	Description *string          `json:"description,omitempty" yaml:"description,omitempty"`
	ID          string           `json:"id" yaml:"id"`
	IDs         ProducerIDs      `json:"ids" yaml:"ids"`
	Images      []string         `json:"images,omitempty" yaml:"images,omitempty"`
	Names       []string         `json:"names" yaml:"names"`
	Origins     *ProducerOrigins `json:"origins,omitempty" yaml:"origins,omitempty"`
	Reports     Reports          `json:"reports,omitempty" yaml:"reports,omitempty"`
	Review      *Review          `json:"review,omitempty" yaml:"review,omitempty"`
	Websites    []string         `json:"websites,omitempty" yaml:"websites,omitempty"`
}

func NewReviewProducer(id string, names ...string) ReviewProducer {
	return ReviewProducer{ID: id, Names: append([]string{}, names...)}
}

func (p ReviewProducer) Validate() error {
	return requireFields("ReviewProducer").
		str("id", p.ID).
		present("names", p.Names != nil).
		err()
}

func (p ReviewProducer) Clone() ReviewProducer {
	out := p
	out.Description = clonePtr(p.Description)
	out.IDs = p.IDs.Clone()
	out.Images = slices.Clone(p.Images)
	out.Names = slices.Clone(p.Names)
	out.Origins = cloneStruct(p.Origins)
	out.Reports = p.Reports.Clone()
	out.Review = cloneStruct(p.Review)
	out.Websites = slices.Clone(p.Websites)
	return out
}
