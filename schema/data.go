package schema

import (
	"encoding/json"
	"fmt"
)

// Data is the role-specific body of a document. It is implemented by
// *CatalogerData, *ProducerData and *ReviewerData only.
type Data interface {
	// Variant is the role this body belongs to.
	Variant() ProviderVariant
	// About returns the role's about record by value.
	About() any
	// Entries materializes the body as entries: products first, then the
	// role's second collection, each in stored order.
	Entries() []Entry
	// Append adds an entry to the matching collection.
	Append(e Entry) error
	Validate() error
	Sort()
	isData()
}

// CatalogerData is the body of a cataloger document.
type CatalogerData struct {
	Cataloger AboutCataloger    `json:"cataloger" yaml:"cataloger"`
	Producers []CatalogProducer `json:"producers" yaml:"producers"`
	Products  []CatalogProduct  `json:"products" yaml:"products"`
}

// NewCatalogerData returns a body with empty collections.
func NewCatalogerData(about AboutCataloger) *CatalogerData {
	return &CatalogerData{Cataloger: about, Producers: []CatalogProducer{}, Products: []CatalogProduct{}}
}

func (*CatalogerData) isData()                  {}
func (*CatalogerData) Variant() ProviderVariant { return ProviderCataloger }
func (d *CatalogerData) About() any             { return d.Cataloger }

func (d *CatalogerData) Entries() []Entry {
	out := make([]Entry, 0, len(d.Products)+len(d.Producers))
	for i := range d.Products {
		out = append(out, CatalogEntry{Product: &d.Products[i]})
	}
	for i := range d.Producers {
		out = append(out, CatalogEntry{Producer: &d.Producers[i]})
	}
	return out
}

func (d *CatalogerData) Append(e Entry) error {
	entry, ok := e.(CatalogEntry)
	if !ok {
		return fmt.Errorf("%w: %T in cataloger data", ErrUnknownEntryType, e)
	}
	switch {
	case entry.Product != nil:
		d.Products = append(d.Products, *entry.Product)
	case entry.Producer != nil:
		d.Producers = append(d.Producers, *entry.Producer)
	default:
		return fmt.Errorf("CatalogEntry: %w", ErrEmptyUnion)
	}
	return nil
}

func (d *CatalogerData) Validate() error {
	r := requireFields("CatalogerData").
		nested("cataloger", d.Cataloger).
		present("producers", d.Producers != nil).
		present("products", d.Products != nil)
	nestedEach(r, "producers", d.Producers)
	nestedEach(r, "products", d.Products)
	return r.err()
}

func (d *CatalogerData) Clone() *CatalogerData {
	out := &CatalogerData{Cataloger: d.Cataloger.Clone()}
	out.Producers = cloneEach(d.Producers)
	out.Products = cloneEach(d.Products)
	return out
}

// ProducerData is the body of a producer document.
type ProducerData struct {
	Producer  AboutProducer      `json:"producer" yaml:"producer"`
	Products  []ProducerProduct  `json:"products" yaml:"products"`
	Reviewers []ProducerReviewer `json:"reviewers" yaml:"reviewers"`
}

// NewProducerData returns a body with empty collections.
func NewProducerData(about AboutProducer) *ProducerData {
	return &ProducerData{Producer: about, Products: []ProducerProduct{}, Reviewers: []ProducerReviewer{}}
}

func (*ProducerData) isData()                  {}
func (*ProducerData) Variant() ProviderVariant { return ProviderProducer }
func (d *ProducerData) About() any             { return d.Producer }

func (d *ProducerData) Entries() []Entry {
	out := make([]Entry, 0, len(d.Products)+len(d.Reviewers))
	for i := range d.Products {
		out = append(out, ProducerEntry{Product: &d.Products[i]})
	}
	for i := range d.Reviewers {
		out = append(out, ProducerEntry{Reviewer: &d.Reviewers[i]})
	}
	return out
}

func (d *ProducerData) Append(e Entry) error {
	entry, ok := e.(ProducerEntry)
	if !ok {
		return fmt.Errorf("%w: %T in producer data", ErrUnknownEntryType, e)
	}
	switch {
	case entry.Product != nil:
		d.Products = append(d.Products, *entry.Product)
	case entry.Reviewer != nil:
		d.Reviewers = append(d.Reviewers, *entry.Reviewer)
	default:
		return fmt.Errorf("ProducerEntry: %w", ErrEmptyUnion)
	}
	return nil
}

func (d *ProducerData) Validate() error {
	r := requireFields("ProducerData").
		nested("producer", d.Producer).
		present("products", d.Products != nil).
		present("reviewers", d.Reviewers != nil)
	nestedEach(r, "products", d.Products)
	nestedEach(r, "reviewers", d.Reviewers)
	return r.err()
}

func (d *ProducerData) Clone() *ProducerData {
	out := &ProducerData{Producer: d.Producer.Clone()}
	out.Products = cloneEach(d.Products)
	out.Reviewers = cloneEach(d.Reviewers)
	return out
}

// ReviewerData is the body of a reviewer document.
type ReviewerData struct {
	Producers []ReviewProducer `json:"producers" yaml:"producers"`
	Products  []ReviewProduct  `json:"products" yaml:"products"`
	Reviewer  AboutReviewer    `json:"reviewer" yaml:"reviewer"`
}

// NewReviewerData returns a body with empty collections.
func NewReviewerData(about AboutReviewer) *ReviewerData {
	return &ReviewerData{Producers: []ReviewProducer{}, Products: []ReviewProduct{}, Reviewer: about}
}

func (*ReviewerData) isData()                  {}
func (*ReviewerData) Variant() ProviderVariant { return ProviderReviewer }
func (d *ReviewerData) About() any             { return d.Reviewer }

func (d *ReviewerData) Entries() []Entry {
	out := make([]Entry, 0, len(d.Products)+len(d.Producers))
	for i := range d.Products {
		out = append(out, ReviewEntry{Product: &d.Products[i]})
	}
	for i := range d.Producers {
		out = append(out, ReviewEntry{Producer: &d.Producers[i]})
	}
	return out
}

func (d *ReviewerData) Append(e Entry) error {
	entry, ok := e.(ReviewEntry)
	if !ok {
		return fmt.Errorf("%w: %T in reviewer data", ErrUnknownEntryType, e)
	}
	switch {
	case entry.Product != nil:
		d.Products = append(d.Products, *entry.Product)
	case entry.Producer != nil:
		d.Producers = append(d.Producers, *entry.Producer)
	default:
		return fmt.Errorf("ReviewEntry: %w", ErrEmptyUnion)
	}
	return nil
}

func (d *ReviewerData) Validate() error {
	r := requireFields("ReviewerData").
		present("producers", d.Producers != nil).
		present("products", d.Products != nil).
		nested("reviewer", d.Reviewer)
	nestedEach(r, "producers", d.Producers)
	nestedEach(r, "products", d.Products)
	return r.err()
}

func (d *ReviewerData) Clone() *ReviewerData {
	out := &ReviewerData{Reviewer: d.Reviewer.Clone()}
	out.Producers = cloneEach(d.Producers)
	out.Products = cloneEach(d.Products)
	return out
}

// cloneEach deep-copies a collection, turning nil into an empty collection.
func cloneEach[T interface{ Clone() T }](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}

// Root is a whole document: the header and the role data it declares.
type Root struct {
	Meta Meta
	Data Data
}

// NewRoot pairs a body with a header declaring the body's role.
func NewRoot(title, version string, data Data) *Root {
	return &Root{Meta: NewMeta(title, version, data.Variant()), Data: data}
}

// Validate checks the header, the body and that the header declares the
// body's role.
func (r *Root) Validate() error {
	if r.Data == nil {
		return &MissingFieldsError{Type: "Root", Fields: []string{"data"}}
	}
	if err := r.Meta.Validate(); err != nil {
		return err
	}
	if r.Meta.Variant != r.Data.Variant() {
		return fmt.Errorf("%w: meta declares %q, data is %q", ErrVariantMismatch, r.Meta.Variant, r.Data.Variant())
	}
	return r.Data.Validate()
}

// Clone returns a deep copy of the document.
func (r *Root) Clone() *Root {
	out := &Root{Meta: r.Meta.Clone()}
	switch d := r.Data.(type) {
	case *CatalogerData:
		out.Data = d.Clone()
	case *ProducerData:
		out.Data = d.Clone()
	case *ReviewerData:
		out.Data = d.Clone()
	}
	return out
}

type catalogerRoot struct {
	Cataloger AboutCataloger    `json:"cataloger" yaml:"cataloger"`
	Meta      Meta              `json:"meta" yaml:"meta"`
	Producers []CatalogProducer `json:"producers" yaml:"producers"`
	Products  []CatalogProduct  `json:"products" yaml:"products"`
}

type producerRoot struct {
	Meta      Meta               `json:"meta" yaml:"meta"`
	Producer  AboutProducer      `json:"producer" yaml:"producer"`
	Products  []ProducerProduct  `json:"products" yaml:"products"`
	Reviewers []ProducerReviewer `json:"reviewers" yaml:"reviewers"`
}

type reviewerRoot struct {
	Meta      Meta             `json:"meta" yaml:"meta"`
	Producers []ReviewProducer `json:"producers" yaml:"producers"`
	Products  []ReviewProduct  `json:"products" yaml:"products"`
	Reviewer  AboutReviewer    `json:"reviewer" yaml:"reviewer"`
}

// merged folds the header into the body as a "meta" key. Nil collections
// are written as empty ones.
func (r *Root) merged() (any, error) {
	switch d := r.Data.(type) {
	case *CatalogerData:
		return catalogerRoot{
			Cataloger: d.Cataloger,
			Meta:      r.Meta,
			Producers: nonNil(d.Producers),
			Products:  nonNil(d.Products),
		}, nil
	case *ProducerData:
		return producerRoot{
			Meta:      r.Meta,
			Producer:  d.Producer,
			Products:  nonNil(d.Products),
			Reviewers: nonNil(d.Reviewers),
		}, nil
	case *ReviewerData:
		return reviewerRoot{
			Meta:      r.Meta,
			Producers: nonNil(d.Producers),
			Products:  nonNil(d.Products),
			Reviewer:  d.Reviewer,
		}, nil
	case nil:
		return nil, &MissingFieldsError{Type: "Root", Fields: []string{"data"}}
	}
	return nil, fmt.Errorf("unsupported data type %T", r.Data)
}

// MarshalJSON encodes the document as one object with a "meta" key.
func (r *Root) MarshalJSON() ([]byte, error) {
	v, err := r.merged()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// MarshalYAML encodes the document as one mapping with a "meta" key.
func (r *Root) MarshalYAML() (any, error) {
	return r.merged()
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
