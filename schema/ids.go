package schema

import "slices"

// ProducerIDs are external identifiers of a producer.
type ProducerIDs struct {
	Domains *[]string `json:"domains,omitempty" yaml:"domains,omitempty"`
	VAT     *[]string `json:"vat,omitempty" yaml:"vat,omitempty"`
	Wiki    *[]string `json:"wiki,omitempty" yaml:"wiki,omitempty"`
}

func (ids ProducerIDs) Clone() ProducerIDs {
	return ProducerIDs{
		Domains: cloneList(ids.Domains),
		VAT:     cloneList(ids.VAT),
		Wiki:    cloneList(ids.Wiki),
	}
}

// ProductIDs are external identifiers of a product.
type ProductIDs struct {
	EAN  *[]string `json:"ean,omitempty" yaml:"ean,omitempty"`
	GTIN *[]string `json:"gtin,omitempty" yaml:"gtin,omitempty"`
	Wiki *[]string `json:"wiki,omitempty" yaml:"wiki,omitempty"`
}

func (ids ProductIDs) Clone() ProductIDs {
	return ProductIDs{
		EAN:  cloneList(ids.EAN),
		GTIN: cloneList(ids.GTIN),
		Wiki: cloneList(ids.Wiki),
	}
}

// List returns a pointer to a fresh slice holding values.
// List() with no arguments is an empty but present list.
func List(values ...string) *[]string {
	out := make([]string, len(values))
	copy(out, values)
	return &out
}

func cloneList(p *[]string) *[]string {
	if p == nil {
		return nil
	}
	out := slices.Clone(*p)
	if out == nil {
		out = []string{}
	}
	return &out
}

// RegionList is an explicit list of region codes.
type RegionList []string

func (l RegionList) Clone() RegionList {
	return slices.Clone(l)
}

func cloneRegionList(p *RegionList) *RegionList {
	if p == nil {
		return nil
	}
	out := p.Clone()
	if out == nil {
		out = RegionList{}
	}
	return &out
}

// ProducerOrigins records where a producer operates from.
type ProducerOrigins struct {
	Regions *RegionList `json:"regions,omitempty" yaml:"regions,omitempty"`
}

func (o ProducerOrigins) Clone() ProducerOrigins {
	return ProducerOrigins{Regions: cloneRegionList(o.Regions)}
}

// ProductOrigins records who made a product and where.
type ProductOrigins struct {
	ProducerIDs []string    `json:"producer_ids,omitempty" yaml:"producer_ids,omitempty"`
	Regions     *RegionList `json:"regions,omitempty" yaml:"regions,omitempty"`
}

func (o ProductOrigins) Clone() ProductOrigins {
	return ProductOrigins{
		ProducerIDs: slices.Clone(o.ProducerIDs),
		Regions:     cloneRegionList(o.Regions),
	}
}

// RelatedProducts links a product to its predecessors and successors by id.
type RelatedProducts struct {
	FollowedBy *[]string `json:"followed_by,omitempty" yaml:"followed_by,omitempty"`
	PrecededBy *[]string `json:"preceded_by,omitempty" yaml:"preceded_by,omitempty"`
}

func (r RelatedProducts) Clone() RelatedProducts {
	return RelatedProducts{
		FollowedBy: cloneList(r.FollowedBy),
		PrecededBy: cloneList(r.PrecededBy),
	}
}

func cloneStruct[T interface{ Clone() T }](p *T) *T {
	if p == nil {
		return nil
	}
	out := (*p).Clone()
	return &out
}
