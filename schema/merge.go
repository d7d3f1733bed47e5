package schema

import "slices"

// Merge rules, applied field by field:
//   - optional scalar: the left value wins when present
//   - unique strings: union of both sides, deduplicated, byte-wise sorted
//   - optional list or sub-record: merged when both are present, otherwise
//     a copy of whichever side is present
//   - review: both sides must be equal
//
// The receiver is the left operand and keeps its identity. Neither operand
// is modified and the result shares no memory with them.

func mergeOptional[T any](a, b *T) *T {
	if a != nil {
		return clonePtr(a)
	}
	return clonePtr(b)
}

func mergeUnique(a, b []string) []string {
	out := make([]string, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	slices.Sort(out)
	return slices.Compact(out)
}

func mergeUniqueList(a, b *[]string) *[]string {
	switch {
	case a != nil && b != nil:
		out := mergeUnique(*a, *b)
		return &out
	case a != nil:
		return cloneList(a)
	}
	return cloneList(b)
}

func mergeSub[T interface {
	Clone() T
	Merge(T) T
}](a, b *T) *T {
	switch {
	case a != nil && b != nil:
		out := (*a).Merge(*b)
		return &out
	case a != nil:
		return cloneStruct(a)
	}
	return cloneStruct(b)
}

func (ids ProducerIDs) Merge(other ProducerIDs) ProducerIDs {
	return ProducerIDs{
		Domains: mergeUniqueList(ids.Domains, other.Domains),
		VAT:     mergeUniqueList(ids.VAT, other.VAT),
		Wiki:    mergeUniqueList(ids.Wiki, other.Wiki),
	}
}

func (ids ProductIDs) Merge(other ProductIDs) ProductIDs {
	return ProductIDs{
		EAN:  mergeUniqueList(ids.EAN, other.EAN),
		GTIN: mergeUniqueList(ids.GTIN, other.GTIN),
		Wiki: mergeUniqueList(ids.Wiki, other.Wiki),
	}
}

func (l RegionList) Merge(other RegionList) RegionList {
	return RegionList(mergeUnique(l, other))
}

// Merge unions two explicit lists. A named region set on either side is
// not combinable with a list, so the left side wins.
func (r Regions) Merge(other Regions) Regions {
	if r.List != nil && other.List != nil {
		return Regions{List: r.List.Merge(other.List)}
	}
	if r.isZero() {
		return other.Clone()
	}
	return r.Clone()
}

func (a ProductAvailability) Merge(other ProductAvailability) ProductAvailability {
	return ProductAvailability{Regions: a.Regions.Merge(other.Regions)}
}

func (o ProducerOrigins) Merge(other ProducerOrigins) ProducerOrigins {
	return ProducerOrigins{Regions: mergeSub(o.Regions, other.Regions)}
}

func (o ProductOrigins) Merge(other ProductOrigins) ProductOrigins {
	return ProductOrigins{
		ProducerIDs: mergeUnique(o.ProducerIDs, other.ProducerIDs),
		Regions:     mergeSub(o.Regions, other.Regions),
	}
}

func (r RelatedProducts) Merge(other RelatedProducts) RelatedProducts {
	return RelatedProducts{
		FollowedBy: mergeUniqueList(r.FollowedBy, other.FollowedBy),
		PrecededBy: mergeUniqueList(r.PrecededBy, other.PrecededBy),
	}
}

func (r Report) Merge(other Report) Report {
	return Report{
		Title: mergeOptional(r.Title, other.Title),
		URL:   mergeOptional(r.URL, other.URL),
	}
}

func (p CatalogProducer) Merge(other CatalogProducer) CatalogProducer {
	return CatalogProducer{
		Description: mergeOptional(p.Description, other.Description),
		ID:          p.ID,
		IDs:         p.IDs.Merge(other.IDs),
		Images:      mergeUnique(p.Images, other.Images),
		Names:       mergeUnique(p.Names, other.Names),
		Origins:     mergeSub(p.Origins, other.Origins),
		Websites:    mergeUnique(p.Websites, other.Websites),
	}
}

func (p ProducerReviewer) Merge(other ProducerReviewer) ProducerReviewer {
	return ProducerReviewer{
		Description: mergeOptional(p.Description, other.Description),
		ID:          p.ID,
		Names:       mergeUnique(p.Names, other.Names),
	}
}

func (p CatalogProduct) Merge(other CatalogProduct) CatalogProduct {
	return CatalogProduct{
		Availability:   mergeSub(p.Availability, other.Availability),
		Categorisation: leftStruct(p.Categorisation, other.Categorisation),
		Description:    mergeOptional(p.Description, other.Description),
		ID:             p.ID,
		IDs:            p.IDs.Merge(other.IDs),
		Images:         mergeUnique(p.Images, other.Images),
		Names:          mergeUnique(p.Names, other.Names),
		Origins:        mergeSub(p.Origins, other.Origins),
		Related:        mergeSub(p.Related, other.Related),
		Shopping:       leftShopping(p.Shopping, other.Shopping),
	}
}

// Merge keeps the left categorisation and description; both are required
// and cannot be combined meaningfully.
func (p ProducerProduct) Merge(other ProducerProduct) ProducerProduct {
	return ProducerProduct{
		Availability:   mergeSub(p.Availability, other.Availability),
		Categorisation: p.Categorisation.Clone(),
		Description:    p.Description,
		ID:             p.ID,
		IDs:            p.IDs.Merge(other.IDs),
		Images:         mergeUnique(p.Images, other.Images),
		Names:          mergeUnique(p.Names, other.Names),
		Origins:        mergeSub(p.Origins, other.Origins),
		Related:        mergeSub(p.Related, other.Related),
		Shopping:       leftShopping(p.Shopping, other.Shopping),
	}
}

// TryMerge fails with ErrReviewConflict when both sides carry reviews that
// are not equal. A review present on one side only is kept.
func (p ReviewProducer) TryMerge(other ReviewProducer) (ReviewProducer, error) {
	review, err := mergeReview(p.Review, other.Review)
	if err != nil {
		return ReviewProducer{}, &MergeError{Type: "ReviewProducer", ID: p.ID, Field: "review", Err: err}
	}
	return ReviewProducer{
		Description: mergeOptional(p.Description, other.Description),
		ID:          p.ID,
		IDs:         p.IDs.Merge(other.IDs),
		Images:      mergeUnique(p.Images, other.Images),
		Names:       mergeUnique(p.Names, other.Names),
		Origins:     mergeSub(p.Origins, other.Origins),
		Reports:     leftReports(p.Reports, other.Reports),
		Review:      review,
		Websites:    mergeUnique(p.Websites, other.Websites),
	}, nil
}

// TryMerge fails with ErrReviewConflict when both sides carry reviews that
// are not equal. A review present on one side only is kept.
func (p ReviewProduct) TryMerge(other ReviewProduct) (ReviewProduct, error) {
	review, err := mergeReview(p.Review, other.Review)
	if err != nil {
		return ReviewProduct{}, &MergeError{Type: "ReviewProduct", ID: p.ID, Field: "review", Err: err}
	}
	return ReviewProduct{
		Availability:   mergeSub(p.Availability, other.Availability),
		Categorisation: leftStruct(p.Categorisation, other.Categorisation),
		ID:             p.ID,
		IDs:            p.IDs.Merge(other.IDs),
		Images:         mergeUnique(p.Images, other.Images),
		Names:          mergeUnique(p.Names, other.Names),
		Origins:        mergeSub(p.Origins, other.Origins),
		Related:        mergeSub(p.Related, other.Related),
		Reports:        leftReports(p.Reports, other.Reports),
		Review:         review,
		Shopping:       leftShopping(p.Shopping, other.Shopping),
		Summary:        mergeOptional(p.Summary, other.Summary),
	}, nil
}

func mergeReview(a, b *Review) (*Review, error) {
	switch {
	case a != nil && b != nil:
		if !a.Equal(*b) {
			return nil, ErrReviewConflict
		}
		return cloneStruct(a), nil
	case a != nil:
		return cloneStruct(a), nil
	}
	return cloneStruct(b), nil
}

func leftStruct[T interface{ Clone() T }](a, b *T) *T {
	if a != nil {
		return cloneStruct(a)
	}
	return cloneStruct(b)
}

func leftShopping(a, b Shopping) Shopping {
	if a != nil {
		return slices.Clone(a)
	}
	return slices.Clone(b)
}

func leftReports(a, b Reports) Reports {
	if a != nil {
		return a.Clone()
	}
	return b.Clone()
}
