package schema

import "slices"

// Sort orders, in place, every collection whose order carries no meaning:
// id lists, names, images, websites, origin producer ids, related product
// ids and region lists. Categories, shopping entries, reports and the entry
// collections of a document keep their order. Sorting twice changes nothing.

func sortList(p *[]string) {
	if p != nil {
		slices.Sort(*p)
	}
}

func (ids *ProducerIDs) Sort() {
	sortList(ids.Domains)
	sortList(ids.VAT)
	sortList(ids.Wiki)
}

func (ids *ProductIDs) Sort() {
	sortList(ids.EAN)
	sortList(ids.GTIN)
	sortList(ids.Wiki)
}

func (l RegionList) Sort() {
	slices.Sort(l)
}

func (r *Regions) Sort() {
	r.List.Sort()
}

func (a *ProductAvailability) Sort() {
	a.Regions.Sort()
}

func (o *ProducerOrigins) Sort() {
	if o.Regions != nil {
		o.Regions.Sort()
	}
}

func (o *ProductOrigins) Sort() {
	slices.Sort(o.ProducerIDs)
	if o.Regions != nil {
		o.Regions.Sort()
	}
}

func (r *RelatedProducts) Sort() {
	sortList(r.FollowedBy)
	sortList(r.PrecededBy)
}

func (a *AboutProducer) Sort() {
	a.IDs.Sort()
	slices.Sort(a.Images)
	if a.Origins != nil {
		a.Origins.Sort()
	}
	slices.Sort(a.Websites)
}

func (p *CatalogProducer) Sort() {
	p.IDs.Sort()
	slices.Sort(p.Images)
	slices.Sort(p.Names)
	if p.Origins != nil {
		p.Origins.Sort()
	}
	slices.Sort(p.Websites)
}

func (p *ProducerReviewer) Sort() {
	slices.Sort(p.Names)
}

func (p *ReviewProducer) Sort() {
	p.IDs.Sort()
	slices.Sort(p.Images)
	slices.Sort(p.Names)
	if p.Origins != nil {
		p.Origins.Sort()
	}
	slices.Sort(p.Websites)
}

func (p *CatalogProduct) Sort() {
	if p.Availability != nil {
		p.Availability.Sort()
	}
	p.IDs.Sort()
	slices.Sort(p.Images)
	slices.Sort(p.Names)
	if p.Origins != nil {
		p.Origins.Sort()
	}
	if p.Related != nil {
		p.Related.Sort()
	}
}

func (p *ProducerProduct) Sort() {
	if p.Availability != nil {
		p.Availability.Sort()
	}
	p.IDs.Sort()
	slices.Sort(p.Images)
	slices.Sort(p.Names)
	if p.Origins != nil {
		p.Origins.Sort()
	}
	if p.Related != nil {
		p.Related.Sort()
	}
}

func (p *ReviewProduct) Sort() {
	if p.Availability != nil {
		p.Availability.Sort()
	}
	p.IDs.Sort()
	slices.Sort(p.Images)
	slices.Sort(p.Names)
	if p.Origins != nil {
		p.Origins.Sort()
	}
	if p.Related != nil {
		p.Related.Sort()
	}
}

func (d *CatalogerData) Sort() {
	for i := range d.Producers {
		d.Producers[i].Sort()
	}
	for i := range d.Products {
		d.Products[i].Sort()
	}
}

func (d *ProducerData) Sort() {
	d.Producer.Sort()
	for i := range d.Products {
		d.Products[i].Sort()
	}
	for i := range d.Reviewers {
		d.Reviewers[i].Sort()
	}
}

func (d *ReviewerData) Sort() {
	for i := range d.Producers {
		d.Producers[i].Sort()
	}
	for i := range d.Products {
		d.Products[i].Sort()
	}
}

// Sort normalizes the document body. The header is left as written.
func (r *Root) Sort() {
	if r.Data != nil {
		r.Data.Sort()
	}
}
