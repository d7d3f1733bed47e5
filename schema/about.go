package schema

import "slices"

// AboutCataloger describes the cataloger that wrote a document.
type AboutCataloger struct {
	Description *string        `json:"description,omitempty" yaml:"description,omitempty"`
	ID          string         `json:"id" yaml:"id"`
	Name        string         `json:"name" yaml:"name"`
	Variant     CatalogVariant `json:"variant" yaml:"variant"`
	Website     string         `json:"website" yaml:"website"`
}

func NewAboutCataloger(id, name string, variant CatalogVariant, website string) AboutCataloger {
	return AboutCataloger{ID: id, Name: name, Variant: variant, Website: website}
}

func (a AboutCataloger) Validate() error {
	return requireFields("AboutCataloger").
		str("id", a.ID).
		str("name", a.Name).
		str("variant", string(a.Variant)).
		str("website", a.Website).
		err()
}

func (a AboutCataloger) Clone() AboutCataloger {
	out := a
	out.Description = clonePtr(a.Description)
	return out
}

// AboutProducer describes the producer that wrote a document.
type AboutProducer struct {
	Description *string          `json:"description,omitempty" yaml:"description,omitempty"`
	ID          string           `json:"id" yaml:"id"`
	IDs         ProducerIDs      `json:"ids" yaml:"ids"`
	Images      []string         `json:"images,omitempty" yaml:"images,omitempty"`
	Name        string           `json:"name" yaml:"name"`
	Origins     *ProducerOrigins `json:"origins,omitempty" yaml:"origins,omitempty"`
	Websites    []string         `json:"websites" yaml:"websites"`
}

func NewAboutProducer(id, name string, websites ...string) AboutProducer {
	return AboutProducer{ID: id, Name: name, Websites: append([]string{}, websites...)}
}

func (a AboutProducer) Validate() error {
	return requireFields("AboutProducer").
		str("id", a.ID).
		str("name", a.Name).
		present("websites", a.Websites != nil).
		err()
}

func (a AboutProducer) Clone() AboutProducer {
	out := a
	out.Description = clonePtr(a.Description)
	out.IDs = a.IDs.Clone()
	out.Images = slices.Clone(a.Images)
	out.Origins = cloneStruct(a.Origins)
	out.Websites = slices.Clone(a.Websites)
	return out
}

// AboutReviewer describes the reviewer that wrote a document.
type AboutReviewer struct {
	Description string       `json:"description" yaml:"description"`
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Reviews     *AboutReview `json:"reviews,omitempty" yaml:"reviews,omitempty"`
	Website     string       `json:"website" yaml:"website"`
}

func NewAboutReviewer(id, name, description, website string) AboutReviewer {
	return AboutReviewer{ID: id, Name: name, Description: description, Website: website}
}

func (a AboutReviewer) Validate() error {
	return requireFields("AboutReviewer").
		str("description", a.Description).
		str("id", a.ID).
		str("name", a.Name).
		str("website", a.Website).
		err()
}

func (a AboutReviewer) Clone() AboutReviewer {
	out := a
	out.Reviews = cloneStruct(a.Reviews)
	return out
}
