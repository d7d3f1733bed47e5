package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Entry is one tagged record of a document body, the unit a line stream
// yields. It is implemented by CatalogEntry, ProducerEntry and ReviewEntry.
type Entry interface {
	// Variant is the entry's "type" tag.
	Variant() EntryVariant
	// Role is the document role the entry belongs to.
	Role() ProviderVariant
	// EntryID is the id of the carried record.
	EntryID() string
	Validate() error
	isEntry()
}

// CatalogEntry carries a producer or a product of a cataloger document.
type CatalogEntry struct {
	Producer *CatalogProducer
	Product  *CatalogProduct
}

func (CatalogEntry) isEntry()              {}
func (CatalogEntry) Role() ProviderVariant { return ProviderCataloger }

func (e CatalogEntry) Variant() EntryVariant {
	if e.Producer != nil {
		return EntryProducer
	}
	return EntryProduct
}

func (e CatalogEntry) EntryID() string {
	switch {
	case e.Producer != nil:
		return e.Producer.ID
	case e.Product != nil:
		return e.Product.ID
	}
	return ""
}

func (e CatalogEntry) Validate() error {
	switch {
	case e.Producer != nil:
		return e.Producer.Validate()
	case e.Product != nil:
		return e.Product.Validate()
	}
	return fmt.Errorf("CatalogEntry: %w", ErrEmptyUnion)
}

func (e CatalogEntry) MarshalJSON() ([]byte, error) {
	switch {
	case e.Producer != nil && e.Product != nil:
		return nil, fmt.Errorf("CatalogEntry: %w", ErrAmbiguousUnion)
	case e.Producer != nil:
		return marshalTagged(EntryProducer, e.Producer)
	case e.Product != nil:
		return marshalTagged(EntryProduct, e.Product)
	}
	return nil, fmt.Errorf("CatalogEntry: %w", ErrEmptyUnion)
}

func (e *CatalogEntry) UnmarshalJSON(data []byte) error {
	tag, err := decodeTag(data)
	if err != nil {
		return fmt.Errorf("CatalogEntry: %w", err)
	}

	var out CatalogEntry
	switch tag {
	case EntryProducer:
		out.Producer = &CatalogProducer{}
		err = json.Unmarshal(data, out.Producer)
	case EntryProduct:
		out.Product = &CatalogProduct{}
		err = json.Unmarshal(data, out.Product)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownEntryType, tag)
	}
	if err != nil {
		return fmt.Errorf("CatalogEntry: %w", err)
	}
	*e = out
	return nil
}

// ProducerEntry carries a product or a reviewer of a producer document.
type ProducerEntry struct {
	Product  *ProducerProduct
	Reviewer *ProducerReviewer
}

func (ProducerEntry) isEntry()              {}
func (ProducerEntry) Role() ProviderVariant { return ProviderProducer }

func (e ProducerEntry) Variant() EntryVariant {
	if e.Reviewer != nil {
		return EntryReviewer
	}
	return EntryProduct
}

func (e ProducerEntry) EntryID() string {
	switch {
	case e.Product != nil:
		return e.Product.ID
	case e.Reviewer != nil:
		return e.Reviewer.ID
	}
	return ""
}

func (e ProducerEntry) Validate() error {
	switch {
	case e.Product != nil:
		return e.Product.Validate()
	case e.Reviewer != nil:
		return e.Reviewer.Validate()
	}
	return fmt.Errorf("ProducerEntry: %w", ErrEmptyUnion)
}

func (e ProducerEntry) MarshalJSON() ([]byte, error) {
	switch {
	case e.Product != nil && e.Reviewer != nil:
		return nil, fmt.Errorf("ProducerEntry: %w", ErrAmbiguousUnion)
	case e.Product != nil:
		return marshalTagged(EntryProduct, e.Product)
	case e.Reviewer != nil:
		return marshalTagged(EntryReviewer, e.Reviewer)
	}
	return nil, fmt.Errorf("ProducerEntry: %w", ErrEmptyUnion)
}

func (e *ProducerEntry) UnmarshalJSON(data []byte) error {
	tag, err := decodeTag(data)
	if err != nil {
		return fmt.Errorf("ProducerEntry: %w", err)
	}

	var out ProducerEntry
	switch tag {
	case EntryProduct:
		out.Product = &ProducerProduct{}
		err = json.Unmarshal(data, out.Product)
	case EntryReviewer:
		out.Reviewer = &ProducerReviewer{}
		err = json.Unmarshal(data, out.Reviewer)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownEntryType, tag)
	}
	if err != nil {
		return fmt.Errorf("ProducerEntry: %w", err)
	}
	*e = out
	return nil
}

// ReviewEntry carries a producer or a product of a reviewer document.
type ReviewEntry struct {
	Producer *ReviewProducer
	Product  *ReviewProduct
}

func (ReviewEntry) isEntry()              {}
func (ReviewEntry) Role() ProviderVariant { return ProviderReviewer }

func (e ReviewEntry) Variant() EntryVariant {
	if e.Producer != nil {
		return EntryProducer
	}
	return EntryProduct
}

func (e ReviewEntry) EntryID() string {
	switch {
	case e.Producer != nil:
		return e.Producer.ID
	case e.Product != nil:
		return e.Product.ID
	}
	return ""
}

func (e ReviewEntry) Validate() error {
	switch {
	case e.Producer != nil:
		return e.Producer.Validate()
	case e.Product != nil:
		return e.Product.Validate()
	}
	return fmt.Errorf("ReviewEntry: %w", ErrEmptyUnion)
}

func (e ReviewEntry) MarshalJSON() ([]byte, error) {
	switch {
	case e.Producer != nil && e.Product != nil:
		return nil, fmt.Errorf("ReviewEntry: %w", ErrAmbiguousUnion)
	case e.Producer != nil:
		return marshalTagged(EntryProducer, e.Producer)
	case e.Product != nil:
		return marshalTagged(EntryProduct, e.Product)
	}
	return nil, fmt.Errorf("ReviewEntry: %w", ErrEmptyUnion)
}

func (e *ReviewEntry) UnmarshalJSON(data []byte) error {
	tag, err := decodeTag(data)
	if err != nil {
		return fmt.Errorf("ReviewEntry: %w", err)
	}

	var out ReviewEntry
	switch tag {
	case EntryProducer:
		out.Producer = &ReviewProducer{}
		err = json.Unmarshal(data, out.Producer)
	case EntryProduct:
		out.Product = &ReviewProduct{}
		err = json.Unmarshal(data, out.Product)
	default:
		err = fmt.Errorf("%w %q", ErrUnknownEntryType, tag)
	}
	if err != nil {
		return fmt.Errorf("ReviewEntry: %w", err)
	}
	*e = out
	return nil
}

// marshalTagged writes the payload object with the tag as its first key.
func marshalTagged(tag EntryVariant, payload any) ([]byte, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	if len(body) < 2 || body[0] != '{' {
		return nil, fmt.Errorf("entry payload %T is not an object", payload)
	}

	var buf bytes.Buffer
	buf.Grow(len(body) + len(tag) + 12)
	buf.WriteString(`{"type":"`)
	buf.WriteString(string(tag))
	buf.WriteByte('"')
	if len(body) > 2 {
		buf.WriteByte(',')
	}
	buf.Write(body[1:])
	return buf.Bytes(), nil
}

// decodeTag reads the "type" key. The payload decoders ignore it.
func decodeTag(data []byte) (EntryVariant, error) {
	var probe struct {
		Type *string `json:"type"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return "", err
	}
	if probe.Type == nil {
		return "", fmt.Errorf("%w: missing \"type\"", ErrUnknownEntryType)
	}
	tag, err := ParseEntryVariant(*probe.Type)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrUnknownEntryType, err)
	}
	return tag, nil
}
