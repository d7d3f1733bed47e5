package schema

import (
	"slices"
	"time"
)

// Meta is the header every document starts with.
// Variant declares which role data follows the header.
type Meta struct {
	Authors           []string        `json:"authors,omitempty" yaml:"authors,omitempty"`
	CreationTimestamp *time.Time      `json:"creation_timestamp,omitempty" yaml:"creation_timestamp,omitempty"`
	Description       *string         `json:"description,omitempty" yaml:"description,omitempty"`
	Title             string          `json:"title" yaml:"title"`
	ValidFrom         *time.Time      `json:"valid_from,omitempty" yaml:"valid_from,omitempty"`
	ValidTo           *time.Time      `json:"valid_to,omitempty" yaml:"valid_to,omitempty"`
	Variant           ProviderVariant `json:"variant" yaml:"variant"`
	Version           string          `json:"version" yaml:"version"`
}

// NewMeta returns a header carrying only the required fields.
func NewMeta(title, version string, variant ProviderVariant) Meta {
	return Meta{Title: title, Version: version, Variant: variant}
}

func (m Meta) Validate() error {
	return requireFields("Meta").
		str("title", m.Title).
		str("variant", string(m.Variant)).
		str("version", m.Version).
		err()
}

// Clone returns a copy that shares no memory with m.
func (m Meta) Clone() Meta {
	out := m
	out.Authors = slices.Clone(m.Authors)
	out.CreationTimestamp = clonePtr(m.CreationTimestamp)
	out.Description = clonePtr(m.Description)
	out.ValidFrom = clonePtr(m.ValidFrom)
	out.ValidTo = clonePtr(m.ValidTo)
	return out
}

// Ptr returns a pointer to a copy of v. Handy for optional fields.
func Ptr[T any](v T) *T {
	return &v
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
