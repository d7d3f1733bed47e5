package schema

import (
	"encoding/json"
	"fmt"
	"maps"
	"reflect"

	"gopkg.in/yaml.v3"

	"github.com/roach88/substrate/internal/shape"
)

// Regions is either a named region set or an explicit list of region codes.
// Exactly one of Variant and List is set; a non-nil empty List is an
// explicit empty list.
type Regions struct {
	Variant RegionVariant
	List    RegionList
}

// AllRegions is the region set covering every region.
func AllRegions() Regions { return Regions{Variant: RegionAll} }

// UnknownRegions marks the region set as not known.
func UnknownRegions() Regions { return Regions{Variant: RegionUnknown} }

// RegionsOf is an explicit region list.
func RegionsOf(codes ...string) Regions {
	list := make(RegionList, len(codes))
	copy(list, codes)
	return Regions{List: list}
}

func (r Regions) isZero() bool {
	return r.Variant == "" && r.List == nil
}

func (r Regions) value() (any, error) {
	switch {
	case r.Variant != "" && r.List != nil:
		return nil, fmt.Errorf("Regions: %w", ErrAmbiguousUnion)
	case r.Variant != "":
		return r.Variant, nil
	case r.List != nil:
		return r.List, nil
	}
	return nil, fmt.Errorf("Regions: %w", ErrEmptyUnion)
}

func (r Regions) Clone() Regions {
	return Regions{Variant: r.Variant, List: r.List.Clone()}
}

func (r Regions) MarshalJSON() ([]byte, error) {
	v, err := r.value()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (r Regions) MarshalYAML() (any, error) {
	return r.value()
}

func (r *Regions) UnmarshalJSON(data []byte) error {
	name, err := shape.Match(data, shape.RegionVariant, shape.RegionList)
	if err != nil {
		return fmt.Errorf("Regions: %w", err)
	}

	var out Regions
	switch name {
	case shape.RegionVariant:
		err = json.Unmarshal(data, &out.Variant)
	case shape.RegionList:
		err = json.Unmarshal(data, &out.List)
		if out.List == nil {
			out.List = RegionList{}
		}
	}
	if err != nil {
		return fmt.Errorf("Regions: %w", err)
	}
	*r = out
	return nil
}

func (r *Regions) UnmarshalYAML(node *yaml.Node) error {
	data, err := nodeJSON(node)
	if err != nil {
		return fmt.Errorf("Regions: %w", err)
	}
	return r.UnmarshalJSON(data)
}

// ScoreReview is a numeric review score.
type ScoreReview struct {
	Value int64 `json:"value" yaml:"value"`
}

// Certification records whether an entity holds a reviewer's certificate.
// It is an open map on the wire: Extra carries every key besides
// is_certified and is written back unchanged.
type Certification struct {
	IsCertified *bool
	Extra       map[string]any
}

func (c Certification) fields() map[string]any {
	out := make(map[string]any, len(c.Extra)+1)
	maps.Copy(out, c.Extra)
	delete(out, "is_certified")
	if c.IsCertified != nil {
		out["is_certified"] = *c.IsCertified
	}
	return out
}

func (c Certification) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.fields())
}

func (c Certification) MarshalYAML() (any, error) {
	return c.fields(), nil
}

func (c *Certification) UnmarshalJSON(data []byte) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("Certification: %w", err)
	}

	var out Certification
	if v, ok := raw["is_certified"]; ok {
		delete(raw, "is_certified")
		if v != nil {
			b, ok := v.(bool)
			if !ok {
				return fmt.Errorf("Certification: is_certified must be a bool, got %T", v)
			}
			out.IsCertified = &b
		}
	}
	if len(raw) > 0 {
		out.Extra = raw
	}
	*c = out
	return nil
}

func (c *Certification) UnmarshalYAML(node *yaml.Node) error {
	data, err := nodeJSON(node)
	if err != nil {
		return fmt.Errorf("Certification: %w", err)
	}
	return c.UnmarshalJSON(data)
}

// Clone copies IsCertified and the top level of Extra.
func (c Certification) Clone() Certification {
	return Certification{IsCertified: clonePtr(c.IsCertified), Extra: maps.Clone(c.Extra)}
}

// Equal treats a nil and an empty Extra as the same.
func (c Certification) Equal(o Certification) bool {
	if !equalBoolPtr(c.IsCertified, o.IsCertified) {
		return false
	}
	if len(c.Extra) == 0 && len(o.Extra) == 0 {
		return true
	}
	return reflect.DeepEqual(c.Extra, o.Extra)
}

// Mention links to an external article about the entity.
type Mention struct {
	Title string `json:"title" yaml:"title"`
	URL   string `json:"url" yaml:"url"`
}

// Review is one of ScoreReview, Certification or Mention, resolved in
// that order when decoding. Keys outside the chosen shape are ignored,
// except that a Certification keeps them in Extra. An object with both
// title and url is a Mention even though it also fits Certification.
// Exactly one field is set.
type Review struct {
	Score         *ScoreReview
	Certification *Certification
	Mention       *Mention
}

// ScoreOf is a score review.
func ScoreOf(value int64) Review {
	return Review{Score: &ScoreReview{Value: value}}
}

// Certified is a certification review.
func Certified(certified bool) Review {
	return Review{Certification: &Certification{IsCertified: &certified}}
}

// MentionOf is a mention review.
func MentionOf(title, url string) Review {
	return Review{Mention: &Mention{Title: title, URL: url}}
}

func (r Review) value() (any, error) {
	var set []any
	if r.Score != nil {
		set = append(set, r.Score)
	}
	if r.Certification != nil {
		set = append(set, r.Certification)
	}
	if r.Mention != nil {
		set = append(set, r.Mention)
	}
	switch len(set) {
	case 0:
		return nil, fmt.Errorf("Review: %w", ErrEmptyUnion)
	case 1:
		return set[0], nil
	}
	return nil, fmt.Errorf("Review: %w", ErrAmbiguousUnion)
}

// Equal reports whether both reviews hold the same shape with the same content.
func (r Review) Equal(o Review) bool {
	switch {
	case r.Score != nil || o.Score != nil:
		return r.Score != nil && o.Score != nil && *r.Score == *o.Score &&
			r.Certification == nil && o.Certification == nil && r.Mention == nil && o.Mention == nil
	case r.Certification != nil || o.Certification != nil:
		return r.Certification != nil && o.Certification != nil &&
			r.Certification.Equal(*o.Certification) &&
			r.Mention == nil && o.Mention == nil
	case r.Mention != nil || o.Mention != nil:
		return r.Mention != nil && o.Mention != nil && *r.Mention == *o.Mention
	}
	return true
}

func equalBoolPtr(a, b *bool) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func (r Review) Clone() Review {
	return Review{
		Score:         clonePtr(r.Score),
		Certification: cloneStruct(r.Certification),
		Mention:       clonePtr(r.Mention),
	}
}

func (r Review) MarshalJSON() ([]byte, error) {
	v, err := r.value()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (r Review) MarshalYAML() (any, error) {
	return r.value()
}

func (r *Review) UnmarshalJSON(data []byte) error {
	name, err := shape.Match(data, shape.ScoreReview, shape.Certification, shape.Mention)
	if err != nil {
		return fmt.Errorf("Review: %w", err)
	}

	var out Review
	switch name {
	case shape.ScoreReview:
		out.Score = &ScoreReview{}
		err = json.Unmarshal(data, out.Score)
	case shape.Certification:
		out.Certification = &Certification{}
		err = json.Unmarshal(data, out.Certification)
	case shape.Mention:
		out.Mention = &Mention{}
		err = json.Unmarshal(data, out.Mention)
	}
	if err != nil {
		return fmt.Errorf("Review: %w", err)
	}
	*r = out
	return nil
}

func (r *Review) UnmarshalYAML(node *yaml.Node) error {
	data, err := nodeJSON(node)
	if err != nil {
		return fmt.Errorf("Review: %w", err)
	}
	return r.UnmarshalJSON(data)
}

// AboutScoreReview describes the scale a reviewer scores on.
type AboutScoreReview struct {
	Div int64 `json:"div" yaml:"div"`
	Max int64 `json:"max" yaml:"max"`
	Min int64 `json:"min" yaml:"min"`
}

// AboutCertification is a free-form description of a certification scheme.
type AboutCertification map[string]any

// AboutReview describes how a reviewer reviews: a score scale or a
// certification scheme, resolved in that order when decoding.
// A non-nil Certification, even empty, selects the certification shape.
type AboutReview struct {
	Score         *AboutScoreReview
	Certification AboutCertification
}

func (r AboutReview) value() (any, error) {
	switch {
	case r.Score != nil && r.Certification != nil:
		return nil, fmt.Errorf("AboutReview: %w", ErrAmbiguousUnion)
	case r.Score != nil:
		return r.Score, nil
	case r.Certification != nil:
		return map[string]any(r.Certification), nil
	}
	return nil, fmt.Errorf("AboutReview: %w", ErrEmptyUnion)
}

// Clone copies the score and the top level of the certification map.
func (r AboutReview) Clone() AboutReview {
	return AboutReview{Score: clonePtr(r.Score), Certification: maps.Clone(r.Certification)}
}

func (r AboutReview) MarshalJSON() ([]byte, error) {
	v, err := r.value()
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

func (r AboutReview) MarshalYAML() (any, error) {
	return r.value()
}

func (r *AboutReview) UnmarshalJSON(data []byte) error {
	name, err := shape.Match(data, shape.AboutScoreReview, shape.AboutCertification)
	if err != nil {
		return fmt.Errorf("AboutReview: %w", err)
	}

	var out AboutReview
	switch name {
	case shape.AboutScoreReview:
		out.Score = &AboutScoreReview{}
		err = json.Unmarshal(data, out.Score)
	case shape.AboutCertification:
		out.Certification = AboutCertification{}
		err = json.Unmarshal(data, &out.Certification)
	}
	if err != nil {
		return fmt.Errorf("AboutReview: %w", err)
	}
	*r = out
	return nil
}

func (r *AboutReview) UnmarshalYAML(node *yaml.Node) error {
	data, err := nodeJSON(node)
	if err != nil {
		return fmt.Errorf("AboutReview: %w", err)
	}
	return r.UnmarshalJSON(data)
}

// nodeJSON re-encodes a YAML node as JSON so untagged unions resolve
// through one code path regardless of the source format.
func nodeJSON(node *yaml.Node) ([]byte, error) {
	v, err := nodeValue(node)
	if err != nil {
		return nil, err
	}
	return json.Marshal(v)
}

// nodeValue walks a YAML node into plain values. Only int, float, bool and
// null scalars are typed; every other scalar keeps its source text, so a
// timestamp such as 2020-01-01 stays that string.
func nodeValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, nil
		}
		return nodeValue(node.Content[0])
	case yaml.AliasNode:
		return nodeValue(node.Alias)
	case yaml.MappingNode:
		out := make(map[string]any, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i]
			if key.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("line %d: mapping key is not a scalar", key.Line)
			}
			v, err := nodeValue(node.Content[i+1])
			if err != nil {
				return nil, err
			}
			out[key.Value] = v
		}
		return out, nil
	case yaml.SequenceNode:
		out := make([]any, 0, len(node.Content))
		for _, item := range node.Content {
			v, err := nodeValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int", "!!float", "!!bool", "!!null":
			var v any
			if err := node.Decode(&v); err != nil {
				return nil, err
			}
			return v, nil
		}
		return node.Value, nil
	}
	return nil, fmt.Errorf("line %d: unsupported YAML node", node.Line)
}
