package schema

import (
	"errors"
	"fmt"
	"strings"
)

// MissingFieldsError reports required fields that a record does not carry.
// Nested records contribute dotted paths such as "shopping[1].shop".
type MissingFieldsError struct {
	Type   string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("%s: missing required fields: %s", e.Type, strings.Join(e.Fields, ", "))
}

// IsMissingFields reports whether err is or wraps a *MissingFieldsError.
func IsMissingFields(err error) bool {
	var mf *MissingFieldsError
	return errors.As(err, &mf)
}

type validator interface {
	Validate() error
}

// required collects missing fields for one record.
// An empty string counts as missing; a nil slice counts as missing.
// The first nested error of any other kind is kept and reported ahead of
// the missing fields.
type required struct {
	typ     string
	missing []string
	first   error
}

func requireFields(typ string) *required {
	return &required{typ: typ}
}

func (r *required) str(field, v string) *required {
	if v == "" {
		r.missing = append(r.missing, field)
	}
	return r
}

func (r *required) present(field string, ok bool) *required {
	if !ok {
		r.missing = append(r.missing, field)
	}
	return r
}

func (r *required) nested(field string, v validator) *required {
	err := v.Validate()
	var mf *MissingFieldsError
	switch {
	case err == nil:
	case errors.As(err, &mf):
		for _, f := range mf.Fields {
			r.missing = append(r.missing, field+"."+f)
		}
	case r.first == nil:
		r.first = fmt.Errorf("%s: %s: %w", r.typ, field, err)
	}
	return r
}

func (r *required) err() error {
	if r.first != nil {
		return r.first
	}
	if len(r.missing) == 0 {
		return nil
	}
	return &MissingFieldsError{Type: r.typ, Fields: r.missing}
}

func nestedEach[T validator](r *required, field string, items []T) {
	for i, item := range items {
		r.nested(fmt.Sprintf("%s[%d]", field, i), item)
	}
}
