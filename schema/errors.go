package schema

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyUnion is returned when encoding a union value that holds no shape.
	ErrEmptyUnion = errors.New("union holds no shape")

	// ErrAmbiguousUnion is returned when encoding a union value that holds
	// more than one shape.
	ErrAmbiguousUnion = errors.New("union holds more than one shape")

	// ErrUnknownEntryType is returned when an entry's "type" tag is missing
	// or names a payload the document role does not carry.
	ErrUnknownEntryType = errors.New("unknown entry type")

	// ErrVariantMismatch is returned when a header declares a role other
	// than the one its body carries.
	ErrVariantMismatch = errors.New("meta variant does not match data")

	// ErrReviewConflict is returned when two records of the same entity carry
	// reviews that are not identical.
	ErrReviewConflict = errors.New("cannot merge non-identical reviews")
)

// MergeError reports a merge that cannot combine two records.
type MergeError struct {
	Type  string
	ID    string
	Field string
	Err   error
}

func (e *MergeError) Error() string {
	return fmt.Sprintf("merge %s %q: %s: %v", e.Type, e.ID, e.Field, e.Err)
}

func (e *MergeError) Unwrap() error {
	return e.Err
}

// IsReviewConflict reports whether err is or wraps ErrReviewConflict.
func IsReviewConflict(err error) bool {
	return errors.Is(err, ErrReviewConflict)
}
