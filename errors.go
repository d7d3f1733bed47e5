package substrate

import (
	"errors"
	"fmt"

	"github.com/roach88/substrate/schema"
)

// Structural errors, detected before or without a full decode.
var (
	// ErrUnsupportedExtension is returned for a path whose suffix is not
	// exactly .yaml, .json or .jsonl. No I/O is performed.
	ErrUnsupportedExtension = errors.New("unsupported file extension")

	// ErrNoMeta is returned when a document has no header.
	ErrNoMeta = errors.New("document has no meta header")

	// ErrNoAbout is returned when a document does not describe its author.
	ErrNoAbout = errors.New("document has no about record")

	// ErrNoData is returned when a two-section YAML document ends after
	// its header, or when a document to save carries no data.
	ErrNoData = errors.New("document has no data")

	// ErrVariantMismatch is returned on save when the header declares a
	// role other than the one the data carries.
	ErrVariantMismatch = schema.ErrVariantMismatch

	// ErrClosed is returned by Next after Close.
	ErrClosed = errors.New("stream closed")

	// ErrNotRestartable is returned when rewinding a line stream.
	ErrNotRestartable = errors.New("line stream cannot be restarted")
)

// ErrorKind is the layer an error originated in.
type ErrorKind string

const (
	// KindSubstrate marks structural violations (the sentinels above).
	KindSubstrate ErrorKind = "substrate"

	// KindIO marks filesystem failures.
	KindIO ErrorKind = "io"

	// KindYAML marks YAML decode or encode failures.
	KindYAML ErrorKind = "yaml"

	// KindJSON marks JSON decode or encode failures.
	KindJSON ErrorKind = "json"

	// KindJSONLines marks JSON Lines decode or encode failures.
	KindJSONLines ErrorKind = "jsonlines"
)

// ReadError reports a failure to read a document.
type ReadError struct {
	Kind ErrorKind
	Path string

	// Line is the 1-based line of a JSON Lines record, zero otherwise.
	Line int

	Err error
}

func (e *ReadError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("read %s:%d: %s: %v", e.Path, e.Line, e.Kind, e.Err)
	}
	return fmt.Sprintf("read %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

// SaveError reports a failure to write a document.
type SaveError struct {
	Kind ErrorKind
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save %s: %s: %v", e.Path, e.Kind, e.Err)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// IsDecodeError reports whether err is a read failure in one of the text
// formats, as opposed to a structural or filesystem failure.
func IsDecodeError(err error) bool {
	var re *ReadError
	if !errors.As(err, &re) {
		return false
	}
	switch re.Kind {
	case KindYAML, KindJSON, KindJSONLines:
		return true
	}
	return false
}

// IsEntryError reports whether err concerns a single JSON Lines record.
// A stream that returned an entry error can keep being read.
func IsEntryError(err error) bool {
	var re *ReadError
	return errors.As(err, &re) && re.Kind == KindJSONLines && re.Line > 2
}
