package substrate

import (
	"fmt"
	"path/filepath"
)

// Format is the physical encoding of a document file.
type Format int

const (
	// FormatYAML is a YAML file holding either a header document followed
	// by a data document, or one merged root mapping.
	FormatYAML Format = iota + 1

	// FormatJSON is a JSON file holding one merged root object.
	FormatJSON

	// FormatJSONLines is a JSON Lines file: header, about record, then one
	// tagged entry per line.
	FormatJSONLines
)

func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	case FormatJSONLines:
		return "jsonl"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// Extension is the file suffix selecting the format, with its dot.
func (f Format) Extension() string {
	return "." + f.String()
}

// DetectFormat selects the format from the literal, case-sensitive file
// suffix. It never touches the filesystem.
func DetectFormat(path string) (Format, error) {
	switch filepath.Ext(path) {
	case ".yaml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	case ".jsonl":
		return FormatJSONLines, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnsupportedExtension, filepath.Ext(path))
}
