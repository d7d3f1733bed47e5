package substrate

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/roach88/substrate/schema"
)

// Save writes a whole document to path in the format its suffix selects.
// The file is created or truncated. Nothing is written when encoding fails.
func Save(path string, root *schema.Root, opts ...Option) error {
	o := newOptions(opts)

	format, err := DetectFormat(path)
	if err != nil {
		return &SaveError{Kind: KindSubstrate, Path: path, Err: err}
	}
	if root == nil || root.Data == nil {
		return &SaveError{Kind: KindSubstrate, Path: path, Err: ErrNoData}
	}
	if root.Meta.Variant != root.Data.Variant() {
		return &SaveError{
			Kind: KindSubstrate,
			Path: path,
			Err:  fmt.Errorf("%w: meta declares %q, data is %q", ErrVariantMismatch, root.Meta.Variant, root.Data.Variant()),
		}
	}
	if o.sort {
		root = root.Clone()
		root.Sort()
	}

	var buf bytes.Buffer
	var kind ErrorKind
	switch format {
	case FormatYAML:
		kind, err = KindYAML, encodeYAML(&buf, root)
	case FormatJSON:
		kind, err = KindJSON, encodeJSON(&buf, root)
	default:
		kind, err = KindJSONLines, encodeLines(&buf, root)
	}
	if err != nil {
		return &SaveError{Kind: kind, Path: path, Err: err}
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &SaveError{Kind: KindIO, Path: path, Err: err}
	}
	o.logger.Debug("saved document",
		zap.String("path", path),
		zap.Stringer("format", format),
		zap.Stringer("variant", root.Meta.Variant),
		zap.Int("bytes", buf.Len()))
	return nil
}

// SaveCataloger writes a cataloger document.
func SaveCataloger(path string, meta schema.Meta, data *schema.CatalogerData, opts ...Option) error {
	if data == nil {
		return &SaveError{Kind: KindSubstrate, Path: path, Err: ErrNoData}
	}
	return Save(path, &schema.Root{Meta: meta, Data: data}, opts...)
}

// SaveProducer writes a producer document.
func SaveProducer(path string, meta schema.Meta, data *schema.ProducerData, opts ...Option) error {
	if data == nil {
		return &SaveError{Kind: KindSubstrate, Path: path, Err: ErrNoData}
	}
	return Save(path, &schema.Root{Meta: meta, Data: data}, opts...)
}

// SaveReviewer writes a reviewer document.
func SaveReviewer(path string, meta schema.Meta, data *schema.ReviewerData, opts ...Option) error {
	if data == nil {
		return &SaveError{Kind: KindSubstrate, Path: path, Err: ErrNoData}
	}
	return Save(path, &schema.Root{Meta: meta, Data: data}, opts...)
}

// encodeYAML writes the header and the body as two documents.
func encodeYAML(buf *bytes.Buffer, root *schema.Root) error {
	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(root.Meta); err != nil {
		return err
	}
	if err := enc.Encode(root.Data); err != nil {
		return err
	}
	return enc.Close()
}

// encodeJSON writes one merged root object indented by two spaces.
func encodeJSON(buf *bytes.Buffer, root *schema.Root) error {
	body, err := codec.Marshal(root)
	if err != nil {
		return err
	}
	if err := json.Indent(buf, body, "", "  "); err != nil {
		return err
	}
	buf.WriteByte('\n')
	return nil
}

// encodeLines writes the header, the about record and then one tagged
// entry per line.
func encodeLines(buf *bytes.Buffer, root *schema.Root) error {
	if err := writeLine(buf, root.Meta); err != nil {
		return err
	}
	if err := writeLine(buf, root.Data.About()); err != nil {
		return err
	}
	for _, entry := range root.Data.Entries() {
		if err := writeLine(buf, entry); err != nil {
			return fmt.Errorf("%s %q: %w", entry.Variant(), entry.EntryID(), err)
		}
	}
	return nil
}

func writeLine(buf *bytes.Buffer, v any) error {
	line, err := codec.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(line)
	buf.WriteByte('\n')
	return nil
}
