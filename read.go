package substrate

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"iter"
	"os"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/roach88/substrate/schema"
)

// Stream yields the entries of one document file.
//
// YAML and JSON documents are decoded whole when the stream is opened and
// their entries are replayed from memory. JSON Lines documents are decoded
// one line per call to Next, holding the file open until the last line has
// been read or Close is called.
type Stream struct {
	path   string
	format Format
	meta   schema.Meta
	data   schema.Data
	log    *zap.Logger

	// whole-document state
	entries []schema.Entry
	pos     int

	// line state
	file   *os.File
	reader *bufio.Reader
	line   int
	done   bool
	err    error

	closed bool
}

// IterFile opens a document and returns a stream over its entries.
// The format is chosen by the file suffix alone.
func IterFile(path string, opts ...Option) (*Stream, error) {
	o := newOptions(opts)

	format, err := DetectFormat(path)
	if err != nil {
		return nil, &ReadError{Kind: KindSubstrate, Path: path, Err: err}
	}

	log := o.logger.With(zap.String("path", path), zap.Stringer("format", format))
	log.Debug("opening document")

	switch format {
	case FormatYAML:
		return openYAML(path, log)
	case FormatJSON:
		return openJSON(path, log)
	default:
		return openLines(path, log)
	}
}

// ReadRoot reads a whole document into memory. For JSON Lines the role
// collections are rebuilt from the entries in file order.
func ReadRoot(path string, opts ...Option) (*schema.Root, error) {
	s, err := IterFile(path, opts...)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if s.format != FormatJSONLines {
		return &schema.Root{Meta: s.meta, Data: s.data}, nil
	}

	for entry, err := range s.All() {
		if err != nil {
			return nil, err
		}
		if err := s.data.Append(entry); err != nil {
			return nil, &ReadError{Kind: KindJSONLines, Path: s.path, Line: s.line, Err: err}
		}
	}
	return &schema.Root{Meta: s.meta, Data: s.data}, nil
}

// Meta is the document header.
func (s *Stream) Meta() schema.Meta { return s.meta }

// Variant is the role declared by the header.
func (s *Stream) Variant() schema.ProviderVariant { return s.meta.Variant }

// About is the document author's about record: a schema.AboutCataloger,
// schema.AboutProducer or schema.AboutReviewer.
func (s *Stream) About() any { return s.data.About() }

// Path is the file the stream reads.
func (s *Stream) Path() string { return s.path }

// Format is the encoding of the file.
func (s *Stream) Format() Format { return s.format }

// Next returns the next entry, or io.EOF after the last one.
//
// A JSON Lines record that fails to decode is reported as an entry error
// (see IsEntryError) and the following call moves on to the next line.
// A filesystem error is returned again by every later call.
func (s *Stream) Next() (schema.Entry, error) {
	if s.closed {
		return nil, ErrClosed
	}
	if s.format != FormatJSONLines {
		if s.pos >= len(s.entries) {
			return nil, io.EOF
		}
		entry := s.entries[s.pos]
		s.pos++
		return entry, nil
	}

	if s.err != nil {
		return nil, s.err
	}
	if s.done {
		return nil, io.EOF
	}

	line, ok, err := s.readLine()
	if err != nil {
		s.err = &ReadError{Kind: KindIO, Path: s.path, Line: s.line, Err: err}
		s.release()
		return nil, s.err
	}
	if !ok {
		s.done = true
		s.log.Debug("line stream exhausted", zap.Int("lines", s.line))
		s.release()
		return nil, io.EOF
	}

	entry, err := decodeEntry(s.meta.Variant, line)
	if err != nil {
		return nil, &ReadError{Kind: KindJSONLines, Path: s.path, Line: s.line, Err: err}
	}
	return entry, nil
}

// All ranges over the remaining entries. Entry errors are yielded and the
// walk continues; any other error is yielded once and ends it. The stream
// is closed when the loop ends, however it ends.
func (s *Stream) All() iter.Seq2[schema.Entry, error] {
	return func(yield func(schema.Entry, error) bool) {
		defer s.Close()
		for {
			entry, err := s.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(entry, err) {
				return
			}
			if err != nil && !IsEntryError(err) {
				return
			}
		}
	}
}

// Rewind restarts a whole-document stream from its first entry.
// Line streams are single-pass and return ErrNotRestartable.
func (s *Stream) Rewind() error {
	if s.format == FormatJSONLines {
		return ErrNotRestartable
	}
	if s.closed {
		return ErrClosed
	}
	s.pos = 0
	return nil
}

// Close releases the file handle. It is safe to call more than once.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.release()
}

func (s *Stream) release() error {
	if s.file == nil {
		return nil
	}
	err := s.file.Close()
	s.file = nil
	s.reader = nil
	return err
}

// readLine reads one line without its terminator. ok is false at the end
// of the file.
func (s *Stream) readLine() (line []byte, ok bool, err error) {
	line, err = s.reader.ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, false, err
	}
	if len(line) == 0 && err != nil {
		return nil, false, nil
	}
	s.line++
	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	return line, true, nil
}

func openLines(path string, log *zap.Logger) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ReadError{Kind: KindIO, Path: path, Err: err}
	}
	s := &Stream{
		path:   path,
		format: FormatJSONLines,
		log:    log,
		file:   f,
		reader: bufio.NewReader(f),
	}

	fail := func(kind ErrorKind, err error) (*Stream, error) {
		line := s.line
		if kind == KindSubstrate {
			line = 0
		}
		s.Close()
		return nil, &ReadError{Kind: kind, Path: path, Line: line, Err: err}
	}

	header, ok, err := s.readLine()
	if err != nil {
		return fail(KindIO, err)
	}
	if !ok {
		return fail(KindSubstrate, ErrNoMeta)
	}
	if err := codec.Unmarshal(header, &s.meta); err != nil {
		return fail(KindJSONLines, err)
	}
	if err := s.meta.Validate(); err != nil {
		return fail(KindJSONLines, err)
	}

	about, ok, err := s.readLine()
	if err != nil {
		return fail(KindIO, err)
	}
	if !ok {
		return fail(KindSubstrate, ErrNoAbout)
	}
	if s.data, err = decodeAbout(s.meta.Variant, about); err != nil {
		return fail(KindJSONLines, err)
	}

	log.Debug("opened line stream", zap.Stringer("variant", s.meta.Variant))
	return s, nil
}

func decodeAbout(variant schema.ProviderVariant, line []byte) (schema.Data, error) {
	switch variant {
	case schema.ProviderCataloger:
		var about schema.AboutCataloger
		if err := decodeValid(line, &about); err != nil {
			return nil, err
		}
		return schema.NewCatalogerData(about), nil
	case schema.ProviderProducer:
		var about schema.AboutProducer
		if err := decodeValid(line, &about); err != nil {
			return nil, err
		}
		return schema.NewProducerData(about), nil
	case schema.ProviderReviewer:
		var about schema.AboutReviewer
		if err := decodeValid(line, &about); err != nil {
			return nil, err
		}
		return schema.NewReviewerData(about), nil
	}
	return nil, &schema.InvalidValueError{Type: "ProviderVariant", Value: string(variant)}
}

func decodeEntry(variant schema.ProviderVariant, line []byte) (schema.Entry, error) {
	switch variant {
	case schema.ProviderCataloger:
		var entry schema.CatalogEntry
		if err := decodeValid(line, &entry); err != nil {
			return nil, err
		}
		return entry, nil
	case schema.ProviderProducer:
		var entry schema.ProducerEntry
		if err := decodeValid(line, &entry); err != nil {
			return nil, err
		}
		return entry, nil
	case schema.ProviderReviewer:
		var entry schema.ReviewEntry
		if err := decodeValid(line, &entry); err != nil {
			return nil, err
		}
		return entry, nil
	}
	return nil, &schema.InvalidValueError{Type: "ProviderVariant", Value: string(variant)}
}

type validator interface {
	Validate() error
}

// decodeValid decodes into v, a pointer, then checks required fields.
// Values that decode themselves bypass the codec, which flattens the
// errors they return to text.
func decodeValid(data []byte, v validator) error {
	var err error
	if u, ok := v.(json.Unmarshaler); ok {
		err = u.UnmarshalJSON(data)
	} else {
		err = codec.Unmarshal(data, v)
	}
	if err != nil {
		return err
	}
	return v.Validate()
}

// newData returns an empty body for the role, ready to be decoded into.
func newData(variant schema.ProviderVariant) (schema.Data, error) {
	switch variant {
	case schema.ProviderCataloger:
		return &schema.CatalogerData{}, nil
	case schema.ProviderProducer:
		return &schema.ProducerData{}, nil
	case schema.ProviderReviewer:
		return &schema.ReviewerData{}, nil
	}
	return nil, &schema.InvalidValueError{Type: "ProviderVariant", Value: string(variant)}
}

func openWhole(path string, format Format, meta schema.Meta, data schema.Data, log *zap.Logger) *Stream {
	entries := data.Entries()
	log.Debug("decoded document",
		zap.Stringer("variant", meta.Variant),
		zap.Int("entries", len(entries)))
	return &Stream{
		path:    path,
		format:  format,
		meta:    meta,
		data:    data,
		log:     log,
		entries: entries,
	}
}

func openJSON(path string, log *zap.Logger) (*Stream, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Kind: KindIO, Path: path, Err: err}
	}
	fail := func(kind ErrorKind, err error) (*Stream, error) {
		return nil, &ReadError{Kind: kind, Path: path, Err: err}
	}

	var fields map[string]jsoniter.RawMessage
	if err := codec.Unmarshal(raw, &fields); err != nil {
		return fail(KindJSON, err)
	}
	header, ok := fields["meta"]
	if !ok {
		return fail(KindSubstrate, ErrNoMeta)
	}

	var meta schema.Meta
	if err := decodeValid(header, &meta); err != nil {
		return fail(KindJSON, err)
	}
	if _, ok := fields[meta.Variant.AboutKey()]; !ok {
		return fail(KindSubstrate, ErrNoAbout)
	}

	data, err := newData(meta.Variant)
	if err != nil {
		return fail(KindJSON, err)
	}
	if err := codec.Unmarshal(raw, data); err != nil {
		return fail(KindJSON, err)
	}
	if err := data.Validate(); err != nil {
		return fail(KindJSON, err)
	}
	return openWhole(path, FormatJSON, meta, data, log), nil
}

func openYAML(path string, log *zap.Logger) (*Stream, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Kind: KindIO, Path: path, Err: err}
	}
	fail := func(kind ErrorKind, err error) (*Stream, error) {
		return nil, &ReadError{Kind: kind, Path: path, Err: err}
	}

	dec := yaml.NewDecoder(bytes.NewReader(raw))

	var first yaml.Node
	if err := dec.Decode(&first); err != nil {
		if errors.Is(err, io.EOF) {
			return fail(KindSubstrate, ErrNoMeta)
		}
		return fail(KindYAML, err)
	}

	var meta schema.Meta
	body := &first
	if mappingHasKey(&first, "meta") {
		var merged struct {
			Meta schema.Meta `yaml:"meta"`
		}
		if err := first.Decode(&merged); err != nil {
			return fail(KindYAML, err)
		}
		meta = merged.Meta
	} else {
		if err := first.Decode(&meta); err != nil {
			return fail(KindYAML, err)
		}
		var second yaml.Node
		if err := dec.Decode(&second); err != nil {
			if errors.Is(err, io.EOF) {
				return fail(KindSubstrate, ErrNoData)
			}
			return fail(KindYAML, err)
		}
		body = &second
	}
	if err := meta.Validate(); err != nil {
		return fail(KindYAML, err)
	}
	if !mappingHasKey(body, meta.Variant.AboutKey()) {
		return fail(KindSubstrate, ErrNoAbout)
	}

	data, err := newData(meta.Variant)
	if err != nil {
		return fail(KindYAML, err)
	}
	if err := body.Decode(data); err != nil {
		return fail(KindYAML, err)
	}
	if err := data.Validate(); err != nil {
		return fail(KindYAML, err)
	}
	return openWhole(path, FormatYAML, meta, data, log), nil
}

// mappingHasKey reports whether a document's top-level mapping has key.
func mappingHasKey(node *yaml.Node, key string) bool {
	if node.Kind == yaml.DocumentNode && len(node.Content) > 0 {
		node = node.Content[0]
	}
	if node.Kind != yaml.MappingNode {
		return false
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return true
		}
	}
	return false
}
