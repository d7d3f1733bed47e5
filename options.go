package substrate

import (
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"
)

// codec encodes and decodes the JSON and JSON Lines formats. It honors the
// json.Marshaler and encoding.TextMarshaler implementations of the schema.
var codec = jsoniter.ConfigCompatibleWithStandardLibrary

// Option configures reading and saving.
type Option func(*options)

type options struct {
	logger *zap.Logger
	sort   bool
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithSort normalizes a copy of the document before it is saved, so equal
// content always produces identical bytes. Readers ignore it.
func WithSort() Option {
	return func(o *options) {
		o.sort = true
	}
}
