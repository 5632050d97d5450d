package serializers

import (
	"github.com/tryfix/log"
)

type options struct {
	logger     log.Logger
	marshaller MarshallerFunc
}

// Option is a type to host NewSerializer and NewDeserializer configurations
type Option func(*options)

// WithLogger returns a Option to log through the given logger
func WithLogger(logger log.Logger) Option {
	return func(options *options) {
		options.logger = logger
	}
}

// WithMarshaller returns a Option to serialize with marshallers built by fn instead of the
// built-in marshaller of the serialization format. Required for Custom formats.
func WithMarshaller(fn MarshallerFunc) Option {
	return func(options *options) {
		options.marshaller = fn
	}
}

func applyOptions(opts []Option) *options {
	o := new(options)
	for _, opt := range opts {
		opt(o)
	}

	if o.logger == nil {
		o.logger = log.NewNoopLogger()
	}

	return o
}
