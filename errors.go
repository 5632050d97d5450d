package serializers

import (
	"fmt"

	"github.com/tryfix/srserializers/codec"
)

// InvalidConfigError is returned when a SerializerConfig cannot be built from the supplied values
type InvalidConfigError struct {
	Reason string
}

func (e *InvalidConfigError) Error() string {
	return fmt.Sprintf(`serializers: invalid config: %s`, e.Reason)
}

func invalidConfig(format string, args ...interface{}) error {
	return &InvalidConfigError{Reason: fmt.Sprintf(format, args...)}
}

type (
	// UnknownCodecError is returned when a payload names a codec type the decoder cannot handle
	UnknownCodecError = codec.UnknownCodecError
	// CodecFailureError wraps a failure of an encode or decode function
	CodecFailureError = codec.FailureError
)
