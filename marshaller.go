package serializers

import (
	"fmt"

	"github.com/tryfix/errors"
)

// Marshaller turns values into the serialized form of one schema and back
type Marshaller interface {
	Init() error
	Marshall(v interface{}) ([]byte, error)
	NewUnmarshaler(data []byte) Unmarshaler
}

// Unmarshaler decodes a single serialized payload into in
type Unmarshaler interface {
	Unmarshal(in interface{}) error
}

// UnmarshalerFunc builds the application value of a payload using the Unmarshaler
// bound to the payload's writer schema
type UnmarshalerFunc func(unmarshaler Unmarshaler) (v interface{}, err error)

// MarshallerFunc returns a Marshaller for a schema registered in the group
type MarshallerFunc func(schema string) Marshaller

// newMarshaller returns an initialised Marshaller of format for schema
func newMarshaller(format SerializationFormat, schema string, custom MarshallerFunc) (Marshaller, error) {
	var m Marshaller
	switch {
	case custom != nil:
		m = custom(schema)
	case format == Avro:
		m = NewAvroMarshaller(schema)
	case format == Protobuf:
		m = NewProtoMarshaller()
	case format == Json:
		m = NewJSONMarshaller()
	default:
		return nil, invalidConfig(`serialization format [%s] needs a marshaller`, format)
	}

	if err := m.Init(); err != nil {
		return nil, errors.WithPrevious(err, fmt.Sprintf(`%s marshaller init failed`, format))
	}

	return m, nil
}
