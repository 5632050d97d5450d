package serializers

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/tryfix/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type JSONUnmarshaler struct {
	data []byte
}

// JSONMarshaller serializes values as JSON. Schemas are registered for reference only
// and are not validated against.
type JSONMarshaller struct{}

func NewJSONMarshaller() Marshaller {
	return &JSONMarshaller{}
}

func (s *JSONMarshaller) Init() error {
	return nil
}

func (s *JSONMarshaller) NewUnmarshaler(data []byte) Unmarshaler {
	return &JSONUnmarshaler{data: data}
}

func (s *JSONUnmarshaler) Unmarshal(in interface{}) error {
	if err := json.Unmarshal(s.data, in); err != nil {
		return errors.WithPrevious(err, `json unmarshal failed`)
	}

	return nil
}

func (s *JSONMarshaller) Marshall(v interface{}) ([]byte, error) {
	byt, err := json.Marshal(v)
	if err != nil {
		return nil, errors.WithPrevious(err, `json marshal failed`)
	}

	return byt, nil
}
