package serializers

import (
	"reflect"
	"strings"
	"testing"

	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

func TestAvroMarshaller(t *testing.T) {
	m, err := newMarshaller(Avro, avroV1, nil)
	if err != nil {
		t.Fatal(err)
	}

	byt, err := m.Marshall(sample)
	if err != nil {
		t.Fatal(err)
	}

	v := SampleV1{}
	if err := m.NewUnmarshaler(byt).Unmarshal(&v); err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(sample, v) {
		t.Errorf(`need %v, have %v`, sample, v)
	}
}

func TestAvroMarshaller_InvalidSchema(t *testing.T) {
	if _, err := newMarshaller(Avro, `{"type": "unknown"}`, nil); err == nil {
		t.Error(`need an error for an invalid schema`)
	}
}

func TestAvroMarshaller_ErrorNamesSchema(t *testing.T) {
	m, err := newMarshaller(Avro, avroV1, nil)
	if err != nil {
		t.Fatal(err)
	}

	_, err = m.Marshall(`not a record`)
	if err == nil || !strings.Contains(err.Error(), `com.mycorp.mynamespace.SampleRecord`) {
		t.Errorf(`need an error naming the schema, have %v`, err)
	}

	v := SampleV1{}
	err = m.NewUnmarshaler([]byte{0xff}).Unmarshal(&v)
	if err == nil || !strings.Contains(err.Error(), `com.mycorp.mynamespace.SampleRecord`) {
		t.Errorf(`need an error naming the schema, have %v`, err)
	}
}

func TestVersion_String(t *testing.T) {
	tests := map[Version]string{
		VersionLatest: `Latest`,
		VersionAll:    `All`,
		3:             `3`,
	}

	for v, need := range tests {
		if have := v.String(); have != need {
			t.Errorf(`need %s, have %s`, need, have)
		}
	}
}

func TestProtoMarshaller(t *testing.T) {
	m, err := newMarshaller(Protobuf, ``, nil)
	if err != nil {
		t.Fatal(err)
	}

	in := wrapperspb.String(`text`)
	byt, err := m.Marshall(in)
	if err != nil {
		t.Fatal(err)
	}

	out := &wrapperspb.StringValue{}
	if err := m.NewUnmarshaler(byt).Unmarshal(out); err != nil {
		t.Fatal(err)
	}

	if !proto.Equal(in, out) {
		t.Errorf(`need %v, have %v`, in, out)
	}

	var generic interface{}
	if err := m.NewUnmarshaler(byt).Unmarshal(&generic); err != nil {
		t.Fatal(err)
	}

	if msg, ok := generic.(proto.Message); !ok || !proto.Equal(in, msg) {
		t.Errorf(`need %v, have %v`, in, generic)
	}

	if _, err := m.Marshall(sample); err == nil {
		t.Error(`need an error for a non proto value`)
	}
}

func TestJSONMarshaller(t *testing.T) {
	m, err := newMarshaller(Json, `{}`, nil)
	if err != nil {
		t.Fatal(err)
	}

	byt, err := m.Marshall(map[string]interface{}{`field3`: `text`})
	if err != nil {
		t.Fatal(err)
	}

	var v map[string]interface{}
	if err := m.NewUnmarshaler(byt).Unmarshal(&v); err != nil {
		t.Fatal(err)
	}

	if v[`field3`] != `text` {
		t.Errorf(`need text, have %v`, v[`field3`])
	}
}

func TestNewMarshaller_AnyFormat(t *testing.T) {
	_, err := newMarshaller(Any, avroV1, nil)
	assertInvalidConfig(t, err)
}

func TestSerializationFormat_SchemaType(t *testing.T) {
	tests := map[SerializationFormat]string{
		Avro:     `AVRO`,
		Protobuf: `PROTOBUF`,
		Json:     `JSON`,
		Custom:   `AVRO`,
	}

	for format, need := range tests {
		if have := string(format.SchemaType()); have != need {
			t.Errorf(`%s: need %s, have %s`, format, need, have)
		}
	}
}

func TestCompatibility_Level(t *testing.T) {
	tests := map[string]Compatibility{
		`FULL_TRANSITIVE`:                  FullTransitive(),
		`BACKWARD`:                         Backward(),
		`NONE`:                             AllowAny(),
		`BACKWARD_TILL(2)_FORWARD_TILL(5)`: BackwardAndForwardTill(2, 5),
	}

	for need, c := range tests {
		if have := c.Level(); have != need {
			t.Errorf(`need %s, have %s`, need, have)
		}
	}
}
