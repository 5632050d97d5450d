package serializers

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/tryfix/srserializers/codec"
)

func TestEncodingInfo_RoundTrip(t *testing.T) {
	info := EncodingInfo{SchemaID: 100, CodecType: codec.MimeSnappy}
	payload := []byte(`payload`)

	byt, err := info.Encode(payload)
	if err != nil {
		t.Fatal(err)
	}

	have, rest, err := ParseEncodingInfo(byt)
	if err != nil {
		t.Fatal(err)
	}

	if have != info {
		t.Errorf(`need %+v, have %+v`, info, have)
	}

	if !bytes.Equal(payload, rest) {
		t.Errorf(`need %s, have %s`, payload, rest)
	}
}

func TestEncodingInfo_EmptyPayload(t *testing.T) {
	byt, err := EncodingInfo{SchemaID: 1, CodecType: codec.None}.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}

	info, rest, err := ParseEncodingInfo(byt)
	if err != nil {
		t.Fatal(err)
	}

	if info.SchemaID != 1 || info.CodecType != codec.None || len(rest) != 0 {
		t.Errorf(`unexpected %+v %v`, info, rest)
	}
}

func TestEncodingInfo_TooLongCodecType(t *testing.T) {
	_, err := EncodingInfo{CodecType: strings.Repeat(`x`, 256)}.Encode(nil)
	if err == nil {
		t.Fatal(`need an error`)
	}
}

func TestEncodingInfo_SchemaIDOutOfRange(t *testing.T) {
	for _, id := range []int{-1, math.MaxUint32 + 1} {
		if _, err := (EncodingInfo{SchemaID: id, CodecType: codec.None}).Encode(nil); err == nil {
			t.Errorf(`need an error for schema id %d`, id)
		}
	}

	byt, err := EncodingInfo{SchemaID: math.MaxUint32, CodecType: codec.None}.Encode(nil)
	if err != nil {
		t.Fatal(err)
	}

	info, _, err := ParseEncodingInfo(byt)
	if err != nil {
		t.Fatal(err)
	}

	if info.SchemaID != math.MaxUint32 {
		t.Errorf(`need %d, have %d`, math.MaxUint32, info.SchemaID)
	}
}

func TestParseEncodingInfo_Invalid(t *testing.T) {
	tests := map[string][]byte{
		`empty`:       nil,
		`short`:       {0, 0, 0, 0, 1},
		`magic`:       {1, 0, 0, 0, 1, 0},
		`codec short`: {0, 0, 0, 0, 1, 4, 'n', 'o'},
	}

	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			if _, _, err := ParseEncodingInfo(data); err == nil {
				t.Error(`need an error`)
			}
		})
	}
}
