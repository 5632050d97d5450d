package serializers

import (
	"sort"

	"github.com/tryfix/srserializers/codec"
)

// DecodeFunc decodes data that was encoded with a user supplied codec
type DecodeFunc func(data []byte) ([]byte, error)

// Decoder resolves the codec type read from a payload's encoding descriptor to the
// function that decodes it. A Decoder is never modified after construction and can be
// shared between goroutines.
type Decoder struct {
	decoders map[string]DecodeFunc
}

// NewDecoder returns a Decoder that knows the built-in codecs only
func NewDecoder() *Decoder {
	d := &Decoder{decoders: make(map[string]DecodeFunc)}
	for _, name := range codec.Names() {
		c, _ := codec.Lookup(name)
		d.decoders[name] = c.Decode
	}

	return d
}

// WithDecoder returns a new Decoder which also decodes codecType using fn. Earlier user
// decoders are kept, and a later function for the same codecType replaces the earlier one.
// Built-in codec types cannot be replaced.
func (d *Decoder) WithDecoder(codecType string, fn DecodeFunc) (*Decoder, error) {
	if codecType == `` {
		return nil, invalidConfig(`decoder codec type cannot be empty`)
	}

	if fn == nil {
		return nil, invalidConfig(`decoder function for [%s] cannot be nil`, codecType)
	}

	if codec.BuiltIn(codecType) {
		return nil, invalidConfig(`built-in codec type [%s] cannot be overridden`, codecType)
	}

	if len(codecType) > maxCodecTypeLen {
		return nil, invalidConfig(`codec type [%s] exceeds %d bytes`, codecType, maxCodecTypeLen)
	}

	decoders := make(map[string]DecodeFunc, len(d.decoders)+1)
	for k, v := range d.decoders {
		decoders[k] = v
	}

	decoders[codecType] = func(data []byte) ([]byte, error) {
		out, err := fn(data)
		if err != nil {
			return nil, &CodecFailureError{CodecType: codecType, Op: `decode`, Err: err}
		}

		return out, nil
	}

	return &Decoder{decoders: decoders}, nil
}

// Knows reports whether codecType can be decoded
func (d *Decoder) Knows(codecType string) bool {
	_, ok := d.decoders[codecType]
	return ok
}

// CodecTypes returns every decodable codec type in sorted order
func (d *Decoder) CodecTypes() []string {
	types := make([]string, 0, len(d.decoders))
	for k := range d.decoders {
		types = append(types, k)
	}
	sort.Strings(types)

	return types
}

// Decode decodes data encoded with codecType
func (d *Decoder) Decode(codecType string, data []byte) ([]byte, error) {
	fn, ok := d.decoders[codecType]
	if !ok {
		return nil, &UnknownCodecError{CodecType: codecType}
	}

	return fn(data)
}
