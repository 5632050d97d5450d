/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package codec

import (
	"fmt"
	"sort"
)

// Well-known codec types. The values travel inside every encoded payload so they must
// never change once released.
const (
	None       = `none`
	MimeGzip   = `application/x-gzip`
	MimeSnappy = `application/x-snappy-framed`
)

// Codec encodes serialized data before it is written and decodes it after it is read.
// Decode must accept everything Encode produces.
type Codec interface {
	// Name returns the codec type written into the encoding descriptor
	Name() string
	Encode(data []byte) ([]byte, error)
	Decode(data []byte) ([]byte, error)
}

// EncodeFunc and DecodeFunc are the plain function forms of a Codec
type (
	EncodeFunc func(data []byte) ([]byte, error)
	DecodeFunc func(data []byte) ([]byte, error)
)

type funcCodec struct {
	name   string
	encode EncodeFunc
	decode DecodeFunc
}

// New wraps a pair of functions as a Codec named name
func New(name string, encode EncodeFunc, decode DecodeFunc) Codec {
	return &funcCodec{
		name:   name,
		encode: encode,
		decode: decode,
	}
}

func (c *funcCodec) Name() string {
	return c.name
}

func (c *funcCodec) Encode(data []byte) ([]byte, error) {
	out, err := c.encode(data)
	if err != nil {
		return nil, &FailureError{CodecType: c.name, Op: `encode`, Err: err}
	}

	return out, nil
}

func (c *funcCodec) Decode(data []byte) ([]byte, error) {
	out, err := c.decode(data)
	if err != nil {
		return nil, &FailureError{CodecType: c.name, Op: `decode`, Err: err}
	}

	return out, nil
}

func (c *funcCodec) String() string {
	return c.name
}

// UnknownCodecError is returned when a codec type has no codec bound to it
type UnknownCodecError struct {
	CodecType string
}

func (e *UnknownCodecError) Error() string {
	return fmt.Sprintf(`codec: unknown codec type [%s]`, e.CodecType)
}

// FailureError wraps an error raised by a codec while encoding or decoding
type FailureError struct {
	CodecType string
	Op        string
	Err       error
}

func (e *FailureError) Error() string {
	return fmt.Sprintf(`codec: %s with [%s] failed due to %s`, e.Op, e.CodecType, e.Err)
}

func (e *FailureError) Unwrap() error {
	return e.Err
}

// builtIns is populated once at init and only read afterwards.
var builtIns = map[string]Codec{
	None:       noneCodec,
	MimeGzip:   gzipCodec,
	MimeSnappy: snappyCodec,
}

// NoneCodec returns the identity codec
func NoneCodec() Codec {
	return noneCodec
}

// Gzip returns the built-in gzip codec
func Gzip() Codec {
	return gzipCodec
}

// Snappy returns the built-in snappy codec. Payloads use the snappy framing format.
func Snappy() Codec {
	return snappyCodec
}

// Lookup returns the built-in codec registered under codecType
func Lookup(codecType string) (Codec, error) {
	c, ok := builtIns[codecType]
	if !ok {
		return nil, &UnknownCodecError{CodecType: codecType}
	}

	return c, nil
}

// BuiltIn reports whether codecType names one of the built-in codecs
func BuiltIn(codecType string) bool {
	_, ok := builtIns[codecType]
	return ok
}

// Names returns the built-in codec types in sorted order
func Names() []string {
	names := make([]string, 0, len(builtIns))
	for name := range builtIns {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}
