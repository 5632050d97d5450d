/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package serializers

import (
	"fmt"

	"github.com/hamba/avro/v2"
	"github.com/tryfix/errors"
)

// AvroMarshaller writes and reads events with a single Avro schema
type AvroMarshaller struct {
	schema     string
	name       string
	avroSchema avro.Schema
}

func NewAvroMarshaller(schema string) *AvroMarshaller {
	return &AvroMarshaller{
		schema: schema,
	}
}

func (m *AvroMarshaller) Init() error {
	schema, err := parseAvro(m.schema)
	if err != nil {
		return err
	}

	m.avroSchema = schema
	m.name = avroName(schema)

	return nil
}

func (m *AvroMarshaller) Marshall(data interface{}) ([]byte, error) {
	byt, err := avro.Marshal(m.avroSchema, data)
	if err != nil {
		return nil, errors.WithPrevious(err, fmt.Sprintf(`cannot write %T with avro schema [%s]`, data, m.name))
	}

	return byt, nil
}

func (m *AvroMarshaller) NewUnmarshaler(data []byte) Unmarshaler {
	return &avroUnmarshaler{
		marshaller: m,
		data:       data,
	}
}

type avroUnmarshaler struct {
	marshaller *AvroMarshaller
	data       []byte
}

// Unmarshal decodes into in. A *interface{} receives the generic form of the record.
func (u *avroUnmarshaler) Unmarshal(in interface{}) error {
	if err := avro.Unmarshal(u.marshaller.avroSchema, u.data, in); err != nil {
		return errors.WithPrevious(err, fmt.Sprintf(`cannot read %T with avro schema [%s]`, in, u.marshaller.name))
	}

	return nil
}

// parseAvro parses schema on its own cache so that registry schemas reusing a record name
// with different fields do not resolve to each other
func parseAvro(schema string) (avro.Schema, error) {
	s, err := avro.ParseWithCache(schema, ``, &avro.SchemaCache{})
	if err != nil {
		return nil, errors.WithPrevious(err, `avro schema parsing error`)
	}

	return s, nil
}

// avroName is the full name of named schemas and the type of the others
func avroName(schema avro.Schema) string {
	if named, ok := schema.(avro.NamedSchema); ok {
		return named.FullName()
	}

	return string(schema.Type())
}

func avroFullName(schema string) (string, error) {
	s, err := parseAvro(schema)
	if err != nil {
		return ``, err
	}

	return avroName(s), nil
}

func avroFingerprint(schema string) ([32]byte, error) {
	s, err := parseAvro(schema)
	if err != nil {
		return [32]byte{}, err
	}

	return s.Fingerprint(), nil
}
