/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package serializers

import (
	"fmt"
	"sync"

	"github.com/tryfix/errors"
	"github.com/tryfix/log"
)

// Deserializer decodes events of the configured group. Writer schemas are fetched from the
// registry by the id in each event's encoding descriptor and cached.
type Deserializer struct {
	config          *SerializerConfig
	client          RegistryClient
	format          SerializationFormat
	unmarshalerFunc UnmarshalerFunc
	marshallers     map[int]Marshaller // schema id/marshaller
	mu              *sync.RWMutex
	options         *options
	logger          log.Logger
}

// NewDeserializer returns a Deserializer reading events of format. Decoded values are built by
// unmarshalerFunc, or decoded into their generic form when it is nil.
//
// When the config fails on codec mismatch and the registry tracks group codec types, every
// codec type used in the group must be known to the config's Decoder.
func NewDeserializer(config *SerializerConfig, format SerializationFormat, unmarshalerFunc UnmarshalerFunc, opts ...Option) (*Deserializer, error) {
	options := applyOptions(opts)

	if options.marshaller == nil && format != Avro && format != Protobuf && format != Json {
		return nil, invalidConfig(`serialization format [%s] needs a marshaller`, format)
	}

	client, err := resolveClient(config)
	if err != nil {
		return nil, err
	}

	if config.failOnCodecMismatch {
		if err := checkCodecTypes(client, config); err != nil {
			return nil, err
		}
	}

	return &Deserializer{
		config:          config,
		client:          client,
		format:          format,
		unmarshalerFunc: unmarshalerFunc,
		marshallers:     make(map[int]Marshaller),
		mu:              new(sync.RWMutex),
		options:         options,
		logger:          options.logger.NewLog(log.Prefixed(`Deserializer`)),
	}, nil
}

func checkCodecTypes(client RegistryClient, config *SerializerConfig) error {
	registrar, ok := client.(CodecRegistrar)
	if !ok {
		return nil
	}

	codecTypes, err := registrar.GetCodecTypes(config.groupID)
	if err != nil {
		return errors.WithPrevious(err, fmt.Sprintf(`cannot fetch codec types of group [%s]`, config.groupID))
	}

	for _, codecType := range codecTypes {
		if !config.decoder.Knows(codecType) {
			return &UnknownCodecError{CodecType: codecType}
		}
	}

	return nil
}

// Preload fetches and caches writer schemas of the group ahead of reading. version is a
// group version, VersionLatest or VersionAll.
func (d *Deserializer) Preload(version Version) error {
	versions := []int{int(version)}
	if version == VersionAll {
		all, err := d.client.GetSchemaVersions(d.config.groupID)
		if err != nil {
			return errors.WithPrevious(err, fmt.Sprintf(`cannot list versions of group [%s]`, d.config.groupID))
		}
		versions = all
	}

	for _, v := range versions {
		if err := d.preload(Version(v)); err != nil {
			return err
		}
	}

	return nil
}

func (d *Deserializer) preload(version Version) error {
	var id int
	var schema string
	if version == VersionLatest {
		latest, err := d.client.GetLatestSchema(d.config.groupID)
		if err != nil {
			return errors.WithPrevious(err, fmt.Sprintf(`cannot fetch group [%s] version [%s]`, d.config.groupID, version))
		}
		id, schema = latest.ID(), latest.Schema()
	} else {
		registered, err := d.client.GetSchemaByVersion(d.config.groupID, int(version))
		if err != nil {
			return errors.WithPrevious(err, fmt.Sprintf(`cannot fetch group [%s] version [%s]`, d.config.groupID, version))
		}
		id, schema = registered.ID(), registered.Schema()
	}

	_, err := d.store(id, schema)
	if err != nil {
		return err
	}

	d.logger.Debug(fmt.Sprintf(`schema [%d] of group [%s] version [%s] loaded`, id, d.config.groupID, version))

	return nil
}

// Deserialize decodes an event written by a Serializer
func (d *Deserializer) Deserialize(data []byte) (interface{}, error) {
	info, payload, err := ParseEncodingInfo(data)
	if err != nil {
		return nil, err
	}

	decoded, err := d.decode(info.CodecType, payload)
	if err != nil {
		return nil, err
	}

	m, err := d.marshaller(info.SchemaID)
	if err != nil {
		return nil, err
	}

	unmarshaler := m.NewUnmarshaler(decoded)
	if d.unmarshalerFunc == nil {
		var v interface{}
		if err := unmarshaler.Unmarshal(&v); err != nil {
			return nil, errors.WithPrevious(err, fmt.Sprintf(`data unmarshal error, schema [%d]`, info.SchemaID))
		}

		return v, nil
	}

	return d.unmarshalerFunc(unmarshaler)
}

func (d *Deserializer) decode(codecType string, payload []byte) ([]byte, error) {
	if d.config.decoder.Knows(codecType) {
		return d.config.decoder.Decode(codecType, payload)
	}

	if d.config.failOnCodecMismatch {
		return nil, &UnknownCodecError{CodecType: codecType}
	}

	d.logger.Warn(fmt.Sprintf(`unknown codec type [%s] in group [%s], reading data as it is`, codecType, d.config.groupID))

	return payload, nil
}

func (d *Deserializer) marshaller(schemaID int) (Marshaller, error) {
	d.mu.RLock()
	m, ok := d.marshallers[schemaID]
	d.mu.RUnlock()
	if ok {
		return m, nil
	}

	registered, err := d.client.GetSchema(schemaID)
	if err != nil {
		return nil, errors.WithPrevious(err, fmt.Sprintf(`schema id [%d] cannot be fetched`, schemaID))
	}

	return d.store(schemaID, registered.Schema())
}

func (d *Deserializer) store(schemaID int, schema string) (Marshaller, error) {
	m, err := newMarshaller(d.format, schema, d.options.marshaller)
	if err != nil {
		return nil, errors.WithPrevious(err, fmt.Sprintf(`schema id [%d] is not readable`, schemaID))
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if existing, ok := d.marshallers[schemaID]; ok {
		return existing, nil
	}
	d.marshallers[schemaID] = m

	return m, nil
}
