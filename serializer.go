/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package serializers

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tryfix/errors"
	"github.com/tryfix/log"
)

// SchemaInfo is the schema a Serializer writes events with
type SchemaInfo struct {
	Format SerializationFormat
	Schema string
}

// Serializer serializes events with a single schema of the configured group and encodes
// them with the configured codec
type Serializer struct {
	config     *SerializerConfig
	encoding   EncodingInfo
	marshaller Marshaller
	logger     log.Logger
}

// NewSerializer prepares the group, codec and schema in the registry as config asks for and
// returns a Serializer writing with schema. Configuration errors are reported before anything
// is written to the registry.
func NewSerializer(config *SerializerConfig, schema SchemaInfo, opts ...Option) (*Serializer, error) {
	options := applyOptions(opts)
	logger := options.logger.NewLog(log.Prefixed(`Serializer`))

	m, err := newMarshaller(schema.Format, schema.Schema, options.marshaller)
	if err != nil {
		return nil, err
	}

	client, err := resolveClient(config)
	if err != nil {
		return nil, err
	}

	exists, err := prepareGroup(client, config, schema)
	if err != nil {
		return nil, err
	}

	if config.createGroup && !exists {
		if err := createGroup(client, config, logger); err != nil {
			return nil, err
		}
	}

	if config.registerCodec {
		if err := registerCodec(client, config, logger); err != nil {
			return nil, err
		}
	}

	id, err := schemaID(client, config, schema)
	if err != nil {
		return nil, err
	}

	logger.Info(fmt.Sprintf(`serializer for group [%s] ready with schema [%d] and codec [%s]`,
		config.groupID, id, config.codec.Name()))

	return &Serializer{
		config:     config,
		encoding:   EncodingInfo{SchemaID: id, CodecType: config.codec.Name()},
		marshaller: m,
		logger:     logger,
	}, nil
}

// EncodingInfo returns the descriptor written in front of every event
func (s *Serializer) EncodingInfo() EncodingInfo {
	return s.encoding
}

// Serialize marshals v, encodes it with the configured codec and prepends the encoding descriptor.
// Codec failures are returned as they are.
func (s *Serializer) Serialize(v interface{}) ([]byte, error) {
	payload, err := s.marshaller.Marshall(v)
	if err != nil {
		return nil, errors.WithPrevious(err, fmt.Sprintf(`serialization failed for group [%s]`, s.config.groupID))
	}

	encoded, err := s.config.codec.Encode(payload)
	if err != nil {
		return nil, err
	}

	return s.encoding.Encode(encoded)
}

func resolveClient(config *SerializerConfig) (RegistryClient, error) {
	if client, ok := config.registryConfigOrClient.Right(); ok {
		return client, nil
	}

	cfg, ok := config.registryConfigOrClient.Left()
	if !ok {
		return nil, invalidConfig(`either registry client or config needs to be supplied`)
	}

	return cfg.NewClient()
}

func groupExists(client RegistryClient, group string) bool {
	versions, err := client.GetSchemaVersions(group)
	return err == nil && len(versions) > 0
}

// prepareGroup checks the group against the creation policy without changing the registry
// and reports whether the group already exists
func prepareGroup(client RegistryClient, config *SerializerConfig, schema SchemaInfo) (bool, error) {
	exists := groupExists(client, config.groupID)

	if !config.createGroup {
		if !exists {
			return false, errors.New(fmt.Sprintf(`group [%s] does not exist`, config.groupID))
		}

		return true, nil
	}

	props := config.groupProperties
	if props.SerializationFormat != Any && props.SerializationFormat != schema.Format {
		return false, invalidConfig(`group [%s] is created for [%s] but the schema is [%s]`,
			config.groupID, props.SerializationFormat, schema.Format)
	}

	if _, ok := props.Compatibility.compatibilityLevel(); !ok {
		return false, invalidConfig(`compatibility [%s] is not supported by the registry`, props.Compatibility.Level())
	}

	if exists && !props.AllowMultipleTypes && schema.Format == Avro {
		if err := checkSingleType(client, config.groupID, schema.Schema); err != nil {
			return false, err
		}
	}

	return exists, nil
}

// createGroup applies the group properties. A registry group comes into existence with its
// first schema, which is registered afterwards.
func createGroup(client RegistryClient, config *SerializerConfig, logger log.Logger) error {
	level, _ := config.groupProperties.Compatibility.compatibilityLevel()
	if _, err := client.ChangeSubjectCompatibilityLevel(config.groupID, level); err != nil {
		return errors.WithPrevious(err, fmt.Sprintf(`cannot set compatibility [%s] of group [%s]`, level, config.groupID))
	}

	logger.Info(fmt.Sprintf(`group [%s] created with %s compatibility`, config.groupID, level))

	return nil
}

// checkSingleType fails when schema names another record type than the group's versions
func checkSingleType(client RegistryClient, group string, schema string) error {
	name, err := avroFullName(schema)
	if err != nil {
		return err
	}

	versions, err := client.GetSchemaVersions(group)
	if err != nil {
		return errors.WithPrevious(err, fmt.Sprintf(`cannot list versions of group [%s]`, group))
	}

	for _, v := range versions {
		registered, err := client.GetSchemaByVersion(group, v)
		if err != nil {
			return errors.WithPrevious(err, fmt.Sprintf(`cannot fetch group [%s] version [%s]`, group, Version(v)))
		}

		existing, err := avroFullName(registered.Schema())
		if err != nil {
			return err
		}

		if existing != name {
			return invalidConfig(`group [%s] does not allow multiple types, [%s] is not [%s]`, group, name, existing)
		}
	}

	return nil
}

func registerCodec(client RegistryClient, config *SerializerConfig, logger log.Logger) error {
	registrar, ok := client.(CodecRegistrar)
	if !ok {
		logger.Warn(fmt.Sprintf(`registry client does not track codec types, [%s] not registered for group [%s]`,
			config.codec.Name(), config.groupID))
		return nil
	}

	if err := registrar.AddCodecType(config.groupID, config.codec.Name()); err != nil {
		return errors.WithPrevious(err, fmt.Sprintf(`codec type [%s] registration failed for group [%s]`,
			config.codec.Name(), config.groupID))
	}

	return nil
}

func schemaID(client RegistryClient, config *SerializerConfig, schema SchemaInfo) (int, error) {
	if !config.registerSchema {
		return findSchema(client, config.groupID, schema)
	}

	registered, err := client.CreateSchema(config.groupID, schema.Schema, schema.Format.SchemaType())
	if err == nil {
		return registered.ID(), nil
	}

	// some registries reject an identical schema instead of returning its id
	id, findErr := findSchema(client, config.groupID, schema)
	if findErr != nil {
		return 0, errors.WithPrevious(err, fmt.Sprintf(`schema registration failed for group [%s]`, config.groupID))
	}

	return id, nil
}

// findSchema returns the id of the group version identical to schema. The registry is asked
// first; registries without lookup support are searched version by version, latest first.
func findSchema(client RegistryClient, group string, schema SchemaInfo) (int, error) {
	if registered, err := client.LookupSchema(group, schema.Schema, schema.Format.SchemaType()); err == nil && registered != nil {
		return registered.ID(), nil
	}

	versions, err := client.GetSchemaVersions(group)
	if err != nil {
		return 0, errors.WithPrevious(err, fmt.Sprintf(`cannot list versions of group [%s]`, group))
	}

	sort.Sort(sort.Reverse(sort.IntSlice(versions)))
	for _, v := range versions {
		registered, err := client.GetSchemaByVersion(group, v)
		if err != nil {
			return 0, errors.WithPrevious(err, fmt.Sprintf(`cannot fetch group [%s] version [%s]`, group, Version(v)))
		}

		if sameSchema(schema.Format, registered.Schema(), schema.Schema) {
			return registered.ID(), nil
		}
	}

	return 0, errors.New(fmt.Sprintf(`schema is not registered in group [%s]`, group))
}

// sameSchema compares schemas ignoring the formatting registries apply when storing them
func sameSchema(format SerializationFormat, a, b string) bool {
	if normalizeSchema(a) == normalizeSchema(b) {
		return true
	}

	if format != Avro {
		return false
	}

	fa, err := avroFingerprint(a)
	if err != nil {
		return false
	}

	fb, err := avroFingerprint(b)
	if err != nil {
		return false
	}

	return fa == fb
}

// normalizeSchema re-encodes JSON schemas compactly with sorted keys and collapses the
// whitespace of everything else
func normalizeSchema(schema string) string {
	var v interface{}
	if err := json.Unmarshal([]byte(schema), &v); err == nil {
		if byt, err := json.Marshal(v); err == nil {
			return string(byt)
		}
	}

	return strings.Join(strings.Fields(schema), ` `)
}
