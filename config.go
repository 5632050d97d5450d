/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package serializers

import (
	"reflect"

	"github.com/tryfix/srserializers/codec"
)

// SerializerConfig is the frozen configuration NewSerializer and NewDeserializer work from.
// It is created by a SerializerConfigBuilder and is safe for concurrent use.
type SerializerConfig struct {
	groupID                string
	registryConfigOrClient Either[*RegistryClientConfig, RegistryClient]
	registerSchema         bool
	registerCodec          bool
	codec                  codec.Codec
	decoder                *Decoder
	failOnCodecMismatch    bool
	createGroup            bool
	groupProperties        GroupProperties
}

// GroupID is the name of the registry group (subject) the serializer writes to
func (c *SerializerConfig) GroupID() string {
	return c.groupID
}

// RegistryConfigOrClient holds the registry client config on the left or a ready client on the right
func (c *SerializerConfig) RegistryConfigOrClient() Either[*RegistryClientConfig, RegistryClient] {
	return c.registryConfigOrClient
}

// RegisterSchema tells whether the serializer registers its schema before use.
// Production systems should register schemas explicitly, in lockstep with application upgrades.
func (c *SerializerConfig) RegisterSchema() bool {
	return c.registerSchema
}

// RegisterCodec tells whether the serializer registers its codec type with the group so that
// readers can learn about it
func (c *SerializerConfig) RegisterCodec() bool {
	return c.registerCodec
}

// Codec encodes serialized events before they are written
func (c *SerializerConfig) Codec() codec.Codec {
	return c.codec
}

// Decoder decodes events after they are read, using the codec type in their encoding descriptor
func (c *SerializerConfig) Decoder() *Decoder {
	return c.decoder
}

// FailOnCodecMismatch tells deserializers to fail instead of reading data encoded with a codec
// type their Decoder does not know
func (c *SerializerConfig) FailOnCodecMismatch() bool {
	return c.failOnCodecMismatch
}

// CreateGroup tells whether the serializer may create the group with GroupProperties
func (c *SerializerConfig) CreateGroup() bool {
	return c.createGroup
}

func (c *SerializerConfig) GroupProperties() GroupProperties {
	return c.groupProperties.clone()
}

// SerializerConfigBuilder collects the SerializerConfig values. Setter failures are kept and
// returned by Build. A builder is not safe for concurrent use and can be built only once.
type SerializerConfigBuilder struct {
	groupID                string
	registryConfigOrClient Either[*RegistryClientConfig, RegistryClient]
	registerSchema         bool
	registerCodec          bool
	codec                  codec.Codec
	decoder                *Decoder
	failOnCodecMismatch    bool
	createGroup            bool
	groupProperties        GroupProperties
	err                    error
	built                  bool
}

// NewSerializerConfigBuilder returns a builder holding the defaults: nothing is registered or
// created automatically, events are written with the none codec and codec mismatches fail.
func NewSerializerConfigBuilder() *SerializerConfigBuilder {
	return &SerializerConfigBuilder{
		codec:               codec.NoneCodec(),
		decoder:             NewDecoder(),
		failOnCodecMismatch: true,
		groupProperties:     DefaultGroupProperties(),
	}
}

func (b *SerializerConfigBuilder) fail(err error) *SerializerConfigBuilder {
	if b.err == nil {
		b.err = err
	}

	return b
}

func (b *SerializerConfigBuilder) GroupID(groupID string) *SerializerConfigBuilder {
	b.groupID = groupID
	return b
}

// RegistryClient sets a ready registry client. Either this or RegistryConfig should be
// supplied; whichever is supplied later wins.
func (b *SerializerConfigBuilder) RegistryClient(client RegistryClient) *SerializerConfigBuilder {
	if isNil(client) {
		return b.fail(invalidConfig(`registry client cannot be nil`))
	}

	b.registryConfigOrClient = Right[*RegistryClientConfig, RegistryClient](client)
	return b
}

// RegistryConfig sets the config a registry client is created from. Either this or
// RegistryClient should be supplied; whichever is supplied later wins.
func (b *SerializerConfigBuilder) RegistryConfig(config *RegistryClientConfig) *SerializerConfigBuilder {
	if config == nil {
		return b.fail(invalidConfig(`registry client config cannot be nil`))
	}

	b.registryConfigOrClient = Left[*RegistryClientConfig, RegistryClient](config)
	return b
}

func (b *SerializerConfigBuilder) RegisterSchema(register bool) *SerializerConfigBuilder {
	b.registerSchema = register
	return b
}

func (b *SerializerConfigBuilder) RegisterCodec(register bool) *SerializerConfigBuilder {
	b.registerCodec = register
	return b
}

// CreateGroup creates the group if it does not exist, with FullTransitive compatibility
// and multiple types allowed. Group creation is idempotent.
func (b *SerializerConfigBuilder) CreateGroup(format SerializationFormat) *SerializerConfigBuilder {
	return b.CreateGroupAllowMultipleTypes(format, true)
}

// CreateGroupAllowMultipleTypes creates the group if it does not exist, with FullTransitive compatibility
func (b *SerializerConfigBuilder) CreateGroupAllowMultipleTypes(format SerializationFormat, allowMultipleTypes bool) *SerializerConfigBuilder {
	return b.CreateGroupWithProperties(format, FullTransitive(), allowMultipleTypes)
}

// CreateGroupWithProperties creates the group if it does not exist, with the given properties
func (b *SerializerConfigBuilder) CreateGroupWithProperties(format SerializationFormat, compatibility Compatibility, allowMultipleTypes bool) *SerializerConfigBuilder {
	if format == `` {
		return b.fail(invalidConfig(`serialization format is required to create a group`))
	}

	b.createGroup = true
	b.groupProperties = NewGroupProperties(format, compatibility, allowMultipleTypes)
	return b
}

// Codec sets the codec events are encoded with after serialization
func (b *SerializerConfigBuilder) Codec(c codec.Codec) *SerializerConfigBuilder {
	if isNil(c) {
		return b.fail(invalidConfig(`codec cannot be nil`))
	}

	if c.Name() == `` || len(c.Name()) > maxCodecTypeLen {
		return b.fail(invalidConfig(`codec type [%s] must be 1 to %d bytes long`, c.Name(), maxCodecTypeLen))
	}

	b.codec = c
	return b
}

// AddDecoder adds fn as the decoder of data encoded with codecType
func (b *SerializerConfigBuilder) AddDecoder(codecType string, fn DecodeFunc) *SerializerConfigBuilder {
	d, err := b.decoder.WithDecoder(codecType, fn)
	if err != nil {
		return b.fail(err)
	}

	b.decoder = d
	return b
}

func (b *SerializerConfigBuilder) FailOnCodecMismatch(fail bool) *SerializerConfigBuilder {
	b.failOnCodecMismatch = fail
	return b
}

// Build validates the collected values and returns the frozen SerializerConfig
func (b *SerializerConfigBuilder) Build() (*SerializerConfig, error) {
	if b.built {
		return nil, invalidConfig(`builder has already been built`)
	}

	if b.err != nil {
		return nil, b.err
	}

	if b.groupID == `` {
		return nil, invalidConfig(`group id needs to be supplied`)
	}

	if !b.registryConfigOrClient.IsPresent() {
		return nil, invalidConfig(`either registry client or config needs to be supplied`)
	}

	if b.createGroup && b.groupProperties.SerializationFormat == `` {
		return nil, invalidConfig(`serialization format is required to create a group`)
	}

	b.built = true

	return &SerializerConfig{
		groupID:                b.groupID,
		registryConfigOrClient: b.registryConfigOrClient,
		registerSchema:         b.registerSchema,
		registerCodec:          b.registerCodec,
		codec:                  b.codec,
		decoder:                b.decoder,
		failOnCodecMismatch:    b.failOnCodecMismatch,
		createGroup:            b.createGroup,
		groupProperties:        b.groupProperties.clone(),
	}, nil
}

// isNil also catches nil pointers wrapped in a non nil interface
func isNil(v interface{}) bool {
	if v == nil {
		return true
	}

	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Ptr && rv.IsNil()
}
