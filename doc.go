/*
Package serializers configures schema registry aware serializers and deserializers for event streams.

A SerializerConfig binds readers and writers to a group of the schema registry and decides
  - whether the group, schemas and codec types are registered automatically or must already exist
  - which codec serialized events are encoded with before they are written
  - which codec types a reader decodes, and whether an unknown codec type fails the read

Every event starts with an encoding descriptor naming the writer schema id and the codec type,
so readers learn the codec at read time and resolve it through the config's Decoder.

Automatic registration is convenient during development. Production systems should register
schemas and codec types explicitly so that readers know every encoding writers use.

Built-in codecs live in package codec.

Schema registry API : https://docs.confluent.io/platform/current/schema-registry/develop/api.html

Avro: http://avro.apache.org/docs/current/

Protobuf: https://protobuf.dev/programming-guides/encoding/
*/
package serializers
