/**
 * Copyright 2020 TryFix Engineering.
 * All rights reserved.
 * Authors:
 *    Gayan Yapa (gmbyapa@gmail.com)
 */

package main

import (
	"time"

	"github.com/tryfix/log"
	serializers "github.com/tryfix/srserializers"
	"github.com/tryfix/srserializers/codec"
)

const schema = `{
  "type": "record",
  "name": "TestTwo",
  "namespace": "com.org.events.test",
  "fields": [{"name": "id", "type": "string"}]
}`

type TestTwo struct {
	ID string `avro:"id"`
}

func main() {
	logger := log.NewLog().Log(log.WithLevel(log.INFO))

	config, err := serializers.NewSerializerConfigBuilder().
		GroupID(`com.org.events.test.TestTwo`).
		RegistryConfig(&serializers.RegistryClientConfig{URL: `http://localhost:8081/`, Timeout: 10 * time.Second}).
		CreateGroup(serializers.Avro).
		RegisterSchema(true).
		Codec(codec.Gzip()).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	config.Print(logger)

	serializer, err := serializers.NewSerializer(config, serializers.SchemaInfo{
		Format: serializers.Avro,
		Schema: schema,
	}, serializers.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	byt, err := serializer.Serialize(TestTwo{ID: `1`})
	if err != nil {
		log.Fatal(err)
	}

	deserializer, err := serializers.NewDeserializer(config, serializers.Avro, nil, serializers.WithLogger(logger))
	if err != nil {
		log.Fatal(err)
	}

	ev, err := deserializer.Deserialize(byt)
	if err != nil {
		log.Fatal(err)
	}

	logger.Info(`your event is successfully encoded and decoded`, ev)
}
