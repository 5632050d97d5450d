package serializers

import (
	"fmt"

	"github.com/riferrei/srclient"
	"github.com/tryfix/log"
	"github.com/tryfix/srserializers/codec"
)

func Example_avro() {
	// MockClient for examples only, use RegistryConfig to connect to a registry
	client := srclient.CreateMockSchemaRegistryClient(`http://localhost:8081/`)

	schema := `{"type":"record","name":"SampleRecord","fields":[{"name":"field1","type":"int"},{"name":"field2","type":"double"},{"name":"field3","type":"string"}]}`

	// Schemas are registered ahead of the applications using them
	if _, err := client.CreateSchema(`test-group-avro`, schema, srclient.Avro); err != nil {
		log.Fatal(err)
	}

	config, err := NewSerializerConfigBuilder().
		GroupID(`test-group-avro`).
		RegistryClient(client).
		Codec(codec.Snappy()).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	type SampleRecord struct {
		Field1 int     `avro:"field1"`
		Field2 float64 `avro:"field2"`
		Field3 string  `avro:"field3"`
	}

	serializer, err := NewSerializer(config, SchemaInfo{Format: Avro, Schema: schema}, WithLogger(log.NewLog().Log(log.WithLevel(log.TRACE))))
	if err != nil {
		log.Fatal(err)
	}

	// Encode the message
	bytePayload, err := serializer.Serialize(SampleRecord{
		Field1: 1,
		Field2: 2.0,
		Field3: "text",
	})
	if err != nil {
		panic(err)
	}

	deserializer, err := NewDeserializer(config, Avro, func(unmarshaler Unmarshaler) (v interface{}, err error) {
		record := SampleRecord{}
		if err := unmarshaler.Unmarshal(&record); err != nil {
			return nil, err
		}

		return record, nil
	})
	if err != nil {
		log.Fatal(err)
	}

	// Decode the message
	ev, err := deserializer.Deserialize(bytePayload) // Returns SampleRecord
	if err != nil {
		panic(err)
	}

	fmt.Printf("%+v", ev)
}

func ExampleSerializerConfigBuilder_AddDecoder() {
	config, err := NewSerializerConfigBuilder().
		GroupID(`test-group`).
		RegistryConfig(&RegistryClientConfig{URL: `http://localhost:8081/`}).
		AddDecoder(`application/x-reversed`, func(data []byte) ([]byte, error) {
			out := make([]byte, len(data))
			for i, b := range data {
				out[len(data)-1-i] = b
			}
			return out, nil
		}).
		Build()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(config.Decoder().CodecTypes())
	// Output: [application/x-gzip application/x-reversed application/x-snappy-framed none]
}
