package serializers

import (
	"time"

	"github.com/riferrei/srclient"
)

// RegistryClient is the part of the schema registry client the serializers talk to.
// Both *srclient.SchemaRegistryClient and *srclient.MockSchemaRegistryClient satisfy it.
type RegistryClient interface {
	GetSubjects() ([]string, error)
	GetSchema(schemaID int) (*srclient.Schema, error)
	GetLatestSchema(subject string) (*srclient.Schema, error)
	GetSchemaVersions(subject string) ([]int, error)
	GetSchemaByVersion(subject string, version int) (*srclient.Schema, error)
	CreateSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	LookupSchema(subject string, schema string, schemaType srclient.SchemaType, references ...srclient.Reference) (*srclient.Schema, error)
	ChangeSubjectCompatibilityLevel(subject string, compatibility srclient.CompatibilityLevel) (*srclient.CompatibilityLevel, error)
}

// CodecRegistrar is implemented by registry clients which keep track of the codec types
// used within a group
type CodecRegistrar interface {
	AddCodecType(group string, codecType string) error
	GetCodecTypes(group string) ([]string, error)
}

// RegistryClientConfig holds what is needed to connect to a schema registry
type RegistryClientConfig struct {
	// URL of the registry, e.g. http://localhost:8081
	URL      string
	Username string
	Password string `json:"-"`
	// Timeout of registry requests, srclient's default is used when zero
	Timeout time.Duration
}

// NewClient returns a RegistryClient connected to the configured registry
func (c *RegistryClientConfig) NewClient() (RegistryClient, error) {
	if c.URL == `` {
		return nil, invalidConfig(`schema registry url is required`)
	}

	client := srclient.CreateSchemaRegistryClient(c.URL)
	if c.Username != `` {
		client.SetCredentials(c.Username, c.Password)
	}

	if c.Timeout > 0 {
		client.SetTimeout(c.Timeout)
	}

	return client, nil
}
