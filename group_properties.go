package serializers

import (
	"fmt"

	"github.com/riferrei/srclient"
)

// SerializationFormat is the format events of a group are serialized with
type SerializationFormat string

const (
	Avro     SerializationFormat = `Avro`
	Protobuf SerializationFormat = `Protobuf`
	Json     SerializationFormat = `Json`
	// Any allows schemas of every format within the group
	Any SerializationFormat = `Any`
	// Custom formats are serialized by a user supplied Marshaller
	Custom SerializationFormat = `Custom`
)

func (f SerializationFormat) String() string {
	return string(f)
}

// SchemaType returns the registry schema type of the format. Formats the registry
// does not know about are stored as Avro typed text.
func (f SerializationFormat) SchemaType() srclient.SchemaType {
	switch f {
	case Protobuf:
		return srclient.Protobuf
	case Json:
		return srclient.Json
	default:
		return srclient.Avro
	}
}

// CompatibilityType names the rule the registry applies when new schema versions are added
type CompatibilityType string

const (
	CompatibilityAllowAny               CompatibilityType = `AllowAny`
	CompatibilityDenyAll                CompatibilityType = `DenyAll`
	CompatibilityBackward               CompatibilityType = `Backward`
	CompatibilityForward                CompatibilityType = `Forward`
	CompatibilityBackwardTransitive     CompatibilityType = `BackwardTransitive`
	CompatibilityForwardTransitive      CompatibilityType = `ForwardTransitive`
	CompatibilityFull                   CompatibilityType = `Full`
	CompatibilityFullTransitive         CompatibilityType = `FullTransitive`
	CompatibilityBackwardTill           CompatibilityType = `BackwardTill`
	CompatibilityForwardTill            CompatibilityType = `ForwardTill`
	CompatibilityBackwardAndForwardTill CompatibilityType = `BackwardAndForwardTill`
)

// Compatibility is a compatibility policy. BackwardTill and ForwardTill hold schema
// versions and are only meaningful for the *Till types.
type Compatibility struct {
	Type         CompatibilityType
	BackwardTill int
	ForwardTill  int
}

func AllowAny() Compatibility           { return Compatibility{Type: CompatibilityAllowAny} }
func DenyAll() Compatibility            { return Compatibility{Type: CompatibilityDenyAll} }
func Backward() Compatibility           { return Compatibility{Type: CompatibilityBackward} }
func Forward() Compatibility            { return Compatibility{Type: CompatibilityForward} }
func BackwardTransitive() Compatibility { return Compatibility{Type: CompatibilityBackwardTransitive} }
func ForwardTransitive() Compatibility  { return Compatibility{Type: CompatibilityForwardTransitive} }
func Full() Compatibility               { return Compatibility{Type: CompatibilityFull} }
func FullTransitive() Compatibility     { return Compatibility{Type: CompatibilityFullTransitive} }

func BackwardTill(version int) Compatibility {
	return Compatibility{Type: CompatibilityBackwardTill, BackwardTill: version}
}

func ForwardTill(version int) Compatibility {
	return Compatibility{Type: CompatibilityForwardTill, ForwardTill: version}
}

func BackwardAndForwardTill(backwardTill, forwardTill int) Compatibility {
	return Compatibility{
		Type:         CompatibilityBackwardAndForwardTill,
		BackwardTill: backwardTill,
		ForwardTill:  forwardTill,
	}
}

// Level returns the Confluent style compatibility level name. Version bounded policies
// have no Confluent counterpart and are rendered with their bounds.
func (c Compatibility) Level() string {
	switch c.Type {
	case CompatibilityAllowAny:
		return `NONE`
	case CompatibilityDenyAll:
		return `DENY_ALL`
	case CompatibilityBackward:
		return `BACKWARD`
	case CompatibilityForward:
		return `FORWARD`
	case CompatibilityBackwardTransitive:
		return `BACKWARD_TRANSITIVE`
	case CompatibilityForwardTransitive:
		return `FORWARD_TRANSITIVE`
	case CompatibilityFull:
		return `FULL`
	case CompatibilityFullTransitive:
		return `FULL_TRANSITIVE`
	case CompatibilityBackwardTill:
		return fmt.Sprintf(`BACKWARD_TILL(%d)`, c.BackwardTill)
	case CompatibilityForwardTill:
		return fmt.Sprintf(`FORWARD_TILL(%d)`, c.ForwardTill)
	case CompatibilityBackwardAndForwardTill:
		return fmt.Sprintf(`BACKWARD_TILL(%d)_FORWARD_TILL(%d)`, c.BackwardTill, c.ForwardTill)
	}

	return string(c.Type)
}

// compatibilityLevel is the registry level of c. Denying every change and version bounded
// policies cannot be set on the registry.
func (c Compatibility) compatibilityLevel() (srclient.CompatibilityLevel, bool) {
	switch c.Type {
	case CompatibilityAllowAny,
		CompatibilityBackward,
		CompatibilityForward,
		CompatibilityBackwardTransitive,
		CompatibilityForwardTransitive,
		CompatibilityFull,
		CompatibilityFullTransitive:
		return srclient.CompatibilityLevel(c.Level()), true
	}

	return ``, false
}

// GroupProperties are the properties a group is created with
type GroupProperties struct {
	SerializationFormat SerializationFormat
	Compatibility       Compatibility
	AllowMultipleTypes  bool
	Properties          map[string]string
}

// NewGroupProperties returns GroupProperties with the given values and no extra properties
func NewGroupProperties(format SerializationFormat, compatibility Compatibility, allowMultipleTypes bool) GroupProperties {
	return GroupProperties{
		SerializationFormat: format,
		Compatibility:       compatibility,
		AllowMultipleTypes:  allowMultipleTypes,
		Properties:          map[string]string{},
	}
}

// DefaultGroupProperties is used when the group is not created by the serializer
func DefaultGroupProperties() GroupProperties {
	return NewGroupProperties(Any, FullTransitive(), false)
}

func (p GroupProperties) clone() GroupProperties {
	props := make(map[string]string, len(p.Properties))
	for k, v := range p.Properties {
		props[k] = v
	}
	p.Properties = props

	return p
}
