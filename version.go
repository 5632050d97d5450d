package serializers

import "fmt"

// Version is a schema version within a group
type Version int

const (
	// VersionLatest refers to the latest version of the group
	VersionLatest Version = -1
	// VersionAll refers to every version of the group
	VersionAll Version = -2
)

// String returns the printable version
func (v Version) String() string {
	switch v {
	case VersionLatest:
		return `Latest`
	case VersionAll:
		return `All`
	}

	return fmt.Sprint(int(v))
}
