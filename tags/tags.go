// Package tags reads raw tag values from audio files and normalises them into
// model.TrackRecord values.
//
// Tags are gathered from three key spaces: TagLib's format-independent property
// names, ID3v2 text frames, and the container-native keys exposed by
// github.com/dhowden/tag. Each logical field is resolved by trying an ordered
// list of candidate lookups against those spaces before falling back to a
// fixed default.
package tags

import "strings"

// Tags holds the raw values read from one file, split by key space. Any of the
// maps may be nil if the corresponding reader found nothing.
type Tags struct {
	// Generic is keyed by TagLib property names such as ARTIST or TRACKNUMBER
	Generic map[string][]string
	// Frames is keyed by ID3v2.3/2.4 frame IDs such as TPE1
	Frames map[string][]string
	// Raw is keyed by whatever the container uses natively
	Raw map[string][]string
}

// Lookup tries a single key in a single key space
type Lookup func(Tags) (string, bool)

// Generic looks up a format-independent property name
func Generic(key string) Lookup {
	return func(t Tags) (string, bool) {
		return first(t.Generic[key])
	}
}

// Frame looks up an ID3v2 text frame
func Frame(id string) Lookup {
	return func(t Tags) (string, bool) {
		return first(t.Frames[id])
	}
}

// Raw looks up a container-native key
func Raw(key string) Lookup {
	return func(t Tags) (string, bool) {
		return first(t.Raw[key])
	}
}

// first returns the first value of a sequence, treating blank values as unset
func first(values []string) (string, bool) {
	if len(values) == 0 || strings.TrimSpace(values[0]) == "" {
		return "", false
	}
	return values[0], true
}
