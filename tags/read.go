package tags

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/bogem/id3v2"
	"github.com/dhowden/tag"
	"go.senan.xyz/taglib"
)

var errNoFrames = errors.New("no ID3v2 text frames found")

// TagReader reads all available tags from the file at path
type TagReader func(path string) (Tags, error)

// LengthReader reads the playback duration of the file at path
type LengthReader func(path string) (time.Duration, error)

// ReadTags reads every key space for the file at path. It only fails if none
// of the underlying readers could make sense of the file.
func ReadTags(path string) (Tags, error) {
	var (
		result Tags
		errs   []error
		err    error
	)

	if result.Generic, err = readGeneric(path); err != nil {
		errs = append(errs, fmt.Errorf("taglib: %w", err))
	}

	if result.Frames, err = readFrames(path); err != nil {
		errs = append(errs, fmt.Errorf("id3v2: %w", err))
	}

	if result.Raw, err = readRaw(path); err != nil {
		errs = append(errs, fmt.Errorf("tag: %w", err))
	}

	if len(errs) == 3 {
		return Tags{}, errors.Join(errs...)
	}

	for _, err := range errs {
		slog.Debug("Tag reader failed", "path", path, "error", err)
	}

	return result, nil
}

// ReadLength reads the duration from the file's audio properties
func ReadLength(path string) (time.Duration, error) {
	properties, err := taglib.ReadProperties(path)
	if err != nil {
		return 0, err
	}
	return properties.Length, nil
}

func readGeneric(path string) (map[string][]string, error) {
	return taglib.ReadTags(path)
}

func readFrames(path string) (map[string][]string, error) {
	t, err := id3v2.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return nil, err
	}
	defer t.Close()

	frames := make(map[string][]string)
	for id, framers := range t.AllFrames() {
		for _, framer := range framers {
			text, ok := framer.(id3v2.TextFrame)
			if !ok {
				continue
			}

			// ID3v2.4 separates multiple values with NUL
			for _, value := range strings.Split(text.Text, "\x00") {
				if value != "" {
					frames[id] = append(frames[id], value)
				}
			}
		}
	}

	if len(frames) == 0 {
		return nil, errNoFrames
	}
	return frames, nil
}

func readRaw(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	raw := make(map[string][]string)
	for key, value := range m.Raw() {
		if values := rawValues(value); len(values) > 0 {
			raw[key] = values
		}
	}
	return raw, nil
}

func rawValues(value interface{}) []string {
	switch v := value.(type) {
	case string:
		return []string{v}
	case []string:
		return v
	case int:
		if v > 0 {
			return []string{strconv.Itoa(v)}
		}
	case *tag.Comm:
		return []string{v.Text}
	}
	return nil
}
