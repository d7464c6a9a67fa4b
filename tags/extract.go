package tags

import (
	"fmt"
	"log/slog"

	"github.com/csmith/tunelist/model"
)

// Extractor turns audio files into TrackRecords. Tags and length are read
// independently, and a failure in either only degrades that part of the
// record.
type Extractor struct {
	ReadTags   TagReader
	ReadLength LengthReader
}

// NewExtractor returns an Extractor backed by the real tag readers
func NewExtractor() *Extractor {
	return &Extractor{
		ReadTags:   ReadTags,
		ReadLength: ReadLength,
	}
}

// Extract always returns a record for path, even if the file is unreadable
func (e *Extractor) Extract(path string) model.TrackRecord {
	record := model.Fallback(path)

	t, err := catch(func() (Tags, error) { return e.ReadTags(path) })
	if err != nil {
		slog.Error("Failed to read metadata", "path", path, "error", err)
	} else {
		record = Normalize(t, path)
	}

	length, err := catch(func() (string, error) {
		d, err := e.ReadLength(path)
		if err != nil {
			return "", err
		}
		return FormatLength(d), nil
	})
	if err != nil {
		slog.Error("Failed to read length", "path", path, "error", err)
		record.Length = model.UnknownLength
	} else {
		record.Length = length
	}

	return record
}

// catch converts a panic inside a third-party parser into an error
func catch[T any](fn func() (T, error)) (result T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic while reading: %v", r)
		}
	}()
	return fn()
}
