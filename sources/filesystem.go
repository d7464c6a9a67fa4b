package sources

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/csmith/tunelist/model"
)

// ErrRootNotFound is returned when the directory to scan doesn't exist
var ErrRootNotFound = errors.New("root path does not exist")

// DefaultExtensions are the audio file types scanned when none are configured
var DefaultExtensions = []string{"mp3", "flac", "wav", "ogg", "m4a", "aac", "wma"}

const progressInterval = 100

// Extractor produces a record for a single file. It must not fail.
type Extractor interface {
	Extract(path string) model.TrackRecord
}

// Filesystem is a library backed by a directory tree of audio files
type Filesystem struct {
	Root       string
	Extensions []string
	Extractor  Extractor
}

// Tracks walks the root directory and extracts a record for every audio file
func (f *Filesystem) Tracks() ([]model.TrackRecord, error) {
	info, err := os.Stat(f.Root)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrRootNotFound, f.Root)
	}

	slog.Info("Scanning library", "root", f.Root)

	allowed := extensionSet(f.Extensions)
	var records []model.TrackRecord

	err = filepath.WalkDir(f.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == f.Root {
				return err
			}
			slog.Warn("Skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() || !allowed[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		records = append(records, f.Extractor.Extract(path))
		if len(records)%progressInterval == 0 {
			slog.Info("Processed files", "count", len(records))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", f.Root, err)
	}

	slog.Info("Finished scanning library", "count", len(records))
	return records, nil
}

// extensionSet normalises extensions to lowercase with a leading dot
func extensionSet(extensions []string) map[string]bool {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	set := make(map[string]bool, len(extensions))
	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		set[ext] = true
	}
	return set
}

var _ model.Library = &Filesystem{}
