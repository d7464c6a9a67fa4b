package model

import (
	"path/filepath"
	"strings"
)

// Fallback values used when a file carries no usable tag for a field
const (
	UnknownArtist = "Unknown Artist"
	UnknownLength = "Unknown"
	DefaultDisc   = "1"
	DefaultTrack  = "0"
)

// TrackRecord is the canonical, export-ready metadata for one audio file
type TrackRecord struct {
	Artist      string
	Title       string
	Length      string
	Album       string
	AlbumArtist string
	Disc        string
	Track       string
}

// Fallback returns the record used for a file whose metadata could not be read
func Fallback(path string) TrackRecord {
	return TrackRecord{
		Artist: UnknownArtist,
		Title:  Stem(path),
		Length: UnknownLength,
		Disc:   DefaultDisc,
		Track:  DefaultTrack,
	}
}

// Stem returns the base name of path without its extension
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
