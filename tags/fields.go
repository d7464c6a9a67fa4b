package tags

import (
	"strings"

	"github.com/csmith/tunelist/model"
	"go.senan.xyz/taglib"
)

// Field describes how to resolve one logical field of a TrackRecord
type Field struct {
	Name       string
	Candidates []Lookup
	// Number fields are reduced to the part before any "/" separator
	Number bool
}

// Fields in resolution order. ID3v2.2 uses three-letter frame IDs, MP4 uses
// atom names, and Vorbis comments and ID3v1 use lowercase names.
var (
	Artist = Field{
		Name:       "artist",
		Candidates: []Lookup{Generic(taglib.Artist), Frame("TPE1"), Raw("TP1"), Raw("\xa9ART"), Raw("artist")},
	}
	Title = Field{
		Name:       "title",
		Candidates: []Lookup{Generic(taglib.Title), Frame("TIT2"), Raw("TT2"), Raw("\xa9nam"), Raw("title")},
	}
	Album = Field{
		Name:       "album",
		Candidates: []Lookup{Generic(taglib.Album), Frame("TALB"), Raw("TAL"), Raw("\xa9alb"), Raw("album")},
	}
	AlbumArtist = Field{
		Name:       "album_artist",
		Candidates: []Lookup{Generic(taglib.AlbumArtist), Frame("TPE2"), Raw("TP2"), Raw("aART"), Raw("albumartist")},
	}
	Disc = Field{
		Name:       "disc",
		Candidates: []Lookup{Generic(taglib.DiscNumber), Frame("TPOS"), Raw("TPA"), Raw("disk"), Raw("discnumber")},
		Number:     true,
	}
	Track = Field{
		Name:       "track",
		Candidates: []Lookup{Generic(taglib.TrackNumber), Frame("TRCK"), Raw("TRK"), Raw("trkn"), Raw("tracknumber"), Raw("track")},
		Number:     true,
	}
)

// Resolve returns the value of the first candidate that yields something
func (f Field) Resolve(t Tags) (string, bool) {
	for _, lookup := range f.Candidates {
		value, ok := lookup(t)
		if !ok {
			continue
		}

		if f.Number {
			value = leadingNumber(value)
			if value == "" {
				continue
			}
		}

		return value, true
	}
	return "", false
}

// Normalize builds a TrackRecord from t, applying fallbacks for any field that
// couldn't be resolved. The length is left as unknown.
func Normalize(t Tags, path string) model.TrackRecord {
	return model.TrackRecord{
		Artist:      resolveOr(Artist, t, model.UnknownArtist),
		Title:       resolveOr(Title, t, model.Stem(path)),
		Length:      model.UnknownLength,
		Album:       resolveOr(Album, t, ""),
		AlbumArtist: resolveOr(AlbumArtist, t, ""),
		Disc:        resolveOr(Disc, t, model.DefaultDisc),
		Track:       resolveOr(Track, t, model.DefaultTrack),
	}
}

func resolveOr(f Field, t Tags, fallback string) string {
	if value, ok := f.Resolve(t); ok {
		return value
	}
	return fallback
}

// leadingNumber handles "N/M" style disc and track numbers
func leadingNumber(value string) string {
	before, _, _ := strings.Cut(value, "/")
	return strings.TrimSpace(before)
}
