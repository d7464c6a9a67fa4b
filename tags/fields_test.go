package tags

import (
	"testing"

	"github.com/csmith/tunelist/model"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		tags     Tags
		path     string
		expected model.TrackRecord
	}{
		{
			name: "no tags uses fallbacks",
			tags: Tags{},
			path: "/music/Some Song.mp3",
			expected: model.TrackRecord{
				Artist: "Unknown Artist",
				Title:  "Some Song",
				Length: "Unknown",
				Disc:   "1",
				Track:  "0",
			},
		},
		{
			name: "generic keys",
			tags: Tags{
				Generic: map[string][]string{
					"ARTIST":      {"Artist"},
					"TITLE":       {"Title"},
					"ALBUM":       {"Album"},
					"ALBUMARTIST": {"Album Artist"},
					"DISCNUMBER":  {"2"},
					"TRACKNUMBER": {"7"},
				},
			},
			path: "x.flac",
			expected: model.TrackRecord{
				Artist:      "Artist",
				Title:       "Title",
				Length:      "Unknown",
				Album:       "Album",
				AlbumArtist: "Album Artist",
				Disc:        "2",
				Track:       "7",
			},
		},
		{
			name: "first element of a sequence",
			tags: Tags{
				Generic: map[string][]string{
					"ARTIST": {"First", "Second"},
				},
			},
			path: "x.ogg",
			expected: model.TrackRecord{
				Artist: "First",
				Title:  "x",
				Length: "Unknown",
				Disc:   "1",
				Track:  "0",
			},
		},
		{
			name: "ID3 frames used when generic keys are missing",
			tags: Tags{
				Frames: map[string][]string{
					"TPE1": {"Frame Artist"},
					"TIT2": {"Frame Title"},
					"TALB": {"Frame Album"},
					"TPE2": {"Frame Album Artist"},
					"TPOS": {"1/2"},
					"TRCK": {"4/12"},
				},
			},
			path: "x.mp3",
			expected: model.TrackRecord{
				Artist:      "Frame Artist",
				Title:       "Frame Title",
				Length:      "Unknown",
				Album:       "Frame Album",
				AlbumArtist: "Frame Album Artist",
				Disc:        "1",
				Track:       "4",
			},
		},
		{
			name: "generic keys take precedence over frames",
			tags: Tags{
				Generic: map[string][]string{"ARTIST": {"Generic"}},
				Frames:  map[string][]string{"TPE1": {"Frame"}},
			},
			path: "x.mp3",
			expected: model.TrackRecord{
				Artist: "Generic",
				Title:  "x",
				Length: "Unknown",
				Disc:   "1",
				Track:  "0",
			},
		},
		{
			name: "blank generic value falls through",
			tags: Tags{
				Generic: map[string][]string{"ARTIST": {"  "}},
				Frames:  map[string][]string{"TPE1": {"Frame"}},
			},
			path: "x.mp3",
			expected: model.TrackRecord{
				Artist: "Frame",
				Title:  "x",
				Length: "Unknown",
				Disc:   "1",
				Track:  "0",
			},
		},
		{
			name: "MP4 atoms",
			tags: Tags{
				Raw: map[string][]string{
					"\xa9ART": {"Atom Artist"},
					"\xa9nam": {"Atom Title"},
					"\xa9alb": {"Atom Album"},
					"aART":    {"Atom Album Artist"},
					"disk":    {"3"},
					"trkn":    {"9"},
				},
			},
			path: "x.m4a",
			expected: model.TrackRecord{
				Artist:      "Atom Artist",
				Title:       "Atom Title",
				Length:      "Unknown",
				Album:       "Atom Album",
				AlbumArtist: "Atom Album Artist",
				Disc:        "3",
				Track:       "9",
			},
		},
		{
			name: "ID3v2.2 frames",
			tags: Tags{
				Raw: map[string][]string{
					"TP1": {"Old Artist"},
					"TT2": {"Old Title"},
					"TPA": {"2/2"},
					"TRK": {"11/11"},
				},
			},
			path: "x.mp3",
			expected: model.TrackRecord{
				Artist: "Old Artist",
				Title:  "Old Title",
				Length: "Unknown",
				Disc:   "2",
				Track:  "11",
			},
		},
		{
			name: "number with only a total falls back",
			tags: Tags{
				Generic: map[string][]string{
					"DISCNUMBER":  {"/2"},
					"TRACKNUMBER": {" 5 / 10"},
				},
			},
			path: "x.flac",
			expected: model.TrackRecord{
				Artist: "Unknown Artist",
				Title:  "x",
				Length: "Unknown",
				Disc:   "1",
				Track:  "5",
			},
		},
		{
			name: "non-ascii values preserved",
			tags: Tags{
				Generic: map[string][]string{
					"ARTIST": {"Sigur Rós"},
					"TITLE":  {"Hoppípolla"},
				},
			},
			path: "x.flac",
			expected: model.TrackRecord{
				Artist: "Sigur Rós",
				Title:  "Hoppípolla",
				Length: "Unknown",
				Disc:   "1",
				Track:  "0",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.tags, tt.path))
		})
	}
}

func TestField_Resolve(t *testing.T) {
	value, ok := Track.Resolve(Tags{Raw: map[string][]string{"track": {"3"}}})
	assert.True(t, ok)
	assert.Equal(t, "3", value)

	_, ok = Track.Resolve(Tags{Raw: map[string][]string{"unrelated": {"3"}}})
	assert.False(t, ok)
}

func TestLeadingNumber(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "1", expected: "1"},
		{input: "1/2", expected: "1"},
		{input: "03/12", expected: "03"},
		{input: "/12", expected: ""},
		{input: " 4 ", expected: "4"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, leadingNumber(tt.input))
		})
	}
}
