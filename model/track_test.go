package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallback(t *testing.T) {
	assert.Equal(t, TrackRecord{
		Artist: "Unknown Artist",
		Title:  "01 - Intro",
		Length: "Unknown",
		Disc:   "1",
		Track:  "0",
	}, Fallback("/music/Album/01 - Intro.mp3"))
}

func TestStem(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "song.flac", expected: "song"},
		{name: "nested path", input: "a/b/c/song.ogg", expected: "song"},
		{name: "multiple dots", input: "a/Mr. Blue Sky.v2.mp3", expected: "Mr. Blue Sky.v2"},
		{name: "no extension", input: "a/song", expected: "song"},
		{name: "non-ascii", input: "Sigur Rós/Hoppípolla.m4a", expected: "Hoppípolla"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Stem(tt.input))
		})
	}
}
