package matcher

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/csmith/tunelist/model"
)

// Score represents the quality of a match between two records
type Score int

const (
	NoMatch    Score = 0
	FuzzyMatch Score = 1
	ExactMatch Score = 2
	Identical  Score = 3
)

const maxLevenshteinDistance = 3

// Match compares two TrackRecords and returns a score indicating match quality
func Match(a, b model.TrackRecord) Score {
	if a == b {
		return Identical
	}

	// Same song, but something like the length or track number changed
	if strings.EqualFold(a.Artist, b.Artist) && strings.EqualFold(a.Title, b.Title) &&
		strings.EqualFold(a.Album, b.Album) {
		return ExactMatch
	}

	// Fuzzy match on artist + title, for retagged files
	if a.Artist != "" && b.Artist != "" && a.Title != "" && b.Title != "" {
		aKey := normalizeForMatching(a.Artist) + "|" + normalizeForMatching(a.Title)
		bKey := normalizeForMatching(b.Artist) + "|" + normalizeForMatching(b.Title)
		distance := levenshtein.ComputeDistance(aKey, bKey)
		if distance <= maxLevenshteinDistance {
			return FuzzyMatch
		}
	}

	return NoMatch
}

func normalizeForMatching(s string) string {
	s = strings.ToLower(s)

	// Remove anything in parentheses
	for {
		start := strings.Index(s, "(")
		if start == -1 {
			break
		}
		end := strings.Index(s[start:], ")")
		if end == -1 {
			break
		}
		s = s[:start] + s[start+end+1:]
	}

	// Remove anything after feat/ft/featuring
	for _, sep := range []string{" feat.", " feat ", " ft.", " ft ", " featuring "} {
		if idx := strings.Index(s, sep); idx != -1 {
			s = s[:idx]
		}
	}

	s = strings.Join(strings.Fields(s), " ")
	s = strings.TrimPrefix(s, "the ")

	return s
}
