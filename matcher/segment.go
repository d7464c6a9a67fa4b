package matcher

import (
	"fmt"
	"sort"

	"github.com/csmith/tunelist/model"
)

// SegmentResult describes how a library changed between two exports
type SegmentResult struct {
	Unchanged []model.TrackRecord
	Changed   []model.TrackRecord
	Added     []model.TrackRecord
	Removed   []model.TrackRecord
}

// Empty reports whether nothing was added, removed or changed
func (r SegmentResult) Empty() bool {
	return len(r.Changed) == 0 && len(r.Added) == 0 && len(r.Removed) == 0
}

// String summarises the result, e.g. "+3 -1 ~2"
func (r SegmentResult) String() string {
	return fmt.Sprintf("+%d -%d ~%d", len(r.Added), len(r.Removed), len(r.Changed))
}

type matchCandidate struct {
	currentIndex  int
	previousIndex int
	score         Score
}

// Segment compares the current records against a previous export
func Segment(previous []model.TrackRecord, current []model.TrackRecord) SegmentResult {
	result := SegmentResult{
		Unchanged: make([]model.TrackRecord, 0),
		Changed:   make([]model.TrackRecord, 0),
		Added:     make([]model.TrackRecord, 0),
		Removed:   make([]model.TrackRecord, 0),
	}

	matchedCurrent := make(map[int]Score)
	matchedPrevious := make(map[int]bool)

	// Most records are untouched between runs, so pair those off by value
	// before scoring the remainder against each other
	unused := make(map[model.TrackRecord][]int)
	for j, previousTrack := range previous {
		unused[previousTrack] = append(unused[previousTrack], j)
	}
	for i, currentTrack := range current {
		if indices := unused[currentTrack]; len(indices) > 0 {
			matchedCurrent[i] = Identical
			matchedPrevious[indices[0]] = true
			unused[currentTrack] = indices[1:]
		}
	}

	// Find all possible matches among what's left
	var candidates []matchCandidate
	for i, currentTrack := range current {
		if _, ok := matchedCurrent[i]; ok {
			continue
		}
		for j, previousTrack := range previous {
			if matchedPrevious[j] {
				continue
			}
			score := Match(currentTrack, previousTrack)
			if score != NoMatch {
				candidates = append(candidates, matchCandidate{
					currentIndex:  i,
					previousIndex: j,
					score:         score,
				})
			}
		}
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	// Greedy matching: pick best scores first
	for _, candidate := range candidates {
		if _, ok := matchedCurrent[candidate.currentIndex]; !ok && !matchedPrevious[candidate.previousIndex] {
			matchedCurrent[candidate.currentIndex] = candidate.score
			matchedPrevious[candidate.previousIndex] = true
		}
	}

	for i, currentTrack := range current {
		score, ok := matchedCurrent[i]
		switch {
		case !ok:
			result.Added = append(result.Added, currentTrack)
		case score == Identical:
			result.Unchanged = append(result.Unchanged, currentTrack)
		default:
			result.Changed = append(result.Changed, currentTrack)
		}
	}

	for j, previousTrack := range previous {
		if !matchedPrevious[j] {
			result.Removed = append(result.Removed, previousTrack)
		}
	}

	return result
}
