package matcher

import (
	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/provider"
)

const (
	// artistFloor rejects any candidate whose artist signal falls
	// below it, regardless of the other signals.
	artistFloor = 70
	// songTrustThreshold is the aggregate at which a song result is
	// trusted outright, without weighing video results at all.
	songTrustThreshold = 80
)

// Score couples a candidate URL with its aggregate value.
type Score struct {
	URL   string
	Value float64
}

// Scores preserves candidate processing order, which settles ties:
// the first best-scoring entry wins.
type Scores []Score

// Best returns the first entry holding the maximum value.
func (scores Scores) Best() (Score, bool) {
	if len(scores) == 0 {
		return Score{}, false
	}

	best := scores[0]
	for _, score := range scores[1:] {
		if score.Value > best.Value {
			best = score
		}
	}
	return best, true
}

// Rank aggregates match signals for every candidate surviving the
// rejection rules, in input order. Candidates typed neither song nor
// video are skipped.
func Rank(track *entity.Track, results []provider.SearchResult) Scores {
	var scores Scores
	for _, result := range results {
		value, ok := aggregate(track, result)
		if !ok {
			continue
		}
		scores = append(scores, Score{URL: result.URL, Value: value})
	}
	return scores
}

// aggregate folds the per-signal scores of a candidate into one
// value, or reports the candidate as rejected.
func aggregate(track *entity.Track, result provider.SearchResult) (float64, bool) {
	if result.Type == provider.TypeOther {
		return 0, false
	}

	name := nameScore(track, result)
	if !sharesToken(Normalize(result.Title), Normalize(track.Title)) {
		return 0, false
	}

	artist := artistScore(track, result)
	if artist < artistFloor {
		return 0, false
	}

	duration := durationScore(track, result)

	if result.Type == provider.TypeSong && result.Album != "" && !albumMirrorsTitle(track, result) {
		return (artist + albumScore(track, result) + name + duration) / 4, true
	}
	return (artist + name + duration) / 3, true
}

// albumMirrorsTitle spots mislabeled song results whose album field
// just repeats the track title instead of naming the actual album;
// their album signal would reward the mislabeling.
func albumMirrorsTitle(track *entity.Track, result provider.SearchResult) bool {
	album := Normalize(result.Album)
	return album == Normalize(result.Title) && album != Normalize(track.Album)
}

// Best selects the overall winning candidate URL.
//
// Song results are ranked first and trusted outright when their best
// aggregate reaches songTrustThreshold. Only below it are video
// results ranked and merged in, song scores first, before re-picking
// the maximum across the union. The asymmetry is intentional: a song
// scoring 79 can lose to a video scoring 85, but a song scoring 80
// is never reconsidered against videos.
func Best(track *entity.Track, results []provider.SearchResult) (string, bool) {
	var songs, videos []provider.SearchResult
	for _, result := range results {
		switch result.Type {
		case provider.TypeSong:
			songs = append(songs, result)
		case provider.TypeVideo:
			videos = append(videos, result)
		}
	}

	songScores := Rank(track, songs)
	if best, ok := songScores.Best(); ok && best.Value >= songTrustThreshold {
		return best.URL, true
	}

	merged := append(songScores, Rank(track, videos)...)
	if best, ok := merged.Best(); ok {
		return best.URL, true
	}
	return "", false
}
