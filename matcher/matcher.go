// Package matcher decides which, if any, of the candidates returned
// by the audio providers corresponds to a given track.
//
// The engine is a pure function of its inputs: it performs no I/O,
// holds no state across calls and is safe to run concurrently for
// independent tracks. Candidate order is significant and must be
// preserved as handed over by the providers, since score ties are
// settled by first occurrence.
//
// Not finding a match is an ordinary outcome, reported through the
// boolean return rather than an error: plenty of tracks simply have
// no usable upstream source.
package matcher

import (
	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/provider"
)

// Match returns the URL of the best candidate for the track.
//
// Results flagged as coming from an ISRC-scoped query feed the fast
// path first; when that declines, every candidate goes through the
// full signal extraction and two-phase ranking.
func Match(track *entity.Track, results []provider.SearchResult) (string, bool) {
	if track.ISRC != "" {
		var scoped []provider.SearchResult
		for _, result := range results {
			if result.IsrcSearch {
				scoped = append(scoped, result)
			}
		}
		if url, ok := MatchISRC(track, scoped); ok {
			return url, true
		}
	}

	return Best(track, results)
}

// Inspect exposes the per-signal breakdown the ranker would compute
// for one candidate, for display purposes. The boolean mirrors the
// rejection rules: false means the candidate never enters ranking.
func Inspect(track *entity.Track, result provider.SearchResult) (Signals, float64, bool) {
	signals := Signals{
		Name:     nameScore(track, result),
		Artist:   artistScore(track, result),
		Duration: durationScore(track, result),
	}
	if result.Type == provider.TypeSong && result.Album != "" {
		signals.Album = albumScore(track, result)
	}

	value, ok := aggregate(track, result)
	return signals, value, ok
}
