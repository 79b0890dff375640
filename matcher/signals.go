package matcher

import (
	"strings"

	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/provider"
)

// videoArtistRetryCeiling is the artist score at or below which a
// video result gets a second chance through its channel name.
const videoArtistRetryCeiling = 50

// Signals carries the independent match scores computed for a single
// (track, result) pair, before aggregation.
type Signals struct {
	Name     float64
	Artist   float64
	Album    float64 // meaningful for song results with album data only
	Duration float64 // unbounded below: gross mismatches go negative
}

func nameScore(track *entity.Track, result provider.SearchResult) float64 {
	target := Normalize(track.Title)
	if result.Type == provider.TypeVideo {
		// video titles tend to embed the artist name, so compare
		// against the full search-query form instead
		target = Normalize(track.Query())
	}
	return Similarity(Normalize(result.Title), target, 0)
}

func artistScore(track *entity.Track, result provider.SearchResult) float64 {
	if result.Type == provider.TypeSong && len(result.Artists) > 0 {
		return artistListScore(track, Normalize(strings.Join(result.Artists, ", ")))
	}

	// videos expose no structured artist field: look for the artists
	// inside the title itself
	score := artistListScore(track, Normalize(result.Title))
	if score <= videoArtistRetryCeiling && result.Channel != "" {
		// weak title evidence, fall back on the uploader name; a
		// single channel string cannot name every featured artist,
		// so the fallback sum is not divided by the artist count
		var fallback float64
		for _, artist := range track.Artists {
			fallback += Similarity(Normalize(artist), Normalize(result.Channel), 0)
		}
		if fallback > score {
			score = fallback
		}
	}
	return score
}

// artistListScore averages the similarity of every expected artist
// against the given normalized haystack: each artist missing from it
// proportionally drags the score down.
func artistListScore(track *entity.Track, haystack string) float64 {
	var sum float64
	for _, artist := range track.Artists {
		sum += Similarity(Normalize(artist), haystack, 0)
	}
	return sum / float64(len(track.Artists))
}

func albumScore(track *entity.Track, result provider.SearchResult) float64 {
	return Similarity(Normalize(result.Album), Normalize(track.Album), 0)
}

// durationScore grows quadratically harsher with the delta and is
// deliberately not floored at zero, in order for grossly mismatched
// lengths to drag the aggregate down.
func durationScore(track *entity.Track, result provider.SearchResult) float64 {
	delta := result.Duration - track.Duration
	return 100 - delta*delta/track.Duration*100
}
