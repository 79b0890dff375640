package matcher

import (
	"strings"

	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/provider"
)

// isrcDurationConfidence is the duration score an ISRC-scoped result
// must exceed for the fast path to accept it.
const isrcDurationConfidence = 90

// MatchISRC is the fast path run before full ranking: given the
// results of an ISRC-scoped search, it accepts a single result whose
// title equals the track title (case-insensitively, no fuzziness:
// an ISRC query should return at most one correct recording) and
// whose duration score clears isrcDurationConfidence. Zero results,
// several results or a failed check fall through to the pipeline.
func MatchISRC(track *entity.Track, scoped []provider.SearchResult) (string, bool) {
	if track.ISRC == "" || len(scoped) != 1 {
		return "", false
	}

	result := scoped[0]
	if !strings.EqualFold(result.Title, track.Title) {
		return "", false
	}
	if durationScore(track, result) <= isrcDurationConfidence {
		return "", false
	}
	return result.URL, true
}
