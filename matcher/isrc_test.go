package matcher

import (
	"testing"

	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/provider"
	"github.com/stretchr/testify/assert"
)

func isrcTrack() *entity.Track {
	tagged := track()
	tagged.ISRC = "GBSMU7300501"
	return tagged
}

func scopedResult() provider.SearchResult {
	return provider.SearchResult{
		Type:       provider.TypeSong,
		URL:        "https://music.youtube.com/watch?v=scoped",
		Title:      "spectre", // case differs on purpose
		Artists:    []string{"Alan Walker"},
		Album:      "Spectre",
		Duration:   231.0,
		IsrcSearch: true,
	}
}

func TestMatchISRC(t *testing.T) {
	url, ok := MatchISRC(isrcTrack(), []provider.SearchResult{scopedResult()})
	assert.True(t, ok)
	assert.Equal(t, "https://music.youtube.com/watch?v=scoped", url)
}

func TestMatchISRCNeedsCode(t *testing.T) {
	_, ok := MatchISRC(track(), []provider.SearchResult{scopedResult()})
	assert.False(t, ok)
}

func TestMatchISRCNeedsSingleResult(t *testing.T) {
	_, ok := MatchISRC(isrcTrack(), nil)
	assert.False(t, ok)

	_, ok = MatchISRC(isrcTrack(), []provider.SearchResult{scopedResult(), scopedResult()})
	assert.False(t, ok)
}

func TestMatchISRCNeedsExactTitle(t *testing.T) {
	// strict equality, not fuzziness: a scoped search returning a
	// variant title is not trusted
	variant := scopedResult()
	variant.Title = "Spectre (Live)"
	_, ok := MatchISRC(isrcTrack(), []provider.SearchResult{variant})
	assert.False(t, ok)
}

func TestMatchISRCNeedsTightDuration(t *testing.T) {
	sloppy := scopedResult()
	sloppy.Duration = 260.0
	_, ok := MatchISRC(isrcTrack(), []provider.SearchResult{sloppy})
	assert.False(t, ok)
}

func TestMatchShortCircuitsOnISRC(t *testing.T) {
	// a decoy scoring higher through the full pipeline must still
	// lose to the fast path
	decoy := provider.SearchResult{
		Type:     provider.TypeSong,
		URL:      "https://music.youtube.com/watch?v=decoy",
		Title:    "Spectre",
		Artists:  []string{"Alan Walker"},
		Album:    "Spectre",
		Duration: 230.6,
	}

	url, ok := Match(isrcTrack(), []provider.SearchResult{decoy, scopedResult()})
	assert.True(t, ok)
	assert.Equal(t, "https://music.youtube.com/watch?v=scoped", url)
}

func TestMatchFallsThroughPipeline(t *testing.T) {
	// failed fast path checks leave the ordinary ranking in charge
	sloppy := scopedResult()
	sloppy.Duration = 260.0
	candidate := provider.SearchResult{
		Type:     provider.TypeSong,
		URL:      "https://music.youtube.com/watch?v=ranked",
		Title:    "Spectre",
		Artists:  []string{"Alan Walker"},
		Album:    "Spectre",
		Duration: 230.6,
	}

	url, ok := Match(isrcTrack(), []provider.SearchResult{sloppy, candidate})
	assert.True(t, ok)
	assert.Equal(t, candidate.URL, url)
}

func TestMatchNoCandidates(t *testing.T) {
	url, ok := Match(track(), nil)
	assert.False(t, ok)
	assert.Empty(t, url)
}

func TestInspect(t *testing.T) {
	signals, value, ok := Inspect(track(), provider.SearchResult{
		Type:     provider.TypeSong,
		URL:      "https://music.youtube.com/watch?v=close",
		Title:    "Spectre",
		Artists:  []string{"Alan Walker"},
		Album:    "Spectre",
		Duration: 231.0,
	})
	assert.True(t, ok)
	assert.Equal(t, float64(100), signals.Name)
	assert.Equal(t, float64(100), signals.Artist)
	assert.Equal(t, float64(100), signals.Album)
	assert.Greater(t, signals.Duration, float64(99))
	assert.GreaterOrEqual(t, value, float64(99))

	_, _, ok = Inspect(track(), provider.SearchResult{
		Type:     provider.TypeSong,
		Title:    "Spectre (Live)",
		Artists:  []string{"Someone Else"},
		Duration: 400,
	})
	assert.False(t, ok)
}
