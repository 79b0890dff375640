package matcher

import (
	"testing"

	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/provider"
	"github.com/stretchr/testify/assert"
)

func track() *entity.Track {
	return &entity.Track{
		ID:       "xxx",
		Title:    "Spectre",
		Artists:  []string{"Alan Walker"},
		Album:    "Spectre",
		Duration: 230.6,
	}
}

func TestNameScoreSong(t *testing.T) {
	score := nameScore(track(), provider.SearchResult{
		Type:  provider.TypeSong,
		Title: "Spectre",
	})
	assert.Equal(t, float64(100), score)
}

func TestNameScoreVideo(t *testing.T) {
	// video titles embed the artist: the synthetic query form has to
	// compare clean
	score := nameScore(track(), provider.SearchResult{
		Type:  provider.TypeVideo,
		Title: "Alan Walker - Spectre",
	})
	assert.Equal(t, float64(100), score)
}

func TestArtistScoreSong(t *testing.T) {
	score := artistScore(track(), provider.SearchResult{
		Type:    provider.TypeSong,
		Artists: []string{"Alan Walker"},
	})
	assert.Equal(t, float64(100), score)
}

func TestArtistScoreSongAverages(t *testing.T) {
	// one expected artist missing from the result proportionally
	// drags the average down
	duet := track()
	duet.Artists = []string{"Alan Walker", "Completely Absent Feature"}
	score := artistScore(duet, provider.SearchResult{
		Type:    provider.TypeSong,
		Artists: []string{"Alan Walker"},
	})
	assert.Less(t, score, float64(100))
}

func TestArtistScoreVideoChannelFallback(t *testing.T) {
	// nothing in the title names the artist: the uploader name is
	// the only usable signal
	score := artistScore(track(), provider.SearchResult{
		Type:    provider.TypeVideo,
		Title:   "Spectre (Official Music Video)",
		Channel: "Alan Walker",
	})
	assert.Equal(t, float64(100), score)
}

func TestArtistScoreVideoChannelFallbackUndivided(t *testing.T) {
	// once the channel fallback kicks in, the score is no longer
	// divided by the expected artist count
	duet := track()
	duet.Title = "Ignite"
	duet.Artists = []string{"Alan Walker", "K-391"}
	score := artistScore(duet, provider.SearchResult{
		Type:    provider.TypeVideo,
		Title:   "Ignite",
		Channel: "Alan Walker",
	})
	assert.GreaterOrEqual(t, score, float64(100))
}

func TestAlbumScore(t *testing.T) {
	score := albumScore(track(), provider.SearchResult{
		Type:  provider.TypeSong,
		Album: "Spectre",
	})
	assert.Equal(t, float64(100), score)
}

func TestDurationScore(t *testing.T) {
	assert.Equal(t, float64(100), durationScore(track(), provider.SearchResult{Duration: 230.6}))

	near := durationScore(track(), provider.SearchResult{Duration: 231.0})
	assert.Greater(t, near, float64(99))
	assert.Less(t, near, float64(100))

	// deliberately unfloored: gross mismatches sink below zero
	far := durationScore(track(), provider.SearchResult{Duration: 500})
	assert.Less(t, far, float64(0))
}
