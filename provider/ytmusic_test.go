package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

const trackSearchPage = `{
	"tracks": [
		{
			"videoId": "abc123",
			"title": "Title",
			"artists": [{"name": "Artist"}, {"name": "Friend"}],
			"album": {"name": "Album"},
			"duration": 231
		},
		{
			"videoId": "",
			"title": "No video attached"
		}
	],
	"continuation": "token"
}`

func TestYTMusicParse(t *testing.T) {
	results := ytMusic{}.parse([]byte(trackSearchPage), false)
	assert.Len(t, results, 1)
	assert.Equal(t, SearchResult{
		Source:   "ytmusic",
		Type:     TypeSong,
		URL:      "https://music.youtube.com/watch?v=abc123",
		Title:    "Title",
		Artists:  []string{"Artist", "Friend"},
		Album:    "Album",
		Duration: 231,
	}, results[0])
}

func TestYTMusicParseScoped(t *testing.T) {
	results := ytMusic{}.parse([]byte(trackSearchPage), true)
	assert.Len(t, results, 1)
	assert.True(t, results[0].IsrcSearch)
}

func TestYTMusicParseEmpty(t *testing.T) {
	assert.Empty(t, ytMusic{}.parse([]byte(`{"tracks": []}`), false))
	assert.Empty(t, ytMusic{}.parse([]byte(`{}`), false))
}
