package provider

import (
	jsoniter "github.com/json-iterator/go"
	"github.com/ppartarr/melotube/entity"
	"github.com/raitonoberu/ytmusic"
	"github.com/tidwall/gjson"
)

const ytMusicWatchURL = "https://music.youtube.com/watch?v="

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type ytMusic struct{}

func (ytMusic) Name() string {
	return "ytmusic"
}

func (provider ytMusic) Search(track *entity.Track) ([]SearchResult, error) {
	return provider.search(track.Query(), false)
}

func (provider ytMusic) SearchISRC(track *entity.Track) ([]SearchResult, error) {
	return provider.search(track.ISRC, true)
}

func (provider ytMusic) search(query string, isrcScoped bool) ([]SearchResult, error) {
	page, err := ytmusic.TrackSearch(query).Next()
	if err != nil {
		return nil, err
	}

	// the library mirrors the raw YouTube Music payload: round-trip
	// through JSON and cherry-pick the fields we resolve
	blob, err := json.Marshal(page)
	if err != nil {
		return nil, err
	}
	return provider.parse(blob, isrcScoped), nil
}

func (provider ytMusic) parse(blob []byte, isrcScoped bool) []SearchResult {
	var results []SearchResult
	for _, track := range gjson.GetBytes(blob, "tracks").Array() {
		id := track.Get("videoId").String()
		if id == "" {
			continue
		}

		var artists []string
		for _, artist := range track.Get("artists.#.name").Array() {
			artists = append(artists, artist.String())
		}

		results = append(results, SearchResult{
			Source:     provider.Name(),
			Type:       TypeSong,
			URL:        ytMusicWatchURL + id,
			Title:      track.Get("title").String(),
			Artists:    artists,
			Album:      track.Get("album.name").String(),
			Duration:   track.Get("duration").Float(),
			IsrcSearch: isrcScoped,
		})
	}
	return results
}
