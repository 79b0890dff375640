package provider

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/ppartarr/melotube/entity"
	"github.com/tidwall/gjson"
)

const (
	youTubeResultsURL = "https://www.youtube.com/results?search_query="
	youTubeWatchURL   = "https://www.youtube.com/watch?v="
	youTubeDataPrefix = "var ytInitialData = "
)

type youTube struct{}

func (youTube) Name() string {
	return "youtube"
}

func (provider youTube) Search(track *entity.Track) ([]SearchResult, error) {
	response, err := http.Get(youTubeResultsURL + url.QueryEscape(track.Query()))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, errors.New("youtube results lookup got status " + response.Status)
	}

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	data, err := initialData(string(body))
	if err != nil {
		return nil, err
	}
	return provider.parse(data), nil
}

// SearchISRC is unsupported on plain YouTube: video results carry no
// recording code to scope the query on.
func (youTube) SearchISRC(*entity.Track) ([]SearchResult, error) {
	return nil, nil
}

// initialData extracts the embedded ytInitialData JSON document from
// a results page.
func initialData(body string) (string, error) {
	start := strings.Index(body, youTubeDataPrefix)
	if start < 0 {
		return "", errors.New("no initial data in youtube results page")
	}

	blob := body[start+len(youTubeDataPrefix):]
	end := strings.Index(blob, "};")
	if end < 0 {
		return "", errors.New("malformed initial data in youtube results page")
	}
	return blob[:end+1], nil
}

func (provider youTube) parse(data string) []SearchResult {
	var results []SearchResult
	sections := gjson.Get(data,
		"contents.twoColumnSearchResultsRenderer.primaryContents.sectionListRenderer.contents")
	for _, section := range sections.Array() {
		for _, item := range section.Get("itemSectionRenderer.contents").Array() {
			video := item.Get("videoRenderer")
			if !video.Exists() {
				continue
			}

			id := video.Get("videoId").String()
			if id == "" {
				continue
			}

			results = append(results, SearchResult{
				Source:   provider.Name(),
				Type:     TypeVideo,
				URL:      youTubeWatchURL + id,
				Title:    video.Get("title.runs.0.text").String(),
				Channel:  video.Get("ownerText.runs.0.text").String(),
				Duration: parseDuration(video.Get("lengthText.simpleText").String()),
			})
		}
	}
	return results
}

// parseDuration converts a clock-formatted length ("3:51", "1:02:15")
// into seconds. Unparsable input yields 0.
func parseDuration(clock string) float64 {
	var seconds float64
	for _, field := range strings.Split(clock, ":") {
		value, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			return 0
		}
		seconds = seconds*60 + float64(value)
	}
	return seconds
}
