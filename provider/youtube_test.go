package provider

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/ppartarr/melotube/entity"
	"github.com/stretchr/testify/assert"
)

const resultsDocument = `{
	"contents": {
		"twoColumnSearchResultsRenderer": {
			"primaryContents": {
				"sectionListRenderer": {
					"contents": [{
						"itemSectionRenderer": {
							"contents": [
								{"promotedSparklesWebRenderer": {}},
								{"videoRenderer": {
									"videoId": "dQw4w9WgXcQ",
									"title": {"runs": [{"text": "Title (Official Video)"}]},
									"ownerText": {"runs": [{"text": "Channel"}]},
									"lengthText": {"simpleText": "3:51"}
								}},
								{"videoRenderer": {
									"videoId": "",
									"title": {"runs": [{"text": "Broken"}]}
								}}
							]
						}
					}]
				}
			}
		}
	}
}`

func TestInitialData(t *testing.T) {
	body := `<script>var ytInitialData = {"contents": {}};</script>`
	data, err := initialData(body)
	assert.Nil(t, err)
	assert.Equal(t, `{"contents": {}}`, data)
}

func TestInitialDataMissing(t *testing.T) {
	_, err := initialData("<html></html>")
	assert.Error(t, err)

	_, err = initialData("var ytInitialData = {truncated")
	assert.Error(t, err)
}

func TestParse(t *testing.T) {
	results := youTube{}.parse(resultsDocument)
	assert.Len(t, results, 1)
	assert.Equal(t, SearchResult{
		Source:   "youtube",
		Type:     TypeVideo,
		URL:      "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title:    "Title (Official Video)",
		Channel:  "Channel",
		Duration: 231,
	}, results[0])
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 231.0, parseDuration("3:51"))
	assert.Equal(t, 3735.0, parseDuration("1:02:15"))
	assert.Equal(t, 7.0, parseDuration("0:07"))
	assert.Zero(t, parseDuration(""))
	assert.Zero(t, parseDuration("live"))
}

func TestSearch(t *testing.T) {
	patch := gomonkey.ApplyFunc(http.Get, func(string) (*http.Response, error) {
		body := "<script>var ytInitialData = " + resultsDocument + ";</script>"
		return &http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader(body)),
		}, nil
	})
	defer patch.Reset()

	results, err := youTube{}.Search(&entity.Track{
		Title:   "Title",
		Artists: []string{"Artist"},
	})
	assert.Nil(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", results[0].URL)
}

func TestSearchFailingStatus(t *testing.T) {
	patch := gomonkey.ApplyFunc(http.Get, func(string) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusTooManyRequests,
			Status:     "429 Too Many Requests",
			Body:       io.NopCloser(strings.NewReader("")),
		}, nil
	})
	defer patch.Reset()

	_, err := youTube{}.Search(&entity.Track{Title: "Title", Artists: []string{"Artist"}})
	assert.Error(t, err)
}

func TestSearchISRCUnsupported(t *testing.T) {
	results, err := youTube{}.SearchISRC(&entity.Track{ISRC: "GBSMU7300501"})
	assert.Nil(t, err)
	assert.Empty(t, results)
}
