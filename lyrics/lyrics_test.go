package lyrics

import (
	"io"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"github.com/agiledragon/gomonkey/v2"
	"github.com/ppartarr/melotube/entity"
	"github.com/stretchr/testify/assert"
)

const (
	searchDocument = `{
		"response": {
			"sections": [{
				"hits": [{"result": {"url": "https://genius.com/artist-title-lyrics"}}]
			}]
		}
	}`
	lyricsDocument = `<html><body>
		<div data-lyrics-container="true">First line<br/><a href="#">Second</a> line</div>
	</body></html>`
)

func patchGenius(t *testing.T, search, page string) {
	patch := gomonkey.ApplyMethodFunc(
		reflect.TypeOf(http.DefaultClient), "Do",
		func(request *http.Request) (*http.Response, error) {
			body := page
			if strings.Contains(request.URL.Path, "search") {
				body = search
			}
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(body)),
			}, nil
		})
	t.Cleanup(patch.Reset)
}

func track() *entity.Track {
	return &entity.Track{Title: "Title", Artists: []string{"Artist"}}
}

func TestSearch(t *testing.T) {
	patchGenius(t, searchDocument, lyricsDocument)

	lyrics, err := Search(track())
	assert.Nil(t, err)
	assert.Equal(t, "First line\nSecond line", lyrics)
}

func TestSearchNotFound(t *testing.T) {
	patchGenius(t, `{"response": {"sections": []}}`, "")

	_, err := Search(track())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchEmptyLyrics(t *testing.T) {
	patchGenius(t, searchDocument, "<html><body></body></html>")

	_, err := Search(track())
	assert.ErrorIs(t, err, ErrNotFound)
}
