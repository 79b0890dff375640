// Package lyrics scrapes song lyrics from Genius. Best effort only:
// a track without lyrics is still a perfectly good track.
package lyrics

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/ppartarr/melotube/entity"
	"github.com/tidwall/gjson"
)

const (
	searchURL = "https://genius.com/api/search/song?q="
	userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36"
)

var ErrNotFound = errors.New("no lyrics found")

// Search looks the track lyrics up, returning ErrNotFound when the
// track cannot be located upstream.
func Search(track *entity.Track) (string, error) {
	page, err := songPage(track)
	if err != nil {
		return "", err
	}
	return scrape(page)
}

// songPage resolves the Genius song page URL for the track.
func songPage(track *entity.Track) (string, error) {
	body, err := get(searchURL + url.QueryEscape(track.Artists[0]+" "+track.Song()))
	if err != nil {
		return "", err
	}

	hits := gjson.GetBytes(body, "response.sections.0.hits")
	for _, hit := range hits.Array() {
		if page := hit.Get("result.url").String(); page != "" {
			return page, nil
		}
	}
	return "", ErrNotFound
}

func scrape(page string) (string, error) {
	body, err := get(page)
	if err != nil {
		return "", err
	}

	document, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return "", err
	}

	var builder strings.Builder
	document.Find("div[data-lyrics-container='true']").Each(func(_ int, container *goquery.Selection) {
		html, err := container.Html()
		if err != nil {
			return
		}
		for _, line := range strings.Split(strings.ReplaceAll(html, "<br/>", "\n"), "\n") {
			builder.WriteString(strip(line) + "\n")
		}
	})

	lyrics := strings.TrimSpace(builder.String())
	if lyrics == "" {
		return "", ErrNotFound
	}
	return lyrics, nil
}

// strip drops markup fragments leaving the bare text of a line.
func strip(line string) string {
	document, err := goquery.NewDocumentFromReader(strings.NewReader(line))
	if err != nil {
		return line
	}
	return document.Text()
}

func get(target string) ([]byte, error) {
	request, err := http.NewRequest(http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	request.Header.Set("User-Agent", userAgent)

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, errors.New("lyrics lookup got status " + response.Status)
	}
	return io.ReadAll(response.Body)
}
