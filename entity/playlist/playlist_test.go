package playlist

import (
	"os"
	"strings"
	"testing"

	"github.com/ppartarr/melotube/entity"
	"github.com/stretchr/testify/assert"
)

func chtemp(t *testing.T) {
	cwd, err := os.Getwd()
	assert.Nil(t, err)
	assert.Nil(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { assert.Nil(t, os.Chdir(cwd)) })
}

func fixture() (*Playlist, *entity.Track) {
	track := &entity.Track{
		ID:       "123",
		Title:    "Title",
		Artists:  []string{"Artist"},
		Duration: 180,
	}
	return &Playlist{
		ID:     "456",
		Name:   "Favourites",
		Owner:  "someone",
		Tracks: []*entity.Track{track},
	}, track
}

func TestEncoderUnsupported(t *testing.T) {
	playlist, _ := fixture()
	_, err := playlist.Encoder("xspf")
	assert.Error(t, err)
}

func TestM3UEncoder(t *testing.T) {
	chtemp(t)
	playlist, track := fixture()

	encoder, err := playlist.Encoder("m3u")
	assert.Nil(t, err)
	assert.Nil(t, encoder.Add(track))
	assert.Nil(t, encoder.Close())

	data, err := os.ReadFile("Favourites.m3u")
	assert.Nil(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		"#EXTM3U",
		"#EXTINF:180,Artist - Title",
		"Artist - Title.mp3",
	}, lines)
}

func TestPLSEncoder(t *testing.T) {
	chtemp(t)
	playlist, track := fixture()

	encoder, err := playlist.Encoder("pls")
	assert.Nil(t, err)
	assert.Nil(t, encoder.Add(track))
	assert.Nil(t, encoder.Close())

	data, err := os.ReadFile("Favourites.pls")
	assert.Nil(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	assert.Equal(t, []string{
		"[playlist]",
		"File1=Artist - Title.mp3",
		"Title1=Artist - Title",
		"Length1=180",
		"NumberOfEntries=1",
		"Version=2",
	}, lines)
}
