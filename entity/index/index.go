// Package index tracks the synchronization status of the local music
// library, keyed by Spotify ID.
package index

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bogem/id3v2/v2"
	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/entity/id3"
)

const (
	Offline int = iota // found locally, not on the upstream collection
	Online             // on the upstream collection, not yet downloaded
	Installed          // downloaded and tagged
	Flush              // to be re-downloaded regardless of local state
)

type Index struct {
	mutex sync.RWMutex
	data  map[string]int    // Spotify ID to status
	paths map[string]string // Spotify ID to local path
}

func New() *Index {
	return &Index{
		data:  map[string]int{},
		paths: map[string]string{},
	}
}

// Build walks the given path recording every track
// already carrying a Spotify ID frame.
func (index *Index) Build(path string) error {
	return filepath.Walk(path, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() ||
			!strings.HasSuffix(strings.ToLower(path), entity.TrackFormat) {
			return err
		}

		tag, tagErr := id3.Open(path, id3v2.Options{Parse: true})
		if tagErr != nil {
			// not a readable mp3, not our business
			return nil
		}
		defer tag.Close()

		if id := tag.SpotifyID(); len(id) > 0 {
			index.mutex.Lock()
			index.data[id] = Offline
			index.paths[id] = path
			index.mutex.Unlock()
		}
		return nil
	})
}

func (index *Index) Get(track *entity.Track) (int, bool) {
	index.mutex.RLock()
	defer index.mutex.RUnlock()
	status, ok := index.data[track.ID]
	return status, ok
}

func (index *Index) Set(track *entity.Track, status int) {
	index.mutex.Lock()
	defer index.mutex.Unlock()
	index.data[track.ID] = status
}

// SetPath marks the track stored at the given local path,
// parsing its ID frame.
func (index *Index) SetPath(path string, status int) {
	tag, err := id3.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return
	}
	defer tag.Close()

	if id := tag.SpotifyID(); len(id) > 0 {
		index.mutex.Lock()
		defer index.mutex.Unlock()
		index.data[id] = status
		index.paths[id] = path
	}
}

// Size counts tracked entries, filtered by status if any is given.
func (index *Index) Size(statuses ...int) int {
	index.mutex.RLock()
	defer index.mutex.RUnlock()

	if len(statuses) == 0 {
		return len(index.data)
	}

	var counter int
	for _, status := range index.data {
		for _, filter := range statuses {
			if status == filter {
				counter++
				break
			}
		}
	}
	return counter
}
