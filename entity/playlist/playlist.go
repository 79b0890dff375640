package playlist

import (
	"fmt"

	"github.com/ppartarr/melotube/entity"
)

type Playlist struct {
	ID     string
	Name   string
	Owner  string
	Tracks []*entity.Track
}

// Encoder returns the on-disk encoder registered
// for the given format.
func (playlist *Playlist) Encoder(encoding string) (Encoder, error) {
	switch encoding {
	case "m3u":
		return newM3UEncoder(playlist)
	case "pls":
		return newPLSEncoder(playlist)
	default:
		return nil, fmt.Errorf("unsupported playlist encoding %q", encoding)
	}
}
