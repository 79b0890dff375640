package entity

import (
	"fmt"
	"path"
	"strings"

	"github.com/gosimple/slug"
	"github.com/ppartarr/melotube/util"
)

type Artwork struct {
	URL  string
	Data []byte
}

type Track struct {
	ID          string
	Title       string
	Artists     []string // first entry is the primary artist
	Album       string
	Artwork     Artwork
	Duration    float64 // in seconds
	ISRC        string  // International Standard Recording Code, possibly empty
	Lyrics      string
	Number      int // track number within the album
	Year        int
	UpstreamURL string // URL to the upstream blob the song's been downloaded from
}

type TrackPath struct {
	track *Track
}

const (
	TrackFormat   = "mp3"
	ArtworkFormat = "jpg"
	LyricsFormat  = "txt"
)

// certain track titles include the variant description,
// this functions aims to strip out that part:
// > Title: Name - Acoustic
// > Song:  Name
func (track *Track) Song() (song string) {
	// it can very easily happen to encounter tracks
	// that contains artifacts in the title which do not
	// really define them as songs, rather indicate
	// the variant of the song
	song = track.Title
	song = strings.Split(song+" - ", " - ")[0]
	song = strings.Split(song+" (", " (")[0]
	song = strings.Split(song+" [", " [")[0]
	return
}

// Query is the search string handed to audio providers,
// in the conventional "artists - title" shape.
func (track *Track) Query() string {
	return fmt.Sprintf("%s - %s", strings.Join(track.Artists, ", "), track.Title)
}

func (track *Track) Path() TrackPath {
	return TrackPath{track}
}

func (trackPath TrackPath) Final() string {
	primaryArtist := strings.ReplaceAll(trackPath.track.Artists[0], ".", "")

	title := trackPath.track.Title
	if idx := strings.Index(title, " - "); idx > 0 {
		baseName := strings.TrimSpace(title[:idx])
		variant := strings.TrimSpace(title[idx+3:])
		title = fmt.Sprintf("%s (%s)", baseName, variant)
	}

	if len(trackPath.track.Artists) > 1 {
		featured := make([]string, 0, len(trackPath.track.Artists)-1)
		for _, artist := range trackPath.track.Artists[1:] {
			featured = append(featured, strings.ReplaceAll(artist, ".", ""))
		}
		title = fmt.Sprintf("%s (ft %s)", title, strings.Join(featured, ", "))
	}

	return util.LegalizeFilename(fmt.Sprintf("%s - %s.%s", primaryArtist, title, TrackFormat))
}

func (trackPath TrackPath) Download() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(trackPath.track.ID), TrackFormat)),
	)
}

func (trackPath TrackPath) Artwork() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(path.Base(trackPath.track.Artwork.URL)), ArtworkFormat)),
	)
}

func (trackPath TrackPath) Lyrics() string {
	return util.CacheFile(
		util.LegalizeFilename(fmt.Sprintf("%s.%s", slug.Make(trackPath.track.ID), LyricsFormat)),
	)
}
