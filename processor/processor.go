// Package processor applies the post-download enhancements turning a
// raw audio blob into a properly tagged library track.
package processor

import (
	"strconv"

	"github.com/bogem/id3v2/v2"
	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/entity/id3"
	"github.com/ppartarr/melotube/util/cmd"
)

// Processor transforms an in-memory asset.
type Processor interface {
	Do(asset []byte) ([]byte, error)
}

// Do normalizes the downloaded blob volume and embeds the track
// metadata, artwork and lyrics into its tags.
func Do(track *entity.Track) error {
	if err := normalize(track); err != nil {
		return err
	}
	return tag(track)
}

func normalize(track *entity.Track) error {
	delta, err := cmd.FFmpegVolumeDetect(track.Path().Download())
	if err != nil {
		return err
	}
	return cmd.FFmpegVolumeAdd(track.Path().Download(), delta)
}

func tag(track *entity.Track) error {
	tag, err := id3.Open(track.Path().Download(), id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.SetSpotifyID(track.ID)
	tag.SetTitle(track.Title)
	tag.SetArtist(track.Artists[0])
	tag.SetAlbum(track.Album)
	tag.SetArtworkURL(track.Artwork.URL)
	tag.SetDuration(strconv.FormatFloat(track.Duration, 'f', 0, 64))
	tag.SetTrackNumber(strconv.Itoa(track.Number))
	tag.SetYear(strconv.Itoa(track.Year))
	tag.SetUpstreamURL(track.UpstreamURL)
	if len(track.Artwork.Data) > 0 {
		tag.SetAttachedPicture(track.Artwork.Data)
	}
	if track.Lyrics != "" {
		tag.SetLyrics(track.Lyrics)
	}
	return tag.Save()
}
