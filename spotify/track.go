package spotify

import (
	"strings"

	"github.com/ppartarr/melotube/entity"
	"github.com/zmb3/spotify/v2"
)

// id extracts the bare Spotify ID out of raw IDs, spotify: URIs and
// open.spotify.com URLs alike.
func id(value string) spotify.ID {
	value = strings.TrimSpace(value)
	if strings.Contains(value, "open.spotify.com") {
		value = value[strings.LastIndex(value, "/")+1:]
		if index := strings.Index(value, "?"); index >= 0 {
			value = value[:index]
		}
	}
	if index := strings.LastIndex(value, ":"); index >= 0 {
		value = value[index+1:]
	}
	return spotify.ID(value)
}

func trackEntity(track *spotify.FullTrack) *entity.Track {
	converted := &entity.Track{
		ID:       track.ID.String(),
		Title:    track.Name,
		Album:    track.Album.Name,
		Duration: track.TimeDuration().Seconds(),
		ISRC:     track.ExternalIDs["isrc"],
		Number:   int(track.TrackNumber),
		Year:     track.Album.ReleaseDateTime().Year(),
	}
	for _, artist := range track.Artists {
		converted.Artists = append(converted.Artists, artist.Name)
	}
	if len(track.Album.Images) > 0 {
		converted.Artwork.URL = track.Album.Images[0].URL
	}
	return converted
}

// albumTrackEntity builds a track out of the simplified records an
// album listing carries; no recording code is available there.
func albumTrackEntity(track *spotify.SimpleTrack, album *spotify.FullAlbum) *entity.Track {
	converted := &entity.Track{
		ID:       track.ID.String(),
		Title:    track.Name,
		Album:    album.Name,
		Duration: track.TimeDuration().Seconds(),
		Number:   int(track.TrackNumber),
		Year:     album.ReleaseDateTime().Year(),
	}
	for _, artist := range track.Artists {
		converted.Artists = append(converted.Artists, artist.Name)
	}
	if len(album.Images) > 0 {
		converted.Artwork.URL = album.Images[0].URL
	}
	return converted
}

// flush fans a track out to every given channel.
func flush(track *entity.Track, channels []chan interface{}) {
	for _, channel := range channels {
		channel <- track
	}
}
