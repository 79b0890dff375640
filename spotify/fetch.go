package spotify

import (
	"errors"

	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/entity/playlist"
	"github.com/zmb3/spotify/v2"
)

const pageSize = 50

// Track fetches a single track, forwarding it to the given channels.
func (client *Client) Track(trackID string, channels ...chan interface{}) (*entity.Track, error) {
	full, err := client.GetTrack(client.ctx, id(trackID))
	if err != nil {
		return nil, err
	}

	track := trackEntity(full)
	flush(track, channels)
	return track, nil
}

// Album fetches every track of an album, forwarding them to the
// given channels.
func (client *Client) Album(albumID string, channels ...chan interface{}) ([]*entity.Track, error) {
	album, err := client.GetAlbum(client.ctx, id(albumID))
	if err != nil {
		return nil, err
	}

	var tracks []*entity.Track
	for {
		for index := range album.Tracks.Tracks {
			track := albumTrackEntity(&album.Tracks.Tracks[index], album)
			tracks = append(tracks, track)
			flush(track, channels)
		}

		if err := client.NextPage(client.ctx, &album.Tracks); err != nil {
			if errors.Is(err, spotify.ErrNoMorePages) {
				return tracks, nil
			}
			return nil, err
		}
	}
}

// Playlist fetches a playlist with all of its tracks, forwarding the
// tracks to the given channels.
func (client *Client) Playlist(playlistID string, channels ...chan interface{}) (*playlist.Playlist, error) {
	full, err := client.GetPlaylist(client.ctx, id(playlistID))
	if err != nil {
		return nil, err
	}

	entry := &playlist.Playlist{
		ID:    full.ID.String(),
		Name:  full.Name,
		Owner: full.Owner.DisplayName,
	}

	page, err := client.GetPlaylistTracks(client.ctx, id(playlistID), spotify.Limit(pageSize))
	if err != nil {
		return nil, err
	}
	for {
		for index := range page.Tracks {
			track := trackEntity(&page.Tracks[index].Track)
			entry.Tracks = append(entry.Tracks, track)
			flush(track, channels)
		}

		if err := client.NextPage(client.ctx, page); err != nil {
			if errors.Is(err, spotify.ErrNoMorePages) {
				return entry, nil
			}
			return nil, err
		}
	}
}

// Library streams the user's saved tracks, up to limit (everything
// if 0), forwarding them to the given channels.
func (client *Client) Library(limit int, channels ...chan interface{}) error {
	page, err := client.CurrentUsersTracks(client.ctx, spotify.Limit(pageSize))
	if err != nil {
		return err
	}

	var counter int
	for {
		for index := range page.Tracks {
			if limit > 0 && counter >= limit {
				return nil
			}
			counter++
			flush(trackEntity(&page.Tracks[index].FullTrack), channels)
		}

		if err := client.NextPage(client.ctx, page); err != nil {
			if errors.Is(err, spotify.ErrNoMorePages) {
				return nil
			}
			return err
		}
	}
}
