package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/bogem/id3v2/v2"
	"github.com/ppartarr/melotube/downloader"
	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/entity/id3"
	"github.com/ppartarr/melotube/entity/index"
	"github.com/ppartarr/melotube/processor"
	melospotify "github.com/ppartarr/melotube/spotify"
	"github.com/ppartarr/melotube/util"
	"github.com/spf13/cobra"
	"github.com/zmb3/spotify/v2"
)

func init() {
	cmdRoot.AddCommand(cmdInit())
}

// init walks a local library tagging files that predate this tool,
// resolving their Spotify identity from the file name
func cmdInit() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "init",
		Short:        "Init ID3v2 data for local library",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir := util.ErrWrap(xdg.UserDirs.Music)(cmd.Flags().GetString("library"))

			client, err := melospotify.Authenticate(melospotify.BrowserProcessor)
			if err != nil {
				return err
			}

			return initDirectory(dir, client)
		},
	}
	cmd.Flags().StringP("library", "l", xdg.UserDirs.Music, "Path to music library")
	return cmd
}

func initDirectory(dir string, client *melospotify.Client) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), "."+entity.TrackFormat) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		if err := initFile(path, client); err != nil {
			tui.Printf("skipping %s: %s", entry.Name(), err)
		}
	}
	return nil
}

func initFile(path string, client *melospotify.Client) error {
	tag, err := id3.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}

	if id := tag.SpotifyID(); len(id) > 0 {
		// already initialized
		return tag.Close()
	}
	if err := tag.Close(); err != nil {
		return err
	}

	artist, title, err := parseFilename(filepath.Base(path))
	if err != nil {
		return err
	}

	results, err := searchUpstream(client, artist, title)
	if err != nil {
		return err
	}

	var match *spotify.FullTrack
	if len(results) > 0 && results[0].Name == title {
		match = results[0]
	} else if match = promptForTrack(artist, title, results); match == nil {
		tui.Printf("skipped %s", filepath.Base(path))
		return nil
	}

	return initTags(client, path, match.ID.String())
}

// parseFilename expects the "Artist - Title" shape Final() produces,
// dropping any trailing variant or featuring parenthesis
func parseFilename(name string) (artist, title string, err error) {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	parts := strings.SplitN(stem, " - ", 2)
	if len(parts) != 2 {
		return "", "", errors.New("file name not in artist - title shape")
	}

	artist, title = parts[0], parts[1]
	if index := strings.Index(title, "("); index != -1 {
		title = strings.TrimSpace(title[:index])
	}
	return artist, title, nil
}

func searchUpstream(client *melospotify.Client, artist, title string) ([]*spotify.FullTrack, error) {
	results, err := client.Search(
		context.Background(),
		fmt.Sprintf("artist:%s track:%s", artist, title),
		spotify.SearchTypeTrack,
	)
	if err != nil {
		return nil, err
	}

	tracks := []*spotify.FullTrack{}
	if results.Tracks != nil {
		for index := range results.Tracks.Tracks {
			tracks = append(tracks, &results.Tracks.Tracks[index])
		}
	}
	return tracks, nil
}

func promptForTrack(artist, title string, results []*spotify.FullTrack) *spotify.FullTrack {
	tui.Printf("no exact match for %s by %s", title, artist)
	if len(results) == 1 {
		return results[0]
	}
	for index, track := range results {
		tui.Printf("%d. %s by %s (album %s)", index+1, track.Name, track.Artists[0].Name, track.Album.Name)
	}

	input := tui.Reads("track number (empty to skip):")
	if input == "" {
		return nil
	}
	choice, err := strconv.Atoi(input)
	if err != nil || choice < 1 || choice > len(results) {
		return nil
	}
	return results[choice-1]
}

func initTags(client *melospotify.Client, path, id string) error {
	track, err := client.Track(id)
	if err != nil {
		return err
	}

	artwork := make(chan []byte, 1)
	defer close(artwork)
	if err := downloader.Download(
		track.Artwork.URL, track.Path().Artwork(),
		processor.Artwork{}, artwork); err != nil {
		return err
	}

	tag, err := id3.Open(path, id3v2.Options{Parse: true})
	if err != nil {
		return err
	}
	defer tag.Close()

	tag.SetSpotifyID(track.ID)
	tag.SetTitle(track.Title)
	tag.SetArtist(track.Artists[0])
	tag.SetAlbum(track.Album)
	tag.SetArtworkURL(track.Artwork.URL)
	tag.SetAttachedPicture(<-artwork)
	tag.SetDuration(fmt.Sprintf("%.0f", track.Duration))
	tag.SetTrackNumber(strconv.Itoa(track.Number))
	tag.SetYear(strconv.Itoa(track.Year))

	if err := tag.Save(); err != nil {
		return err
	}

	indexData.SetPath(path, index.Installed)
	tui.Printf("initialized %s", filepath.Base(path))
	return nil
}
