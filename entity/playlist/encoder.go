package playlist

import (
	"fmt"
	"os"

	"github.com/ppartarr/melotube/entity"
	"github.com/ppartarr/melotube/util"
)

type Encoder interface {
	Add(track *entity.Track) error
	Close() error
}

type m3uEncoder struct {
	file *os.File
}

func newM3UEncoder(playlist *Playlist) (Encoder, error) {
	file, err := os.Create(util.LegalizeFilename(playlist.Name) + ".m3u")
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(file, "#EXTM3U"); err != nil {
		return nil, err
	}
	return &m3uEncoder{file}, nil
}

func (encoder *m3uEncoder) Add(track *entity.Track) error {
	if _, err := fmt.Fprintf(encoder.file, "#EXTINF:%.0f,%s - %s\n",
		track.Duration, track.Artists[0], track.Title); err != nil {
		return err
	}
	_, err := fmt.Fprintln(encoder.file, track.Path().Final())
	return err
}

func (encoder *m3uEncoder) Close() error {
	return encoder.file.Close()
}

type plsEncoder struct {
	file    *os.File
	counter int
}

func newPLSEncoder(playlist *Playlist) (Encoder, error) {
	file, err := os.Create(util.LegalizeFilename(playlist.Name) + ".pls")
	if err != nil {
		return nil, err
	}
	if _, err := fmt.Fprintln(file, "[playlist]"); err != nil {
		return nil, err
	}
	return &plsEncoder{file: file}, nil
}

func (encoder *plsEncoder) Add(track *entity.Track) error {
	encoder.counter++
	_, err := fmt.Fprintf(encoder.file,
		"File%d=%s\nTitle%d=%s - %s\nLength%d=%.0f\n",
		encoder.counter, track.Path().Final(),
		encoder.counter, track.Artists[0], track.Title,
		encoder.counter, track.Duration)
	return err
}

func (encoder *plsEncoder) Close() error {
	if _, err := fmt.Fprintf(encoder.file,
		"NumberOfEntries=%d\nVersion=2\n", encoder.counter); err != nil {
		return err
	}
	return encoder.file.Close()
}
