// Package downloader fetches remote blobs to the local cache,
// delegating YouTube URLs to yt-dlp and anything else to a plain
// HTTP transfer.
package downloader

import (
	"errors"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/ppartarr/melotube/processor"
	"github.com/ppartarr/melotube/util/cmd"
)

// Download pulls the given URL to path. When a processor is given,
// the blob goes through it before touching disk; every given channel
// receives a copy of the final bytes.
func Download(url, path string, applier processor.Processor, channels ...chan []byte) error {
	if strings.Contains(url, "youtube.com") || strings.Contains(url, "youtu.be") {
		return cmd.YouTubeDl(url, path)
	}
	return blob(url, path, applier, channels...)
}

func blob(url, path string, applier processor.Processor, channels ...chan []byte) error {
	response, err := http.Get(url)
	if err != nil {
		return err
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return errors.New("blob download got status " + response.Status)
	}

	data, err := io.ReadAll(response.Body)
	if err != nil {
		return err
	}

	if applier != nil {
		if data, err = applier.Do(data); err != nil {
			return err
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}

	for _, channel := range channels {
		channel <- data
	}
	return nil
}
