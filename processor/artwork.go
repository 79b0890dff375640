package processor

import (
	"bytes"
	"image/jpeg"

	"github.com/nfnt/resize"
)

const artworkSize = 500

// Artwork normalizes cover images to a fixed square size so every
// player renders them consistently.
type Artwork struct{}

func (Artwork) Do(asset []byte) ([]byte, error) {
	decoded, err := jpeg.Decode(bytes.NewReader(asset))
	if err != nil {
		// not a JPEG: leave the asset untouched
		return asset, nil
	}

	var buffer bytes.Buffer
	scaled := resize.Thumbnail(artworkSize, artworkSize, decoded, resize.Lanczos3)
	if err := jpeg.Encode(&buffer, scaled, nil); err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}
