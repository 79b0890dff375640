package processor

import (
	"bytes"
	"image"
	"image/jpeg"
	"testing"

	"github.com/stretchr/testify/assert"
)

func cover(t *testing.T, width, height int) []byte {
	var buffer bytes.Buffer
	assert.Nil(t, jpeg.Encode(&buffer, image.NewRGBA(image.Rect(0, 0, width, height)), nil))
	return buffer.Bytes()
}

func TestArtworkResizes(t *testing.T) {
	scaled, err := Artwork{}.Do(cover(t, 1000, 1000))
	assert.Nil(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(scaled))
	assert.Nil(t, err)
	assert.Equal(t, 500, decoded.Bounds().Dx())
	assert.Equal(t, 500, decoded.Bounds().Dy())
}

func TestArtworkKeepsSmallImages(t *testing.T) {
	scaled, err := Artwork{}.Do(cover(t, 300, 300))
	assert.Nil(t, err)

	decoded, err := jpeg.Decode(bytes.NewReader(scaled))
	assert.Nil(t, err)
	assert.Equal(t, 300, decoded.Bounds().Dx())
}

func TestArtworkIgnoresForeignFormats(t *testing.T) {
	asset := []byte("definitely not a jpeg")
	passed, err := Artwork{}.Do(asset)
	assert.Nil(t, err)
	assert.Equal(t, asset, passed)
}
