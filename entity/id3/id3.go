// Package id3 thinly wraps bogem/id3v2 tags adding the custom
// comment frames melotube relies on to recognize its own files.
package id3

import (
	"github.com/bogem/id3v2/v2"
)

const (
	frameSpotifyID   = "spotify id"
	frameDuration    = "duration"
	frameArtworkURL  = "artwork url"
	frameUpstreamURL = "upstream url"
	frameLyrics      = "lyrics"
)

type Tag struct {
	*id3v2.Tag
}

func Open(path string, options id3v2.Options) (*Tag, error) {
	tag, err := id3v2.Open(path, options)
	if err != nil {
		return nil, err
	}
	return &Tag{tag}, nil
}

func (tag *Tag) comment(description string) string {
	for _, frame := range tag.GetFrames(tag.CommonID("Comments")) {
		comment, ok := frame.(id3v2.CommentFrame)
		if ok && comment.Description == description {
			return comment.Text
		}
	}
	return ""
}

func (tag *Tag) setComment(description, text string) {
	tag.AddCommentFrame(id3v2.CommentFrame{
		Encoding:    id3v2.EncodingUTF8,
		Language:    "eng",
		Description: description,
		Text:        text,
	})
}

func (tag *Tag) SpotifyID() string {
	return tag.comment(frameSpotifyID)
}

func (tag *Tag) SetSpotifyID(id string) {
	tag.setComment(frameSpotifyID, id)
}

func (tag *Tag) Duration() string {
	return tag.comment(frameDuration)
}

func (tag *Tag) SetDuration(duration string) {
	tag.setComment(frameDuration, duration)
}

func (tag *Tag) ArtworkURL() string {
	return tag.comment(frameArtworkURL)
}

func (tag *Tag) SetArtworkURL(url string) {
	tag.setComment(frameArtworkURL, url)
}

func (tag *Tag) UpstreamURL() string {
	return tag.comment(frameUpstreamURL)
}

func (tag *Tag) SetUpstreamURL(url string) {
	tag.setComment(frameUpstreamURL, url)
}

func (tag *Tag) SetTrackNumber(number string) {
	tag.AddTextFrame(tag.CommonID("Track number/Position in set"), id3v2.EncodingUTF8, number)
}

func (tag *Tag) SetAttachedPicture(data []byte) {
	tag.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    id3v2.EncodingUTF8,
		MimeType:    "image/jpeg",
		PictureType: id3v2.PTFrontCover,
		Description: "Front cover",
		Picture:     data,
	})
}

func (tag *Tag) SetLyrics(lyrics string) {
	tag.AddUnsynchronisedLyricsFrame(id3v2.UnsynchronisedLyricsFrame{
		Encoding:          id3v2.EncodingUTF8,
		Language:          "eng",
		ContentDescriptor: frameLyrics,
		Lyrics:            lyrics,
	})
}
