// Package spotify adapts the Spotify Web API to the entities the
// rest of the application deals with. Clients are explicitly
// constructed and handed around; no package-level instance exists,
// so tests can substitute fakes freely.
package spotify

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
)

const (
	callbackAddress = "127.0.0.1:65535"
	callbackPath    = "/callback"
)

type Client struct {
	*spotify.Client

	ctx context.Context
}

// Processor consumes the authentication URL the user has to visit,
// e.g. by opening a browser on it.
type Processor func(url string) error

// BrowserProcessor opens the system browser on the authentication
// URL, printing it as a fallback.
func BrowserProcessor(url string) error {
	var command *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		command = exec.Command("open", url)
	case "windows":
		command = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		command = exec.Command("xdg-open", url)
	}

	if err := command.Start(); err != nil {
		fmt.Println("authenticate at:", url)
	}
	return nil
}

func clientID() (string, error) {
	id := os.Getenv("SPOTIFY_ID")
	if id == "" {
		return "", errors.New("SPOTIFY_ID environment variable unset")
	}
	return id, nil
}

func authenticator(id string) *spotifyauth.Authenticator {
	return spotifyauth.New(
		spotifyauth.WithClientID(id),
		spotifyauth.WithRedirectURL("http://"+callbackAddress+callbackPath),
		spotifyauth.WithScopes(
			spotifyauth.ScopeUserLibraryRead,
			spotifyauth.ScopePlaylistReadPrivate,
			spotifyauth.ScopePlaylistReadCollaborative,
		),
	)
}
