package spotify

import (
	"context"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/thanhpk/randstr"
	"github.com/zmb3/spotify/v2"
	"golang.org/x/oauth2"
)

// Authenticate walks the PKCE authorization code flow: it spawns a
// one-shot callback listener, hands the authorization URL to the
// given processor and trades the redirect for an API client.
func Authenticate(processor Processor) (*Client, error) {
	id, err := clientID()
	if err != nil {
		return nil, err
	}

	var (
		ctx           = context.Background()
		auth          = authenticator(id)
		state         = randstr.Hex(16)
		verifier      = randstr.Hex(64)
		challengeHash = sha256.Sum256([]byte(verifier))
		challenge     = base64.RawURLEncoding.EncodeToString(challengeHash[:])
		requests      = make(chan *http.Request, 1)
	)

	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(writer http.ResponseWriter, request *http.Request) {
		fmt.Fprintln(writer, "authentication flow completed, get back to the terminal")
		requests <- request
	})
	server := &http.Server{Addr: callbackAddress, Handler: mux}
	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			close(requests)
		}
	}()
	defer server.Close()

	url := auth.AuthURL(state,
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
		oauth2.SetAuthURLParam("code_challenge", challenge),
	)
	if err := processor(url); err != nil {
		return nil, err
	}

	request, ok := <-requests
	if !ok {
		return nil, fmt.Errorf("authentication callback listener failed")
	}

	token, err := auth.Token(ctx, state, request,
		oauth2.SetAuthURLParam("code_verifier", verifier))
	if err != nil {
		return nil, err
	}

	return &Client{
		Client: spotify.New(auth.Client(ctx, token)),
		ctx:    ctx,
	}, nil
}
