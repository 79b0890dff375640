package cmd

import (
	"fmt"
	"os"

	"github.com/ppartarr/melotube/entity/index"
	"github.com/ppartarr/melotube/spotify"
	"github.com/spf13/cobra"
)

var (
	spotifyClient *spotify.Client
	cmdRoot       = &cobra.Command{
		Use:   "melotube",
		Short: "Synchronize Spotify collections downloading from external providers",
	}
	indexData = index.New()
)

func Execute() {
	if err := cmdRoot.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
