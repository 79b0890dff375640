package cmd

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/ppartarr/melotube/matcher"
	"github.com/ppartarr/melotube/spotify"
	"github.com/spf13/cobra"
)

func init() {
	cmdRoot.AddCommand(cmdLookup())
}

// lookup runs the provider search and the ranking for a single track
// without downloading anything, showing the per-candidate breakdown
func cmdLookup() *cobra.Command {
	return &cobra.Command{
		Use:          "lookup [track]",
		Short:        "Show provider candidates and their scores for a track",
		SilenceUsage: true,
		Args:         cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			client, err := spotify.Authenticate(spotify.BrowserProcessor)
			if err != nil {
				return err
			}

			track, err := client.Track(args[0])
			if err != nil {
				return err
			}
			fmt.Printf("%s by %s (%.0fs", track.Title, track.Artists[0], track.Duration)
			if track.ISRC != "" {
				fmt.Printf(", isrc %s", track.ISRC)
			}
			fmt.Println(")")

			candidates, err := searchCandidates(track)
			if err != nil {
				return err
			}

			for _, candidate := range candidates {
				signals, value, ok := matcher.Inspect(track, candidate)
				verdict := color.GreenString("%7.2f", value)
				if !ok {
					verdict = color.RedString("rejected")
				}
				fmt.Printf("%s  %s [%s] %s\n", verdict, candidate.Title, candidate.Source, candidate.URL)
				fmt.Printf("          name %.2f, artist %.2f, album %.2f, duration %.2f\n",
					signals.Name, signals.Artist, signals.Album, signals.Duration)
			}

			url, ok := matcher.Match(track, candidates)
			if !ok {
				fmt.Println(color.RedString("no suitable candidate"))
				return nil
			}
			fmt.Printf("best: %s\n", color.GreenString(url))
			return nil
		},
	}
}
