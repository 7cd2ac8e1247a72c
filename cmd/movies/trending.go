package cmd

import (
	"context"
	"strings"

	"github.com/kerbaras/movies/pkg/sources"
	"github.com/spf13/cobra"
)

// newListCmd builds one of the regional list commands.
func newListCmd(use, short, heading string, fetch func(sources.Catalog, context.Context) sources.Result) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			region, _ := cmd.Flags().GetString("region")

			controller := newController()
			defer controller.Close()

			catalog := controller.WithRegion(strings.ToUpper(region)).Catalog()
			result := fetch(catalog, cmd.Context())
			if !result.OK() {
				// The list still prints, empty, like the home screen does.
				cliLogger().Warn("catalog request failed", "command", use, "error", result.Err)
			}
			cobra.CheckErr(printItems(cmd.OutOrStdout(), heading, result.Results(), movieColumns))
		},
	}
	cmd.Flags().StringP("region", "r", "", "ISO 3166-1 country code, overrides MOVIES_REGION")
	return cmd
}

var (
	trendingCmd = newListCmd("trending", "Show today's trending movies", "Trending", sources.Catalog.Trending)
	upcomingCmd = newListCmd("upcoming", "Show upcoming movies", "Upcoming", sources.Catalog.Upcoming)
	topRatedCmd = newListCmd("top-rated", "Show the top rated movies", "Top Rated", sources.Catalog.TopRated)
)
