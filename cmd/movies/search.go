package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/kerbaras/movies/pkg/services"
	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search for movies",
	Long:  "Search TMDB for movies by title and display results in a table",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		query := strings.Join(args, " ")
		if utf8.RuneCountInString(query) < services.MinSearchLength {
			cobra.CheckErr(fmt.Errorf("query must be at least %d characters", services.MinSearchLength))
		}

		controller := newController()
		defer controller.Close()

		results := controller.Search(cmd.Context(), query)
		cobra.CheckErr(printItems(cmd.OutOrStdout(), fmt.Sprintf("Results for %q", query), results, movieColumns))
	},
}
