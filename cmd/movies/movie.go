package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/spf13/cobra"
)

type movieOutput struct {
	Details data.Item   `json:"details" yaml:"details"`
	Cast    []data.Item `json:"cast" yaml:"cast"`
	Similar []data.Item `json:"similar" yaml:"similar"`
	Liked   bool        `json:"liked" yaml:"liked"`
}

var movieCmd = &cobra.Command{
	Use:   "movie [movie-id]",
	Short: "Show a movie with its cast and similar titles",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		controller := newController()
		defer controller.Close()

		view := controller.Movie(cmd.Context(), args[0])
		if len(view.Details) == 0 {
			cobra.CheckErr(fmt.Errorf("movie %s could not be loaded", args[0]))
		}

		w := cmd.OutOrStdout()
		done, err := writeStructured(w, movieOutput{
			Details: view.Details,
			Cast:    view.Cast,
			Similar: view.Similar,
			Liked:   view.Liked,
		})
		cobra.CheckErr(err)
		if done {
			return
		}

		details := view.Details
		var meta []string
		if year := details.Year(); year != "" {
			meta = append(meta, year)
		}
		if runtime := details.Int("runtime"); runtime > 0 {
			meta = append(meta, fmt.Sprintf("%d min", runtime))
		}
		if genres := details.Names("genres"); len(genres) > 0 {
			meta = append(meta, strings.Join(genres, ", "))
		}
		if vote := details.Float("vote_average"); vote > 0 {
			meta = append(meta, styles.RatingStyle(vote).Render(fmt.Sprintf("★ %.1f", vote)))
		}

		printCard(w, view.Liked, details.Title(), strings.Join(meta, " • "), details.String("overview"))
		cobra.CheckErr(printItems(w, "Cast", view.Cast, []column{idColumn, nameColumn, characterColumn}))
		cobra.CheckErr(printItems(w, "Similar", view.Similar, movieColumns))
	},
}

func printCard(w io.Writer, liked bool, title, meta, body string) {
	card := lipgloss.JoinVertical(lipgloss.Left,
		fmt.Sprintf("%s %s", styles.HeartIcon(liked), styles.TitleStyle.Render(title)),
		styles.MutedStyle.Render(meta),
		"",
		styles.TextStyle.Width(76).Render(body),
	)
	fmt.Fprintln(w, styles.CardStyle.Render(card))
}
