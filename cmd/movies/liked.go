package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/services"
	"github.com/kerbaras/movies/pkg/utils"
	"github.com/spf13/cobra"
)

type likedOutput struct {
	Movies []data.Item `json:"movies,omitempty" yaml:"movies,omitempty"`
	People []data.Item `json:"people,omitempty" yaml:"people,omitempty"`
}

var likedCmd = &cobra.Command{
	Use:       "liked [movies|people]",
	Short:     "List your liked movies and people",
	Long:      "Display your favorites from local storage. No network access is needed.",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"movies", "people"},
	Run: func(cmd *cobra.Command, args []string) {
		which := ""
		if len(args) == 1 {
			which = args[0]
		}
		if which != "" && which != "movies" && which != "people" {
			cobra.CheckErr(fmt.Errorf("unknown list %q (want movies or people)", which))
		}

		controller := newController()
		defer controller.Close()

		var out likedOutput
		if which != "people" {
			out.Movies = controller.Liked(services.LikedMovies)
		}
		if which != "movies" {
			out.People = controller.Liked(services.LikedPeople)
		}

		w := cmd.OutOrStdout()
		done, err := writeStructured(w, out)
		cobra.CheckErr(err)
		if done {
			return
		}

		if which != "people" {
			printFavorites(w, "♥ Liked Movies", out.Movies, []table.Column{
				{Title: "ID", Width: 10},
				{Title: "Title", Width: 40},
				{Title: "Year", Width: 6},
			}, func(i data.Item) table.Row {
				return table.Row{i.ID(), utils.Truncate(i.Title(), 37), i.Year()}
			})
		}
		if which != "movies" {
			printFavorites(w, "♥ Liked People", out.People, []table.Column{
				{Title: "ID", Width: 10},
				{Title: "Name", Width: 40},
				{Title: "Department", Width: 16},
			}, func(i data.Item) table.Row {
				return table.Row{i.ID(), utils.Truncate(i.Title(), 37), i.String("known_for_department")}
			})
		}
	},
}

func printFavorites(w io.Writer, heading string, items []data.Item, columns []table.Column, row func(data.Item) table.Row) {
	if len(items) == 0 {
		fmt.Fprintf(w, "\n%s: none yet. Use 'movies like' to add some.\n", heading)
		return
	}

	rows := make([]table.Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, row(item))
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(len(rows)),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Cell
	t.SetStyles(s)

	fmt.Fprintf(w, "\n%s (%d)\n\n", heading, len(items))
	fmt.Fprintln(w, t.View())
}
