package cmd

import (
	"fmt"
	"strings"

	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/utils"
	"github.com/spf13/cobra"
)

type personOutput struct {
	Details data.Item   `json:"details" yaml:"details"`
	Movies  []data.Item `json:"movies" yaml:"movies"`
	Liked   bool        `json:"liked" yaml:"liked"`
}

var personCmd = &cobra.Command{
	Use:   "person [person-id]",
	Short: "Show a person and the movies they appeared in",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		controller := newController()
		defer controller.Close()

		view := controller.Person(cmd.Context(), args[0])
		if len(view.Details) == 0 {
			cobra.CheckErr(fmt.Errorf("person %s could not be loaded", args[0]))
		}

		w := cmd.OutOrStdout()
		done, err := writeStructured(w, personOutput{Details: view.Details, Movies: view.Movies, Liked: view.Liked})
		cobra.CheckErr(err)
		if done {
			return
		}

		details := view.Details
		var meta []string
		for _, key := range []string{"known_for_department", "birthday", "place_of_birth"} {
			if v := details.String(key); v != "" {
				meta = append(meta, v)
			}
		}

		printCard(w, view.Liked, details.Title(), strings.Join(meta, " • "), utils.Truncate(details.String("biography"), 600))
		cobra.CheckErr(printItems(w, "Movies", view.Movies, []column{idColumn, titleColumn, yearColumn, characterColumn}))
	},
}
