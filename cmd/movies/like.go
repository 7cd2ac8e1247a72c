package cmd

import (
	"fmt"

	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/services"
	"github.com/spf13/cobra"
)

var likeCmd = &cobra.Command{
	Use:       "like [movie|person] [id]",
	Short:     "Like or unlike a movie or a person",
	Long:      "Toggle a movie or a person in your favorites. The current catalog entry is stored so liked lists work offline.",
	Args:      cobra.ExactArgs(2),
	ValidArgs: []string{"movie", "person"},
	Run: func(cmd *cobra.Command, args []string) {
		kind, id := args[0], args[1]

		controller := newController()
		defer controller.Close()

		var (
			collection services.Collection
			details    data.Item
		)
		switch kind {
		case "movie":
			collection = services.LikedMovies
			details = controller.Catalog().MovieDetails(cmd.Context(), id).Item
		case "person":
			collection = services.LikedPeople
			details = controller.Catalog().PersonDetails(cmd.Context(), id).Item
		default:
			cobra.CheckErr(fmt.Errorf("unknown kind %q (want movie or person)", kind))
		}

		// Unliking works offline; liking needs the payload.
		if len(details) == 0 && !controller.IsLiked(collection, id) {
			cobra.CheckErr(fmt.Errorf("%s %s could not be loaded", kind, id))
		}

		var liked bool
		if collection == services.LikedMovies {
			liked = controller.ToggleMovie(id, details)
		} else {
			liked = controller.TogglePerson(id, details)
		}

		name := details.Title()
		if name == "" {
			name = id
		}
		if liked {
			fmt.Fprintf(cmd.OutOrStdout(), "%s Liked %s\n", styles.HeartIcon(true), name)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "%s Removed %s from favorites\n", styles.HeartIcon(false), name)
		}
	},
}
