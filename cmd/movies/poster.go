package cmd

import (
	"fmt"

	"github.com/kerbaras/movies/pkg/integrations"
	"github.com/spf13/cobra"
)

var posterCmd = &cobra.Command{
	Use:   "poster [movie-id]",
	Short: "Draw a movie poster in the terminal",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		width, _ := cmd.Flags().GetInt("width")
		gray, _ := cmd.Flags().GetBool("grayscale")
		contrast, _ := cmd.Flags().GetFloat64("contrast")

		controller := newController()
		defer controller.Close()

		movie := controller.Catalog().MovieDetails(cmd.Context(), args[0]).Item
		if len(movie) == 0 {
			cobra.CheckErr(fmt.Errorf("movie %s could not be loaded", args[0]))
		}

		art, err := controller.Poster(cmd.Context(), movie.String("poster_path"), integrations.PosterOptions{
			Width:     width,
			Grayscale: gray,
			Contrast:  contrast,
		})
		cobra.CheckErr(err)

		fmt.Fprintln(cmd.OutOrStdout(), art)
		fmt.Fprintln(cmd.OutOrStdout(), movie.Title())
	},
}

func init() {
	posterCmd.Flags().IntP("width", "w", integrations.DefaultPosterOptions.Width, "width in terminal columns")
	posterCmd.Flags().Bool("grayscale", false, "render without colour")
	posterCmd.Flags().Float64("contrast", 1.0, "contrast factor, 1.0 leaves the image as is")
}
