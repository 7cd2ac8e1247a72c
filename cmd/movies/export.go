package cmd

import (
	"fmt"
	"time"

	"github.com/kerbaras/movies/pkg/integrations"
	"github.com/kerbaras/movies/pkg/services"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export your favorites to an EPUB",
	Long: `Write your liked movies and people, with posters and profile pictures, to
an EPUB you can read on any e-reader.

Examples:
  movies export
  movies export --output ~/Books --title "Movie Night"`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		title, _ := cmd.Flags().GetString("title")
		if output == "" {
			output = cfg.Storage.ExportDir
		}
		if title == "" {
			title = fmt.Sprintf("My Movies %s", time.Now().Format("2006-01-02"))
		}

		controller := newController()
		defer controller.Close()

		downloader := services.NewDownloader(controller.Images(), controller.HTTPClient())
		done := make(chan struct{})
		go func() {
			defer close(done)
			for progress := range downloader.GetProgressChannel() {
				switch progress.Status {
				case "complete":
					fmt.Fprintf(cmd.ErrOrStderr(), "  [%d/%d] %s\n", progress.Current, progress.Total, progress.Title)
				case "error":
					fmt.Fprintf(cmd.ErrOrStderr(), "  [%d/%d] %s: %v\n", progress.Current, progress.Total, progress.Title, progress.Error)
				}
			}
		}()

		fmt.Fprintln(cmd.OutOrStdout(), "📥 Downloading pictures...")
		path, err := controller.ExportFavorites(cmd.Context(), title, integrations.NewEPubBuilder(output), downloader)
		downloader.Close()
		<-done
		if err != nil {
			cobra.CheckErr(fmt.Errorf("export failed: %w", err))
		}

		fmt.Fprintf(cmd.OutOrStdout(), "📖 EPUB created: %s\n", path)
	},
}

func init() {
	exportCmd.Flags().StringP("output", "o", "", "output directory (defaults to MOVIES_EXPORT_DIR)")
	exportCmd.Flags().StringP("title", "t", "", "book title")
}
