package cmd

import (
	"log/slog"
	"os"

	"github.com/kerbaras/movies/pkg/app"
	"github.com/kerbaras/movies/pkg/config"
	"github.com/kerbaras/movies/pkg/logging"
	"github.com/kerbaras/movies/pkg/services"
	"github.com/spf13/cobra"
)

var (
	envFile string
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "movies",
	Short: "Browse movies and keep your favorites in the terminal",
	Long:  "Browse trending, upcoming and top-rated movies from TMDB, search the catalog and bookmark the movies and people you like.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if envFile != "" {
			cfg, err = config.Load(envFile)
		} else {
			cfg, err = config.Load()
		}
		return err
	},
	Run: func(cmd *cobra.Command, args []string) {
		// The alt screen owns stdout, so the TUI logs to a file.
		logger, closer, err := logging.NewFile(cfg.Log.File, cfg.Log.Level)
		cobra.CheckErr(err)
		defer closer.Close()

		controller, err := services.NewMovieControllerWithConfig(cfg, logger)
		cobra.CheckErr(err)
		defer controller.Close()

		logger.Info("starting tui", "region", cfg.Catalog.Region)
		if err := app.NewApp(controller).Run(); err != nil {
			logger.Error("tui exited", "error", err)
			cobra.CheckErr(err)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "path to a .env file")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", formatTable, "output format: table, json or yaml")

	rootCmd.AddCommand(trendingCmd)
	rootCmd.AddCommand(upcomingCmd)
	rootCmd.AddCommand(topRatedCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(movieCmd)
	rootCmd.AddCommand(personCmd)
	rootCmd.AddCommand(likeCmd)
	rootCmd.AddCommand(likedCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(posterCmd)
}

// cliLogger logs to stderr so it never mixes with command output.
func cliLogger() *slog.Logger {
	return logging.New(logging.Options{Writer: os.Stderr, Level: cfg.Log.Level})
}

// newController builds the controller for a one-shot command. The caller
// closes it.
func newController() *services.MovieController {
	controller, err := services.NewMovieControllerWithConfig(cfg, cliLogger())
	cobra.CheckErr(err)
	return controller
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
