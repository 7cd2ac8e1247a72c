package services

import (
	"context"

	"github.com/kerbaras/movies/pkg/integrations"
)

// ExportFavorites writes both favorites collections, with pictures, to an
// EPUB and returns its path.
func (c *MovieController) ExportFavorites(ctx context.Context, title string, builder *integrations.EPubBuilder, downloader *Downloader) (string, error) {
	movies := c.LikedMovies()
	people := c.LikedPeople()

	return builder.ExportFavorites(title, []integrations.Section{
		{
			Title:  "Liked Movies",
			Items:  movies,
			Images: downloader.DownloadImages(ctx, movies, "poster_path"),
		},
		{
			Title:  "Liked People",
			Items:  people,
			Images: downloader.DownloadImages(ctx, people, "profile_path"),
		},
	})
}
