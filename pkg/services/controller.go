package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"unicode/utf8"

	"github.com/kerbaras/movies/pkg/config"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/integrations"
	"github.com/kerbaras/movies/pkg/sources"
)

// MinSearchLength is the shortest query that reaches the catalog.
const MinSearchLength = 3

var ErrNoPoster = errors.New("no poster available")

type HomeFeed struct {
	Trending []data.Item
	Upcoming []data.Item
	TopRated []data.Item
}

type MovieView struct {
	Details data.Item
	Cast    []data.Item
	Similar []data.Item
	Liked   bool
}

type PersonView struct {
	Details data.Item
	Movies  []data.Item
	Liked   bool
}

// MovieController is what screens and commands talk to. It fans catalog
// calls out concurrently and joins them, and owns the favorites store.
type MovieController struct {
	catalog   sources.Catalog
	favorites *Favorites
	images    sources.Images
	client    *http.Client
	closer    io.Closer
}

func NewMovieController(catalog sources.Catalog, favorites *Favorites) *MovieController {
	return &MovieController{catalog: catalog, favorites: favorites, images: sources.DefaultImages}
}

// NewMovieControllerWithConfig wires the TMDB client and the DuckDB-backed
// favorites store described by cfg.
func NewMovieControllerWithConfig(cfg *config.AppConfig, logger *slog.Logger) (*MovieController, error) {
	repo, err := data.NewDuckDBRepository(cfg.Storage.DBPath)
	if err != nil {
		return nil, err
	}

	client := &http.Client{Timeout: cfg.Catalog.Timeout}
	catalog := sources.NewTMDB(sources.Config{
		APIKey:     cfg.Catalog.APIKey,
		BaseURL:    cfg.Catalog.BaseURL,
		Region:     cfg.Catalog.Region,
		HTTPClient: client,
		Logger:     logger,
	})

	return &MovieController{
		catalog:   catalog,
		favorites: NewFavorites(repo, logger),
		images:    sources.Images{BaseURL: cfg.Catalog.ImageBaseURL},
		client:    client,
		closer:    repo,
	}, nil
}

func (c *MovieController) Catalog() sources.Catalog {
	return c.catalog
}

func (c *MovieController) Images() sources.Images {
	return c.images
}

// WithRegion returns a controller whose list endpoints are pinned to
// region cc. Catalogs without region support are returned unchanged.
func (c *MovieController) WithRegion(cc string) *MovieController {
	tmdb, ok := c.catalog.(*sources.TMDB)
	if !ok || cc == "" {
		return c
	}
	clone := *c
	clone.catalog = tmdb.WithRegion(cc)
	return &clone
}

// HTTPClient is the client used for catalog and image requests.
func (c *MovieController) HTTPClient() *http.Client {
	if c.client == nil {
		return http.DefaultClient
	}
	return c.client
}

// WithImages points image lookups at another CDN.
func (c *MovieController) WithImages(images sources.Images) *MovieController {
	c.images = images
	return c
}

func (c *MovieController) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer.Close()
}

// Home loads the three home lists. A failed list comes back empty without
// affecting the others.
func (c *MovieController) Home(ctx context.Context) HomeFeed {
	var feed HomeFeed
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		feed.Trending = c.catalog.Trending(ctx).Results()
	}()
	go func() {
		defer wg.Done()
		feed.Upcoming = c.catalog.Upcoming(ctx).Results()
	}()
	go func() {
		defer wg.Done()
		feed.TopRated = c.catalog.TopRated(ctx).Results()
	}()
	wg.Wait()

	return feed
}

// Search returns no results, without asking the catalog, for queries
// shorter than MinSearchLength characters.
func (c *MovieController) Search(ctx context.Context, query string) []data.Item {
	if utf8.RuneCountInString(query) < MinSearchLength {
		return []data.Item{}
	}
	return c.catalog.SearchMovies(ctx, sources.NewSearchParams(query)).Results()
}

func (c *MovieController) Movie(ctx context.Context, id string) MovieView {
	var view MovieView
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		view.Details = c.catalog.MovieDetails(ctx, id).Item
	}()
	go func() {
		defer wg.Done()
		view.Cast = c.catalog.MovieCredits(ctx, id).Cast()
	}()
	go func() {
		defer wg.Done()
		view.Similar = c.catalog.SimilarMovies(ctx, id).Results()
	}()
	view.Liked = c.favorites.IsFavorite(LikedMovies, id)
	wg.Wait()

	return view
}

func (c *MovieController) Person(ctx context.Context, id string) PersonView {
	var view PersonView
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		view.Details = c.catalog.PersonDetails(ctx, id).Item
	}()
	go func() {
		defer wg.Done()
		view.Movies = c.catalog.PersonMovies(ctx, id).Cast()
	}()
	view.Liked = c.favorites.IsFavorite(LikedPeople, id)
	wg.Wait()

	return view
}

// ToggleMovie likes or unlikes a movie, storing the loaded payload so the
// liked list can be shown without going back to the network.
func (c *MovieController) ToggleMovie(id string, movie data.Item) bool {
	return c.favorites.Toggle(LikedMovies, id, movie)
}

func (c *MovieController) TogglePerson(id string, person data.Item) bool {
	return c.favorites.Toggle(LikedPeople, id, person)
}

func (c *MovieController) IsLiked(collection Collection, id string) bool {
	return c.favorites.IsFavorite(collection, id)
}

func (c *MovieController) LikedMovies() []data.Item {
	return c.favorites.List(LikedMovies)
}

func (c *MovieController) LikedPeople() []data.Item {
	return c.favorites.List(LikedPeople)
}

func (c *MovieController) Liked(collection Collection) []data.Item {
	return c.favorites.List(collection)
}

// Poster renders the small poster for path as terminal art.
func (c *MovieController) Poster(ctx context.Context, path string, options integrations.PosterOptions) (string, error) {
	url := c.images.Poster185(path)
	if url == "" {
		return "", ErrNoPoster
	}
	return integrations.NewPosterRenderer(c.HTTPClient(), options).Render(ctx, url)
}
