package sources

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/logging"
	"github.com/kerbaras/movies/pkg/utils"
)

type Config struct {
	APIKey  string
	BaseURL string
	// Region, when set, is sent with trending, upcoming and top-rated.
	Region     string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

// SearchParams are the query parameters of a movie search.
type SearchParams struct {
	Query        string
	IncludeAdult bool
	Language     string
	Page         int
}

// NewSearchParams returns the parameters the app always searches with.
func NewSearchParams(query string) SearchParams {
	return SearchParams{
		Query:    query,
		Language: "en-US",
		Page:     1,
	}
}

func (p SearchParams) values() url.Values {
	v := url.Values{}
	v.Set("query", p.Query)
	v.Set("include_adult", strconv.FormatBool(p.IncludeAdult))
	if p.Language != "" {
		v.Set("language", p.Language)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	return v
}

// TMDB is a Catalog backed by The Movie Database v3 API.
type TMDB struct {
	api    *utils.API
	apiKey string
	region string
	log    *slog.Logger
}

func NewTMDB(cfg Config) *TMDB {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.themoviedb.org/3"
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Discard()
	}
	return &TMDB{
		api:    utils.NewAPI(cfg.BaseURL, cfg.HTTPClient),
		apiKey: cfg.APIKey,
		region: cfg.Region,
		log:    cfg.Logger.With("component", "tmdb"),
	}
}

// WithRegion returns a copy of the client that sends region cc with the
// list endpoints. An empty cc disables the parameter.
func (m *TMDB) WithRegion(cc string) *TMDB {
	c := *m
	c.region = cc
	return &c
}

func (m *TMDB) Region() string {
	return m.region
}

func (m *TMDB) get(ctx context.Context, path string, params url.Values) Result {
	if params == nil {
		params = url.Values{}
	}
	params.Set("api_key", m.apiKey)

	var item data.Item
	if err := m.api.Get(ctx, path, params, &item); err != nil {
		m.log.Warn("catalog request failed", "path", path, "error", err)
		return failed(err)
	}
	if item == nil {
		item = data.Item{}
	}
	return Result{Item: item}
}

func (m *TMDB) regional() url.Values {
	if m.region == "" {
		return nil
	}
	return url.Values{"region": {m.region}}
}

func (m *TMDB) Trending(ctx context.Context) Result {
	return m.get(ctx, "trending/movie/day", m.regional())
}

func (m *TMDB) Upcoming(ctx context.Context) Result {
	return m.get(ctx, "movie/upcoming", m.regional())
}

func (m *TMDB) TopRated(ctx context.Context) Result {
	return m.get(ctx, "movie/top_rated", m.regional())
}

func (m *TMDB) MovieDetails(ctx context.Context, id string) Result {
	return m.get(ctx, fmt.Sprintf("movie/%s", url.PathEscape(id)), nil)
}

func (m *TMDB) MovieCredits(ctx context.Context, id string) Result {
	return m.get(ctx, fmt.Sprintf("movie/%s/credits", url.PathEscape(id)), nil)
}

func (m *TMDB) SimilarMovies(ctx context.Context, id string) Result {
	return m.get(ctx, fmt.Sprintf("movie/%s/similar", url.PathEscape(id)), nil)
}

func (m *TMDB) PersonDetails(ctx context.Context, id string) Result {
	return m.get(ctx, fmt.Sprintf("person/%s", url.PathEscape(id)), nil)
}

func (m *TMDB) PersonMovies(ctx context.Context, id string) Result {
	return m.get(ctx, fmt.Sprintf("person/%s/movie_credits", url.PathEscape(id)), nil)
}

func (m *TMDB) SearchMovies(ctx context.Context, params SearchParams) Result {
	return m.get(ctx, "search/movie", params.values())
}
