package services

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/kerbaras/movies/pkg/config"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockCatalog answers from per-endpoint functions and counts calls.
type mockCatalog struct {
	mu    sync.Mutex
	calls map[string]int

	trendingFunc      func() sources.Result
	upcomingFunc      func() sources.Result
	topRatedFunc      func() sources.Result
	movieDetailsFunc  func(id string) sources.Result
	movieCreditsFunc  func(id string) sources.Result
	similarFunc       func(id string) sources.Result
	personDetailsFunc func(id string) sources.Result
	personMoviesFunc  func(id string) sources.Result
	searchFunc        func(params sources.SearchParams) sources.Result
}

var errOffline = errors.New("network unreachable")

func offline() sources.Result {
	return sources.Result{Item: data.Item{}, Err: errOffline}
}

func results(ids ...float64) sources.Result {
	list := make([]any, len(ids))
	for i, id := range ids {
		list[i] = map[string]any{"id": id}
	}
	return sources.Result{Item: data.Item{"results": list}}
}

func (m *mockCatalog) record(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.calls == nil {
		m.calls = map[string]int{}
	}
	m.calls[name]++
}

func (m *mockCatalog) count(name string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[name]
}

func call0(f func() sources.Result) sources.Result {
	if f == nil {
		return sources.Result{Item: data.Item{}}
	}
	return f()
}

func call1(f func(string) sources.Result, id string) sources.Result {
	if f == nil {
		return sources.Result{Item: data.Item{}}
	}
	return f(id)
}

func (m *mockCatalog) Trending(ctx context.Context) sources.Result {
	m.record("trending")
	return call0(m.trendingFunc)
}

func (m *mockCatalog) Upcoming(ctx context.Context) sources.Result {
	m.record("upcoming")
	return call0(m.upcomingFunc)
}

func (m *mockCatalog) TopRated(ctx context.Context) sources.Result {
	m.record("top_rated")
	return call0(m.topRatedFunc)
}

func (m *mockCatalog) MovieDetails(ctx context.Context, id string) sources.Result {
	m.record("movie")
	return call1(m.movieDetailsFunc, id)
}

func (m *mockCatalog) MovieCredits(ctx context.Context, id string) sources.Result {
	m.record("credits")
	return call1(m.movieCreditsFunc, id)
}

func (m *mockCatalog) SimilarMovies(ctx context.Context, id string) sources.Result {
	m.record("similar")
	return call1(m.similarFunc, id)
}

func (m *mockCatalog) PersonDetails(ctx context.Context, id string) sources.Result {
	m.record("person")
	return call1(m.personDetailsFunc, id)
}

func (m *mockCatalog) PersonMovies(ctx context.Context, id string) sources.Result {
	m.record("person_movies")
	return call1(m.personMoviesFunc, id)
}

func (m *mockCatalog) SearchMovies(ctx context.Context, params sources.SearchParams) sources.Result {
	m.record("search")
	if m.searchFunc == nil {
		return sources.Result{Item: data.Item{}}
	}
	return m.searchFunc(params)
}

func newTestController(catalog sources.Catalog) *MovieController {
	return NewMovieController(catalog, NewFavorites(newMemoryKV(), nil))
}

func TestHomeLoadsAllLists(t *testing.T) {
	catalog := &mockCatalog{
		trendingFunc: func() sources.Result { return results(1, 2, 3) },
		upcomingFunc: func() sources.Result { return results(4) },
		topRatedFunc: func() sources.Result { return results(5, 6) },
	}

	feed := newTestController(catalog).Home(context.Background())

	assert.Len(t, feed.Trending, 3)
	assert.Len(t, feed.Upcoming, 1)
	assert.Len(t, feed.TopRated, 2)
	assert.Equal(t, 1, catalog.count("trending"))
	assert.Equal(t, 1, catalog.count("upcoming"))
	assert.Equal(t, 1, catalog.count("top_rated"))
}

func TestHomeNetworkFailureLeavesListsEmpty(t *testing.T) {
	catalog := &mockCatalog{
		trendingFunc: offline,
		upcomingFunc: offline,
		topRatedFunc: offline,
	}

	var feed HomeFeed
	assert.NotPanics(t, func() {
		feed = newTestController(catalog).Home(context.Background())
	})
	assert.Empty(t, feed.Trending)
	assert.Empty(t, feed.Upcoming)
	assert.Empty(t, feed.TopRated)
}

func TestHomePartialFailure(t *testing.T) {
	catalog := &mockCatalog{
		trendingFunc: offline,
		upcomingFunc: func() sources.Result { return results(4, 5) },
		topRatedFunc: func() sources.Result { return sources.Result{Item: data.Item{"page": float64(1)}} },
	}

	feed := newTestController(catalog).Home(context.Background())
	assert.Empty(t, feed.Trending)
	assert.Len(t, feed.Upcoming, 2)
	assert.Empty(t, feed.TopRated)
}

func TestHomeRunsConcurrently(t *testing.T) {
	// Each call blocks until all three have started.
	var started sync.WaitGroup
	started.Add(3)
	wait := func() sources.Result {
		started.Done()
		started.Wait()
		return results(1)
	}
	catalog := &mockCatalog{trendingFunc: wait, upcomingFunc: wait, topRatedFunc: wait}

	feed := newTestController(catalog).Home(context.Background())
	assert.Len(t, feed.Trending, 1)
	assert.Len(t, feed.Upcoming, 1)
	assert.Len(t, feed.TopRated, 1)
}

func TestSearchShortQuery(t *testing.T) {
	catalog := &mockCatalog{}
	controller := newTestController(catalog)

	for _, q := range []string{"", "a", "ab", "日本"} {
		got := controller.Search(context.Background(), q)
		assert.Empty(t, got, q)
	}
	assert.Equal(t, 0, catalog.count("search"))
}

func TestSearchCallsCatalogOnce(t *testing.T) {
	var gotParams sources.SearchParams
	catalog := &mockCatalog{
		searchFunc: func(params sources.SearchParams) sources.Result {
			gotParams = params
			return results(603, 604)
		},
	}

	got := newTestController(catalog).Search(context.Background(), "mat")

	assert.Len(t, got, 2)
	assert.Equal(t, 1, catalog.count("search"))
	assert.Equal(t, "mat", gotParams.Query)
	assert.False(t, gotParams.IncludeAdult)
	assert.Equal(t, "en-US", gotParams.Language)
	assert.Equal(t, 1, gotParams.Page)
}

func TestSearchFailure(t *testing.T) {
	catalog := &mockCatalog{searchFunc: func(sources.SearchParams) sources.Result { return offline() }}

	got := newTestController(catalog).Search(context.Background(), "matrix")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestMovieView(t *testing.T) {
	catalog := &mockCatalog{
		movieDetailsFunc: func(id string) sources.Result {
			return sources.Result{Item: data.Item{"id": float64(550), "title": "Fight Club"}}
		},
		movieCreditsFunc: func(id string) sources.Result {
			return sources.Result{Item: data.Item{"cast": []any{map[string]any{"id": float64(287)}}}}
		},
		similarFunc: func(id string) sources.Result { return results(1, 2) },
	}
	controller := newTestController(catalog)

	view := controller.Movie(context.Background(), "550")
	assert.Equal(t, "Fight Club", view.Details.Title())
	assert.Len(t, view.Cast, 1)
	assert.Len(t, view.Similar, 2)
	assert.False(t, view.Liked)

	assert.True(t, controller.ToggleMovie("550", view.Details))
	assert.True(t, controller.Movie(context.Background(), "550").Liked)
	assert.Equal(t, []data.Item{view.Details}, controller.LikedMovies())
}

func TestMovieViewFailure(t *testing.T) {
	catalog := &mockCatalog{
		movieDetailsFunc: func(string) sources.Result { return offline() },
		movieCreditsFunc: func(string) sources.Result { return offline() },
		similarFunc:      func(string) sources.Result { return offline() },
	}

	view := newTestController(catalog).Movie(context.Background(), "1")
	assert.NotNil(t, view.Details)
	assert.Empty(t, view.Details)
	assert.Empty(t, view.Cast)
	assert.Empty(t, view.Similar)
}

func TestPersonView(t *testing.T) {
	catalog := &mockCatalog{
		personDetailsFunc: func(id string) sources.Result {
			return sources.Result{Item: data.Item{"id": float64(287), "name": "Brad Pitt"}}
		},
		personMoviesFunc: func(id string) sources.Result {
			return sources.Result{Item: data.Item{"cast": []any{
				map[string]any{"id": float64(550)},
				map[string]any{"id": float64(1422)},
			}}}
		},
	}
	controller := newTestController(catalog)

	view := controller.Person(context.Background(), "287")
	assert.Equal(t, "Brad Pitt", view.Details.Title())
	assert.Len(t, view.Movies, 2)
	assert.False(t, view.Liked)

	assert.True(t, controller.TogglePerson("287", view.Details))
	assert.True(t, controller.IsLiked(LikedPeople, "287"))
	assert.False(t, controller.IsLiked(LikedMovies, "287"))
	assert.Len(t, controller.LikedPeople(), 1)
	assert.Empty(t, controller.LikedMovies())

	assert.False(t, controller.TogglePerson("287", view.Details))
	assert.Empty(t, controller.LikedPeople())
}

func TestNewMovieControllerWithConfig(t *testing.T) {
	cfg := &config.AppConfig{}
	cfg.Catalog.BaseURL = "http://127.0.0.1:1"
	cfg.Catalog.ImageBaseURL = "https://img.example"
	cfg.Storage.DBPath = filepath.Join(t.TempDir(), "movies.db")

	controller, err := NewMovieControllerWithConfig(cfg, nil)
	require.NoError(t, err)
	defer controller.Close()

	require.NotNil(t, controller.Catalog())
	assert.Equal(t, "https://img.example/t/p/w500/a.jpg", controller.Images().Poster500("/a.jpg"))

	assert.True(t, controller.ToggleMovie("1", data.Item{"id": float64(1)}))
	assert.Len(t, controller.LikedMovies(), 1)
}

func TestWithRegion(t *testing.T) {
	tmdb := sources.NewTMDB(sources.Config{APIKey: "k", Region: "US"})
	controller := NewMovieController(tmdb, NewFavorites(newMemoryKV(), nil))

	regional := controller.WithRegion("AR")
	require.NotSame(t, controller, regional)
	assert.Equal(t, "AR", regional.Catalog().(*sources.TMDB).Region())
	assert.Equal(t, "US", controller.Catalog().(*sources.TMDB).Region())

	assert.Same(t, controller, controller.WithRegion(""))

	mock := NewMovieController(&mockCatalog{}, NewFavorites(newMemoryKV(), nil))
	assert.Same(t, mock, mock.WithRegion("AR"))
}

func TestLikedByCollection(t *testing.T) {
	controller := NewMovieController(&mockCatalog{}, NewFavorites(newMemoryKV(), nil))
	controller.TogglePerson("7", data.Item{"id": float64(7)})

	assert.Empty(t, controller.Liked(LikedMovies))
	assert.Len(t, controller.Liked(LikedPeople), 1)
}
