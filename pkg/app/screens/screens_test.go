package screens

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/services"
	"github.com/kerbaras/movies/pkg/sources"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOffline = errors.New("offline")

type fakeCatalog struct {
	mu       sync.Mutex
	offline  bool
	searches []string
}

func (f *fakeCatalog) result(item data.Item) sources.Result {
	if f.offline {
		return sources.Result{Item: data.Item{}, Err: errOffline}
	}
	return sources.Result{Item: item}
}

func list(ids ...float64) data.Item {
	results := make([]any, 0, len(ids))
	for _, id := range ids {
		results = append(results, map[string]any{"id": id, "title": "Movie"})
	}
	return data.Item{"results": results}
}

func (f *fakeCatalog) Trending(context.Context) sources.Result { return f.result(list(1, 2)) }
func (f *fakeCatalog) Upcoming(context.Context) sources.Result { return f.result(list(3)) }
func (f *fakeCatalog) TopRated(context.Context) sources.Result { return f.result(list(4)) }

func (f *fakeCatalog) MovieDetails(_ context.Context, id string) sources.Result {
	return f.result(data.Item{"id": float64(42), "title": "X", "release_date": "2001-02-03"})
}

func (f *fakeCatalog) MovieCredits(context.Context, string) sources.Result {
	return f.result(data.Item{"cast": []any{map[string]any{"id": float64(7), "name": "Actor", "character": "Role"}}})
}

func (f *fakeCatalog) SimilarMovies(context.Context, string) sources.Result {
	return f.result(list(5))
}

func (f *fakeCatalog) PersonDetails(context.Context, string) sources.Result {
	return f.result(data.Item{"id": float64(7), "name": "Actor"})
}

func (f *fakeCatalog) PersonMovies(context.Context, string) sources.Result {
	return f.result(data.Item{"cast": []any{map[string]any{"id": float64(42), "title": "X"}}})
}

func (f *fakeCatalog) SearchMovies(_ context.Context, params sources.SearchParams) sources.Result {
	f.mu.Lock()
	f.searches = append(f.searches, params.Query)
	f.mu.Unlock()
	return f.result(list(42))
}

type memoryKV struct {
	mu     sync.Mutex
	values map[string]string
}

func (m *memoryKV) Get(key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *memoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func newTestController(catalog *fakeCatalog) *services.MovieController {
	favorites := services.NewFavorites(&memoryKV{values: map[string]string{}}, nil)
	return services.NewMovieController(catalog, favorites)
}

// collect runs cmd and returns the messages it produces. Timer-driven
// commands (cursor blink, carousel) are abandoned.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(200 * time.Millisecond):
		return nil
	}
}

func find[T tea.Msg](msgs []tea.Msg) (T, bool) {
	for _, msg := range msgs {
		if m, ok := msg.(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

func keys(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestHomeLoadsFeed(t *testing.T) {
	home := NewHomeScreen(newTestController(&fakeCatalog{}))

	msg, ok := find[homeLoadedMsg](collect(home.Init()))
	require.True(t, ok)
	assert.True(t, home.loading)

	home.Update(msg)

	assert.False(t, home.loading)
	assert.Len(t, home.carousel.Items, 2)
	assert.True(t, home.carousel.Running())
	assert.Len(t, home.upcoming.Items, 1)
	assert.Len(t, home.topRated.Items, 1)
}

func TestHomeNetworkFailureClearsLoading(t *testing.T) {
	home := NewHomeScreen(newTestController(&fakeCatalog{offline: true}))

	msg, ok := find[homeLoadedMsg](collect(home.Init()))
	require.True(t, ok)
	home.Update(msg)

	assert.False(t, home.loading)
	assert.Empty(t, home.carousel.Items)
	assert.Empty(t, home.upcoming.Items)
	assert.Empty(t, home.topRated.Items)
	assert.Contains(t, home.View(), "No Trending Movies Available")
}

func TestHomeIgnoresSupersededLoad(t *testing.T) {
	home := NewHomeScreen(newTestController(&fakeCatalog{}))

	first, ok := find[homeLoadedMsg](collect(home.Init()))
	require.True(t, ok)
	home.Init()

	home.Update(first)
	assert.True(t, home.loading)
	assert.Empty(t, home.carousel.Items)
}

func TestHomeHiddenCarouselDoesNotRun(t *testing.T) {
	home := NewHomeScreen(newTestController(&fakeCatalog{}))
	msg, _ := find[homeLoadedMsg](collect(home.Init()))

	home.Blur()
	home.Update(msg)
	assert.False(t, home.carousel.Running())

	assert.NotNil(t, home.Focus())
	assert.True(t, home.carousel.Running())
}

func TestSearchShortQueryMakesNoCall(t *testing.T) {
	catalog := &fakeCatalog{}
	search := NewSearchScreen(newTestController(catalog))

	_, cmd := search.Update(keys("a"))
	collect(cmd)
	_, cmd = search.Update(keys("b"))
	collect(cmd)

	assert.Empty(t, catalog.searches)
	assert.False(t, search.searching)
	assert.Empty(t, search.results)
}

func TestSearchFiresOncePerKeystroke(t *testing.T) {
	catalog := &fakeCatalog{}
	search := NewSearchScreen(newTestController(catalog))

	search.Update(keys("a"))
	search.Update(keys("b"))
	_, cmd := search.Update(keys("c"))
	assert.True(t, search.searching)

	msg, ok := find[searchResultMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, []string{"abc"}, catalog.searches)

	search.Update(msg)
	assert.False(t, search.searching)
	require.Len(t, search.results, 1)
	assert.Equal(t, "42", search.results[0].ID())
}

func TestSearchIgnoresStaleResults(t *testing.T) {
	search := NewSearchScreen(newTestController(&fakeCatalog{}))
	search.Update(keys("abcd"))

	search.Update(searchResultMsg{query: "abc", results: []data.Item{{"id": float64(1)}}})

	assert.True(t, search.searching)
	assert.Empty(t, search.results)
}

func TestSearchOpensSelectedMovie(t *testing.T) {
	search := NewSearchScreen(newTestController(&fakeCatalog{}))
	search.Update(keys("abc"))
	search.Update(searchResultMsg{query: "abc", results: []data.Item{{"id": float64(42)}}})

	search.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, search.CapturesInput())

	_, cmd := search.Update(tea.KeyMsg{Type: tea.KeyEnter})
	msg, ok := find[SwitchScreenMsg](collect(cmd))
	require.True(t, ok)
	assert.Equal(t, SwitchScreenMsg{Screen: movieScreen, Data: "42"}, msg)
}

func TestMovieScreenLikeStoresLoadedPayload(t *testing.T) {
	controller := newTestController(&fakeCatalog{})
	screen := NewMovieScreen(controller, "42")

	msg, ok := find[movieLoadedMsg](collect(screen.Init()))
	require.True(t, ok)
	screen.Update(msg)
	assert.False(t, screen.loading)
	assert.Len(t, screen.cast.Items, 1)

	screen.Update(keys("f"))
	assert.True(t, screen.view.Liked)
	assert.Equal(t, []data.Item{{"id": float64(42), "title": "X", "release_date": "2001-02-03"}}, controller.LikedMovies())

	screen.Update(keys("f"))
	assert.False(t, screen.view.Liked)
	assert.Empty(t, controller.LikedMovies())
}

func TestMovieScreenFailureDoesNotLike(t *testing.T) {
	controller := newTestController(&fakeCatalog{offline: true})
	screen := NewMovieScreen(controller, "42")

	msg, _ := find[movieLoadedMsg](collect(screen.Init()))
	screen.Update(msg)
	screen.Update(keys("f"))

	assert.False(t, screen.loading)
	assert.Empty(t, controller.LikedMovies())
	assert.Contains(t, screen.View(), "Could not load this movie.")
}

func TestMovieScreenIgnoresOtherScreensLoads(t *testing.T) {
	screen := NewMovieScreen(newTestController(&fakeCatalog{}), "42")
	screen.Init()

	screen.Update(movieLoadedMsg{token: screen.token + 100, view: services.MovieView{Details: data.Item{"id": float64(1)}}})

	assert.True(t, screen.loading)
}

func TestPersonScreenLike(t *testing.T) {
	controller := newTestController(&fakeCatalog{})
	screen := NewPersonScreen(controller, "7")

	msg, ok := find[personLoadedMsg](collect(screen.Init()))
	require.True(t, ok)
	screen.Update(msg)
	screen.Update(keys("f"))

	assert.True(t, controller.IsLiked(services.LikedPeople, "7"))
	assert.Len(t, controller.LikedPeople(), 1)
	assert.Len(t, screen.movies.Items, 1)
}

func TestLikedScreenReloadsOnFocus(t *testing.T) {
	controller := newTestController(&fakeCatalog{})
	liked := NewLikedScreen(controller, services.LikedMovies)

	msg, ok := find[likedLoadedMsg](collect(liked.Init()))
	require.True(t, ok)
	liked.Update(msg)
	assert.Empty(t, liked.list.Items)

	controller.ToggleMovie("42", data.Item{"id": float64(42), "title": "X"})

	msg, _ = find[likedLoadedMsg](collect(liked.Focus()))
	liked.Update(msg)
	require.Len(t, liked.list.Items, 1)

	liked.Update(likedLoadedMsg{collection: services.LikedPeople, items: []data.Item{}})
	assert.Len(t, liked.list.Items, 1, "other collection's load is ignored")
}

func TestRootNavigation(t *testing.T) {
	root := NewRootScreen(newTestController(&fakeCatalog{}))
	root.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	root.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, searchTab, root.current)

	_, cmd := root.Update(keys("q"))
	_, quit := find[tea.QuitMsg](collect(cmd))
	assert.False(t, quit)
	assert.Equal(t, "q", root.tabs[searchTab].(*SearchScreen).input.Value())

	root.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, likedMoviesTab, root.current)

	root.Update(SwitchScreenMsg{Screen: movieScreen, Data: "42"})
	require.Len(t, root.stack, 1)
	assert.IsType(t, &MovieScreen{}, root.active())

	root.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, likedMoviesTab, root.current, "tabs are locked while a detail screen is open")

	root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Empty(t, root.stack)

	_, cmd = root.Update(keys("q"))
	_, quit = find[tea.QuitMsg](collect(cmd))
	assert.True(t, quit)
}

func TestRootBroadcastsLoadsToHiddenScreens(t *testing.T) {
	root := NewRootScreen(newTestController(&fakeCatalog{}))
	home := root.tabs[homeTab].(*HomeScreen)

	msg, ok := find[homeLoadedMsg](collect(root.Init()))
	require.True(t, ok)

	root.Update(tea.KeyMsg{Type: tea.KeyTab})
	root.Update(msg)

	assert.False(t, home.loading)
	assert.Len(t, home.upcoming.Items, 1)
	assert.False(t, home.carousel.Running())
}
