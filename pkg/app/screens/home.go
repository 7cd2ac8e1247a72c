package screens

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/movies/pkg/app/components"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/services"
)

// Rows on the home screen, top to bottom.
const (
	trendingRow = iota
	upcomingRow
	topRatedRow
	homeRows
)

type HomeScreen struct {
	controller *services.MovieController

	carousel *components.Carousel
	upcoming *components.MovieList
	topRated *components.MovieList
	loader   *components.Loading

	row     int
	hidden  bool
	loading bool
	token   int
	width   int
	height  int
}

type homeLoadedMsg struct {
	token int
	feed  services.HomeFeed
}

func NewHomeScreen(controller *services.MovieController) *HomeScreen {
	return &HomeScreen{
		controller: controller,
		carousel:   components.NewCarousel(),
		upcoming:   components.NewMovieList("Upcoming"),
		topRated:   components.NewMovieList("Top Rated"),
		loader:     components.NewLoading("Loading movies..."),
	}
}

func (s *HomeScreen) Init() tea.Cmd {
	return s.load()
}

func (s *HomeScreen) load() tea.Cmd {
	s.loading = true
	s.token = nextToken()
	token := s.token
	controller := s.controller
	return tea.Batch(s.loader.Tick(), func() tea.Msg {
		return homeLoadedMsg{token: token, feed: controller.Home(context.Background())}
	})
}

func (s *HomeScreen) Focus() tea.Cmd {
	s.hidden = false
	return s.carousel.Start()
}

func (s *HomeScreen) Blur() {
	s.hidden = true
	s.carousel.Stop()
}

func (s *HomeScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.carousel.Width = msg.Width - 4
		s.upcoming.Width = msg.Width
		s.topRated.Width = msg.Width

	case homeLoadedMsg:
		if msg.token != s.token {
			return s, nil
		}
		s.loading = false
		s.upcoming.SetItems(msg.feed.Upcoming)
		s.topRated.SetItems(msg.feed.TopRated)
		cmd := s.carousel.SetItems(msg.feed.Trending)
		if s.hidden {
			s.carousel.Stop()
			return s, nil
		}
		return s, cmd

	case components.CarouselTickMsg:
		return s, s.carousel.Update(msg)

	case tea.KeyMsg:
		return s, s.handleKey(msg)

	default:
		if s.loading {
			return s, s.loader.Update(msg)
		}
	}

	return s, nil
}

func (s *HomeScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		s.row = (s.row + homeRows - 1) % homeRows
	case "down", "j":
		s.row = (s.row + 1) % homeRows
	case "left", "h":
		switch s.row {
		case trendingRow:
			if n := len(s.carousel.Items); n > 0 {
				s.carousel.Index = (s.carousel.Index + n - 1) % n
			}
		case upcomingRow:
			s.upcoming.Prev()
		case topRatedRow:
			s.topRated.Prev()
		}
	case "right", "l":
		switch s.row {
		case trendingRow:
			if n := len(s.carousel.Items); n > 0 {
				s.carousel.Index = (s.carousel.Index + 1) % n
			}
		case upcomingRow:
			s.upcoming.Next()
		case topRatedRow:
			s.topRated.Next()
		}
	case "enter":
		var id string
		switch s.row {
		case trendingRow:
			id = s.carousel.Current().ID()
		case upcomingRow:
			id = s.upcoming.Selected().ID()
		case topRatedRow:
			id = s.topRated.Selected().ID()
		}
		if id != "" {
			return open(movieScreen, id)
		}
	case "r":
		if !s.loading {
			return s.load()
		}
	}
	return nil
}

func (s *HomeScreen) View() string {
	if s.loading {
		return s.loader.View()
	}

	s.upcoming.Focused = s.row == upcomingRow
	s.topRated.Focused = s.row == topRatedRow

	trendingTitle := styles.SubtitleStyle.Render("Trending")
	if s.row == trendingRow {
		trendingTitle = styles.SelectedStyle.Render("Trending")
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: row • ←/h →/l: browse • enter: open • r: refresh • tab: switch view • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n%s",
		trendingTitle,
		s.carousel.View(),
		s.upcoming.View(),
		s.topRated.View(),
		help,
	)
}
