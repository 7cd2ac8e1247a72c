package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/movies/pkg/app/components"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/services"
)

// LikedScreen lists one favorites collection. It reads from local storage
// only and reloads every time it comes into view.
type LikedScreen struct {
	controller *services.MovieController
	collection services.Collection
	list       *components.MovieList
	width      int
	height     int
}

type likedLoadedMsg struct {
	collection services.Collection
	items      []data.Item
}

func NewLikedScreen(controller *services.MovieController, collection services.Collection) *LikedScreen {
	title, empty := "Liked Movies", "No liked movies yet. Press f on a movie to like it."
	if collection == services.LikedPeople {
		title, empty = "Liked People", "No liked people yet. Press f on a person to like them."
	}
	list := components.NewMovieList(title)
	list.Empty = empty
	list.Focused = true
	return &LikedScreen{controller: controller, collection: collection, list: list}
}

func (s *LikedScreen) Init() tea.Cmd {
	return s.load
}

func (s *LikedScreen) Focus() tea.Cmd {
	return s.load
}

func (s *LikedScreen) Blur() {}

func (s *LikedScreen) load() tea.Msg {
	return likedLoadedMsg{collection: s.collection, items: s.controller.Liked(s.collection)}
}

func (s *LikedScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.list.Width = msg.Width

	case likedLoadedMsg:
		if msg.collection == s.collection {
			s.list.SetItems(msg.items)
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h", "up", "k":
			s.list.Prev()
		case "right", "l", "down", "j":
			s.list.Next()
		case "r":
			return s, s.load
		case "enter":
			if id := s.list.Selected().ID(); id != "" {
				screen := movieScreen
				if s.collection == services.LikedPeople {
					screen = personScreen
				}
				return s, open(screen, id)
			}
		}
	}
	return s, nil
}

func (s *LikedScreen) View() string {
	count := styles.MutedStyle.Render(fmt.Sprintf("%d saved", len(s.list.Items)))
	help := styles.HelpStyle.Render("←/h →/l: browse • enter: open • r: refresh • tab: switch view • q: quit")
	return fmt.Sprintf("%s\n%s\n%s", count, s.list.View(), help)
}
