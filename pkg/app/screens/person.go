package screens

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/app/components"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/services"
	"github.com/kerbaras/movies/pkg/utils"
)

const biographyLimit = 600

type PersonScreen struct {
	controller *services.MovieController
	id         string

	view   services.PersonView
	movies *components.MovieList
	loader *components.Loading

	loading bool
	token   int
	width   int
	height  int
}

type personLoadedMsg struct {
	token int
	view  services.PersonView
}

func NewPersonScreen(controller *services.MovieController, id string) *PersonScreen {
	movies := components.NewMovieList("Movies")
	movies.Focused = true
	return &PersonScreen{
		controller: controller,
		id:         id,
		movies:     movies,
		loader:     components.NewLoading("Loading person..."),
	}
}

func (s *PersonScreen) Init() tea.Cmd {
	s.loading = true
	s.token = nextToken()
	token, id, controller := s.token, s.id, s.controller
	return tea.Batch(s.loader.Tick(), func() tea.Msg {
		return personLoadedMsg{token: token, view: controller.Person(context.Background(), id)}
	})
}

func (s *PersonScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.movies.Width = msg.Width

	case personLoadedMsg:
		if msg.token != s.token {
			return s, nil
		}
		s.loading = false
		s.view = msg.view
		s.movies.SetItems(msg.view.Movies)

	case tea.KeyMsg:
		if s.loading {
			return s, nil
		}
		switch msg.String() {
		case "left", "h":
			s.movies.Prev()
		case "right", "l":
			s.movies.Next()
		case "enter":
			if id := s.movies.Selected().ID(); id != "" {
				return s, open(movieScreen, id)
			}
		case "f", " ":
			if len(s.view.Details) > 0 {
				s.view.Liked = s.controller.TogglePerson(s.id, s.view.Details)
			}
		case "backspace":
			return s, back
		}

	default:
		if s.loading {
			return s, s.loader.Update(msg)
		}
	}
	return s, nil
}

func (s *PersonScreen) View() string {
	if s.loading {
		return s.loader.View()
	}

	details := s.view.Details
	if len(details) == 0 {
		return fmt.Sprintf("%s\n%s",
			styles.ErrorStyle.Render("Could not load this person."),
			styles.HelpStyle.Render("esc: back • q: quit"),
		)
	}

	header := fmt.Sprintf("%s %s", styles.HeartIcon(s.view.Liked), styles.TitleStyle.Render(details.Title()))

	var meta []string
	if dept := details.String("known_for_department"); dept != "" {
		meta = append(meta, dept)
	}
	if born := details.String("birthday"); born != "" {
		meta = append(meta, "Born "+born)
	}
	if place := details.String("place_of_birth"); place != "" {
		meta = append(meta, place)
	}

	bio := details.String("biography")
	if bio == "" {
		bio = "No biography available."
	}

	width := s.width - 4
	if width < 20 {
		width = 76
	}
	info := styles.CardStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left,
		styles.MutedStyle.Render(strings.Join(meta, " • ")),
		"",
		styles.TextStyle.Render(utils.Truncate(bio, biographyLimit)),
	))

	help := styles.HelpStyle.Render("←/h →/l: browse • enter: open • f: like • esc: back • q: quit")

	return fmt.Sprintf("%s\n%s\n%s\n%s", header, info, s.movies.View(), help)
}
