package screens

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/app/components"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/integrations"
	"github.com/kerbaras/movies/pkg/services"
)

// MovieScreen shows one movie with its cast and similar titles.
type MovieScreen struct {
	controller *services.MovieController
	id         string

	view    services.MovieView
	cast    *components.CastList
	similar *components.MovieList
	loader  *components.Loading

	loading bool
	token   int
	row     int

	poster        string
	posterLoading bool
	posterErr     error

	width  int
	height int
}

type movieLoadedMsg struct {
	token int
	view  services.MovieView
}

type posterLoadedMsg struct {
	token int
	art   string
	err   error
}

func NewMovieScreen(controller *services.MovieController, id string) *MovieScreen {
	return &MovieScreen{
		controller: controller,
		id:         id,
		cast:       components.NewCastList(),
		similar:    components.NewMovieList("Similar Movies"),
		loader:     components.NewLoading("Loading movie..."),
	}
}

func (s *MovieScreen) Init() tea.Cmd {
	s.loading = true
	s.token = nextToken()
	token, id, controller := s.token, s.id, s.controller
	return tea.Batch(s.loader.Tick(), func() tea.Msg {
		return movieLoadedMsg{token: token, view: controller.Movie(context.Background(), id)}
	})
}

func (s *MovieScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.cast.Width = msg.Width
		s.similar.Width = msg.Width

	case movieLoadedMsg:
		if msg.token != s.token {
			return s, nil
		}
		s.loading = false
		s.view = msg.view
		s.cast.SetItems(msg.view.Cast)
		s.similar.SetItems(msg.view.Similar)

	case posterLoadedMsg:
		if msg.token != s.token {
			return s, nil
		}
		s.posterLoading = false
		s.poster = msg.art
		s.posterErr = msg.err

	case tea.KeyMsg:
		return s, s.handleKey(msg)

	default:
		if s.loading || s.posterLoading {
			return s, s.loader.Update(msg)
		}
	}
	return s, nil
}

func (s *MovieScreen) handleKey(msg tea.KeyMsg) tea.Cmd {
	if s.loading {
		if msg.String() == "backspace" {
			return back
		}
		return nil
	}

	switch msg.String() {
	case "up", "k", "down", "j":
		s.row = 1 - s.row
	case "left", "h":
		if s.row == 0 {
			s.cast.Prev()
		} else {
			s.similar.Prev()
		}
	case "right", "l":
		if s.row == 0 {
			s.cast.Next()
		} else {
			s.similar.Next()
		}
	case "enter":
		if s.row == 0 {
			if id := s.cast.Selected().ID(); id != "" {
				return open(personScreen, id)
			}
		} else if id := s.similar.Selected().ID(); id != "" {
			return open(movieScreen, id)
		}
	case "f", " ":
		if len(s.view.Details) > 0 {
			s.view.Liked = s.controller.ToggleMovie(s.id, s.view.Details)
		}
	case "p":
		if s.poster != "" || s.posterErr != nil {
			s.poster, s.posterErr = "", nil
			return nil
		}
		return s.loadPoster()
	case "backspace":
		return back
	}
	return nil
}

func (s *MovieScreen) loadPoster() tea.Cmd {
	s.posterLoading = true
	token, controller := s.token, s.controller
	path := s.view.Details.String("poster_path")
	options := integrations.PosterOptions{Width: 30, Contrast: 1.1}
	return tea.Batch(s.loader.Tick(), func() tea.Msg {
		art, err := controller.Poster(context.Background(), path, options)
		return posterLoadedMsg{token: token, art: art, err: err}
	})
}

func (s *MovieScreen) View() string {
	if s.loading {
		return s.loader.View()
	}

	details := s.view.Details
	if len(details) == 0 {
		return fmt.Sprintf("%s\n%s",
			styles.ErrorStyle.Render("Could not load this movie."),
			styles.HelpStyle.Render("esc: back • q: quit"),
		)
	}

	s.cast.Focused = s.row == 0
	s.similar.Focused = s.row == 1

	header := fmt.Sprintf("%s %s", styles.HeartIcon(s.view.Liked), styles.TitleStyle.Render(details.Title()))

	var meta []string
	if year := details.Year(); year != "" {
		meta = append(meta, year)
	}
	if runtime := details.Int("runtime"); runtime > 0 {
		meta = append(meta, fmt.Sprintf("%dh %02dm", runtime/60, runtime%60))
	}
	if genres := details.Names("genres"); len(genres) > 0 {
		meta = append(meta, strings.Join(genres, ", "))
	}
	metaLine := styles.MutedStyle.Render(strings.Join(meta, " • "))
	if vote := details.Float("vote_average"); vote > 0 {
		metaLine += "  " + styles.RatingStyle(vote).Render(fmt.Sprintf("★ %.1f", vote))
	}

	info := lipgloss.JoinVertical(lipgloss.Left,
		metaLine,
		"",
		styles.TextStyle.Render(details.String("overview")),
	)
	infoWidth := s.width - 4
	if infoWidth < 20 {
		infoWidth = 76
	}
	infoCard := styles.CardStyle.Width(infoWidth).Render(info)

	switch {
	case s.posterLoading:
		infoCard = lipgloss.JoinVertical(lipgloss.Left, infoCard, s.loader.View())
	case s.posterErr != nil:
		infoCard = lipgloss.JoinVertical(lipgloss.Left, infoCard, styles.ErrorStyle.Render(s.posterErr.Error()))
	case s.poster != "":
		infoCard = lipgloss.JoinHorizontal(lipgloss.Top, s.poster, " ", styles.CardStyle.Width(max(infoWidth-32, 20)).Render(info))
	}

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: row • ←/h →/l: browse • enter: open • f: like • p: poster • esc: back • q: quit",
	)

	return fmt.Sprintf("%s\n%s\n%s\n\n%s\n%s", header, infoCard, s.cast.View(), s.similar.View(), help)
}
