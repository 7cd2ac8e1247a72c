package screens

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/app/components"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/services"
	"github.com/kerbaras/movies/pkg/utils"
)

// SearchScreen queries the catalog as the user types.
type SearchScreen struct {
	controller *services.MovieController
	input      textinput.Model
	loader     *components.Loading
	results    []data.Item
	selected   int
	searching  bool
	width      int
	height     int
}

type searchResultMsg struct {
	query   string
	results []data.Item
}

func NewSearchScreen(controller *services.MovieController) *SearchScreen {
	ti := textinput.New()
	ti.Placeholder = "Search movies..."
	ti.Focus()
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchScreen{
		controller: controller,
		input:      ti,
		loader:     components.NewLoading("Searching..."),
		results:    []data.Item{},
	}
}

func (s *SearchScreen) Init() tea.Cmd {
	return textinput.Blink
}

func (s *SearchScreen) Focus() tea.Cmd {
	return tea.Batch(s.input.Focus(), textinput.Blink)
}

func (s *SearchScreen) Blur() {}

func (s *SearchScreen) CapturesInput() bool {
	return s.input.Focused()
}

func (s *SearchScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		return s, nil

	case searchResultMsg:
		// A newer keystroke has already replaced this query.
		if msg.query != s.input.Value() {
			return s, nil
		}
		s.searching = false
		s.results = msg.results
		s.selected = 0
		return s, nil

	case tea.KeyMsg:
		if !s.input.Focused() {
			return s, s.handleResultsKey(msg)
		}
		switch msg.String() {
		case "esc", "down":
			if len(s.results) > 0 {
				s.input.Blur()
			}
			return s, nil
		case "enter":
			return s, nil
		}

		before := s.input.Value()
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		if s.input.Value() != before {
			return s, tea.Batch(cmd, s.search(s.input.Value()))
		}
		return s, cmd
	}

	var cmds []tea.Cmd
	if s.searching {
		cmds = append(cmds, s.loader.Update(msg))
	}
	if s.input.Focused() {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		cmds = append(cmds, cmd)
	}
	return s, tea.Batch(cmds...)
}

func (s *SearchScreen) search(query string) tea.Cmd {
	if utf8.RuneCountInString(query) < services.MinSearchLength {
		s.searching = false
		s.results = []data.Item{}
		s.selected = 0
		return nil
	}

	s.searching = true
	controller := s.controller
	return tea.Batch(s.loader.Tick(), func() tea.Msg {
		return searchResultMsg{query: query, results: controller.Search(context.Background(), query)}
	})
}

func (s *SearchScreen) handleResultsKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "up", "k":
		if s.selected == 0 {
			return s.input.Focus()
		}
		s.selected--
	case "down", "j":
		if len(s.results) > 0 {
			s.selected = (s.selected + 1) % len(s.results)
		}
	case "esc", "/":
		return s.input.Focus()
	case "enter":
		if s.selected < len(s.results) {
			if id := s.results[s.selected].ID(); id != "" {
				return open(movieScreen, id)
			}
		}
	}
	return nil
}

func (s *SearchScreen) View() string {
	header := styles.TitleStyle.Render("Search Movies")

	inputStyle := styles.InputStyle
	if s.input.Focused() {
		inputStyle = styles.FocusedInputStyle
	}
	inputView := inputStyle.Render(s.input.View())

	var resultsView string
	query := s.input.Value()
	switch {
	case s.searching:
		resultsView = s.loader.View()
	case len(s.results) > 0:
		resultsView = s.renderResults()
	case utf8.RuneCountInString(query) >= services.MinSearchLength:
		resultsView = styles.MutedStyle.Render("No results found")
	case query != "":
		resultsView = styles.MutedStyle.Render(fmt.Sprintf("Type at least %d characters", services.MinSearchLength))
	}

	help := styles.HelpStyle.Render(
		"type to search • esc/↓: results • ↑/k ↓/j: navigate • enter: open • tab: switch view",
	)

	return fmt.Sprintf("%s\n\n%s\n\n%s\n\n%s", header, inputView, resultsView, help)
}

func (s *SearchScreen) renderResults() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render(fmt.Sprintf("Found %d results:", len(s.results))))
	b.WriteString("\n\n")

	width := s.width - 6
	if width < 20 {
		width = 60
	}

	// Keep the selection on screen.
	visible := 5
	if s.height > 0 {
		visible = max((s.height-14)/4, 1)
	}
	start := 0
	if s.selected >= visible {
		start = s.selected - visible + 1
	}
	end := min(start+visible, len(s.results))

	for i := start; i < end; i++ {
		movie := s.results[i]
		cardStyle := styles.CardStyle
		if i == s.selected && !s.input.Focused() {
			cardStyle = styles.ActiveCardStyle
		}

		title := movie.Title()
		if year := movie.Year(); year != "" {
			title = fmt.Sprintf("%s (%s)", title, year)
		}

		card := lipgloss.JoinVertical(
			lipgloss.Left,
			styles.SelectedStyle.Render(title),
			styles.TextStyle.Render(utils.Truncate(movie.String("overview"), 117)),
		)
		b.WriteString(cardStyle.Width(width).Render(card))
		b.WriteString("\n")
	}

	return b.String()
}
