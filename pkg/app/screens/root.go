package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/services"
)

type tab int

const (
	homeTab tab = iota
	searchTab
	likedMoviesTab
	likedPeopleTab
)

var tabNames = []string{"Home", "Search", "Liked Movies", "Liked People"}

// RootScreen owns the tab bar and a stack of detail screens opened on top
// of it. Keys go to the visible screen; every other message is broadcast so
// background loads still land.
type RootScreen struct {
	controller *services.MovieController

	current tab
	tabs    []tea.Model
	stack   []tea.Model

	width  int
	height int
}

func NewRootScreen(controller *services.MovieController) *RootScreen {
	return &RootScreen{
		controller: controller,
		current:    homeTab,
		tabs: []tea.Model{
			NewHomeScreen(controller),
			NewSearchScreen(controller),
			NewLikedScreen(controller, services.LikedMovies),
			NewLikedScreen(controller, services.LikedPeople),
		},
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.tabs[homeTab].Init()
}

func (r *RootScreen) active() tea.Model {
	if n := len(r.stack); n > 0 {
		return r.stack[n-1]
	}
	return r.tabs[r.current]
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		return r, r.broadcast(msg)

	case tea.KeyMsg:
		capturing := false
		if c, ok := r.active().(inputCapturer); ok {
			capturing = c.CapturesInput()
		}
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			if !capturing {
				return r, tea.Quit
			}
		case "tab", "shift+tab":
			if len(r.stack) == 0 {
				step := 1
				if msg.String() == "shift+tab" {
					step = len(r.tabs) - 1
				}
				return r, r.switchTab(tab((int(r.current) + step) % len(r.tabs)))
			}
		case "esc":
			if len(r.stack) > 0 && !capturing {
				return r, r.pop()
			}
		}
		return r, r.updateActive(msg)

	case SwitchScreenMsg:
		return r, r.handleSwitch(msg)
	}

	return r, r.broadcast(msg)
}

func (r *RootScreen) handleSwitch(msg SwitchScreenMsg) tea.Cmd {
	if msg.Screen == backScreen {
		return r.pop()
	}

	id, _ := msg.Data.(string)
	if id == "" {
		return nil
	}

	var screen tea.Model
	switch msg.Screen {
	case movieScreen:
		screen = NewMovieScreen(r.controller, id)
	case personScreen:
		screen = NewPersonScreen(r.controller, id)
	default:
		return nil
	}
	return r.push(screen)
}

func (r *RootScreen) switchTab(next tab) tea.Cmd {
	if next == r.current {
		return nil
	}
	if f, ok := r.tabs[r.current].(Focusable); ok {
		f.Blur()
	}
	r.current = next
	if f, ok := r.tabs[r.current].(Focusable); ok {
		return f.Focus()
	}
	return nil
}

func (r *RootScreen) push(screen tea.Model) tea.Cmd {
	if len(r.stack) == 0 {
		if f, ok := r.tabs[r.current].(Focusable); ok {
			f.Blur()
		}
	}
	r.stack = append(r.stack, screen)

	cmds := []tea.Cmd{screen.Init()}
	if r.width > 0 {
		model, cmd := screen.Update(tea.WindowSizeMsg{Width: r.width, Height: r.height})
		r.stack[len(r.stack)-1] = model
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r *RootScreen) pop() tea.Cmd {
	if len(r.stack) == 0 {
		return nil
	}
	r.stack = r.stack[:len(r.stack)-1]
	if len(r.stack) > 0 {
		return nil
	}
	if f, ok := r.tabs[r.current].(Focusable); ok {
		return f.Focus()
	}
	return nil
}

func (r *RootScreen) updateActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if n := len(r.stack); n > 0 {
		r.stack[n-1], cmd = r.stack[n-1].Update(msg)
		return cmd
	}
	r.tabs[r.current], cmd = r.tabs[r.current].Update(msg)
	return cmd
}

func (r *RootScreen) broadcast(msg tea.Msg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd
	for i := range r.tabs {
		r.tabs[i], cmd = r.tabs[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	for i := range r.stack {
		r.stack[i], cmd = r.stack[i].Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

func (r *RootScreen) View() string {
	content := r.active().View()
	if len(r.stack) > 0 {
		return content
	}
	return fmt.Sprintf("%s\n\n%s", r.renderTabs(), content)
}

func (r *RootScreen) renderTabs() string {
	rendered := make([]string, len(tabNames))
	for i, name := range tabNames {
		if tab(i) == r.current {
			rendered[i] = styles.ActiveTabStyle.Render(name)
		} else {
			rendered[i] = styles.InactiveTabStyle.Render(name)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
