package components

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/movies/pkg/app/styles"
)

// Loading is a spinner with a label, shown while a screen waits on the
// catalog.
type Loading struct {
	Label   string
	spinner spinner.Model
}

func NewLoading(label string) *Loading {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.LoadingStyle
	return &Loading{Label: label, spinner: s}
}

func (l *Loading) Tick() tea.Cmd {
	return l.spinner.Tick
}

func (l *Loading) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	l.spinner, cmd = l.spinner.Update(msg)
	return cmd
}

func (l *Loading) View() string {
	return l.spinner.View() + " " + styles.LoadingStyle.Render(l.Label)
}
