package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/movies/pkg/app/screens"
	"github.com/kerbaras/movies/pkg/services"
)

type App struct {
	controller *services.MovieController
}

func NewApp(controller *services.MovieController) *App {
	return &App{controller: controller}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
