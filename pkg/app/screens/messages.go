package screens

import tea "github.com/charmbracelet/bubbletea"

// SwitchScreenMsg asks the root screen to open a detail screen or go back.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

const (
	movieScreen  = "movie"
	personScreen = "person"
	backScreen   = "back"
)

func open(screen, id string) tea.Cmd {
	return func() tea.Msg {
		return SwitchScreenMsg{Screen: screen, Data: id}
	}
}

func back() tea.Msg {
	return SwitchScreenMsg{Screen: backScreen}
}

// Focusable screens are told when they become visible or hidden.
type Focusable interface {
	Focus() tea.Cmd
	Blur()
}

// inputCapturer is implemented by screens that consume plain keys, such as
// a focused text input.
type inputCapturer interface {
	CapturesInput() bool
}

var lastToken int

// nextToken tags an async load so its result can be matched to the request.
func nextToken() int {
	lastToken++
	return lastToken
}
