package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Color palette
	Primary    = lipgloss.Color("#FFB300")
	Secondary  = lipgloss.Color("#82AAFF")
	Success    = lipgloss.Color("#C3E88D")
	Warning    = lipgloss.Color("#FFCB6B")
	Error      = lipgloss.Color("#F07178")
	Heart      = lipgloss.Color("#FF6347")
	Muted      = lipgloss.Color("#546E7A")
	Background = lipgloss.Color("#1C1C1C")
	Foreground = lipgloss.Color("#EEFFFF")

	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	MutedStyle = lipgloss.NewStyle().
			Foreground(Muted)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	CardStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Muted).
			Padding(0, 1).
			MarginRight(1)

	ActiveCardStyle = lipgloss.NewStyle().
			Border(ThickBorder).
			BorderForeground(Primary).
			Padding(0, 1).
			MarginRight(1)

	// Carousel slide
	SlideStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Secondary).
			Padding(1, 2).
			MarginBottom(1)

	LikedStyle = lipgloss.NewStyle().
			Foreground(Heart).
			Bold(true)

	UnlikedStyle = lipgloss.NewStyle().
			Foreground(Foreground)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	LoadingStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	ActiveTabStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Background(lipgloss.Color("#37474F")).
			Padding(0, 2).
			Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
				Foreground(Muted).
				Padding(0, 2)

	HelpStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true).
			MarginTop(1)

	InputStyle = lipgloss.NewStyle().
			Border(RoundedBorder).
			BorderForeground(Muted).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Border(RoundedBorder).
				BorderForeground(Primary).
				Padding(0, 1)
)

// HeartIcon renders the like indicator.
func HeartIcon(liked bool) string {
	if liked {
		return LikedStyle.Render("♥")
	}
	return UnlikedStyle.Render("♡")
}

// RatingStyle colours a 0-10 vote average.
func RatingStyle(vote float64) lipgloss.Style {
	switch {
	case vote >= 7:
		return lipgloss.NewStyle().Foreground(Success).Bold(true)
	case vote >= 5:
		return lipgloss.NewStyle().Foreground(Warning)
	case vote > 0:
		return lipgloss.NewStyle().Foreground(Error)
	default:
		return MutedStyle
	}
}
