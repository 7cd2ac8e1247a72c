package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/utils"
)

const titleLimit = 14

// MovieList is a selectable list of movie or person cards.
type MovieList struct {
	Title         string
	Items         []data.Item
	SelectedIndex int
	Focused       bool
	Width         int
	Height        int
	// Empty is shown when there are no items.
	Empty string
}

func NewMovieList(title string) *MovieList {
	return &MovieList{
		Title:         title,
		Items:         []data.Item{},
		SelectedIndex: 0,
		Width:         80,
		Height:        20,
		Empty:         "Nothing here yet",
	}
}

func (m *MovieList) SetItems(items []data.Item) {
	if items == nil {
		items = []data.Item{}
	}
	m.Items = items
	if m.SelectedIndex >= len(items) && len(items) > 0 {
		m.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		m.SelectedIndex = 0
	}
}

func (m *MovieList) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex++
	if m.SelectedIndex >= len(m.Items) {
		m.SelectedIndex = 0
	}
}

func (m *MovieList) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.SelectedIndex--
	if m.SelectedIndex < 0 {
		m.SelectedIndex = len(m.Items) - 1
	}
}

func (m *MovieList) Selected() data.Item {
	if len(m.Items) == 0 || m.SelectedIndex >= len(m.Items) {
		return nil
	}
	return m.Items[m.SelectedIndex]
}

// View renders the cards in a row, scrolled so the selection is visible.
func (m *MovieList) View() string {
	var b strings.Builder
	if m.Title != "" {
		b.WriteString(styles.SubtitleStyle.Render(m.Title))
		b.WriteString("\n")
	}

	if len(m.Items) == 0 {
		b.WriteString(styles.MutedStyle.Render(m.Empty))
		return b.String()
	}

	cardWidth := titleLimit + 5
	visible := m.Width / (cardWidth + 5)
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.SelectedIndex >= visible {
		start = m.SelectedIndex - visible + 1
	}
	end := start + visible
	if end > len(m.Items) {
		end = len(m.Items)
	}

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		item := m.Items[i]
		cardStyle := styles.CardStyle
		if m.Focused && i == m.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		lines := []string{styles.TextStyle.Render(utils.Truncate(item.Title(), titleLimit))}
		if year := item.Year(); year != "" {
			lines = append(lines, styles.MutedStyle.Render(year))
		} else if dept := item.String("known_for_department"); dept != "" {
			lines = append(lines, styles.MutedStyle.Render(dept))
		}
		if vote := item.Float("vote_average"); vote > 0 {
			lines = append(lines, styles.RatingStyle(vote).Render(fmt.Sprintf("★ %.1f", vote)))
		}

		cards = append(cards, cardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	if len(m.Items) > visible {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d/%d", m.SelectedIndex+1, len(m.Items))))
	}
	return b.String()
}
