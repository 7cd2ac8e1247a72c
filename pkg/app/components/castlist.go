package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/utils"
)

const castLimit = 10

// CastList shows cast members as name / character cards.
type CastList struct {
	Items         []data.Item
	SelectedIndex int
	Focused       bool
	Width         int
}

func NewCastList() *CastList {
	return &CastList{Items: []data.Item{}, Width: 80}
}

func (c *CastList) SetItems(items []data.Item) {
	if items == nil {
		items = []data.Item{}
	}
	c.Items = items
	c.SelectedIndex = 0
}

func (c *CastList) Next() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex = (c.SelectedIndex + 1) % len(c.Items)
}

func (c *CastList) Prev() {
	if len(c.Items) == 0 {
		return
	}
	c.SelectedIndex = (c.SelectedIndex - 1 + len(c.Items)) % len(c.Items)
}

func (c *CastList) Selected() data.Item {
	if len(c.Items) == 0 {
		return nil
	}
	return c.Items[c.SelectedIndex]
}

func (c *CastList) View() string {
	var b strings.Builder
	b.WriteString(styles.SubtitleStyle.Render("Cast"))
	b.WriteString("\n")

	if len(c.Items) == 0 {
		b.WriteString(styles.MutedStyle.Render("No cast information"))
		return b.String()
	}

	cardWidth := castLimit + 5
	visible := c.Width / (cardWidth + 5)
	if visible < 1 {
		visible = 1
	}
	start := 0
	if c.SelectedIndex >= visible {
		start = c.SelectedIndex - visible + 1
	}
	end := min(start+visible, len(c.Items))

	cards := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		member := c.Items[i]
		style := styles.CardStyle
		if c.Focused && i == c.SelectedIndex {
			style = styles.ActiveCardStyle
		}
		body := lipgloss.JoinVertical(lipgloss.Left,
			styles.TextStyle.Render(utils.Truncate(member.String("name"), castLimit)),
			styles.MutedStyle.Render(utils.Truncate(member.String("character"), castLimit)),
		)
		cards = append(cards, style.Width(cardWidth).Render(body))
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	if len(c.Items) > visible {
		b.WriteString("\n")
		b.WriteString(styles.MutedStyle.Render(fmt.Sprintf("%d/%d", c.SelectedIndex+1, len(c.Items))))
	}
	return b.String()
}
