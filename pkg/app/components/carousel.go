package components

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kerbaras/movies/pkg/app/styles"
	"github.com/kerbaras/movies/pkg/data"
)

const CarouselInterval = 3 * time.Second

// CarouselTickMsg advances the carousel that scheduled it.
type CarouselTickMsg struct {
	ID         int
	Generation int
}

var lastCarouselID int

// Carousel cycles through items on a timer. Stop invalidates pending ticks,
// so a torn-down carousel never advances again.
type Carousel struct {
	Items      []data.Item
	Index      int
	Width      int
	Interval   time.Duration
	id         int
	generation int
	running    bool
}

func NewCarousel() *Carousel {
	lastCarouselID++
	return &Carousel{id: lastCarouselID, Interval: CarouselInterval, Width: 60}
}

// SetItems replaces the slides and restarts the timer when there is
// something to show.
func (c *Carousel) SetItems(items []data.Item) tea.Cmd {
	c.Items = items
	c.Index = 0
	c.Stop()
	if len(items) == 0 {
		return nil
	}
	c.running = true
	return c.tick()
}

// Start resumes a stopped carousel.
func (c *Carousel) Start() tea.Cmd {
	if c.running || len(c.Items) == 0 {
		return nil
	}
	c.running = true
	return c.tick()
}

func (c *Carousel) Stop() {
	c.generation++
	c.running = false
}

func (c *Carousel) Running() bool {
	return c.running
}

func (c *Carousel) tick() tea.Cmd {
	id, gen := c.id, c.generation
	return tea.Tick(c.Interval, func(time.Time) tea.Msg {
		return CarouselTickMsg{ID: id, Generation: gen}
	})
}

func (c *Carousel) Update(msg tea.Msg) tea.Cmd {
	tick, ok := msg.(CarouselTickMsg)
	if !ok || tick.ID != c.id || tick.Generation != c.generation || !c.running {
		return nil
	}
	if len(c.Items) == 0 {
		return nil
	}
	c.Index = (c.Index + 1) % len(c.Items)
	return c.tick()
}

func (c *Carousel) Current() data.Item {
	if len(c.Items) == 0 {
		return nil
	}
	return c.Items[c.Index]
}

func (c *Carousel) View() string {
	if len(c.Items) == 0 {
		return styles.MutedStyle.Render("No Trending Movies Available")
	}

	item := c.Current()
	title := styles.TitleStyle.Render(item.Title())
	meta := item.Year()
	if vote := item.Float("vote_average"); vote > 0 {
		meta = strings.TrimSpace(fmt.Sprintf("%s  ★ %.1f", meta, vote))
	}

	overview := item.String("overview")
	if len(overview) > 160 {
		overview = overview[:157] + "..."
	}

	dots := make([]string, len(c.Items))
	for i := range c.Items {
		if i == c.Index {
			dots[i] = styles.SelectedStyle.Render("●")
		} else {
			dots[i] = styles.MutedStyle.Render("○")
		}
	}

	body := fmt.Sprintf("%s\n%s\n%s\n\n%s",
		title,
		styles.MutedStyle.Render(meta),
		styles.TextStyle.Render(overview),
		strings.Join(dots, " "),
	)
	return styles.SlideStyle.Width(c.Width).Render(body)
}
