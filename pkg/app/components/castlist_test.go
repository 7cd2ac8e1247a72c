package components

import (
	"testing"

	"github.com/kerbaras/movies/pkg/data"
	"github.com/stretchr/testify/assert"
)

func TestCastListTruncatesNameAndCharacter(t *testing.T) {
	list := NewCastList()
	list.Width = 200
	list.SetItems([]data.Item{
		{"id": float64(6384), "name": "Keanu Reeves", "character": "Thomas A. Anderson"},
	})

	view := list.View()

	assert.Contains(t, view, "Keanu Reev...")
	assert.Contains(t, view, "Thomas A. ...")
}

func TestCastListNavigation(t *testing.T) {
	list := NewCastList()
	assert.Nil(t, list.Selected())

	list.SetItems([]data.Item{
		{"id": float64(1), "name": "A"},
		{"id": float64(2), "name": "B"},
	})

	list.Prev()
	assert.Equal(t, "2", list.Selected().ID())
	list.Next()
	assert.Equal(t, "1", list.Selected().ID())
}

func TestCastListEmpty(t *testing.T) {
	list := NewCastList()
	list.SetItems(nil)

	assert.NotNil(t, list.Items)
	assert.Contains(t, list.View(), "No cast information")
}
