package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/utils"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

var outputFormat = formatTable

// column picks one cell out of an item.
type column struct {
	Title string
	Width int
	Value func(data.Item) string
}

var (
	idColumn     = column{Title: "ID", Width: 10, Value: data.Item.ID}
	titleColumn  = column{Title: "Title", Width: 40, Value: data.Item.Title}
	yearColumn   = column{Title: "Year", Width: 4, Value: data.Item.Year}
	ratingColumn = column{Title: "Rating", Width: 6, Value: func(i data.Item) string {
		if v := i.Float("vote_average"); v > 0 {
			return strconv.FormatFloat(v, 'f', 1, 64)
		}
		return "-"
	}}
	nameColumn       = column{Title: "Name", Width: 30, Value: data.Item.Title}
	characterColumn  = column{Title: "Character", Width: 30, Value: func(i data.Item) string { return i.String("character") }}
	departmentColumn = column{Title: "Department", Width: 16, Value: func(i data.Item) string { return i.String("known_for_department") }}
)

var movieColumns = []column{idColumn, titleColumn, yearColumn, ratingColumn}

// writeStructured writes v as JSON or YAML. It reports false for the table
// format so the caller renders its own view.
func writeStructured(w io.Writer, v any) (bool, error) {
	switch outputFormat {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return true, enc.Encode(v)
	case formatTable, "":
		return false, nil
	default:
		return true, fmt.Errorf("unknown output format %q (want table, json or yaml)", outputFormat)
	}
}

// printItems renders a list of catalog items in the selected format.
func printItems(w io.Writer, heading string, items []data.Item, columns []column) error {
	if items == nil {
		items = []data.Item{}
	}
	if done, err := writeStructured(w, items); done {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintf(w, "%s: nothing found.\n", heading)
		return nil
	}

	var (
		purple = lipgloss.Color("99")

		headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FFB300")).Bold(true)
		headerStyle  = lipgloss.NewStyle().Foreground(purple).Bold(true).Align(lipgloss.Center)
		cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	)

	headers := make([]string, len(columns))
	for i, c := range columns {
		headers[i] = c.Title
	}

	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(purple)).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...)

	for _, item := range items {
		row := make([]string, len(columns))
		for i, c := range columns {
			row[i] = utils.Truncate(c.Value(item), c.Width)
		}
		t.Row(row...)
	}

	fmt.Fprintf(w, "\n%s (%d)\n", headingStyle.Render(heading), len(items))
	fmt.Fprintln(w, t)
	return nil
}
