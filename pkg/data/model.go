package data

import (
	"strconv"
	"strings"
)

// Item is a catalog entity (movie, person, cast member) exactly as the
// catalog returned it. Nothing is validated; accessors fall back to zero
// values when a field is missing or has an unexpected type.
type Item map[string]any

// ID returns the item's id as a string key. JSON numbers are rendered
// without a fractional part, so 42 and "42" name the same entity.
func (i Item) ID() string {
	return stringify(i["id"])
}

func (i Item) String(key string) string {
	s, _ := i[key].(string)
	return s
}

func (i Item) Float(key string) float64 {
	switch v := i[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case string:
		f, _ := strconv.ParseFloat(v, 64)
		return f
	}
	return 0
}

func (i Item) Int(key string) int {
	return int(i.Float(key))
}

// Items returns a nested list of objects such as "results", "cast" or
// "genres". Entries that are not objects are skipped.
func (i Item) Items(key string) []Item {
	raw, ok := i[key].([]any)
	if !ok {
		return []Item{}
	}
	out := make([]Item, 0, len(raw))
	for _, v := range raw {
		switch obj := v.(type) {
		case map[string]any:
			out = append(out, Item(obj))
		case Item:
			out = append(out, obj)
		}
	}
	return out
}

// Names collects the "name" field of a nested list, e.g. genres.
func (i Item) Names(key string) []string {
	var names []string
	for _, it := range i.Items(key) {
		if n := it.String("name"); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// Title is the display name for both movies ("title") and people ("name").
func (i Item) Title() string {
	if t := i.String("title"); t != "" {
		return t
	}
	return i.String("name")
}

// Year is the leading segment of release_date ("2014-11-05" -> "2014").
func (i Item) Year() string {
	date := i.String("release_date")
	if date == "" {
		return ""
	}
	return strings.SplitN(date, "-", 2)[0]
}

func stringify(v any) string {
	switch id := v.(type) {
	case string:
		return id
	case float64:
		return strconv.FormatFloat(id, 'f', -1, 64)
	case int:
		return strconv.Itoa(id)
	case int64:
		return strconv.FormatInt(id, 10)
	}
	return ""
}
