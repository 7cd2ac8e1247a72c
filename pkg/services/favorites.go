package services

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/kerbaras/movies/pkg/data"
	"github.com/kerbaras/movies/pkg/logging"
)

// Collection names a favorites list. The value is the storage key.
type Collection string

const (
	LikedMovies Collection = "LikedMovies"
	LikedPeople Collection = "likedPeople"
)

// KV is the persistent store the favorites live in.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// Favorites tracks liked movies and people. Each collection is stored as
// one JSON object mapping entity id to the full entity payload.
//
// Storage failures never reach the caller: reads degrade to an empty
// collection and failed writes leave the previous state in place.
type Favorites struct {
	kv  KV
	log *slog.Logger

	// mu serializes read-modify-write cycles.
	mu sync.Mutex
}

func NewFavorites(kv KV, logger *slog.Logger) *Favorites {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Favorites{kv: kv, log: logger.With("component", "favorites")}
}

func (f *Favorites) IsFavorite(c Collection, id string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load(c)
	if err != nil {
		f.log.Error("failed to load favorites", "collection", c, "id", id, "error", err)
		return false
	}
	_, ok := items[id]
	return ok
}

// Toggle adds item under id, or removes id if it is already liked, and
// reports whether id is liked afterwards.
func (f *Favorites) Toggle(c Collection, id string, item data.Item) bool {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load(c)
	if err != nil {
		// Leave an unreadable collection untouched rather than overwrite it.
		f.log.Error("failed to load favorites", "collection", c, "id", id, "error", err)
		return false
	}

	_, liked := items[id]
	if liked {
		delete(items, id)
	} else {
		if item == nil {
			item = data.Item{}
		}
		items[id] = item
	}

	if err := f.store(c, items); err != nil {
		f.log.Error("failed to save favorites", "collection", c, "id", id, "error", err)
		return liked
	}
	f.log.Debug("favorite toggled", "collection", c, "id", id, "liked", !liked)
	return !liked
}

// List returns every liked item of c, ordered by id.
func (f *Favorites) List(c Collection) []data.Item {
	f.mu.Lock()
	defer f.mu.Unlock()

	items, err := f.load(c)
	if err != nil {
		f.log.Error("failed to load favorites", "collection", c, "error", err)
		return []data.Item{}
	}

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		if len(ids[i]) != len(ids[j]) {
			return len(ids[i]) < len(ids[j])
		}
		return ids[i] < ids[j]
	})

	out := make([]data.Item, len(ids))
	for i, id := range ids {
		out[i] = items[id]
	}
	return out
}

func (f *Favorites) load(c Collection) (map[string]data.Item, error) {
	raw, found, err := f.kv.Get(string(c))
	if err != nil {
		return nil, err
	}
	items := map[string]data.Item{}
	if !found || raw == "" {
		return items, nil
	}
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, fmt.Errorf("corrupt %s: %w", c, err)
	}
	if items == nil {
		items = map[string]data.Item{}
	}
	return items, nil
}

func (f *Favorites) store(c Collection, items map[string]data.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return f.kv.Set(string(c), string(raw))
}
