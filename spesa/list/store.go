package list

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"
	"sync"
)

// Persister is the whole-document persistence boundary. The Store is its
// only writer.
type Persister interface {
	Load(v any) (bool, error)
	Save(v any) error
}

// Store keeps per-identifier item sequences in memory and re-persists the
// whole mapping after every mutation.
type Store struct {
	mu    sync.Mutex
	file  Persister
	lists map[string][]Item
}

// Open loads the persisted mapping, repairing and upgrading stored records
// along the way. Repaired data is re-persisted immediately.
func Open(file Persister) (*Store, error) {
	s := &Store{
		file:  file,
		lists: map[string][]Item{},
	}

	raw := map[string]json.RawMessage{}
	ok, err := file.Load(&raw)
	if err != nil {
		return nil, err
	}
	if !ok {
		return s, nil
	}

	dirty := false
	for key, doc := range raw {
		items, changed := decodeList(doc)
		s.lists[key] = items
		dirty = dirty || changed
	}
	if dirty {
		s.persistLocked()
	}
	return s, nil
}

// decodeList decodes one stored sequence, handling the legacy bare-string
// shape and per-record corruption. It reports whether anything needed fixing.
func decodeList(doc json.RawMessage) ([]Item, bool) {
	var stored []storedItem
	if err := json.Unmarshal(doc, &stored); err == nil {
		items := make([]Item, 0, len(stored))
		changed := false
		for _, rec := range stored {
			if !rec.Name.ok || strings.TrimSpace(rec.Name.value) == "" {
				changed = true
				continue
			}
			it := Item{
				Name:     rec.Name.value,
				Quantity: rec.Quantity,
				Category: rec.Category,
			}
			if it.Quantity == "" {
				it.Quantity = "1"
				changed = true
			}
			if it.Category == "" {
				it.Category = Categorize(it.Name)
				changed = true
			}
			items = append(items, it)
		}
		return items, changed
	}

	// legacy shape: a bare array of item names
	var names []string
	if err := json.Unmarshal(doc, &names); err == nil {
		items := make([]Item, 0, len(names))
		for _, n := range names {
			if strings.TrimSpace(n) == "" {
				continue
			}
			items = append(items, Item{
				Name:     n,
				Quantity: "1",
				Category: Categorize(n),
			})
		}
		return items, true
	}

	slog.Warn("dropping undecodable shopping list entry")
	return nil, true
}

// KeyFor derives the list identifier from chat context. Group chats
// (negative chat IDs) share one list per chat, private chats get one list
// per user.
func KeyFor(chatID, userID int64) string {
	if chatID < 0 {
		return strconv.FormatInt(chatID, 10)
	}
	return strconv.FormatInt(userID, 10)
}

// Scope names the kind of list a chat maps to, for display.
func Scope(chatID int64) string {
	if chatID < 0 {
		return "Lista di gruppo"
	}
	return "Lista personale"
}

// Add parses raw item text, categorizes it and stores it under key.
// Adding a name already on the list (case-insensitive) updates the existing
// record instead of appending. It reports false only for degenerate empty
// input.
func (s *Store) Add(key, raw string) (Item, bool) {
	name, quantity := ParseItem(raw)
	if name == "" {
		return Item{}, false
	}
	it := Item{
		Name:     name,
		Quantity: quantity,
		Category: Categorize(name),
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.lists[key]
	for i := range items {
		if strings.EqualFold(items[i].Name, name) {
			if quantity != "1" {
				items[i].Quantity = quantity
			}
			items[i].Category = it.Category
			s.persistLocked()
			return items[i], true
		}
	}
	s.lists[key] = append(items, it)
	s.persistLocked()
	return it, true
}

// Items returns a copy of the sequence stored under key, empty when the
// identifier is unknown.
func (s *Store) Items(key string) []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.lists[key]
	out := make([]Item, len(items))
	copy(out, items)
	return out
}

// Remove deletes the record at the zero-based index, reporting false and
// leaving the list untouched when the index is out of bounds.
func (s *Store) Remove(key string, index int) (Item, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.lists[key]
	if index < 0 || index >= len(items) {
		return Item{}, false
	}
	removed := items[index]
	s.lists[key] = append(items[:index], items[index+1:]...)
	s.persistLocked()
	return removed, true
}

// Clear empties the list for key. The identifier stays known.
func (s *Store) Clear(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lists[key] = []Item{}
	s.persistLocked()
}

// SetQuantity overwrites the quantity of the record at index.
func (s *Store) SetQuantity(key string, index int, quantity string) bool {
	quantity = strings.TrimSpace(quantity)
	if quantity == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items := s.lists[key]
	if index < 0 || index >= len(items) {
		return false
	}
	items[index].Quantity = quantity
	s.persistLocked()
	return true
}

// persistLocked re-saves the whole mapping. A failed write only loses
// durability, the in-memory state stays correct and the next successful
// mutation persists it again.
func (s *Store) persistLocked() {
	if err := s.file.Save(s.lists); err != nil {
		slog.Error("failed persisting shopping lists", "error", err)
	}
}
