package catalog

import (
	"strings"

	"github.com/google/uuid"
)

// Snapshot is the read-mostly view of the catalog a POS session works
// against. It is loaded once when the session opens; the only writes it
// sees afterwards are refreshes from commit-time re-reads.
type Snapshot struct {
	order []uuid.UUID
	byID  map[uuid.UUID]Item
}

// NewSnapshot copies the given items into a new snapshot, preserving
// their order.
func NewSnapshot(items []*Item) *Snapshot {
	s := &Snapshot{byID: make(map[uuid.UUID]Item, len(items))}
	for _, it := range items {
		if _, seen := s.byID[it.ID]; seen {
			continue
		}
		s.order = append(s.order, it.ID)
		s.byID[it.ID] = *it
	}
	return s
}

// Get returns the snapshot's copy of an item.
func (s *Snapshot) Get(id uuid.UUID) (Item, bool) {
	it, ok := s.byID[id]
	return it, ok
}

// Items returns all entries in load order.
func (s *Snapshot) Items() []Item {
	out := make([]Item, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.byID[id])
	}
	return out
}

// Filter projects the snapshot by kind and a case-insensitive name
// substring. Both filters are optional. The projection is pure: it
// never mutates the snapshot and yields the same result on every call.
func (s *Snapshot) Filter(kind ItemKind, query string) []Item {
	query = strings.ToLower(strings.TrimSpace(query))
	var out []Item
	for _, id := range s.order {
		it := s.byID[id]
		if kind != "" && it.Kind != kind {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(it.Name), query) {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Refresh replaces the snapshot's copy of a single item with a fresher
// read. Unknown items are ignored.
func (s *Snapshot) Refresh(item Item) {
	if _, ok := s.byID[item.ID]; ok {
		s.byID[item.ID] = item
	}
}

// Len returns the number of entries.
func (s *Snapshot) Len() int { return len(s.order) }
