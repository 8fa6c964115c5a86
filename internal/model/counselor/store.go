package counselor

import "github.com/samber/lo"

// Store exposes counselor retrieval for handlers and the booking wizard.
type Store interface {
	List() []Counselor
	FindByID(id string) (Counselor, bool)
}

// MemoryStore implements Store with an in-memory slice.
type MemoryStore struct {
	items []Counselor
}

// NewMemoryStore returns a MemoryStore preloaded with the supplied counselors.
func NewMemoryStore(items []Counselor) *MemoryStore {
	return &MemoryStore{items: append([]Counselor(nil), items...)}
}

// List returns the roster in catalog order.
func (s *MemoryStore) List() []Counselor {
	return append([]Counselor(nil), s.items...)
}

// FindByID looks up a counselor by identifier.
func (s *MemoryStore) FindByID(id string) (Counselor, bool) {
	return lo.Find(s.items, func(item Counselor) bool {
		return item.ID == id
	})
}
