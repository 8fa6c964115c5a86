package resource

import (
	"strings"

	"github.com/samber/lo"
)

const (
	featuredMinRating = 4.8
	featuredLimit     = 3
)

// Query narrows the library listing. Empty fields match everything.
type Query struct {
	Search     string
	Category   string
	Difficulty string
}

// Store serves the library from memory.
type Store struct {
	items []Resource
}

// NewStore returns a Store preloaded with items.
func NewStore(items []Resource) *Store {
	return &Store{items: append([]Resource(nil), items...)}
}

// Filter returns the resources matching every part of q, in catalog order.
func (s *Store) Filter(q Query) []Resource {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	return lo.Filter(s.items, func(item Resource, _ int) bool {
		return matchesSearch(item, search) &&
			matchesFacet(item.Category, q.Category) &&
			matchesFacet(item.Difficulty, q.Difficulty)
	})
}

// Featured returns the first highly rated resources.
func (s *Store) Featured() []Resource {
	rated := lo.Filter(s.items, func(item Resource, _ int) bool {
		return item.Rating >= featuredMinRating
	})
	if len(rated) > featuredLimit {
		rated = rated[:featuredLimit]
	}
	return rated
}

func matchesSearch(item Resource, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.Title), search) ||
		strings.Contains(strings.ToLower(item.Description), search) {
		return true
	}
	return lo.SomeBy(item.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), search)
	})
}

func matchesFacet(value, want string) bool {
	return want == "" || want == All || value == want
}
