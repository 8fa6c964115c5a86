package forum

import (
	"strings"
	"sync"

	"github.com/samber/lo"
)

// Query narrows the board listing. Empty fields match everything.
type Query struct {
	Search   string
	Category string
}

// Store keeps posts in memory, newest first.
type Store struct {
	mu    sync.RWMutex
	posts []Post
}

// NewStore returns a Store preloaded with posts.
func NewStore(posts []Post) *Store {
	return &Store{posts: append([]Post(nil), posts...)}
}

// Filter returns the posts matching q. Search is case insensitive over
// title, content and tags.
func (s *Store) Filter(q Query) []Post {
	search := strings.ToLower(strings.TrimSpace(q.Search))
	s.mu.RLock()
	defer s.mu.RUnlock()
	return lo.Filter(s.posts, func(p Post, _ int) bool {
		return matchesSearch(p, search) && matchesCategory(p.Category, q.Category)
	})
}

// Add puts p at the top of the board.
func (s *Store) Add(p Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.posts = append([]Post{p}, s.posts...)
}

func matchesSearch(p Post, search string) bool {
	if search == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Title), search) ||
		strings.Contains(strings.ToLower(p.Content), search) {
		return true
	}
	return lo.SomeBy(p.Tags, func(tag string) bool {
		return strings.Contains(strings.ToLower(tag), search)
	})
}

func matchesCategory(value, want string) bool {
	return want == "" || want == All || value == want
}
