package reply

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	goahocorasick "github.com/anknown/ahocorasick"
)

var (
	ErrNoCategories     = errors.New("reply: no categories configured")
	ErrNoFallback       = errors.New("reply: last category must have no keywords")
	ErrEmptyCategory    = errors.New("reply: category has no candidates")
	ErrMisplacedDefault = errors.New("reply: only the last category may have no keywords")
)

// Reply is the bot answer chosen for an utterance.
type Reply struct {
	Category    CategoryName `json:"category"`
	Text        string       `json:"text"`
	Suggestions []string     `json:"suggestions"`
}

// Selector maps utterances to canned replies. Categories are checked in
// priority order and the first one with a keyword contained in the lower-cased
// utterance wins; the last category catches everything else.
type Selector struct {
	categories []Category
	matcher    *goahocorasick.Machine
	priority   map[string]int
	pick       func(n int) int
}

// NewSelector validates categories and builds the keyword automaton. pick
// returns an index in [0, n); nil selects uniformly at random.
func NewSelector(categories []Category, pick func(n int) int) (*Selector, error) {
	if len(categories) == 0 {
		return nil, ErrNoCategories
	}
	if len(categories[len(categories)-1].Keywords) != 0 {
		return nil, ErrNoFallback
	}

	priority := make(map[string]int)
	for idx, category := range categories {
		if len(category.Candidates) == 0 {
			return nil, fmt.Errorf("%w: %s", ErrEmptyCategory, category.Name)
		}
		if len(category.Keywords) == 0 && idx != len(categories)-1 {
			return nil, fmt.Errorf("%w: %s", ErrMisplacedDefault, category.Name)
		}
		for _, keyword := range category.Keywords {
			normalized := normalize(keyword)
			if normalized == "" {
				continue
			}
			if _, seen := priority[normalized]; !seen {
				priority[normalized] = idx
			}
		}
	}

	if pick == nil {
		pick = rand.IntN
	}

	s := &Selector{
		categories: slices.Clone(categories),
		priority:   priority,
		pick:       pick,
	}

	if len(priority) > 0 {
		// The double-array trie behind the automaton expects sorted, unique keys.
		keys := make([]string, 0, len(priority))
		for keyword := range priority {
			keys = append(keys, keyword)
		}
		slices.Sort(keys)

		patterns := make([][]rune, len(keys))
		for i, keyword := range keys {
			patterns[i] = []rune(keyword)
		}

		m := new(goahocorasick.Machine)
		if err := m.Build(patterns); err != nil {
			return nil, fmt.Errorf("reply: build keyword matcher: %w", err)
		}
		s.matcher = m
	}

	return s, nil
}

// MustDefault returns a Selector over DefaultCategories.
func MustDefault() *Selector {
	s, err := NewSelector(DefaultCategories(), nil)
	if err != nil {
		panic(err)
	}
	return s
}

// Categories returns the configured categories in priority order.
func (s *Selector) Categories() []Category {
	return slices.Clone(s.categories)
}

// Match returns the category an utterance resolves to.
func (s *Selector) Match(utterance string) CategoryName {
	return s.categories[s.matchIndex(utterance)].Name
}

// Select picks a reply for a non-empty utterance.
func (s *Selector) Select(utterance string) Reply {
	category := s.categories[s.matchIndex(utterance)]

	candidate := category.Candidates[0]
	if n := len(category.Candidates); n > 1 {
		candidate = category.Candidates[s.pick(n)]
	}

	return Reply{
		Category:    category.Name,
		Text:        candidate.Text,
		Suggestions: append([]string{}, candidate.Suggestions...),
	}
}

func (s *Selector) matchIndex(utterance string) int {
	fallback := len(s.categories) - 1
	if s.matcher == nil {
		return fallback
	}

	content := []rune(normalize(utterance))
	if len(content) == 0 {
		return fallback
	}

	best := fallback
	for _, term := range s.matcher.MultiPatternSearch(content, false) {
		if idx, ok := s.priority[string(term.Word)]; ok && idx < best {
			best = idx
		}
	}
	return best
}

func normalize(text string) string {
	return strings.ToLower(strings.TrimSpace(text))
}
