package resource

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
)

func ids(items []Resource) []string {
	return lo.Map(items, func(item Resource, _ int) string { return item.ID })
}

func TestFilter(t *testing.T) {
	store := NewStore(Seed())

	tests := []struct {
		name  string
		query Query
		want  []string
	}{
		{name: "no filters", query: Query{}, want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "all wildcard", query: Query{Category: All, Difficulty: All}, want: []string{"1", "2", "3", "4", "5", "6"}},
		{name: "category", query: Query{Category: "anxiety"}, want: []string{"2", "5"}},
		{name: "difficulty", query: Query{Difficulty: "advanced"}, want: []string{"6"}},
		{name: "search by tag is case insensitive", query: Query{Search: "PANIC"}, want: []string{"5"}},
		{name: "search by description", query: Query{Search: "sleep quality"}, want: []string{"4"}},
		{name: "combined facets", query: Query{Search: "anxiety", Difficulty: "beginner"}, want: []string{"2", "5"}},
		{name: "no match", query: Query{Search: "quantum"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(store.Filter(tt.query)))
		})
	}
}

func TestFeatured(t *testing.T) {
	store := NewStore(Seed())
	assert.Equal(t, []string{"1", "2", "5"}, ids(store.Featured()))
}
