package reply

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidateTexts(t *testing.T, name CategoryName) []string {
	t.Helper()
	category, ok := lo.Find(DefaultCategories(), func(c Category) bool { return c.Name == name })
	require.True(t, ok, "category %s not configured", name)
	return lo.Map(category.Candidates, func(c Candidate, _ int) string { return c.Text })
}

func TestSelectorMatchPriority(t *testing.T) {
	s := MustDefault()

	tests := []struct {
		utterance string
		want      CategoryName
	}{
		{"I'm feeling anxious", Anxiety},
		{"hi, I'm feeling anxious", Anxiety},
		{"Hello! Good morning, but I'm so ANXIOUS", Anxiety},
		{"exam stress is killing me", Stress},
		{"I'm feeling overwhelmed", Stress},
		{"I can't sleep, feeling exhausted", Sleep},
		{"I'm having trouble sleeping", Sleep},
		{"I feel so hopeless and lonely", Depression},
		{"I need breathing exercises", Breathing},
		{"Yes, guide me through breathing", Breathing},
		{"I'm worried and can't catch my breath", Anxiety},
		{"hello there", Greeting},
		{"Thanks, that was great", Greeting},
		{"I want to talk to someone", General},
		{"asdf qwerty", General},
	}

	for _, tt := range tests {
		t.Run(tt.utterance, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Match(tt.utterance))
		})
	}
}

func TestSelectorBreathingIsDeterministic(t *testing.T) {
	s := MustDefault()

	first := s.Select("I need breathing exercises")
	require.Equal(t, Breathing, first.Category)
	assert.Equal(t, BreathingGuide, first.Text)

	for i := 0; i < 50; i++ {
		got := s.Select("breathing please")
		assert.Equal(t, first.Text, got.Text)
		assert.Equal(t, first.Suggestions, got.Suggestions)
	}
}

func TestSelectorAlwaysReturnsReply(t *testing.T) {
	s := MustDefault()

	for _, utterance := range []string{"x", "   ?  ", "🙂", "I'm feeling anxious", "zzz"} {
		got := s.Select(utterance)
		assert.NotEmpty(t, got.Text, "utterance=%q", utterance)
		assert.NotNil(t, got.Suggestions, "utterance=%q", utterance)
	}
}

func TestSelectorSleepScenario(t *testing.T) {
	s := MustDefault()

	got := s.Select("I can't sleep, feeling exhausted")

	assert.Equal(t, Sleep, got.Category)
	assert.Contains(t, candidateTexts(t, Sleep), got.Text)
	assert.NotEmpty(t, got.Suggestions)
}

func TestSelectorUsesPicker(t *testing.T) {
	var seen []int
	s, err := NewSelector(DefaultCategories(), func(n int) int {
		seen = append(seen, n)
		return n - 1
	})
	require.NoError(t, err)

	got := s.Select("so much stress")

	texts := candidateTexts(t, Stress)
	assert.Equal(t, texts[len(texts)-1], got.Text)
	assert.Equal(t, []int{len(texts)}, seen)

	// single-candidate categories never consult the picker
	s.Select("breathing")
	assert.Len(t, seen, 1)
}

func TestSelectorSuggestionsAreCopies(t *testing.T) {
	s := MustDefault()

	got := s.Select("breathing")
	got.Suggestions[0] = "mutated"

	again := s.Select("breathing")
	assert.NotEqual(t, "mutated", again.Suggestions[0])
}

func TestNewSelectorValidation(t *testing.T) {
	fallback := Category{Name: General, Candidates: []Candidate{{Text: "ok"}}}

	tests := []struct {
		name       string
		categories []Category
		wantErr    error
	}{
		{name: "empty", categories: nil, wantErr: ErrNoCategories},
		{
			name:       "no fallback",
			categories: []Category{{Name: Sleep, Keywords: []string{"sleep"}, Candidates: []Candidate{{Text: "zz"}}}},
			wantErr:    ErrNoFallback,
		},
		{
			name:       "empty fallback",
			categories: []Category{{Name: General}},
			wantErr:    ErrEmptyCategory,
		},
		{
			name:       "keywordless category before the end",
			categories: []Category{{Name: Sleep, Candidates: []Candidate{{Text: "zz"}}}, fallback},
			wantErr:    ErrMisplacedDefault,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSelector(tt.categories, nil)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSelectorFallbackOnly(t *testing.T) {
	s, err := NewSelector([]Category{{Name: General, Candidates: []Candidate{{Text: "ok"}}}}, nil)
	require.NoError(t, err)

	got := s.Select("anything at all")
	assert.Equal(t, General, got.Category)
	assert.Equal(t, "ok", got.Text)
	assert.Empty(t, got.Suggestions)
	assert.NotNil(t, got.Suggestions)
}

func TestSelectorDuplicateKeywordKeepsEarliestCategory(t *testing.T) {
	categories := []Category{
		{Name: Anxiety, Keywords: []string{"Panic"}, Candidates: []Candidate{{Text: "a"}}},
		{Name: Breathing, Keywords: []string{"panic", "breath"}, Candidates: []Candidate{{Text: "b"}}},
		{Name: General, Candidates: []Candidate{{Text: "g"}}},
	}
	s, err := NewSelector(categories, nil)
	require.NoError(t, err)

	assert.Equal(t, Anxiety, s.Match("panic attack"))
	assert.Equal(t, Breathing, s.Match("short of breath"))
}
