package resource

// Resource is an item of the self-help library.
type Resource struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Category    string   `json:"category"`
	Duration    string   `json:"duration,omitempty"`
	Rating      float64  `json:"rating"`
	Downloads   int      `json:"downloads"`
	Difficulty  string   `json:"difficulty"`
	Tags        []string `json:"tags"`
}

// Category is a filter option of the library.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// All is the wildcard value for the category and difficulty filters.
const All = "all"

// Categories lists the library filter options in display order.
func Categories() []Category {
	return []Category{
		{Value: All, Label: "All Categories"},
		{Value: "stress", Label: "Stress Management"},
		{Value: "anxiety", Label: "Anxiety Support"},
		{Value: "depression", Label: "Depression Help"},
		{Value: "sleep", Label: "Sleep & Rest"},
		{Value: "resilience", Label: "Building Resilience"},
	}
}

// Seed provides the library contents.
func Seed() []Resource {
	return []Resource{
		{
			ID:          "1",
			Title:       "Managing Academic Stress",
			Description: "Learn effective strategies to handle academic pressure and maintain balance in your studies.",
			Type:        "video",
			Category:    "stress",
			Duration:    "15 min",
			Rating:      4.8,
			Downloads:   1240,
			Difficulty:  "beginner",
			Tags:        []string{"stress", "academics", "time management"},
		},
		{
			ID:          "2",
			Title:       "Guided Meditation for Anxiety",
			Description: "A calming meditation session designed specifically to reduce anxiety and promote relaxation.",
			Type:        "audio",
			Category:    "anxiety",
			Duration:    "20 min",
			Rating:      4.9,
			Downloads:   2150,
			Difficulty:  "beginner",
			Tags:        []string{"meditation", "anxiety", "relaxation"},
		},
		{
			ID:          "3",
			Title:       "Understanding Depression: A Student's Guide",
			Description: "Comprehensive guide to recognizing, understanding, and managing depression in college life.",
			Type:        "guide",
			Category:    "depression",
			Duration:    "Read: 25 min",
			Rating:      4.7,
			Downloads:   890,
			Difficulty:  "intermediate",
			Tags:        []string{"depression", "mental health", "self-help"},
		},
		{
			ID:          "4",
			Title:       "Sleep Hygiene for Better Mental Health",
			Description: "Evidence-based tips and techniques to improve sleep quality and its impact on mental wellness.",
			Type:        "article",
			Category:    "sleep",
			Duration:    "12 min read",
			Rating:      4.6,
			Downloads:   1560,
			Difficulty:  "beginner",
			Tags:        []string{"sleep", "wellness", "health"},
		},
		{
			ID:          "5",
			Title:       "Breathing Exercises for Panic Attacks",
			Description: "Quick and effective breathing techniques to manage panic attacks and acute anxiety.",
			Type:        "video",
			Category:    "anxiety",
			Duration:    "8 min",
			Rating:      4.9,
			Downloads:   3240,
			Difficulty:  "beginner",
			Tags:        []string{"breathing", "panic", "emergency"},
		},
		{
			ID:          "6",
			Title:       "Building Resilience in College",
			Description: "Learn how to develop emotional resilience and bounce back from challenges during your college years.",
			Type:        "guide",
			Category:    "resilience",
			Duration:    "Read: 30 min",
			Rating:      4.5,
			Downloads:   720,
			Difficulty:  "advanced",
			Tags:        []string{"resilience", "coping", "growth"},
		},
	}
}
