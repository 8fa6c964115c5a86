package forum

import "time"

// Post is a peer support thread on the community board.
type Post struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	IsAnonymous bool      `json:"isAnonymous"`
	Timestamp   time.Time `json:"timestamp"`
	Upvotes     int       `json:"upvotes"`
	Downvotes   int       `json:"downvotes"`
	Replies     int       `json:"replies"`
	Views       int       `json:"views"`
	Tags        []string  `json:"tags"`
	IsModerator bool      `json:"isModerator,omitempty"`
}

// Category is a topic filter of the board.
type Category struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// All is the wildcard category. It cannot be assigned to a post.
const All = "all"

const (
	AnonymousAuthor = "Anonymous Student"
	NamedAuthor     = "Student"
	ModeratorAuthor = "Peer Moderator"
)

// Categories lists the board topics in display order, wildcard first.
func Categories() []Category {
	return []Category{
		{Value: All, Label: "All Topics"},
		{Value: "anxiety", Label: "Anxiety Support"},
		{Value: "depression", Label: "Depression Help"},
		{Value: "stress", Label: "Stress Management"},
		{Value: "sleep", Label: "Sleep Issues"},
		{Value: "motivation", Label: "Motivation & Goals"},
		{Value: "relationships", Label: "Relationships"},
		{Value: "support", Label: "General Support"},
	}
}

// Seed provides the initial threads, newest first.
func Seed() []Post {
	at := func(day, hour, minute int) time.Time {
		return time.Date(2024, time.January, day, hour, minute, 0, 0, time.UTC)
	}
	return []Post{
		{
			ID:          "1",
			Title:       "Dealing with exam anxiety - what works for you?",
			Content:     "I've been struggling with severe anxiety before exams. My heart races, I can't focus, and I feel like I forget everything I studied. What techniques have helped you manage exam stress?",
			Category:    "anxiety",
			Author:      AnonymousAuthor,
			IsAnonymous: true,
			Timestamp:   at(15, 14, 30),
			Upvotes:     23,
			Downvotes:   1,
			Replies:     12,
			Views:       156,
			Tags:        []string{"anxiety", "exams", "coping"},
		},
		{
			ID:          "2",
			Title:       "Finding motivation after a difficult semester",
			Content:     "Last semester was really tough for me academically and personally. I'm having trouble finding the motivation to start fresh this semester. Any advice on how to rebuild confidence and motivation?",
			Category:    "motivation",
			Author:      AnonymousAuthor,
			IsAnonymous: true,
			Timestamp:   at(14, 10, 15),
			Upvotes:     18,
			Replies:     8,
			Views:       89,
			Tags:        []string{"motivation", "recovery", "semester"},
		},
		{
			ID:          "3",
			Title:       "Sleep schedule completely messed up - help!",
			Content:     "My sleep schedule is completely off. I'm staying up until 3-4 AM and then sleeping through morning classes. I know it's affecting my mental health. How did you fix your sleep routine?",
			Category:    "sleep",
			Author:      AnonymousAuthor,
			IsAnonymous: true,
			Timestamp:   at(13, 16, 45),
			Upvotes:     15,
			Replies:     15,
			Views:       203,
			Tags:        []string{"sleep", "schedule", "health"},
		},
		{
			ID:          "4",
			Title:       "Reminder: You're not alone in this journey ❤️",
			Content:     "Just wanted to remind everyone here that seeking help is a sign of strength, not weakness. This community is here to support each other. Remember to also reach out to professional counselors when needed.",
			Category:    "support",
			Author:      ModeratorAuthor,
			Timestamp:   at(12, 9, 20),
			Upvotes:     45,
			Replies:     6,
			Views:       312,
			Tags:        []string{"support", "therapy", "encouragement"},
			IsModerator: true,
		},
	}
}
