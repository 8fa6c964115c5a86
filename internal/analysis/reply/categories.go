package reply

// CategoryName labels a group of canned replies.
type CategoryName string

const (
	Anxiety    CategoryName = "anxiety"
	Stress     CategoryName = "stress"
	Sleep      CategoryName = "sleep"
	Depression CategoryName = "depression"
	Breathing  CategoryName = "breathing"
	Greeting   CategoryName = "greeting"
	General    CategoryName = "general"
)

// Candidate is one canned reply with its follow-up suggestion chips.
type Candidate struct {
	Text        string   `json:"text"`
	Suggestions []string `json:"suggestions"`
}

// Category groups trigger keywords with the replies they select between.
// A category without keywords is the fallback and must come last.
type Category struct {
	Name       CategoryName `json:"name"`
	Keywords   []string     `json:"keywords"`
	Candidates []Candidate  `json:"candidates"`
}

// BreathingGuide is the single reply of the breathing category.
const BreathingGuide = "Let's do a 4-step box breathing exercise together. 1) Breathe in slowly through your nose for 4 counts. 2) Hold your breath for 4 counts. 3) Breathe out gently through your mouth for 6 counts. 4) Pause for 2 counts, then repeat 4 times. Notice how your shoulders drop a little more with every cycle."

// DefaultCategories returns the reply configuration in match priority order.
// Earlier categories win when an utterance hits keywords of several.
func DefaultCategories() []Category {
	return []Category{
		{
			Name:     Anxiety,
			Keywords: []string{"anxious", "anxiety", "panic", "nervous", "worried", "worry", "scared", "afraid"},
			Candidates: []Candidate{
				{
					Text:        "I understand you're feeling anxious. That's completely normal and you're not alone. Let's try a quick breathing exercise: Breathe in for 4 counts, hold for 4, then breathe out for 6. Would you like me to guide you through this?",
					Suggestions: []string{"Yes, guide me through breathing", "Tell me more coping strategies", "I need help with something else"},
				},
				{
					Text:        "Anxiety can feel overwhelming, but it does pass. Try the 5-4-3-2-1 grounding technique: name 5 things you can see, 4 you can touch, 3 you can hear, 2 you can smell and 1 you can taste.",
					Suggestions: []string{"That helped a little", "Guide me through breathing", "Book a counselor session"},
				},
				{
					Text:        "Thank you for telling me. When worry spirals, it can help to write the thought down and ask: what is the evidence for it, and what would I tell a friend who had it?",
					Suggestions: []string{"Show me coping strategies", "I need breathing exercises", "I want to talk to someone"},
				},
			},
		},
		{
			Name:     Stress,
			Keywords: []string{"stress", "overwhelm", "pressure", "exam", "deadline", "workload", "burnout", "burned out"},
			Candidates: []Candidate{
				{
					Text:        "It sounds like you're going through a challenging time. Remember, seeking help is a sign of strength. Have you considered talking to a counselor? I can help you book a confidential session.",
					Suggestions: []string{"Book a counselor session", "Tell me about other resources", "I want to try self-help first"},
				},
				{
					Text:        "When everything feels urgent, try splitting your work into the next smallest step and schedule short breaks between tasks. Small wins add up quickly.",
					Suggestions: []string{"Help me plan my week", "Show me coping strategies", "Book a counselor session"},
				},
			},
		},
		{
			Name:     Sleep,
			Keywords: []string{"sleep", "insomnia", "tired", "exhausted", "awake", "nightmare"},
			Candidates: []Candidate{
				{
					Text:        "Sleep issues can really impact our mental health. Here are some tips: maintain a consistent sleep schedule, avoid screens 1 hour before bed, try relaxation techniques. Would you like specific guided meditations for sleep?",
					Suggestions: []string{"Yes, show me meditations", "Tell me about sleep hygiene", "I think there's another cause"},
				},
				{
					Text:        "Feeling exhausted is hard. A wind-down routine helps your body recognize bedtime: dim the lights, keep the room cool and write tomorrow's to-do list so your mind can let go.",
					Suggestions: []string{"Yes, show me meditations", "I need breathing exercises", "I think there's another cause"},
				},
			},
		},
		{
			Name:     Depression,
			Keywords: []string{"depress", "hopeless", "sad", "lonely", "empty", "worthless", "unmotivated"},
			Candidates: []Candidate{
				{
					Text:        "I'm really sorry you're feeling this way. You don't have to carry it alone. Talking with a counselor can make a real difference, and I can help you book a confidential session.",
					Suggestions: []string{"Book a counselor session", "Tell me about other resources", "I just need someone to talk to"},
				},
				{
					Text:        "Low days can make everything feel heavier. Could you try one small, kind thing for yourself today, like a short walk, a shower or messaging a friend?",
					Suggestions: []string{"Show me coping strategies", "I want to talk to someone", "Tell me about other resources"},
				},
			},
		},
		{
			Name:     Breathing,
			Keywords: []string{"breath"},
			Candidates: []Candidate{
				{
					Text:        BreathingGuide,
					Suggestions: []string{"Let's do it again", "I feel calmer now", "Show me coping strategies"},
				},
			},
		},
		{
			Name:     Greeting,
			Keywords: []string{"hello", "hey", "good", "great", "better", "thank", "calmer", "happy"},
			Candidates: []Candidate{
				{
					Text:        "I'm glad to hear from you! Keeping track of the good moments matters too. Is there anything you'd like to explore today?",
					Suggestions: []string{"Show me coping strategies", "Tell me about other resources", "I just want to chat"},
				},
				{
					Text:        "That's wonderful. Remember that checking in with yourself regularly is a great habit. I'm here whenever you need me.",
					Suggestions: []string{"Take a mood check-in", "Show me coping strategies", "I need help with something else"},
				},
			},
		},
		{
			Name: General,
			Candidates: []Candidate{
				{
					Text:        "Thank you for sharing that with me. Could you tell me a little more about what's on your mind so I can support you better?",
					Suggestions: []string{"I'm feeling anxious", "I'm feeling overwhelmed", "I'm having trouble sleeping"},
				},
				{
					Text:        "I'm here to listen. Whatever you're going through, your feelings are valid. Would you like some coping strategies or to talk to a counselor?",
					Suggestions: []string{"Show me coping strategies", "Book a counselor session", "I just need someone to talk to"},
				},
			},
		},
	}
}
