package chat

import "time"

// Session captures a transient anonymous conversation.
type Session struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

// Greeting is the opening bot message every conversation starts with, and the
// only message left after a reset.
const Greeting = "Hello! I'm your AI mental health companion. I'm here to provide immediate support, coping strategies, and wellness guidance. How are you feeling today?"

// GreetingSuggestions returns the fixed suggestion chips shown under the greeting.
func GreetingSuggestions() []string {
	return []string{
		"I'm feeling anxious",
		"I'm having trouble sleeping",
		"I'm feeling overwhelmed",
		"I just need someone to talk to",
	}
}

// QuickResponses returns the canned prompts offered above the input box.
func QuickResponses() []string {
	return []string{
		"I'm feeling anxious",
		"I need breathing exercises",
		"Show me coping strategies",
		"I want to talk to someone",
	}
}

// CrisisNotice is surfaced alongside every conversation.
const CrisisNotice = "If you're having thoughts of self-harm, please contact emergency services (911) or the crisis hotline (988) immediately. This AI cannot replace professional crisis intervention."
