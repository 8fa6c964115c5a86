package chat

import "time"

// Sender identifies who authored a message.
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is a single turn of a conversation. Messages are never mutated once
// appended to a transcript.
type Message struct {
	ID          string    `json:"id"`
	SessionID   string    `json:"sessionId"`
	Text        string    `json:"text"`
	Sender      Sender    `json:"sender"`
	Category    string    `json:"category,omitempty"`
	Suggestions []string  `json:"suggestions,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
