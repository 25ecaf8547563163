package model

import "time"

// Message senders.
const (
	SenderUser = "user"
	SenderBot  = "bot"
)

// ChatSession stores metadata about a conversation.
type ChatSession struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message stores a single message in a chat.
type Message struct {
	ID         string    `json:"id"`
	ChatID     string    `json:"chat_id"`
	Text       string    `json:"text"`
	Sender     string    `json:"sender"`
	Timestamp  time.Time `json:"timestamp"`
	Confidence *float64  `json:"confidence,omitempty"` // Bot messages only.
	Source     *string   `json:"source,omitempty"`     // Bot messages only.
}

// FullChat includes the chat metadata and all its messages.
type FullChat struct {
	ChatSession
	Messages []Message `json:"messages"`
}
