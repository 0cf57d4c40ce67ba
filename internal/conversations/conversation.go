// Package conversations provides per-user conversation persistence in the
// key-value store and the portable transfer-code codec used to share a
// conversation between accounts.
package conversations

import (
	"time"

	"github.com/google/uuid"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
	RoleSystem    Role = "system"
)

// Message is a single transcript entry. Messages are immutable once
// appended; their order defines the transcript.
type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

// Conversation is a saved transcript owned by one account. Records live at
// "conversation:{email}:{id}" and are never mutated after creation; an
// import writes a fresh record with rewritten identity fields.
type Conversation struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Messages  []Message `json:"messages"`
	Timestamp time.Time `json:"timestamp"`
	UserEmail string    `json:"user_email"`
}

// NewConversation builds a record with a fresh ID and timestamp. UUIDs keep
// two saves in the same instant from colliding.
func NewConversation(name string, messages []Message, ownerEmail string) *Conversation {
	return &Conversation{
		ID:        uuid.NewString(),
		Name:      name,
		Messages:  messages,
		Timestamp: time.Now(),
		UserEmail: ownerEmail,
	}
}
