package message

import (
	"time"

	"github.com/medassist/medassist/internal/store"
)

// Senders of a session message.
const (
	SenderUser      = "user"
	SenderAssistant = "assistant"
)

// Message is one transcript entry in a consultation session.
type Message struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	SessionID string    `json:"session_id"`
	Sender    string    `json:"sender"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
	CreatedAt time.Time `json:"created_at"`
}

func fromRow(r store.Row) (Message, error) {
	return Message{
		ID:        r.Str("id"),
		UserID:    r.Str("user_id"),
		SessionID: r.Str("session_id"),
		Sender:    r.Str("sender"),
		Message:   r.Str("message"),
		Timestamp: r.Time("timestamp"),
		CreatedAt: r.Time("created_at"),
	}, nil
}

// New holds caller-supplied fields for a create. The timestamp is stamped
// at send time, client-side, matching the original transcript behavior.
type New struct {
	SessionID string
	Sender    string
	Message   string
}

func (n New) row() store.Row {
	return store.Row{
		"session_id": n.SessionID,
		"sender":     n.Sender,
		"message":    n.Message,
		"timestamp":  store.FormatTime(time.Now()),
	}
}
