package notification

import (
	"time"

	"github.com/medassist/medassist/internal/store"
)

// Notification types shown in the inbox bell.
const (
	TypeInfo    = "info"
	TypeSuccess = "success"
	TypeWarning = "warning"
	TypeError   = "error"
)

// Notification is one inbox entry for the signed-in clinician.
type Notification struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	ActionURL *string   `json:"action_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func fromRow(r store.Row) (Notification, error) {
	return Notification{
		ID:        r.Str("id"),
		UserID:    r.Str("user_id"),
		Title:     r.Str("title"),
		Message:   r.Str("message"),
		Type:      r.Str("type"),
		IsRead:    r.Bool("is_read"),
		ActionURL: r.StrPtr("action_url"),
		CreatedAt: r.Time("created_at"),
		UpdatedAt: r.Time("updated_at"),
	}, nil
}

// New holds caller-supplied fields for a create. Notifications start unread.
type New struct {
	Title     string
	Message   string
	Type      string
	ActionURL *string
}

func (n New) row() store.Row {
	typ := n.Type
	if typ == "" {
		typ = TypeInfo
	}
	r := store.Row{
		"title":   n.Title,
		"message": n.Message,
		"type":    typ,
		"is_read": false,
	}
	if n.ActionURL != nil {
		r["action_url"] = *n.ActionURL
	}
	return r
}
