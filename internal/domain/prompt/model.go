package prompt

import (
	"time"

	"github.com/medassist/medassist/internal/store"
)

// CategoryGeneral is the default category for new prompts.
const CategoryGeneral = "general"

// Prompt is a reusable note-generation prompt owned by the clinician.
type Prompt struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	PromptText  string    `json:"prompt_text"`
	Category    string    `json:"category"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func fromRow(r store.Row) (Prompt, error) {
	return Prompt{
		ID:          r.Str("id"),
		UserID:      r.Str("user_id"),
		Name:        r.Str("name"),
		Description: r.StrPtr("description"),
		PromptText:  r.Str("prompt_text"),
		Category:    r.Str("category"),
		IsActive:    r.Bool("is_active"),
		CreatedAt:   r.Time("created_at"),
		UpdatedAt:   r.Time("updated_at"),
	}, nil
}

// New holds caller-supplied fields for a create. New prompts start active.
type New struct {
	Name        string
	Description *string
	PromptText  string
	Category    string
}

func (n New) row() store.Row {
	category := n.Category
	if category == "" {
		category = CategoryGeneral
	}
	r := store.Row{
		"name":        n.Name,
		"prompt_text": n.PromptText,
		"category":    category,
		"is_active":   true,
	}
	if n.Description != nil {
		r["description"] = *n.Description
	}
	return r
}

// Update carries a partial-field mutation; nil fields are not sent.
type Update struct {
	Name        *string
	Description *string
	PromptText  *string
	Category    *string
	IsActive    *bool
}

func (u Update) row() store.Row {
	r := store.Row{}
	if u.Name != nil {
		r["name"] = *u.Name
	}
	if u.Description != nil {
		r["description"] = *u.Description
	}
	if u.PromptText != nil {
		r["prompt_text"] = *u.PromptText
	}
	if u.Category != nil {
		r["category"] = *u.Category
	}
	if u.IsActive != nil {
		r["is_active"] = *u.IsActive
	}
	return r
}
