package activitylog

import (
	"time"

	"github.com/medassist/medassist/internal/store"
	"github.com/medassist/medassist/internal/structval"
)

// Entry is one audit-trail record of a clinician action.
type Entry struct {
	ID           string          `json:"id"`
	UserID       string          `json:"user_id"`
	ActivityType string          `json:"activity_type"`
	Description  string          `json:"description"`
	Metadata     structval.Value `json:"metadata"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func fromRow(r store.Row) (Entry, error) {
	meta, err := structval.FromAny(r["metadata"])
	if err != nil {
		return Entry{}, err
	}
	return Entry{
		ID:           r.Str("id"),
		UserID:       r.Str("user_id"),
		ActivityType: r.Str("activity_type"),
		Description:  r.Str("description"),
		Metadata:     meta,
		CreatedAt:    r.Time("created_at"),
		UpdatedAt:    r.Time("updated_at"),
	}, nil
}
