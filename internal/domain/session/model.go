package session

import (
	"time"

	"github.com/medassist/medassist/internal/store"
)

// Statuses a consultation session moves through.
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// Session is one consultation session, logically a child of a patient.
type Session struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	PatientID   string    `json:"patient_id"`
	Title       string    `json:"title"`
	Notes       *string   `json:"notes,omitempty"`
	Summary     *string   `json:"summary,omitempty"`
	Status      string    `json:"status"`
	SessionType *string   `json:"session_type,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Duration    *int      `json:"duration,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func fromRow(r store.Row) (Session, error) {
	return Session{
		ID:          r.Str("id"),
		UserID:      r.Str("user_id"),
		PatientID:   r.Str("patient_id"),
		Title:       r.Str("title"),
		Notes:       r.StrPtr("notes"),
		Summary:     r.StrPtr("summary"),
		Status:      r.Str("status"),
		SessionType: r.StrPtr("session_type"),
		Date:        r.StrPtr("date"),
		Duration:    r.IntPtr("duration"),
		CreatedAt:   r.Time("created_at"),
		UpdatedAt:   r.Time("updated_at"),
	}, nil
}

// New holds caller-supplied fields for a create. The patient must exist at
// creation time; nothing re-validates the reference afterwards.
type New struct {
	PatientID   string
	Title       string
	Notes       *string
	Status      string
	SessionType *string
	Date        *string
	Duration    *int
}

func (n New) row() store.Row {
	status := n.Status
	if status == "" {
		status = StatusActive
	}
	r := store.Row{
		"patient_id": n.PatientID,
		"title":      n.Title,
		"status":     status,
	}
	if n.Notes != nil {
		r["notes"] = *n.Notes
	}
	if n.SessionType != nil {
		r["session_type"] = *n.SessionType
	}
	if n.Date != nil {
		r["date"] = *n.Date
	}
	if n.Duration != nil {
		r["duration"] = *n.Duration
	}
	return r
}

// Update carries a partial-field mutation; nil fields are not sent.
type Update struct {
	Title    *string
	Notes    *string
	Summary  *string
	Status   *string
	Duration *int
}

func (u Update) row() store.Row {
	r := store.Row{}
	if u.Title != nil {
		r["title"] = *u.Title
	}
	if u.Notes != nil {
		r["notes"] = *u.Notes
	}
	if u.Summary != nil {
		r["summary"] = *u.Summary
	}
	if u.Status != nil {
		r["status"] = *u.Status
	}
	if u.Duration != nil {
		r["duration"] = *u.Duration
	}
	return r
}
