package medfile

import (
	"time"

	"github.com/medassist/medassist/internal/store"
)

// File is the stored record of an uploaded medical document. The AI
// summary/findings columns are populated elsewhere; this layer only
// persists rows.
type File struct {
	ID                string    `json:"id"`
	UserID            string    `json:"user_id"`
	PatientID         string    `json:"patient_id"`
	SessionID         *string   `json:"session_id,omitempty"`
	Filename          string    `json:"filename"`
	FileType          string    `json:"file_type"`
	FileSize          *int      `json:"file_size,omitempty"`
	FileURL           *string   `json:"file_url,omitempty"`
	AISummary         *string   `json:"ai_summary,omitempty"`
	AIFindings        []string  `json:"ai_findings,omitempty"`
	AIRecommendations []string  `json:"ai_recommendations,omitempty"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func fromRow(r store.Row) (File, error) {
	return File{
		ID:                r.Str("id"),
		UserID:            r.Str("user_id"),
		PatientID:         r.Str("patient_id"),
		SessionID:         r.StrPtr("session_id"),
		Filename:          r.Str("filename"),
		FileType:          r.Str("file_type"),
		FileSize:          r.IntPtr("file_size"),
		FileURL:           r.StrPtr("file_url"),
		AISummary:         r.StrPtr("ai_summary"),
		AIFindings:        r.StrList("ai_findings"),
		AIRecommendations: r.StrList("ai_recommendations"),
		CreatedAt:         r.Time("created_at"),
		UpdatedAt:         r.Time("updated_at"),
	}, nil
}

// New holds caller-supplied fields for a create.
type New struct {
	PatientID string
	SessionID *string
	Filename  string
	FileType  string
	FileSize  *int
	FileURL   *string
}

func (n New) row() store.Row {
	r := store.Row{
		"patient_id": n.PatientID,
		"filename":   n.Filename,
		"file_type":  n.FileType,
	}
	if n.SessionID != nil {
		r["session_id"] = *n.SessionID
	}
	if n.FileSize != nil {
		r["file_size"] = *n.FileSize
	}
	if n.FileURL != nil {
		r["file_url"] = *n.FileURL
	}
	return r
}

// Update attaches analysis results or a storage URL after upload.
type Update struct {
	FileURL           *string
	AISummary         *string
	AIFindings        []string
	AIRecommendations []string
}

func (u Update) row() store.Row {
	r := store.Row{}
	if u.FileURL != nil {
		r["file_url"] = *u.FileURL
	}
	if u.AISummary != nil {
		r["ai_summary"] = *u.AISummary
	}
	if u.AIFindings != nil {
		r["ai_findings"] = u.AIFindings
	}
	if u.AIRecommendations != nil {
		r["ai_recommendations"] = u.AIRecommendations
	}
	return r
}
