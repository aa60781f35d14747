// Package session mirrors the sessions collection: consultation sessions
// for one patient at a time, newest first.
package session

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/repo"
	"github.com/medassist/medassist/internal/store"
)

type Repo struct {
	m *repo.Mirror[Session]
}

func NewRepo(client store.Client, session *auth.Source, log zerolog.Logger) *Repo {
	return &Repo{
		m: repo.NewMirror(client, session, log, repo.Binding[Session]{
			Collection: store.Sessions,
			OrderBy:    "created_at",
			ID:         func(s Session) string { return s.ID },
			FromRow:    fromRow,
		}),
	}
}

// FetchAll refreshes the mirror with the sessions of one patient. An empty
// patientID is a no-op returning the current mirror, mirroring the view
// behavior before a patient is selected.
func (r *Repo) FetchAll(ctx context.Context, patientID string) []Session {
	if patientID == "" {
		return r.m.Items()
	}
	return r.m.FetchAll(ctx, store.Eq("patient_id", patientID))
}

// Sessions returns the current mirror without refetching.
func (r *Repo) Sessions() []Session { return r.m.Items() }

func (r *Repo) State() repo.State { return r.m.State() }

func (r *Repo) Create(ctx context.Context, n New) (Session, error) {
	return r.m.Create(ctx, n.row())
}

func (r *Repo) Update(ctx context.Context, id string, u Update) (Session, error) {
	return r.m.Update(ctx, id, u.row())
}

// Complete marks a session completed, recording its duration when known.
func (r *Repo) Complete(ctx context.Context, id string, duration *int) (Session, error) {
	status := StatusCompleted
	return r.m.Update(ctx, id, Update{Status: &status, Duration: duration}.row())
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.m.Delete(ctx, id)
}
