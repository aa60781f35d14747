// Package patient mirrors the patients collection: the clinician's patient
// roster, newest first, with search and condition projections for the
// dashboard views.
package patient

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/repo"
	"github.com/medassist/medassist/internal/store"
)

type Repo struct {
	m *repo.Mirror[Patient]
}

func NewRepo(client store.Client, session *auth.Source, log zerolog.Logger) *Repo {
	return &Repo{
		m: repo.NewMirror(client, session, log, repo.Binding[Patient]{
			Collection: store.Patients,
			OrderBy:    "created_at",
			ID:         func(p Patient) string { return p.ID },
			FromRow:    fromRow,
		}),
	}
}

// FetchAll refreshes and returns the roster, newest first.
func (r *Repo) FetchAll(ctx context.Context) []Patient {
	return r.m.FetchAll(ctx)
}

// Patients returns the current mirror without refetching.
func (r *Repo) Patients() []Patient { return r.m.Items() }

func (r *Repo) State() repo.State { return r.m.State() }

func (r *Repo) Create(ctx context.Context, n New) (Patient, error) {
	return r.m.Create(ctx, n.row())
}

func (r *Repo) Update(ctx context.Context, id string, u Update) (Patient, error) {
	return r.m.Update(ctx, id, u.row())
}

// Delete removes the patient record. Sessions and messages referencing it
// are left in place; there is no cascade.
func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.m.Delete(ctx, id)
}
