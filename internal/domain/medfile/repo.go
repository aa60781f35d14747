// Package medfile mirrors the medical_files collection: uploaded documents
// for one patient at a time, newest first.
package medfile

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/repo"
	"github.com/medassist/medassist/internal/store"
)

type Repo struct {
	m *repo.Mirror[File]
}

func NewRepo(client store.Client, session *auth.Source, log zerolog.Logger) *Repo {
	return &Repo{
		m: repo.NewMirror(client, session, log, repo.Binding[File]{
			Collection: store.MedicalFiles,
			OrderBy:    "created_at",
			ID:         func(f File) string { return f.ID },
			FromRow:    fromRow,
		}),
	}
}

// FetchAll refreshes the mirror with one patient's files. An empty
// patientID is a no-op returning the current mirror.
func (r *Repo) FetchAll(ctx context.Context, patientID string) []File {
	if patientID == "" {
		return r.m.Items()
	}
	return r.m.FetchAll(ctx, store.Eq("patient_id", patientID))
}

// Files returns the current mirror without refetching.
func (r *Repo) Files() []File { return r.m.Items() }

func (r *Repo) State() repo.State { return r.m.State() }

func (r *Repo) Create(ctx context.Context, n New) (File, error) {
	return r.m.Create(ctx, n.row())
}

func (r *Repo) Update(ctx context.Context, id string, u Update) (File, error) {
	return r.m.Update(ctx, id, u.row())
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.m.Delete(ctx, id)
}
