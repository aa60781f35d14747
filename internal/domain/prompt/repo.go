// Package prompt mirrors the prompts collection. Only active prompts are
// fetched; deactivating a prompt is an in-place flag update and the row
// drops out on the next refetch.
package prompt

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/repo"
	"github.com/medassist/medassist/internal/store"
)

type Repo struct {
	m *repo.Mirror[Prompt]
}

func NewRepo(client store.Client, session *auth.Source, log zerolog.Logger) *Repo {
	return &Repo{
		m: repo.NewMirror(client, session, log, repo.Binding[Prompt]{
			Collection: store.Prompts,
			OrderBy:    "created_at",
			Filters:    []store.Filter{store.Eq("is_active", true)},
			ID:         func(p Prompt) string { return p.ID },
			FromRow:    fromRow,
		}),
	}
}

// FetchAll refreshes and returns the active prompts, newest first.
func (r *Repo) FetchAll(ctx context.Context) []Prompt {
	return r.m.FetchAll(ctx)
}

// Prompts returns the current mirror without refetching.
func (r *Repo) Prompts() []Prompt { return r.m.Items() }

func (r *Repo) State() repo.State { return r.m.State() }

func (r *Repo) Create(ctx context.Context, n New) (Prompt, error) {
	return r.m.Create(ctx, n.row())
}

func (r *Repo) Update(ctx context.Context, id string, u Update) (Prompt, error) {
	return r.m.Update(ctx, id, u.row())
}

func (r *Repo) Delete(ctx context.Context, id string) error {
	return r.m.Delete(ctx, id)
}
