// Package activitylog mirrors the 100 most recent activity-log entries,
// newest first. Entries are append-only; there is no update or delete.
package activitylog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/repo"
	"github.com/medassist/medassist/internal/store"
	"github.com/medassist/medassist/internal/structval"
)

// FetchLimit caps how many entries a fetch mirrors.
const FetchLimit = 100

type Repo struct {
	m *repo.Mirror[Entry]
}

func NewRepo(client store.Client, session *auth.Source, log zerolog.Logger) *Repo {
	return &Repo{
		m: repo.NewMirror(client, session, log, repo.Binding[Entry]{
			Collection: store.ActivityLogs,
			OrderBy:    "created_at",
			Limit:      FetchLimit,
			ID:         func(e Entry) string { return e.ID },
			FromRow:    fromRow,
		}),
	}
}

// FetchAll refreshes and returns the trail, newest first.
func (r *Repo) FetchAll(ctx context.Context) []Entry {
	return r.m.FetchAll(ctx)
}

// Entries returns the current mirror without refetching.
func (r *Repo) Entries() []Entry { return r.m.Items() }

func (r *Repo) State() repo.State { return r.m.State() }

// Log records one activity. A null metadata value is stored as an empty
// mapping so every row carries a structured payload.
func (r *Repo) Log(ctx context.Context, activityType, description string, metadata structval.Value) (Entry, error) {
	meta := metadata.ToAny()
	if meta == nil {
		meta = map[string]any{}
	}
	return r.m.Create(ctx, store.Row{
		"activity_type": activityType,
		"description":   description,
		"metadata":      meta,
	})
}
