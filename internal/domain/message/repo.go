// Package message mirrors the session_messages collection: the transcript
// of one consultation session in chronological order. Unlike the list
// entities, fetches are ascending by created_at and confirmed creations
// append rather than prepend, so the conversation always reads oldest to
// newest.
package message

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/repo"
	"github.com/medassist/medassist/internal/store"
)

type Repo struct {
	m *repo.Mirror[Message]
}

func NewRepo(client store.Client, session *auth.Source, log zerolog.Logger) *Repo {
	return &Repo{
		m: repo.NewMirror(client, session, log, repo.Binding[Message]{
			Collection: store.SessionMessages,
			OrderBy:    "created_at",
			Ascending:  true,
			AppendNew:  true,
			ID:         func(msg Message) string { return msg.ID },
			FromRow:    fromRow,
		}),
	}
}

// FetchAll refreshes the mirror with one session's transcript. An empty
// sessionID is a no-op returning the current mirror.
func (r *Repo) FetchAll(ctx context.Context, sessionID string) []Message {
	if sessionID == "" {
		return r.m.Items()
	}
	return r.m.FetchAll(ctx, store.Eq("session_id", sessionID))
}

// Messages returns the current mirror without refetching.
func (r *Repo) Messages() []Message { return r.m.Items() }

func (r *Repo) State() repo.State { return r.m.State() }

func (r *Repo) Create(ctx context.Context, n New) (Message, error) {
	return r.m.Create(ctx, n.row())
}
