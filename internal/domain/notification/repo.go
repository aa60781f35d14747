// Package notification mirrors the 50 most recent notifications, newest
// first. Marking one read flips the flag in place without reordering.
package notification

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/repo"
	"github.com/medassist/medassist/internal/store"
)

// FetchLimit caps how many notifications a fetch mirrors.
const FetchLimit = 50

type Repo struct {
	client  store.Client
	session *auth.Source
	m       *repo.Mirror[Notification]
}

func NewRepo(client store.Client, session *auth.Source, log zerolog.Logger) *Repo {
	return &Repo{
		client:  client,
		session: session,
		m: repo.NewMirror(client, session, log, repo.Binding[Notification]{
			Collection: store.Notifications,
			OrderBy:    "created_at",
			Limit:      FetchLimit,
			ID:         func(n Notification) string { return n.ID },
			FromRow:    fromRow,
		}),
	}
}

// FetchAll refreshes and returns the inbox, newest first.
func (r *Repo) FetchAll(ctx context.Context) []Notification {
	return r.m.FetchAll(ctx)
}

// Notifications returns the current mirror without refetching.
func (r *Repo) Notifications() []Notification { return r.m.Items() }

func (r *Repo) State() repo.State { return r.m.State() }

func (r *Repo) Create(ctx context.Context, n New) (Notification, error) {
	return r.m.Create(ctx, n.row())
}

// MarkAsRead flips the read flag remotely, then patches the local entry in
// place so ordering is unaffected. The mirror is untouched on remote
// failure.
func (r *Repo) MarkAsRead(ctx context.Context, id string) error {
	if r.session.Current() == nil {
		return auth.ErrNotAuthenticated
	}
	if _, err := r.client.Update(ctx, store.Notifications, id, store.Row{"is_read": true}); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}
	r.m.Patch(id, func(n Notification) Notification {
		n.IsRead = true
		return n
	})
	return nil
}

// UnreadCount counts unread entries in the current mirror.
func (r *Repo) UnreadCount() int {
	count := 0
	for _, n := range r.m.Items() {
		if !n.IsRead {
			count++
		}
	}
	return count
}
