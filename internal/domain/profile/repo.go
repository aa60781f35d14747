// Package profile holds the clinician's own account profile. Unlike the
// list entities this is a single-row mirror keyed by user_id, with upsert
// semantics: the first save creates the row, later saves patch it.
package profile

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/repo"
	"github.com/medassist/medassist/internal/store"
)

type Repo struct {
	client  store.Client
	session *auth.Source
	log     zerolog.Logger

	mu      sync.Mutex
	state   repo.State
	current *Profile
	user    string
	gen     uint64
}

func NewRepo(client store.Client, session *auth.Source, log zerolog.Logger) *Repo {
	r := &Repo{
		client:  client,
		session: session,
		log:     log.With().Str("collection", store.UserProfiles).Logger(),
	}
	session.Subscribe(func(*auth.Session) { r.reset() })
	return r
}

func (r *Repo) reset() {
	r.mu.Lock()
	r.current = nil
	r.state = repo.Uninitialized
	r.user = ""
	r.gen++
	r.mu.Unlock()
}

// State returns the mirror lifecycle state.
func (r *Repo) State() repo.State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// Current returns the mirrored profile, or nil when none is loaded or the
// user has never saved one.
func (r *Repo) Current() *Profile {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return nil
	}
	cp := *r.current
	return &cp
}

// Fetch loads the signed-in user's profile row. A missing row is not an
// error: the profile stays nil and the state still resolves to Ready. Remote
// errors are logged and swallowed. No-op when signed out.
//
// Each fetch carries a generation tag; a response resolving after a newer
// fetch (or a session change) began is discarded rather than overwriting
// the mirror.
func (r *Repo) Fetch(ctx context.Context) *Profile {
	sess := r.session.Current()
	if sess == nil {
		return r.Current()
	}

	r.mu.Lock()
	if r.user != sess.UserID {
		r.current = nil
		r.user = sess.UserID
	}
	r.state = repo.Loading
	r.gen++
	gen := r.gen
	r.mu.Unlock()

	rows, err := r.client.Select(ctx, store.UserProfiles, store.Query{
		Filters: []store.Filter{store.Eq("user_id", sess.UserID)},
		Limit:   1,
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	if gen != r.gen {
		// A newer fetch or a session change superseded this one.
		return r.copyCurrent()
	}
	r.state = repo.Ready
	if err != nil {
		r.log.Error().Err(err).Msg("fetch failed")
		return r.copyCurrent()
	}
	if len(rows) == 0 {
		r.current = nil
		return nil
	}
	p, err := fromRow(rows[0])
	if err != nil {
		r.log.Error().Err(err).Msg("skipping undecodable profile row")
		return r.copyCurrent()
	}
	r.current = &p
	return r.copyCurrent()
}

func (r *Repo) copyCurrent() *Profile {
	if r.current == nil {
		return nil
	}
	cp := *r.current
	return &cp
}

// Save upserts the profile: patches the existing row when one is mirrored,
// otherwise inserts a fresh row stamped with the user id. Write failures
// propagate and leave the mirror unchanged.
func (r *Repo) Save(ctx context.Context, u Update) (*Profile, error) {
	sess := r.session.Current()
	if sess == nil {
		return nil, auth.ErrNotAuthenticated
	}

	r.mu.Lock()
	existing := r.current
	r.mu.Unlock()

	var (
		row store.Row
		err error
	)
	if existing != nil {
		row, err = r.client.Update(ctx, store.UserProfiles, existing.ID, u.row())
	} else {
		fields := u.row()
		fields["user_id"] = sess.UserID
		row, err = r.client.Insert(ctx, store.UserProfiles, fields)
	}
	if err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}

	p, err := fromRow(row)
	if err != nil {
		return nil, fmt.Errorf("decode saved profile: %w", err)
	}
	r.mu.Lock()
	r.current = &p
	r.mu.Unlock()
	cp := p
	return &cp, nil
}
