// Package repo implements the entity data-access contract shared by every
// domain repository: an in-memory ordered mirror of one user-scoped
// collection in the remote store, refreshed wholesale on fetch and
// synchronized after each confirmed mutation. Domain packages instantiate
// the generic Mirror with a Binding describing their collection, ordering,
// and row codec.
package repo

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/store"
)

// State is the lifecycle of a mirror. There is no error state: a failed
// fetch resolves to Ready with the previous (possibly empty) list and a
// logged diagnostic.
type State int

const (
	Uninitialized State = iota
	Loading
	Ready
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Binding describes how one entity type maps onto its collection.
type Binding[T any] struct {
	// Collection is the remote collection name.
	Collection string
	// OrderBy is the fetch ordering column, normally created_at.
	OrderBy string
	// Ascending flips the default newest-first ordering. Session messages
	// fetch oldest-first so conversations read chronologically.
	Ascending bool
	// Limit caps fetch results. Zero means unlimited.
	Limit int
	// AppendNew places confirmed creations at the tail instead of the head,
	// matching the fetch ordering above.
	AppendNew bool
	// Filters are fixed constraints added to every fetch, e.g. the prompts
	// repository only mirrors active prompts.
	Filters []store.Filter
	// ID extracts the row id from a decoded entity.
	ID func(T) string
	// FromRow decodes a stored row.
	FromRow func(store.Row) (T, error)
}

// Mirror is the single source of truth, within one process, for one entity
// collection scoped to the authenticated user.
type Mirror[T any] struct {
	client  store.Client
	session *auth.Source
	log     zerolog.Logger
	b       Binding[T]

	mu    sync.Mutex
	state State
	items []T
	user  string
	gen   uint64
}

// NewMirror wires a mirror to its store client and session source. The
// mirror discards its contents as soon as the signed-in user changes, so
// stale rows from a previous user are never visible; the consumer issues
// the next fetch.
func NewMirror[T any](client store.Client, session *auth.Source, log zerolog.Logger, b Binding[T]) *Mirror[T] {
	m := &Mirror[T]{
		client:  client,
		session: session,
		log:     log.With().Str("collection", b.Collection).Logger(),
		b:       b,
	}
	session.Subscribe(func(s *auth.Session) { m.reset() })
	return m
}

// reset discards the mirror and invalidates in-flight fetches.
func (m *Mirror[T]) reset() {
	m.mu.Lock()
	m.items = nil
	m.state = Uninitialized
	m.user = ""
	m.gen++
	m.mu.Unlock()
}

// State returns the mirror lifecycle state.
func (m *Mirror[T]) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Items returns a copy of the mirrored list in fetch order.
func (m *Mirror[T]) Items() []T {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.snapshot()
}

func (m *Mirror[T]) snapshot() []T {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// FetchAll replaces the mirror with the rows matching the fixed binding
// filters, the caller's scope filters, and the signed-in user. It is
// idempotent and safe to call repeatedly. Remote errors are logged and
// swallowed, leaving the previous list in place. With no authenticated user
// it is a no-op that leaves state untouched.
//
// Each fetch carries a generation tag; a response resolving after a newer
// fetch (or a session change) began is discarded rather than overwriting
// the mirror.
func (m *Mirror[T]) FetchAll(ctx context.Context, scope ...store.Filter) []T {
	sess := m.session.Current()
	if sess == nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		return m.snapshot()
	}

	m.mu.Lock()
	if m.user != sess.UserID {
		// New user: drop the old mirror before the first row arrives.
		m.items = nil
		m.user = sess.UserID
	}
	m.state = Loading
	m.gen++
	gen := m.gen
	m.mu.Unlock()

	q := store.Query{
		Filters: append([]store.Filter{store.Eq("user_id", sess.UserID)}, m.b.Filters...),
		Order:   store.Order{Column: m.b.OrderBy, Descending: !m.b.Ascending},
		Limit:   m.b.Limit,
	}
	q.Filters = append(q.Filters, scope...)

	rows, err := m.client.Select(ctx, m.b.Collection, q)

	m.mu.Lock()
	defer m.mu.Unlock()
	if gen != m.gen {
		// A newer fetch or a session change superseded this one.
		return m.snapshot()
	}
	m.state = Ready
	if err != nil {
		m.log.Error().Err(err).Msg("fetch failed")
		return m.snapshot()
	}

	items := make([]T, 0, len(rows))
	for _, r := range rows {
		item, decodeErr := m.b.FromRow(r)
		if decodeErr != nil {
			m.log.Error().Err(decodeErr).Str("id", r.Str("id")).Msg("skipping undecodable row")
			continue
		}
		items = append(items, item)
	}
	m.items = items
	return m.snapshot()
}

// Create forwards fields plus the stamped user_id to the remote store and,
// only after the server confirms, adds the returned row to the mirror. With
// no authenticated user it fails without contacting the store.
func (m *Mirror[T]) Create(ctx context.Context, fields store.Row) (T, error) {
	var zero T
	sess := m.session.Current()
	if sess == nil {
		return zero, auth.ErrNotAuthenticated
	}

	row := fields.Clone()
	row["user_id"] = sess.UserID

	stored, err := m.client.Insert(ctx, m.b.Collection, row)
	if err != nil {
		return zero, fmt.Errorf("create %s: %w", m.b.Collection, err)
	}
	item, err := m.b.FromRow(stored)
	if err != nil {
		return zero, fmt.Errorf("decode created %s: %w", m.b.Collection, err)
	}

	m.mu.Lock()
	if m.b.AppendNew {
		m.items = append(m.items, item)
	} else {
		m.items = append([]T{item}, m.items...)
	}
	m.mu.Unlock()
	return item, nil
}

// Update sends only the given fields and replaces the matching local entry
// with the server-returned row, so server-computed fields like updated_at
// are reflected. The mirror is untouched when the remote call fails.
func (m *Mirror[T]) Update(ctx context.Context, id string, fields store.Row) (T, error) {
	var zero T
	if m.session.Current() == nil {
		return zero, auth.ErrNotAuthenticated
	}
	stored, err := m.client.Update(ctx, m.b.Collection, id, fields)
	if err != nil {
		return zero, fmt.Errorf("update %s: %w", m.b.Collection, err)
	}
	item, err := m.b.FromRow(stored)
	if err != nil {
		return zero, fmt.Errorf("decode updated %s: %w", m.b.Collection, err)
	}

	m.mu.Lock()
	for i := range m.items {
		if m.b.ID(m.items[i]) == id {
			m.items[i] = item
			break
		}
	}
	m.mu.Unlock()
	return item, nil
}

// Delete removes the remote row, then the local entry. On remote failure
// the mirror retains the entry.
func (m *Mirror[T]) Delete(ctx context.Context, id string) error {
	if m.session.Current() == nil {
		return auth.ErrNotAuthenticated
	}
	if err := m.client.Delete(ctx, m.b.Collection, id); err != nil {
		return fmt.Errorf("delete %s: %w", m.b.Collection, err)
	}

	m.mu.Lock()
	for i := range m.items {
		if m.b.ID(m.items[i]) == id {
			m.items = append(m.items[:i:i], m.items[i+1:]...)
			break
		}
	}
	m.mu.Unlock()
	return nil
}

// Patch rewrites the matching local entry in place without a remote round
// trip and without affecting ordering. Used for flag flips whose remote
// write already happened through another path, such as marking a
// notification read.
func (m *Mirror[T]) Patch(id string, fn func(T) T) {
	m.mu.Lock()
	for i := range m.items {
		if m.b.ID(m.items[i]) == id {
			m.items[i] = fn(m.items[i])
			break
		}
	}
	m.mu.Unlock()
}
