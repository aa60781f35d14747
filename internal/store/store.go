// Package store defines the remote row-store boundary: collection-scoped
// select/insert/update/delete with equality filters, ordering, and limits.
// Three implementations exist: a PostgREST-compatible REST client for the
// hosted backend, a direct Postgres client, and a file-backed local store
// used in demo mode.
package store

import (
	"context"
	"errors"
)

// Collection names served by every backend.
const (
	Patients        = "patients"
	Sessions        = "sessions"
	SessionMessages = "session_messages"
	Prompts         = "prompts"
	Notifications   = "notifications"
	ActivityLogs    = "activity_logs"
	UserProfiles    = "user_profiles"
	MedicalFiles    = "medical_files"
)

// Collections lists every known collection. Backends that need a whitelist
// (the Postgres client, the sandbox server) validate against it.
var Collections = []string{
	Patients, Sessions, SessionMessages, Prompts,
	Notifications, ActivityLogs, UserProfiles, MedicalFiles,
}

// ErrNotFound is returned when an update or delete targets a row that does
// not exist in the collection.
var ErrNotFound = errors.New("store: row not found")

// ErrUnknownCollection is returned for a collection name outside Collections.
var ErrUnknownCollection = errors.New("store: unknown collection")

// Filter is an equality constraint on a single column.
type Filter struct {
	Column string
	Value  any
}

// Eq builds an equality filter.
func Eq(column string, value any) Filter {
	return Filter{Column: column, Value: value}
}

// Order describes result ordering on a single column.
type Order struct {
	Column     string
	Descending bool
}

// Query narrows and orders a Select. Filters combine with AND. A zero Order
// leaves backend ordering unspecified; Limit <= 0 means no limit.
type Query struct {
	Filters []Filter
	Order   Order
	Limit   int
}

// Client is the remote store boundary. Implementations own their transport
// timeouts; callers add none. No implementation retries.
type Client interface {
	// Select returns the rows matching q, ordered as requested.
	Select(ctx context.Context, collection string, q Query) ([]Row, error)
	// Insert stores a new row and returns it with the server-assigned id
	// and timestamps filled in.
	Insert(ctx context.Context, collection string, row Row) (Row, error)
	// Update applies a partial row to the row with the given id and returns
	// the full updated row.
	Update(ctx context.Context, collection string, id string, row Row) (Row, error)
	// Delete removes the row with the given id.
	Delete(ctx context.Context, collection string, id string) error
}

// KnownCollection reports whether name is one of the served collections.
func KnownCollection(name string) bool {
	for _, c := range Collections {
		if c == name {
			return true
		}
	}
	return false
}
