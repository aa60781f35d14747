package activitylog

import (
	"context"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/store"
	"github.com/medassist/medassist/internal/structval"
)

type captureClient struct {
	store.Client
	lastQuery  store.Query
	lastInsert store.Row
}

func (c *captureClient) Select(ctx context.Context, collection string, q store.Query) ([]store.Row, error) {
	c.lastQuery = q
	return c.Client.Select(ctx, collection, q)
}

func (c *captureClient) Insert(ctx context.Context, collection string, row store.Row) (store.Row, error) {
	c.lastInsert = row
	return c.Client.Insert(ctx, collection, row)
}

func newTestRepo(t *testing.T) (*Repo, *captureClient) {
	t.Helper()
	local, err := store.NewLocalClient("")
	if err != nil {
		t.Fatalf("local client: %v", err)
	}
	client := &captureClient{Client: local}
	src := auth.NewSource()
	src.SignIn(auth.Session{UserID: "clinician-1"})
	return NewRepo(client, src, zerolog.Nop()), client
}

func TestRepo_FetchCapsAtLimit(t *testing.T) {
	r, client := newTestRepo(t)

	r.FetchAll(context.Background())

	if client.lastQuery.Limit != FetchLimit {
		t.Errorf("fetch must cap at %d, got %d", FetchLimit, client.lastQuery.Limit)
	}
}

func TestRepo_LogDefaultsMetadataToEmptyMap(t *testing.T) {
	r, client := newTestRepo(t)

	entry, err := r.Log(context.Background(), "session_completed", "Completed a consultation", structval.Null())
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	meta, ok := client.lastInsert["metadata"].(map[string]any)
	if !ok || len(meta) != 0 {
		t.Errorf("null metadata must be stored as an empty mapping, got %#v", client.lastInsert["metadata"])
	}
	if entry.ActivityType != "session_completed" {
		t.Errorf("unexpected entry: %+v", entry)
	}
}

func TestRepo_LogKeepsStructuredMetadata(t *testing.T) {
	r, _ := newTestRepo(t)

	meta := structval.Map(map[string]structval.Value{
		"patient": structval.String("Ali Rehman"),
		"minutes": structval.Number(18),
	})
	entry, err := r.Log(context.Background(), "session_completed", "Completed a consultation", meta)
	if err != nil {
		t.Fatalf("log: %v", err)
	}

	name, ok := entry.Metadata.Get("patient")
	if !ok || name.Str() != "Ali Rehman" {
		t.Errorf("metadata did not round-trip: %+v", entry.Metadata)
	}

	// The entry must also survive a refetch from the store.
	entries := r.FetchAll(context.Background())
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if minutes, _ := entries[0].Metadata.Get("minutes"); minutes.Num() != 18 {
		t.Errorf("fetched metadata wrong: %+v", entries[0].Metadata)
	}
}
