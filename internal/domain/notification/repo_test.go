package notification

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/store"
)

// captureClient wraps a local store and records the last select query and
// whether updates should fail.
type captureClient struct {
	store.Client
	lastQuery   store.Query
	updateErr   error
	updateCalls int
}

func (c *captureClient) Select(ctx context.Context, collection string, q store.Query) ([]store.Row, error) {
	c.lastQuery = q
	return c.Client.Select(ctx, collection, q)
}

func (c *captureClient) Update(ctx context.Context, collection string, id string, row store.Row) (store.Row, error) {
	c.updateCalls++
	if c.updateErr != nil {
		return nil, c.updateErr
	}
	return c.Client.Update(ctx, collection, id, row)
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
	if !client.lastQuery.Order.Descending || client.lastQuery.Order.Column != "created_at" {
		t.Errorf("expected newest-first ordering, got %+v", client.lastQuery.Order)
	}
}

func TestRepo_MarkAsReadFlipsFlagInPlace(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	r.Create(ctx, New{Title: "first", Message: "m"})
	target, _ := r.Create(ctx, New{Title: "second", Message: "m"})
	r.Create(ctx, New{Title: "third", Message: "m"})

	before := r.Notifications()
	if err := r.MarkAsRead(ctx, target.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}

	after := r.Notifications()
	if len(after) != len(before) {
		t.Fatalf("mark read must not change list size")
	}
	for i := range after {
		if after[i].ID != before[i].ID {
			t.Fatalf("mark read must not reorder the list")
		}
	}
	for _, n := range after {
		if n.ID == target.ID && !n.IsRead {
			t.Errorf("target notification not marked read")
		}
		if n.ID != target.ID && n.IsRead {
			t.Errorf("only the target may flip, %+v", n)
		}
	}
}

func TestRepo_MarkAsReadFailureLeavesMirror(t *testing.T) {
	r, client := newTestRepo(t)
	ctx := context.Background()

	n, _ := r.Create(ctx, New{Title: "first", Message: "m"})
	client.updateErr = errors.New("backend down")

	if err := r.MarkAsRead(ctx, n.ID); err == nil {
		t.Fatal("expected error")
	}
	if r.Notifications()[0].IsRead {
		t.Error("failed mark-read must leave the flag unset")
	}
}

func TestRepo_MarkAsReadSignedOutNeverContactsStore(t *testing.T) {
	local, err := store.NewLocalClient("")
	if err != nil {
		t.Fatalf("local client: %v", err)
	}
	client := &captureClient{Client: local}
	src := auth.NewSource()
	src.SignIn(auth.Session{UserID: "clinician-1"})
	r := NewRepo(client, src, zerolog.Nop())

	n, _ := r.Create(context.Background(), New{Title: "t", Message: "m"})
	src.SignOut()

	if err := r.MarkAsRead(context.Background(), n.ID); !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if client.updateCalls != 0 {
		t.Errorf("signed-out mark-read must not reach the store, got %d calls", client.updateCalls)
	}
}

func TestRepo_UnreadCount(t *testing.T) {
	r, _ := newTestRepo(t)
	ctx := context.Background()

	a, _ := r.Create(ctx, New{Title: "a", Message: "m"})
	r.Create(ctx, New{Title: "b", Message: "m"})
	r.Create(ctx, New{Title: "c", Message: "m"})

	if got := r.UnreadCount(); got != 3 {
		t.Fatalf("expected 3 unread, got %d", got)
	}
	if err := r.MarkAsRead(ctx, a.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if got := r.UnreadCount(); got != 2 {
		t.Errorf("expected 2 unread, got %d", got)
	}
}

func TestRepo_CreateDefaultsToInfoUnread(t *testing.T) {
	r, _ := newTestRepo(t)

	n, err := r.Create(context.Background(), New{Title: "t", Message: "m"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if n.Type != TypeInfo || n.IsRead {
		t.Errorf("expected unread info notification, got %+v", n)
	}
}
