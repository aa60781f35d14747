package repo

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/store"
)

type note struct {
	ID   string
	Text string
}

func noteBinding() Binding[note] {
	return Binding[note]{
		Collection: "notes",
		OrderBy:    "created_at",
		ID:         func(n note) string { return n.ID },
		FromRow: func(r store.Row) (note, error) {
			return note{ID: r.Str("id"), Text: r.Str("text")}, nil
		},
	}
}

// mockClient counts calls and delegates to optional function fields.
type mockClient struct {
	selectCalls int
	insertCalls int
	updateCalls int
	deleteCalls int

	selectFn func(q store.Query) ([]store.Row, error)
	insertFn func(row store.Row) (store.Row, error)
	updateFn func(id string, fields store.Row) (store.Row, error)
	deleteFn func(id string) error
}

func (m *mockClient) Select(_ context.Context, _ string, q store.Query) ([]store.Row, error) {
	m.selectCalls++
	if m.selectFn != nil {
		return m.selectFn(q)
	}
	return nil, nil
}

func (m *mockClient) Insert(_ context.Context, _ string, row store.Row) (store.Row, error) {
	m.insertCalls++
	if m.insertFn != nil {
		return m.insertFn(row)
	}
	return row, nil
}

func (m *mockClient) Update(_ context.Context, _ string, id string, fields store.Row) (store.Row, error) {
	m.updateCalls++
	if m.updateFn != nil {
		return m.updateFn(id, fields)
	}
	return fields, nil
}

func (m *mockClient) Delete(_ context.Context, _ string, id string) error {
	m.deleteCalls++
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return nil
}

func signedInSource() *auth.Source {
	src := auth.NewSource()
	src.SignIn(auth.Session{UserID: "user-1"})
	return src
}

func TestFetchAll_ReplacesMirrorWholesale(t *testing.T) {
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			return []store.Row{{"id": "a", "text": "first"}, {"id": "b", "text": "second"}}, nil
		},
	}
	m := NewMirror(client, signedInSource(), zerolog.Nop(), noteBinding())

	items := m.FetchAll(context.Background())
	if len(items) != 2 || items[0].ID != "a" || items[1].ID != "b" {
		t.Fatalf("unexpected items after first fetch: %+v", items)
	}
	if m.State() != Ready {
		t.Errorf("expected Ready state, got %v", m.State())
	}

	client.selectFn = func(q store.Query) ([]store.Row, error) {
		return []store.Row{{"id": "c", "text": "only"}}, nil
	}
	items = m.FetchAll(context.Background())
	if len(items) != 1 || items[0].ID != "c" {
		t.Fatalf("second fetch should replace the list, got %+v", items)
	}
}

func TestFetchAll_ScopesQueryToUser(t *testing.T) {
	var got store.Query
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			got = q
			return nil, nil
		},
	}
	b := noteBinding()
	b.Limit = 50
	m := NewMirror(client, signedInSource(), zerolog.Nop(), b)

	m.FetchAll(context.Background(), store.Eq("session_id", "s-1"))

	if len(got.Filters) != 2 {
		t.Fatalf("expected user_id + scope filters, got %+v", got.Filters)
	}
	if got.Filters[0].Column != "user_id" || got.Filters[0].Value != "user-1" {
		t.Errorf("first filter should scope to the user, got %+v", got.Filters[0])
	}
	if got.Filters[1].Column != "session_id" {
		t.Errorf("scope filter not forwarded: %+v", got.Filters[1])
	}
	if !got.Order.Descending || got.Order.Column != "created_at" {
		t.Errorf("unexpected ordering: %+v", got.Order)
	}
	if got.Limit != 50 {
		t.Errorf("expected limit 50, got %d", got.Limit)
	}
}

func TestFetchAll_ErrorKeepsPreviousList(t *testing.T) {
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			return []store.Row{{"id": "a"}}, nil
		},
	}
	m := NewMirror(client, signedInSource(), zerolog.Nop(), noteBinding())
	m.FetchAll(context.Background())

	client.selectFn = func(q store.Query) ([]store.Row, error) {
		return nil, errors.New("network down")
	}
	items := m.FetchAll(context.Background())

	if len(items) != 1 || items[0].ID != "a" {
		t.Fatalf("failed fetch should keep the previous list, got %+v", items)
	}
	if m.State() != Ready {
		t.Errorf("failed fetch should still resolve to Ready, got %v", m.State())
	}
}

func TestFetchAll_SignedOutIsNoOp(t *testing.T) {
	client := &mockClient{}
	m := NewMirror(client, auth.NewSource(), zerolog.Nop(), noteBinding())

	items := m.FetchAll(context.Background())

	if len(items) != 0 {
		t.Errorf("expected empty snapshot, got %+v", items)
	}
	if client.selectCalls != 0 {
		t.Errorf("signed-out fetch must not contact the store, got %d calls", client.selectCalls)
	}
	if m.State() != Uninitialized {
		t.Errorf("signed-out fetch must leave state untouched, got %v", m.State())
	}
}

func TestCreate_SignedOutNeverContactsStore(t *testing.T) {
	client := &mockClient{}
	m := NewMirror(client, auth.NewSource(), zerolog.Nop(), noteBinding())

	_, err := m.Create(context.Background(), store.Row{"text": "x"})

	if !errors.Is(err, auth.ErrNotAuthenticated) {
		t.Fatalf("expected ErrNotAuthenticated, got %v", err)
	}
	if client.insertCalls != 0 {
		t.Errorf("create without a session must not contact the store")
	}
}

func TestCreate_StampsUserAndPrepends(t *testing.T) {
	var inserted store.Row
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			return []store.Row{{"id": "old"}}, nil
		},
		insertFn: func(row store.Row) (store.Row, error) {
			inserted = row
			row = row.Clone()
			row["id"] = "new"
			return row, nil
		},
	}
	m := NewMirror(client, signedInSource(), zerolog.Nop(), noteBinding())
	m.FetchAll(context.Background())

	created, err := m.Create(context.Background(), store.Row{"text": "hello"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if inserted.Str("user_id") != "user-1" {
		t.Errorf("create must stamp user_id, got %q", inserted.Str("user_id"))
	}
	if created.ID != "new" {
		t.Errorf("created entity should come from the server row, got %+v", created)
	}

	items := m.Items()
	if len(items) != 2 || items[0].ID != "new" || items[1].ID != "old" {
		t.Fatalf("new entity should be prepended, got %+v", items)
	}
}

func TestCreate_AppendsWhenBindingSaysSo(t *testing.T) {
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			return []store.Row{{"id": "old"}}, nil
		},
		insertFn: func(row store.Row) (store.Row, error) {
			row = row.Clone()
			row["id"] = "new"
			return row, nil
		},
	}
	b := noteBinding()
	b.AppendNew = true
	m := NewMirror(client, signedInSource(), zerolog.Nop(), b)
	m.FetchAll(context.Background())

	if _, err := m.Create(context.Background(), store.Row{"text": "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	items := m.Items()
	if len(items) != 2 || items[1].ID != "new" {
		t.Fatalf("new entity should be appended, got %+v", items)
	}
}

func TestCreate_FailureLeavesMirrorUntouched(t *testing.T) {
	client := &mockClient{
		insertFn: func(row store.Row) (store.Row, error) {
			return nil, errors.New("insert rejected")
		},
	}
	m := NewMirror(client, signedInSource(), zerolog.Nop(), noteBinding())

	if _, err := m.Create(context.Background(), store.Row{"text": "x"}); err == nil {
		t.Fatal("expected error")
	}
	if len(m.Items()) != 0 {
		t.Errorf("failed create must not add to the mirror")
	}
}

func TestUpdate_ReplacesMatchingEntryWithServerRow(t *testing.T) {
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			return []store.Row{{"id": "a", "text": "before"}, {"id": "b", "text": "other"}}, nil
		},
		updateFn: func(id string, fields store.Row) (store.Row, error) {
			return store.Row{"id": id, "text": "after"}, nil
		},
	}
	m := NewMirror(client, signedInSource(), zerolog.Nop(), noteBinding())
	m.FetchAll(context.Background())

	updated, err := m.Update(context.Background(), "a", store.Row{"text": "after"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if updated.Text != "after" {
		t.Errorf("expected server row back, got %+v", updated)
	}

	items := m.Items()
	if items[0].Text != "after" || items[1].Text != "other" {
		t.Fatalf("only the matching entry should change, got %+v", items)
	}
}

func TestUpdate_FailureLeavesMirrorUntouched(t *testing.T) {
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			return []store.Row{{"id": "a", "text": "before"}}, nil
		},
		updateFn: func(id string, fields store.Row) (store.Row, error) {
			return nil, errors.New("update rejected")
		},
	}
	m := NewMirror(client, signedInSource(), zerolog.Nop(), noteBinding())
	m.FetchAll(context.Background())

	if _, err := m.Update(context.Background(), "a", store.Row{"text": "x"}); err == nil {
		t.Fatal("expected error")
	}
	if m.Items()[0].Text != "before" {
		t.Errorf("failed update must leave the entry unchanged")
	}
}

func TestDelete_RemovesEntryOnlyAfterRemoteConfirms(t *testing.T) {
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			return []store.Row{{"id": "a"}, {"id": "b"}}, nil
		},
		deleteFn: func(id string) error { return errors.New("delete rejected") },
	}
	m := NewMirror(client, signedInSource(), zerolog.Nop(), noteBinding())
	m.FetchAll(context.Background())

	if err := m.Delete(context.Background(), "a"); err == nil {
		t.Fatal("expected error")
	}
	if len(m.Items()) != 2 {
		t.Fatalf("failed delete must retain the entry, got %+v", m.Items())
	}

	client.deleteFn = nil
	if err := m.Delete(context.Background(), "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	items := m.Items()
	if len(items) != 1 || items[0].ID != "b" {
		t.Fatalf("expected only b to remain, got %+v", items)
	}
}

func TestSessionChange_ClearsMirror(t *testing.T) {
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			return []store.Row{{"id": "a"}}, nil
		},
	}
	src := signedInSource()
	m := NewMirror(client, src, zerolog.Nop(), noteBinding())
	m.FetchAll(context.Background())

	src.SignIn(auth.Session{UserID: "user-2"})

	if len(m.Items()) != 0 {
		t.Errorf("changing user must clear the mirror, got %+v", m.Items())
	}
	if m.State() != Uninitialized {
		t.Errorf("expected Uninitialized after user change, got %v", m.State())
	}

	src.SignOut()
	if m.State() != Uninitialized || len(m.Items()) != 0 {
		t.Errorf("sign-out must leave an empty uninitialized mirror")
	}
}

func TestFetchAll_StaleResponseDiscarded(t *testing.T) {
	src := signedInSource()
	client := &mockClient{}
	var m *Mirror[note]
	client.selectFn = func(q store.Query) ([]store.Row, error) {
		// The user switches while this fetch is in flight. Its rows belong
		// to the previous user and must not land in the mirror.
		client.selectFn = func(store.Query) ([]store.Row, error) { return nil, nil }
		src.SignIn(auth.Session{UserID: "user-2"})
		return []store.Row{{"id": "stale"}}, nil
	}
	m = NewMirror(client, src, zerolog.Nop(), noteBinding())

	m.FetchAll(context.Background())

	if len(m.Items()) != 0 {
		t.Fatalf("stale fetch result must be discarded, got %+v", m.Items())
	}
}

func TestPatch_RewritesEntryInPlace(t *testing.T) {
	client := &mockClient{
		selectFn: func(q store.Query) ([]store.Row, error) {
			return []store.Row{{"id": "a", "text": "x"}, {"id": "b", "text": "y"}}, nil
		},
	}
	m := NewMirror(client, signedInSource(), zerolog.Nop(), noteBinding())
	m.FetchAll(context.Background())

	m.Patch("b", func(n note) note {
		n.Text = "patched"
		return n
	})

	items := m.Items()
	if items[1].Text != "patched" || items[0].Text != "x" {
		t.Fatalf("patch should rewrite only the matching entry, got %+v", items)
	}
	if client.updateCalls != 0 {
		t.Errorf("patch must not contact the store")
	}
}
