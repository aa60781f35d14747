package prompt

import (
	"context"
	"reflect"
	"testing"

	"github.com/rs/zerolog"

	"github.com/medassist/medassist/internal/auth"
	"github.com/medassist/medassist/internal/store"
)

func newTestRepo(t *testing.T) *Repo {
	t.Helper()
	client, err := store.NewLocalClient("")
	if err != nil {
		t.Fatalf("local client: %v", err)
	}
	src := auth.NewSource()
	src.SignIn(auth.Session{UserID: "clinician-1"})
	return NewRepo(client, src, zerolog.Nop())
}

func TestRepo_FetchOnlyActivePrompts(t *testing.T) {
	r := newTestRepo(t)
	ctx := context.Background()

	active, err := r.Create(ctx, New{Name: "SOAP note", PromptText: "Draft a SOAP note."})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	inactive := false
	if _, err := r.Update(ctx, active.ID, Update{IsActive: &inactive}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	// The deactivated prompt drops out on the next refetch.
	if got := r.FetchAll(ctx); len(got) != 0 {
		t.Fatalf("inactive prompts must not be fetched, got %+v", got)
	}
}

func TestRepo_CreateDefaults(t *testing.T) {
	r := newTestRepo(t)

	p, err := r.Create(context.Background(), New{Name: "SOAP note", PromptText: "Draft a SOAP note."})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !p.IsActive {
		t.Error("new prompts start active")
	}
	if p.Category != CategoryGeneral {
		t.Errorf("expected default category %q, got %q", CategoryGeneral, p.Category)
	}
}

func TestFilter(t *testing.T) {
	desc := "Write a discharge summary"
	library := []Prompt{
		{ID: "1", Name: "SOAP note", Category: "documentation"},
		{ID: "2", Name: "Discharge", Category: "documentation", Description: &desc},
		{ID: "3", Name: "Drug interactions", Category: "safety"},
	}

	if got := Filter(library, "soap", ""); len(got) != 1 || got[0].ID != "1" {
		t.Errorf("name search failed: %+v", got)
	}
	if got := Filter(library, "summary", ""); len(got) != 1 || got[0].ID != "2" {
		t.Errorf("description search failed: %+v", got)
	}
	if got := Filter(library, "", "safety"); len(got) != 1 || got[0].ID != "3" {
		t.Errorf("category filter failed: %+v", got)
	}
	if got := Filter(library, "", FilterAll); len(got) != 3 {
		t.Errorf("all category must match everything: %+v", got)
	}
}

func TestCategories(t *testing.T) {
	library := []Prompt{
		{Category: "safety"},
		{Category: "documentation"},
		{Category: "safety"},
		{Category: ""},
	}
	got := Categories(library)
	want := []string{"documentation", "safety"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Categories() = %v, want %v", got, want)
	}
}
