package store

import "testing"

func TestApply_OrdersByTimestampString(t *testing.T) {
	rows := []Row{
		{"id": "b", "created_at": "2026-01-02T00:00:00Z"},
		{"id": "a", "created_at": "2026-01-01T00:00:00Z"},
		{"id": "c", "created_at": "2026-01-03T00:00:00Z"},
	}

	out := Apply(rows, Query{Order: Order{Column: "created_at", Descending: true}})
	if out[0].Str("id") != "c" || out[2].Str("id") != "a" {
		t.Fatalf("descending order wrong: %+v", out)
	}

	out = Apply(rows, Query{Order: Order{Column: "created_at"}})
	if out[0].Str("id") != "a" || out[2].Str("id") != "c" {
		t.Fatalf("ascending order wrong: %+v", out)
	}
}

func TestApply_NumericFiltersMatchAcrossJSONDecoding(t *testing.T) {
	// Stored rows carry float64 after a JSON round trip; filters are built
	// from Go ints.
	rows := []Row{{"id": "a", "age": float64(54)}, {"id": "b", "age": float64(31)}}

	out := Apply(rows, Query{Filters: []Filter{Eq("age", 54)}})
	if len(out) != 1 || out[0].Str("id") != "a" {
		t.Fatalf("int filter should match float64 value: %+v", out)
	}
}

func TestApply_LimitAfterOrdering(t *testing.T) {
	rows := []Row{
		{"id": "a", "created_at": "2026-01-01T00:00:00Z"},
		{"id": "b", "created_at": "2026-01-02T00:00:00Z"},
		{"id": "c", "created_at": "2026-01-03T00:00:00Z"},
	}

	out := Apply(rows, Query{Order: Order{Column: "created_at", Descending: true}, Limit: 2})
	if len(out) != 2 || out[0].Str("id") != "c" || out[1].Str("id") != "b" {
		t.Fatalf("limit must apply to the newest rows: %+v", out)
	}
}

func TestValidColumn(t *testing.T) {
	for name, want := range map[string]bool{
		"created_at":       true,
		"user_id":          true,
		"id":               true,
		"Name":             false,
		"created_at; drop": false,
		"1col":             false,
		"":                 false,
	} {
		if got := ValidColumn(name); got != want {
			t.Errorf("ValidColumn(%q) = %v, want %v", name, got, want)
		}
	}
}
