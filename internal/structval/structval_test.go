package structval

import (
	"encoding/json"
	"testing"
)

func TestFromAny_NestedPayload(t *testing.T) {
	v, err := FromAny(map[string]any{
		"patient": "Ali Rehman",
		"age":     float64(54),
		"urgent":  true,
		"tags":    []any{"chronic", "follow-up"},
		"ref":     nil,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.Kind() != KindMap {
		t.Fatalf("expected map, got %v", v.Kind())
	}

	name, ok := v.Get("patient")
	if !ok || name.Str() != "Ali Rehman" {
		t.Errorf("string field wrong: %v %v", name, ok)
	}
	if age, _ := v.Get("age"); age.Num() != 54 {
		t.Errorf("number field wrong: %v", age)
	}
	if urgent, _ := v.Get("urgent"); !urgent.Boolean() {
		t.Errorf("bool field wrong")
	}
	if tags, _ := v.Get("tags"); len(tags.Items()) != 2 || tags.Items()[0].Str() != "chronic" {
		t.Errorf("list field wrong: %v", tags)
	}
	if ref, _ := v.Get("ref"); !ref.IsNull() {
		t.Errorf("null field wrong")
	}
}

func TestFromAny_RejectsUnsupportedType(t *testing.T) {
	if _, err := FromAny(struct{}{}); err == nil {
		t.Fatal("expected error for unsupported type")
	}
}

func TestValue_JSONRoundTrip(t *testing.T) {
	orig := Map(map[string]Value{
		"type":  String("session_completed"),
		"count": Number(3),
		"ids":   List(String("a"), String("b")),
	})

	buf, err := json.Marshal(orig)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var back Value
	if err := json.Unmarshal(buf, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if typ, _ := back.Get("type"); typ.Str() != "session_completed" {
		t.Errorf("map entry lost: %v", typ)
	}
	if ids, _ := back.Get("ids"); len(ids.Items()) != 2 {
		t.Errorf("list lost: %v", ids)
	}
}

func TestValue_ZeroValueIsNull(t *testing.T) {
	var v Value
	if !v.IsNull() || v.Kind() != KindNull {
		t.Errorf("zero value must be null, got %v", v.Kind())
	}

	buf, err := json.Marshal(v)
	if err != nil || string(buf) != "null" {
		t.Errorf("null must marshal to JSON null, got %s (%v)", buf, err)
	}
}

func TestValue_KeysSorted(t *testing.T) {
	v := Map(map[string]Value{"b": Null(), "a": Null(), "c": Null()})
	keys := v.Keys()
	if len(keys) != 3 || keys[0] != "a" || keys[2] != "c" {
		t.Errorf("keys not sorted: %v", keys)
	}
}
