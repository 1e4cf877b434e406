package record

import (
	"reflect"
	"testing"

	"github.com/groblegark/recordkit/codec"
)

func jsonSchema(t *testing.T) *Schema {
	t.Helper()
	s, err := NewSchema("event",
		Field{Name: "id", Type: TypeString, Spec: &FieldSpec{Unique: true}},
		Field{Name: "kind", Type: TypeString, Spec: &FieldSpec{Default: "generic"}},
		Field{Name: "weight", Type: TypeFloat, Spec: &FieldSpec{Required: true}},
		Field{Name: "tags", Type: TypeStrings},
	)
	if err != nil {
		t.Fatalf("NewSchema: %v", err)
	}
	return s
}

func TestRecord_RoundTripLaw(t *testing.T) {
	s := jsonSchema(t)
	r, err := s.New(map[string]any{
		"weight": 2.5,
		"tags":   []any{"a", "b"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	data, err := r.JSON(false)
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	parsed, err := codec.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	m, err := r.Map(false)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if !reflect.DeepEqual(parsed, any(m)) {
		t.Errorf("round trip mismatch:\nparsed = %#v\nmapped = %#v", parsed, m)
	}
}

func TestRecord_MapExcludeNone(t *testing.T) {
	s := jsonSchema(t)
	r, err := s.New(map[string]any{"weight": 1.0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	m, err := r.Map(true)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if _, present := m["id"]; present {
		t.Errorf("Map(true) kept nil field id: %#v", m)
	}
	if _, present := m["tags"]; present {
		t.Errorf("Map(true) kept nil field tags: %#v", m)
	}

	m, err = r.Map(false)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if v, present := m["id"]; !present || v != nil {
		t.Errorf("Map(false) should keep nil field id, got %#v", m)
	}
}

func TestRecord_NestedEncode(t *testing.T) {
	s := jsonSchema(t)
	r, err := s.New(map[string]any{"weight": 1.0})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	// A record nested in a larger structure encodes through JSONValue.
	data, err := codec.Marshal(map[string]any{"event": r}, false)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	parsed, err := codec.Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	outer, ok := parsed.(map[string]any)
	if !ok {
		t.Fatalf("parsed = %T, want map", parsed)
	}
	inner, ok := outer["event"].(map[string]any)
	if !ok {
		t.Fatalf("event = %T, want map", outer["event"])
	}
	if inner["kind"] != "generic" {
		t.Errorf("nested kind = %v, want %q", inner["kind"], "generic")
	}
}
