package record

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewSchema_SpecWithoutType(t *testing.T) {
	_, err := NewSchema("user", Field{Name: "id", Spec: &FieldSpec{Unique: true}})
	if err == nil {
		t.Fatal("expected error for spec-bearing field without a type")
	}
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %T: %v", err, err)
	}
	if ce.Field != "id" {
		t.Errorf("ConfigError.Field = %q, want %q", ce.Field, "id")
	}
}

func TestNewSchema_UntypedFieldResolvesAny(t *testing.T) {
	s, err := NewSchema("note", Field{Name: "extra"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	f, ok := s.Field("extra")
	if !ok {
		t.Fatal("field not found")
	}
	if f.Type != TypeAny {
		t.Errorf("resolved type = %q, want %q", f.Type, TypeAny)
	}
}

func TestNewSchema_Errors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		schema string
		fields []Field
	}{
		{"EmptySchemaName", "", []Field{{Name: "a", Type: TypeString}}},
		{"EmptyFieldName", "thing", []Field{{Type: TypeString}}},
		{"DuplicateField", "thing", []Field{
			{Name: "a", Type: TypeString},
			{Name: "a", Type: TypeInteger},
		}},
		{"UnknownType", "thing", []Field{{Name: "a", Type: Type("strng")}}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewSchema(tc.schema, tc.fields...)
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestNewSchema_MetadataOrder(t *testing.T) {
	s, err := NewSchema("doc",
		Field{Name: "b", Type: TypeString, Spec: &FieldSpec{Indexed: true}},
		Field{Name: "a", Type: TypeString, Spec: &FieldSpec{Indexed: true, Unique: true}},
		Field{Name: "c", Type: TypeString, Spec: &FieldSpec{Unique: true}},
		Field{Name: "d", Type: TypeString},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := s.IndexNames(), []string{"b", "a"}; !reflect.DeepEqual(got, want) {
		t.Errorf("IndexNames() = %v, want %v", got, want)
	}
	if got, want := s.UniqueNames(), []string{"a", "c"}; !reflect.DeepEqual(got, want) {
		t.Errorf("UniqueNames() = %v, want %v", got, want)
	}
	if got, want := s.FieldNames(), []string{"b", "a", "c", "d"}; !reflect.DeepEqual(got, want) {
		t.Errorf("FieldNames() = %v, want %v", got, want)
	}
}

func TestSchema_AccessorsReturnCopies(t *testing.T) {
	s, err := NewSchema("doc",
		Field{Name: "a", Type: TypeString, Spec: &FieldSpec{Indexed: true}},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx := s.IndexNames()
	idx[0] = "tampered"
	if got := s.IndexNames()[0]; got != "a" {
		t.Errorf("IndexNames() after mutation = %q, want %q", got, "a")
	}
}
