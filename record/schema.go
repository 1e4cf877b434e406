package record

import "fmt"

// Schema is an immutable record type: a named, ordered set of fields plus
// aggregated index and uniqueness metadata. Build one with NewSchema. A
// schema is safe for concurrent readers once constructed.
type Schema struct {
	name    string
	fields  []Field
	byName  map[string]int
	indexes []string
	uniques []string
}

// NewSchema validates a record type declaration and builds its schema.
// Validation runs once, here, at type-definition time — never at
// instantiation — and failures are *ConfigError values:
//   - every field carrying a FieldSpec must declare a type;
//   - field names must be non-empty and unique;
//   - declared types must be known.
//
// Fields flagged Indexed or Unique register into the schema's IndexNames and
// UniqueNames in declaration order. A field's resolved type is fixed once the
// schema is built.
func NewSchema(name string, fields ...Field) (*Schema, error) {
	if name == "" {
		return nil, &ConfigError{Schema: "(unnamed)", Reason: "schema name is empty"}
	}
	s := &Schema{
		name:   name,
		byName: make(map[string]int, len(fields)),
	}
	for _, f := range fields {
		if f.Name == "" {
			return nil, &ConfigError{Schema: name, Reason: "field name is empty"}
		}
		if _, dup := s.byName[f.Name]; dup {
			return nil, &ConfigError{Schema: name, Field: f.Name, Reason: "duplicate field"}
		}
		if f.Type == "" {
			if f.Spec != nil {
				return nil, &ConfigError{Schema: name, Field: f.Name, Reason: "field with a spec must declare a type"}
			}
			f.Type = TypeAny
		}
		if !f.Type.IsValid() {
			return nil, &ConfigError{Schema: name, Field: f.Name, Reason: fmt.Sprintf("unknown type %q", f.Type)}
		}
		if f.Spec != nil {
			if f.Spec.Indexed {
				s.indexes = append(s.indexes, f.Name)
			}
			if f.Spec.Unique {
				s.uniques = append(s.uniques, f.Name)
			}
		}
		s.byName[f.Name] = len(s.fields)
		s.fields = append(s.fields, f)
	}
	return s, nil
}

// Name returns the schema's name.
func (s *Schema) Name() string {
	return s.name
}

// Field returns the declaration for a named field.
func (s *Schema) Field(name string) (Field, bool) {
	i, ok := s.byName[name]
	if !ok {
		return Field{}, false
	}
	return s.fields[i], true
}

// Fields returns the field declarations in declaration order.
func (s *Schema) Fields() []Field {
	return append([]Field(nil), s.fields...)
}

// FieldNames returns the field names in declaration order.
func (s *Schema) FieldNames() []string {
	names := make([]string, len(s.fields))
	for i, f := range s.fields {
		names[i] = f.Name
	}
	return names
}

// IndexNames returns the names of indexed fields in declaration order.
func (s *Schema) IndexNames() []string {
	return append([]string(nil), s.indexes...)
}

// UniqueNames returns the names of unique fields in declaration order.
func (s *Schema) UniqueNames() []string {
	return append([]string(nil), s.uniques...)
}
