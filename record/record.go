package record

// Meta holds the index and uniqueness metadata for one record instance.
// Every instance owns a freshly built Meta; no metadata storage is shared
// across instances of a schema.
type Meta struct {
	Indexes []string
	Uniques []string
}

// Record is a single validated instance of a Schema. Field values may be
// reassigned through Set (each write re-validated), but the set of declared
// fields and their resolved types is fixed for the record's lifetime.
//
// A Record is exclusively owned by one logical owner at a time; concurrent
// writes require external synchronization.
type Record struct {
	schema *Schema
	values map[string]any
	meta   Meta
}

// New constructs a record from the supplied field values. Every declared
// field is resolved in declaration order: a supplied value wins; otherwise
// the static default, then the default factory. A required field with no
// value falls back to its factory if one exists, and aborts with
// *RequiredError otherwise. Factory and default results must satisfy the
// field's type (*TypeError if not). Values for undeclared names are ignored.
//
// Construction is all-or-nothing: on any failure no record is returned.
func (s *Schema) New(values map[string]any) (*Record, error) {
	r := &Record{
		schema: s,
		values: make(map[string]any, len(s.fields)),
	}
	for _, f := range s.fields {
		v := values[f.Name]
		if spec := f.Spec; spec != nil {
			// Only construction falls back to the factory for a required
			// field; a later bare write of nil still fails.
			if v == nil && spec.required() && spec.Factory != nil {
				v = spec.Factory()
			}
			if spec.Indexed {
				r.meta.Indexes = append(r.meta.Indexes, f.Name)
			}
			if spec.Unique {
				r.meta.Uniques = append(r.meta.Uniques, f.Name)
			}
		}
		if err := r.set(f, v); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// set runs the field write path: required enforcement, static-default and
// factory substitution for nil values, and a type check on the final value.
func (r *Record) set(f Field, v any) error {
	if spec := f.Spec; spec != nil && v == nil {
		switch {
		case spec.required():
			return &RequiredError{Schema: r.schema.name, Field: f.Name}
		case spec.staticDefault() != nil:
			v = spec.staticDefault()
		case spec.Factory != nil:
			v = spec.Factory()
		}
	}
	if v != nil && !f.Type.Accepts(v) {
		return &TypeError{Schema: r.schema.name, Field: f.Name, Want: f.Type, Value: v}
	}
	r.values[f.Name] = v
	return nil
}

// Get returns the stored value for a declared field. Reading an undeclared
// field is a *ConfigError; a deleted field reads as nil.
func (r *Record) Get(name string) (any, error) {
	if _, ok := r.schema.byName[name]; !ok {
		return nil, &ConfigError{Schema: r.schema.name, Field: name, Reason: "field not declared"}
	}
	return r.values[name], nil
}

// Set reassigns a declared field through the validating write path.
func (r *Record) Set(name string, value any) error {
	f, ok := r.schema.Field(name)
	if !ok {
		return &ConfigError{Schema: r.schema.name, Field: name, Reason: "field not declared"}
	}
	return r.set(f, value)
}

// Delete removes the stored value for a declared field entirely.
func (r *Record) Delete(name string) error {
	if _, ok := r.schema.byName[name]; !ok {
		return &ConfigError{Schema: r.schema.name, Field: name, Reason: "field not declared"}
	}
	delete(r.values, name)
	return nil
}

// Fields returns a copy of the record's field values. The record keeps
// exclusive ownership of its own storage.
func (r *Record) Fields() map[string]any {
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// Schema returns the record's schema.
func (r *Record) Schema() *Schema {
	return r.schema
}

// Meta returns this record's index/uniqueness metadata. The returned slices
// are copies; mutating them does not affect the record.
func (r *Record) Meta() Meta {
	return Meta{
		Indexes: append([]string(nil), r.meta.Indexes...),
		Uniques: append([]string(nil), r.meta.Uniques...),
	}
}
