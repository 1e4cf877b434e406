package record

// Required is the sentinel default marking a field as mandatory. Using it as
// a FieldSpec default is equivalent to setting the Required flag.
var Required any = requiredSentinel{}

type requiredSentinel struct{}

// FieldSpec declares the constraint bundle for one record field: a static
// default, a zero-argument default factory, and requiredness plus
// index/uniqueness flags. A zero FieldSpec imposes no constraints beyond the
// field's declared type.
type FieldSpec struct {
	Default  any
	Factory  func() any
	Required bool
	Indexed  bool
	Unique   bool
}

// required reports whether the spec marks its field mandatory, through either
// the Required flag or the Required sentinel default.
func (s *FieldSpec) required() bool {
	if s.Required {
		return true
	}
	_, ok := s.Default.(requiredSentinel)
	return ok
}

// staticDefault returns the spec's static default, hiding the Required sentinel.
func (s *FieldSpec) staticDefault() any {
	if _, ok := s.Default.(requiredSentinel); ok {
		return nil
	}
	return s.Default
}

// Field pairs a field name and declared type with an optional FieldSpec.
// A field without a spec may leave Type empty, which resolves to TypeAny;
// a field with a spec must declare a type.
type Field struct {
	Name string
	Type Type
	Spec *FieldSpec
}
