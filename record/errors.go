package record

import "fmt"

// ConfigError reports a misconfigured record type: a field carrying a spec
// but no declared type, a duplicate field, or access to an undeclared field.
// It is raised at type-definition time; a schema that fails configuration
// must not be used.
type ConfigError struct {
	Schema string
	Field  string
	Reason string
}

// Error formats the configuration error as "schema.field: reason".
func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Schema, e.Reason)
	}
	return fmt.Sprintf("%s.%s: %s", e.Schema, e.Field, e.Reason)
}

// RequiredError reports a required field that received no value and had no
// factory to supply one. Construction aborts when it is raised.
type RequiredError struct {
	Schema string
	Field  string
}

// Error formats the required error as "schema.field: is required".
func (e *RequiredError) Error() string {
	return fmt.Sprintf("%s.%s: is required", e.Schema, e.Field)
}

// TypeError reports a supplied or computed value that does not satisfy a
// field's declared type. No coercion is attempted.
type TypeError struct {
	Schema string
	Field  string
	Want   Type
	Value  any
}

// Error formats the type error with the offending Go type and the declared field type.
func (e *TypeError) Error() string {
	return fmt.Sprintf("%s.%s: %T does not satisfy type %q", e.Schema, e.Field, e.Value, e.Want)
}
