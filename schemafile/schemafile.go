// Package schemafile loads declarative record type definitions from TOML
// documents. A definition names the record type and lists its fields with
// their types, constraint flags, static defaults, and named default
// factories. All schema definition-time validation applies at load time.
package schemafile

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/google/uuid"
	"github.com/segmentio/ksuid"

	"github.com/groblegark/recordkit/idgen"
	"github.com/groblegark/recordkit/record"
)

// Document mirrors the TOML layout of a schema definition file.
type Document struct {
	Name   string     `toml:"name"`
	Fields []FieldDef `toml:"fields"`
}

// FieldDef describes a single field in a schema definition file.
type FieldDef struct {
	Name     string `toml:"name"`
	Type     string `toml:"type"`
	Required bool   `toml:"required"`
	Indexed  bool   `toml:"indexed"`
	Unique   bool   `toml:"unique"`
	Default  any    `toml:"default"`
	Factory  string `toml:"factory"` // named producer, see Factories
}

// Factories maps the factory names usable in schema files to producers.
var Factories = map[string]func() any{
	"uuid":   func() any { return uuid.New() },
	"ksuid":  func() any { return ksuid.New() },
	"nanoid": idgen.Factory(""),
	"now":    func() any { return time.Now() },
}

// Load reads and parses a schema definition file.
func Load(path string) (*record.Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return Parse(data)
}

// Parse builds a schema from a TOML definition document.
func Parse(data []byte) (*record.Schema, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schemafile: %w", err)
	}
	return Build(doc)
}

// Build converts a parsed document into a record schema. A field with an
// empty type is passed through untyped so that the schema builder's
// definition-time gate still applies to spec-bearing fields.
func Build(doc Document) (*record.Schema, error) {
	fields := make([]record.Field, 0, len(doc.Fields))
	for _, fd := range doc.Fields {
		var typ record.Type
		if fd.Type != "" {
			t, err := record.ParseType(fd.Type)
			if err != nil {
				return nil, fmt.Errorf("schemafile: field %q: %w", fd.Name, err)
			}
			typ = t
		}
		f := record.Field{Name: fd.Name, Type: typ}
		if fd.Required || fd.Indexed || fd.Unique || fd.Default != nil || fd.Factory != "" {
			spec := &record.FieldSpec{
				Default:  fd.Default,
				Required: fd.Required,
				Indexed:  fd.Indexed,
				Unique:   fd.Unique,
			}
			if fd.Factory != "" {
				fn, ok := Factories[fd.Factory]
				if !ok {
					return nil, fmt.Errorf("schemafile: field %q: unknown factory %q", fd.Name, fd.Factory)
				}
				spec.Factory = fn
			}
			f.Spec = spec
		}
		fields = append(fields, f)
	}
	return record.NewSchema(doc.Name, fields...)
}
