package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/groblegark/recordkit/record"
	"github.com/groblegark/recordkit/ui"
)

func printSchemaTable(s *record.Schema) {
	fmt.Printf("Schema: %s\n\n", ui.RenderField(s.Name()))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tTYPE\tFLAGS\tDEFAULT")
	for _, f := range s.Fields() {
		var flags []string
		var def string
		if spec := f.Spec; spec != nil {
			if spec.Required {
				flags = append(flags, "required")
			}
			if spec.Indexed {
				flags = append(flags, "indexed")
			}
			if spec.Unique {
				flags = append(flags, "unique")
			}
			if spec.Factory != nil {
				flags = append(flags, "factory")
			}
			if spec.Default != nil {
				def = fmt.Sprintf("%v", spec.Default)
			}
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			ui.RenderField(f.Name),
			ui.RenderMuted(f.Type.String()),
			strings.Join(flags, ","),
			def,
		)
	}
	w.Flush()
	if idx := s.IndexNames(); len(idx) > 0 {
		fmt.Printf("\nIndexes: %s\n", strings.Join(idx, ", "))
	}
	if uniq := s.UniqueNames(); len(uniq) > 0 {
		fmt.Printf("Uniques: %s\n", strings.Join(uniq, ", "))
	}
}

func printSchemaJSON(s *record.Schema) error {
	type fieldOut struct {
		Name     string `json:"name"`
		Type     string `json:"type"`
		Required bool   `json:"required,omitempty"`
		Indexed  bool   `json:"indexed,omitempty"`
		Unique   bool   `json:"unique,omitempty"`
		Default  any    `json:"default,omitempty"`
	}
	out := struct {
		Name    string     `json:"name"`
		Fields  []fieldOut `json:"fields"`
		Indexes []string   `json:"indexes,omitempty"`
		Uniques []string   `json:"uniques,omitempty"`
	}{
		Name:    s.Name(),
		Indexes: s.IndexNames(),
		Uniques: s.UniqueNames(),
	}
	for _, f := range s.Fields() {
		fo := fieldOut{Name: f.Name, Type: f.Type.String()}
		if spec := f.Spec; spec != nil {
			fo.Required = spec.Required
			fo.Indexed = spec.Indexed
			fo.Unique = spec.Unique
			fo.Default = spec.Default
		}
		out.Fields = append(out.Fields, fo)
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printRecordTable(r *record.Record) error {
	m, err := r.Map(false)
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FIELD\tVALUE")
	for _, name := range r.Schema().FieldNames() {
		v, ok := m[name]
		if !ok {
			continue
		}
		fmt.Fprintf(w, "%s\t%v\n", ui.RenderField(name), v)
	}
	w.Flush()
	meta := r.Meta()
	if len(meta.Indexes) > 0 {
		fmt.Printf("\nIndexes: %s\n", strings.Join(meta.Indexes, ", "))
	}
	if len(meta.Uniques) > 0 {
		fmt.Printf("Uniques: %s\n", strings.Join(meta.Uniques, ", "))
	}
	return nil
}

func printRecordJSON(r *record.Record) error {
	data, err := r.JSON(false)
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
