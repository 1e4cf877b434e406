package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/groblegark/recordkit/schemafile"
	"github.com/groblegark/recordkit/ui"
)

var validateSchemaPath string

var validateCmd = &cobra.Command{
	Use:   "validate <values.json|->",
	Short: "Construct a record from JSON field values against a schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := schemafile.Load(validateSchemaPath)
		if err != nil {
			return err
		}
		values, err := readValues(args[0])
		if err != nil {
			return err
		}
		r, err := s.New(values)
		if err != nil {
			fmt.Fprintln(os.Stderr, ui.RenderError("invalid record: "+err.Error()))
			os.Exit(1)
		}
		if jsonOutput {
			return printRecordJSON(r)
		}
		return printRecordTable(r)
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSchemaPath, "schema", "schema.toml", "schema definition file")
}
