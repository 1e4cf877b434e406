package main

import (
	"github.com/spf13/cobra"

	"github.com/groblegark/recordkit/schemafile"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <file.toml>",
	Short: "Inspect a schema definition file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := schemafile.Load(args[0])
		if err != nil {
			return err
		}
		if jsonOutput {
			return printSchemaJSON(s)
		}
		printSchemaTable(s)
		return nil
	},
}
