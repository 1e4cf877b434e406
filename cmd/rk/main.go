package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/groblegark/recordkit/ui"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:   "rk",
	Short: "Validate and encode structured records against schema definitions",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		ui.Init()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output as JSON")

	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(encodeCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
