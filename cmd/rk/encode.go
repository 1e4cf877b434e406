package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/groblegark/recordkit/codec"
)

var keepNull bool

var encodeCmd = &cobra.Command{
	Use:   "encode <file.json|->",
	Short: "Sanitize JSON input to its canonical encoded form",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := readInput(args[0])
		if err != nil {
			return err
		}
		data, err := codec.Marshal(v, !keepNull)
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

func init() {
	encodeCmd.Flags().BoolVar(&keepNull, "keep-null", false, "keep null-valued entries in the output")
}
