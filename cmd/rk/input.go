package main

import (
	"fmt"
	"io"
	"os"

	"github.com/groblegark/recordkit/codec"
)

// readInput parses JSON from a file path, or from stdin when path is "-".
func readInput(path string) (any, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}
	return codec.Unmarshal(data)
}

// readValues parses JSON input that must be an object, as field values for
// record construction.
func readValues(path string) (map[string]any, error) {
	v, err := readInput(path)
	if err != nil {
		return nil, err
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("input must be a JSON object, got %T", v)
	}
	return m, nil
}
