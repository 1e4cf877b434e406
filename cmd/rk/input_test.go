package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.json")
	if err := os.WriteFile(path, []byte(`{"age": 30, "name": "bob"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	values, err := readValues(path)
	if err != nil {
		t.Fatalf("readValues: %v", err)
	}
	if values["name"] != "bob" {
		t.Errorf("values[name] = %v, want %q", values["name"], "bob")
	}
	if values["age"] != float64(30) {
		t.Errorf("values[age] = %v (%T), want 30", values["age"], values["age"])
	}
}

func TestReadValues_NotAnObject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.json")
	if err := os.WriteFile(path, []byte(`[1, 2]`), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := readValues(path); err == nil {
		t.Fatal("expected error for non-object input")
	}
}

func TestReadValues_MissingFile(t *testing.T) {
	if _, err := readValues(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
