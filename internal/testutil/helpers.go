// Package testutil provides shared helpers for tests across the
// application packages.
package testutil

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// CreateFile creates a test file with content, making parent
// directories as needed.
func CreateFile(t *testing.T, path string, content []byte) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("Failed to create directory for test file: %v", err)
	}

	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Failed to create test file %s: %v", path, err)
	}
}

// CreateWordsFile writes entries as a JSON array into a fresh temp
// directory and returns the file path. Entries may be any
// JSON-marshalable slice; nil produces an empty array.
func CreateWordsFile(t *testing.T, entries any) string {
	t.Helper()

	data := []byte("[]")
	if entries != nil {
		var err error
		data, err = json.MarshalIndent(entries, "", "    ")
		if err != nil {
			t.Fatalf("Failed to encode test entries: %v", err)
		}
	}

	path := filepath.Join(t.TempDir(), "words.json")
	CreateFile(t, path, data)
	return path
}

// AssertFileExists checks if a file exists
func AssertFileExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Errorf("Expected file to exist: %s", path)
	}
}

// AssertFileNotExists checks if a file does not exist
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()

	if _, err := os.Stat(path); err == nil {
		t.Errorf("Expected file to not exist: %s", path)
	}
}

// AssertFileContains checks if a file contains a substring
func AssertFileContains(t *testing.T, path string, substring string) {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read file %s: %v", path, err)
	}

	if !strings.Contains(string(content), substring) {
		t.Errorf("File %s does not contain expected substring: %q", path, substring)
	}
}
