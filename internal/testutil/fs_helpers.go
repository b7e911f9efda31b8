// Package testutil provides test utilities and helpers for croissant tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/croissant-tools/croissant/internal/croissant"
)

// SampleCSV is the canonical three-column fixture used across command tests:
// an Integer column, a Text column, and a Float column.
const SampleCSV = "id,name,score\n1,Alice,9.5\n2,Bob,8.0\n"

// WriteSampleCSV writes the sample CSV fixture into dir and returns its path.
func WriteSampleCSV(t *testing.T, dir string) string {
	t.Helper()

	path := filepath.Join(dir, "scores.csv")
	WriteFile(t, path, SampleCSV)
	return path
}

// WriteFile writes content to a file, creating parent directories if needed.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write file %s: %v", path, err)
	}
}

// FileExists checks if a file exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// ReadFile reads file content, failing the test on error.
func ReadFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read file %s: %v", path, err)
	}

	return string(content)
}

// DecodeDocument reads and decodes a Croissant document, failing the test on error.
func DecodeDocument(t *testing.T, path string) *croissant.Document {
	t.Helper()

	doc, err := croissant.Decode([]byte(ReadFile(t, path)))
	if err != nil {
		t.Fatalf("failed to decode document %s: %v", path, err)
	}

	return doc
}
