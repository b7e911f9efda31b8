package croissant

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

var errNullRoot = errors.New("root is null, expected an object")

// Encode renders doc as two-space-indented JSON-LD with a trailing newline.
// Property order follows struct declaration order, so the output for a given
// document is byte-stable. HTML escaping is off: vocabulary URIs appear
// verbatim.
func Encode(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encoding metadata: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode parses JSON-LD bytes into a Document. A parse failure here means
// the input is not structurally a Croissant document at all; missing or wrong
// properties inside a well-formed document are the validator's business, not
// an error from Decode.
func Decode(data []byte) (*Document, error) {
	// A bare null unmarshals into a zero Document without error; it is not
	// an object root and fails like any other malformed input.
	if string(bytes.TrimSpace(data)) == "null" {
		return nil, fmt.Errorf("parsing JSON-LD: %w", errNullRoot)
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing JSON-LD: %w", err)
	}
	return &doc, nil
}

// WriteFile encodes doc and writes it to path, creating missing parent
// directories first.
func WriteFile(path string, doc *Document) error {
	data, err := Encode(doc)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating output directory %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
