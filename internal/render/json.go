package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes the document as indented JSON.
func JSON(w io.Writer, doc Document) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to encode JSON response: %w", err)
	}
	return nil
}

// DecodeJSON reads a document written by JSON or received from a remote
// server.
func DecodeJSON(data []byte) (Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("failed to decode search response: %w", err)
	}
	return doc, nil
}
