// Package render serializes search results for the HTTP endpoint, the
// socket.io namespace and the terminal.
//
// Every format is produced from a Document, the wire shape of a search, so a
// remote search decoded from JSON renders exactly like a local one.
package render

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/specialistvlad/usagesearch/internal/search"
)

// Document is the serializable form of a search.
type Document struct {
	ProjectID string      `json:"projectId,omitempty"`
	Term      string      `json:"paramName,omitempty"`
	Results   []ResultDoc `json:"results"`
}

// ResultDoc is one matching entity.
type ResultDoc struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     string       `json:"type"`
	Sections []SectionDoc `json:"sections"`
}

// SectionDoc lists the names matched in one configuration section.
type SectionDoc struct {
	Name  string   `json:"name"`
	Names []string `json:"names"`
}

// NewDocument converts results, preserving result, section and name order.
func NewDocument(projectID, term string, results search.Results) Document {
	doc := Document{
		ProjectID: projectID,
		Term:      term,
		Results:   make([]ResultDoc, 0, len(results)),
	}
	for _, r := range results {
		rd := ResultDoc{
			ID:       r.ExternalID,
			Name:     r.FullName,
			Type:     r.Type.String(),
			Sections: make([]SectionDoc, 0, r.Sections.Len()),
		}
		for _, s := range r.Sections.All() {
			names := append([]string(nil), s.Names.Names()...)
			rd.Sections = append(rd.Sections, SectionDoc{Name: s.Name, Names: names})
		}
		doc.Results = append(doc.Results, rd)
	}
	return doc
}

// Renderer writes a document in one format.
type Renderer func(w io.Writer, doc Document) error

// Format names accepted by ByFormat.
const (
	FormatText = "text"
	FormatXML  = "xml"
	FormatJSON = "json"
)

var renderers = map[string]Renderer{
	FormatXML:  XML,
	FormatJSON: JSON,
	FormatText: func(w io.Writer, doc Document) error { return Text(w, doc, TextOptions{}) },
}

// Formats returns the supported format names, sorted.
func Formats() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ByFormat returns the renderer registered under name.
func ByFormat(name string) (Renderer, error) {
	r, ok := renderers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown output format %q: must be one of %s", name, strings.Join(Formats(), ", "))
	}
	return r, nil
}
