package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/specialistvlad/usagesearch/internal/model"
)

// EntityReferences lists every parameter one entity references in its own
// values, in order of first appearance.
type EntityReferences struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Type  string   `json:"type"`
	Names []string `json:"names"`
}

// ResolvedParameters is the effective parameter map of a build type.
type ResolvedParameters struct {
	ID         string
	Name       string
	Parameters []model.Parameter
}

type parameterDoc struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type resolvedDoc struct {
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Parameters []parameterDoc `json:"parameters"`
}

// References writes the reference listing of the -list-references
// diagnostic in the text or json format.
func References(w io.Writer, format string, entries []EntityReferences, opts TextOptions) error {
	if entries == nil {
		entries = []EntityReferences{}
	}
	switch strings.ToLower(format) {
	case FormatJSON:
		return encodeJSON(w, entries)
	case FormatText:
	default:
		return fmt.Errorf("reference listings support the %s and %s formats", FormatText, FormatJSON)
	}

	name, kind, ref := textColors(opts)
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No references found.")
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(w, "%s %s [%s]\n", name.Sprint(e.Name), kind.Sprintf("(%s)", e.Type), e.ID); err != nil {
			return err
		}
		for _, n := range e.Names {
			if _, err := fmt.Fprintf(w, "  %s\n", ref.Sprint(n)); err != nil {
				return err
			}
		}
	}
	return nil
}

// Parameters writes the effective parameters of the -resolve diagnostic in
// the text or json format.
func Parameters(w io.Writer, format string, resolved ResolvedParameters, opts TextOptions) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		doc := resolvedDoc{ID: resolved.ID, Name: resolved.Name, Parameters: make([]parameterDoc, 0, len(resolved.Parameters))}
		for _, p := range resolved.Parameters {
			doc.Parameters = append(doc.Parameters, parameterDoc{Name: p.Name, Value: p.Value})
		}
		return encodeJSON(w, doc)
	case FormatText:
	default:
		return fmt.Errorf("resolved parameters support the %s and %s formats", FormatText, FormatJSON)
	}

	name, kind, ref := textColors(opts)
	if _, err := fmt.Fprintf(w, "%s %s [%s]\n", name.Sprint(resolved.Name), kind.Sprint("(BUILD)"), resolved.ID); err != nil {
		return err
	}
	for _, p := range resolved.Parameters {
		if _, err := fmt.Fprintf(w, "  %s = %s\n", ref.Sprint(p.Name), p.Value); err != nil {
			return err
		}
	}
	return nil
}

func textColors(opts TextOptions) (name, kind, ref *color.Color) {
	name = color.New(color.Bold)
	kind = color.New(color.FgCyan)
	ref = color.New(color.FgGreen)
	if opts.NoColor {
		for _, c := range []*color.Color{name, kind, ref} {
			c.DisableColor()
		}
	}
	return name, kind, ref
}

func encodeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON output: %w", err)
	}
	return nil
}
