package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// TextOptions controls terminal output.
type TextOptions struct {
	// NoColor disables ANSI colors regardless of the terminal.
	NoColor bool
}

// Text writes one block per result, with one "Uses X, Y in <section>" line
// per section, the way the admin page lists usages.
func Text(w io.Writer, doc Document, opts TextOptions) error {
	name := color.New(color.Bold)
	kind := color.New(color.FgCyan)
	section := color.New(color.FgYellow)
	ref := color.New(color.FgGreen)
	if opts.NoColor {
		for _, c := range []*color.Color{name, kind, section, ref} {
			c.DisableColor()
		}
	}

	if len(doc.Results) == 0 {
		if doc.Term != "" {
			_, err := fmt.Fprintf(w, "No usages of %q found.\n", doc.Term)
			return err
		}
		_, err := fmt.Fprintln(w, "No usages found.")
		return err
	}

	for _, r := range doc.Results {
		if _, err := fmt.Fprintf(w, "%s %s [%s]\n", name.Sprint(r.Name), kind.Sprintf("(%s)", r.Type), r.ID); err != nil {
			return err
		}
		for _, s := range r.Sections {
			names := make([]string, 0, len(s.Names))
			for _, n := range s.Names {
				names = append(names, ref.Sprint(n))
			}
			if _, err := fmt.Fprintf(w, "  Uses %s in %s\n", strings.Join(names, ", "), section.Sprint(s.Name)); err != nil {
				return err
			}
		}
	}
	return nil
}
