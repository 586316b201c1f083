package render

import (
	"encoding/xml"
	"fmt"
	"io"
)

type xmlResponse struct {
	XMLName xml.Name    `xml:"response"`
	Results []xmlResult `xml:"result"`
}

type xmlResult struct {
	ID       string       `xml:"id,attr"`
	Name     string       `xml:"name,attr"`
	Type     string       `xml:"type,attr,omitempty"`
	Sections []xmlSection `xml:"section"`
}

type xmlSection struct {
	Name  string    `xml:"name,attr"`
	Names []xmlName `xml:"name"`
}

type xmlName struct {
	Value string `xml:"value,attr"`
}

// XML writes the document as
// <response><result id name type><section name><name value/></section></result></response>.
func XML(w io.Writer, doc Document) error {
	resp := xmlResponse{Results: make([]xmlResult, 0, len(doc.Results))}
	for _, r := range doc.Results {
		xr := xmlResult{ID: r.ID, Name: r.Name, Type: r.Type}
		for _, s := range r.Sections {
			xs := xmlSection{Name: s.Name}
			for _, n := range s.Names {
				xs.Names = append(xs.Names, xmlName{Value: n})
			}
			xr.Sections = append(xr.Sections, xs)
		}
		resp.Results = append(resp.Results, xr)
	}

	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(resp); err != nil {
		return fmt.Errorf("failed to encode XML response: %w", err)
	}
	return enc.Close()
}
