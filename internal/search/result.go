package search

import "github.com/specialistvlad/usagesearch/internal/model"

// Result describes one entity that references the searched parameter.
type Result struct {
	ExternalID string
	FullName   string
	Type       model.EntityType
	Sections   *Sections
}

// NewResult creates an empty result for an entity.
func NewResult(externalID, fullName string, typ model.EntityType) *Result {
	return &Result{
		ExternalID: externalID,
		FullName:   fullName,
		Type:       typ,
		Sections:   newSections(),
	}
}

func resultFor(e model.Entity) *Result {
	return NewResult(e.ExternalID(), e.FullName(), e.Type())
}

// NamesFor records names matched in section. Empty name lists are ignored.
func (r *Result) NamesFor(section string, names []string) {
	r.Sections.Add(section, names)
}

// HasMatches reports whether any name was recorded.
func (r *Result) HasMatches() bool {
	return r.Sections.Len() > 0
}

// Results is the ordered outcome of a search.
type Results []*Result
