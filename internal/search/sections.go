package search

// Section labels, in the wording shown to users.
const (
	SectionGeneral       = "General Settings"
	SectionVCS           = "Version Control Settings"
	SectionParameters    = "Parameters"
	SectionBuildSteps    = "Build Steps"
	SectionBuildFeatures = "Build Features"
	SectionFailure       = "Failure Conditions"
	SectionDependencies  = "Dependencies"
	SectionRequirements  = "Agent Requirements"
)

// DefaultVCSOptions are the option keys reported under SectionVCS. Every
// other own option is reported under SectionGeneral.
var DefaultVCSOptions = []string{"branchFilter", "checkoutDirectory"}

// NameSet is a set of names that remembers insertion order.
type NameSet struct {
	names []string
	index map[string]struct{}
}

func newNameSet() *NameSet {
	return &NameSet{index: make(map[string]struct{})}
}

// Add appends name unless it is already present and reports whether it was
// added.
func (s *NameSet) Add(name string) bool {
	if _, ok := s.index[name]; ok {
		return false
	}
	s.index[name] = struct{}{}
	s.names = append(s.names, name)
	return true
}

// Contains reports whether name is in the set.
func (s *NameSet) Contains(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Len returns the number of names.
func (s *NameSet) Len() int { return len(s.names) }

// Names returns the names in insertion order. The slice must not be modified.
func (s *NameSet) Names() []string { return s.names }

// Section is one entry of Sections.
type Section struct {
	Name  string
	Names *NameSet
}

// Sections maps a section label to the names matched in it, keeping sections
// in the order they were first populated.
type Sections struct {
	entries []*Section
	index   map[string]*Section
}

func newSections() *Sections {
	return &Sections{index: make(map[string]*Section)}
}

// Add records names under section. Sections are created on first use and
// names already recorded under the section are skipped.
func (s *Sections) Add(section string, names []string) {
	if len(names) == 0 {
		return
	}
	entry, ok := s.index[section]
	if !ok {
		entry = &Section{Name: section, Names: newNameSet()}
		s.index[section] = entry
		s.entries = append(s.entries, entry)
	}
	for _, n := range names {
		entry.Names.Add(n)
	}
}

// Get returns the names recorded under section, or nil.
func (s *Sections) Get(section string) []string {
	if entry, ok := s.index[section]; ok {
		return entry.Names.Names()
	}
	return nil
}

// Keys returns the section labels in insertion order.
func (s *Sections) Keys() []string {
	keys := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		keys = append(keys, e.Name)
	}
	return keys
}

// All returns the sections in insertion order.
func (s *Sections) All() []*Section { return s.entries }

// Len returns the number of populated sections.
func (s *Sections) Len() int { return len(s.entries) }
