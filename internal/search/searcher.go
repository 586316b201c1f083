// Package search walks a project hierarchy and reports, per entity, which
// parameter references containing a search term appear in which
// configuration section.
//
// Only own values are inspected. A parameter referenced solely through a
// parent project or a template is reported on the entity that defines it,
// never on the entities inheriting it.
package search

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/model"
	"github.com/specialistvlad/usagesearch/internal/reference"
)

// AccessError reports a configuration surface that could not be read. It
// aborts the whole search.
type AccessError struct {
	EntityID   string
	EntityType model.EntityType
	Surface    string
	Err        error
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("failed to read %s of %s %q: %v", e.Surface, e.EntityType, e.EntityID, e.Err)
}

func (e *AccessError) Unwrap() error { return e.Err }

// Searcher finds parameter usages. It is immutable once built and may be
// shared between goroutines.
type Searcher struct {
	vcsOptions map[string]struct{}
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithVCSOptions replaces the set of option keys reported under
// "Version Control Settings".
func WithVCSOptions(keys ...string) Option {
	return func(s *Searcher) {
		s.vcsOptions = make(map[string]struct{}, len(keys))
		for _, k := range keys {
			s.vcsOptions[k] = struct{}{}
		}
	}
}

// New creates a Searcher.
func New(opts ...Option) *Searcher {
	s := &Searcher{}
	WithVCSOptions(DefaultVCSOptions...)(s)
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FindMatches searches root and everything below it with a default Searcher.
func FindMatches(ctx context.Context, term string, root model.Project) (Results, error) {
	return New().FindMatches(ctx, term, root)
}

// FindMatches searches root and everything below it for references whose
// name contains term. Results come in pre-order: a project, its templates,
// its build types, then each sub-project. Entities without matches are left
// out.
func (s *Searcher) FindMatches(ctx context.Context, term string, root model.Project) (Results, error) {
	logger := ctxlog.FromContext(ctx).With("search_term", term)
	logger.Debug("Search started.", "root_project", root.ExternalID())

	w := &walker{
		searcher: s,
		matcher:  reference.NewMatcher(term),
		logger:   logger,
		results:  Results{},
	}
	if err := w.project(root); err != nil {
		logger.Debug("Search aborted.", "error", err)
		return nil, err
	}

	logger.Debug("Search finished.", "visited", w.visited, "matches", len(w.results))
	return w.results, nil
}

func (s *Searcher) optionSection(key string) string {
	if _, ok := s.vcsOptions[key]; ok {
		return SectionVCS
	}
	return SectionGeneral
}

// walker holds the state of a single search.
type walker struct {
	searcher *Searcher
	matcher  *reference.Matcher
	logger   *slog.Logger
	results  Results
	visited  int
}

func (w *walker) collect(r *Result) {
	w.visited++
	if !r.HasMatches() {
		return
	}
	w.logger.Debug("Entity matched.", "entity", r.ExternalID, "type", r.Type.String(), "sections", r.Sections.Keys())
	w.results = append(w.results, r)
}

func (w *walker) project(p model.Project) error {
	result := resultFor(p)
	params, err := p.OwnParameters()
	if err != nil {
		return accessError(p, "parameters", err)
	}
	w.scanParameters(result, SectionParameters, params)
	w.collect(result)

	templates, err := p.OwnTemplates()
	if err != nil {
		return accessError(p, "templates", err)
	}
	for _, t := range templates {
		if err := w.settings(t); err != nil {
			return err
		}
	}

	buildTypes, err := p.OwnBuildTypes()
	if err != nil {
		return accessError(p, "build types", err)
	}
	for _, bt := range buildTypes {
		if err := w.settings(bt); err != nil {
			return err
		}
	}

	children, err := p.OwnProjects()
	if err != nil {
		return accessError(p, "sub-projects", err)
	}
	for _, child := range children {
		if err := w.project(child); err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) settings(e model.Settings) error {
	result := resultFor(e)

	options, err := e.OwnOptions()
	if err != nil {
		return accessError(e, "options", err)
	}
	for _, o := range options {
		result.NamesFor(w.searcher.optionSection(o.Key), w.matcher.MatchingNames(o.String()))
	}

	params, err := e.OwnParameters()
	if err != nil {
		return accessError(e, "parameters", err)
	}
	w.scanParameters(result, SectionParameters, params)

	runners, err := e.BuildRunners()
	if err != nil {
		return accessError(e, "build steps", err)
	}
	for _, r := range runners {
		w.scanParameters(result, SectionBuildSteps, r.Parameters)
	}

	features, err := e.BuildFeatures()
	if err != nil {
		return accessError(e, "build features", err)
	}
	for _, f := range features {
		section := SectionBuildFeatures
		if f.IsFailureCondition() {
			section = SectionFailure
		}
		w.scanParameters(result, section, f.Parameters)
	}

	deps, err := e.OwnDependencies()
	if err != nil {
		return accessError(e, "dependencies", err)
	}
	for _, d := range deps {
		for _, o := range d.Options {
			result.NamesFor(SectionDependencies, w.matcher.MatchingNames(o.String()))
		}
	}

	artifactDeps, err := e.ArtifactDependencies()
	if err != nil {
		return accessError(e, "artifact dependencies", err)
	}
	for _, d := range artifactDeps {
		result.NamesFor(SectionDependencies, w.matcher.MatchingNames(d.SourcePaths))
	}

	requirements, err := e.Requirements()
	if err != nil {
		return accessError(e, "agent requirements", err)
	}
	for _, r := range requirements {
		result.NamesFor(SectionRequirements, w.matcher.MatchingNames(r.PropertyValue()))
	}

	w.collect(result)
	return nil
}

func (w *walker) scanParameters(result *Result, section string, params []model.Parameter) {
	for _, p := range params {
		result.NamesFor(section, w.matcher.MatchingNames(p.Value))
	}
}

func accessError(e model.Entity, surface string, err error) error {
	return &AccessError{
		EntityID:   e.ExternalID(),
		EntityType: e.Type(),
		Surface:    surface,
		Err:        err,
	}
}
