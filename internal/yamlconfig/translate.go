package yamlconfig

import (
	"fmt"
	"sort"

	"github.com/specialistvlad/usagesearch/internal/config"
	"github.com/specialistvlad/usagesearch/internal/model"
	"gopkg.in/yaml.v3"
)

func translateProject(source string, p *projectDoc) (*config.ProjectDecl, error) {
	if p.ID == "" {
		return nil, fmt.Errorf("project without id")
	}
	params, err := parameters(&p.Params, "params")
	if err != nil {
		return nil, fmt.Errorf("project %q: %w", p.ID, err)
	}

	decl := &config.ProjectDecl{
		ID:     p.ID,
		Name:   p.Name,
		Parent: p.Parent,
		Source: source,
		Params: params,
	}
	for _, t := range p.Templates {
		s, err := translateSettings(source, t)
		if err != nil {
			return nil, fmt.Errorf("project %q: template: %w", p.ID, err)
		}
		decl.Templates = append(decl.Templates, s)
	}
	for _, bt := range p.BuildTypes {
		s, err := translateSettings(source, bt)
		if err != nil {
			return nil, fmt.Errorf("project %q: build type: %w", p.ID, err)
		}
		decl.BuildTypes = append(decl.BuildTypes, s)
	}
	for _, sub := range p.Projects {
		d, err := translateProject(source, sub)
		if err != nil {
			return nil, fmt.Errorf("project %q: %w", p.ID, err)
		}
		decl.Projects = append(decl.Projects, d)
	}
	return decl, nil
}

func translateSettings(source string, s *settingsDoc) (*config.SettingsDecl, error) {
	if s.ID == "" {
		return nil, fmt.Errorf("missing id")
	}
	wrap := func(err error) error { return fmt.Errorf("%q: %w", s.ID, err) }

	decl := &config.SettingsDecl{
		ID:        s.ID,
		Name:      s.Name,
		Templates: s.Templates,
		Source:    source,
	}

	var err error
	if decl.Options, err = orderedMap(&s.Options, "options"); err != nil {
		return nil, wrap(err)
	}
	if decl.Params, err = parameters(&s.Params, "params"); err != nil {
		return nil, wrap(err)
	}
	for _, step := range s.Steps {
		r, err := descriptor(step, "step")
		if err != nil {
			return nil, wrap(err)
		}
		decl.Runners = append(decl.Runners, model.Runner{ID: r.ID, Name: r.Name, Type: r.Type, Parameters: r.Parameters})
	}
	features := make([]*descriptorDoc, 0, len(s.Features)+len(s.FailureConditions))
	features = append(append(features, s.Features...), s.FailureConditions...)
	sort.SliceStable(features, func(i, j int) bool {
		return before(&features[i].Type, &features[j].Type)
	})
	failureConditions := make(map[*descriptorDoc]bool, len(s.FailureConditions))
	for _, f := range s.FailureConditions {
		failureConditions[f] = true
	}
	for _, f := range features {
		kind, label := model.FeatureGeneral, "feature"
		if failureConditions[f] {
			kind, label = model.FeatureFailureCondition, "failure condition"
		}
		feat, err := descriptor(f, label)
		if err != nil {
			return nil, wrap(err)
		}
		decl.Features = append(decl.Features, model.Feature{ID: feat.ID, Type: feat.Type, Kind: kind, Parameters: feat.Parameters})
	}
	for _, dep := range s.SnapshotDependencies {
		opts, err := orderedMap(&dep.Options, "snapshot dependency options")
		if err != nil {
			return nil, wrap(err)
		}
		decl.Dependencies = append(decl.Dependencies, model.Dependency{SourceBuildTypeID: dep.Source, Options: opts})
	}
	for _, dep := range s.ArtifactDependencies {
		decl.ArtifactDependencies = append(decl.ArtifactDependencies, model.ArtifactDependency{
			SourceBuildTypeID: dep.Source,
			SourcePaths:       dep.Paths,
		})
	}
	for _, r := range s.Requirements {
		if r.Property == "" {
			return nil, wrap(fmt.Errorf("requirement without property"))
		}
		decl.Requirements = append(decl.Requirements, model.Requirement{Property: r.Property, Type: r.Type, Value: r.Value})
	}
	return decl, nil
}

// descriptor validates a step or feature entry and reads its parameters.
func descriptor(d *descriptorDoc, kind string) (model.Runner, error) {
	if d.Type.Kind == 0 || d.Type.Tag == "!!null" || d.Type.Value == "" {
		return model.Runner{}, fmt.Errorf("%s %q: missing type", kind, d.ID)
	}
	if d.Type.Kind != yaml.ScalarNode {
		return model.Runner{}, fmt.Errorf("%s %q: type must be a string", kind, d.ID)
	}
	params, err := parameters(&d.Params, kind+" params")
	if err != nil {
		return model.Runner{}, fmt.Errorf("%s %q: %w", kind, d.ID, err)
	}
	return model.Runner{ID: d.ID, Name: d.Name, Type: d.Type.Value, Parameters: params}, nil
}

// before orders nodes by their position in the document.
func before(a, b *yaml.Node) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}
