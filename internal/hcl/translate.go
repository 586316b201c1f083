package hcl

import (
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/usagesearch/internal/config"
	"github.com/specialistvlad/usagesearch/internal/model"
)

// translateProject converts a decoded project block, including nested
// projects, into its declaration.
func (l *Loader) translateProject(source string, b *projectBlock) (*config.ProjectDecl, hcl.Diagnostics) {
	params, diags := evalParameters(b.Params)

	decl := &config.ProjectDecl{
		ID:     b.ID,
		Name:   b.Name,
		Parent: b.Parent,
		Source: source,
		Params: params,
	}
	for _, t := range b.Templates {
		s, d := l.translateSettings(source, t)
		diags = append(diags, d...)
		decl.Templates = append(decl.Templates, s)
	}
	for _, bt := range b.BuildTypes {
		s, d := l.translateSettings(source, bt)
		diags = append(diags, d...)
		decl.BuildTypes = append(decl.BuildTypes, s)
	}
	for _, sub := range b.Projects {
		p, d := l.translateProject(source, sub)
		diags = append(diags, d...)
		decl.Projects = append(decl.Projects, p)
	}
	return decl, diags
}

// translateSettings converts a build_type or template block.
func (l *Loader) translateSettings(source string, b *settingsBlock) (*config.SettingsDecl, hcl.Diagnostics) {
	decl := &config.SettingsDecl{
		ID:        b.ID,
		Name:      b.Name,
		Templates: b.Templates,
		Source:    source,
	}

	options, diags := evalOrderedMap(b.Options)
	decl.Options = options

	params, d := evalParameters(b.Params)
	diags = append(diags, d...)
	decl.Params = params

	for _, s := range b.Steps {
		p, d := evalParameters(s.Params)
		diags = append(diags, d...)
		decl.Runners = append(decl.Runners, model.Runner{ID: s.ID, Name: s.Name, Type: s.Type, Parameters: p})
	}
	for _, f := range inDeclaredOrder(b.Features, b.FailureConditions) {
		decl.Features = append(decl.Features, l.translateFeature(f.block, f.kind, &diags))
	}
	for _, dep := range b.SnapshotDeps {
		opts, d := evalOrderedMap(dep.Options)
		diags = append(diags, d...)
		decl.Dependencies = append(decl.Dependencies, model.Dependency{SourceBuildTypeID: dep.Source, Options: opts})
	}
	for _, dep := range b.ArtifactDeps {
		decl.ArtifactDependencies = append(decl.ArtifactDependencies, model.ArtifactDependency{
			SourceBuildTypeID: dep.Source,
			SourcePaths:       dep.Paths,
		})
	}
	for _, r := range b.Requirements {
		decl.Requirements = append(decl.Requirements, model.Requirement{Property: r.Property, Type: r.Type, Value: r.Value})
	}
	return decl, diags
}

func (l *Loader) translateFeature(b *descriptorBlock, kind model.FeatureKind, diags *hcl.Diagnostics) model.Feature {
	params, d := evalParameters(b.Params)
	*diags = append(*diags, d...)
	return model.Feature{ID: b.ID, Type: b.Type, Kind: kind, Parameters: params}
}

type featureBlock struct {
	block *descriptorBlock
	kind  model.FeatureKind
}

// inDeclaredOrder merges feature and failure_condition blocks back into the
// order they appear in the file.
func inDeclaredOrder(features, failureConditions []*descriptorBlock) []featureBlock {
	out := make([]featureBlock, 0, len(features)+len(failureConditions))
	for _, f := range features {
		out = append(out, featureBlock{block: f, kind: model.FeatureGeneral})
	}
	for _, f := range failureConditions {
		out = append(out, featureBlock{block: f, kind: model.FeatureFailureCondition})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return blockOffset(out[i].block) < blockOffset(out[j].block)
	})
	return out
}

func blockOffset(b *descriptorBlock) int {
	if b.Body == nil {
		return 0
	}
	return b.Body.MissingItemRange().Start.Byte
}
