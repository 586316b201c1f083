// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the in-memory build types and templates. Both share the
// same configuration surface; a build type may additionally be based on
// templates, from which it inherits.
package model

// surface is the configuration shared by build types and templates.
type surface struct {
	id           string
	name         string
	project      *ProjectNode
	options      []Option
	params       []Parameter
	runners      []Runner
	features     []Feature
	deps         []Dependency
	artifactDeps []ArtifactDependency
	requirements []Requirement
}

func (s *surface) ExternalID() string { return s.id }
func (s *surface) Name() string       { return s.name }

// FullName is the entity name prefixed by the full name of its project.
func (s *surface) FullName() string {
	if s.project == nil {
		return s.name
	}
	return s.project.FullName() + FullNameSeparator + s.name
}

// Project returns the project the entity is declared in, or nil.
func (s *surface) Project() *ProjectNode { return s.project }

func (s *surface) OwnOptions() ([]Option, error)       { return s.options, nil }
func (s *surface) OwnParameters() ([]Parameter, error) { return s.params, nil }
func (s *surface) BuildRunners() ([]Runner, error)     { return s.runners, nil }
func (s *surface) BuildFeatures() ([]Feature, error)   { return s.features, nil }
func (s *surface) Requirements() ([]Requirement, error) {
	return s.requirements, nil
}
func (s *surface) OwnDependencies() ([]Dependency, error) { return s.deps, nil }
func (s *surface) ArtifactDependencies() ([]ArtifactDependency, error) {
	return s.artifactDeps, nil
}

// SetOption defines or redefines an own option.
func (s *surface) SetOption(o Option) {
	for i := range s.options {
		if s.options[i].Key == o.Key {
			s.options[i] = o
			return
		}
	}
	s.options = append(s.options, o)
}

// AddParameter defines or redefines an own parameter.
func (s *surface) AddParameter(name, value string) {
	s.params = setParameter(s.params, name, value)
}

func (s *surface) AddRunner(r Runner)         { s.runners = append(s.runners, r) }
func (s *surface) AddFeature(f Feature)       { s.features = append(s.features, f) }
func (s *surface) AddDependency(d Dependency) { s.deps = append(s.deps, d) }
func (s *surface) AddArtifactDependency(d ArtifactDependency) {
	s.artifactDeps = append(s.artifactDeps, d)
}
func (s *surface) AddRequirement(r Requirement) { s.requirements = append(s.requirements, r) }

// Template is a build configuration template.
type Template struct {
	surface
}

// NewTemplate creates a detached template.
func NewTemplate(id, name string) *Template {
	return &Template{surface: surface{id: id, name: name}}
}

func (t *Template) Type() EntityType { return EntityTemplate }

// BuildType is a build configuration.
type BuildType struct {
	surface
	templates []*Template
}

// NewBuildType creates a detached build type.
func NewBuildType(id, name string) *BuildType {
	return &BuildType{surface: surface{id: id, name: name}}
}

func (bt *BuildType) Type() EntityType { return EntityBuild }

// AttachTemplate bases the build type on t. Templates attached later take
// precedence over earlier ones when parameters are resolved.
func (bt *BuildType) AttachTemplate(t *Template) {
	bt.templates = append(bt.templates, t)
}

// Templates returns the templates the build type is based on.
func (bt *BuildType) Templates() []*Template { return bt.templates }

// Parameters returns the effective parameters of the build type: project
// parameters, then template parameters, then its own.
func (bt *BuildType) Parameters() []Parameter {
	var out []Parameter
	if bt.project != nil {
		out = bt.project.Parameters()
	}
	for _, t := range bt.templates {
		out = mergeParameters(out, t.params)
	}
	return mergeParameters(out, bt.params)
}

var (
	_ Settings = (*BuildType)(nil)
	_ Settings = (*Template)(nil)
	_ Project  = (*ProjectNode)(nil)
)
