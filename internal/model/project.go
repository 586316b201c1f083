// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file holds the in-memory implementation of the project hierarchy that
// the loaders build and the search reads.
//
// Why keep parents and templates around?
//
// The search only looks at own values, but users reason about effective
// values. Keeping the links lets Parameters resolve what a build actually
// sees, which is how the difference between "own" and "inherited" is shown
// and tested.
package model

// FullNameSeparator joins the names of nested entities into a full name.
const FullNameSeparator = " :: "

// ProjectNode is a project of the in-memory hierarchy.
type ProjectNode struct {
	id         string
	name       string
	parent     *ProjectNode
	params     []Parameter
	templates  []*Template
	buildTypes []*BuildType
	children   []*ProjectNode
}

// NewProject creates a detached project.
func NewProject(id, name string) *ProjectNode {
	return &ProjectNode{id: id, name: name}
}

func (p *ProjectNode) ExternalID() string { return p.id }
func (p *ProjectNode) Name() string       { return p.name }
func (p *ProjectNode) Type() EntityType   { return EntityProject }

// FullName is the project name prefixed by the names of its ancestors.
func (p *ProjectNode) FullName() string {
	if p.parent == nil {
		return p.name
	}
	return p.parent.FullName() + FullNameSeparator + p.name
}

// Parent returns the parent project, or nil for a root.
func (p *ProjectNode) Parent() *ProjectNode { return p.parent }

func (p *ProjectNode) OwnParameters() ([]Parameter, error) {
	return p.params, nil
}

func (p *ProjectNode) OwnTemplates() ([]Settings, error) {
	out := make([]Settings, 0, len(p.templates))
	for _, t := range p.templates {
		out = append(out, t)
	}
	return out, nil
}

func (p *ProjectNode) OwnBuildTypes() ([]Settings, error) {
	out := make([]Settings, 0, len(p.buildTypes))
	for _, bt := range p.buildTypes {
		out = append(out, bt)
	}
	return out, nil
}

func (p *ProjectNode) OwnProjects() ([]Project, error) {
	out := make([]Project, 0, len(p.children))
	for _, c := range p.children {
		out = append(out, c)
	}
	return out, nil
}

// Templates returns the concrete templates declared on this project.
func (p *ProjectNode) Templates() []*Template { return p.templates }

// BuildTypes returns the concrete build types declared on this project.
func (p *ProjectNode) BuildTypes() []*BuildType { return p.buildTypes }

// Children returns the concrete sub-projects.
func (p *ProjectNode) Children() []*ProjectNode { return p.children }

// AddParameter defines or redefines an own parameter.
func (p *ProjectNode) AddParameter(name, value string) {
	p.params = setParameter(p.params, name, value)
}

// AddProject attaches child as the last sub-project.
func (p *ProjectNode) AddProject(child *ProjectNode) {
	child.parent = p
	p.children = append(p.children, child)
}

// AddTemplate attaches t as the last own template.
func (p *ProjectNode) AddTemplate(t *Template) {
	t.project = p
	p.templates = append(p.templates, t)
}

// AddBuildType attaches bt as the last own build type.
func (p *ProjectNode) AddBuildType(bt *BuildType) {
	bt.project = p
	p.buildTypes = append(p.buildTypes, bt)
}

// Parameters returns the effective parameters of the project: those of its
// ancestors, root first, overridden by its own.
func (p *ProjectNode) Parameters() []Parameter {
	var chain []*ProjectNode
	for cur := p; cur != nil; cur = cur.parent {
		chain = append(chain, cur)
	}
	var out []Parameter
	for i := len(chain) - 1; i >= 0; i-- {
		out = mergeParameters(out, chain[i].params)
	}
	return out
}

// FindTemplate looks a template up by external id in this project and then
// in its ancestors, which is the scope a build type can attach templates from.
func (p *ProjectNode) FindTemplate(id string) (*Template, bool) {
	for cur := p; cur != nil; cur = cur.parent {
		for _, t := range cur.templates {
			if t.id == id {
				return t, true
			}
		}
	}
	return nil, false
}

// Walk calls fn for p and every project below it in pre-order.
func (p *ProjectNode) Walk(fn func(*ProjectNode)) {
	fn(p)
	for _, c := range p.children {
		c.Walk(fn)
	}
}

func setParameter(params []Parameter, name, value string) []Parameter {
	for i := range params {
		if params[i].Name == name {
			params[i].Value = value
			return params
		}
	}
	return append(params, Parameter{Name: name, Value: value})
}

func mergeParameters(base, overrides []Parameter) []Parameter {
	for _, o := range overrides {
		base = setParameter(base, o.Name, o.Value)
	}
	return base
}
