package config

import (
	"context"
	"fmt"

	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/model"
)

// ProjectDecl is the format-agnostic representation of a `project` block.
type ProjectDecl struct {
	ID     string
	Name   string
	Parent string // attaches a top-level declaration under another project
	Source string // file the declaration came from, for error messages

	Params     []model.Parameter
	Templates  []*SettingsDecl
	BuildTypes []*SettingsDecl
	Projects   []*ProjectDecl
}

// SettingsDecl is the format-agnostic representation of a `build_type` or
// `template` block.
type SettingsDecl struct {
	ID        string
	Name      string
	Templates []string // build types only
	Source    string

	Options              []model.Option
	Params               []model.Parameter
	Runners              []model.Runner
	Features             []model.Feature
	Dependencies         []model.Dependency
	ArtifactDependencies []model.ArtifactDependency
	Requirements         []model.Requirement
}

// Assemble turns declarations into project hierarchies. Top-level
// declarations with a Parent are attached, in order, as the last sub-project
// of that parent; the others become roots. Build types are then linked to
// the templates they name, looked up in their project and its ancestors.
func Assemble(ctx context.Context, decls []*ProjectDecl) ([]*model.ProjectNode, error) {
	logger := ctxlog.FromContext(ctx)

	a := &assembler{
		projects: make(map[string]*model.ProjectNode),
		settings: make(map[string]string),
	}

	built := make([]*model.ProjectNode, 0, len(decls))
	for _, d := range decls {
		p, err := a.project(d)
		if err != nil {
			return nil, err
		}
		built = append(built, p)
	}

	var roots []*model.ProjectNode
	for i, d := range decls {
		if d.Parent == "" {
			roots = append(roots, built[i])
			continue
		}
		parent, ok := a.projects[d.Parent]
		if !ok {
			return nil, fmt.Errorf("%s: project %q: unknown parent project %q", d.Source, d.ID, d.Parent)
		}
		if isWithin(parent, built[i]) {
			return nil, fmt.Errorf("%s: project %q: parent %q is one of its own sub-projects", d.Source, d.ID, d.Parent)
		}
		parent.AddProject(built[i])
	}

	for _, link := range a.links {
		owner := link.buildType.Project()
		for _, id := range link.templates {
			t, ok := owner.FindTemplate(id)
			if !ok {
				return nil, fmt.Errorf("%s: build type %q: unknown template %q", link.source, link.buildType.ExternalID(), id)
			}
			link.buildType.AttachTemplate(t)
		}
	}

	logger.Debug("Project declarations assembled.", "roots", len(roots), "projects", len(a.projects), "build_types", len(a.settings))
	return roots, nil
}

type templateLink struct {
	buildType *model.BuildType
	templates []string
	source    string
}

type assembler struct {
	projects map[string]*model.ProjectNode
	settings map[string]string // build type and template ids -> source
	links    []templateLink
}

func (a *assembler) project(d *ProjectDecl) (*model.ProjectNode, error) {
	if d.ID == "" {
		return nil, fmt.Errorf("%s: project without an id", d.Source)
	}
	if _, exists := a.projects[d.ID]; exists {
		return nil, fmt.Errorf("%s: duplicate project id %q", d.Source, d.ID)
	}

	p := model.NewProject(d.ID, nameOrID(d.Name, d.ID))
	a.projects[d.ID] = p
	for _, param := range d.Params {
		p.AddParameter(param.Name, param.Value)
	}

	for _, td := range d.Templates {
		if len(td.Templates) > 0 {
			return nil, fmt.Errorf("%s: template %q cannot be based on other templates", td.Source, td.ID)
		}
		if err := a.claim(td); err != nil {
			return nil, err
		}
		t := model.NewTemplate(td.ID, nameOrID(td.Name, td.ID))
		fill(t, td)
		p.AddTemplate(t)
	}

	for _, bd := range d.BuildTypes {
		if err := a.claim(bd); err != nil {
			return nil, err
		}
		bt := model.NewBuildType(bd.ID, nameOrID(bd.Name, bd.ID))
		fill(bt, bd)
		p.AddBuildType(bt)
		if len(bd.Templates) > 0 {
			a.links = append(a.links, templateLink{buildType: bt, templates: bd.Templates, source: bd.Source})
		}
	}

	for _, cd := range d.Projects {
		if cd.Parent != "" && cd.Parent != d.ID {
			return nil, fmt.Errorf("%s: nested project %q declares parent %q but is nested in %q", cd.Source, cd.ID, cd.Parent, d.ID)
		}
		child, err := a.project(cd)
		if err != nil {
			return nil, err
		}
		p.AddProject(child)
	}
	return p, nil
}

func (a *assembler) claim(d *SettingsDecl) error {
	if d.ID == "" {
		return fmt.Errorf("%s: build configuration without an id", d.Source)
	}
	if prev, exists := a.settings[d.ID]; exists {
		return fmt.Errorf("%s: duplicate build configuration id %q (first declared in %s)", d.Source, d.ID, prev)
	}
	a.settings[d.ID] = d.Source
	return nil
}

// surface is implemented by *model.BuildType and *model.Template.
type surface interface {
	SetOption(model.Option)
	AddParameter(name, value string)
	AddRunner(model.Runner)
	AddFeature(model.Feature)
	AddDependency(model.Dependency)
	AddArtifactDependency(model.ArtifactDependency)
	AddRequirement(model.Requirement)
}

func fill(s surface, d *SettingsDecl) {
	for _, o := range d.Options {
		s.SetOption(o)
	}
	for _, p := range d.Params {
		s.AddParameter(p.Name, p.Value)
	}
	for _, r := range d.Runners {
		s.AddRunner(r)
	}
	for _, f := range d.Features {
		s.AddFeature(f)
	}
	for _, dep := range d.Dependencies {
		s.AddDependency(dep)
	}
	for _, dep := range d.ArtifactDependencies {
		s.AddArtifactDependency(dep)
	}
	for _, r := range d.Requirements {
		s.AddRequirement(r)
	}
}

func nameOrID(name, id string) string {
	if name == "" {
		return id
	}
	return name
}

// isWithin reports whether p is root or one of its descendants.
func isWithin(p, root *model.ProjectNode) bool {
	for cur := p; cur != nil; cur = cur.Parent() {
		if cur == root {
			return true
		}
	}
	return false
}
