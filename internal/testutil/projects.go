package testutil

import (
	"fmt"

	"github.com/specialistvlad/usagesearch/internal/model"
	"github.com/zclconf/go-cty/cty"
)

// Params turns alternating name/value strings into parameters, keeping order.
func Params(kv ...string) []model.Parameter {
	if len(kv)%2 != 0 {
		panic(fmt.Sprintf("testutil.Params: odd number of arguments: %d", len(kv)))
	}
	out := make([]model.Parameter, 0, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		out = append(out, model.Parameter{Name: kv[i], Value: kv[i+1]})
	}
	return out
}

// ProjectBuilder builds a project fixture.
type ProjectBuilder struct {
	*model.ProjectNode
}

// Project starts a project fixture.
func Project(id, name string) *ProjectBuilder {
	return &ProjectBuilder{ProjectNode: model.NewProject(id, name)}
}

// WithOwnParameters adds own parameters from alternating name/value strings.
func (b *ProjectBuilder) WithOwnParameters(kv ...string) *ProjectBuilder {
	for _, p := range Params(kv...) {
		b.AddParameter(p.Name, p.Value)
	}
	return b
}

func (b *ProjectBuilder) WithSubProject(child *ProjectBuilder) *ProjectBuilder {
	b.AddProject(child.ProjectNode)
	return b
}

func (b *ProjectBuilder) WithBuildType(bt *SettingsBuilder[*model.BuildType]) *ProjectBuilder {
	b.AddBuildType(bt.Entity)
	return b
}

func (b *ProjectBuilder) WithTemplate(t *SettingsBuilder[*model.Template]) *ProjectBuilder {
	b.AddTemplate(t.Entity)
	return b
}

// surfaceMutator is implemented by *model.BuildType and *model.Template.
type surfaceMutator interface {
	model.Settings
	SetOption(model.Option)
	AddParameter(name, value string)
	AddRunner(model.Runner)
	AddFeature(model.Feature)
	AddDependency(model.Dependency)
	AddArtifactDependency(model.ArtifactDependency)
	AddRequirement(model.Requirement)
}

// SettingsBuilder builds a build type or template fixture.
type SettingsBuilder[T surfaceMutator] struct {
	Entity T
}

// BuildType starts a build type fixture.
func BuildType(id, name string) *SettingsBuilder[*model.BuildType] {
	return &SettingsBuilder[*model.BuildType]{Entity: model.NewBuildType(id, name)}
}

// Template starts a template fixture.
func Template(id, name string) *SettingsBuilder[*model.Template] {
	return &SettingsBuilder[*model.Template]{Entity: model.NewTemplate(id, name)}
}

func (b *SettingsBuilder[T]) WithOption(key, value string) *SettingsBuilder[T] {
	b.Entity.SetOption(model.StringOption(key, value))
	return b
}

func (b *SettingsBuilder[T]) WithTypedOption(key string, value cty.Value) *SettingsBuilder[T] {
	b.Entity.SetOption(model.Option{Key: key, Value: value})
	return b
}

func (b *SettingsBuilder[T]) WithOwnParameters(kv ...string) *SettingsBuilder[T] {
	for _, p := range Params(kv...) {
		b.Entity.AddParameter(p.Name, p.Value)
	}
	return b
}

func (b *SettingsBuilder[T]) WithBuildRunner(kv ...string) *SettingsBuilder[T] {
	b.Entity.AddRunner(model.Runner{Type: "simpleRunner", Parameters: Params(kv...)})
	return b
}

func (b *SettingsBuilder[T]) WithBuildFeature(kv ...string) *SettingsBuilder[T] {
	b.Entity.AddFeature(model.Feature{Type: "General", Parameters: Params(kv...)})
	return b
}

func (b *SettingsBuilder[T]) WithFailureCondition(kv ...string) *SettingsBuilder[T] {
	b.Entity.AddFeature(model.Feature{
		Type:       "BuildFailureOnMessage",
		Kind:       model.FeatureFailureCondition,
		Parameters: Params(kv...),
	})
	return b
}

func (b *SettingsBuilder[T]) WithRequirement(property, value string) *SettingsBuilder[T] {
	b.Entity.AddRequirement(model.Requirement{Property: property, Type: "equals", Value: &value})
	return b
}

// WithValuelessRequirement adds a requirement that carries no value.
func (b *SettingsBuilder[T]) WithValuelessRequirement(property string) *SettingsBuilder[T] {
	b.Entity.AddRequirement(model.Requirement{Property: property, Type: "exists"})
	return b
}

// WithDependency adds a snapshot dependency with options from alternating
// key/value strings.
func (b *SettingsBuilder[T]) WithDependency(source string, kv ...string) *SettingsBuilder[T] {
	dep := model.Dependency{SourceBuildTypeID: source}
	for _, p := range Params(kv...) {
		dep.Options = append(dep.Options, model.StringOption(p.Name, p.Value))
	}
	b.Entity.AddDependency(dep)
	return b
}

func (b *SettingsBuilder[T]) WithArtifactDependency(source, paths string) *SettingsBuilder[T] {
	b.Entity.AddArtifactDependency(model.ArtifactDependency{SourceBuildTypeID: source, SourcePaths: paths})
	return b
}

// BasedOn attaches a template to a build type fixture. It panics for
// template fixtures.
func (b *SettingsBuilder[T]) BasedOn(t *SettingsBuilder[*model.Template]) *SettingsBuilder[T] {
	bt, ok := any(b.Entity).(*model.BuildType)
	if !ok {
		panic("testutil: only build types can be based on a template")
	}
	bt.AttachTemplate(t.Entity)
	return b
}
