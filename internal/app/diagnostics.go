package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/model"
	"github.com/specialistvlad/usagesearch/internal/reference"
	"github.com/specialistvlad/usagesearch/internal/render"
	"github.com/specialistvlad/usagesearch/internal/server"
)

// listReferences prints every parameter referenced below the configured
// project, entity by entity, in search order.
func (a *App) listReferences(ctx context.Context) error {
	logger := ctxlog.FromContext(ctx).With("project_id", a.config.ProjectID)

	root, err := a.projectNode(ctx, a.config.ProjectID)
	if err != nil {
		return err
	}

	var entries []render.EntityReferences
	var walkErr error
	root.Walk(func(p *model.ProjectNode) {
		if walkErr != nil {
			return
		}
		entities := []model.Entity{p}
		for _, t := range p.Templates() {
			entities = append(entities, t)
		}
		for _, bt := range p.BuildTypes() {
			entities = append(entities, bt)
		}
		for _, e := range entities {
			values, err := ownValues(e)
			if err != nil {
				walkErr = fmt.Errorf("failed to read %s %q: %w", e.Type(), e.ExternalID(), err)
				return
			}
			if names := referencedNames(values); len(names) > 0 {
				entries = append(entries, render.EntityReferences{
					ID:    e.ExternalID(),
					Name:  e.FullName(),
					Type:  e.Type().String(),
					Names: names,
				})
			}
		}
	})
	if walkErr != nil {
		return walkErr
	}

	logger.Debug("References listed.", "entities", len(entries))
	return render.References(a.outW, a.config.Format, entries, render.TextOptions{NoColor: a.config.NoColor})
}

// resolveBuildType prints the effective parameters of the configured build
// type.
func (a *App) resolveBuildType(ctx context.Context) error {
	id := a.config.ResolveBuildType
	for _, r := range a.store.Roots(ctx) {
		root, ok := r.(*model.ProjectNode)
		if !ok {
			continue
		}
		var found *model.BuildType
		root.Walk(func(p *model.ProjectNode) {
			for _, bt := range p.BuildTypes() {
				if found == nil && bt.ExternalID() == id {
					found = bt
				}
			}
		})
		if found != nil {
			return render.Parameters(a.outW, a.config.Format, render.ResolvedParameters{
				ID:         found.ExternalID(),
				Name:       found.FullName(),
				Parameters: found.Parameters(),
			}, render.TextOptions{NoColor: a.config.NoColor})
		}
	}
	return fmt.Errorf("build type %q not found", id)
}

func (a *App) projectNode(ctx context.Context, id string) (*model.ProjectNode, error) {
	project, ok := a.store.FindProjectByExternalID(ctx, id)
	if !ok {
		return nil, fmt.Errorf("%w: %q", server.ErrUnknownProject, id)
	}
	node, ok := project.(*model.ProjectNode)
	if !ok {
		return nil, fmt.Errorf("project %q does not support listing references", id)
	}
	return node, nil
}

// ownValues returns every value defined directly on e that may hold a
// reference.
func ownValues(e model.Entity) ([]string, error) {
	switch e := e.(type) {
	case model.Settings:
		return settingsValues(e)
	case model.Project:
		params, err := e.OwnParameters()
		if err != nil {
			return nil, err
		}
		return parameterValues(nil, params), nil
	}
	return nil, nil
}

func settingsValues(s model.Settings) ([]string, error) {
	var values []string

	options, err := s.OwnOptions()
	if err != nil {
		return nil, err
	}
	for _, o := range options {
		values = append(values, o.String())
	}
	params, err := s.OwnParameters()
	if err != nil {
		return nil, err
	}
	values = parameterValues(values, params)

	runners, err := s.BuildRunners()
	if err != nil {
		return nil, err
	}
	for _, r := range runners {
		values = parameterValues(values, r.Parameters)
	}
	features, err := s.BuildFeatures()
	if err != nil {
		return nil, err
	}
	for _, f := range features {
		values = parameterValues(values, f.Parameters)
	}
	deps, err := s.OwnDependencies()
	if err != nil {
		return nil, err
	}
	for _, d := range deps {
		for _, o := range d.Options {
			values = append(values, o.String())
		}
	}
	artifacts, err := s.ArtifactDependencies()
	if err != nil {
		return nil, err
	}
	for _, d := range artifacts {
		values = append(values, d.SourcePaths)
	}
	requirements, err := s.Requirements()
	if err != nil {
		return nil, err
	}
	for _, r := range requirements {
		values = append(values, r.PropertyValue())
	}
	return values, nil
}

func parameterValues(values []string, params []model.Parameter) []string {
	for _, p := range params {
		values = append(values, p.Value)
	}
	return values
}

// referencedNames returns the distinct names referenced in values.
func referencedNames(values []string) []string {
	var names []string
	seen := make(map[string]bool)
	for _, v := range values {
		for _, n := range reference.Names(v) {
			if !seen[n] {
				seen[n] = true
				names = append(names, n)
			}
		}
	}
	return names
}
