// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the accessor capability set the search engine reads from.
//
// The search never walks concrete structs. It asks an Entity for its own
// options, parameters, steps and so on through the Settings and Project
// interfaces, so any source of configuration (files, a remote server, test
// fakes) can be searched as long as it can answer those questions. Every
// accessor may fail; a failure aborts the search of the whole tree.
package model

import "fmt"

// EntityType discriminates the kind of an entity. It is only used to label
// search results.
type EntityType int

const (
	// EntityProject is a project, the container of build types and templates.
	EntityProject EntityType = iota
	// EntityBuild is a build configuration.
	EntityBuild
	// EntityTemplate is a build configuration template.
	EntityTemplate
)

// String returns the wire name of the entity type.
func (t EntityType) String() string {
	switch t {
	case EntityProject:
		return "PROJECT"
	case EntityBuild:
		return "BUILD"
	case EntityTemplate:
		return "TEMPLATE"
	default:
		return fmt.Sprintf("EntityType(%d)", int(t))
	}
}

// ParseEntityType is the inverse of EntityType.String.
func ParseEntityType(s string) (EntityType, error) {
	switch s {
	case "PROJECT":
		return EntityProject, nil
	case "BUILD":
		return EntityBuild, nil
	case "TEMPLATE":
		return EntityTemplate, nil
	}
	return 0, fmt.Errorf("unknown entity type %q", s)
}

// Entity is anything that can appear in a search result.
type Entity interface {
	ExternalID() string
	FullName() string
	Type() EntityType
}

// Settings is the configuration surface shared by build types and templates.
// Only values defined directly on the entity are returned by the Own*
// accessors; inherited values are never included.
type Settings interface {
	Entity

	OwnOptions() ([]Option, error)
	OwnParameters() ([]Parameter, error)
	BuildRunners() ([]Runner, error)
	BuildFeatures() ([]Feature, error)
	OwnDependencies() ([]Dependency, error)
	ArtifactDependencies() ([]ArtifactDependency, error)
	Requirements() ([]Requirement, error)
}

// Project is a node of the project hierarchy. The model guarantees a project
// is never its own ancestor.
type Project interface {
	Entity

	OwnParameters() ([]Parameter, error)
	OwnTemplates() ([]Settings, error)
	OwnBuildTypes() ([]Settings, error)
	OwnProjects() ([]Project, error)
}
