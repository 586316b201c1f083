// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// This file defines the plain descriptors hanging off a build type or
// template: parameters, build steps, build features, dependencies and agent
// requirements. They carry data only.
package model

// Parameter is a named configuration parameter.
type Parameter struct {
	Name  string
	Value string
}

// Runner is a build step.
type Runner struct {
	ID         string
	Name       string
	Type       string
	Parameters []Parameter
}

// FeatureKind tells where a build feature is shown to the user.
type FeatureKind int

const (
	// FeatureGeneral is an ordinary build feature.
	FeatureGeneral FeatureKind = iota
	// FeatureFailureCondition is a feature reported among failure conditions.
	FeatureFailureCondition
)

// Feature is a build feature or a failure condition.
type Feature struct {
	ID         string
	Type       string
	Kind       FeatureKind
	Parameters []Parameter
}

// IsFailureCondition reports whether the feature belongs to the failure
// conditions section.
func (f Feature) IsFailureCondition() bool {
	return f.Kind == FeatureFailureCondition
}

// Dependency is a snapshot dependency on another build type.
type Dependency struct {
	SourceBuildTypeID string
	Options           []Option
}

// ArtifactDependency is an artifact dependency on another build type.
type ArtifactDependency struct {
	SourceBuildTypeID string
	SourcePaths       string
}

// Requirement is an agent requirement. Value is nil for requirement types
// that take no value, such as "exists".
type Requirement struct {
	Property string
	Type     string
	Value    *string
}

// PropertyValue returns the requirement value, or the empty string when the
// requirement has none.
func (r Requirement) PropertyValue() string {
	if r.Value == nil {
		return ""
	}
	return *r.Value
}
