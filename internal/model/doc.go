// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev
//
// Package model provides the Go representation of a build server's
// configuration hierarchy: projects that contain sub-projects, build
// configuration templates and build configurations.
//
// # Core Concepts
//
// The model is built around a few key structures:
//
//   - ProjectNode: A project. It owns parameters, templates, build types and
//     sub-projects, and resolves inherited parameters through its ancestors.
//
//   - Template: A reusable set of settings that build types can be based on.
//
//   - BuildType: A build configuration. Its effective parameters layer the
//     project's, then its templates', then its own.
//
//   - Option, Runner, Feature, Dependency, Requirement: The settings surfaces
//     whose values may reference parameters with %name% syntax.
//
// Why a separate model package?
//
// The search reads entities only through the Entity, Settings and Project
// interfaces. The concrete nodes here are one implementation, assembled from
// project files by the config package; tests and other sources can provide
// their own.
package model
