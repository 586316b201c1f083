// Package config defines how project hierarchies and service settings get
// into the application.
//
// Loader is the format-agnostic contract implemented by the HCL and YAML
// packages; Chain combines them so a single path may mix both formats.
// Settings is the optional TOML file holding service defaults that CLI flags
// override.
package config
