package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/specialistvlad/usagesearch/internal/render"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPaths []string // hcl and yaml files or directories

	ProjectID string
	ParamName string
	Format    string
	NoColor   bool

	ListenPort      int // 0 runs a single search and exits
	HealthcheckPort int
	RemoteURL       string

	MinTermLength int
	VCSOptions    []string

	ListReferences   bool   // list every reference below ProjectID instead of searching
	ResolveBuildType string // print the effective parameters of this build type

	LogFormat string
	LogLevel  string
}

// Serving reports whether the app runs the search server.
func (c *Config) Serving() bool {
	return c.ListenPort > 0
}

// diagnostic reports whether the app runs a diagnostic instead of a search.
func (c *Config) diagnostic() bool {
	return c.ListReferences || c.ResolveBuildType != ""
}

// NewConfig validates cfg and returns a copy with defaults applied.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.Format == "" {
		cfg.Format = render.FormatText
	}
	cfg.Format = strings.ToLower(cfg.Format)
	if _, err := render.ByFormat(cfg.Format); err != nil {
		return nil, err
	}
	if cfg.MinTermLength < 0 {
		return nil, errors.New("minimum term length must not be negative")
	}
	if cfg.ListenPort < 0 || cfg.ListenPort > 65535 {
		return nil, fmt.Errorf("invalid listen port %d", cfg.ListenPort)
	}

	switch {
	case cfg.RemoteURL != "":
		if cfg.Serving() {
			return nil, errors.New("a remote search cannot be combined with a listen port")
		}
	case len(cfg.ProjectPaths) == 0:
		return nil, errors.New("at least one project path is required")
	}

	if cfg.diagnostic() {
		switch {
		case cfg.ListReferences && cfg.ResolveBuildType != "":
			return nil, errors.New("only one diagnostic can run at a time")
		case cfg.RemoteURL != "" || cfg.Serving():
			return nil, errors.New("diagnostics need locally loaded projects")
		case cfg.Format != render.FormatText && cfg.Format != render.FormatJSON:
			return nil, fmt.Errorf("diagnostics support the %s and %s formats", render.FormatText, render.FormatJSON)
		case cfg.ListReferences && cfg.ProjectID == "":
			return nil, errors.New("a project id is required to list references")
		}
		return &cfg, nil
	}

	if !cfg.Serving() {
		if cfg.ProjectID == "" {
			return nil, errors.New("a project id is required for a search")
		}
		if cfg.ParamName == "" {
			return nil, errors.New("a parameter name is required for a search")
		}
	}
	return &cfg, nil
}
