package config

import (
	"fmt"
	"os"
	"regexp"

	"github.com/BurntSushi/toml"
	"github.com/specialistvlad/usagesearch/internal/search"
)

// DefaultMinTermLength is the shortest search term the service accepts.
const DefaultMinTermLength = 2

// Settings holds the service configuration loaded from a TOML file.
type Settings struct {
	Projects ProjectsSettings `toml:"projects"`
	Search   SearchSettings   `toml:"search"`
	Server   ServerSettings   `toml:"server"`
	Log      LogSettings      `toml:"log"`
}

// ProjectsSettings lists where project definitions are read from.
type ProjectsSettings struct {
	Paths []string `toml:"paths"`
}

// SearchSettings tunes the search.
type SearchSettings struct {
	MinLength  int      `toml:"min_length"`
	VCSOptions []string `toml:"vcs_options"`
}

// ServerSettings configures the HTTP endpoints.
type ServerSettings struct {
	ListenPort      int    `toml:"listen_port"`
	HealthcheckPort int    `toml:"healthcheck_port"`
	RemoteURL       string `toml:"remote_url"`
}

// LogSettings configures logging.
type LogSettings struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// DefaultSettings returns the settings used when no file is given.
func DefaultSettings() *Settings {
	return &Settings{
		Search: SearchSettings{
			MinLength:  DefaultMinTermLength,
			VCSOptions: append([]string(nil), search.DefaultVCSOptions...),
		},
		Log: LogSettings{Level: "info", Format: "json"},
	}
}

// LoadSettings reads a TOML file at path on top of DefaultSettings.
// Environment variables referenced as ${VAR_NAME} in string values are
// expanded.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file: %w", err)
	}

	cfg := DefaultSettings()
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parse settings: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("parse settings: unknown key %q", undecoded[0].String())
	}

	for i, p := range cfg.Projects.Paths {
		cfg.Projects.Paths[i] = expandEnvVars(p)
	}
	cfg.Server.RemoteURL = expandEnvVars(cfg.Server.RemoteURL)

	if cfg.Search.MinLength < 0 {
		return nil, fmt.Errorf("parse settings: search.min_length must not be negative")
	}
	return cfg, nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars replaces ${VAR_NAME} with the value of the environment
// variable. Unset variables expand to the empty string.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		name := envVarPattern.FindStringSubmatch(match)[1]
		return os.Getenv(name)
	})
}
