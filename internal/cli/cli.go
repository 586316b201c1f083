package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/usagesearch/internal/app"
	"github.com/specialistvlad/usagesearch/internal/config"
	"github.com/specialistvlad/usagesearch/internal/render"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("usagesearch", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
usagesearch - Find where configuration parameters are referenced.

Usage:
  usagesearch [options] [PROJECTS_PATH...]

Arguments:
  PROJECTS_PATH
    Path to a .hcl/.yaml file or a directory containing project definitions.

Examples:
  usagesearch -project Root -param env.JAVA ./projects
  usagesearch -listen 8111 ./projects
  usagesearch -remote http://localhost:8111 -project Root -param env.JAVA
  usagesearch -list-references -project Root ./projects
  usagesearch -resolve Root_Build ./projects

Options:
`)
		flagSet.PrintDefaults()
	}

	projectsFlag := flagSet.String("projects", "", "Path to the project definitions file or directory.")
	pFlag := flagSet.String("p", "", "Path to the project definitions file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to a TOML settings file.")
	projectFlag := flagSet.String("project", "", "External id of the project to search below.")
	paramFlag := flagSet.String("param", "", "Search term matched against referenced parameter names.")
	formatFlag := flagSet.String("format", render.FormatText, "Output format. Options: "+strings.Join(render.Formats(), ", ")+".")
	noColorFlag := flagSet.Bool("no-color", false, "Disable colored text output.")
	listenFlag := flagSet.Int("listen", 0, "Port for the search server. 0 runs a single search and exits.")
	healthPortFlag := flagSet.Int("healthcheck-port", 0, "Port for the HTTP health check server. 0 is disabled.")
	remoteFlag := flagSet.String("remote", "", "URL of a running search server to query instead of loading projects.")
	listRefsFlag := flagSet.Bool("list-references", false, "List every parameter referenced below -project instead of searching.")
	resolveFlag := flagSet.String("resolve", "", "Print the effective parameters of the build type with this id.")
	minLengthFlag := flagSet.Int("min-length", config.DefaultMinTermLength, "Shortest accepted search term.")
	logFormatFlag := flagSet.String("log-format", "json", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	settings := config.DefaultSettings()
	if *configFlag != "" {
		loaded, err := config.LoadSettings(*configFlag)
		if err != nil {
			return nil, false, usageError("invalid settings file: %v", err)
		}
		settings = loaded
		slog.Debug("Settings file loaded.", "path", *configFlag)
	}

	set := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var paths []string
	switch {
	case *projectsFlag != "":
		paths = []string{*projectsFlag}
	case *pFlag != "":
		paths = []string{*pFlag}
	case flagSet.NArg() > 0:
		paths = flagSet.Args()
	default:
		paths = settings.Projects.Paths
	}
	slog.Debug("Project paths determined.", "paths", paths)

	remoteURL := settings.Server.RemoteURL
	if set["remote"] {
		remoteURL = *remoteFlag
	}
	listenPort := settings.Server.ListenPort
	if set["listen"] {
		listenPort = *listenFlag
	}
	healthPort := settings.Server.HealthcheckPort
	if set["healthcheck-port"] {
		healthPort = *healthPortFlag
	}
	minLength := settings.Search.MinLength
	if set["min-length"] {
		minLength = *minLengthFlag
	}
	logFormat := settings.Log.Format
	if set["log-format"] || logFormat == "" {
		logFormat = *logFormatFlag
	}
	logLevel := settings.Log.Level
	if set["log-level"] || logLevel == "" {
		logLevel = *logLevelFlag
	}

	if len(paths) == 0 && remoteURL == "" && len(args) == 0 {
		slog.Debug("No arguments provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat = strings.ToLower(logFormat)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel = strings.ToLower(logLevel)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		ProjectPaths:     paths,
		ProjectID:        *projectFlag,
		ParamName:        *paramFlag,
		Format:           *formatFlag,
		NoColor:          *noColorFlag,
		ListenPort:       listenPort,
		HealthcheckPort:  healthPort,
		RemoteURL:        remoteURL,
		MinTermLength:    minLength,
		VCSOptions:       settings.Search.VCSOptions,
		ListReferences:   *listRefsFlag,
		ResolveBuildType: *resolveFlag,
		LogFormat:        logFormat,
		LogLevel:         logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}
