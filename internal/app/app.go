package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/specialistvlad/usagesearch/internal/config"
	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/model"
	"github.com/specialistvlad/usagesearch/internal/projectstore"
	"github.com/specialistvlad/usagesearch/internal/search"
	"github.com/specialistvlad/usagesearch/internal/server"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	ctx    context.Context
	config *Config
	store  *projectstore.Store
	server *server.Server

	httpServer *http.Server // health check server, when enabled
}

// NewApp is the constructor for the main application. Results are written to
// outW and logs to logW. Projects are loaded with loader unless the app
// queries a remote server.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) (*App, error) {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	store := projectstore.New()
	if appConfig.RemoteURL == "" {
		roots, err := config.LoadProjects(ctx, loader, appConfig.ProjectPaths...)
		if err != nil {
			return nil, fmt.Errorf("failed to load projects: %w", err)
		}
		projects := make([]model.Project, 0, len(roots))
		for _, r := range roots {
			projects = append(projects, r)
		}
		if err := store.Replace(ctx, projects...); err != nil {
			return nil, fmt.Errorf("failed to index projects: %w", err)
		}
		logger.Info("Projects loaded.", "roots", len(roots), "projects", store.Len())
	}

	var searchOpts []search.Option
	if appConfig.VCSOptions != nil {
		searchOpts = append(searchOpts, search.WithVCSOptions(appConfig.VCSOptions...))
	}
	minLength := appConfig.MinTermLength
	if minLength == 0 {
		minLength = config.DefaultMinTermLength
	}

	srv := server.New(ctx, store,
		server.WithSearcher(search.New(searchOpts...)),
		server.WithMinTermLength(minLength),
	)

	return &App{
		outW:   outW,
		logger: logger,
		ctx:    ctx,
		config: appConfig,
		store:  store,
		server: srv,
	}, nil
}

// Store returns the loaded projects. This is primarily for testing.
func (a *App) Store() *projectstore.Store {
	return a.store
}

// Handler returns the HTTP handler of the search server.
func (a *App) Handler() http.Handler {
	return a.server.Handler()
}
