package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/render"
	"github.com/specialistvlad/usagesearch/internal/server"
)

// Run executes the main application logic: a remote search, the search
// server, a diagnostic, or a single local search, depending on the
// configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	defer a.server.Close()

	a.startHealthCheckServer(ctx)
	defer a.closeHealthCheckServer(ctx)

	switch {
	case a.config.RemoteURL != "":
		a.logger.Debug("Running remote search.", "remote", a.config.RemoteURL)
		doc, err := server.RemoteSearch(ctx, a.config.RemoteURL, a.config.ProjectID, a.config.ParamName)
		if err != nil {
			return err
		}
		return a.render(doc)
	case a.config.Serving():
		ln, err := net.Listen("tcp", fmt.Sprintf(":%d", a.config.ListenPort))
		if err != nil {
			return fmt.Errorf("failed to listen: %w", err)
		}
		return a.Serve(ctx, ln)
	case a.config.ListReferences:
		return a.listReferences(ctx)
	case a.config.ResolveBuildType != "":
		return a.resolveBuildType(ctx)
	default:
		doc, err := a.server.Search(ctx, a.config.ProjectID, a.config.ParamName)
		if err != nil {
			return err
		}
		return a.render(doc)
	}
}

// Serve answers search requests on ln until ctx is cancelled, then shuts
// down gracefully.
func (a *App) Serve(ctx context.Context, ln net.Listener) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	srv := &http.Server{
		Handler:           a.server.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("🔎 Search server starting", "address", ln.Addr().String(), "path", server.UsagePath)
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("search server failed: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	a.logger.Info("🔎 Shutting down search server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("search server shutdown failed: %w", err)
	}
	a.logger.Debug("Search server shut down gracefully.")
	return nil
}

func (a *App) render(doc render.Document) error {
	if a.config.Format == render.FormatText {
		return render.Text(a.outW, doc, render.TextOptions{NoColor: a.config.NoColor})
	}
	r, err := render.ByFormat(a.config.Format)
	if err != nil {
		return err
	}
	return r(a.outW, doc)
}
