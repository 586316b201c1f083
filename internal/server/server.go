package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/specialistvlad/usagesearch/internal/config"
	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/projectstore"
	"github.com/specialistvlad/usagesearch/internal/render"
	"github.com/specialistvlad/usagesearch/internal/search"
	sio "github.com/zishang520/socket.io/v2/socket"
)

// Paths served by the handler.
const (
	UsagePath    = "/admin/usage.html"
	HealthPath   = "/health"
	SocketIOPath = "/socket.io/"
)

var (
	// ErrMissingProject is returned when a request names no project.
	ErrMissingProject = errors.New("projectId is required")
	// ErrUnknownProject is returned when no project has the requested id.
	ErrUnknownProject = errors.New("project not found")
	// ErrTermTooShort is returned when the search term is below the minimum length.
	ErrTermTooShort = errors.New("parameter name is too short")
)

// Server answers search requests against the projects of a store.
type Server struct {
	ctx       context.Context
	store     *projectstore.Store
	searcher  *search.Searcher
	minLength int
	io        *sio.Server
	handler   http.Handler
}

// Option configures a Server.
type Option func(*Server)

// WithMinTermLength sets the shortest accepted search term.
func WithMinTermLength(n int) Option {
	return func(s *Server) { s.minLength = n }
}

// WithSearcher replaces the default searcher.
func WithSearcher(searcher *search.Searcher) Option {
	return func(s *Server) { s.searcher = searcher }
}

// New creates a server. The context carries the logger and bounds the
// lifetime of socket.io searches.
func New(ctx context.Context, store *projectstore.Store, opts ...Option) *Server {
	s := &Server{
		ctx:       ctx,
		store:     store,
		searcher:  search.New(),
		minLength: config.DefaultMinTermLength,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.io = sio.NewServer(nil, nil)
	s.io.On("connection", s.onConnection)

	mux := http.NewServeMux()
	mux.HandleFunc(UsagePath, s.handleUsage)
	mux.HandleFunc(HealthPath, s.handleHealth)
	mux.Handle(SocketIOPath, s.io.ServeHandler(nil))
	s.handler = mux
	return s
}

// Handler returns the HTTP handler serving all endpoints.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Close disconnects all socket.io clients.
func (s *Server) Close() {
	s.io.Close(nil)
}

// Search runs a search below the project with the given external id and
// returns the wire document.
func (s *Server) Search(ctx context.Context, projectID, term string) (render.Document, error) {
	logger := ctxlog.FromContext(ctx).With("project_id", projectID, "term", term)

	if projectID == "" {
		return render.Document{}, ErrMissingProject
	}
	if len([]rune(strings.TrimSpace(term))) < s.minLength {
		return render.Document{}, fmt.Errorf("%w: must be at least %d characters", ErrTermTooShort, s.minLength)
	}

	project, ok := s.store.FindProjectByExternalID(ctx, projectID)
	if !ok {
		return render.Document{}, fmt.Errorf("%w: %q", ErrUnknownProject, projectID)
	}

	results, err := s.searcher.FindMatches(ctx, term, project)
	if err != nil {
		logger.Error("Search failed.", "error", err)
		return render.Document{}, fmt.Errorf("search failed: %w", err)
	}
	logger.Debug("Search finished.", "results", len(results))
	return render.NewDocument(projectID, term, results), nil
}
