package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/render"
)

// RequestIDHeader carries the id assigned to each request.
const RequestIDHeader = "X-Request-Id"

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	requestID := uuid.NewString()
	w.Header().Set(RequestIDHeader, requestID)

	ctx, logger := ctxlog.With(ctxlog.WithLogger(r.Context(), ctxlog.FromContext(s.ctx)), "request_id", requestID)
	logger.Debug("Usage endpoint hit.", "method", r.Method, "remote_addr", r.RemoteAddr)

	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if action := r.Form.Get("action"); action != "search" {
		http.Error(w, fmt.Sprintf("unsupported action %q", action), http.StatusBadRequest)
		return
	}

	format := responseFormat(r)
	renderer, err := render.ByFormat(format)
	if err != nil || format == render.FormatText {
		http.Error(w, fmt.Sprintf("unsupported format %q", format), http.StatusBadRequest)
		return
	}

	doc, err := s.Search(ctx, r.Form.Get("projectId"), r.Form.Get("paramName"))
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	if format == render.FormatJSON {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
	} else {
		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	}
	if err := renderer(w, doc); err != nil {
		logger.Error("Failed to write response.", "error", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctxlog.FromContext(s.ctx).Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr, "path", r.URL.Path)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

// responseFormat picks the explicit format parameter, then the Accept
// header, then XML.
func responseFormat(r *http.Request) string {
	if f := r.Form.Get("format"); f != "" {
		return strings.ToLower(f)
	}
	if strings.Contains(r.Header.Get("Accept"), "application/json") {
		return render.FormatJSON
	}
	return render.FormatXML
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrMissingProject), errors.Is(err, ErrTermTooShort):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnknownProject):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
