package server

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	sio "github.com/zishang520/socket.io/v2/socket"
)

// Socket.io event names.
const (
	EventSearch      = "search"
	EventResults     = "results"
	EventSearchError = "search_error"
)

// SearchRequest is the payload of a search event.
type SearchRequest struct {
	ProjectID string `json:"projectId"`
	ParamName string `json:"paramName"`
}

// SearchError is the payload of a search_error event.
type SearchError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (s *Server) onConnection(clients ...any) {
	if len(clients) == 0 {
		return
	}
	client, ok := clients[0].(*sio.Socket)
	if !ok {
		return
	}
	logger := ctxlog.FromContext(s.ctx).With("sid", client.Id())
	logger.Debug("Socket.io client connected.")

	client.On(EventSearch, func(args ...any) {
		requestID := uuid.NewString()
		ctx, logger := ctxlog.With(s.ctx, "sid", client.Id(), "request_id", requestID)

		req, err := decodeSearchRequest(args)
		if err != nil {
			logger.Debug("Rejected search event.", "error", err)
			client.Emit(EventSearchError, SearchError{Message: err.Error(), Status: 400})
			return
		}

		doc, err := s.Search(ctx, req.ProjectID, req.ParamName)
		if err != nil {
			client.Emit(EventSearchError, SearchError{Message: err.Error(), Status: statusFor(err)})
			return
		}
		client.Emit(EventResults, doc)
	})

	client.On("disconnect", func(reason ...any) {
		logger.Debug("Socket.io client disconnected.", "reason", reason)
	})
}

// decodeSearchRequest reads the first event argument, which arrives as a
// decoded JSON object.
func decodeSearchRequest(args []any) (SearchRequest, error) {
	var req SearchRequest
	if len(args) == 0 {
		return req, fmt.Errorf("search event requires a payload")
	}
	raw, err := json.Marshal(args[0])
	if err != nil {
		return req, fmt.Errorf("invalid search payload: %w", err)
	}
	if err := json.Unmarshal(raw, &req); err != nil {
		return req, fmt.Errorf("invalid search payload: %w", err)
	}
	return req, nil
}
