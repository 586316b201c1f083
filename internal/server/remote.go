package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/specialistvlad/usagesearch/internal/ctxlog"
	"github.com/specialistvlad/usagesearch/internal/render"
	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"
)

// DefaultRemoteTimeout bounds a remote search when the context has no deadline.
const DefaultRemoteTimeout = 15 * time.Second

// RemoteError is a search_error reported by a remote server.
type RemoteError struct {
	SearchError
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("remote search failed (%d): %s", e.Status, e.Message)
}

type remoteResult struct {
	doc render.Document
	err error
}

// RemoteSearch connects to the socket.io endpoint of a server at rawURL,
// runs one search and disconnects.
func RemoteSearch(ctx context.Context, rawURL, projectID, term string) (render.Document, error) {
	logger := ctxlog.FromContext(ctx).With("remote", rawURL, "project_id", projectID)

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return render.Document{}, fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return render.Document{}, fmt.Errorf("invalid remote URL %q: scheme and host are required", rawURL)
	}

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultRemoteTimeout)
		defer cancel()
	}

	opts := socket.DefaultOptions()
	if path := strings.TrimSuffix(parsedURL.Path, "/"); path != "" {
		opts.SetPath(path)
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket("/", opts)
	defer func() {
		logger.Debug("Disconnecting socket client.")
		io.Disconnect()
	}()

	done := make(chan remoteResult, 1)
	send := func(r remoteResult) {
		select {
		case done <- r:
		default:
		}
	}

	io.On(types.EventName("connect"), func(...any) {
		logger.Debug("Connected to remote server.", "sid", io.Id())
		io.Emit(EventSearch, SearchRequest{ProjectID: projectID, ParamName: term})
	})
	io.On(types.EventName("connect_error"), func(errs ...any) {
		err := errors.New("connection refused")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		send(remoteResult{err: fmt.Errorf("socket.io connection failed: %w", err)})
	})
	io.On(types.EventName(EventResults), func(data ...any) {
		raw, err := payload(data)
		if err != nil {
			send(remoteResult{err: err})
			return
		}
		doc, err := render.DecodeJSON(raw)
		send(remoteResult{doc: doc, err: err})
	})
	io.On(types.EventName(EventSearchError), func(data ...any) {
		remoteErr := &RemoteError{}
		raw, err := payload(data)
		if err == nil {
			err = json.Unmarshal(raw, &remoteErr.SearchError)
		}
		if err != nil {
			send(remoteResult{err: fmt.Errorf("failed to decode remote error: %w", err)})
			return
		}
		send(remoteResult{err: remoteErr})
	})

	io.Connect()

	select {
	case <-ctx.Done():
		return render.Document{}, fmt.Errorf("remote search did not complete: %w", ctx.Err())
	case res := <-done:
		if res.err != nil {
			return render.Document{}, res.err
		}
		logger.Debug("Remote search finished.", "results", len(res.doc.Results))
		return res.doc, nil
	}
}

// payload re-encodes the first event argument, which the socket.io client
// hands over as decoded JSON.
func payload(data []any) ([]byte, error) {
	if len(data) == 0 {
		return nil, errors.New("remote server sent an empty response")
	}
	raw, err := json.Marshal(data[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read remote response: %w", err)
	}
	return raw, nil
}
