package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/specialistvlad/usagesearch/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSearchRequest(t *testing.T) {
	req, err := decodeSearchRequest([]any{map[string]any{"projectId": "Root", "paramName": "env"}})
	require.NoError(t, err)
	assert.Equal(t, SearchRequest{ProjectID: "Root", ParamName: "env"}, req)

	_, err = decodeSearchRequest(nil)
	assert.ErrorContains(t, err, "requires a payload")

	_, err = decodeSearchRequest([]any{"not an object"})
	assert.ErrorContains(t, err, "invalid search payload")
}

func TestOnConnection_IgnoresMissingSocket(t *testing.T) {
	srv := newTestServer(t)
	assert.NotPanics(t, func() { srv.onConnection() })
	assert.NotPanics(t, func() { srv.onConnection("not a socket") })
}

func TestRemoteSearch_RoundTrip(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	doc, err := RemoteSearch(ctx, ts.URL, "Root", "env")
	require.NoError(t, err)

	assert.Equal(t, "Root", doc.ProjectID)
	require.Len(t, doc.Results, 2)
	assert.Equal(t, "Root_Build", doc.Results[1].ID)
	assert.Equal(t, search.SectionVCS, doc.Results[1].Sections[0].Name)
}

func TestRemoteSearch_RemoteError(t *testing.T) {
	srv := newTestServer(t)
	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := RemoteSearch(ctx, ts.URL, "Nope", "env")

	var remoteErr *RemoteError
	require.True(t, errors.As(err, &remoteErr), "got %v", err)
	assert.Equal(t, http.StatusNotFound, remoteErr.Status)
	assert.Contains(t, remoteErr.Message, "project not found")
}

func TestRemoteSearch_InvalidURL(t *testing.T) {
	_, err := RemoteSearch(context.Background(), "localhost:8111", "Root", "env")
	assert.ErrorContains(t, err, "scheme and host are required")
}

func TestRemoteSearch_Unreachable(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL
	ts.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := RemoteSearch(ctx, url, "Root", "env")
	assert.Error(t, err)
}
