package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

const testAPIKey = "2b6b0c84-ec0d-4c3a-a5f4-5a1c4d1f7f11:secret"

// recordedRequest is what the test server saw.
type recordedRequest struct {
	Method string
	Path   string
	Query  url.Values
	Body   map[string]interface{}
	Auth   string
}

type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (rec *recorder) add(req recordedRequest) {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	rec.requests = append(rec.requests, req)
}

func (rec *recorder) all() []recordedRequest {
	rec.mu.Lock()
	defer rec.mu.Unlock()

	return append([]recordedRequest(nil), rec.requests...)
}

func (rec *recorder) only(t *testing.T) recordedRequest {
	t.Helper()

	requests := rec.all()
	require.Len(t, requests, 1)

	return requests[0]
}

// responder decides the status and body answered to a request.
type responder func(req recordedRequest) (int, string)

func startServer(t *testing.T, respond responder) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		req := recordedRequest{
			Method: request.Method,
			Path:   request.URL.Path,
			Query:  request.URL.Query(),
			Auth:   request.Header.Get("Authorization"),
		}

		raw, _ := io.ReadAll(request.Body)
		if len(raw) > 0 {
			_ = json.Unmarshal(raw, &req.Body)
		}

		rec.add(req)

		status, body := http.StatusOK, `{}`
		if respond != nil {
			status, body = respond(req)
		}

		writer.Header().Set("Content-Type", "application/json")
		writer.WriteHeader(status)
		_, _ = writer.Write([]byte(body))
	}))
	t.Cleanup(server.Close)

	return server, rec
}

func newTestClient(t *testing.T, server *httptest.Server, mutate ...func(*faas.Config)) *Client {
	t.Helper()

	config := &faas.Config{
		API:    server.URL + "/api/v1/",
		APIKey: testAPIKey,
	}

	for _, fn := range mutate {
		fn(config)
	}

	client, err := New(context.Background(), config)
	require.NoError(t, err)

	return client
}

func withNamespace(namespace string) func(*faas.Config) {
	return func(config *faas.Config) {
		config.Namespace = namespace
	}
}
