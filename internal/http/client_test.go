package http_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/faas-client/internal/auth"
	faashttp "github.com/fivetwenty-io/faas-client/internal/http"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

var errNoCredentials = errors.New("no credentials")

type failingProvider struct{}

func (failingProvider) Header(ctx context.Context) (string, error) {
	return "", errNoCredentials
}

// MockLogger for testing.
type MockLogger struct {
	mu   sync.Mutex
	logs []map[string]interface{}
}

func (l *MockLogger) log(level, msg string, fields map[string]interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logs = append(l.logs, map[string]interface{}{"level": level, "msg": msg, "fields": fields})
}

func (l *MockLogger) Debug(msg string, fields map[string]interface{}) { l.log("debug", msg, fields) }
func (l *MockLogger) Info(msg string, fields map[string]interface{})  { l.log("info", msg, fields) }
func (l *MockLogger) Warn(msg string, fields map[string]interface{})  { l.log("warn", msg, fields) }
func (l *MockLogger) Error(msg string, fields map[string]interface{}) { l.log("error", msg, fields) }

func (l *MockLogger) messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	messages := make([]string, 0, len(l.logs))
	for _, entry := range l.logs {
		messages = append(messages, entry["msg"].(string))
	}

	return messages
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Do(t *testing.T) {
	t.Parallel()
	t.Run("successful request", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/api/v1/namespaces/_/actions/hello", request.URL.Path)
			assert.Equal(t, "GET", request.Method)
			assert.Equal(t, "Basic dXNlcjpwYXNz", request.Header.Get("Authorization"))
			assert.Equal(t, "application/json", request.Header.Get("Accept"))
			assert.Equal(t, "faas-client", request.Header.Get("User-Agent"))

			_ = json.NewEncoder(writer).Encode(map[string]string{"name": "hello"})
		}))
		defer server.Close()

		provider, err := auth.NewBasicProvider("user:pass")
		require.NoError(t, err)

		client := faashttp.NewClient(server.URL+"/api/v1/", provider)

		resp, err := client.Do(context.Background(), &faashttp.Request{
			Method: "GET",
			Path:   "namespaces/_/actions/hello",
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var result map[string]string

		err = json.Unmarshal(resp.Body, &result)
		require.NoError(t, err)
		assert.Equal(t, "hello", result["name"])
	})

	t.Run("request with query parameters", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "/namespaces/_/actions", request.URL.Path)
			assert.Equal(t, "limit=2&skip=4", request.URL.RawQuery)
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := faashttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &faashttp.Request{
			Method: "GET",
			Path:   "namespaces/_/actions",
			Query:  url.Values{"skip": []string{"4"}, "limit": []string{"2"}},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("request with body", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "PUT", request.Method)
			assert.Equal(t, "application/json", request.Header.Get("Content-Type"))

			var body map[string]string

			_ = json.NewDecoder(request.Body).Decode(&body)
			assert.Equal(t, "hello", body["name"])

			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := faashttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &faashttp.Request{
			Method: "PUT",
			Path:   "namespaces/_/actions/hello",
			Body:   map[string]string{"name": "hello"},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("error response", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusNotFound)
			_, _ = writer.Write([]byte(`{"error":"The requested resource does not exist."}`))
		}))
		defer server.Close()

		client := faashttp.NewClient(server.URL, nil)

		resp, err := client.Do(context.Background(), &faashttp.Request{
			Method: "GET",
			Path:   "namespaces/_/actions/missing",
		})
		require.Error(t, err)
		assert.Equal(t, 404, resp.StatusCode)

		statusErr := &faashttp.StatusError{}
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 404, statusErr.StatusCode)
		assert.Equal(t, "GET", statusErr.Method)
		assert.Equal(t, server.URL+"/namespaces/_/actions/missing", statusErr.URL)
		assert.JSONEq(t, `{"error":"The requested resource does not exist."}`, string(statusErr.Body))
	})

	t.Run("custom headers", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			assert.Equal(t, "custom-value", request.Header.Get("X-Custom-Header"))
			assert.Equal(t, "my-agent", request.Header.Get("User-Agent"))
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := faashttp.NewClient(server.URL, nil, faashttp.WithUserAgent("my-agent"))

		resp, err := client.Do(context.Background(), &faashttp.Request{
			Method:  "GET",
			Path:    "namespaces",
			Headers: map[string]string{"X-Custom-Header": "custom-value"},
		})
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)
	})

	t.Run("with debug logging", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
			_ = json.NewEncoder(writer).Encode(map[string]string{"result": "ok"})
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := faashttp.NewClient(server.URL, nil, faashttp.WithLogger(logger), faashttp.WithDebug(true))

		_, err := client.Get(context.Background(), "namespaces", nil)
		require.NoError(t, err)

		messages := logger.messages()
		assert.Contains(t, messages, "HTTP Request")
		assert.Contains(t, messages, "HTTP Response")
	})

	t.Run("no logging without debug", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		logger := &MockLogger{}
		client := faashttp.NewClient(server.URL, nil, faashttp.WithLogger(logger))

		_, err := client.Get(context.Background(), "namespaces", nil)
		require.NoError(t, err)
		assert.Empty(t, logger.messages())
	})

	t.Run("authorization failure", func(t *testing.T) {
		t.Parallel()

		client := faashttp.NewClient("http://127.0.0.1:1", failingProvider{})

		resp, err := client.Get(context.Background(), "namespaces", nil)
		require.ErrorIs(t, err, errNoCredentials)
		assert.Nil(t, resp)
	})

	t.Run("connection failure", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {}))
		serverURL := server.URL
		server.Close()

		client := faashttp.NewClient(serverURL, nil)

		resp, err := client.Get(context.Background(), "namespaces", nil)
		require.Error(t, err)
		assert.Nil(t, resp)

		statusErr := &faashttp.StatusError{}
		assert.False(t, errors.As(err, &statusErr))
	})
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestClient_Methods(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		method string
		fn     func(*faashttp.Client, context.Context) (*faashttp.Response, error)
	}{
		{
			name:   "GET",
			method: "GET",
			fn: func(c *faashttp.Client, ctx context.Context) (*faashttp.Response, error) {
				return c.Get(ctx, "/test", nil)
			},
		},
		{
			name:   "POST",
			method: "POST",
			fn: func(c *faashttp.Client, ctx context.Context) (*faashttp.Response, error) {
				return c.Post(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PUT",
			method: "PUT",
			fn: func(c *faashttp.Client, ctx context.Context) (*faashttp.Response, error) {
				return c.Put(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "PATCH",
			method: "PATCH",
			fn: func(c *faashttp.Client, ctx context.Context) (*faashttp.Response, error) {
				return c.Patch(ctx, "/test", map[string]string{"key": "value"})
			},
		},
		{
			name:   "DELETE",
			method: "DELETE",
			fn: func(c *faashttp.Client, ctx context.Context) (*faashttp.Response, error) {
				return c.Delete(ctx, "/test")
			},
		},
	}

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				assert.Equal(t, testCase.method, request.Method)
				assert.Equal(t, "/test", request.URL.Path)
				writer.WriteHeader(http.StatusOK)
			}))
			defer server.Close()

			client := faashttp.NewClient(server.URL, nil)
			resp, err := testCase.fn(client, context.Background())
			require.NoError(t, err)
			assert.Equal(t, 200, resp.StatusCode)
		})
	}
}

func TestClient_NoRetries(t *testing.T) {
	t.Parallel()

	for _, status := range []int{http.StatusInternalServerError, http.StatusTooManyRequests, http.StatusBadGateway} {
		status := status
		t.Run(http.StatusText(status), func(t *testing.T) {
			t.Parallel()

			var (
				mu       sync.Mutex
				attempts int
			)

			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				mu.Lock()
				attempts++
				mu.Unlock()

				writer.WriteHeader(status)
			}))
			defer server.Close()

			client := faashttp.NewClient(server.URL, nil)

			resp, err := client.Get(context.Background(), "/test", nil)
			require.Error(t, err)
			assert.Equal(t, status, resp.StatusCode)

			mu.Lock()
			defer mu.Unlock()
			assert.Equal(t, 1, attempts)
		})
	}
}

func TestClient_Interceptors(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "tenant-a", request.Header.Get("X-Tenant"))
		writer.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	var observed []string

	chain := faas.NewInterceptorChain()
	chain.AddRequestInterceptor(faas.HeaderInterceptor(map[string]string{"X-Tenant": "tenant-a"}))
	chain.AddResponseInterceptor(func(ctx context.Context, req *faas.Request, resp *faas.Response) error {
		observed = append(observed, req.Method+" "+req.Path)
		assert.Equal(t, http.StatusAccepted, resp.StatusCode)

		return nil
	})

	client := faashttp.NewClient(server.URL, nil, faashttp.WithInterceptors(chain))

	_, err := client.Post(context.Background(), "namespaces/_/triggers/t", map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, []string{"POST namespaces/_/triggers/t"}, observed)
}

func TestClient_RequestInterceptorAborts(t *testing.T) {
	t.Parallel()

	called := false
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		called = true
	}))
	defer server.Close()

	chain := faas.NewInterceptorChain()
	chain.AddRequestInterceptor(func(ctx context.Context, req *faas.Request) error {
		return errNoCredentials
	})

	client := faashttp.NewClient(server.URL, nil, faashttp.WithInterceptors(chain))

	_, err := client.Get(context.Background(), "namespaces", nil)
	require.ErrorIs(t, err, errNoCredentials)
	assert.False(t, called)
}

func TestClient_InsecureSkipVerify(t *testing.T) {
	t.Parallel()

	server := httptest.NewTLSServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := faashttp.NewClient(server.URL, nil).Get(context.Background(), "namespaces", nil)
	require.Error(t, err)

	resp, err := faashttp.NewClient(server.URL, nil, faashttp.WithInsecureSkipVerify(true)).Get(context.Background(), "namespaces", nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestClient_URL(t *testing.T) {
	t.Parallel()

	client := faashttp.NewClient("https://example.com/api/v1", nil)
	assert.Equal(t, "https://example.com/api/v1/", client.BaseURL())
	assert.Equal(t, "https://example.com/api/v1/namespaces/_/actions?blocking=true",
		client.URL("namespaces/_/actions", url.Values{"blocking": []string{"true"}}))
}
