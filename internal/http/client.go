// Package http is the transport used by the resource clients: it performs
// one authenticated JSON request per call against the API base URL.
package http

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/fivetwenty-io/faas-client/internal/auth"
	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

const contentTypeJSON = "application/json"

// Request describes one API call. Path is relative to the base URL and must
// already be escaped.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the raw result of an API call.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// StatusError is returned together with the response when the platform
// answers with a status of 400 or above.
type StatusError struct {
	Method     string
	URL        string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s returned HTTP %d", e.Method, e.URL, e.StatusCode)
}

// Client performs API requests.
type Client struct {
	baseURL      string
	httpClient   *retryablehttp.Client
	authProvider auth.Provider
	userAgent    string
	logger       faas.Logger
	debug        bool
	interceptors *faas.InterceptorChain
	timeout      time.Duration
	insecure     bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger.
func WithLogger(logger faas.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request and response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		if userAgent != "" {
			c.userAgent = userAgent
		}
	}
}

// WithTimeout bounds each round trip.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithInsecureSkipVerify disables TLS certificate verification.
func WithInsecureSkipVerify(insecure bool) Option {
	return func(c *Client) {
		c.insecure = insecure
	}
}

// WithInterceptors runs chain around every request.
func WithInterceptors(chain *faas.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// NewClient creates a client for baseURL. A nil authProvider sends no
// Authorization header.
func NewClient(baseURL string, authProvider auth.Provider, opts ...Option) *Client {
	client := &Client{
		baseURL:      strings.TrimSuffix(baseURL, "/") + "/",
		authProvider: authProvider,
		userAgent:    constants.DefaultUserAgent,
		timeout:      constants.DefaultHTTPTimeout,
		interceptors: faas.NewInterceptorChain(),
	}

	for _, opt := range opts {
		opt(client)
	}

	retryClient := retryablehttp.NewClient()
	// Every call is a single round trip; retry policy belongs to the caller.
	retryClient.RetryMax = 0
	retryClient.CheckRetry = noRetry
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.HTTPClient.Timeout = client.timeout

	if client.insecure {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // explicitly requested
		retryClient.HTTPClient.Transport = transport
	}

	if client.logger != nil && client.debug {
		retryClient.Logger = &leveledLogger{logger: client.logger}
	} else {
		retryClient.Logger = nil
	}

	client.httpClient = retryClient

	return client
}

func noRetry(ctx context.Context, _ *http.Response, _ error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err() //nolint:wrapcheck // surfaced unchanged by the passthrough handler
	}

	return false, nil
}

// BaseURL returns the API base URL, always ending with a slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// URL returns the absolute URL of path and query.
func (c *Client) URL(path string, query url.Values) string {
	target := c.baseURL + strings.TrimPrefix(path, "/")
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	return target
}

// Do performs the request. When the platform answers with an error status
// both the response and a *StatusError are returned.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	var body []byte

	if req.Body != nil {
		encoded, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}

		body = encoded
	}

	headers, err := c.headers(ctx, req, body != nil)
	if err != nil {
		return nil, err
	}

	intercepted := &faas.Request{
		Method:  req.Method,
		Path:    req.Path,
		Headers: headers,
		Body:    body,
	}

	err = c.interceptors.ExecuteRequestInterceptors(ctx, intercepted)
	if err != nil {
		return nil, err
	}

	target := c.URL(intercepted.Path, req.Query)

	var rawBody interface{}
	if intercepted.Body != nil {
		rawBody = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, intercepted.Method, target, rawBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	httpReq.Header = intercepted.Headers

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": intercepted.Method,
			"url":    target,
		})
	}

	resp, doErr := c.send(httpReq)

	err = c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, c.interceptedResponse(resp, doErr))
	if err != nil {
		return nil, err
	}

	if doErr != nil {
		return nil, doErr
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"status": resp.StatusCode,
			"url":    target,
		})
	}

	if resp.StatusCode >= http.StatusBadRequest {
		return resp, &StatusError{
			Method:     intercepted.Method,
			URL:        target,
			StatusCode: resp.StatusCode,
			Body:       resp.Body,
		}
	}

	return resp, nil
}

func (c *Client) headers(ctx context.Context, req *Request, hasBody bool) (http.Header, error) {
	headers := make(http.Header)
	headers.Set("Accept", contentTypeJSON)
	headers.Set("User-Agent", c.userAgent)

	if hasBody {
		headers.Set("Content-Type", contentTypeJSON)
	}

	if c.authProvider != nil {
		header, err := c.authProvider.Header(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get authorization header: %w", err)
		}

		headers.Set("Authorization", header)
	}

	for key, value := range req.Headers {
		headers.Set(key, value)
	}

	return headers, nil
}

func (c *Client) send(httpReq *retryablehttp.Request) (*Response, error) {
	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       bytes.TrimSpace(respBody),
	}, nil
}

func (c *Client) interceptedResponse(resp *Response, err error) *faas.Response {
	if err != nil {
		return &faas.Response{Error: err}
	}

	return &faas.Response{
		StatusCode: resp.StatusCode,
		Headers:    resp.Headers,
		Body:       resp.Body,
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch performs a PATCH request.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path})
}

// leveledLogger adapts faas.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger faas.Logger
}

func (l *leveledLogger) Error(msg string, keysAndValues ...interface{}) {
	l.logger.Error(msg, fields(keysAndValues))
}

func (l *leveledLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Info(msg, fields(keysAndValues))
}

func (l *leveledLogger) Debug(msg string, keysAndValues ...interface{}) {
	l.logger.Debug(msg, fields(keysAndValues))
}

func (l *leveledLogger) Warn(msg string, keysAndValues ...interface{}) {
	l.logger.Warn(msg, fields(keysAndValues))
}

func fields(keysAndValues []interface{}) map[string]interface{} {
	result := make(map[string]interface{}, len(keysAndValues)/2)

	for i := 0; i+1 < len(keysAndValues); i += 2 {
		result[fmt.Sprint(keysAndValues[i])] = keysAndValues[i+1]
	}

	return result
}
