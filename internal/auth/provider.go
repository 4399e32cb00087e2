// Package auth produces the Authorization header sent with every request.
package auth

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// Static errors for err113 compliance.
var (
	ErrEmptyAPIKey     = errors.New("api key is empty")
	ErrEmptyAuthHeader = errors.New("auth handler returned an empty header")
	ErrNilAuthHandler  = errors.New("auth handler is nil")
)

const (
	basicPrefix     = "Basic "
	apiKeySeparator = ":"
)

// Provider supplies the Authorization header value for a request.
type Provider interface {
	Header(ctx context.Context) (string, error)
}

// BasicProvider authenticates with the platform API key.
type BasicProvider struct {
	header string
}

// NewBasicProvider creates a provider sending "Basic base64(apiKey)".
func NewBasicProvider(apiKey string) (*BasicProvider, error) {
	if apiKey == "" {
		return nil, ErrEmptyAPIKey
	}

	return &BasicProvider{
		header: basicPrefix + base64.StdEncoding.EncodeToString([]byte(apiKey)),
	}, nil
}

// Header returns the Basic authorization header.
func (p *BasicProvider) Header(ctx context.Context) (string, error) {
	return p.header, nil
}

// HandlerProvider delegates to a caller supplied faas.AuthHandler.
type HandlerProvider struct {
	handler faas.AuthHandler
}

// NewHandlerProvider wraps handler.
func NewHandlerProvider(handler faas.AuthHandler) (*HandlerProvider, error) {
	if handler == nil {
		return nil, ErrNilAuthHandler
	}

	return &HandlerProvider{handler: handler}, nil
}

// Header asks the handler for the header value.
func (p *HandlerProvider) Header(ctx context.Context) (string, error) {
	header, err := p.handler.AuthHeader(ctx)
	if err != nil {
		return "", fmt.Errorf("auth handler failed: %w", err)
	}

	if header == "" {
		return "", ErrEmptyAuthHeader
	}

	return header, nil
}

// ForConfig picks the provider for a client configuration: the custom
// handler when set, otherwise the API key.
func ForConfig(config *faas.Config) (Provider, error) {
	if config.AuthHandler != nil {
		return NewHandlerProvider(config.AuthHandler)
	}

	return NewBasicProvider(config.APIKey)
}

// SpaceGUID returns the part of apiKey before the colon, which the API
// gateway uses as the default space GUID.
func SpaceGUID(apiKey string) string {
	guid, _, _ := strings.Cut(apiKey, apiKeySeparator)

	return guid
}
