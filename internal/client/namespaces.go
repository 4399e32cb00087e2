package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// NamespacesClient implements faas.NamespacesClient.
type NamespacesClient struct {
	*requester
}

// NewNamespacesClient creates a new namespaces client.
func NewNamespacesClient(req *requester) *NamespacesClient {
	return &NamespacesClient{requester: req}
}

// List lists the namespaces the credentials can access.
func (c *NamespacesClient) List(ctx context.Context) (*faas.Result, error) {
	result, err := c.do(ctx, &call{method: http.MethodGet, path: "namespaces"})
	if err != nil {
		return nil, fmt.Errorf("listing namespaces: %w", err)
	}

	return result, nil
}

// Get retrieves the entities of one namespace per input.
func (c *NamespacesClient) Get(ctx context.Context, in faas.Input) (*faas.Result, error) {
	result, err := c.run(ctx, in, primaryKey, func(options faas.Options) (*call, error) {
		namespace, err := identifier(options, []string{"namespace", primaryKey})
		if err != nil {
			return nil, err
		}

		return &call{method: http.MethodGet, path: "namespaces/" + url.PathEscape(namespace)}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("getting namespaces: %w", err)
	}

	return result, nil
}
