package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// ActivationsClient implements faas.ActivationsClient.
type ActivationsClient struct {
	*requester
	identifiers []string
}

// NewActivationsClient creates a new activations client.
func NewActivationsClient(req *requester) *ActivationsClient {
	return &ActivationsClient{
		requester:   req,
		identifiers: []string{"activationId", "activation", primaryKey},
	}
}

// List lists activation records, optionally filtered by entity name.
func (c *ActivationsClient) List(ctx context.Context, options faas.Options) (*faas.Result, error) {
	result, err := c.do(ctx, &call{
		method: http.MethodGet,
		path:   resourcePath(c.listNamespace(options), "activations", ""),
		query:  selectQuery(options, []string{"name", "skip", "limit", "upto", "docs", "since", "count"}),
	})
	if err != nil {
		return nil, fmt.Errorf("listing activations: %w", err)
	}

	return result, nil
}

// Get retrieves an activation record.
func (c *ActivationsClient) Get(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return c.fetch(ctx, "getting activations", in, "")
}

// Logs retrieves the log lines of an activation.
func (c *ActivationsClient) Logs(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return c.fetch(ctx, "getting activation logs", in, "logs")
}

// Result retrieves the result document of an activation.
func (c *ActivationsClient) Result(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return c.fetch(ctx, "getting activation results", in, "result")
}

func (c *ActivationsClient) fetch(ctx context.Context, what string, in faas.Input, suffix string) (*faas.Result, error) {
	result, err := c.run(ctx, in, primaryKey, func(options faas.Options) (*call, error) {
		namespace, id, err := c.target(options, c.identifiers)
		if err != nil {
			return nil, err
		}

		path := resourcePath(namespace, "activations", id)
		if suffix != "" {
			path += "/" + suffix
		}

		return &call{method: http.MethodGet, path: path}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", what, err)
	}

	return result, nil
}
