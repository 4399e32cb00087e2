package client

import (
	"context"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// PackagesClient implements faas.PackagesClient.
type PackagesClient struct {
	*resources
}

// NewPackagesClient creates a new packages client.
func NewPackagesClient(req *requester) *PackagesClient {
	return &PackagesClient{
		resources: newResources(req, resourceSpec{
			name:        "packages",
			identifiers: []string{"packageName", primaryKey},
			listQuery:   []string{"skip", "limit", "count", "public"},
			createQuery: []string{"overwrite"},
			createBody:  packageBody,
		}),
	}
}

// Invoke is not supported for packages.
func (c *PackagesClient) Invoke(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return nil, notSupported("packages", "invoke")
}

func packageBody(options faas.Options) (interface{}, error) {
	if body, ok := options["package"]; ok && body != nil {
		return body, nil
	}

	return map[string]interface{}{}, nil
}
