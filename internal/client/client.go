package client

import (
	"context"
	"strings"

	"github.com/fivetwenty-io/faas-client/internal/auth"
	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/internal/http"
	"github.com/fivetwenty-io/faas-client/internal/names"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// Client implements the faas.Client interface.
type Client struct {
	httpClient *http.Client
	config     faas.Config

	// Resource clients
	actions     *ActionsClient
	activations *ActivationsClient
	feeds       *FeedsClient
	namespaces  *NamespacesClient
	packages    *PackagesClient
	routes      *RoutesClient
	rules       *RulesClient
	triggers    *TriggersClient
}

// New creates a new client. The configuration is copied; later changes to
// config do not affect the client.
func New(ctx context.Context, config *faas.Config) (*Client, error) {
	if config == nil {
		return nil, faas.ErrConfigRequired
	}

	snapshot := *config
	snapshot.RequestInterceptors = append([]faas.RequestInterceptor(nil), config.RequestInterceptors...)
	snapshot.ResponseInterceptors = append([]faas.ResponseInterceptor(nil), config.ResponseInterceptors...)

	if snapshot.APIKey == "" && snapshot.AuthHandler == nil {
		return nil, faas.ErrMissingAPIKey
	}

	if snapshot.APIHost == "" && snapshot.API == "" {
		return nil, faas.ErrMissingAPIHost
	}

	authProvider, err := auth.ForConfig(&snapshot)
	if err != nil {
		return nil, err //nolint:wrapcheck // validated above
	}

	httpClient := http.NewClient(APIBaseURL(&snapshot), authProvider, createHTTPClientOptions(&snapshot)...)

	client := &Client{
		httpClient: httpClient,
		config:     snapshot,
	}

	client.initializeResourceClients()

	return client, nil
}

// APIBaseURL returns the management API base URL of config, ending with a
// slash.
func APIBaseURL(config *faas.Config) string {
	if config.API != "" {
		return strings.TrimSuffix(config.API, "/") + "/"
	}

	host := strings.TrimSuffix(config.APIHost, "/")
	if !strings.Contains(host, "://") {
		host = constants.DefaultScheme + host
	}

	return host + constants.APIPathSuffix
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *faas.Config) []http.Option {
	chain := faas.NewInterceptorChain()

	for _, interceptor := range config.RequestInterceptors {
		chain.AddRequestInterceptor(interceptor)
	}

	for _, interceptor := range config.ResponseInterceptors {
		chain.AddResponseInterceptor(interceptor)
	}

	return []http.Option{
		http.WithLogger(config.Logger),
		http.WithDebug(config.Debug),
		http.WithUserAgent(config.UserAgent),
		http.WithTimeout(config.HTTPTimeout),
		http.WithInsecureSkipVerify(config.IgnoreCerts),
		http.WithInterceptors(chain),
	}
}

func (c *Client) initializeResourceClients() {
	req := newRequester(c.httpClient, names.NewResolver(c.config.Namespace))

	c.actions = NewActionsClient(req)
	c.activations = NewActivationsClient(req)
	c.feeds = NewFeedsClient(c.actions, c.config.APIKey)
	c.namespaces = NewNamespacesClient(req)
	c.packages = NewPackagesClient(req)
	c.routes = NewRoutesClient(req, RoutesConfig{
		APIKey:    c.config.APIKey,
		Token:     c.config.APIGWToken,
		SpaceGUID: c.config.APIGWSpaceGUID,
	})
	c.rules = NewRulesClient(req)
	c.triggers = NewTriggersClient(req)
}

// BaseURL returns the management API base URL.
func (c *Client) BaseURL() string {
	return c.httpClient.BaseURL()
}

// Actions implements faas.Client.Actions.
func (c *Client) Actions() faas.ActionsClient {
	return c.actions
}

// Activations implements faas.Client.Activations.
func (c *Client) Activations() faas.ActivationsClient {
	return c.activations
}

// Feeds implements faas.Client.Feeds.
func (c *Client) Feeds() faas.FeedsClient {
	return c.feeds
}

// Namespaces implements faas.Client.Namespaces.
func (c *Client) Namespaces() faas.NamespacesClient {
	return c.namespaces
}

// Packages implements faas.Client.Packages.
func (c *Client) Packages() faas.PackagesClient {
	return c.packages
}

// Routes implements faas.Client.Routes.
func (c *Client) Routes() faas.RoutesClient {
	return c.routes
}

// Rules implements faas.Client.Rules.
func (c *Client) Rules() faas.RulesClient {
	return c.rules
}

// Triggers implements faas.Client.Triggers.
func (c *Client) Triggers() faas.TriggersClient {
	return c.triggers
}
