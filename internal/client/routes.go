package client

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/faas-client/internal/auth"
	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

const (
	routeOpGet    = "getApi"
	routeOpCreate = "createApi"
	routeOpDelete = "deleteApi"

	defaultBasePath = "/"
)

// RoutesConfig holds the API gateway settings of a routes client.
type RoutesConfig struct {
	// APIKey is sent as the backend authkey and provides the default space GUID.
	APIKey string
	// Token switches to the token based management API when set.
	Token string
	// SpaceGUID is sent with token mode requests.
	SpaceGUID string
}

// RoutesClient implements faas.RoutesClient.
type RoutesClient struct {
	*requester
	config RoutesConfig
}

// NewRoutesClient creates a new routes client.
func NewRoutesClient(req *requester, config RoutesConfig) *RoutesClient {
	return &RoutesClient{requester: req, config: config}
}

// List lists the routes of a base path or API name.
func (c *RoutesClient) List(ctx context.Context, options faas.Options) (*faas.Result, error) {
	return c.read(ctx, "listing", options)
}

// Get retrieves the API of a base path or API name.
func (c *RoutesClient) Get(ctx context.Context, options faas.Options) (*faas.Result, error) {
	return c.read(ctx, "getting", options)
}

func (c *RoutesClient) read(ctx context.Context, verb string, options faas.Options) (*faas.Result, error) {
	basePath, err := basePathOption(options)
	if err != nil {
		return nil, fmt.Errorf("%s routes: %w", verb, err)
	}

	query := selectQuery(options, []string{"relpath", "basepath", "operation", "limit", "skip"})
	query["basepath"] = basePath

	return c.send(ctx, verb, &call{method: http.MethodGet, path: c.managementPath(routeOpGet), query: query})
}

// Delete removes a route, or a whole API when no relpath is given.
func (c *RoutesClient) Delete(ctx context.Context, options faas.Options) (*faas.Result, error) {
	basePath, err := basePathOption(options)
	if err != nil {
		return nil, fmt.Errorf("deleting routes: %w", err)
	}

	query := selectQuery(options, []string{"relpath", "operation"})
	query["basepath"] = basePath
	query["force"] = true

	if operation, ok := query["operation"].(string); ok {
		query["operation"] = strings.ToUpper(operation)
	}

	return c.send(ctx, "deleting", &call{method: http.MethodDelete, path: c.managementPath(routeOpDelete), query: query})
}

// Create maps a base path, relative path and verb onto an action, or
// registers a whole swagger document.
func (c *RoutesClient) Create(ctx context.Context, options faas.Options) (*faas.Result, error) {
	body, err := c.routeBody(options)
	if err != nil {
		return nil, fmt.Errorf("creating routes: %w", err)
	}

	return c.send(ctx, "creating", &call{
		method: http.MethodPost,
		path:   c.managementPath(routeOpCreate),
		query:  selectQuery(options, []string{"responsetype"}),
		body:   body,
	})
}

func (c *RoutesClient) send(ctx context.Context, verb string, request *call) (*faas.Result, error) {
	if c.config.Token != "" {
		request.query["accesstoken"] = c.config.Token
		request.query["spaceguid"] = c.spaceGUID()
	}

	result, err := c.do(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("%s routes: %w", verb, err)
	}

	return result, nil
}

func (c *RoutesClient) managementPath(operation string) string {
	if c.config.Token != "" {
		return fmt.Sprintf(constants.RouteMgmtTokenPathFormat, operation)
	}

	return fmt.Sprintf(constants.RouteMgmtDocPathFormat, operation)
}

func (c *RoutesClient) spaceGUID() string {
	if c.config.SpaceGUID != "" {
		return c.config.SpaceGUID
	}

	return auth.SpaceGUID(c.config.APIKey)
}

// basePathOption returns the one of "basepath" and "name" that is given.
func basePathOption(options faas.Options) (string, error) {
	basePath, hasBasePath := options.String("basepath")
	name, hasName := options.String("name")

	switch {
	case hasBasePath && hasName:
		return "", fmt.Errorf("%w: basepath and name are mutually exclusive", faas.ErrInvalidParameters)
	case hasBasePath:
		return basePath, nil
	case hasName:
		return name, nil
	default:
		return "", fmt.Errorf("%w: basepath or name", faas.ErrMissingMandatoryParameters)
	}
}

func (c *RoutesClient) routeBody(options faas.Options) (*faas.RouteDocument, error) {
	if swagger, ok := options["swagger"]; ok && swagger != nil {
		return &faas.RouteDocument{
			APIDoc: faas.RouteAPIDoc{Namespace: c.listNamespace(options), Swagger: swagger},
		}, nil
	}

	var missing []string

	for _, key := range []string{"relpath", "operation", "action"} {
		if value, ok := options.String(key); !ok || value == "" {
			missing = append(missing, key)
		}
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", faas.ErrMissingMandatoryParameters, strings.Join(missing, ", "))
	}

	action, _ := options.String("action")

	namespace, id, err := c.target(faas.Options{
		primaryKey:  action,
		"namespace": options["namespace"],
	}, []string{primaryKey})
	if err != nil {
		return nil, err
	}

	basePath, _ := options.String("basepath")
	if basePath == "" {
		basePath = defaultBasePath
	}

	relPath, _ := options.String("relpath")
	operation, _ := options.String("operation")
	apiName, _ := options.String("name")

	backendMethod, backendURL := c.backend(namespace, id)

	return &faas.RouteDocument{
		APIDoc: faas.RouteAPIDoc{
			Namespace:       namespace,
			GatewayBasePath: basePath,
			GatewayPath:     relPath,
			GatewayMethod:   operation,
			ID:              fmt.Sprintf("API:%s:%s", namespace, basePath),
			Action: &faas.RouteAction{
				Name:          id,
				Namespace:     namespace,
				BackendMethod: backendMethod,
				BackendURL:    backendURL,
				AuthKey:       c.config.APIKey,
			},
			APIName: apiName,
		},
	}, nil
}

// backend returns how the gateway reaches the action: a web action URL in
// token mode, the invoke endpoint otherwise.
func (c *RoutesClient) backend(namespace, id string) (string, string) {
	base := c.httpClient.BaseURL()

	if c.config.Token == "" {
		return http.MethodPost, base + resourcePath(namespace, "actions", id)
	}

	pkg, action, found := strings.Cut(id, "/")
	if !found {
		pkg, action = constants.DefaultPackage, id
	}

	return http.MethodGet, fmt.Sprintf("%sweb/%s/%s/%s.http",
		base, url.PathEscape(namespace), url.PathEscape(pkg), url.PathEscape(action))
}
