package faas

import (
	"context"
	"time"
)

// ResourceClient provides the generic identifier based operations shared by
// actions, packages, rules and triggers.
type ResourceClient interface {
	List(ctx context.Context, options Options) (*Result, error)
	Get(ctx context.Context, in Input) (*Result, error)
	Invoke(ctx context.Context, in Input) (*Result, error)
	Create(ctx context.Context, in Input) (*Result, error)
	Update(ctx context.Context, in Input) (*Result, error)
	Delete(ctx context.Context, in Input) (*Result, error)
}

// ActionsClient manages actions. Invoke accepts "blocking" and "result";
// with both set only the activation's result document is returned.
type ActionsClient interface {
	ResourceClient
}

// PackagesClient manages packages. Invoke always fails with ErrOperationNotSupported.
type PackagesClient interface {
	ResourceClient
}

// TriggersClient manages triggers. Invoke fires the trigger.
type TriggersClient interface {
	ResourceClient
}

// RulesClient manages rules. Invoke always fails with ErrOperationNotSupported.
type RulesClient interface {
	ResourceClient
	Enable(ctx context.Context, in Input) (*Result, error)
	Disable(ctx context.Context, in Input) (*Result, error)
}

// ActivationsClient reads activation records.
type ActivationsClient interface {
	List(ctx context.Context, options Options) (*Result, error)
	Get(ctx context.Context, in Input) (*Result, error)
	Logs(ctx context.Context, in Input) (*Result, error)
	Result(ctx context.Context, in Input) (*Result, error)
}

// NamespacesClient reads namespaces.
type NamespacesClient interface {
	List(ctx context.Context) (*Result, error)
	Get(ctx context.Context, in Input) (*Result, error)
}

// FeedsClient drives the lifecycle of a trigger feed by invoking the feed action.
type FeedsClient interface {
	Create(ctx context.Context, options Options) (*Result, error)
	Delete(ctx context.Context, options Options) (*Result, error)
	Get(ctx context.Context, options Options) (*Result, error)
	Update(ctx context.Context, options Options) (*Result, error)
}

// RoutesClient manages API gateway routes.
type RoutesClient interface {
	List(ctx context.Context, options Options) (*Result, error)
	Get(ctx context.Context, options Options) (*Result, error)
	Create(ctx context.Context, options Options) (*Result, error)
	Delete(ctx context.Context, options Options) (*Result, error)
}

// Client provides access to every resource family.
type Client interface {
	Actions() ActionsClient
	Activations() ActivationsClient
	Feeds() FeedsClient
	Namespaces() NamespacesClient
	Packages() PackagesClient
	Routes() RoutesClient
	Rules() RulesClient
	Triggers() TriggersClient
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// AuthHandler supplies the Authorization header for every request. It
// replaces the Basic API key header when set.
type AuthHandler interface {
	AuthHeader(ctx context.Context) (string, error)
}

// Config represents client configuration. It is copied when the client is
// built; changing it afterwards has no effect on the client.
//
// # Addressing
//
// API is the full base URL of the management API (e.g.
// "https://openwhisk.example.com/api/v1/"). When empty it is derived from
// APIHost as "https://<APIHost>/api/v1/"; a scheme already present on APIHost
// is kept.
//
// # Namespaces
//
// Namespace is the default namespace for identifiers that do not embed one
// and carry no "namespace" option. When empty the platform sentinel "_"
// (the caller's own namespace) is used.
//
// # API gateway
//
// When APIGWToken is set, routes are managed through the token based gateway
// API and every route request carries the token and APIGWSpaceGUID (which
// defaults to the part of APIKey before the colon).
type Config struct {
	// APIHost is the platform host, with or without scheme.
	APIHost string
	// API overrides the base URL derived from APIHost.
	API string
	// APIKey is the "uuid:key" credential sent as Basic authentication.
	APIKey string
	// Namespace is the client-wide default namespace.
	Namespace string
	// IgnoreCerts disables TLS certificate verification.
	IgnoreCerts bool
	// APIGWToken switches routes to the token based gateway API.
	APIGWToken string
	// APIGWSpaceGUID is sent with gateway requests in token mode.
	APIGWSpaceGUID string
	// UserAgent overrides the default User-Agent header.
	UserAgent string
	// AuthHandler replaces the Basic API key Authorization header.
	AuthHandler AuthHandler
	// HTTPTimeout bounds each HTTP round trip. Zero uses the library default.
	HTTPTimeout time.Duration
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the transport.
	Logger Logger
	// RequestInterceptors run before every request, in order.
	RequestInterceptors []RequestInterceptor
	// ResponseInterceptors run after every response, in order.
	ResponseInterceptors []ResponseInterceptor
}
