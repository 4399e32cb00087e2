package constants

import "time"

// Namespace and resource defaults.
const (
	// DefaultNamespace is the platform sentinel for "the caller's own namespace".
	DefaultNamespace = "_"

	// DefaultActionKind is used when an action is created from code without a kind.
	DefaultActionKind = "nodejs:default"

	// SequenceKind is the exec kind of sequence actions.
	SequenceKind = "sequence"

	// DefaultPackage is the package segment used in web action URLs for unpackaged actions.
	DefaultPackage = "default"
)

// API addressing.
const (
	// APIPathSuffix is appended to a bare API host to build the API base URL.
	APIPathSuffix = "/api/v1/"

	// DefaultScheme is prepended to API hosts given without a scheme.
	DefaultScheme = "https://"

	// DefaultUserAgent identifies the library on outgoing requests.
	DefaultUserAgent = "faas-client"
)

// Gateway route management paths.
const (
	// RouteMgmtTokenPathFormat addresses the HTTP-method based API gateway management actions.
	RouteMgmtTokenPathFormat = "web/whisk.system/apimgmt/%s.http"

	// RouteMgmtDocPathFormat addresses the document based API gateway management actions.
	RouteMgmtDocPathFormat = "experimental/web/whisk.system/routemgmt/%s.json"
)

// Feed lifecycle events.
const (
	FeedEventCreate = "CREATE"
	FeedEventDelete = "DELETE"
	FeedEventRead   = "READ"
	FeedEventUpdate = "UPDATE"
)

// Rule states.
const (
	RuleStatusActive   = "active"
	RuleStatusInactive = "inactive"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Transport error messages.
const (
	// MissingErrorMessage is the detail used when an error body carries no usable message.
	MissingErrorMessage = "Response Missing Error Message."

	// UnknownErrorPrefix prefixes failures that never produced an HTTP status.
	UnknownErrorPrefix = "Unknown Error From API: "
)

// NATS subjects.
const (
	// EventSubjectPrefix is the subject prefix for published request events.
	EventSubjectPrefix = "faas.requests."
)

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750
)

// Format constants.
const (
	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"

	// FormatTable for table output format.
	FormatTable = "table"
)

// Display constants.
const (
	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// BooleanTrue string representation.
	BooleanTrue = "true"
)
