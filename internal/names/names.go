// Package names parses resource identifiers of the form "name",
// "package/name", "/namespace/name" and "/namespace/package/name".
package names

import (
	"fmt"
	"strings"

	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

const (
	separator = "/"

	// segment counts of "/ns/id" and "/ns/pkg/id" once split on the separator
	minQualifiedSegments = 3
	maxQualifiedSegments = 4
)

// Resolver resolves identifiers against a fixed default namespace. The zero
// value uses the platform sentinel "_".
type Resolver struct {
	defaultNamespace string
}

// NewResolver creates a resolver. An empty default falls back to "_".
func NewResolver(defaultNamespace string) Resolver {
	return Resolver{defaultNamespace: defaultNamespace}
}

// Default returns the namespace used for identifiers that carry none.
func (r Resolver) Default() string {
	if r.defaultNamespace == "" {
		return constants.DefaultNamespace
	}

	return r.defaultNamespace
}

// Parse splits resource into its namespace and id. Identifiers without a
// leading separator belong to the default namespace and are returned as is.
// Qualified identifiers with an empty segment are rejected.
func (r Resolver) Parse(resource string) (string, string, error) {
	if !IsQualified(resource) {
		return r.Default(), resource, nil
	}

	parts := strings.Split(resource, separator)
	if len(parts) < minQualifiedSegments || len(parts) > maxQualifiedSegments || hasEmptySegment(parts[1:]) {
		return "", "", fmt.Errorf("%w: %q", faas.ErrInvalidResourceIdentifier, resource)
	}

	return parts[1], strings.Join(parts[2:], separator), nil
}

func hasEmptySegment(segments []string) bool {
	for _, segment := range segments {
		if segment == "" {
			return true
		}
	}

	return false
}

// Namespace returns the namespace part of resource.
func (r Resolver) Namespace(resource string) (string, error) {
	namespace, _, err := r.Parse(resource)

	return namespace, err
}

// ID returns the id part of resource, including any package prefix.
func (r Resolver) ID(resource string) (string, error) {
	_, id, err := r.Parse(resource)

	return id, err
}

// Qualify returns the fully qualified "/namespace/name" form of name.
// Qualified names are returned unchanged; otherwise namespace is used,
// falling back to the default.
func (r Resolver) Qualify(name, namespace string) string {
	if IsQualified(name) {
		return name
	}

	if namespace == "" {
		namespace = r.Default()
	}

	return separator + namespace + separator + name
}

// IsQualified reports whether resource embeds its namespace.
func IsQualified(resource string) bool {
	return strings.HasPrefix(resource, separator)
}
