package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// primaryKey is the option a bare identifier is stored under.
const primaryKey = "name"

// resourceSpec configures the generic operations for one resource family.
type resourceSpec struct {
	// name is the path segment, e.g. "actions".
	name string
	// identifiers lists the accepted identifier options in priority order.
	identifiers []string

	listQuery   []string
	getQuery    []string
	invokeQuery []string
	createQuery []string

	// createBody derives the create/update body. Nil sends no body.
	createBody func(options faas.Options) (interface{}, error)
}

// resources implements the identifier based operations shared by actions,
// packages, rules and triggers.
type resources struct {
	*requester
	spec resourceSpec
}

func newResources(req *requester, spec resourceSpec) *resources {
	return &resources{requester: req, spec: spec}
}

// List lists the resources of a namespace.
func (r *resources) List(ctx context.Context, options faas.Options) (*faas.Result, error) {
	result, err := r.do(ctx, &call{
		method: http.MethodGet,
		path:   resourcePath(r.listNamespace(options), r.spec.name, ""),
		query:  selectQuery(options, r.spec.listQuery),
	})
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", r.spec.name, err)
	}

	return result, nil
}

// Get retrieves one resource per input.
func (r *resources) Get(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return r.perform(ctx, "getting", in, r.getCall)
}

// Invoke invokes one resource per input.
func (r *resources) Invoke(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return r.perform(ctx, "invoking", in, r.invokeCall)
}

// Create creates one resource per input.
func (r *resources) Create(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return r.perform(ctx, "creating", in, r.createCall)
}

// Update creates or replaces one resource per input.
func (r *resources) Update(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return r.perform(ctx, "updating", in, r.updateCall)
}

// Delete deletes one resource per input.
func (r *resources) Delete(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return r.perform(ctx, "deleting", in, r.deleteCall)
}

func (r *resources) perform(ctx context.Context, verb string, in faas.Input, prepare prepareFunc) (*faas.Result, error) {
	result, err := r.run(ctx, in, primaryKey, prepare)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", verb, r.spec.name, err)
	}

	return result, nil
}

func (r *resources) path(options faas.Options) (string, error) {
	namespace, id, err := r.target(options, r.spec.identifiers)
	if err != nil {
		return "", err
	}

	return resourcePath(namespace, r.spec.name, id), nil
}

func (r *resources) getCall(options faas.Options) (*call, error) {
	path, err := r.path(options)
	if err != nil {
		return nil, err
	}

	return &call{method: http.MethodGet, path: path, query: selectQuery(options, r.spec.getQuery)}, nil
}

func (r *resources) invokeCall(options faas.Options) (*call, error) {
	path, err := r.path(options)
	if err != nil {
		return nil, err
	}

	body := map[string]interface{}{}

	if params, present, ok := options.Mapping("params"); present {
		if !ok {
			return nil, fmt.Errorf("%w, got %T", faas.ErrInvalidPayloadType, options["params"])
		}

		body = params
	}

	return &call{
		method: http.MethodPost,
		path:   path,
		query:  selectQuery(options, r.spec.invokeQuery),
		body:   body,
	}, nil
}

func (r *resources) createCall(options faas.Options) (*call, error) {
	path, err := r.path(options)
	if err != nil {
		return nil, err
	}

	c := &call{method: http.MethodPut, path: path, query: selectQuery(options, r.spec.createQuery)}

	if r.spec.createBody != nil {
		c.body, err = r.spec.createBody(options)
		if err != nil {
			return nil, err
		}
	}

	return c, nil
}

func (r *resources) updateCall(options faas.Options) (*call, error) {
	c, err := r.createCall(options)
	if err != nil {
		return nil, err
	}

	c.query["overwrite"] = true

	return c, nil
}

func (r *resources) deleteCall(options faas.Options) (*call, error) {
	path, err := r.path(options)
	if err != nil {
		return nil, err
	}

	return &call{method: http.MethodDelete, path: path}, nil
}

// notSupported rejects an operation without looking at its input.
func notSupported(resource, operation string) error {
	return fmt.Errorf("%w: %s does not support %s", faas.ErrOperationNotSupported, resource, operation)
}

// pairs converts an optional mapping option into key/value pairs. The
// second result is false when the option is absent.
func pairs(options faas.Options, key string) ([]faas.KeyValue, bool, error) {
	mapping, present, ok := options.Mapping(key)
	if !present {
		return nil, false, nil
	}

	if !ok {
		return nil, true, fmt.Errorf("%w: %s must be a mapping, got %T", faas.ErrInvalidPayloadType, key, options[key])
	}

	return faas.Pairs(mapping), true, nil
}
