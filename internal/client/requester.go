package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"golang.org/x/sync/errgroup"

	internalhttp "github.com/fivetwenty-io/faas-client/internal/http"
	"github.com/fivetwenty-io/faas-client/internal/names"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// call is a fully validated request, ready to be sent.
type call struct {
	method string
	path   string
	query  map[string]interface{}
	body   interface{}
	// extract narrows the response body, e.g. to an activation's result.
	extract func(body json.RawMessage) (json.RawMessage, error)
}

// plan is the validated form of an Input: a single call, or one plan per
// batch element.
type plan struct {
	call  *call
	items []*plan
}

// prepareFunc turns the normalized options of one input into a call.
type prepareFunc func(options faas.Options) (*call, error)

// requester builds and performs calls for every resource client.
type requester struct {
	httpClient *internalhttp.Client
	resolver   names.Resolver
}

func newRequester(httpClient *internalhttp.Client, resolver names.Resolver) *requester {
	return &requester{httpClient: httpClient, resolver: resolver}
}

// run validates the whole input, then performs the resulting calls.
func (r *requester) run(ctx context.Context, in faas.Input, primaryKey string, prepare prepareFunc) (*faas.Result, error) {
	p, err := buildPlan(in, primaryKey, prepare)
	if err != nil {
		return nil, err
	}

	return r.execute(ctx, p)
}

func buildPlan(in faas.Input, primaryKey string, prepare prepareFunc) (*plan, error) {
	if in.Kind() != faas.InputBatch {
		c, err := prepare(in.Normalize(primaryKey))
		if err != nil {
			return nil, err
		}

		return &plan{call: c}, nil
	}

	items := make([]*plan, len(in.Items()))

	for i, item := range in.Items() {
		p, err := buildPlan(item, primaryKey, prepare)
		if err != nil {
			return nil, fmt.Errorf("batch item %d: %w", i, err)
		}

		items[i] = p
	}

	return &plan{items: items}, nil
}

// execute performs a plan. Batch elements run concurrently; results keep the
// input order and the first failure fails the batch.
func (r *requester) execute(ctx context.Context, p *plan) (*faas.Result, error) {
	if p.items == nil {
		return r.do(ctx, p.call)
	}

	results := make([]*faas.Result, len(p.items))

	group, groupCtx := errgroup.WithContext(ctx)

	for i, item := range p.items {
		item, i := item, i
		group.Go(func() error {
			result, err := r.execute(groupCtx, item)
			if err != nil {
				return err
			}

			results[i] = result

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err //nolint:wrapcheck // already a mapped API error
	}

	return &faas.Result{Items: results}, nil
}

func (r *requester) do(ctx context.Context, c *call) (*faas.Result, error) {
	resp, err := r.httpClient.Do(ctx, &internalhttp.Request{
		Method: c.method,
		Path:   c.path,
		Query:  queryValues(c.query),
		Body:   c.body,
	})
	if err != nil {
		return nil, mapError(err)
	}

	body := json.RawMessage(resp.Body)
	if len(body) == 0 {
		body = nil
	}

	if c.extract != nil && body != nil {
		body, err = c.extract(body)
		if err != nil {
			return nil, faas.NewAPIError(fmt.Sprintf("parsing response of %s %s: %v", c.method, c.path, err), err)
		}
	}

	return &faas.Result{Body: body}, nil
}

// selectQuery returns the options listed in allowed, values untouched.
func selectQuery(options faas.Options, allowed []string) map[string]interface{} {
	query := make(map[string]interface{})

	for _, key := range allowed {
		if value, ok := options[key]; ok {
			query[key] = value
		}
	}

	return query
}

func queryValues(query map[string]interface{}) url.Values {
	if len(query) == 0 {
		return nil
	}

	values := make(url.Values, len(query))
	for key, value := range query {
		values.Set(key, fmt.Sprint(value))
	}

	return values
}

// resourcePath builds "namespaces/{namespace}/{resource}[/{id}]". Package
// prefixes in id stay path separators.
func resourcePath(namespace, resource, id string) string {
	path := "namespaces/" + url.PathEscape(namespace) + "/" + resource
	if id == "" {
		return path
	}

	segments := strings.Split(id, "/")
	for i, segment := range segments {
		segments[i] = url.PathEscape(segment)
	}

	return path + "/" + strings.Join(segments, "/")
}

// identifier returns the first of keys present in options.
func identifier(options faas.Options, keys []string) (string, error) {
	for _, key := range keys {
		value, ok := options[key]
		if !ok {
			continue
		}

		id, ok := value.(string)
		if !ok || id == "" {
			return "", fmt.Errorf("%w: %s must be a non-empty string", faas.ErrInvalidResourceIdentifier, key)
		}

		return id, nil
	}

	return "", fmt.Errorf("%w, expected one of: %s", faas.ErrMissingResourceIdentifier, strings.Join(keys, ", "))
}

// namespaceOption returns the "namespace" option when it is a non-empty string.
func namespaceOption(options faas.Options) string {
	namespace, _ := options.String("namespace")

	return namespace
}

// target resolves the namespace and id an identifier addresses. An embedded
// namespace wins over the "namespace" option, which wins over the default.
func (r *requester) target(options faas.Options, keys []string) (string, string, error) {
	resource, err := identifier(options, keys)
	if err != nil {
		return "", "", err
	}

	namespace, id, err := r.resolver.Parse(resource)
	if err != nil {
		return "", "", err //nolint:wrapcheck // sentinel carries the identifier
	}

	// an empty id would address the collection instead of one entity
	if id == "" {
		return "", "", fmt.Errorf("%w: %q has no entity name", faas.ErrInvalidResourceIdentifier, resource)
	}

	if !names.IsQualified(resource) {
		if option := namespaceOption(options); option != "" {
			namespace = option
		}
	}

	return namespace, id, nil
}

// listNamespace returns the namespace for operations without identifier.
func (r *requester) listNamespace(options faas.Options) string {
	if namespace := namespaceOption(options); namespace != "" {
		return namespace
	}

	return r.resolver.Default()
}
