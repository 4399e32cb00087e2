package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// FeedsClient implements faas.FeedsClient on top of action invocation: a
// lifecycle event is delivered by invoking the feed action blocking.
type FeedsClient struct {
	actions *ActionsClient
	apiKey  string
}

// NewFeedsClient creates a new feeds client. apiKey is handed to the feed
// action so it can fire the trigger.
func NewFeedsClient(actions *ActionsClient, apiKey string) *FeedsClient {
	return &FeedsClient{actions: actions, apiKey: apiKey}
}

// Create registers the trigger with the feed.
func (c *FeedsClient) Create(ctx context.Context, options faas.Options) (*faas.Result, error) {
	return c.feed(ctx, constants.FeedEventCreate, options)
}

// Delete unregisters the trigger from the feed.
func (c *FeedsClient) Delete(ctx context.Context, options faas.Options) (*faas.Result, error) {
	return c.feed(ctx, constants.FeedEventDelete, options)
}

// Get reads the feed registration of the trigger.
func (c *FeedsClient) Get(ctx context.Context, options faas.Options) (*faas.Result, error) {
	return c.feed(ctx, constants.FeedEventRead, options)
}

// Update changes the feed registration of the trigger.
func (c *FeedsClient) Update(ctx context.Context, options faas.Options) (*faas.Result, error) {
	return c.feed(ctx, constants.FeedEventUpdate, options)
}

func (c *FeedsClient) feed(ctx context.Context, event string, options faas.Options) (*faas.Result, error) {
	invocation, err := c.invocation(event, options)
	if err != nil {
		return nil, fmt.Errorf("feed %s: %w", event, err)
	}

	return c.actions.Invoke(ctx, faas.Opts(invocation))
}

// invocation builds the options of the feed action invocation.
func (c *FeedsClient) invocation(event string, options faas.Options) (faas.Options, error) {
	feedName, err := identifier(options, []string{"feedName", primaryKey})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", faas.ErrMissingFeedName, err)
	}

	trigger, ok := options.String("trigger")
	if !ok || trigger == "" {
		return nil, faas.ErrMissingFeedTrigger
	}

	namespace := namespaceOption(options)

	params := map[string]interface{}{}

	userParams, present, ok := options.Mapping("params")
	if present && !ok {
		return nil, fmt.Errorf("%w, got %T", faas.ErrInvalidPayloadType, options["params"])
	}

	for key, value := range userParams {
		params[key] = value
	}

	params["lifecycleEvent"] = event
	params["authKey"] = c.apiKey
	params["triggerName"] = c.actions.resolver.Qualify(trigger, namespace)

	invocation := faas.Options{
		primaryKey: feedName,
		"params":   params,
		"blocking": true,
	}

	if namespace != "" {
		invocation["namespace"] = namespace
	}

	return invocation, nil
}
