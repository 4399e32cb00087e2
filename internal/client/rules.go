package client

import (
	"context"

	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// RulesClient implements faas.RulesClient.
type RulesClient struct {
	*resources
}

// NewRulesClient creates a new rules client.
func NewRulesClient(req *requester) *RulesClient {
	client := &RulesClient{}
	client.resources = newResources(req, resourceSpec{
		name:        "rules",
		identifiers: []string{"ruleName", primaryKey},
		listQuery:   []string{"skip", "limit", "count"},
		createQuery: []string{"overwrite"},
		createBody:  client.ruleBody,
	})

	return client
}

// Invoke is not supported for rules.
func (c *RulesClient) Invoke(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return nil, notSupported("rules", "invoke")
}

// Enable activates one rule per input.
func (c *RulesClient) Enable(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return c.perform(ctx, "enabling", in, c.statusCall(constants.RuleStatusActive))
}

// Disable deactivates one rule per input.
func (c *RulesClient) Disable(ctx context.Context, in faas.Input) (*faas.Result, error) {
	return c.perform(ctx, "disabling", in, c.statusCall(constants.RuleStatusInactive))
}

func (c *RulesClient) statusCall(status string) prepareFunc {
	return func(options faas.Options) (*call, error) {
		options["params"] = map[string]interface{}{"status": status}

		return c.invokeCall(options)
	}
}

// ruleBody links a trigger to an action by fully qualified names.
func (c *RulesClient) ruleBody(options faas.Options) (interface{}, error) {
	action, ok := options.String("action")
	if !ok || action == "" {
		return nil, faas.ErrMissingRuleAction
	}

	trigger, ok := options.String("trigger")
	if !ok || trigger == "" {
		return nil, faas.ErrMissingRuleTrigger
	}

	namespace := namespaceOption(options)

	return &faas.RuleDocument{
		Action:  c.resolver.Qualify(action, namespace),
		Trigger: c.resolver.Qualify(trigger, namespace),
	}, nil
}
