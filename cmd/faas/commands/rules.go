package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// NewRulesCommand creates the rule command group.
func NewRulesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "rule",
		Aliases: []string{"rules"},
		Short:   "Manage rules",
		Long:    "List, create, update, delete, enable and disable rules",
	}

	cmd.AddCommand(newRulesListCommand())
	cmd.AddCommand(newRulesGetCommand())
	cmd.AddCommand(newRulesSaveCommand("create", "Create a rule", faas.RulesClient.Create))
	cmd.AddCommand(newRulesSaveCommand("update", "Update a rule", faas.RulesClient.Update))
	cmd.AddCommand(newRulesBatchCommand("delete", "Delete rules", faas.RulesClient.Delete))
	cmd.AddCommand(newRulesBatchCommand("enable", "Enable rules", faas.RulesClient.Enable))
	cmd.AddCommand(newRulesBatchCommand("disable", "Disable rules", faas.RulesClient.Disable))

	return cmd
}

type ruleFunc func(client faas.RulesClient, ctx context.Context, in faas.Input) (*faas.Result, error)

func newRulesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rules",
		Long:  "List the rules of the namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := listOptions(cmd, faas.Options{})

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Rules().List(ctx, options)
			}, ruleColumns)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newRulesGetCommand() *cobra.Command {
	return newRulesBatchCommand("get", "Get rule details", faas.RulesClient.Get)
}

func newRulesSaveCommand(use, short string, save ruleFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " RULE_NAME TRIGGER_NAME ACTION_NAME",
		Short: short,
		Long:  short + " linking a trigger to an action",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := faas.Options{
				"name":    args[0],
				"trigger": args[1],
				"action":  args[2],
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return save(client.Rules(), ctx, faas.Opts(options))
			}, nil)
		},
	}
}

func newRulesBatchCommand(use, short string, apply ruleFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " RULE_NAME...",
		Short: short,
		Long:  short + "; several names are handled concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return apply(client.Rules(), ctx, namedInput(args, faas.Options{}))
			}, nil)
		},
	}
}
