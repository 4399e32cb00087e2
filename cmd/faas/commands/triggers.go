package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// NewTriggersCommand creates the trigger command group.
func NewTriggersCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "trigger",
		Aliases: []string{"triggers"},
		Short:   "Manage triggers",
		Long:    "List, create, update, delete and fire triggers",
	}

	cmd.AddCommand(newTriggersListCommand())
	cmd.AddCommand(newTriggersGetCommand())
	cmd.AddCommand(newTriggersCreateCommand())
	cmd.AddCommand(newTriggersUpdateCommand())
	cmd.AddCommand(newTriggersDeleteCommand())
	cmd.AddCommand(newTriggersFireCommand())

	return cmd
}

func newTriggersListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List triggers",
		Long:  "List the triggers of the namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := listOptions(cmd, faas.Options{})

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Triggers().List(ctx, options)
			}, entityColumns)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newTriggersGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get TRIGGER_NAME...",
		Short: "Get trigger details",
		Long:  "Display the details of one or more triggers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Triggers().Get(ctx, namedInput(args, faas.Options{}))
			}, nil)
		},
	}
}

// triggerOptions turns --param into the trigger document parameters.
func triggerOptions(cmd *cobra.Command, name string) (faas.Options, error) {
	options, err := paramOptions(cmd)
	if err != nil {
		return nil, err
	}

	trigger := map[string]interface{}{}

	if params, ok := options["params"].(map[string]interface{}); ok {
		trigger["parameters"] = faas.Pairs(params)
		delete(options, "params")
	}

	options["name"] = name
	options["trigger"] = trigger

	return options, nil
}

func newTriggersCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create TRIGGER_NAME",
		Short: "Create a trigger",
		Long:  "Create a trigger, optionally connected to a feed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := triggerOptions(cmd, args[0])
			if err != nil {
				return err
			}

			feed, _ := cmd.Flags().GetString("feed")

			var feedParams map[string]interface{}

			if feed != "" {
				trigger, _ := options["trigger"].(map[string]interface{})
				feedParams = feedParameters(trigger)

				annotations, _ := options["annotations"].(map[string]interface{})
				if annotations == nil {
					annotations = map[string]interface{}{}
				}

				annotations["feed"] = feed
				options["annotations"] = annotations
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				result, err := client.Triggers().Create(ctx, faas.Opts(options))
				if err != nil || feed == "" {
					return result, err
				}

				_, err = client.Feeds().Create(ctx, faas.Options{
					"feedName": feed,
					"trigger":  args[0],
					"params":   feedParams,
				})
				if err != nil {
					return nil, fmt.Errorf("trigger %s created, but registering it with feed %s failed: %w", args[0], feed, err)
				}

				return result, nil
			}, nil)
		},
	}

	cmd.Flags().StringP("feed", "f", "", "feed action the trigger is fed by")
	addParamFlags(cmd, true)

	return cmd
}

// feedParameters returns the trigger parameters as a plain mapping, the
// shape the feed action expects.
func feedParameters(trigger map[string]interface{}) map[string]interface{} {
	params := map[string]interface{}{}

	pairs, _ := trigger["parameters"].([]faas.KeyValue)
	for _, pair := range pairs {
		params[pair.Key] = pair.Value
	}

	return params
}

func newTriggersUpdateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update TRIGGER_NAME",
		Short: "Update a trigger",
		Long:  "Replace the parameters and annotations of a trigger",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := triggerOptions(cmd, args[0])
			if err != nil {
				return err
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Triggers().Update(ctx, faas.Opts(options))
			}, nil)
		},
	}

	addParamFlags(cmd, true)

	return cmd
}

func newTriggersDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete TRIGGER_NAME...",
		Short: "Delete triggers",
		Long:  "Delete one or more triggers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Triggers().Delete(ctx, namedInput(args, faas.Options{}))
			}, nil)
		},
	}
}

func newTriggersFireCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fire TRIGGER_NAME...",
		Short: "Fire triggers",
		Long:  "Fire one or more triggers with the same parameters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := paramOptions(cmd)
			if err != nil {
				return err
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Triggers().Invoke(ctx, namedInput(args, options))
			}, nil)
		},
	}

	addParamFlags(cmd, false)

	return cmd
}
