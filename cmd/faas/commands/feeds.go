package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// NewFeedsCommand creates the feed command group.
func NewFeedsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "feed",
		Aliases: []string{"feeds"},
		Short:   "Drive trigger feeds",
		Long:    "Send lifecycle events to a feed action on behalf of a trigger",
	}

	cmd.AddCommand(newFeedsEventCommand("create", "Register a trigger with a feed", faas.FeedsClient.Create))
	cmd.AddCommand(newFeedsEventCommand("delete", "Unregister a trigger from a feed", faas.FeedsClient.Delete))
	cmd.AddCommand(newFeedsEventCommand("get", "Read the feed registration of a trigger", faas.FeedsClient.Get))
	cmd.AddCommand(newFeedsEventCommand("update", "Change the feed registration of a trigger", faas.FeedsClient.Update))

	return cmd
}

type feedFunc func(client faas.FeedsClient, ctx context.Context, options faas.Options) (*faas.Result, error)

func newFeedsEventCommand(use, short string, event feedFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " FEED_NAME TRIGGER_NAME",
		Short: short,
		Long:  short + " by invoking the feed action",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := paramOptions(cmd)
			if err != nil {
				return err
			}

			options["feedName"] = args[0]
			options["trigger"] = args[1]

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return event(client.Feeds(), ctx, options)
			}, nil)
		},
	}

	addParamFlags(cmd, false)

	return cmd
}
