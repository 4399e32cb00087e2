package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// NewActivationsCommand creates the activation command group.
func NewActivationsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activation",
		Aliases: []string{"activations"},
		Short:   "Inspect activations",
		Long:    "List activation records and read their logs and results",
	}

	cmd.AddCommand(newActivationsListCommand())
	cmd.AddCommand(newActivationsReadCommand("get", "Get activation records", faas.ActivationsClient.Get))
	cmd.AddCommand(newActivationsReadCommand("logs", "Get activation logs", faas.ActivationsClient.Logs))
	cmd.AddCommand(newActivationsReadCommand("result", "Get activation results", faas.ActivationsClient.Result))

	return cmd
}

func newActivationsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [ENTITY_NAME]",
		Short: "List activations",
		Long:  "List activation records, optionally only those of one entity",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := listOptions(cmd, faas.Options{})

			if len(args) == 1 {
				options["name"] = args[0]
			}

			for _, name := range []string{"since", "upto"} {
				if cmd.Flags().Changed(name) {
					value, _ := cmd.Flags().GetInt64(name)
					options[name] = value
				}
			}

			if docs, _ := cmd.Flags().GetBool("full"); docs {
				options["docs"] = true
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Activations().List(ctx, options)
			}, activationColumns)
		},
	}

	addListFlags(cmd)
	cmd.Flags().Int64("since", 0, "only activations started after this epoch time in milliseconds")
	cmd.Flags().Int64("upto", 0, "only activations started before this epoch time in milliseconds")
	cmd.Flags().BoolP("full", "f", false, "include full activation records")

	return cmd
}

type activationFunc func(client faas.ActivationsClient, ctx context.Context, in faas.Input) (*faas.Result, error)

func newActivationsReadCommand(use, short string, read activationFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ACTIVATION_ID...",
		Short: short,
		Long:  short + "; several ids are fetched concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return read(client.Activations(), ctx, namedInput(args, faas.Options{}))
			}, nil)
		},
	}
}
