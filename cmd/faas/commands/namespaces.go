package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// NewNamespacesCommand creates the namespace command group.
func NewNamespacesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "namespace",
		Aliases: []string{"namespaces", "ns"},
		Short:   "Inspect namespaces",
		Long:    "List namespaces and the entities they contain",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List namespaces",
		Long:  "List the namespaces the credentials can access",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Namespaces().List(ctx)
			}, nil)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get NAMESPACE...",
		Short: "Get namespace entities",
		Long:  "List the entities of one or more namespaces",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Namespaces().Get(ctx, namedInput(args, faas.Options{}))
			}, nil)
		},
	})

	return cmd
}
