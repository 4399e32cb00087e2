package commands

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// NewPackagesCommand creates the package command group.
func NewPackagesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "package",
		Aliases: []string{"packages", "pkg"},
		Short:   "Manage packages",
		Long:    "List, create, update and delete packages",
	}

	cmd.AddCommand(newPackagesListCommand())
	cmd.AddCommand(newPackagesGetCommand())
	cmd.AddCommand(newPackagesSaveCommand("create", "Create a package", faas.PackagesClient.Create))
	cmd.AddCommand(newPackagesSaveCommand("update", "Update a package", faas.PackagesClient.Update))
	cmd.AddCommand(newPackagesDeleteCommand())

	return cmd
}

func newPackagesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List packages",
		Long:  "List the packages of the namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := listOptions(cmd, faas.Options{})

			if public, _ := cmd.Flags().GetBool("public"); public {
				options["public"] = true
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Packages().List(ctx, options)
			}, entityColumns)
		},
	}

	addListFlags(cmd)
	cmd.Flags().Bool("public", false, "include packages shared by other namespaces")

	return cmd
}

func newPackagesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get PACKAGE_NAME...",
		Short: "Get package details",
		Long:  "Display the details of one or more packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Packages().Get(ctx, namedInput(args, faas.Options{}))
			}, nil)
		},
	}
}

type packageFunc func(client faas.PackagesClient, ctx context.Context, in faas.Input) (*faas.Result, error)

func newPackagesSaveCommand(use, short string, save packageFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " PACKAGE_NAME",
		Short: short,
		Long:  short + " with default parameters and annotations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := paramOptions(cmd)
			if err != nil {
				return err
			}

			document := map[string]interface{}{}

			if params, ok := flags["params"].(map[string]interface{}); ok {
				document["parameters"] = faas.Pairs(params)
			}

			if annotations, ok := flags["annotations"].(map[string]interface{}); ok {
				document["annotations"] = faas.Pairs(annotations)
			}

			if shared, _ := cmd.Flags().GetBool("shared"); shared {
				document["publish"] = true
			}

			options := faas.Options{"name": args[0], "package": document}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return save(client.Packages(), ctx, faas.Opts(options))
			}, nil)
		},
	}

	cmd.Flags().Bool("shared", false, "share the package with other namespaces")
	addParamFlags(cmd, true)

	return cmd
}

func newPackagesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete PACKAGE_NAME...",
		Short: "Delete packages",
		Long:  "Delete one or more packages",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Packages().Delete(ctx, namedInput(args, faas.Options{}))
			}, nil)
		},
	}
}
