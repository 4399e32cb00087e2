package commands

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// NewRoutesCommand creates the route command group.
func NewRoutesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "route",
		Aliases: []string{"routes", "api"},
		Short:   "Manage API gateway routes",
		Long:    "Expose actions through the API gateway",
	}

	cmd.AddCommand(newRoutesListCommand())
	cmd.AddCommand(newRoutesGetCommand())
	cmd.AddCommand(newRoutesCreateCommand())
	cmd.AddCommand(newRoutesDeleteCommand())

	return cmd
}

// apiSelector addresses an API by base path when the argument is a path,
// by API name otherwise.
func apiSelector(arg string) faas.Options {
	if strings.HasPrefix(arg, "/") {
		return faas.Options{"basepath": arg}
	}

	return faas.Options{"name": arg}
}

func newRoutesListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list [BASE_PATH|API_NAME]",
		Short: "List routes",
		Long:  "List the routes of an API, or of the root base path",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := faas.Options{"basepath": "/"}
			if len(args) == 1 {
				options = apiSelector(args[0])
			}

			options = listOptions(cmd, options)

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Routes().List(ctx, options)
			}, nil)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newRoutesGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get BASE_PATH|API_NAME",
		Short: "Get an API",
		Long:  "Display the API document of a base path or API name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := apiSelector(args[0])

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Routes().Get(ctx, options)
			}, nil)
		},
	}
}

func newRoutesCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create BASE_PATH REL_PATH OPERATION ACTION_NAME",
		Short: "Create a route",
		Long: `Map a base path, relative path and HTTP verb onto an action.
With --swagger the whole API is created from a swagger document instead.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if swagger, _ := cmd.Flags().GetString("swagger"); swagger != "" {
				return cobra.NoArgs(cmd, args)
			}

			return cobra.ExactArgs(4)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := routeOptions(cmd, args)
			if err != nil {
				return err
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Routes().Create(ctx, options)
			}, nil)
		},
	}

	cmd.Flags().String("name", "", "name of the API")
	cmd.Flags().String("response-type", "json", "web action response type (json, http, html, svg, text)")
	cmd.Flags().String("swagger", "", "create the API from this swagger file")

	return cmd
}

func routeOptions(cmd *cobra.Command, args []string) (faas.Options, error) {
	options := faas.Options{}

	if responseType, _ := cmd.Flags().GetString("response-type"); responseType != "" {
		options["responsetype"] = responseType
	}

	if swagger, _ := cmd.Flags().GetString("swagger"); swagger != "" {
		document, err := os.ReadFile(swagger) //nolint:gosec // user-provided swagger file
		if err != nil {
			return nil, fmt.Errorf("reading swagger file: %w", err)
		}

		options["swagger"] = string(document)

		return options, nil
	}

	options["basepath"] = args[0]
	options["relpath"] = args[1]
	options["operation"] = strings.ToUpper(args[2])
	options["action"] = args[3]

	if name, _ := cmd.Flags().GetString("name"); name != "" {
		options["name"] = name
	}

	return options, nil
}

func newRoutesDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete BASE_PATH|API_NAME [REL_PATH OPERATION]",
		Short: "Delete routes",
		Long:  "Delete a single route, or the whole API when only the base path is given",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 2 {
				return ErrRouteArguments
			}

			options := apiSelector(args[0])
			if len(args) == 3 {
				options["relpath"] = args[1]
				options["operation"] = args[2]
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Routes().Delete(ctx, options)
			}, nil)
		},
	}
}
