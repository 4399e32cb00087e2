package commands

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// binaryExtensions are uploaded as base64 encoded archives.
var binaryExtensions = map[string]bool{".zip": true, ".jar": true}

// NewActionsCommand creates the action command group.
func NewActionsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "action",
		Aliases: []string{"actions"},
		Short:   "Manage actions",
		Long:    "List, create, update, delete and invoke actions",
	}

	cmd.AddCommand(newActionsListCommand())
	cmd.AddCommand(newActionsGetCommand())
	cmd.AddCommand(newActionsSaveCommand("create", "Create an action", faas.ActionsClient.Create))
	cmd.AddCommand(newActionsSaveCommand("update", "Update an action", faas.ActionsClient.Update))
	cmd.AddCommand(newActionsDeleteCommand())
	cmd.AddCommand(newActionsInvokeCommand())

	return cmd
}

func newActionsListCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List actions",
		Long:  "List the actions of the namespace",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			options := listOptions(cmd, faas.Options{})

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Actions().List(ctx, options)
			}, entityColumns)
		},
	}

	addListFlags(cmd)

	return cmd
}

func newActionsGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get ACTION_NAME...",
		Short: "Get action details",
		Long:  "Display the details of one or more actions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := faas.Options{}

			if cmd.Flags().Changed("code") {
				code, _ := cmd.Flags().GetBool("code")
				options["code"] = code
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Actions().Get(ctx, namedInput(args, options))
			}, nil)
		},
	}

	cmd.Flags().Bool("code", true, "include the action code")

	return cmd
}

type saveFunc func(client faas.ActionsClient, ctx context.Context, in faas.Input) (*faas.Result, error)

func newActionsSaveCommand(use, short string, save saveFunc) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " ACTION_NAME [FILE]",
		Short: short,
		Long:  short + " from a source file, an archive or a sequence of existing actions",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := actionOptions(cmd, args)
			if err != nil {
				return err
			}

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return save(client.Actions(), ctx, faas.Opts(options))
			}, nil)
		},
	}

	cmd.Flags().String("kind", "", "runtime kind, e.g. nodejs:20 or python:3")
	cmd.Flags().StringSlice("sequence", nil, "comma separated action names composing a sequence")
	cmd.Flags().Int("timeout", 0, "timeout limit in milliseconds")
	cmd.Flags().Int("memory", 0, "memory limit in megabytes")
	cmd.Flags().Bool("web", false, "export the action as a web action")
	addParamFlags(cmd, true)

	return cmd
}

// actionOptions builds the create/update options from the arguments and flags.
func actionOptions(cmd *cobra.Command, args []string) (faas.Options, error) {
	options, err := paramOptions(cmd)
	if err != nil {
		return nil, err
	}

	options["name"] = args[0]

	if len(args) > 1 {
		code, err := os.ReadFile(args[1])
		if err != nil {
			return nil, fmt.Errorf("reading action file: %w", err)
		}

		if binaryExtensions[strings.ToLower(filepath.Ext(args[1]))] {
			options["action"] = code
		} else {
			options["action"] = string(code)
		}
	}

	if sequence, _ := cmd.Flags().GetStringSlice("sequence"); len(sequence) > 0 {
		options["sequence"] = sequence
	}

	if kind, _ := cmd.Flags().GetString("kind"); kind != "" {
		options["kind"] = kind
	}

	limits := map[string]interface{}{}

	for _, name := range []string{"timeout", "memory"} {
		if cmd.Flags().Changed(name) {
			value, _ := cmd.Flags().GetInt(name)
			limits[name] = value
		}
	}

	if len(limits) > 0 {
		options["limits"] = limits
	}

	if web, _ := cmd.Flags().GetBool("web"); web {
		annotations, _ := options["annotations"].(map[string]interface{})
		if annotations == nil {
			annotations = map[string]interface{}{}
		}

		annotations["web-export"] = true
		options["annotations"] = annotations
	}

	return options, nil
}

func newActionsDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete ACTION_NAME...",
		Short: "Delete actions",
		Long:  "Delete one or more actions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Actions().Delete(ctx, namedInput(args, faas.Options{}))
			}, nil)
		},
	}
}

func newActionsInvokeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoke ACTION_NAME...",
		Short: "Invoke actions",
		Long:  "Invoke one or more actions with the same parameters",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options, err := paramOptions(cmd)
			if err != nil {
				return err
			}

			blocking, _ := cmd.Flags().GetBool("blocking")
			result, _ := cmd.Flags().GetBool("result")

			options["blocking"] = blocking || result
			options["result"] = result

			return runOperation(cmd, func(ctx context.Context, client faas.Client) (*faas.Result, error) {
				return client.Actions().Invoke(ctx, namedInput(args, options))
			}, nil)
		},
	}

	cmd.Flags().BoolP("blocking", "b", false, "wait for the activation to complete")
	cmd.Flags().BoolP("result", "r", false, "wait and print only the activation result")
	addParamFlags(cmd, false)

	return cmd
}
