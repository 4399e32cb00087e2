package commands

import (
	"errors"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Static errors for err113 compliance.
var (
	ErrInvalidKeyValue       = errors.New("invalid key=value pair")
	ErrUnknownOutputFormat   = errors.New("unknown output format")
	ErrPropertiesFileMissing = errors.New("properties file not found")
	ErrRouteArguments        = errors.New("relpath and operation must be given together")
)

// Global flag names, also used as viper keys.
const (
	flagConfig    = "config"
	flagAPIHost   = "apihost"
	flagAuth      = "auth"
	flagNamespace = "namespace"
	flagInsecure  = "insecure"
	flagOutput    = "output"
	flagVerbose   = "verbose"
	flagEventsURL = "events-url"
)

// NewRootCommand creates the faas command tree.
func NewRootCommand(version, commit, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "faas",
		Short: "Serverless platform CLI",
		Long: `A command-line interface for managing actions, triggers, rules, packages,
activations, namespaces, routes and feeds on an OpenWhisk compatible platform.

Settings are read from the __OW_* environment variables and the properties
file (default $WSK_CONFIG_FILE or $HOME/.wskprops); flags override both.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.String(flagConfig, "", "properties file (default is $HOME/.wskprops)")
	flags.String(flagAPIHost, "", "platform API host")
	flags.StringP(flagAuth, "u", "", "authorization key (uuid:key)")
	flags.StringP(flagNamespace, "n", "", "default namespace")
	flags.BoolP(flagInsecure, "i", false, "skip TLS certificate verification")
	flags.StringP(flagOutput, "o", "", "output format (table, json, yaml); table on a terminal, json otherwise")
	flags.BoolP(flagVerbose, "v", false, "log requests and responses to stderr")
	flags.String(flagEventsURL, "", "NATS server URL to publish request events to")

	for _, name := range []string{flagConfig, flagAPIHost, flagAuth, flagNamespace, flagInsecure, flagOutput, flagVerbose, flagEventsURL} {
		_ = viper.BindPFlag(name, flags.Lookup(name))
	}

	rootCmd.AddCommand(NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(NewPropertyCommand())
	rootCmd.AddCommand(NewActionsCommand())
	rootCmd.AddCommand(NewActivationsCommand())
	rootCmd.AddCommand(NewFeedsCommand())
	rootCmd.AddCommand(NewNamespacesCommand())
	rootCmd.AddCommand(NewPackagesCommand())
	rootCmd.AddCommand(NewRoutesCommand())
	rootCmd.AddCommand(NewRulesCommand())
	rootCmd.AddCommand(NewTriggersCommand())

	return rootCmd
}
