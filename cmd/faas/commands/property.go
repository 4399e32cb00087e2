package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/faas-client/internal/client"
	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/pkg/faasclient"
)

// NewPropertyCommand creates the property command group.
func NewPropertyCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "property",
		Aliases: []string{"properties"},
		Short:   "Manage CLI properties",
		Long:    "Show the resolved settings and edit the properties file",
	}

	cmd.AddCommand(newPropertyGetCommand())
	cmd.AddCommand(newPropertySetCommand())

	return cmd
}

func newPropertyGetCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get",
		Short: "Show the resolved settings",
		Long:  "Show the settings after applying environment, properties file and flags",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			showAuth, _ := cmd.Flags().GetBool("show-auth")

			auth := maskKey(config.APIKey)
			if showAuth {
				auth = config.APIKey
			}

			properties := map[string]interface{}{
				"apihost":      valueOrNA(config.APIHost),
				"api":          client.APIBaseURL(config),
				"auth":         valueOrNA(auth),
				"namespace":    valueOrNA(config.Namespace),
				"ignore_certs": config.IgnoreCerts,
				"apigw_token":  valueOrNA(maskKey(config.APIGWToken)),
			}

			return renderDocument(cmd.OutOrStdout(), properties, nil)
		},
	}

	cmd.Flags().Bool("show-auth", false, "show the authorization key unmasked")

	return cmd
}

func newPropertySetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a property",
		Long: fmt.Sprintf("Store a property in the properties file. Known keys: %s",
			strings.Join(faasclient.Properties(), ", ")),
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := viper.GetString(flagConfig)
			if path == "" {
				path = faasclient.DefaultPropertiesFile()
			}

			err := faasclient.SetProperty(path, strings.ToLower(args[0]), args[1])
			if err != nil {
				return err //nolint:wrapcheck // already names the file
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Set %s in %s\n", strings.ToLower(args[0]), path)

			return err
		},
	}
}

// maskKey keeps the part of a key before the first colon and hides the rest.
func maskKey(key string) string {
	if key == "" {
		return ""
	}

	prefix, _, found := strings.Cut(key, ":")
	if !found {
		return "****"
	}

	return prefix + ":****"
}

func valueOrNA(value string) string {
	if value == "" {
		return constants.NotAvailable
	}

	return value
}
