package faasclient

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/faas-client/internal/client"
	"github.com/fivetwenty-io/faas-client/internal/constants"
	"github.com/fivetwenty-io/faas-client/pkg/faas"
)

// Settings keys. Properties files use the upper-case form of these keys.
const (
	keyAPIHost     = "apihost"
	keyAuth        = "auth"
	keyNamespace   = "namespace"
	keyIgnoreCerts = "ignore_certs"
	keyGWToken     = "apigw_access_token"
	keyGWSpaceGUID = "apigw_space_guid"
	keyUserAgent   = "user_agent"

	propertiesFileName = ".wskprops"
	configFileEnv      = "WSK_CONFIG_FILE"
)

// ErrUnknownProperty is returned when setting a key the properties file does not know.
var ErrUnknownProperty = errors.New("unknown property")

// environment maps each setting to the variable the platform injects into
// running actions.
var environment = map[string]string{
	keyAPIHost:     "__OW_API_HOST",
	keyAuth:        "__OW_API_KEY",
	keyNamespace:   "__OW_NAMESPACE",
	keyIgnoreCerts: "__OW_IGNORE_CERTS",
	keyGWToken:     "__OW_APIGW_TOKEN",
	keyGWSpaceGUID: "__OW_APIGW_SPACE_GUID",
	keyUserAgent:   "__OW_USER_AGENT",
}

// New creates a new client. The returned client keeps a copy of config.
func New(ctx context.Context, config *faas.Config) (faas.Client, error) {
	c, err := client.New(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a new client for apiHost authenticated with apiKey.
func NewWithAPIKey(ctx context.Context, apiHost, apiKey string) (faas.Client, error) {
	return New(ctx, &faas.Config{
		APIHost: apiHost,
		APIKey:  apiKey,
	})
}

// NewFromEnvironment creates a new client from the __OW_* environment
// variables and the default properties file.
func NewFromEnvironment(ctx context.Context) (faas.Client, error) {
	config, err := LoadConfig(DefaultPropertiesFile())
	if err != nil {
		return nil, err
	}

	return New(ctx, config)
}

// DefaultPropertiesFile returns $WSK_CONFIG_FILE, else ~/.wskprops. It is
// empty when neither can be determined.
func DefaultPropertiesFile() string {
	if path := os.Getenv(configFileEnv); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, propertiesFileName)
}

// LoadConfig reads the client settings once. Environment variables win over
// the KEY=VALUE properties file at path; a missing file is not an error.
func LoadConfig(path string) (*faas.Config, error) {
	v := viper.New()

	for key, env := range environment {
		err := v.BindEnv(key, env)
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", env, err)
		}
	}

	err := readProperties(v, path)
	if err != nil {
		return nil, err
	}

	return &faas.Config{
		APIHost:        v.GetString(keyAPIHost),
		APIKey:         v.GetString(keyAuth),
		Namespace:      v.GetString(keyNamespace),
		IgnoreCerts:    v.GetBool(keyIgnoreCerts),
		APIGWToken:     v.GetString(keyGWToken),
		APIGWSpaceGUID: v.GetString(keyGWSpaceGUID),
		UserAgent:      v.GetString(keyUserAgent),
	}, nil
}

func readProperties(v *viper.Viper, path string) error {
	if path == "" {
		return nil
	}

	_, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	v.SetConfigFile(path)
	v.SetConfigType("env")

	err = v.ReadInConfig()
	if err != nil {
		return fmt.Errorf("reading properties file %s: %w", path, err)
	}

	return nil
}

// Properties returns the keys a properties file may set, sorted.
func Properties() []string {
	keys := make([]string, 0, len(environment))
	for key := range environment {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}

// SetProperty stores key=value in the properties file at path, keeping the
// other entries. The file and its directory are created when missing.
func SetProperty(path, key, value string) error {
	if _, ok := environment[key]; !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProperty, key)
	}

	v := viper.New()

	err := readProperties(v, path)
	if err != nil {
		return err
	}

	v.Set(key, value)

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	v.SetConfigType("env")

	err = v.WriteConfigAs(path)
	if err != nil {
		return fmt.Errorf("writing properties file %s: %w", path, err)
	}

	return nil
}
