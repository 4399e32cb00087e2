package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/faas-client/pkg/faas"
	"github.com/fivetwenty-io/faas-client/pkg/faasclient"
)

// session is a configured client and what has to be released once the
// command is done.
type session struct {
	client    faas.Client
	logger    faas.Logger
	metrics   *faas.MetricsCollector
	publisher *faas.NATSPublisher
}

// operation is the library call a command performs.
type operation func(ctx context.Context, client faas.Client) (*faas.Result, error)

// runOperation builds a session, performs op and renders its result.
func runOperation(cmd *cobra.Command, op operation, columns []column) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.close()

	result, err := op(cmd.Context(), s.client)
	if err != nil {
		return err
	}

	return render(cmd.OutOrStdout(), result, columns)
}

// loadConfig resolves the client settings: environment and properties file
// first, then the global flags.
func loadConfig() (*faas.Config, error) {
	path := viper.GetString(flagConfig)
	if path != "" {
		_, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrPropertiesFileMissing, path)
		}
	} else {
		path = faasclient.DefaultPropertiesFile()
	}

	config, err := faasclient.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}

	if apiHost := viper.GetString(flagAPIHost); apiHost != "" {
		config.APIHost = apiHost
	}

	if auth := viper.GetString(flagAuth); auth != "" {
		config.APIKey = auth
	}

	if namespace := viper.GetString(flagNamespace); namespace != "" {
		config.Namespace = namespace
	}

	if viper.GetBool(flagInsecure) {
		config.IgnoreCerts = true
	}

	return config, nil
}

func newSession(cmd *cobra.Command) (*session, error) {
	config, err := loadConfig()
	if err != nil {
		return nil, err
	}

	verbose := viper.GetBool(flagVerbose)
	s := &session{logger: newLogger(cmd.ErrOrStderr(), verbose)}

	config.Logger = s.logger
	config.Debug = verbose

	if verbose {
		s.metrics = faas.NewMetricsCollector()
		config.RequestInterceptors = append(config.RequestInterceptors,
			faas.LoggingInterceptor(s.logger),
			faas.MetricsRequestInterceptor(s.metrics),
		)
		config.ResponseInterceptors = append(config.ResponseInterceptors,
			faas.LoggingResponseInterceptor(s.logger),
			faas.MetricsResponseInterceptor(s.metrics),
		)
	}

	if url := viper.GetString(flagEventsURL); url != "" {
		s.publisher, err = faas.ConnectNATS(url, s.logger)
		if err != nil {
			return nil, err //nolint:wrapcheck // already names the server
		}

		config.ResponseInterceptors = append(config.ResponseInterceptors, s.publisher.Interceptor())
	}

	s.client, err = faasclient.New(cmd.Context(), config)
	if err != nil {
		s.close()

		return nil, err //nolint:wrapcheck // already wrapped by faasclient
	}

	return s, nil
}

// close reports the collected metrics and drains the event publisher.
func (s *session) close() {
	if s.metrics != nil {
		for _, endpoint := range s.metrics.Endpoints() {
			metrics, _ := s.metrics.GetMetrics(endpoint)
			s.logger.Debug("Endpoint metrics", map[string]interface{}{
				"endpoint": endpoint,
				"requests": metrics.TotalRequests,
				"errors":   metrics.TotalErrors,
				"latency":  metrics.AverageLatency.String(),
			})
		}
	}

	if s.publisher != nil {
		err := s.publisher.Flush()
		if err == nil {
			err = s.publisher.Close()
		}

		if err != nil {
			s.logger.Warn("Failed to deliver request events", map[string]interface{}{"error": err.Error()})
		}
	}
}
