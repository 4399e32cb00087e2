//go:build integration

package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIHost   string
	APIKey    string
	Namespace string
	FaasPath  string
	Verbose   bool
}

// LoadTestConfig loads configuration from environment variables.
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		APIHost:   os.Getenv("FAAS_APIHOST"),
		APIKey:    os.Getenv("FAAS_AUTH"),
		Namespace: os.Getenv("FAAS_NAMESPACE"),
		FaasPath:  getFaasPath(),
		Verbose:   os.Getenv("FAAS_VERBOSE") == "true",
	}
}

// getFaasPath determines the path to the faas binary.
func getFaasPath() string {
	if path := os.Getenv("FAAS_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../faas", "./faas", "../faas"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "faas"
}

// SkipIfMissingConfig skips the test unless a platform and the binary are available.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIHost == "" || config.APIKey == "" {
		t.Skip("FAAS_APIHOST or FAAS_AUTH not set, skipping integration test")
	}

	if _, err := exec.LookPath(config.FaasPath); err != nil {
		t.Skipf("faas binary not found at %s, skipping integration test", config.FaasPath)
	}
}

// CommandRunner runs faas commands against the configured platform.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{config: config, t: t}
}

// Run executes a faas command with JSON output and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.FaasPath, strings.Join(args, " "))
	}

	args = append(args, "--apihost", runner.config.APIHost, "--auth", runner.config.APIKey, "--output", "json")
	if runner.config.Namespace != "" {
		args = append(args, "--namespace", runner.config.Namespace)
	}

	cmd := exec.Command(runner.config.FaasPath, args...) //nolint:gosec // test binary

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a faas command and decodes its output.
func (runner *CommandRunner) RunJSON(args ...string) (interface{}, error) {
	stdout, stderr, err := runner.Run(args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", err, stderr)
	}

	var document interface{}

	err = json.Unmarshal([]byte(stdout), &document)
	if err != nil {
		return nil, fmt.Errorf("decoding output %q: %w", stdout, err)
	}

	return document, nil
}

// GenerateTestName creates a unique test resource name.
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.NewString()[:8])
}

// CleanupResource attempts to delete a test resource.
func (runner *CommandRunner) CleanupResource(resourceType, name string) {
	switch resourceType {
	case "action", "trigger", "rule", "package":
	default:
		runner.t.Logf("Unknown resource type for cleanup: %s", resourceType)

		return
	}

	stdout, stderr, err := runner.Run(resourceType, "delete", name)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for %s %s: %s\nStderr: %s", resourceType, name, stdout, stderr)
	}
}

// WaitForCondition waits for a condition to be met with timeout.
func WaitForCondition(t *testing.T, condition func() bool, timeout time.Duration, message string) {
	t.Helper()

	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	timeoutChan := time.After(timeout)

	for {
		select {
		case <-ticker.C:
			if condition() {
				return
			}
		case <-timeoutChan:
			t.Fatalf("Timeout waiting for condition: %s", message)
		}
	}
}

// WriteActionFile writes action source code to a temporary file.
func WriteActionFile(t *testing.T, code string) string {
	t.Helper()

	path := t.TempDir() + "/action.js"

	err := os.WriteFile(path, []byte(code), 0o600)
	if err != nil {
		t.Fatalf("writing action file: %v", err)
	}

	return path
}
