//go:build integration

package integration

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/glo/pkg/glo"
	"github.com/fivetwenty-io/glo/pkg/gloclient"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Endpoint string
	Token    string
	GloPath  string
	Verbose  bool
}

// LoadTestConfig loads configuration from the environment. A .env file at
// the repository root is read first; real environment variables win.
func LoadTestConfig() *TestConfig {
	_ = godotenv.Load("../../.env")

	return &TestConfig{
		Endpoint: os.Getenv("GLO_API"),
		Token:    os.Getenv("GLO_TOKEN"),
		GloPath:  getGloPath(),
		Verbose:  os.Getenv("GLO_VERBOSE") == "true",
	}
}

// getGloPath determines the path to the glo binary
func getGloPath() string {
	if path := os.Getenv("GLO_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../glo", "./glo", "../glo"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "glo"
}

// SkipIfMissingToken skips tests that need a live account.
func (config *TestConfig) SkipIfMissingToken(t *testing.T) {
	t.Helper()

	if config.Token == "" {
		t.Skip("GLO_TOKEN not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips CLI tests when the glo binary was not built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.GloPath); err != nil {
		t.Skipf("glo binary not found at %s, skipping integration test", config.GloPath)
	}
}

// NewClient creates a library client with retries enabled.
func (config *TestConfig) NewClient(t *testing.T) glo.Client {
	t.Helper()

	client, err := gloclient.New(&glo.Config{
		APIEndpoint: config.Endpoint,
		Token:       config.Token,
		RetryMax:    3,
	})
	require.NoError(t, err)

	return client
}

// CommandRunner provides utilities for running glo commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a glo command and returns output. The token and endpoint
// are passed through the environment so no config file is touched.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.GloPath, args...)
	cmd.Env = append(os.Environ(), "GLO_TOKEN="+runner.config.Token, "GLO_CONFIG="+runner.t.TempDir()+"/config.yml")

	if runner.config.Endpoint != "" {
		cmd.Env = append(cmd.Env, "GLO_API="+runner.config.Endpoint)
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.GloPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// GenerateTestName creates a unique test resource name
func GenerateTestName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}
