// Package testutil provides test utilities and helpers for changelog-gen tests.
package testutil

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"testing"
)

// HelperProcessConfig configures the behavior of TestHelperProcess.
type HelperProcessConfig struct {
	// ExitCode is the exit code to return (default 0).
	ExitCode int `json:"exit_code"`
	// Stdout is the content to write to stdout.
	Stdout string `json:"stdout"`
	// Stderr is the content to write to stderr.
	Stderr string `json:"stderr"`
}

// HelperProcessEnvVars contains the environment variable names used by TestHelperProcess.
const (
	// EnvWantHelperProcess signals that the test binary should run as a helper process.
	EnvWantHelperProcess = "GO_WANT_HELPER_PROCESS"
	// EnvHelperProcessConfig contains JSON-encoded HelperProcessConfig.
	EnvHelperProcessConfig = "GO_HELPER_PROCESS_CONFIG"
)

// TestHelperProcess is a function to be called from a test function
// to implement the helper process pattern. When invoked with GO_WANT_HELPER_PROCESS=1,
// it behaves as a mock subprocess and exits without returning.
//
// Usage in test file:
//
//	func TestHelperProcess(t *testing.T) {
//	    testutil.TestHelperProcess(t)
//	}
func TestHelperProcess(t *testing.T) {
	if os.Getenv(EnvWantHelperProcess) != "1" {
		return
	}

	config := parseHelperConfig()
	runHelperProcess(config)
}

// parseHelperConfig parses HelperProcessConfig from environment variable.
func parseHelperConfig() HelperProcessConfig {
	config := HelperProcessConfig{}
	configJSON := os.Getenv(EnvHelperProcessConfig)
	if configJSON != "" {
		// Ignore parse errors; use defaults on failure
		_ = json.Unmarshal([]byte(configJSON), &config)
	}
	return config
}

// runHelperProcess executes the helper process behavior and always exits.
func runHelperProcess(config HelperProcessConfig) {
	if config.Stdout != "" {
		fmt.Fprint(os.Stdout, config.Stdout)
	}
	if config.Stderr != "" {
		fmt.Fprint(os.Stderr, config.Stderr)
	}

	os.Exit(config.ExitCode)
}

// ConfigureTestCommand creates an exec.Cmd that invokes the test binary
// as a helper process instead of the real command.
//
// Parameters:
//   - t: The test context
//   - testName: Name of the test function containing TestHelperProcess call
//   - config: Configuration for the helper process behavior
//   - args: Original arguments, passed to the helper after "--"
func ConfigureTestCommand(t *testing.T, testName string, config HelperProcessConfig, args ...string) *exec.Cmd {
	t.Helper()

	testBinary, err := os.Executable()
	if err != nil {
		t.Fatalf("failed to get test binary path: %v", err)
	}

	cmdArgs := append([]string{"-test.run=^" + testName + "$", "--"}, args...)
	cmd := exec.Command(testBinary, cmdArgs...)
	cmd.Env = buildHelperEnv(t, config)
	return cmd
}

// FakeCommand returns a drop-in replacement for exec.CommandContext that
// runs the helper process configured by config. The requested command name
// and arguments are appended to calls.
func FakeCommand(t *testing.T, testName string, config HelperProcessConfig, calls *[][]string) func(ctx context.Context, name string, args ...string) *exec.Cmd {
	t.Helper()

	return func(ctx context.Context, name string, args ...string) *exec.Cmd {
		full := append([]string{name}, args...)
		if calls != nil {
			*calls = append(*calls, full)
		}
		return ConfigureTestCommand(t, testName, config, full...)
	}
}

// buildHelperEnv constructs the environment variables for helper process.
func buildHelperEnv(t *testing.T, config HelperProcessConfig) []string {
	t.Helper()

	env := os.Environ()
	env = append(env, EnvWantHelperProcess+"=1")

	if configJSON, err := json.Marshal(config); err == nil {
		env = append(env, EnvHelperProcessConfig+"="+string(configJSON))
	}

	return env
}
