//go:build integration
// +build integration

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
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Address  string
	Username string
	Password string
	Token    string
	// GUIDs are spare port GUIDs the tests may bind to scratch partitions.
	GUIDs   []string
	UFMPath string
	Verbose bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	var guids []string
	if value := os.Getenv("UFM_TEST_GUIDS"); value != "" {
		guids = strings.Split(value, ",")
	}

	return &TestConfig{
		Address:  os.Getenv("UFM_ADDRESS"),
		Username: os.Getenv("UFM_USERNAME"),
		Password: os.Getenv("UFM_PASSWORD"),
		Token:    os.Getenv("UFM_TOKEN"),
		GUIDs:    guids,
		UFMPath:  getUFMPath(),
		Verbose:  os.Getenv("UFM_VERBOSE") == "true",
	}
}

// getUFMPath determines the path to the ufm binary
func getUFMPath() string {
	if path := os.Getenv("UFM_BINARY_PATH"); path != "" {
		return path
	}

	candidates := []string{
		"../../ufm",
		"./ufm",
		"../ufm",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "ufm"
}

// SkipIfMissingConfig skips the test unless a UFM is configured
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Address == "" {
		t.Skip("UFM_ADDRESS not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips the test unless the ufm binary is available
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.UFMPath); err != nil {
		t.Skipf("ufm binary not found at %s, skipping integration test", config.UFMPath)
	}
}

// CommandRunner runs the ufm binary against the configured UFM
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

// Run executes a ufm command and returns its output
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.UFMPath, args...)
	cmd.Env = append(os.Environ(),
		"UFM_ADDRESS="+runner.config.Address,
		"UFM_USERNAME="+runner.config.Username,
		"UFM_PASSWORD="+runner.config.Password,
		"UFM_TOKEN="+runner.config.Token,
		"UFM_SKIP_SSL_VALIDATION=true",
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.UFMPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// RunJSON executes a ufm command with JSON output and decodes the result
func (runner *CommandRunner) RunJSON(target interface{}, args ...string) error {
	stdout, stderr, err := runner.Run(append([]string{"--output", "json"}, args...)...)
	if err != nil {
		return fmt.Errorf("%w: %s", err, stderr)
	}

	return json.Unmarshal([]byte(stdout), target)
}

// CleanupPartition attempts to delete a scratch partition
func (runner *CommandRunner) CleanupPartition(pkey string) {
	stdout, stderr, err := runner.Run("delete", "--pkey", pkey)
	if err != nil && runner.config.Verbose {
		runner.t.Logf("Cleanup warning for partition %s: %s\nStderr: %s", pkey, stdout, stderr)
	}
}

// GenerateTestPKey picks a scratch pkey that is unlikely to be in use.
// Values stay below the default partition 0x7fff.
func GenerateTestPKey() string {
	const base, span = 0x6000, 0x1000

	return fmt.Sprintf("0x%x", base+time.Now().UnixNano()%span)
}

// WaitForCondition waits for a condition to be met with timeout
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

// AssertYAMLOutput verifies command output looks like YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if strings.Contains(output, ":") {
		return
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
