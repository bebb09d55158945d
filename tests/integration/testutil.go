// Package integration provides CLI integration tests for the sierra binary.
package integration

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

var (
	// sierraBin is the path to the built sierra binary.
	sierraBin string
	// buildErr captures any build error.
	buildErr error
)

// BuildError wraps a build error with output.
type BuildError struct {
	Err    error
	Output string
}

func (e *BuildError) Error() string {
	return e.Err.Error() + ": " + e.Output
}

// FindProjectRoot finds the project root by walking up and looking for go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// TestEnv provides an isolated environment with its own config, data and
// working directory.
type TestEnv struct {
	t       *testing.T
	TempDir string
	Config  string
	DataDir string
	Grammar string
}

// NewTestEnv creates a new isolated test environment with a config.yaml that
// points the grammar at the temp directory.
func NewTestEnv(t *testing.T) *TestEnv {
	t.Helper()

	if buildErr != nil {
		t.Fatalf("failed to build sierra: %v", buildErr)
	}
	if sierraBin == "" {
		t.Fatal("sierra binary not built (sierraBin is empty)")
	}

	tempDir := t.TempDir()
	env := &TestEnv{
		t:       t,
		TempDir: tempDir,
		Config:  filepath.Join(tempDir, "config"),
		DataDir: filepath.Join(tempDir, "data"),
		Grammar: filepath.Join(tempDir, "sierra.dtd"),
	}
	env.WriteConfig("backend: sqlite\ngrammar: " + env.Grammar + "\n")
	return env
}

// WriteConfig replaces config.yaml in the environment's config directory.
func (e *TestEnv) WriteConfig(content string) {
	e.t.Helper()
	if err := os.MkdirAll(e.Config, 0o755); err != nil {
		e.t.Fatalf("failed to create config dir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(e.Config, "config.yaml"), []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write config: %v", err)
	}
}

// WriteFile writes content to name inside the temp directory and returns the
// full path.
func (e *TestEnv) WriteFile(name, content string) string {
	e.t.Helper()
	path := filepath.Join(e.TempDir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		e.t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		e.t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}

// CmdResult holds the result of a sierra command execution.
type CmdResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Lines splits stdout into lines, dropping the trailing newline.
func (r CmdResult) Lines() []string {
	out := strings.TrimRight(r.Stdout, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// RunSierra executes the sierra CLI with the given arguments and no stdin.
func (e *TestEnv) RunSierra(args ...string) CmdResult {
	e.t.Helper()
	return e.RunSierraStdin("", args...)
}

// RunSierraStdin executes the sierra CLI with stdin fed from the string.
func (e *TestEnv) RunSierraStdin(stdin string, args ...string) CmdResult {
	e.t.Helper()

	allArgs := append([]string{"--config-dir", e.Config, "--data-dir", e.DataDir}, args...)
	cmd := exec.Command(sierraBin, allArgs...)
	cmd.Dir = e.TempDir
	cmd.Env = append(cleanEnv(), "XDG_CONFIG_HOME="+filepath.Join(e.TempDir, "xdg"))
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		} else {
			e.t.Fatalf("failed to run sierra: %v", err)
		}
	}

	return CmdResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
	}
}

// cleanEnv returns the process environment without SIERRA_ overrides.
func cleanEnv() []string {
	var env []string
	for _, kv := range os.Environ() {
		if !strings.HasPrefix(kv, "SIERRA_") {
			env = append(env, kv)
		}
	}
	return env
}

// MustRunSierra executes the sierra CLI and fails the test if it returns non-zero.
func (e *TestEnv) MustRunSierra(args ...string) CmdResult {
	e.t.Helper()
	result := e.RunSierra(args...)
	if result.ExitCode != 0 {
		e.t.Fatalf("sierra %v failed with exit code %d:\nstdout: %s\nstderr: %s",
			args, result.ExitCode, result.Stdout, result.Stderr)
	}
	return result
}

// ParseJSON parses JSON output into the target type.
func ParseJSON[T any](t *testing.T, jsonStr string) T {
	t.Helper()
	var result T
	if err := json.Unmarshal([]byte(jsonStr), &result); err != nil {
		t.Fatalf("failed to parse JSON %q: %v", jsonStr, err)
	}
	return result
}

// Grammar is a stored grammar as listed by sierra grammars --json.
type Grammar struct {
	GrammarID string `json:"grammar_id"`
	CreatedAt string `json:"created_at"`
	TagCount  int    `json:"tag_count"`
	Digest    string `json:"digest"`
}

// Completion is the sierra complete --json output.
type Completion struct {
	Context    string `json:"context"`
	Tag        string `json:"tag"`
	Prefix     string `json:"prefix"`
	Candidates []struct {
		Text string `json:"text"`
	} `json:"candidates"`
}

// ReadJSONLFile reads a JSONL file (one JSON object per line) and returns a slice.
func ReadJSONLFile[T any](t *testing.T, path string) []T {
	t.Helper()
	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("failed to open JSONL file %s: %v", path, err)
	}
	defer f.Close()

	var results []T
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record T
		if err := json.Unmarshal(line, &record); err != nil {
			t.Fatalf("failed to parse JSONL line in %s: %v", path, err)
		}
		results = append(results, record)
	}
	if err := scanner.Err(); err != nil {
		t.Fatalf("failed to scan JSONL file %s: %v", path, err)
	}
	return results
}
