// Testing Strategy Design Decision:
//
// The cmd/ package contains CLI integration tests that exercise the full stack:
// command parsing -> extension commands -> glob/header/license internals.
//
// Several internal packages carry their own unit tests (glob, header, license,
// author) because their edge cases - wildcard semantics, shebang handling,
// template rendering - are easier to pin down in isolation. The tests here
// prove the assembled binary behaves correctly end to end.
//
// Each test runs against a compiled binary in a temp directory with an
// isolated HOME, so global config, audit log, and git identity never leak
// in from the host.

package cmd

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	binaryPath string
	buildOnce  sync.Once
	buildErr   error
)

// buildBinary compiles the licenser binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()

	buildOnce.Do(func() {
		// Build to a temp location
		tmpDir, err := os.MkdirTemp("", "licenser-test-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binaryName := "licenser"
		if os.PathSeparator == '\\' {
			binaryName = "licenser.exe"
		}
		binaryPath = filepath.Join(tmpDir, binaryName)

		// Find project root (parent of cmd/)
		wd := mustGetwd()
		projectRoot := filepath.Dir(wd)

		cmd := exec.Command("go", "build", "-o", binaryPath, ".")
		cmd.Dir = projectRoot
		if out, err := cmd.CombinedOutput(); err != nil {
			buildErr = &buildError{err: err, output: string(out)}
			return
		}
	})

	if buildErr != nil {
		t.Fatalf("failed to build binary: %v", buildErr)
	}
	return binaryPath
}

type buildError struct {
	err    error
	output string
}

func (e *buildError) Error() string {
	return e.err.Error() + "\n" + e.output
}

func mustGetwd() string {
	dir, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	return dir
}

// testEnv holds test environment state.
type testEnv struct {
	t      *testing.T
	dir    string
	home   string
	binary string
}

// newTestEnv creates a temporary working directory and an isolated HOME.
// The binary never sees the host's global config, git identity, or audit
// log, so name resolution in tests is fully controlled by flags and
// per-test config.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	binary := buildBinary(t)
	dir := t.TempDir()
	home := t.TempDir()

	return &testEnv{t: t, dir: dir, home: home, binary: binary}
}

// run executes licenser with the given args and returns combined output.
func (e *testEnv) run(args ...string) string {
	e.t.Helper()
	out, err := e.runErr(args...)
	if err != nil {
		e.t.Fatalf("licenser %v failed: %v\noutput: %s", args, err, out)
	}
	return out
}

// runErr executes licenser and returns combined output and any error.
func (e *testEnv) runErr(args ...string) (string, error) {
	e.t.Helper()

	cmd := exec.Command(e.binary, args...)
	cmd.Dir = e.dir
	cmd.Env = append(os.Environ(),
		"HOME="+e.home,
		"USERPROFILE="+e.home,
		"GIT_CONFIG_NOSYSTEM=1",
		"NO_COLOR=1",
	)
	out, err := cmd.CombinedOutput()
	return string(out), err
}

// write creates a file under the working directory, making parent
// directories as needed.
func (e *testEnv) write(path, content string) {
	e.t.Helper()
	full := filepath.Join(e.dir, filepath.FromSlash(path))
	require.NoError(e.t, os.MkdirAll(filepath.Dir(full), 0755))
	require.NoError(e.t, os.WriteFile(full, []byte(content), 0644))
}

// read returns the content of a file under the working directory.
func (e *testEnv) read(path string) string {
	e.t.Helper()
	data, err := os.ReadFile(filepath.Join(e.dir, filepath.FromSlash(path)))
	require.NoError(e.t, err)
	return string(data)
}

// exists reports whether a file exists under the working directory.
func (e *testEnv) exists(path string) bool {
	_, err := os.Stat(filepath.Join(e.dir, filepath.FromSlash(path)))
	return err == nil
}

// contains checks if output contains expected string.
func (e *testEnv) contains(output, expected string) {
	e.t.Helper()
	assert.Contains(e.t, output, expected)
}

// equals checks if output equals expected string (trimmed).
func (e *testEnv) equals(output, expected string) {
	e.t.Helper()
	assert.Equal(e.t, strings.TrimSpace(expected), strings.TrimSpace(output))
}
