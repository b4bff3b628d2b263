package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	// staticsBin is the path to the statics binary built by TestMain.
	staticsBin string
	// buildErr captures any build error.
	buildErr error
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "statics-bin-")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	staticsBin = filepath.Join(dir, "statics")
	if out, err := exec.Command("go", "build", "-o", staticsBin, ".").CombinedOutput(); err != nil {
		buildErr = fmt.Errorf("%w: %s", err, out)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// cleanEnv returns os.Environ() with all STATICS_* variables removed.
func cleanEnv() []string {
	var env []string
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "STATICS_") {
			continue
		}
		env = append(env, e)
	}
	return env
}

// runStatics executes the binary in workDir and returns its output and exit code.
func runStatics(t *testing.T, workDir string, args ...string) (stdout, stderr string, exitCode int) {
	t.Helper()
	if testing.Short() {
		t.Skip("builds the statics binary")
	}
	require.NoError(t, buildErr, "build statics")

	cmd := exec.Command(staticsBin, args...)
	cmd.Env = cleanEnv()
	cmd.Dir = workDir
	var outBuf, errBuf strings.Builder
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err := cmd.Run()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		exitCode = exitErr.ExitCode()
	} else if err != nil {
		t.Fatalf("run statics: %v", err)
	}
	return outBuf.String(), errBuf.String(), exitCode
}

func TestBinaryDefaultsToWorkingDirectory(t *testing.T) {
	work := t.TempDir()

	out, stderr, code := runStatics(t, work, "init")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "statics initialized")
	assert.FileExists(t, filepath.Join(work, ".statics", "config.yaml"))
	assert.FileExists(t, filepath.Join(work, ".statics-db", "statics.db"))

	_, stderr, code = runStatics(t, work, "state", "set", "shutting_down")
	require.Equal(t, 0, code, stderr)
	out, _, code = runStatics(t, work, "state")
	require.Equal(t, 0, code)
	assert.Equal(t, "shutting_down\n", out)
}

func TestBinaryExitCodes(t *testing.T) {
	work := t.TempDir()

	_, stderr, code := runStatics(t, work, "state", "set", "nowhere")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "statics: unknown state")

	blocker := filepath.Join(work, "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o644))
	_, _, code = runStatics(t, work, "--data-dir", blocker, "state")
	assert.Equal(t, 2, code)
}

// TestGeneratedSizeComparison builds the same number of entries and
// raw statics into two binaries and compares them with the size command.
func TestGeneratedSizeComparison(t *testing.T) {
	work := t.TempDir()
	for _, kind := range []string{"entries", "raw"} {
		_, stderr, code := runStatics(t, work, "gen", kind, "50", "--out-dir", kind, "--package", "main")
		require.Equal(t, 0, code, stderr)
	}

	root, err := filepath.Abs("../..")
	require.NoError(t, err)
	mainSrc := "package main\n\nfunc main() {}\n"
	gomod := "module sizecheck\n\ngo 1.25\n\nrequire github.com/vladislavmarkov/data-registry v0.0.0\n\n" +
		"replace github.com/vladislavmarkov/data-registry => " + root + "\n"

	var bins []string
	for _, kind := range []string{"entries", "raw"} {
		dir := filepath.Join(work, kind)
		require.NoError(t, os.WriteFile(filepath.Join(dir, "main.go"), []byte(mainSrc), 0o644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "go.mod"), []byte(gomod), 0o644))
		bin := filepath.Join(work, kind+".bin")
		build := exec.Command("go", "build", "-mod=mod", "-o", bin, ".")
		build.Dir = dir
		if out, err := build.CombinedOutput(); err != nil {
			t.Skipf("cannot build comparison binaries: %v: %s", err, out)
		}
		bins = append(bins, bin)
	}

	out, stderr, code := runStatics(t, work, "size", bins[0], bins[1])
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, out, "entries.bin")
	assert.Contains(t, out, "Δ(dec): +")
}
