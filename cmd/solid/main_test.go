package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

/* helpers */

// execute runs the CLI with args and returns everything it printed.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	root := newRootCmd()

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)

	err := root.Execute()
	return out.String(), err
}

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "solid.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

/* root */

func TestRoot_NoArgsShowsHelp(t *testing.T) {
	t.Parallel()

	out, err := execute(t)
	require.NoError(t, err)

	assert.Contains(t, out, "Available Commands:")
	assert.Contains(t, out, "run")
	assert.Contains(t, out, "explain")
}

func TestRoot_BadConfigFile(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "wrap: [not a number\n")

	_, err := execute(t, "list", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestRoot_BadLogLevel(t *testing.T) {
	t.Parallel()

	path := writeConfigFile(t, "log_level: chatty\n")

	_, err := execute(t, "list", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `bad log level "chatty"`)
}

/* list */

func TestList(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "list", "--no-color")
	require.NoError(t, err)

	for _, name := range []string{"srp", "ocp", "lsp", "isp", "dip"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "Single Responsibility Principle")
	assert.Contains(t, out, "Dependency Inversion Principle")
}

/* run */

func TestRun_SingleDemo(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "run", "srp", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "srp: Single Responsibility Principle")
	assert.Contains(t, out, "before:")
	assert.Contains(t, out, "after:")
}

func TestRun_All(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "run", "--all", "--no-color")
	require.NoError(t, err)

	assert.Contains(t, out, "srp: Single Responsibility Principle")
	assert.Contains(t, out, "ocp: Open/Closed Principle")
	assert.Contains(t, out, "lsp: Liskov Substitution Principle")
	assert.Contains(t, out, "isp: Interface Segregation Principle")
	assert.Contains(t, out, "dip: Dependency Inversion Principle")
}

func TestRun_UnknownDemo(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "run", "nope", "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown demo "nope"`)
}

func TestRun_NoSelection(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "run", "--no-color")
	require.ErrorIs(t, err, errNoDemoSelected)
}

func TestRun_NamesAndAllConflict(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "run", "srp", "--all", "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not both")
}

func TestRun_RecordWritesTranscript(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "transcript.txt")

	out, err := execute(t, "run", "ocp", "--no-color", "--record", path)
	require.NoError(t, err)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, out, string(got), "transcript should mirror stdout")
}

/* explain */

func TestExplain(t *testing.T) {
	t.Parallel()

	out, err := execute(t, "explain", "srp", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Single Responsibility Principle")
}

func TestExplain_UnknownDemo(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "explain", "nope", "--no-color")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown demo "nope"`)
}

func TestExplain_NeedsExactlyOneArg(t *testing.T) {
	t.Parallel()

	_, err := execute(t, "explain")
	require.Error(t, err)
}

/* logger */

func TestBuildLogger(t *testing.T) {
	t.Parallel()

	log, err := buildLogger("warn", false)
	require.NoError(t, err)
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel), "warn logger should drop debug")

	log, err = buildLogger("warn", true)
	require.NoError(t, err)
	assert.True(t, log.Core().Enabled(zapcore.DebugLevel), "verbose wins over the config level")

	_, err = buildLogger("chatty", false)
	require.Error(t, err)
}
