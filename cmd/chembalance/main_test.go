package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/chembalance/codec"
)

// invoke runs the command with an empty config environment.
func invoke(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	t.Setenv("CHEMBALANCE_CONFIG", "")
	var out, errOut bytes.Buffer
	err = run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)

	return out.String(), errOut.String(), err
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}

	return 1
}

func TestRun_Arguments(t *testing.T) {
	out, _, err := invoke(t, "", "H2 + O2 --> H2O", "--style", "plain", "Fe + O2 --> Fe2O3")
	require.NoError(t, err)
	assert.Equal(t, "2H2+O2-->2H2O\n4Fe+3O2-->2Fe2O3\n", out)
}

func TestRun_StdinInput(t *testing.T) {
	stdin := "# reactions\nH2+O2-->H2O\n\n  NaOH + HCl --> NaCl + H2O  \n"
	out, _, err := invoke(t, stdin, "--input", "-", "--style", "unicode")
	require.NoError(t, err)
	assert.Equal(t, "2H2 + O2 → 2H2O\nNaOH + HCl → NaCl + H2O\n", out)
}

func TestRun_FileInputAndConfig(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "reactions.txt")
	require.NoError(t, os.WriteFile(input, []byte("Fe+O2-->Fe2O3\nH2-->O2\n"), 0o600))
	cfgPath := filepath.Join(dir, "chembalance.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  format: json\nbatch:\n  workers: 2\n"), 0o600))

	var out, errOut bytes.Buffer
	err := run(context.Background(), []string{"--config", cfgPath, "-i", input}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, 1, exitCode(err), "one equation fails")

	report, derr := codec.Decode(&out, codec.FormatJSON)
	require.NoError(t, derr)
	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.Balanced)
	assert.Equal(t, []int64{4, 3, 2}, report.Entries[0].Result.Coefficients)
	assert.Equal(t, "solve", report.Entries[1].Stage)
}

func TestRun_FlagOverridesConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  style: unicode\n"), 0o600))

	out, _, err := invoke(t, "", "--config", cfgPath, "--style", "plain", "H2+O2-->H2O")
	require.NoError(t, err)
	assert.Equal(t, "2H2+O2-->2H2O\n", out)
}

func TestRun_FlagReplacesInvalidConfigValue(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "c.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("output:\n  style: html\nbatch:\n  workers: 0\n"), 0o600))

	out, _, err := invoke(t, "", "--config", cfgPath, "--style", "plain", "-j", "2", "H2+O2-->H2O")
	require.NoError(t, err)
	assert.Equal(t, "2H2+O2-->2H2O\n", out)

	// Without the override the file value is still rejected.
	_, _, err = invoke(t, "", "--config", cfgPath, "-j", "2", "H2+O2-->H2O")
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestRun_BinaryFormat(t *testing.T) {
	out, _, err := invoke(t, "", "--format", "msgpack", "H2+O2-->H2O")
	require.NoError(t, err)

	report, err := codec.Decode(strings.NewReader(out), codec.FormatMsgpack)
	require.NoError(t, err)
	assert.Equal(t, `2H2+O2\to2H2O`, report.Entries[0].Result.Balanced)
}

func TestRun_FailureExitCode(t *testing.T) {
	out, _, err := invoke(t, "", "H2 O2")
	require.Error(t, err)
	assert.Equal(t, 1, exitCode(err))
	assert.Contains(t, out, "error: balance: split failed")
	assert.Contains(t, err.Error(), "1 of 1 equations failed")
}

func TestRun_UsageErrors(t *testing.T) {
	tests := map[string][]string{
		"no equations":  {},
		"bad style":     {"--style", "html", "H2+O2-->H2O"},
		"bad format":    {"--format", "xml", "H2+O2-->H2O"},
		"bad order":     {"--order", "hill", "H2+O2-->H2O"},
		"bad workers":   {"--workers", "0", "H2+O2-->H2O"},
		"bad log level": {"--log-level", "loud", "H2+O2-->H2O"},
		"unknown flag":  {"--colour", "H2+O2-->H2O"},
		"missing input": {"--input", "/nonexistent/reactions.txt"},
		"missing cfg":   {"--config", "/nonexistent/c.yaml", "H2+O2-->H2O"},
	}
	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			_, _, err := invoke(t, "", args...)
			require.Error(t, err)
			assert.Equal(t, 2, exitCode(err))
		})
	}
}

func TestRun_HelpAndVersion(t *testing.T) {
	out, errOut, err := invoke(t, "", "--help")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "Usage:")
	assert.Contains(t, errOut, "--format")

	out, _, err = invoke(t, "", "--version")
	require.NoError(t, err)
	assert.Equal(t, "chembalance dev\n", out)
}

func TestRun_DebugLogging(t *testing.T) {
	_, errOut, err := invoke(t, "", "--log-level", "debug", "H2+O2-->H2O")
	require.NoError(t, err)
	assert.Contains(t, errOut, "msg=balancing")
	assert.Contains(t, errOut, "msg=solved")
}
