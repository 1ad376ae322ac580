package main

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDictionary = `lobar	noun
molar	noun
polar	adj
solar	adj
volar	adj
rural	adj
lunar	adj
audio	noun
glyph	noun
goose	noun
`

// runCLI runs the CLI against a temp dictionary and an absent config file.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv(envDictionary, "")
	t.Setenv(envConfigPath, "")
	dir := t.TempDir()
	dict := writeFile(t, dir, "dict.lst", testDictionary)

	full := append([]string{}, args...)
	if len(full) > 0 && full[0] == cmdSolve {
		full = append(full, "--dict", dict, "--config", filepath.Join(dir, "config.json"))
	} else if len(full) > 0 && full[0][0] == '-' {
		full = append([]string{"--dict", dict, "--config", filepath.Join(dir, "config.json")}, full...)
	}

	var out bytes.Buffer
	err := run(context.Background(), quietLogger(), full, &out)
	return out.String(), err
}

func TestRun_Solve(t *testing.T) {
	out, err := runCLI(t, cmdSolve, "-1", "r", "-5", "l", "-a", "udiceny", "-s", "_o_a_")
	require.NoError(t, err)
	assert.Equal(t, "=== 2 ===\nlobar\nmolar\npolar\nsolar\nvolar\n", out)
}

func TestRun_ImpliedSolveWithLongFlags(t *testing.T) {
	out, err := runCLI(t, "--wrong-spot-1", "r", "--wrong-spot-5", "l", "--absent", "udiceny", "--solved", "_o_a_")
	require.NoError(t, err)
	assert.Equal(t, "=== 2 ===\nlobar\nmolar\npolar\nsolar\nvolar\n", out)
}

func TestRun_SolveEverything(t *testing.T) {
	out, err := runCLI(t, cmdSolve, "-a", "r")
	require.NoError(t, err)
	assert.Equal(t, "=== 4 ===\naudio\n\n=== 2 ===\ngoose\n\n=== 0 ===\nglyph\n", out)
}

func TestRun_SolveNoMatches(t *testing.T) {
	out, err := runCLI(t, cmdSolve, "-s", "zzzzz")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_ConstraintErrorsBeforeDictionary(t *testing.T) {
	t.Setenv(envConfigPath, "")
	dir := t.TempDir()
	var out bytes.Buffer
	err := run(context.Background(), quietLogger(), []string{
		cmdSolve, "-s", "ab",
		"--dict", filepath.Join(dir, "missing.lst"),
		"--config", filepath.Join(dir, "config.json"),
	}, &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidConstraint)
	assert.Equal(t, exitUsage, exitCode(err))
	assert.Empty(t, out.String())
}

func TestRun_StrictAndLenient(t *testing.T) {
	_, err := runCLI(t, cmdSolve, "-s", "lob_r", "-1", "ab")
	assert.ErrorIs(t, err, ErrInvalidConstraint)

	out, err := runCLI(t, cmdSolve, "-s", "lob_r", "-1", "ab", "--lenient")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestRun_MissingDictionary(t *testing.T) {
	t.Setenv(envConfigPath, "")
	t.Setenv(envDictionary, "")
	dir := t.TempDir()
	var out bytes.Buffer
	err := run(context.Background(), quietLogger(), []string{
		cmdSolve,
		"--dict", filepath.Join(dir, "missing.lst"),
		"--config", filepath.Join(dir, "config.json"),
	}, &out)
	assert.ErrorIs(t, err, ErrDictionaryUnavailable)
	assert.Equal(t, exitNoDictionary, exitCode(err))
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"guess"}},
		{"unknown flag", []string{cmdSolve, "--nope"}},
		{"stray argument", []string{cmdSolve, "crane"}},
		{"bad log level", []string{cmdSolve, "--log-level", "loud"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := runCLI(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, exitUsage, exitCode(err))
		})
	}
}

func TestRun_Help(t *testing.T) {
	for _, args := range [][]string{{cmdHelp}, {"-h"}, {"--help"}} {
		var out bytes.Buffer
		require.NoError(t, run(context.Background(), quietLogger(), args, &out))
		assert.Contains(t, out.String(), "Usage:")
	}
}

func TestRun_NoArgsListsDictionary(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envDictionary, writeFile(t, dir, "dict.lst", "glyph\naudio\ngoose\n"))
	t.Setenv(envConfigPath, filepath.Join(dir, "config.json"))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), quietLogger(), nil, &out))
	assert.Equal(t, "=== 4 ===\naudio\n\n=== 2 ===\ngoose\n\n=== 0 ===\nglyph\n", out.String())
}

func TestRun_OutputClosed(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(envDictionary, writeFile(t, dir, "dict.lst", testDictionary))
	t.Setenv(envConfigPath, filepath.Join(dir, "config.json"))

	stdout := failingWriter{err: fmt.Errorf("write /dev/stdout: %w", syscall.EPIPE)}
	err := run(context.Background(), quietLogger(), []string{cmdSolve}, stdout)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrOutputClosed)

	var ee *exitError
	require.ErrorAs(t, err, &ee)
	assert.Equal(t, exitFailure, ee.Code)
	assert.Equal(t, exitFailure, exitCode(err))
}

func TestRun_Init(t *testing.T) {
	t.Setenv(envDictionary, "")
	path := filepath.Join(t.TempDir(), "config.json")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), quietLogger(), []string{cmdInit, "--config", path}, &out))
	assert.Contains(t, out.String(), path)

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, defaultConfig(), cfg)

	err = run(context.Background(), quietLogger(), []string{cmdInit, "--config", path}, &out)
	assert.Error(t, err)

	require.NoError(t, run(context.Background(), quietLogger(), []string{cmdInit, "--config", path, "--force"}, &out))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, exitOK, exitCode(nil))
	assert.Equal(t, exitUsage, exitCode(constraintf("solved", "bad")))
	assert.Equal(t, exitNoDictionary, exitCode(&dictionaryError{Path: "x", Err: assert.AnError}))
	assert.Equal(t, exitFailure, exitCode(&exitError{Code: exitFailure, Err: ErrOutputClosed}))
	assert.Equal(t, exitFailure, exitCode(assert.AnError))
}
