package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_NoArgsStartsReplOnClosedStdin(t *testing.T) {
	// An immediately-EOF stdin makes the REPL exit right away with 0,
	// exercising the no-args branch without blocking the test on input.
	r, w, err := os.Pipe()
	require.NoError(t, err)
	w.Close()

	oldStdin := os.Stdin
	os.Stdin = r
	defer func() { os.Stdin = oldStdin }()

	assert.Equal(t, 0, run(nil))
}

func TestRun_HelpAndVersionExitZero(t *testing.T) {
	assert.Equal(t, 0, run([]string{"--help"}))
	assert.Equal(t, 0, run([]string{"-h"}))
	assert.Equal(t, 0, run([]string{"--version"}))
	assert.Equal(t, 0, run([]string{"-v"}))
}

func TestRun_TooManyScriptArgsIsUsageError(t *testing.T) {
	assert.Equal(t, 64, run([]string{"a.lox", "b.lox"}))
}

func TestRun_ServeWithoutPortIsUsageError(t *testing.T) {
	assert.Equal(t, 64, run([]string{"serve"}))
}

func TestRun_MissingScriptFileIsUsageError(t *testing.T) {
	assert.Equal(t, 64, run([]string{filepath.Join(t.TempDir(), "missing.lox")}))
}

func TestRunFile_CleanScriptExitsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ok.lox")
	require.NoError(t, os.WriteFile(path, []byte(`print "hi";`), 0o644))

	assert.Equal(t, 0, runFile(path))
}

func TestRunFile_ParseErrorExits65(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.lox")
	require.NoError(t, os.WriteFile(path, []byte(`var a = ;`), 0o644))

	assert.Equal(t, 65, runFile(path))
}

func TestRunFile_RuntimeErrorExits70(t *testing.T) {
	path := filepath.Join(t.TempDir(), "runtime.lox")
	require.NoError(t, os.WriteFile(path, []byte(`print undefinedVariable;`), 0o644))

	assert.Equal(t, 70, runFile(path))
}
