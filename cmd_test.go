package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestListCommand_PlainFilteredSorted(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	writeFiles(t, root, "a.txt", "sub/b.txt", "sub/c.log")

	out, _, err := runCLI(t, "", "list", root, "--format", "plain", "--sort", "name", "--desc")
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/c.log", "sub/b.txt", "a.txt"}, splitLines(out))

	out, _, err = runCLI(t, "", "list", root, "-f", "plain", "-q", "B")
	require.NoError(t, err)
	assert.Equal(t, []string{"sub/b.txt"}, splitLines(out))
}

func TestListCommand_Table(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	writeFiles(t, root, "a.txt", "sub/b.txt")

	out, _, err := runCLI(t, "", "list", root)
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "2 FILE(S)")
}

func TestListCommand_ZeroMatchAndInvalidRoot(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	writeFiles(t, root, "a.txt")

	out, errOut, err := runCLI(t, "", "list", root, "-q", "zzz")
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.Contains(t, errOut, `No files match "zzz"`)

	_, _, err = runCLI(t, "", "list", filepath.Join(root, "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid root folder")

	_, _, err = runCLI(t, "", "list", root, "--sort", "date")
	require.Error(t, err)
}

func TestListCommand_Global(t *testing.T) {
	isolateConfig(t)
	parent := t.TempDir()
	writeFiles(t, parent, "project/a.txt", "other/far.txt")

	out, _, err := runCLI(t, "", "list", filepath.Join(parent, "project"), "--global", "--global-root", parent, "-f", "plain", "-q", "far")
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.ToSlash(filepath.Join(parent, "other", "far.txt"))}, splitLines(out))
}

func TestDeleteCommand_ReportsPartialFailure(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	writeFiles(t, root, "a.txt", "sub/b.txt", "keep.txt")

	out, _, err := runCLI(t, "", "delete", "--root", root, "--yes", "a.txt", "sub", "missing.txt")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 item(s) could not be deleted")
	assert.Contains(t, out, "Deleted 2 item(s). Errors occurred:")
	assert.Contains(t, out, "Error deleting missing.txt")
	assert.NoFileExists(t, filepath.Join(root, "a.txt"))
	assert.NoDirExists(t, filepath.Join(root, "sub"))
	assert.FileExists(t, filepath.Join(root, "keep.txt"))
}

func TestDeleteCommand_PromptDeclined(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	writeFiles(t, root, "a.txt")

	_, errOut, err := runCLI(t, "n\n", "delete", "--root", root, filepath.Join(root, "a.txt"))
	require.NoError(t, err)
	assert.Contains(t, errOut, "Delete 1 item(s)? [y/N]")
	assert.Contains(t, errOut, "Deletion cancelled")
	assert.FileExists(t, filepath.Join(root, "a.txt"))
}

func TestDeleteCommand_PromptAccepted(t *testing.T) {
	isolateConfig(t)
	root := t.TempDir()
	writeFiles(t, root, "a.txt")

	out, _, err := runCLI(t, "yes\n", "delete", "--root", root, "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "Deleted 1 item(s)\n", out)
	assert.NoFileExists(t, filepath.Join(root, "a.txt"))
}

func TestVersionCommand(t *testing.T) {
	isolateConfig(t)
	out, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	assert.Equal(t, "filedeck "+Version+"\n", out)
}

func splitLines(s string) []string {
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if line != "" {
			lines = append(lines, filepath.ToSlash(line))
		}
	}
	return lines
}

func TestConfigFrom_FallbackIsValid(t *testing.T) {
	cfg := configFrom(context.Background())
	normalized, err := normalizeConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, cfg, normalized)
	assert.True(t, cfg.Confirm)
	assert.Equal(t, defaultDebounce, cfg.Debounce)
}
