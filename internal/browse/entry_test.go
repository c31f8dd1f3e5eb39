package browse

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeTree creates files (slash paths) under a new temp dir and returns the dir.
func writeTree(t *testing.T, files ...string) string {
	t.Helper()
	root := t.TempDir()
	for _, name := range files {
		path := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(name), 0o644))
	}
	return root
}

func relPaths(entries []Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, filepath.ToSlash(e.RelPath))
	}
	sort.Strings(out)
	return out
}

func TestListFiles_ReturnsRegularFilesWithRelativePaths(t *testing.T) {
	root := writeTree(t, "a.txt", "sub/b.txt", "sub/c.log", "sub/deep/d.md")
	require.NoError(t, os.MkdirAll(filepath.Join(root, "empty"), 0o755))

	listing, err := ListFiles(context.Background(), root, ListOptions{Hidden: true})
	require.NoError(t, err)

	assert.Equal(t, []string{"a.txt", "sub/b.txt", "sub/c.log", "sub/deep/d.md"}, relPaths(listing.Entries))
	assert.False(t, listing.Incomplete())
	assert.Empty(t, listing.Notice())

	for _, e := range listing.Entries {
		assert.Equal(t, filepath.Join(listing.Root, e.RelPath), e.AbsPath)
		assert.Equal(t, filepath.Base(e.RelPath), e.Name)
		assert.False(t, e.IsDir)
		assert.Equal(t, int64(len(filepath.ToSlash(e.RelPath))), e.Size)
	}
}

func TestListFiles_SkipDirsDepthAndHidden(t *testing.T) {
	root := writeTree(t, "a.txt", ".git/config", ".env", "one/b.txt", "one/two/c.txt")

	listing, err := ListFiles(context.Background(), root, ListOptions{SkipDirs: DefaultSkipDirs(), Hidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{".env", "a.txt", "one/b.txt", "one/two/c.txt"}, relPaths(listing.Entries))

	listing, err = ListFiles(context.Background(), root, ListOptions{SkipDirs: DefaultSkipDirs()})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "one/b.txt", "one/two/c.txt"}, relPaths(listing.Entries))

	listing, err = ListFiles(context.Background(), root, ListOptions{SkipDirs: DefaultSkipDirs(), MaxDepth: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"a.txt", "one/b.txt"}, relPaths(listing.Entries))
}

func TestListFiles_DoesNotFollowSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need privileges on windows")
	}
	root := writeTree(t, "real/a.txt")
	require.NoError(t, os.Symlink(filepath.Join(root, "real"), filepath.Join(root, "link")))

	listing, err := ListFiles(context.Background(), root, ListOptions{Hidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"real/a.txt"}, relPaths(listing.Entries))
}

func TestListFiles_PermissionDeniedIsAWarning(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced")
	}
	root := writeTree(t, "ok.txt", "locked/secret.txt")
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	listing, err := ListFiles(context.Background(), root, ListOptions{Hidden: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"ok.txt"}, relPaths(listing.Entries))
	assert.True(t, listing.Incomplete())
	assert.Contains(t, listing.Notice(), "permission denied: locked")
}

func TestListFiles_CancelledContext(t *testing.T) {
	root := writeTree(t, "a.txt")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	listing, err := ListFiles(ctx, root, ListOptions{})
	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, listing.Entries)
}

func TestListFiles_ReportsProgress(t *testing.T) {
	root := writeTree(t, "a.txt", "b/c.txt")
	var last Progress
	calls := 0

	_, err := ListFiles(context.Background(), root, ListOptions{OnProgress: func(p Progress) {
		calls++
		last = p
	}})
	require.NoError(t, err)
	assert.GreaterOrEqual(t, calls, 1)
	assert.Equal(t, Progress{Visited: 2, Found: 2}, last)
}

func TestValidateRoot(t *testing.T) {
	root := writeTree(t, "file.txt")

	abs, err := ValidateRoot(root)
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(abs))

	tests := []struct {
		name string
		path string
	}{
		{name: "empty", path: "  "},
		{name: "missing", path: filepath.Join(root, "nope")},
		{name: "file", path: filepath.Join(root, "file.txt")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateRoot(tt.path)
			require.ErrorIs(t, err, ErrInvalidRoot)
		})
	}
}

func TestListDirs(t *testing.T) {
	root := writeTree(t, "Zeta/a.txt", "alpha/b.txt", ".hidden/c.txt", "top.txt")

	dirs, err := ListDirs(root, false)
	require.NoError(t, err)
	require.Len(t, dirs, 2)
	assert.Equal(t, "alpha", dirs[0].Name)
	assert.Equal(t, "Zeta", dirs[1].Name)
	assert.True(t, dirs[0].IsDir)
	assert.Equal(t, filepath.Join(root, "alpha"), dirs[0].AbsPath)

	dirs, err = ListDirs(root, true)
	require.NoError(t, err)
	assert.Len(t, dirs, 3)
}

func TestFilesystemRoot(t *testing.T) {
	got := FilesystemRoot(t.TempDir())
	assert.True(t, filepath.IsAbs(got))
	assert.Equal(t, got, filepath.Dir(got))
}

func TestMergeSkipDirs(t *testing.T) {
	merged := MergeSkipDirs(DefaultSkipDirs(), []string{"node_modules", ""})
	assert.Contains(t, merged, "node_modules")
	assert.Contains(t, merged, ".git")
	assert.NotContains(t, merged, "")

	assert.Equal(t, map[string]struct{}{"x": {}}, MergeSkipDirs(nil, []string{"x"}))
}

func TestEntryType(t *testing.T) {
	assert.Equal(t, "txt", Entry{Name: "A.TXT"}.Type())
	assert.Equal(t, "", Entry{Name: "Makefile"}.Type())
	assert.Equal(t, "folder", Entry{Name: "dir.d", IsDir: true}.Type())
}
