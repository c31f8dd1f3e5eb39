package browse

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDelete_PreconditionsTouchNothing(t *testing.T) {
	fake := &FakeDeleter{}

	_, err := Delete(context.Background(), fake, NewSelection(), true)
	require.ErrorIs(t, err, ErrEmptySelection)

	_, err = Delete(context.Background(), fake, nil, true)
	require.ErrorIs(t, err, ErrEmptySelection)

	_, err = Delete(context.Background(), fake, NewSelection(Entry{RelPath: "a.txt"}), false)
	require.ErrorIs(t, err, ErrNotConfirmed)

	assert.Empty(t, fake.Calls)
}

func TestDelete_PartialFailureContinues(t *testing.T) {
	locked := &fs.PathError{Op: "remove", Path: "a.txt", Err: fs.ErrPermission}
	fake := &FakeDeleter{Fail: map[string]error{"a.txt": locked}}
	sel := NewSelection(Entry{RelPath: "a.txt"}, Entry{RelPath: filepath.Join("sub", "c.log")})

	report, err := Delete(context.Background(), fake, sel, true)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Deleted)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "a.txt", report.Failures[0].Path)
	assert.ErrorIs(t, report.Failures[0].Err, fs.ErrPermission)
	assert.Equal(t, []string{"rm:a.txt", "rm:" + filepath.Join("sub", "c.log")}, fake.Calls)
	assert.Contains(t, report.Summary(), "Deleted 1 item(s). Errors occurred:")
	assert.Contains(t, report.Summary(), "Error deleting a.txt")
}

func TestDelete_CountsAddUp(t *testing.T) {
	fake := &FakeDeleter{
		Dirs:    map[string]bool{"dir": true},
		Fail:    map[string]error{"b": errors.New("busy")},
		Missing: map[string]bool{"gone": true},
	}
	sel := NewSelection(
		Entry{RelPath: "a"},
		Entry{RelPath: "b"},
		Entry{RelPath: "dir", IsDir: true},
		Entry{RelPath: "gone"},
		Entry{RelPath: "../escape"},
		Entry{RelPath: "a"},
	)
	require.Equal(t, 5, sel.Len())

	report, err := Delete(context.Background(), fake, sel, true)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Deleted)
	assert.Len(t, report.Failures, 3)
	assert.Equal(t, sel.Len(), report.Deleted+len(report.Failures))
	assert.Equal(t, []string{"rm:a", "rm:b", "rmall:dir"}, fake.Calls)

	paths := []string{}
	for _, f := range report.Failures {
		paths = append(paths, f.Path)
	}
	assert.Equal(t, []string{"b", "gone", "../escape"}, paths)
}

func TestDelete_CancelledContextRecordsRemaining(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	fake := &FakeDeleter{}

	report, err := Delete(ctx, fake, NewSelection(Entry{RelPath: "a"}, Entry{RelPath: "b"}), true)
	require.NoError(t, err)
	assert.Zero(t, report.Deleted)
	assert.Len(t, report.Failures, 2)
	assert.Empty(t, fake.Calls)
}

func TestDelete_RootDeleterOnDisk(t *testing.T) {
	root := writeTree(t, "a.txt", "sub/b.txt", "sub/c.log", "keep.txt")
	handle, err := os.OpenRoot(root)
	require.NoError(t, err)
	t.Cleanup(func() { _ = handle.Close() })

	sel := NewSelection(
		Entry{RelPath: "a.txt"},
		Entry{RelPath: "sub", IsDir: true},
		Entry{RelPath: "missing.txt"},
	)
	report, err := Delete(context.Background(), RootDeleter{Root: handle}, sel, true)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Deleted)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "missing.txt", report.Failures[0].Path)
	assert.ErrorIs(t, report.Failures[0].Err, fs.ErrNotExist)

	listing, err := ListFiles(context.Background(), root, ListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"keep.txt"}, relPaths(listing.Entries))
}

func TestDelete_RootDeleterRejectsEscapes(t *testing.T) {
	parent := writeTree(t, "outside.txt", "inner/x.txt")
	handle, err := os.OpenRoot(filepath.Join(parent, "inner"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = handle.Close() })

	report, err := Delete(context.Background(), RootDeleter{Root: handle}, NewSelection(Entry{RelPath: "../outside.txt"}), true)
	require.NoError(t, err)
	assert.Zero(t, report.Deleted)
	assert.FileExists(t, filepath.Join(parent, "outside.txt"))
}

func TestValidateDeletePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{path: "", wantErr: true},
		{path: ".", wantErr: true},
		{path: string(os.PathSeparator), wantErr: true},
		{path: "..", wantErr: true},
		{path: "a/../../b", wantErr: true},
		{path: "a/./b.txt", wantErr: false},
		{path: "..hidden", wantErr: false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, err := ValidateDeletePath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDeleteReport_SummaryWithoutFailures(t *testing.T) {
	assert.Equal(t, "Deleted 3 item(s)", DeleteReport{Deleted: 3}.Summary())
}
