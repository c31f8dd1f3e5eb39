package browse

import (
	"io/fs"
	"time"
)

// FakeDeleter records delete calls without touching the filesystem. Paths listed in
// Dirs stat as folders, paths in Fail return the mapped error from Remove/RemoveAll,
// and paths in Missing fail Lstat with fs.ErrNotExist.
type FakeDeleter struct {
	Calls   []string
	Dirs    map[string]bool
	Fail    map[string]error
	Missing map[string]bool
}

func (f *FakeDeleter) Lstat(path string) (fs.FileInfo, error) {
	if f.Missing[path] {
		return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrNotExist}
	}
	return fakeInfo{name: path, dir: f.Dirs[path]}, nil
}

func (f *FakeDeleter) Remove(path string) error {
	f.Calls = append(f.Calls, "rm:"+path)
	return f.Fail[path]
}

func (f *FakeDeleter) RemoveAll(path string) error {
	f.Calls = append(f.Calls, "rmall:"+path)
	return f.Fail[path]
}

type fakeInfo struct {
	name string
	dir  bool
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }

func (i fakeInfo) Mode() fs.FileMode {
	if i.dir {
		return fs.ModeDir | 0o755
	}
	return 0o644
}
