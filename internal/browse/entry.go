// Package browse holds the file browser's engine: enumeration, filtering, sorting and
// batch deletion. Nothing here knows about the terminal UI.
package browse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

var ErrInvalidRoot = errors.New("invalid root folder")

// Entry is a file found during enumeration. Directories only appear as entries in
// folder listings and selections, never in a Listing.
type Entry struct {
	RelPath string
	AbsPath string
	Name    string
	Size    int64
	ModTime time.Time
	IsDir   bool
}

// Type is the lower-cased extension without the dot.
func (e Entry) Type() string {
	if e.IsDir {
		return "folder"
	}
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(e.Name)), ".")
}

type Listing struct {
	Root     string
	Entries  []Entry
	Warnings []string
	Elapsed  time.Duration
	Visited  int
}

// Incomplete reports whether parts of the tree could not be read.
func (l Listing) Incomplete() bool {
	return len(l.Warnings) > 0
}

// Notice aggregates the walk warnings into a single line, or "" when there are none.
func (l Listing) Notice() string {
	switch len(l.Warnings) {
	case 0:
		return ""
	case 1:
		return "Listing incomplete: " + l.Warnings[0]
	default:
		return fmt.Sprintf("Listing incomplete: %d folders could not be read (first: %s)", len(l.Warnings), l.Warnings[0])
	}
}

type Progress struct {
	Visited int
	Found   int
}

type ListOptions struct {
	SkipDirs   map[string]struct{}
	MaxDepth   int
	Hidden     bool
	OnProgress func(Progress)
}

func DefaultSkipDirs() map[string]struct{} {
	return map[string]struct{}{
		".git": {},
		".hg":  {},
		".svn": {},
	}
}

func MergeSkipDirs(base map[string]struct{}, extra []string) map[string]struct{} {
	if len(extra) == 0 {
		return base
	}
	if base == nil {
		base = map[string]struct{}{}
	}
	for _, item := range extra {
		if item == "" {
			continue
		}
		base[item] = struct{}{}
	}
	return base
}

// ValidateRoot resolves path to an absolute directory.
func ValidateRoot(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidRoot)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s does not exist", ErrInvalidRoot, abs)
		}
		return "", fmt.Errorf("%w: %v", ErrInvalidRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s is not a folder", ErrInvalidRoot, abs)
	}
	return abs, nil
}

// FilesystemRoot is the root of the volume holding path ("/" on unix).
func FilesystemRoot(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return filepath.VolumeName(abs) + string(filepath.Separator)
}

// ListFiles walks root and returns every regular file below it. Unreadable folders are
// skipped and recorded as warnings; any other error aborts the walk.
func ListFiles(ctx context.Context, root string, opts ListOptions) (Listing, error) {
	abs, err := ValidateRoot(root)
	if err != nil {
		return Listing{}, err
	}

	handle, err := os.OpenRoot(abs)
	if err != nil {
		return Listing{}, fmt.Errorf("open root %s: %w", abs, err)
	}
	defer handle.Close()

	start := time.Now()
	listing := Listing{Root: abs}
	lastProgress := time.Now()

	report := func(force bool) {
		if opts.OnProgress == nil {
			return
		}
		if force || time.Since(lastProgress) > 200*time.Millisecond {
			opts.OnProgress(Progress{Visited: listing.Visited, Found: len(listing.Entries)})
			lastProgress = time.Now()
		}
	}

	err = fs.WalkDir(handle.FS(), ".", func(path string, entry fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				listing.Warnings = append(listing.Warnings, fmt.Sprintf("permission denied: %s", filepath.FromSlash(path)))
				if entry == nil || entry.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
			return err
		}

		name := entry.Name()
		if path != "." && !opts.Hidden && strings.HasPrefix(name, ".") {
			if entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}

		if entry.IsDir() {
			listing.Visited++
			report(false)
			if path == "." {
				return nil
			}
			if _, ok := opts.SkipDirs[name]; ok {
				return fs.SkipDir
			}
			if opts.MaxDepth > 0 && relativeDepth(path) >= opts.MaxDepth {
				return fs.SkipDir
			}
			return nil
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		info, infoErr := entry.Info()
		if infoErr != nil {
			if errors.Is(infoErr, fs.ErrNotExist) {
				return nil
			}
			return infoErr
		}

		rel := filepath.FromSlash(path)
		listing.Entries = append(listing.Entries, Entry{
			RelPath: rel,
			AbsPath: filepath.Join(abs, rel),
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
		return nil
	})

	report(true)
	listing.Elapsed = time.Since(start)
	if err != nil {
		return Listing{Root: abs}, fmt.Errorf("list %s: %w", abs, err)
	}
	return listing, nil
}

// ListDirs returns the immediate subfolders of path sorted by name.
func ListDirs(path string, hidden bool) ([]Entry, error) {
	abs, err := ValidateRoot(path)
	if err != nil {
		return nil, err
	}
	items, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("read folder %s: %w", abs, err)
	}

	dirs := make([]Entry, 0, len(items))
	for _, item := range items {
		if !item.IsDir() {
			continue
		}
		if !hidden && strings.HasPrefix(item.Name(), ".") {
			continue
		}
		dirs = append(dirs, Entry{
			RelPath: item.Name(),
			AbsPath: filepath.Join(abs, item.Name()),
			Name:    item.Name(),
			IsDir:   true,
		})
	}
	sort.Slice(dirs, func(i, j int) bool {
		return strings.ToLower(dirs[i].Name) < strings.ToLower(dirs[j].Name)
	})
	return dirs, nil
}

// relativeDepth counts the folder levels of a slash path: "a" is 1, "a/b" is 2.
func relativeDepth(relPath string) int {
	trimmed := strings.TrimPrefix(relPath, "./")
	if trimmed == "." || trimmed == "" {
		return 0
	}
	return strings.Count(trimmed, "/") + 1
}
