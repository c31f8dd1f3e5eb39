package browse

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	ErrEmptySelection = errors.New("no files selected")
	ErrNotConfirmed   = errors.New("delete not confirmed")
)

// Deleter abstracts the filesystem calls made by Delete. Paths are relative to the
// deleter's root.
type Deleter interface {
	Lstat(path string) (fs.FileInfo, error)
	Remove(path string) error
	RemoveAll(path string) error
}

// RootDeleter confines deletes to the tree under an os.Root.
type RootDeleter struct {
	Root *os.Root
}

func (d RootDeleter) Lstat(path string) (fs.FileInfo, error) {
	if d.Root == nil {
		return nil, errors.New("delete: root handle is nil")
	}
	return d.Root.Lstat(path)
}

func (d RootDeleter) Remove(path string) error {
	if d.Root == nil {
		return errors.New("delete: root handle is nil")
	}
	return d.Root.Remove(path)
}

func (d RootDeleter) RemoveAll(path string) error {
	if d.Root == nil {
		return errors.New("delete: root handle is nil")
	}
	return d.Root.RemoveAll(path)
}

// Target is one selected path, relative to the delete root. Whether it is a file or a
// folder is decided when it is deleted.
type Target struct {
	RelPath string
}

// Selection is the ordered set of targets chosen for a single delete.
type Selection struct {
	targets []Target
	seen    map[string]struct{}
}

func NewSelection(entries ...Entry) *Selection {
	s := &Selection{}
	for _, entry := range entries {
		s.Add(entry)
	}
	return s
}

// Add appends entry unless its path is already selected.
func (s *Selection) Add(entry Entry) {
	if s.seen == nil {
		s.seen = map[string]struct{}{}
	}
	key := filepath.Clean(entry.RelPath)
	if _, ok := s.seen[key]; ok {
		return
	}
	s.seen[key] = struct{}{}
	s.targets = append(s.targets, Target{RelPath: entry.RelPath})
}

func (s *Selection) Len() int {
	if s == nil {
		return 0
	}
	return len(s.targets)
}

func (s *Selection) Targets() []Target {
	if s == nil {
		return nil
	}
	return append([]Target(nil), s.targets...)
}

type Failure struct {
	Path string
	Err  error
}

type DeleteReport struct {
	Deleted  int
	Failures []Failure
}

// Summary renders the report for a result dialog or the terminal.
func (r DeleteReport) Summary() string {
	if len(r.Failures) == 0 {
		return fmt.Sprintf("Deleted %d item(s)", r.Deleted)
	}
	lines := []string{fmt.Sprintf("Deleted %d item(s). Errors occurred:", r.Deleted)}
	for _, failure := range r.Failures {
		lines = append(lines, fmt.Sprintf("Error deleting %s: %v", failure.Path, failure.Err))
	}
	return strings.Join(lines, "\n")
}

// Delete removes every target in the selection, files with Remove and folders with
// RemoveAll. A failing item is recorded and the rest are still processed. Nothing is
// touched unless the selection is non-empty and confirmed.
func Delete(ctx context.Context, d Deleter, sel *Selection, confirmed bool) (DeleteReport, error) {
	if sel.Len() == 0 {
		return DeleteReport{}, ErrEmptySelection
	}
	if !confirmed {
		return DeleteReport{}, ErrNotConfirmed
	}

	var report DeleteReport
	for _, target := range sel.Targets() {
		if err := ctx.Err(); err != nil {
			report.Failures = append(report.Failures, Failure{Path: target.RelPath, Err: err})
			continue
		}
		if err := deleteOne(d, target.RelPath); err != nil {
			report.Failures = append(report.Failures, Failure{Path: target.RelPath, Err: err})
			continue
		}
		report.Deleted++
	}
	return report, nil
}

func deleteOne(d Deleter, relPath string) error {
	cleaned, err := ValidateDeletePath(relPath)
	if err != nil {
		return err
	}
	info, err := d.Lstat(cleaned)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return d.RemoveAll(cleaned)
	}
	return d.Remove(cleaned)
}

func ValidateDeletePath(relPath string) (string, error) {
	if relPath == "" {
		return "", errors.New("delete: empty path")
	}
	cleaned := filepath.Clean(relPath)
	if cleaned == "." || cleaned == string(os.PathSeparator) {
		return "", errors.New("delete: refusing to delete root")
	}
	if filepath.IsAbs(cleaned) {
		return "", errors.New("delete: absolute paths are not allowed")
	}
	if cleaned == ".." || strings.HasPrefix(cleaned, ".."+string(os.PathSeparator)) {
		return "", errors.New("delete: path escapes root")
	}
	return cleaned, nil
}
