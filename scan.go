package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/entro314-labs/filedeck/internal/browse"

	tea "github.com/charmbracelet/bubbletea"
)

// scanRequest describes one refresh: the folder shown in the folder pane and the root
// whose files are listed (the folder itself, or the global root).
type scanRequest struct {
	ID     int
	Folder string
	Root   string
	Opts   browse.ListOptions
}

type scanStreamMsg struct {
	ID int
	Ch <-chan tea.Msg
}

type scanProgressMsg struct {
	ID       int
	Progress browse.Progress
}

type scanFinishedMsg struct {
	ID      int
	Folder  string
	Listing browse.Listing
	Dirs    []browse.Entry
	DirsErr error
	Err     error
}

type scanPulseMsg struct{}

type searchDebounceMsg struct {
	Token uint64
}

type deleteFinishedMsg struct {
	Root   string
	Report browse.DeleteReport
	Err    error
}

func scanStartCmd(ctx context.Context, req scanRequest) tea.Cmd {
	return func() tea.Msg {
		ch := make(chan tea.Msg)
		go runScanStream(ctx, req, ch)
		return scanStreamMsg{ID: req.ID, Ch: ch}
	}
}

func runScanStream(ctx context.Context, req scanRequest, out chan<- tea.Msg) {
	defer close(out)

	send := func(msg tea.Msg) {
		select {
		case out <- msg:
		case <-ctx.Done():
		}
	}

	opts := req.Opts
	opts.OnProgress = func(p browse.Progress) {
		send(scanProgressMsg{ID: req.ID, Progress: p})
	}
	send(runScan(ctx, req, opts))
}

// runScan lists the root's files and the folder's subfolders.
func runScan(ctx context.Context, req scanRequest, opts browse.ListOptions) scanFinishedMsg {
	msg := scanFinishedMsg{ID: req.ID, Folder: req.Folder}
	msg.Dirs, msg.DirsErr = browse.ListDirs(req.Folder, opts.Hidden)
	msg.Listing, msg.Err = browse.ListFiles(ctx, req.Root, opts)
	return msg
}

func waitScanMsg(ch <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-ch
		if !ok {
			return nil
		}
		return msg
	}
}

func scanPulseCmd() tea.Cmd {
	return tea.Tick(120*time.Millisecond, func(time.Time) tea.Msg {
		return scanPulseMsg{}
	})
}

func debounceCmd(delay time.Duration, token uint64) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return searchDebounceMsg{Token: token} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchDebounceMsg{Token: token}
	})
}

// deleteCmd runs a confirmed batch delete confined to root.
func deleteCmd(ctx context.Context, root string, sel *browse.Selection) tea.Cmd {
	return func() tea.Msg {
		handle, err := os.OpenRoot(root)
		if err != nil {
			return deleteFinishedMsg{Root: root, Err: fmt.Errorf("open root %s: %w", root, err)}
		}
		defer handle.Close()
		report, err := browse.Delete(ctx, browse.RootDeleter{Root: handle}, sel, true)
		return deleteFinishedMsg{Root: root, Report: report, Err: err}
	}
}
