package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/entro314-labs/filedeck/internal/browse"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	tea "github.com/charmbracelet/bubbletea"
)

var Version = "0.1.0"

type configKey struct{}

type loggerKey struct{}

func configFrom(ctx context.Context) Config {
	if cfg, ok := ctx.Value(configKey{}).(Config); ok {
		return cfg
	}
	return Config{
		Debounce: defaultDebounce,
		Confirm:  true,
		Hidden:   true,
		Match:    string(browse.MatchSubstring),
	}
}

func loggerFrom(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func NewRootCmd() *cobra.Command {
	var cfgFile string
	var closeLog func() error

	rootCmd := &cobra.Command{
		Use:   "filedeck [folder]",
		Short: "Browse, search and clean up files from the terminal",
		Long: `filedeck shows a folder pane and a file table for a folder. Search filters
file names as you type, scoped to the folder or across the whole filesystem,
and marked files or folders can be deleted after confirmation.`,
		Version: Version,
		Args:    cobra.MaximumNArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}
			cfg, used, err := loadConfig(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			interactive := cmd == cmd.Root()
			logger, closer, err := newLogger(cfg, cmd.ErrOrStderr(), interactive)
			if err != nil {
				return err
			}
			closeLog = closer
			if used != "" {
				logger.Debug("config loaded", "path", used)
			}

			ctx := context.WithValue(cmd.Context(), configKey{}, cfg)
			ctx = context.WithValue(ctx, loggerKey{}, logger)
			cmd.SetContext(ctx)
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			if closeLog != nil {
				return closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			folder := "."
			if len(args) > 0 {
				folder = args[0]
			}
			return runBrowser(cmd.Context(), folder)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: ./.filedeck.yaml)")
	flags.String("global-root", "", "Folder a global search enumerates (default: filesystem root)")
	flags.Duration("debounce", defaultDebounce, "Delay before a search query is applied")
	flags.Bool("no-confirm", false, "Delete without confirmation prompts")
	flags.StringSlice("skip", nil, "Additional folder names to skip while listing")
	flags.Int("depth", 0, "Maximum folder depth to list (0 = unlimited)")
	flags.Bool("hidden", true, "Include dot files and folders")
	flags.String("match", "", "Query matching: substring or glob")
	flags.String("match-field", "", "Entry text a query matches: name or path")
	flags.String("log-file", "", "Write logs to this file")
	flags.String("log-level", "", "Log level: debug, info, warn, error")
	flags.BoolP("verbose", "v", false, "Verbose logging")

	_ = rootCmd.RegisterFlagCompletionFunc("match", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"substring", "glob"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newListCommand())
	rootCmd.AddCommand(newDeleteCommand())
	rootCmd.AddCommand(newVersionCommand())
	return rootCmd
}

func runBrowser(ctx context.Context, folder string) error {
	cfg := configFrom(ctx)
	abs, err := browse.ValidateRoot(folder)
	if err != nil {
		return err
	}
	m := newModel(ctx, abs, cfg, loggerFrom(ctx))
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx)).Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run browser: %w", err)
	}
	return nil
}

func newListCommand() *cobra.Command {
	var query string
	var global bool
	var sortBy string
	var desc bool
	var format string

	cmd := &cobra.Command{
		Use:   "list [folder]",
		Short: "Print the files under a folder, optionally filtered and sorted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFrom(ctx)
			logger := loggerFrom(ctx)

			key, err := browse.ParseSortKey(sortBy)
			if err != nil {
				return err
			}
			folder := "."
			if len(args) > 0 {
				folder = args[0]
			}
			folder, err = browse.ValidateRoot(folder)
			if err != nil {
				return err
			}
			root := folder
			if global {
				root = cfg.globalRootFor(folder)
			}

			logger.Debug("listing", "root", root, "query", query)
			listing, err := browse.ListFiles(ctx, root, cfg.listOptions())
			if err != nil {
				return err
			}
			if notice := listing.Notice(); notice != "" {
				logger.Warn("listing incomplete", "warnings", len(listing.Warnings))
				fmt.Fprintln(cmd.ErrOrStderr(), notice)
			}

			search := cfg.newSearch()
			if global {
				search.SetScope(browse.ScopeGlobal)
			}
			search.Commit(search.SetQuery(query))
			out := search.Apply(listing.Entries)
			if out.Err != nil {
				return out.Err
			}
			if out.ZeroMatch {
				fmt.Fprintf(cmd.ErrOrStderr(), "No files match %q\n", query)
				return nil
			}

			entries := append([]browse.Entry(nil), out.Entries...)
			order := browse.Ascending
			if desc {
				order = browse.Descending
			}
			browse.SortEntries(entries, key, order)
			return renderEntries(cmd.OutOrStdout(), entries, format, global)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "Case-insensitive filter")
	cmd.Flags().BoolVarP(&global, "global", "g", false, "Search the global root instead of the folder")
	cmd.Flags().StringVarP(&sortBy, "sort", "s", "name", "Sort column: name, size or type")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table or plain")
	return cmd
}

func renderEntries(w io.Writer, entries []browse.Entry, format string, absolute bool) error {
	path := func(e browse.Entry) string {
		if absolute {
			return e.AbsPath
		}
		return e.RelPath
	}

	switch format {
	case "plain":
		for _, e := range entries {
			if _, err := fmt.Fprintln(w, path(e)); err != nil {
				return err
			}
		}
		return nil
	case "table", "":
	default:
		return fmt.Errorf("unknown format %q (want table or plain)", format)
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Name", "Size", "Type", "Modified"})
	var total int64
	for _, e := range entries {
		total += e.Size
		t.AppendRow(table.Row{path(e), formatBytes(e.Size), e.Type(), humanize.Time(e.ModTime)})
	}
	t.AppendFooter(table.Row{fmt.Sprintf("%d file(s)", len(entries)), formatBytes(total), "", ""})
	t.Render()
	return nil
}

func newDeleteCommand() *cobra.Command {
	var root string
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete <path>...",
		Short: "Delete files or folders under a root, reporting each failure",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFrom(ctx)
			logger := loggerFrom(ctx)

			abs, err := browse.ValidateRoot(root)
			if err != nil {
				return err
			}
			sel, err := selectionFromArgs(abs, args)
			if err != nil {
				return err
			}

			confirmed := yes || !cfg.Confirm
			if !confirmed {
				confirmed, err = promptConfirm(cmd.InOrStdin(), cmd.ErrOrStderr(), sel.Len())
				if err != nil {
					return err
				}
				if !confirmed {
					fmt.Fprintln(cmd.ErrOrStderr(), "Deletion cancelled")
					return nil
				}
			}

			handle, err := os.OpenRoot(abs)
			if err != nil {
				return fmt.Errorf("open root %s: %w", abs, err)
			}
			defer handle.Close()

			report, err := browse.Delete(ctx, browse.RootDeleter{Root: handle}, sel, confirmed)
			if err != nil {
				return err
			}
			for _, failure := range report.Failures {
				logger.Warn("delete failed", "path", failure.Path, "err", failure.Err)
			}
			logger.Info("delete finished", "root", abs, "deleted", report.Deleted, "failed", len(report.Failures))
			fmt.Fprintln(cmd.OutOrStdout(), report.Summary())
			if len(report.Failures) > 0 {
				return fmt.Errorf("%d item(s) could not be deleted", len(report.Failures))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&root, "root", ".", "Folder the paths are relative to")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

// selectionFromArgs turns command arguments into paths relative to root. Absolute
// arguments must lie inside root.
func selectionFromArgs(root string, args []string) (*browse.Selection, error) {
	sel := browse.NewSelection()
	for _, arg := range args {
		rel := arg
		if filepath.IsAbs(arg) {
			r, err := filepath.Rel(root, arg)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", arg, err)
			}
			rel = r
		}
		sel.Add(browse.Entry{RelPath: rel, AbsPath: filepath.Join(root, rel), Name: filepath.Base(rel)})
	}
	return sel, nil
}

func promptConfirm(in io.Reader, out io.Writer, count int) (bool, error) {
	fmt.Fprintf(out, "Delete %d item(s)? [y/N] ", count)
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "filedeck %s\n", Version)
		},
	}
}
