package main

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"
	"github.com/entro314-labs/filedeck/internal/browse"

	tea "github.com/charmbracelet/bubbletea"
)

type pane int

const (
	paneFiles pane = iota
	paneFolders
)

type noticeLevel int

const (
	noticeInfo noticeLevel = iota
	noticeWarn
	noticeError
)

// notice is a status line. Search notices follow the query and are dropped once it
// filters cleanly again.
type notice struct {
	text      string
	level     noticeLevel
	search    bool
	zeroMatch bool
}

func (n notice) render() string {
	if n.text == "" {
		return ""
	}
	switch n.level {
	case noticeError:
		return ui.danger.Render(n.text)
	case noticeWarn:
		return ui.warning.Render(n.text)
	default:
		return ui.status.Render(n.text)
	}
}

type confirmState struct {
	active bool
	root   string
	sel    *browse.Selection
	label  string
}

type model struct {
	files        table.Model
	folders      table.Model
	search       textinput.Model
	spinner      spinner.Model
	help         help.Model
	keys         keyMap
	scanProgress progress.Model

	cfg    Config
	logger *slog.Logger

	folder    string
	dirs      []browse.Entry
	listing   browse.Listing
	visible   []browse.Entry
	marked    map[string]bool
	finder    *browse.Search
	token     uint64
	sortKey   browse.SortKey
	sortOrder browse.Order
	focus     pane
	searching bool

	loading        bool
	err            error
	notice         notice
	scanNotice     notice
	report         notice
	lastEvent      string
	confirm        confirmState
	confirmDeletes bool
	deleting       bool
	width          int
	height         int

	scanID       int
	baseCtx      context.Context
	baseCancel   context.CancelFunc
	scanCtx      context.Context
	scanCancel   context.CancelFunc
	scanStream   <-chan tea.Msg
	scanCount    browse.Progress
	scanStart    time.Time
	scanPulse    float64
	scanPulseDir float64
}

func newModel(ctx context.Context, folder string, cfg Config, logger *slog.Logger) model {
	baseCtx, baseCancel := context.WithCancel(ctx)
	scanCtx, scanCancel := context.WithCancel(baseCtx)

	files := table.New(
		table.WithColumns(fileColumns(60)),
		table.WithFocused(true),
	)
	files.SetStyles(tableStyles())

	folders := table.New(
		table.WithColumns([]table.Column{{Title: "Folders", Width: 24}}),
	)
	folders.SetStyles(tableStyles())

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "Search files…"
	search.CharLimit = 256

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))

	scanBar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithoutPercentage(),
	)

	return model{
		files:          files,
		folders:        folders,
		search:         search,
		spinner:        sp,
		help:           help.New(),
		keys:           newKeyMap(),
		scanProgress:   scanBar,
		cfg:            cfg,
		logger:         logger,
		folder:         folder,
		marked:         map[string]bool{},
		finder:         cfg.newSearch(),
		sortKey:        browse.SortByName,
		sortOrder:      browse.Ascending,
		loading:        true,
		confirmDeletes: cfg.Confirm,
		scanID:         1,
		baseCtx:        baseCtx,
		baseCancel:     baseCancel,
		scanCtx:        scanCtx,
		scanCancel:     scanCancel,
		scanStart:      time.Now(),
		scanPulseDir:   1,
	}
}

func fileColumns(nameWidth int) []table.Column {
	return []table.Column{
		{Title: "Name", Width: nameWidth},
		{Title: "Size", Width: 10},
		{Title: "Type", Width: 8},
		{Title: "Status", Width: 10},
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, scanStartCmd(m.scanCtx, m.scanRequest()), scanPulseCmd())
}

func (m model) scanRequest() scanRequest {
	root := m.folder
	if m.finder.Scope() == browse.ScopeGlobal {
		root = m.cfg.globalRootFor(m.folder)
	}
	return scanRequest{ID: m.scanID, Folder: m.folder, Root: root, Opts: m.cfg.listOptions()}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.updateLayout(msg.Width, msg.Height)
	case spinner.TickMsg:
		if m.loading || m.deleting {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			cmds = append(cmds, cmd)
		}
	case scanStreamMsg:
		if msg.ID != m.scanID {
			break
		}
		m.scanStream = msg.Ch
		cmds = append(cmds, waitScanMsg(msg.Ch))
	case scanProgressMsg:
		if msg.ID != m.scanID {
			break
		}
		m.scanCount = msg.Progress
		if m.scanStream != nil {
			cmds = append(cmds, waitScanMsg(m.scanStream))
		}
	case scanFinishedMsg:
		if msg.ID != m.scanID {
			break
		}
		m.applyScan(msg)
	case scanPulseMsg:
		if m.loading {
			m.scanPulse += 0.06 * m.scanPulseDir
			if m.scanPulse >= 1 {
				m.scanPulse = 1
				m.scanPulseDir = -1
			} else if m.scanPulse <= 0 {
				m.scanPulse = 0
				m.scanPulseDir = 1
			}
			cmds = append(cmds, scanPulseCmd())
		}
	case searchDebounceMsg:
		if m.finder.Commit(msg.Token) {
			m.applyView()
			if q := m.finder.Query(); q != "" {
				m.lastEvent = fmt.Sprintf("Searching for: %s", q)
			} else {
				m.lastEvent = "Search cleared"
			}
		}
	case deleteFinishedMsg:
		cmds = append(cmds, m.applyDeleteResult(msg)...)
	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd = m.handleKey(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m model) handleKey(msg tea.KeyMsg) (model, tea.Cmd) {
	if m.confirm.active {
		switch msg.String() {
		case "y", "Y":
			pending := m.confirm
			m.confirm = confirmState{}
			cmd := m.startDelete(pending.root, pending.sel)
			return m, cmd
		case "n", "N", "esc":
			m.confirm = confirmState{}
			m.lastEvent = "Deletion cancelled"
		}
		return m, nil
	}

	if m.searching {
		switch msg.Type {
		case tea.KeyCtrlC:
			m.baseCancel()
			return m, tea.Quit
		case tea.KeyEsc:
			cmd := m.clearSearch()
			return m, cmd
		case tea.KeyEnter:
			m.searching = false
			m.search.Blur()
			return m, nil
		}
		before := m.search.Value()
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			debounce := m.queueSearch(m.search.Value())
			return m, tea.Batch(cmd, debounce)
		}
		return m, cmd
	}

	var cmds []tea.Cmd
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.baseCancel()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	case key.Matches(msg, m.keys.Search):
		m.searching = true
		cmds = append(cmds, m.search.Focus())
	case key.Matches(msg, m.keys.ClearSearch):
		if m.search.Value() != "" || m.finder.Query() != "" {
			cmds = append(cmds, m.clearSearch())
		}
	case key.Matches(msg, m.keys.SwitchPane):
		m.switchPane()
	case key.Matches(msg, m.keys.Open) && m.focus == paneFolders:
		if path, ok := m.highlightedFolderPath(); ok {
			cmds = append(cmds, m.openFolder(path)...)
		}
	case key.Matches(msg, m.keys.Parent):
		cmds = append(cmds, m.openFolder(filepath.Dir(m.folder))...)
	case key.Matches(msg, m.keys.ToggleGlobal):
		cmds = append(cmds, m.toggleGlobal()...)
	case key.Matches(msg, m.keys.Refresh):
		cmds = append(cmds, m.startScan()...)
	case key.Matches(msg, m.keys.SortName):
		m.setSort(browse.SortByName)
	case key.Matches(msg, m.keys.SortSize):
		m.setSort(browse.SortBySize)
	case key.Matches(msg, m.keys.SortType):
		m.setSort(browse.SortByType)
	case key.Matches(msg, m.keys.ToggleOrder):
		m.sortOrder = m.sortOrder.Toggle()
		m.applyView()
		m.lastEvent = fmt.Sprintf("Sorting order changed to %s", m.sortOrder)
	case key.Matches(msg, m.keys.ToggleMark) && m.focus == paneFiles:
		m.toggleMark()
	case key.Matches(msg, m.keys.MarkAll) && m.focus == paneFiles:
		m.markAll()
	case key.Matches(msg, m.keys.ClearMarks):
		m.clearMarks()
	case key.Matches(msg, m.keys.Delete):
		cmds = append(cmds, m.requestDelete())
	case key.Matches(msg, m.keys.ToggleConfirm):
		m.confirmDeletes = !m.confirmDeletes
		m.lastEvent = fmt.Sprintf("Confirm prompts %s", boolLabel(m.confirmDeletes))
	default:
		var cmd tea.Cmd
		if m.focus == paneFolders {
			m.folders, cmd = m.folders.Update(msg)
		} else {
			m.files, cmd = m.files.Update(msg)
		}
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m model) View() string {
	if m.width == 0 {
		return "Loading…"
	}

	folderPane, filePane := ui.pane, ui.activePane
	if m.focus == paneFolders {
		folderPane, filePane = ui.activePane, ui.pane
	}
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		folderPane.Render(m.folders.View()),
		filePane.Render(m.files.View()),
	)
	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.headerView(),
		body,
		m.searchView(),
		m.statusView(),
		m.footerView(),
	)
	return ui.container.Render(view)
}

func (m *model) updateLayout(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	width = max(width, 70)
	height = max(height, 14)
	if m.width == width && m.height == height {
		return
	}
	m.width = width
	m.height = height

	folderWidth := max(width/4, 18)
	filesWidth := width - folderWidth - 8
	m.folders.SetColumns([]table.Column{{Title: "Folders", Width: folderWidth - 2}})
	m.folders.SetWidth(folderWidth)
	m.files.SetColumns(fileColumns(max(filesWidth-36, 20)))
	m.files.SetWidth(filesWidth)

	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(m.searchView()) +
		lipgloss.Height(m.statusView()) + lipgloss.Height(m.footerView())
	available := max(height-chrome-4, 5)
	m.files.SetHeight(available)
	m.folders.SetHeight(available)
	m.scanProgress.Width = max(width-28, 20)
}

func (m *model) startScan() []tea.Cmd {
	if m.scanCancel != nil {
		m.scanCancel()
	}
	ctx, cancel := context.WithCancel(m.baseCtx)
	m.scanCtx = ctx
	m.scanCancel = cancel
	m.scanID++
	m.scanStream = nil
	m.loading = true
	m.scanCount = browse.Progress{}
	m.scanStart = time.Now()
	m.scanPulse = 0
	m.scanPulseDir = 1
	m.lastEvent = "Scanning…"

	return []tea.Cmd{m.spinner.Tick, scanStartCmd(ctx, m.scanRequest()), scanPulseCmd()}
}

// applyScan replaces the entry set wholesale. A failed walk leaves no entries behind
// rather than a partial list.
func (m *model) applyScan(msg scanFinishedMsg) {
	m.loading = false
	m.scanStream = nil
	m.marked = map[string]bool{}
	m.notice = notice{}
	m.scanNotice = notice{}

	if msg.Err != nil {
		m.err = msg.Err
		m.listing = browse.Listing{Root: msg.Listing.Root}
		m.scanNotice = notice{text: fmt.Sprintf("Error refreshing files: %v", msg.Err), level: noticeError}
		m.logger.Error("scan failed", "root", msg.Listing.Root, "err", msg.Err)
	} else {
		m.err = nil
		m.listing = msg.Listing
		if m.listing.Incomplete() {
			m.scanNotice = notice{text: m.listing.Notice(), level: noticeWarn}
			m.logger.Warn("scan incomplete", "root", msg.Listing.Root, "warnings", len(msg.Listing.Warnings))
		}
		m.logger.Info("scan complete", "root", msg.Listing.Root, "files", len(msg.Listing.Entries), "elapsed", msg.Listing.Elapsed)
	}

	m.dirs = msg.Dirs
	if msg.DirsErr != nil && m.scanNotice.text == "" {
		m.scanNotice = notice{text: fmt.Sprintf("Cannot read folders: %v", msg.DirsErr), level: noticeWarn}
	}
	m.setFolderRows()
	m.applyView()
	if msg.Err == nil {
		m.lastEvent = fmt.Sprintf("Found %d files", len(m.listing.Entries))
	}
}

// applyView filters and sorts the current listing into the file table.
func (m *model) applyView() {
	out := m.finder.Apply(m.listing.Entries)
	visible := append([]browse.Entry(nil), out.Entries...)
	browse.SortEntries(visible, m.sortKey, m.sortOrder)
	m.visible = visible

	switch {
	case out.Err != nil:
		m.notice = notice{text: fmt.Sprintf("Invalid pattern: %v", out.Err), level: noticeWarn, search: true}
	case out.Notify:
		m.notice = notice{text: fmt.Sprintf("No files match %q", out.Query), level: noticeWarn, search: true, zeroMatch: true}
	case out.ZeroMatch && m.notice.zeroMatch:
		// still the same run of zero-match queries
	case m.notice.search:
		m.notice = notice{}
	}
	m.setFileRows()
}

func (m *model) setFileRows() {
	rows := make([]table.Row, 0, len(m.visible))
	global := m.finder.Scope() == browse.ScopeGlobal
	for _, entry := range m.visible {
		name := entry.RelPath
		if global {
			name = entry.AbsPath
		}
		status := ""
		if m.marked[entry.RelPath] {
			status = "selected"
		}
		rows = append(rows, table.Row{name, formatBytes(entry.Size), entry.Type(), status})
	}
	m.files.SetRows(rows)
	if m.files.Cursor() >= len(rows) {
		m.files.SetCursor(max(len(rows)-1, 0))
	}
}

func (m *model) setFolderRows() {
	rows := []table.Row{}
	if filepath.Dir(m.folder) != m.folder {
		rows = append(rows, table.Row{".."})
	}
	for _, dir := range m.dirs {
		rows = append(rows, table.Row{dir.Name + string(filepath.Separator)})
	}
	m.folders.SetRows(rows)
	if m.folders.Cursor() >= len(rows) {
		m.folders.SetCursor(max(len(rows)-1, 0))
	}
}

func (m model) hasParentRow() bool {
	return filepath.Dir(m.folder) != m.folder
}

// highlightedFolder returns the folder-pane entry under the cursor, excluding "..".
func (m model) highlightedFolder() (browse.Entry, bool) {
	idx := m.folders.Cursor()
	if m.hasParentRow() {
		idx--
	}
	if idx < 0 || idx >= len(m.dirs) {
		return browse.Entry{}, false
	}
	return m.dirs[idx], true
}

func (m model) highlightedFolderPath() (string, bool) {
	if m.hasParentRow() && m.folders.Cursor() == 0 {
		return filepath.Dir(m.folder), true
	}
	entry, ok := m.highlightedFolder()
	if !ok {
		return "", false
	}
	return entry.AbsPath, true
}

func (m *model) switchPane() {
	if m.focus == paneFiles {
		m.focus = paneFolders
		m.files.Blur()
		m.folders.Focus()
		return
	}
	m.focus = paneFiles
	m.folders.Blur()
	m.files.Focus()
}

// openFolder makes path the current folder. An invalid path only produces a warning.
func (m *model) openFolder(path string) []tea.Cmd {
	abs, err := browse.ValidateRoot(path)
	if err != nil {
		m.notice = notice{text: err.Error(), level: noticeWarn}
		return nil
	}
	if abs == m.folder {
		return nil
	}
	m.folder = abs
	m.report = notice{}
	m.search.Reset()
	m.search.Blur()
	m.searching = false
	m.finder.Reset()
	m.files.SetCursor(0)
	m.folders.SetCursor(0)
	m.logger.Debug("folder selected", "folder", abs)
	cmds := m.startScan()
	m.lastEvent = fmt.Sprintf("Current Folder: %s", abs)
	return cmds
}

func (m *model) toggleGlobal() []tea.Cmd {
	next := browse.ScopeGlobal
	if m.finder.Scope() == browse.ScopeGlobal {
		next = browse.ScopeFolder
	}
	if !m.finder.SetScope(next) {
		return nil
	}
	cmds := m.startScan()
	if next == browse.ScopeGlobal {
		m.lastEvent = fmt.Sprintf("Global search from %s", m.cfg.globalRootFor(m.folder))
	} else {
		m.lastEvent = fmt.Sprintf("Search scoped to %s", m.folder)
	}
	return cmds
}

func (m *model) queueSearch(value string) tea.Cmd {
	m.token = m.finder.SetQuery(value)
	return debounceCmd(m.cfg.Debounce, m.token)
}

func (m *model) clearSearch() tea.Cmd {
	m.search.Reset()
	m.search.Blur()
	m.searching = false
	m.finder.Reset()
	m.applyView()
	m.lastEvent = "Search cleared"
	return nil
}

func (m *model) setSort(k browse.SortKey) {
	m.sortKey = k
	m.applyView()
	m.lastEvent = fmt.Sprintf("Sorted by %s (%s)", k, m.sortOrder)
}

func (m *model) toggleMark() {
	idx := m.files.Cursor()
	if idx < 0 || idx >= len(m.visible) {
		return
	}
	path := m.visible[idx].RelPath
	if m.marked[path] {
		delete(m.marked, path)
		m.lastEvent = "Removed from selection"
	} else {
		m.marked[path] = true
		m.lastEvent = "Added to selection"
	}
	m.setFileRows()
}

func (m *model) markAll() {
	count := 0
	for _, entry := range m.visible {
		if !m.marked[entry.RelPath] {
			m.marked[entry.RelPath] = true
			count++
		}
	}
	if count > 0 {
		m.lastEvent = fmt.Sprintf("Selected %d item(s)", count)
	} else {
		m.lastEvent = "Everything is already selected"
	}
	m.setFileRows()
}

func (m *model) clearMarks() {
	if len(m.marked) == 0 {
		m.lastEvent = "Selection already empty"
		return
	}
	m.marked = map[string]bool{}
	m.lastEvent = "Cleared selection"
	m.setFileRows()
}

// selection collects the marked visible files, or the file under the cursor when
// nothing is marked.
func (m model) selection() *browse.Selection {
	sel := browse.NewSelection()
	for _, entry := range m.visible {
		if m.marked[entry.RelPath] {
			sel.Add(entry)
		}
	}
	if sel.Len() == 0 {
		idx := m.files.Cursor()
		if idx >= 0 && idx < len(m.visible) {
			sel.Add(m.visible[idx])
		}
	}
	return sel
}

func (m *model) requestDelete() tea.Cmd {
	if m.deleting || m.loading {
		return nil
	}

	var root, label string
	var sel *browse.Selection
	if m.focus == paneFolders {
		entry, ok := m.highlightedFolder()
		if !ok {
			m.notice = notice{text: "No folder selected", level: noticeWarn}
			return nil
		}
		root = m.folder
		sel = browse.NewSelection(entry)
		label = fmt.Sprintf("Delete folder %s and everything in it? (y/n)", entry.Name)
	} else {
		root = m.listing.Root
		sel = m.selection()
		if sel.Len() == 0 {
			m.notice = notice{text: "No files selected", level: noticeWarn}
			return nil
		}
		label = fmt.Sprintf("Are you sure you want to delete %d selected item(s)? (y/n)", sel.Len())
	}

	if m.confirmDeletes {
		m.confirm = confirmState{active: true, root: root, sel: sel, label: label}
		return nil
	}
	return m.startDelete(root, sel)
}

func (m *model) startDelete(root string, sel *browse.Selection) tea.Cmd {
	if sel.Len() == 0 || m.deleting {
		return nil
	}
	m.deleting = true
	m.lastEvent = fmt.Sprintf("Deleting %d item(s)…", sel.Len())
	return tea.Batch(m.spinner.Tick, deleteCmd(m.baseCtx, root, sel))
}

// applyDeleteResult reports the batch outcome and refreshes the listing.
func (m *model) applyDeleteResult(msg deleteFinishedMsg) []tea.Cmd {
	m.deleting = false
	if msg.Err != nil {
		m.report = notice{text: fmt.Sprintf("Delete failed: %v", msg.Err), level: noticeError}
		m.logger.Error("delete failed", "root", msg.Root, "err", msg.Err)
		return nil
	}

	for _, failure := range msg.Report.Failures {
		m.logger.Warn("delete item failed", "root", msg.Root, "path", failure.Path, "err", failure.Err)
	}
	m.logger.Info("delete finished", "root", msg.Root, "deleted", msg.Report.Deleted, "failed", len(msg.Report.Failures))

	level := noticeInfo
	if len(msg.Report.Failures) > 0 {
		level = noticeError
	}
	m.report = notice{text: msg.Report.Summary(), level: level}
	cmds := m.startScan()
	m.lastEvent = fmt.Sprintf("Deleted %d item(s)", msg.Report.Deleted)
	return cmds
}

func (m model) headerView() string {
	title := ui.title.Render("filedeck")
	chips := []string{
		title,
		ui.chip.Render(fmt.Sprintf("search: %s", m.finder.Scope())),
		ui.chip.Render(fmt.Sprintf("sort: %s %s", m.sortKey, orderArrow(m.sortOrder))),
	}
	if len(m.marked) > 0 {
		chips = append(chips, ui.accent.Render(fmt.Sprintf("selected: %d", len(m.marked))))
	}
	line := strings.Join(chips, " ")
	sub := ui.subtitle.Render("Current Folder: ") + ui.muted.Render(m.folder)
	if m.finder.Scope() == browse.ScopeGlobal {
		sub += ui.muted.Render(fmt.Sprintf(" · searching %s", m.cfg.globalRootFor(m.folder)))
	}
	return ui.header.Render(lipgloss.JoinVertical(lipgloss.Left, line, sub))
}

func (m model) searchView() string {
	if m.searching || m.search.Value() != "" {
		return m.search.View()
	}
	return ui.muted.Render("/ search files")
}

func (m model) statusView() string {
	if m.loading {
		elapsed := time.Since(m.scanStart).Truncate(100 * time.Millisecond)
		line := fmt.Sprintf("%s Scanning… visited %d · found %d · %s", m.spinner.View(), m.scanCount.Visited, m.scanCount.Found, elapsed)
		bar := m.scanProgress.ViewAs(m.scanPulse)
		return lipgloss.JoinVertical(lipgloss.Left, ui.status.Render(line), ui.muted.Render(bar))
	}

	var total int64
	for _, entry := range m.visible {
		total += entry.Size
	}
	parts := []string{
		fmt.Sprintf("Showing %d of %d files", len(m.visible), len(m.listing.Entries)),
		fmt.Sprintf("Total: %s", formatBytes(total)),
		fmt.Sprintf("Confirm: %s", boolLabel(m.confirmDeletes)),
	}
	if m.listing.Elapsed > 0 {
		parts = append(parts, fmt.Sprintf("Scan: %s", m.listing.Elapsed.Truncate(10*time.Millisecond)))
	}
	lines := []string{ui.status.Render(strings.Join(parts, " · "))}
	if m.deleting {
		lines = append(lines, ui.muted.Render(m.spinner.View()+" Deleting…"))
	}
	if text := m.notice.render(); text != "" {
		lines = append(lines, text)
	}
	if text := m.scanNotice.render(); text != "" {
		lines = append(lines, text)
	}
	if text := m.report.render(); text != "" {
		lines = append(lines, text)
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m model) footerView() string {
	if m.confirm.active {
		return ui.confirm.Render(m.confirm.label)
	}
	if m.lastEvent != "" {
		return lipgloss.JoinVertical(lipgloss.Left, ui.muted.Render(m.lastEvent), m.help.View(m.keys))
	}
	return m.help.View(m.keys)
}

func orderArrow(o browse.Order) string {
	if o == browse.Descending {
		return "↓"
	}
	return "↑"
}
