// Package ui implements chronoview's terminal interface: a Bubble Tea
// Model driving five switchable views over the shared log-navigation
// collaborators.
package ui

import (
	"context"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/chronoview/internal/command"
	"github.com/five82/chronoview/internal/config"
	"github.com/five82/chronoview/internal/docsections"
	"github.com/five82/chronoview/internal/history"
	"github.com/five82/chronoview/internal/logformat"
	"github.com/five82/chronoview/internal/logindex"
	"github.com/five82/chronoview/internal/logwatch"
	"github.com/five82/chronoview/internal/prefs"
	"github.com/five82/chronoview/internal/spectro"
	"github.com/five82/chronoview/internal/sqlengine"
	"github.com/five82/chronoview/internal/timeline"
)

// View identifies one of the five switchable panes.
type View int

const (
	ViewLog View = iota
	ViewHistogram
	ViewTimeline
	ViewSpectrogram
	ViewSQL
)

func (v View) String() string {
	switch v {
	case ViewLog:
		return "log"
	case ViewHistogram:
		return "histogram"
	case ViewTimeline:
		return "timeline"
	case ViewSpectrogram:
		return "spectrogram"
	case ViewSQL:
		return "sql"
	default:
		return "unknown"
	}
}

func viewFromName(name string) (View, bool) {
	switch name {
	case "log":
		return ViewLog, true
	case "histogram":
		return ViewHistogram, true
	case "timeline":
		return ViewTimeline, true
	case "spectrogram":
		return ViewSpectrogram, true
	case "sql":
		return ViewSQL, true
	default:
		return 0, false
	}
}

// Options configures a Model.
type Options struct {
	Context      context.Context
	Logger       *slog.Logger
	Config       config.Config
	Prefs        prefs.Prefs
	PrefsPath    string
	Index        *logindex.Index
	Watch        *logwatch.Collection
	SQL          *sqlengine.Engine
	Dispatcher   *command.Dispatcher
	Histories    map[history.Class]*history.Store
	ThemeName    string
	PollInterval time.Duration
}

// promptState holds the single-line command/SQL/search prompt.
type promptState struct {
	active  bool
	kind    byte // ':', ';', or '/'
	input   textinput.Model
	class   history.Class
	popup   *history.Popup
	histIdx int
}

// Model is chronoview's single tea.Model, driving the five-view
// architecture over the shared log-index, watcher, SQL engine, and
// command dispatcher.
type Model struct {
	ctx context.Context

	cfg        config.Config
	prefs      prefs.Prefs
	prefsPath  string
	idx        *logindex.Index
	watch      *logwatch.Collection
	sql        *sqlengine.Engine
	dispatcher *command.Dispatcher
	histories  map[history.Class]*history.Store
	logger     *slog.Logger

	formatByPath map[string]logformat.Format

	pollInterval time.Duration

	theme       Theme
	themeIdx    int
	currentView View
	width       int
	height      int
	ready       bool

	watchErrors map[string]string
	lastRebuild time.Time
	fsEvents    <-chan logwatch.Event

	// Log view state
	logViewport  viewport.Model
	logReady     bool
	logCursor    int
	logFollow    bool
	searchQuery  string
	searchHits   []int
	searchIdx    int

	// Pretty-print / breadcrumb state, over the selected line's expanded body
	prettyActive     bool
	prettyMeta       *docsections.Metadata
	prettyLines      []string
	prettyLineStarts []int
	prettyCursor     int

	// Histogram view state
	histGranularity time.Duration
	histCursor      int

	// Timeline view state
	timelineRows    []*timeline.OperationRow
	timelineBounds  timeline.Bounds
	timelineCursor  int
	timelinePreview []timeline.PreviewMessage
	timelineBuilt   time.Time

	// Spectrogram view state
	spectroField     string
	spectroEngine    *spectro.Engine
	spectroRowOffset int

	// SQL view state
	sqlQuery     string
	sqlResult    *sqlengine.Result
	sqlErr       error
	sqlRowCursor int

	prompt promptState

	statusMsg   string
	statusIsErr bool
	showHelp    bool

	keys keyMap
}

// New constructs a Model from opts, applying defaults the same way the
// teacher's app.New does: a sensible poll interval, the configured theme
// (falling back to the user's last-saved theme, then Dracula), and the
// prefs-restored last view.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollInterval := opts.PollInterval
	if pollInterval <= 0 {
		pollInterval = opts.Config.PollInterval
	}
	if pollInterval <= 0 {
		pollInterval = time.Second
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = opts.Prefs.Theme
	}
	if themeName == "" {
		themeName = opts.Config.Theme
	}

	view := ViewLog
	if v, ok := viewFromName(opts.Prefs.LastView); ok {
		view = v
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	m := Model{
		ctx:             ctx,
		cfg:             opts.Config,
		prefs:           opts.Prefs,
		prefsPath:       opts.PrefsPath,
		idx:             opts.Index,
		watch:           opts.Watch,
		sql:             opts.SQL,
		dispatcher:      opts.Dispatcher,
		histories:       opts.Histories,
		logger:          logger,
		formatByPath:    make(map[string]logformat.Format),
		pollInterval:    pollInterval,
		theme:           GetTheme(themeName),
		currentView:     view,
		watchErrors:     make(map[string]string),
		histGranularity: spectro.ZoomLevels[spectro.DefaultZoomLevel],
		logFollow:       true,
		keys:            DefaultKeyMap(),
	}
	m.themeIdx = themeIndex(m.theme.Name)
	m.spectroEngine = spectro.NewEngine(newFieldValueSource(m.idx, ""), m.histGranularity)
	registerVerbs(&m)

	if m.watch != nil {
		events, err := m.watch.WatchPatternDirs()
		if err != nil {
			m.logger.Warn("fsnotify watch unavailable, relying on poll-based rescan", "error", err)
		} else {
			m.fsEvents = events
		}
	}

	return m
}

// Init kicks off the first rescan/rebuild tick, plus the fsnotify
// push-notification listener when one started successfully.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{rescanCmd(), tickCmd(m.pollInterval)}
	if m.fsEvents != nil {
		cmds = append(cmds, waitForFSEvent(m.fsEvents))
	}
	return tea.Batch(cmds...)
}

type tickMsg struct{}

type rescanMsg struct{}

// fsEventMsg carries one push notification from the fsnotify watch
// supplementing the poll loop; chanClosed is true once the channel has
// been drained and should not be read from again.
type fsEventMsg struct {
	event      logwatch.Event
	chanClosed bool
}

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return tickMsg{} })
}

func rescanCmd() tea.Cmd {
	return func() tea.Msg { return rescanMsg{} }
}

// waitForFSEvent blocks on ch and reports the next fsnotify-driven
// notification (or that the channel closed) as a tea.Msg, the standard
// Bubble Tea channel-listener pattern.
func waitForFSEvent(ch <-chan logwatch.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return fsEventMsg{chanClosed: true}
		}
		return fsEventMsg{event: ev}
	}
}

// Update dispatches messages: key input goes through the prompt (if
// active) or the global/per-view key handlers; tickMsg drives the
// rescan/rebuild loop that keeps the merged view current.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.resizeLogViewport()
		return m, nil

	case tea.KeyMsg:
		if m.prompt.active {
			return m.handlePromptKey(msg)
		}
		return m.handleKey(msg)

	case tickMsg:
		m.runRescanAndRebuild()
		return m, tickCmd(m.pollInterval)

	case rescanMsg:
		m.runRescanAndRebuild()
		return m, nil

	case fsEventMsg:
		if msg.chanClosed {
			m.fsEvents = nil
			return m, nil
		}
		m.logger.Debug("fsnotify event triggered rescan", "path", msg.event.Path, "op", msg.event.Op)
		m.runRescanAndRebuild()
		return m, waitForFSEvent(m.fsEvents)
	}
	return m, nil
}

// runRescanAndRebuild performs one poll cycle: glob/dedupe new files,
// index new bytes in every open file, and rebuild the merged/filtered
// view, mirroring spec.md 4.3/4.4's per-tick work.
func (m *Model) runRescanAndRebuild() {
	if m.watch != nil {
		delta, err := m.watch.Rescan(m.ctx)
		if err != nil {
			m.logger.Error("rescan failed", "error", err)
		} else {
			for _, f := range delta.Added {
				m.openFile(f.Path)
			}
			errs := m.watch.Errors()
			for path, msg := range errs {
				m.watchErrors[path] = msg
			}
		}
	}
	if m.idx == nil {
		return
	}
	deadline := time.Now().Add(150 * time.Millisecond)
	result, err := m.idx.Rebuild(deadline)
	if err != nil {
		m.logger.Error("index rebuild failed", "error", err)
		return
	}
	if result != logindex.NoChange {
		m.lastRebuild = time.Now()
		if m.logFollow {
			m.logCursor = m.idx.Len() - 1
		}
		if m.currentView == ViewTimeline {
			m.rebuildTimeline()
		}
	}
}

// openFile samples path, detects its line format, indexes it, and adds it
// to the log index, the per-file setup spec.md 4.3/4.4's "newly discovered
// file" path describes.
func (m *Model) openFile(path string) {
	sample, err := sampleLines(path, 200)
	if err != nil {
		m.logger.Error("sample file for format detection failed", "path", path, "error", err)
	}
	parser, format := logformat.DetectParser(sample)
	m.formatByPath[path] = format

	lf := logindex.NewLogFile(path, parser)
	if _, err := lf.IndexMore(time.Time{}); err != nil {
		m.logger.Error("index file failed", "path", path, "error", err)
	}
	m.idx.Files = append(m.idx.Files, lf)
	m.logger.Info("opened file", "path", path, "format", format.Name())
}

// View renders the help overlay if active, otherwise the active view.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.prompt.active {
		return m.renderMain()
	}
	return m.renderMain()
}

func (m Model) renderMain() string {
	header := m.renderHeader()
	footer := m.renderCommandBar()
	bodyHeight := m.height - lipglossHeight(header) - lipglossHeight(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	var body string
	switch m.currentView {
	case ViewLog:
		if m.prettyActive {
			body = m.renderPrettyView(bodyHeight)
		} else {
			body = m.renderLogView(bodyHeight)
		}
	case ViewHistogram:
		body = m.renderHistogramView(bodyHeight)
	case ViewTimeline:
		body = m.renderTimelineView(bodyHeight)
	case ViewSpectrogram:
		body = m.renderSpectrogramView(bodyHeight)
	case ViewSQL:
		body = m.renderSQLView(bodyHeight)
	}

	return header + "\n" + body + "\n" + footer
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case keyMatches(msg, m.keys.Quit):
		return m, tea.Quit
	case m.showHelp:
		// Any key closes the help overlay; ? also toggles it from closed.
		m.showHelp = false
		return m, nil
	case keyMatches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case keyMatches(msg, m.keys.CycleTheme):
		m.cycleTheme()
		return m, nil
	case keyMatches(msg, m.keys.Tab):
		m.currentView = nextView(m.currentView)
		m.onViewChanged()
		return m, nil
	case keyMatches(msg, m.keys.ShiftTab):
		m.currentView = prevView(m.currentView)
		m.onViewChanged()
		return m, nil
	case keyMatches(msg, m.keys.ViewLog):
		m.currentView = ViewLog
		return m, nil
	case keyMatches(msg, m.keys.ViewHistogram):
		m.currentView = ViewHistogram
		return m, nil
	case keyMatches(msg, m.keys.ViewTimeline):
		m.currentView = ViewTimeline
		m.onViewChanged()
		return m, nil
	case keyMatches(msg, m.keys.ViewSpectrogram):
		m.currentView = ViewSpectrogram
		return m, nil
	case keyMatches(msg, m.keys.ViewSQL):
		m.currentView = ViewSQL
		return m, nil
	case keyMatches(msg, m.keys.CommandPrompt):
		m.openPrompt(':', history.Command)
		return m, nil
	case keyMatches(msg, m.keys.SQLPrompt):
		m.openPrompt(';', history.SQL)
		return m, nil
	}

	if m.prettyActive {
		return m.handlePrettyKey(msg)
	}

	switch m.currentView {
	case ViewLog:
		return m.handleLogKey(msg)
	case ViewHistogram:
		return m.handleHistogramKey(msg)
	case ViewTimeline:
		return m.handleTimelineKey(msg)
	case ViewSpectrogram:
		return m.handleSpectrogramKey(msg)
	case ViewSQL:
		return m.handleSQLKey(msg)
	}
	return m, nil
}

// onViewChanged lazily (re)builds state a view needs only while visible,
// per spec.md 4.6's "built on demand" framing for the timeline/Gantt view.
func (m *Model) onViewChanged() {
	if m.currentView == ViewTimeline && len(m.timelineRows) == 0 {
		m.rebuildTimeline()
	}
}

func nextView(v View) View {
	if v == ViewSQL {
		return ViewLog
	}
	return v + 1
}

func prevView(v View) View {
	if v == ViewLog {
		return ViewSQL
	}
	return v - 1
}

func (m *Model) cycleTheme() {
	m.themeIdx = (m.themeIdx + 1) % len(themeOrder)
	m.theme = GetTheme(themeOrder[m.themeIdx])
	m.prefs.Theme = m.theme.Name
	if m.prefsPath != "" {
		_ = prefs.Save(m.prefsPath, m.prefs)
	}
}

func themeIndex(name string) int {
	for i, n := range themeOrder {
		if n == name {
			return i
		}
	}
	return 0
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusIsErr = isErr
}

// Run starts the Bubble Tea program over a Model built from opts.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
