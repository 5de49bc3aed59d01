package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/five82/strata/internal/complog"
	"github.com/five82/strata/internal/prefs"
	"github.com/five82/strata/internal/state"
	"github.com/five82/strata/internal/stats"
	"github.com/five82/strata/internal/views"
)

var errNoLayoutFile = errors.New("no layout file configured")

// Options configures the UI.
type Options struct {
	Context   context.Context
	Store     *state.Store
	Prefs     prefs.Prefs
	PrefsPath string
	PollTick  time.Duration

	// Refresh asks the poller for an immediate fetch.
	Refresh func()
	// SaveLayout writes the current chart config and returns where it went.
	SaveLayout func(complog.CompositeLogConfig) (string, error)
	// Export writes the current view to an image and returns its path.
	Export func(complog.CompositeLogConfig, *complog.CompositeLogData) (string, error)

	// Profile overrides the detected terminal colour profile.
	Profile *termenv.Profile
	// Typeface draws chart labels; nil uses the bitmap face.
	Typeface *complog.Typeface
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	store     *state.Store
	opts      Options
	prefs     prefs.Prefs
	prefsPath string
	pollTick  time.Duration

	// UI state
	theme    Theme
	keys     keyMap
	width    int
	height   int
	ready    bool
	showHelp bool
	showSide bool
	modal    Modal

	// Chart area
	chart          *chartView
	chartX, chartY int
	hover          bool

	// Data state
	snapshot state.Snapshot

	// Statistics pane
	method     stats.Method
	bins       int
	statsCurve string
	dist       *views.Distribution
	tracks     viewport.Model

	// Transient notice shown in the readout line
	notice     string
	noticeErr  bool
	noticeTime time.Time
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	pollTick := opts.PollTick
	if pollTick == 0 {
		pollTick = DefaultUIInterval
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	profile := lipgloss.ColorProfile()
	if opts.Profile != nil {
		profile = *opts.Profile
	}

	userPrefs := opts.Prefs
	if userPrefs.Theme == "" {
		userPrefs = prefs.Default()
	}

	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}

	return Model{
		ctx:       ctx,
		store:     store,
		opts:      opts,
		prefs:     userPrefs,
		prefsPath: prefsPath,
		pollTick:  pollTick,
		theme:     GetTheme(userPrefs.Theme),
		keys:      DefaultKeyMap(),
		showSide:  true,
		chart:     newChartView(store, profile, opts.Typeface),
		chartY:    chromeTop,
		method:    stats.ParseMethod(userPrefs.OutlierMethod),
		bins:      userPrefs.HistogramBins,
		tracks:    newTrackViewport(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tickCmd(m.pollTick),
		fetchSnapshotCmd(m.store),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.relayout()
		m.syncSnapshot(m.store.Snapshot())
		return m, nil

	case tea.BlurMsg:
		if m.hover {
			m.hover = false
			m.chart.emit(complog.PointerEvent{Kind: complog.PointerLeave})
			return m.afterChartInput()
		}
		return m, nil

	case tickMsg:
		if m.notice != "" && time.Since(m.noticeTime) > NoticeTTL {
			m.notice = ""
		}
		return m, tea.Batch(fetchSnapshotCmd(m.store), tickCmd(m.pollTick))

	case snapshotMsg:
		m.syncSnapshot(state.Snapshot(msg))
		return m, nil

	case menuActionMsg:
		m.applyMenuAction(msg)
		return m, nil

	case savedMsg:
		if msg.err != nil {
			m.setNotice(fmt.Sprintf("%s failed: %v", msg.what, msg.err), true)
		} else {
			m.setNotice(fmt.Sprintf("%s written to %s", msg.what, msg.path), false)
		}
		return m, nil
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.modal != nil {
		return m.modal.View(m.theme, m.width, m.height)
	}
	return m.renderMain()
}

// syncSnapshot adopts a store snapshot and redraws what changed.
func (m *Model) syncSnapshot(snap state.Snapshot) {
	statsStale := snap.Revision != m.snapshot.Revision || m.dist == nil
	m.snapshot = snap
	m.chart.sync(snap)
	m.chart.refresh()
	if statsStale {
		m.refreshStats()
	}
}

// relayout sizes the chart to the space left by the chrome and side pane.
func (m *Model) relayout() {
	cols, rows, _ := paneSizes(m.width, m.height, m.showSide)
	m.chart.resize(cols, rows)
}

func (m *Model) setNotice(text string, isErr bool) {
	m.notice = text
	m.noticeErr = isErr
	m.noticeTime = time.Now()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any key closes help
	if m.showHelp {
		m.showHelp = false
		return m, nil
	}

	if m.modal != nil {
		modal, cmd, done := m.modal.Update(msg, m.keys)
		if done {
			m.modal = nil
		} else {
			m.modal = modal
		}
		return m, cmd
	}

	cfg := &m.snapshot.Config
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.Escape):
		m.store.SelectTrack("")
		m.statsCurve = ""

	case key.Matches(msg, m.keys.ZoomIn):
		m.chart.zoom(complog.ZoomInFactor)
	case key.Matches(msg, m.keys.ZoomOut):
		m.chart.zoom(complog.ZoomOutFactor)
	case key.Matches(msg, m.keys.PanUp):
		m.chart.pan(-0.1)
	case key.Matches(msg, m.keys.PanDown):
		m.chart.pan(0.1)
	case key.Matches(msg, m.keys.PageUp):
		m.chart.pan(-0.9)
	case key.Matches(msg, m.keys.PageDown):
		m.chart.pan(0.9)

	case key.Matches(msg, m.keys.NextTrack):
		m.store.SelectTrack(neighbourTrack(cfg, m.snapshot.SelectedTrack, 1))
	case key.Matches(msg, m.keys.PrevTrack):
		m.store.SelectTrack(neighbourTrack(cfg, m.snapshot.SelectedTrack, -1))
	case key.Matches(msg, m.keys.MoveLeft):
		m.store.ReorderTracks(m.snapshot.SelectedTrack, adjacentTrack(cfg, m.snapshot.SelectedTrack, -1))
	case key.Matches(msg, m.keys.MoveRight):
		m.store.ReorderTracks(m.snapshot.SelectedTrack, adjacentTrack(cfg, m.snapshot.SelectedTrack, 1))
	case key.Matches(msg, m.keys.ToggleVisible):
		if id := m.snapshot.SelectedTrack; id != "" {
			m.store.SetTrackVisible(id, false)
		}
	case key.Matches(msg, m.keys.ShowAll):
		for _, t := range cfg.Tracks {
			m.store.SetTrackVisible(t.ID, true)
		}

	case key.Matches(msg, m.keys.CycleOutliers):
		m.method = m.method.Next()
		m.prefs.OutlierMethod = string(m.method)
		m.savePrefs()
		m.refreshStats()
		return m, nil

	case key.Matches(msg, m.keys.ToggleSide):
		m.showSide = !m.showSide
		m.relayout()

	case key.Matches(msg, m.keys.Export):
		return m, m.exportCmd()

	case key.Matches(msg, m.keys.SaveLayout):
		return m, m.saveLayoutCmd()

	case key.Matches(msg, m.keys.Refresh):
		if m.opts.Refresh != nil {
			m.opts.Refresh()
			m.setNotice("refreshing", false)
		}
		return m, nil

	default:
		return m, nil
	}

	m.syncSnapshot(m.store.Snapshot())
	return m, nil
}

// neighbourTrack returns the visible track step places from current,
// wrapping around. With nothing selected it starts from the edge.
func neighbourTrack(cfg *complog.CompositeLogConfig, current string, step int) string {
	visible := cfg.VisibleTracks()
	if len(visible) == 0 {
		return ""
	}
	idx := -1
	for i, t := range visible {
		if t.ID == current {
			idx = i
			break
		}
	}
	if idx < 0 {
		if step < 0 {
			return visible[len(visible)-1].ID
		}
		return visible[0].ID
	}
	n := len(visible)
	return visible[((idx+step)%n+n)%n].ID
}

// adjacentTrack returns the visible track next to current in direction
// step, or "" at either edge.
func adjacentTrack(cfg *complog.CompositeLogConfig, current string, step int) string {
	visible := cfg.VisibleTracks()
	for i, t := range visible {
		if t.ID != current {
			continue
		}
		if j := i + step; j >= 0 && j < len(visible) {
			return visible[j].ID
		}
		return ""
	}
	return ""
}

// applyMenuAction carries out a context menu choice.
func (m *Model) applyMenuAction(msg menuActionMsg) {
	switch msg.action {
	case actionSelect:
		m.store.SelectTrack(msg.trackID)
	case actionHide:
		m.store.SetTrackVisible(msg.trackID, false)
	case actionStats:
		m.statsCurve = msg.curve
		if !m.showSide {
			m.showSide = true
			m.relayout()
		}
		m.dist = nil
	case actionCenter:
		m.store.SetDepthRange(centerRange(m.snapshot.Config.DepthRange, msg.depth))
	case actionReset:
		if rng, ok := m.snapshot.Data.Extent(); ok {
			m.store.SetDepthRange(rng)
		}
	}
	m.syncSnapshot(m.store.Snapshot())
}

// centerRange moves rng so that depth sits in its middle, keeping its
// width and staying at or below zero depth.
func centerRange(rng complog.DepthRange, depth float64) complog.DepthRange {
	half := rng.Width() / 2
	out := complog.DepthRange{Min: depth - half, Max: depth + half}
	if out.Min < 0 {
		out = complog.DepthRange{Min: 0, Max: rng.Width()}
	}
	return out
}

func (m *Model) savePrefs() {
	if m.prefsPath == "" {
		return
	}
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		m.setNotice(fmt.Sprintf("saving preferences: %v", err), true)
	}
}

// exportCmd renders the current view to an image off the UI goroutine.
func (m Model) exportCmd() tea.Cmd {
	if m.opts.Export == nil || !m.snapshot.HasData {
		return nil
	}
	cfg := m.snapshot.Config.Clone()
	data := m.snapshot.Data
	export := m.opts.Export
	return func() tea.Msg {
		path, err := export(cfg, data)
		return savedMsg{what: "image", path: path, err: err}
	}
}

// saveLayoutCmd writes the current layout back to its file.
func (m Model) saveLayoutCmd() tea.Cmd {
	if m.opts.SaveLayout == nil {
		return func() tea.Msg {
			return savedMsg{what: "layout", err: errNoLayoutFile}
		}
	}
	cfg := m.snapshot.Config.Clone()
	save := m.opts.SaveLayout
	return func() tea.Msg {
		path, err := save(cfg)
		return savedMsg{what: "layout", path: path, err: err}
	}
}

// renderMain renders the full UI.
func (m Model) renderMain() string {
	var b strings.Builder

	// Header line 1: well + status
	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	// Header line 2: command bar
	b.WriteString(m.renderCommandBar())
	b.WriteString("\n")

	_, rows, side := paneSizes(m.width, m.height, m.showSide)
	chart := m.chart.view()
	if side > 0 {
		chart = lipgloss.JoinHorizontal(lipgloss.Top, chart, m.renderSidePane(side, rows))
	}
	b.WriteString(chart)
	b.WriteString("\n")

	b.WriteString(m.renderReadout())
	return b.String()
}

// Messages

type tickMsg time.Time

type snapshotMsg state.Snapshot

type savedMsg struct {
	what string
	path string
	err  error
}

// Commands

func tickCmd(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func fetchSnapshotCmd(store *state.Store) tea.Cmd {
	return func() tea.Msg {
		return snapshotMsg(store.Snapshot())
	}
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	defer m.chart.close()

	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
		tea.WithContext(m.ctx),
	)
	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
