// Package tui provides a Bubble Tea terminal user interface for tvdb-fanart.
package tui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/handiism/tvdb-fanart/internal/config"
	"github.com/handiism/tvdb-fanart/internal/download"
	"github.com/handiism/tvdb-fanart/internal/model"
)

// Styles for the TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF6B6B")).
			MarginBottom(1)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4ECDC4"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFE66D"))

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(1, 2)

	bannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F8B500"))
)

// maxListedBanners caps how many banners are listed on screen.
const maxListedBanners = 12

// State represents the current UI state.
type State int

const (
	StateInput State = iota
	StateInitializing
	StateLoading
	StateComplete
	StateError
)

// LogEntry represents a log message in the UI.
type LogEntry struct {
	Message string
	Level   download.ProgressLevel
}

// logSink collects progress events from the manager's goroutines until the
// UI drains them on the next tick.
type logSink struct {
	mu      sync.Mutex
	entries []LogEntry
}

func (s *logSink) add(e download.ProgressEvent) {
	s.mu.Lock()
	s.entries = append(s.entries, LogEntry{Message: e.Message, Level: e.Level})
	s.mu.Unlock()
}

func (s *logSink) drain() []LogEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.entries
	s.entries = nil
	return out
}

// Model is the Bubble Tea model for the TUI.
type Model struct {
	state     State
	textInput textinput.Model
	spinner   spinner.Model
	progress  progress.Model
	settings  *config.Settings
	logger    *slog.Logger
	logs      []LogEntry
	sink      *logSink
	banners   []*model.FanartBanner
	err       error

	ctx    context.Context
	cancel context.CancelFunc

	manager *download.Manager

	// run numbers each load started from the input screen. Results of an
	// older run are dropped.
	run int

	completed int32
	failed    int32
	total     int32

	// Options
	thumbs    bool
	vignettes bool
	save      bool
	verbose   bool

	width  int
	height int
}

// NewModel creates a new TUI model.
func NewModel(settings *config.Settings, logger *slog.Logger) Model {
	ti := textinput.New()
	ti.Placeholder = "series id, banners.xml URL or file"
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 50

	ctx, cancel := context.WithCancel(context.Background())

	return Model{
		state:     StateInput,
		textInput: ti,
		spinner:   sp,
		progress:  prog,
		settings:  settings,
		logger:    logger,
		sink:      &logSink{},
		ctx:       ctx,
		cancel:    cancel,
		thumbs:    settings.LoadThumbs,
		vignettes: settings.LoadVignettes,
		save:      settings.SaveImages,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.spinner.Tick)
}

// Message types
type (
	// InitDoneMsg is sent when the banners documents have been read.
	InitDoneMsg struct {
		Run     int
		Banners []*model.FanartBanner
		Manager *download.Manager
		Err     error
	}

	// LoadDoneMsg is sent when all image loads complete.
	LoadDoneMsg struct {
		Run       int
		Completed int32
		Failed    int32
		Total     int32
		Err       error
	}

	// TickMsg is for periodic progress updates.
	TickMsg struct{}
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progress.Width = min(max(msg.Width-20, 20), 80)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.cancel()
			return m, tea.Quit

		case "esc":
			if m.state == StateInput {
				return m, tea.Quit
			}
			if m.state == StateLoading || m.state == StateInitializing {
				m.cancel()
				m.state = StateError
				m.err = fmt.Errorf("cancelled by user")
			}

		case "enter":
			if m.state == StateInput && m.textInput.Value() != "" {
				m.run++
				m.state = StateInitializing
				return m, tea.Batch(m.initializeLoad(), m.spinner.Tick, m.tickProgress())
			}

		case "ctrl+t":
			if m.state == StateInput {
				m.thumbs = !m.thumbs
			}

		case "ctrl+v":
			if m.state == StateInput {
				m.vignettes = !m.vignettes
			}

		case "ctrl+s":
			if m.state == StateInput {
				m.save = !m.save
			}

		case "ctrl+d":
			if m.state == StateInput {
				m.verbose = !m.verbose
			}

		case "q":
			if m.state == StateComplete || m.state == StateError {
				return m, tea.Quit
			}

		case "r":
			if m.state == StateComplete || m.state == StateError {
				m.state = StateInput
				m.logs = nil
				m.banners = nil
				m.err = nil
				m.completed, m.failed, m.total = 0, 0, 0
				m.manager = nil
				m.sink = &logSink{}
				m.ctx, m.cancel = context.WithCancel(context.Background())
				m.textInput.SetValue("")
				m.textInput.Focus()
			}
		}

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	case InitDoneMsg:
		if msg.Run != m.run || m.state != StateInitializing {
			return m, nil
		}
		m.appendLogs(m.sink.drain())
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err
		} else {
			m.banners = msg.Banners
			m.manager = msg.Manager
			m.state = StateLoading
			cmds = append(cmds, m.startLoad())
		}

	case LoadDoneMsg:
		if msg.Run != m.run || m.state != StateLoading {
			return m, nil
		}
		m.appendLogs(m.sink.drain())
		m.completed, m.failed, m.total = msg.Completed, msg.Failed, msg.Total
		switch {
		case m.ctx.Err() != nil:
			m.state = StateError
			m.err = fmt.Errorf("cancelled by user")
		case msg.Err != nil:
			m.state = StateError
			m.err = msg.Err
		default:
			m.state = StateComplete
		}

	case TickMsg:
		m.appendLogs(m.sink.drain())
		if m.state == StateInitializing {
			cmds = append(cmds, m.tickProgress())
		}
		if m.manager != nil && m.state == StateLoading {
			m.completed, m.failed, m.total = m.manager.GetProgress()
			cmds = append(cmds, m.progress.SetPercent(m.percent()), m.tickProgress())
		}

	case progress.FrameMsg:
		progressModel, cmd := m.progress.Update(msg)
		m.progress = progressModel.(progress.Model)
		cmds = append(cmds, cmd)
	}

	if m.state == StateInput {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) appendLogs(entries []LogEntry) {
	for _, e := range entries {
		if e.Level == download.LevelVerbose && !m.verbose {
			continue
		}
		m.logs = append(m.logs, e)
	}
	if len(m.logs) > 10 {
		m.logs = m.logs[len(m.logs)-10:]
	}
}

func (m Model) percent() float64 {
	if m.total == 0 {
		return 0
	}
	return float64(m.completed+m.failed) / float64(m.total)
}

func (m Model) tickProgress() tea.Cmd {
	return tea.Tick(200*time.Millisecond, func(_ time.Time) tea.Msg {
		return TickMsg{}
	})
}

// View renders the UI.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("TVDB Fan Art"))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("Load fan art thumbnails and vignettes from TheTVDB"))
	b.WriteString("\n\n")

	switch m.state {
	case StateInput:
		b.WriteString(m.viewInput())
	case StateInitializing:
		b.WriteString(m.viewInitializing())
	case StateLoading:
		b.WriteString(m.viewLoading())
	case StateComplete:
		b.WriteString(m.viewComplete())
	case StateError:
		b.WriteString(m.viewError())
	}

	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.helpText()))

	return b.String()
}

func checkbox(on bool) string {
	if on {
		return "[x]"
	}
	return "[ ]"
}

func (m Model) viewInput() string {
	var b strings.Builder

	b.WriteString(subtitleStyle.Render("Enter series id, banners.xml URL or path:"))
	b.WriteString("\n\n")
	b.WriteString(m.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(infoStyle.Render("Options:"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("  %s Load thumbnails (ctrl+t)\n", checkbox(m.thumbs)))
	b.WriteString(fmt.Sprintf("  %s Load vignettes (ctrl+v)\n", checkbox(m.vignettes)))
	b.WriteString(fmt.Sprintf("  %s Save images (ctrl+s)\n", checkbox(m.save)))
	b.WriteString(fmt.Sprintf("  %s Verbose output (ctrl+d)\n", checkbox(m.verbose)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(fmt.Sprintf("Output path: %s", m.settings.OutputPath)))
	b.WriteString("\n")

	return b.String()
}

func (m Model) viewInitializing() string {
	var b strings.Builder

	b.WriteString(m.spinner.View())
	b.WriteString(" ")
	b.WriteString(subtitleStyle.Render("Reading banners..."))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewLoading() string {
	var b strings.Builder

	b.WriteString(m.renderBanners())
	b.WriteString(m.progress.ViewAs(m.percent()))
	b.WriteString("\n")
	b.WriteString(infoStyle.Render(fmt.Sprintf("Images: %d/%d | Failed: %d", m.completed, m.total, m.failed)))
	b.WriteString("\n\n")
	b.WriteString(m.renderLogs())

	return b.String()
}

func (m Model) viewComplete() string {
	var b strings.Builder

	b.WriteString(m.renderBanners())
	b.WriteString(boxStyle.Render(fmt.Sprintf(
		"Done!\n\nBanners: %d\nImages: %d/%d\nFailed: %d",
		len(m.banners), m.completed, m.total, m.failed,
	)))

	return b.String()
}

func (m Model) viewError() string {
	var b strings.Builder

	b.WriteString(errorStyle.Render("Error occurred:"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(fmt.Sprintf("  %s\n\n", m.err.Error()))
	}
	b.WriteString(m.renderLogs())

	return b.String()
}

// swatch renders a color as a small block.
func swatch(c model.Color) string {
	return lipgloss.NewStyle().Background(lipgloss.Color(c.Hex())).Render("   ")
}

func slotState(loaded, loading bool) string {
	switch {
	case loaded:
		return successStyle.Render("✓")
	case loading:
		return warningStyle.Render("…")
	default:
		return dimStyle.Render("·")
	}
}

func (m Model) renderBanners() string {
	if len(m.banners) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(successStyle.Render(fmt.Sprintf("Found %d fan art banner(s):", len(m.banners))))
	b.WriteString("\n")

	for i, fa := range m.banners {
		if i == maxListedBanners {
			b.WriteString(dimStyle.Render(fmt.Sprintf("  ... and %d more", len(m.banners)-maxListedBanners)))
			b.WriteString("\n")
			break
		}

		res := "?"
		if !fa.Resolution.IsZero() {
			res = fa.Resolution.String()
		}

		var colors strings.Builder
		for _, c := range fa.Colors {
			colors.WriteString(swatch(c))
		}

		b.WriteString(bannerStyle.Render(fmt.Sprintf("  #%-7d %-9s %-3s", fa.ID, res, fa.Language.Abbreviation)))
		b.WriteString(" ")
		b.WriteString(colors.String())
		b.WriteString(fmt.Sprintf("  thumb %s  vignette %s\n",
			slotState(fa.IsThumbLoaded(), fa.ThumbLoading()),
			slotState(fa.IsVignetteLoaded(), fa.VignetteLoading())))
	}
	b.WriteString("\n")

	return b.String()
}

func (m Model) renderLogs() string {
	var b strings.Builder

	for _, log := range m.logs {
		var style lipgloss.Style
		prefix := "•"
		switch log.Level {
		case download.LevelError:
			style = errorStyle
			prefix = "✗"
		case download.LevelWarning:
			style = warningStyle
			prefix = "!"
		case download.LevelSuccess:
			style = successStyle
			prefix = "✓"
		case download.LevelInfo:
			style = infoStyle
			prefix = "›"
		default:
			style = dimStyle
		}
		b.WriteString(style.Render(prefix + " " + log.Message))
		b.WriteString("\n")
	}

	return b.String()
}

func (m Model) helpText() string {
	switch m.state {
	case StateInput:
		return "enter: start • ctrl+t: thumbs • ctrl+v: vignettes • ctrl+s: save • ctrl+d: verbose • esc: quit"
	case StateInitializing, StateLoading:
		return "esc: cancel"
	case StateComplete, StateError:
		return "r: new load • q: quit"
	}
	return ""
}

// initializeLoad reads the banners documents and creates the manager.
func (m *Model) initializeLoad() tea.Cmd {
	input := m.textInput.Value()
	ctx := m.ctx
	sink := m.sink

	settings := *m.settings
	settings.LoadThumbs = m.thumbs
	settings.LoadVignettes = m.vignettes
	settings.SaveImages = m.save
	logger := m.logger
	run := m.run

	return func() tea.Msg {
		manager := download.NewManager(&settings, logger, sink.add)
		if err := manager.Initialize(ctx, input); err != nil {
			return InitDoneMsg{Run: run, Err: err}
		}
		return InitDoneMsg{Run: run, Banners: manager.Banners(), Manager: manager}
	}
}

// startLoad runs the image loads in the background.
func (m *Model) startLoad() tea.Cmd {
	manager := m.manager
	ctx := m.ctx
	run := m.run

	return func() tea.Msg {
		if manager == nil {
			return LoadDoneMsg{Run: run, Err: fmt.Errorf("no manager")}
		}

		err := manager.StartDownloads(ctx)
		completed, failed, total := manager.GetProgress()
		return LoadDoneMsg{Run: run, Completed: completed, Failed: failed, Total: total, Err: err}
	}
}

// Run starts the TUI application.
func Run(settings *config.Settings, logger *slog.Logger) error {
	p := tea.NewProgram(NewModel(settings, logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
