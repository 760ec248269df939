package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/skyburst/internal/audio"
	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/core"
	"github.com/vovakirdan/skyburst/internal/games/shmup"
	"github.com/vovakirdan/skyburst/internal/telemetry"
)

// statusTicks is how long a status message stays in the footer.
const statusTicks = 120

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(core.ColorYellow.ANSI()))

// Options configures a terminal session.
type Options struct {
	Config        config.ShmupConfig
	Seed          int64               // 0 picks a time-based seed
	Logger        *log.Logger         // nil disables logging
	Sound         *audio.SoundManager // nil plays silently
	ScreenshotDir string              // empty selects ~/.skyburst/screenshots
	Width         int
	Height        int
	HoldTicks     int
}

// Model is the Bubble Tea model for one single-player session.
type Model struct {
	session *shmup.Session
	screen  *core.Screen
	keys    KeyMap
	held    *HeldKeys
	help    help.Model
	journal *telemetry.Journal
	sound   *audio.SoundManager
	logger  *log.Logger
	shotDir string
	gen     uint64

	width     int
	height    int
	steps     int64
	status    string
	statusTTL int
	quitting  bool
	back      bool
	summary   telemetry.RunSummary
}

// NewModel creates a model and its session.
func NewModel(opts Options) Model {
	// Use time-based seed if not specified
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	width, height := opts.Width, opts.Height
	if width <= 0 || height <= 0 {
		width, height = 80, 24
	}

	journal := telemetry.NewJournal(opts.Logger, false)
	journal.Reset(seed)

	m := Model{
		session: shmup.New(opts.Config, seed),
		keys:    DefaultKeyMap(),
		held:    NewHeldKeys(opts.HoldTicks),
		help:    help.New(),
		journal: journal,
		sound:   opts.Sound,
		logger:  opts.Logger,
		shotDir: opts.ScreenshotDir,
		gen:     tickGen.Add(1),
		width:   width,
		height:  height,
	}
	m.help.Width = width
	m.screen = core.NewScreen(width, m.arenaRows())
	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.session.Runtime().TickRate, m.gen)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		if msg.Gen != m.gen || m.quitting || m.back {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.Action(msg); {
	case action == core.ActionQuit:
		m.quitting = true
		m.finish()
		return m, tea.Quit
	case action != core.ActionNone:
		m.held.Press(action)
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Screenshot):
		path, err := m.saveScreenshot()
		if err != nil {
			m.setStatus("screenshot failed: " + err.Error())
		} else {
			m.setStatus("saved " + path)
		}
	case key.Matches(msg, m.keys.Back):
		// Only a halted session can be left for the menu.
		if p := m.session.Phase(); p == shmup.PhasePaused || p.Terminal() {
			m.back = true
			m.finish()
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.relayout()
	}
	return m, nil
}

// handleResize keeps the session running; only the projection changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.help.Width = msg.Width
	m.relayout()
	return m, nil
}

// handleTick samples the held keys and advances the session by one step.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.session.Step(m.held.Frame())
	m.steps++
	m.journal.Record(m.steps, res)
	if m.sound != nil {
		m.sound.OnEvents(res.Events)
	}

	if m.statusTTL > 0 {
		m.statusTTL--
		if m.statusTTL == 0 {
			m.status = ""
			m.relayout()
		}
	}

	return m, tickCmd(m.session.Runtime().TickRate, m.gen)
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusTTL = statusTicks
	m.relayout()
}

// relayout sizes the arena to the rows the footer leaves free.
func (m *Model) relayout() {
	m.screen.Resize(m.width, m.arenaRows())
}

// finish closes the journal and logs the run summary.
func (m *Model) finish() {
	m.summary = m.journal.Finish(m.steps, m.session.Elapsed(), m.session.State())
	if m.logger != nil {
		m.logger.Info("session ended",
			"seed", m.summary.Seed,
			"score", m.summary.Score,
			"outcome", m.summary.Outcome,
			"level", m.summary.MaxLevel,
			"kills", m.summary.TotalKills(),
			"restarts", m.summary.Restarts,
		)
	}
}

// footer is the help line, or the status message while one is showing.
func (m Model) footer() string {
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return m.help.View(m.keys)
}

func (m Model) arenaRows() int {
	return max(m.height-lipgloss.Height(m.footer()), 1)
}

// saveScreenshot writes the current frame as plain text.
func (m *Model) saveScreenshot() (string, error) {
	m.session.Render(m.screen)

	dir := m.shotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("home directory: %w", err)
		}
		dir = filepath.Join(home, ".skyburst", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("skyburst_%d_%s.txt", m.session.Runtime().Seed, timestamp)
	path := filepath.Join(dir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.session.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + m.footer()
}

// Session exposes the running session.
func (m Model) Session() *shmup.Session {
	return m.session
}

// Quitting reports whether the player asked to exit the program.
func (m Model) Quitting() bool {
	return m.quitting
}

// BackToMenu reports whether the player left the session for the menu.
func (m Model) BackToMenu() bool {
	return m.back
}

// Summary returns the run summary recorded when the player left.
func (m Model) Summary() telemetry.RunSummary {
	return m.summary
}

// Run plays a session in the local terminal until the player quits.
func Run(opts Options) (telemetry.RunSummary, error) {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return telemetry.RunSummary{}, err
	}
	if m, ok := final.(Model); ok {
		return m.Summary(), nil
	}
	return telemetry.RunSummary{}, nil
}
