package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/skyburst/internal/config"
	"github.com/vovakirdan/skyburst/internal/telemetry"
)

// SessionModel manages the full flow: menu -> game -> menu.
// It is the top-level model for SSH sessions and for local play
// without a preset chosen on the command line.
type SessionModel struct {
	base      Options
	preset    config.DifficultyPreset
	width     int
	height    int
	menu      MenuModel
	game      *Model
	summaries []telemetry.RunSummary
	quitting  bool
}

// NewSessionModel creates a session model starting on the title menu.
func NewSessionModel(base Options, preset config.DifficultyPreset) SessionModel {
	width, height := base.Width, base.Height
	if width <= 0 || height <= 0 {
		width, height = 80, 24
	}
	return SessionModel{
		base:   base,
		preset: preset,
		width:  width,
		height: height,
		menu:   NewMenuModel(preset, width, height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = wsm.Width
		m.height = wsm.Height
	}

	if m.game != nil {
		return m.updateGame(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if preset, ok := m.menu.Selected(); ok {
		m.preset = preset
		opts := m.base
		opts.Width, opts.Height = m.width, m.height
		config.ApplyPreset(&opts.Config, preset)
		if opts.Logger != nil {
			opts.Logger = opts.Logger.With("difficulty", preset)
		}

		game := NewModel(opts)
		m.game = &game
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates when in game mode.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(Model); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		m.summaries = append(m.summaries, m.game.Summary())
		m.menu = NewMenuModel(m.preset, m.width, m.height)
		m.menu.lastRun = lastRunLine(m.game.Summary())
		m.game = nil
		return m, m.menu.Init()
	}

	if m.game.Quitting() {
		m.summaries = append(m.summaries, m.game.Summary())
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.menu.View()
}

// Summaries returns one summary per game played in this session.
func (m SessionModel) Summaries() []telemetry.RunSummary {
	return m.summaries
}

func lastRunLine(s telemetry.RunSummary) string {
	return fmt.Sprintf("last run: score %d, level %d, %s", s.Score, s.MaxLevel, s.Outcome)
}

// RunSession shows the title menu and plays games until the player quits.
func RunSession(opts Options, preset config.DifficultyPreset) ([]telemetry.RunSummary, error) {
	p := tea.NewProgram(
		NewSessionModel(opts, preset),
		tea.WithAltScreen(),
	)

	final, err := p.Run()
	if err != nil {
		return nil, err
	}
	if m, ok := final.(SessionModel); ok {
		return m.Summaries(), nil
	}
	return nil, nil
}
