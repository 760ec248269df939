package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyburst/internal/config"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	menuCursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	dimStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuKeyMap defines the key bindings of the title menu.
type MenuKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k MenuKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k MenuKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// DefaultMenuKeyMap returns default key bindings.
func DefaultMenuKeyMap() MenuKeyMap {
	return MenuKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " ", "space"),
			key.WithHelp("enter", "start"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// presetNotes describes each difficulty preset on the title screen.
var presetNotes = map[config.DifficultyPreset]string{
	config.DifficultyEasy:   "levels every 45s",
	config.DifficultyNormal: "levels every 30s",
	config.DifficultyHard:   "levels every 20s",
	config.DifficultyFixed:  "no level progression",
}

// MenuModel is the title screen where the player picks a difficulty.
type MenuModel struct {
	items    []config.DifficultyPreset
	cursor   int
	width    int
	height   int
	keys     MenuKeyMap
	help     help.Model
	lastRun  string
	quitting bool
	selected bool
}

// NewMenuModel creates a title menu with the cursor on the given preset.
func NewMenuModel(current config.DifficultyPreset, width, height int) MenuModel {
	m := MenuModel{
		items:  config.Presets,
		width:  width,
		height: height,
		keys:   DefaultMenuKeyMap(),
		help:   help.New(),
	}
	for i, p := range m.items {
		if p == current {
			m.cursor = i
		}
	}
	m.help.Width = width
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Select):
		if len(m.items) > 0 {
			m.selected = true
		}
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("S K Y B U R S T"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText(dimStyle.Render("Select difficulty"), m.width))
	b.WriteString("\n\n")

	for i, p := range m.items {
		line := fmt.Sprintf("  %-7s %s", p, presetNotes[p])
		if i == m.cursor {
			line = menuCursorStyle.Render(fmt.Sprintf("> %-7s %s", p, presetNotes[p]))
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	if m.lastRun != "" {
		b.WriteString("\n")
		b.WriteString(centerText(dimStyle.Render(m.lastRun), m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(m.help.View(m.keys), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen preset once the player confirmed one.
func (m MenuModel) Selected() (config.DifficultyPreset, bool) {
	if !m.selected || len(m.items) == 0 {
		return "", false
	}
	return m.items[m.cursor], true
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
