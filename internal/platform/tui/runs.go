package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/skyburst/internal/storage"
)

// Runs browser layout constants
const (
	minWidthForSidebar = 80  // Minimum width to show batch list sidebar
	sidebarWidth       = 24  // Width of batch list sidebar
	maxRuns            = 100 // Max runs to load
	maxBatches         = 20  // Max batches listed
)

// RunSource is the part of the run journal the browser reads.
type RunSource interface {
	TopRuns(limit int) ([]storage.RunRecord, error)
	BatchRuns(batchID int64) ([]storage.RunRecord, error)
	RecentBatches(limit int) ([]storage.BatchRecord, error)
}

// RunsKeyMap defines the key bindings for the runs browser.
type RunsKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextBatch key.Binding
	PrevBatch key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k RunsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextBatch, k.PrevBatch, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k RunsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextBatch, k.PrevBatch},
		{k.Quit},
	}
}

// DefaultRunsKeyMap returns default key bindings.
func DefaultRunsKeyMap() RunsKeyMap {
	return RunsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "scroll down"),
		),
		NextBatch: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next batch"),
		),
		PrevBatch: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev batch"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// runView is one entry of the sidebar: the all-time top runs or a batch.
type runView struct {
	title   string
	batchID int64 // 0 selects the top runs across batches
}

// RunsModel browses the headless run journal.
type RunsModel struct {
	source      RunSource
	views       []runView
	cursor      int
	runs        []storage.RunRecord
	loadErr     error
	table       table.Model
	help        help.Model
	keys        RunsKeyMap
	width       int
	height      int
	quitting    bool
	showSidebar bool
}

// NewRunsModel creates a runs browser over the given source.
func NewRunsModel(source RunSource, width, height int) RunsModel {
	m := RunsModel{
		source:      source,
		views:       []runView{{title: "Top runs"}},
		keys:        DefaultRunsKeyMap(),
		help:        help.New(),
		width:       width,
		height:      height,
		showSidebar: width >= minWidthForSidebar,
	}

	batches, err := source.RecentBatches(maxBatches)
	if err != nil {
		m.loadErr = err
	}
	for _, b := range batches {
		title := fmt.Sprintf("#%d %s", b.ID, b.Label)
		m.views = append(m.views, runView{title: strings.TrimSpace(title), batchID: b.ID})
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *RunsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Seed", Width: 8},
		{Title: "Score", Width: 7},
		{Title: "Lv", Width: 3},
		{Title: "Outcome", Width: 10},
		{Title: "Time", Width: 7},
		{Title: "Kills", Width: 20},
	}

	// Calculate available width for table
	tableWidth := m.width - 4 // Margins
	if m.showSidebar {
		tableWidth -= sidebarWidth + 3 // Sidebar + border + gap
	}

	// The kills column takes whatever the fixed columns leave
	fixed := 0
	for _, c := range columns[:len(columns)-1] {
		fixed += c.Width + 2
	}
	columns[len(columns)-1].Width = max(tableWidth-fixed, 10)

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for header, help, and margins
	)

	// Table styles
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// loadRuns loads the runs of the selected view.
func (m *RunsModel) loadRuns() {
	var (
		runs []storage.RunRecord
		err  error
	)
	if v := m.views[m.cursor]; v.batchID == 0 {
		runs, err = m.source.TopRuns(maxRuns)
	} else {
		runs, err = m.source.BatchRuns(v.batchID)
	}
	m.runs, m.loadErr = runs, err
	m.updateTableRows()
}

// updateTableRows updates the table with the loaded runs.
func (m *RunsModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			strconv.FormatInt(r.Seed, 10),
			strconv.Itoa(r.Score),
			strconv.Itoa(r.MaxLevel),
			r.Outcome,
			fmt.Sprintf("%.1fs", float64(r.ElapsedMs)/1000),
			r.Kills,
		}
	}
	m.table.SetRows(rows)

	// Reset cursor to top
	m.table.GotoTop()
}

// Init initializes the runs browser.
func (m RunsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the runs browser.
func (m RunsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.NextBatch):
			m.cursor = (m.cursor + 1) % len(m.views)
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.PrevBatch):
			m.cursor--
			if m.cursor < 0 {
				m.cursor = len(m.views) - 1
			}
			m.loadRuns()
			return m, nil

		case key.Matches(msg, m.keys.Up), key.Matches(msg, m.keys.Down):
			// Pass to table for scrolling
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.showSidebar = m.width >= minWidthForSidebar
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	// Pass other messages to table
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the runs browser.
func (m RunsModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	title := "HEADLESS RUNS - " + m.views[m.cursor].title
	b.WriteString(titleStyle.Render(centerText(title, m.width)))
	b.WriteString("\n\n")

	if m.showSidebar {
		b.WriteString(m.renderWideLayout())
	} else {
		b.WriteString(m.renderNarrowLayout())
	}

	// Help bar
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.help.View(m.keys)))

	return b.String()
}

var panelStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("240")).
	Padding(0, 1)

// renderWideLayout renders the browser with a batch list sidebar.
func (m RunsModel) renderWideLayout() string {
	var sidebar strings.Builder
	sidebar.WriteString("Batches\n")
	sidebar.WriteString(strings.Repeat("-", sidebarWidth-4))
	sidebar.WriteString("\n")

	for i, v := range m.views {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "> "
			style = menuCursorStyle
		}
		sidebar.WriteString(style.Render(cursor + truncate(v.title, sidebarWidth-6)))
		sidebar.WriteString("\n")
	}

	sidebarRendered := panelStyle.Width(sidebarWidth).Render(sidebar.String())
	tableRendered := panelStyle.Render(m.renderTableContent())

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebarRendered, "  ", tableRendered)
}

// renderNarrowLayout shows only the selected batch name above the table.
func (m RunsModel) renderNarrowLayout() string {
	var b strings.Builder

	tabLine := fmt.Sprintf("< %s >", truncate(m.views[m.cursor].title, max(m.width-8, 8)))
	b.WriteString(centerText(tabLine, m.width))
	b.WriteString("\n\n")
	b.WriteString(panelStyle.Render(m.renderTableContent()))

	return b.String()
}

// renderTableContent renders the table or an empty/error message.
func (m RunsModel) renderTableContent() string {
	emptyStyle := dimStyle.Italic(true).Padding(2, 4)
	if m.loadErr != nil {
		return emptyStyle.Render("Could not read the run journal:\n" + m.loadErr.Error())
	}
	if len(m.runs) == 0 {
		return emptyStyle.Render("No runs recorded yet.\nRun `skyburst sim` to fill the journal.")
	}

	return m.table.View()
}

// Rows returns the table rows currently shown.
func (m RunsModel) Rows() []table.Row {
	return m.table.Rows()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if n <= 1 || len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "."
}

// RunRunsBrowser shows the run journal until the user quits.
func RunRunsBrowser(source RunSource, width, height int) error {
	p := tea.NewProgram(
		NewRunsModel(source, width, height),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
