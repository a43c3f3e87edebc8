package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-escape/internal/session"
	"github.com/vovakirdan/maze-escape/internal/storage"
)

// defaultScoreLimit is the number of rows loaded per difficulty when the
// caller does not set one.
const defaultScoreLimit = 10

// ScoreboardKeyMap defines the key bindings for the scoreboard.
type ScoreboardKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextLevel key.Binding
	PrevLevel key.Binding
	Back      key.Binding
	Quit      key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k ScoreboardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.NextLevel, k.PrevLevel, k.Back}
}

// FullHelp returns key bindings for the full help view.
func (k ScoreboardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.NextLevel, k.PrevLevel},
		{k.Back, k.Quit},
	}
}

// DefaultScoreboardKeyMap returns default key bindings.
func DefaultScoreboardKeyMap() ScoreboardKeyMap {
	return ScoreboardKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "scroll up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "scroll down"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab/→", "next difficulty"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab/←", "prev difficulty"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ScoreboardModel shows the best runs of each difficulty in a table, one tab
// per difficulty.
type ScoreboardModel struct {
	levels    []session.Difficulty
	cursor    int
	store     *storage.Store
	limit     int
	runs      []storage.Run
	loadErr   error
	table     table.Model
	help      help.Model
	keys      ScoreboardKeyMap
	styles    Styles
	width     int
	height    int
	quitting  bool
	goingBack bool
}

// NewScoreboardModel creates a scoreboard positioned on the difficulty at
// index start.
func NewScoreboardModel(store *storage.Store, levels []session.Difficulty, start, limit, width, height int, styles Styles) ScoreboardModel {
	if limit <= 0 {
		limit = defaultScoreLimit
	}
	h := help.New()
	h.ShowAll = false
	h.Width = width
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSep

	m := ScoreboardModel{
		levels: levels,
		store:  store,
		limit:  limit,
		keys:   DefaultScoreboardKeyMap(),
		help:   h,
		styles: styles,
		width:  width,
		height: height,
	}
	if start >= 0 && start < len(levels) {
		m.cursor = start
	}

	m.table = m.createTable()
	m.loadRuns()
	return m
}

func (m *ScoreboardModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "Rank", Width: 5},
		{Title: "Score", Width: 6},
		{Title: "Moves", Width: 6},
		{Title: "Time", Width: 8},
		{Title: "Player", Width: 12},
		{Title: "Date", Width: 12},
	}

	// Give spare width to the player column
	used := 0
	for _, c := range columns {
		used += c.Width + 2
	}
	if spare := m.width - 8 - used; spare > 0 {
		columns[4].Width += min(spare, 12)
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-10, 3)),
	)

	s := table.DefaultStyles()
	s.Header = m.styles.Header
	s.Selected = m.styles.Selected
	t.SetStyles(s)

	return t
}

func (m *ScoreboardModel) loadRuns() {
	m.runs, m.loadErr = nil, nil
	if m.store != nil && len(m.levels) > 0 {
		m.runs, m.loadErr = m.store.TopRuns(m.levels[m.cursor].Level.String(), m.limit)
	}
	m.updateTableRows()
}

func (m *ScoreboardModel) updateTableRows() {
	rows := make([]table.Row, len(m.runs))
	for i, r := range m.runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		rows[i] = table.Row{
			fmt.Sprintf("#%d", i+1),
			fmt.Sprintf("%d", r.Score),
			fmt.Sprintf("%d", r.Moves),
			formatElapsed(r.Elapsed),
			player,
			r.CreatedAt.Local().Format("Jan 02 15:04"),
		}
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Init initializes the scoreboard model.
func (m ScoreboardModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the scoreboard.
func (m ScoreboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, nil

		case key.Matches(msg, m.keys.Back):
			m.goingBack = true
			return m, nil

		case key.Matches(msg, m.keys.NextLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor + 1) % len(m.levels)
				m.loadRuns()
			}
			return m, nil

		case key.Matches(msg, m.keys.PrevLevel):
			if len(m.levels) > 0 {
				m.cursor = (m.cursor - 1 + len(m.levels)) % len(m.levels)
				m.loadRuns()
			}
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.updateTableRows()
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the scoreboard.
func (m ScoreboardModel) View() string {
	var b strings.Builder

	title := "HIGH SCORES"
	if len(m.levels) > 0 {
		d := m.levels[m.cursor]
		title = fmt.Sprintf("HIGH SCORES - %s (%d×%d)", d.Label, d.Size, d.Size)
	}
	b.WriteString(m.styles.Title.Render(centerText(title, m.width)))
	b.WriteString("\n")

	tabs := make([]string, len(m.levels))
	for i, d := range m.levels {
		if i == m.cursor {
			tabs[i] = m.styles.TabOn.Render(d.Label)
		} else {
			tabs[i] = m.styles.Tab.Render(" " + d.Label + " ")
		}
	}
	tabLine := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, tabLine))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.Box.Render(m.tableContent())))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))

	return b.String()
}

func (m ScoreboardModel) tableContent() string {
	switch {
	case m.store == nil:
		return m.styles.Empty.Render("Scores are not being saved.\nStart with a writable --db path.")
	case m.loadErr != nil:
		return m.styles.Empty.Render("Could not load scores:\n" + m.loadErr.Error())
	case len(m.runs) == 0:
		return m.styles.Empty.Render("No runs recorded yet.\nEscape a maze to set a high score!")
	}
	return m.table.View()
}

// IsGoingBack returns true if user wants to go back to menu.
func (m ScoreboardModel) IsGoingBack() bool {
	return m.goingBack
}

// IsQuitting returns true if user wants to quit entirely.
func (m ScoreboardModel) IsQuitting() bool {
	return m.quitting
}

// Runs returns the rows currently shown.
func (m ScoreboardModel) Runs() []storage.Run {
	return m.runs
}

// Current returns the difficulty whose tab is open.
func (m ScoreboardModel) Current() session.Difficulty {
	if len(m.levels) == 0 {
		return session.Difficulty{}
	}
	return m.levels[m.cursor]
}

// standaloneScoreboard quits the program when the scoreboard closes.
type standaloneScoreboard struct {
	ScoreboardModel
}

func (s standaloneScoreboard) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := s.ScoreboardModel.Update(msg)
	s.ScoreboardModel = next.(ScoreboardModel)
	if s.IsGoingBack() || s.IsQuitting() {
		return s, tea.Quit
	}
	return s, cmd
}

// RunScoreboard runs the scoreboard as its own program.
func RunScoreboard(store *storage.Store, levels []session.Difficulty, start, limit, width, height int) error {
	model := standaloneScoreboard{NewScoreboardModel(store, levels, start, limit, width, height, NewStyles(nil))}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	n := utf8.RuneCountInString(text)
	if n >= width {
		return text
	}
	return strings.Repeat(" ", (width-n)/2) + text
}
