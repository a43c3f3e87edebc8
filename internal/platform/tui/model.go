package tui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/maze-escape/internal/config"
	"github.com/vovakirdan/maze-escape/internal/core"
	"github.com/vovakirdan/maze-escape/internal/session"
	"github.com/vovakirdan/maze-escape/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config        config.GameConfig
	Runtime       core.RuntimeConfig
	Store         *storage.Store     // nil disables score saving
	Logger        *log.Logger        // nil discards logs
	Renderer      *lipgloss.Renderer // nil uses the default renderer
	Player        string             // Recorded with saved runs
	ScreenshotDir string             // Defaults to ~/.maze-escape/screenshots
	NoScreenshots bool               // Ignore the screenshot key
	Clock         session.Clock      // Defaults to the wall clock
}

// Model is the Bubble Tea model for one player: it owns a game session and
// translates keys into session events.
type Model struct {
	sess         *session.Session
	difficulties []session.Difficulty
	selected     int
	keys         KeyMap
	help         help.Model
	styles       Styles
	screen       *core.Screen
	store        *storage.Store
	logger       *log.Logger
	runtime      core.RuntimeConfig
	cfg          config.GameConfig
	player       string
	shotDir      string
	credits      creditsRoll
	best         map[session.Level]int
	rank         int
	board        *ScoreboardModel
	lastShot     string
	quitting     bool
}

// NewModel creates a model in the menu phase.
func NewModel(opts Options) (Model, error) {
	difficulties, err := opts.Config.SessionDifficulties()
	if err != nil {
		return Model{}, err
	}
	if len(difficulties) == 0 {
		return Model{}, errors.New("tui: no difficulties configured")
	}

	runtime := opts.Runtime.Normalize()
	seeds := session.TimeSeeds()
	if runtime.Seed != 0 {
		seeds = session.FixedSeeds(runtime.Seed)
	}
	sessOpts := []session.Option{
		session.WithSeedSource(seeds),
		session.WithDifficulty(difficulties[0]),
	}
	if opts.Clock != nil {
		sessOpts = append(sessOpts, session.WithClock(opts.Clock))
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	styles := NewStyles(opts.Renderer)
	h := help.New()
	h.Width = runtime.ScreenW
	h.Styles.ShortKey = styles.HelpKey
	h.Styles.ShortDesc = styles.HelpDesc
	h.Styles.ShortSeparator = styles.HelpSep

	var shotDir string
	switch {
	case opts.NoScreenshots:
	case opts.ScreenshotDir != "":
		shotDir = opts.ScreenshotDir
	default:
		if home, err := os.UserHomeDir(); err == nil {
			shotDir = filepath.Join(home, ".maze-escape", "screenshots")
		}
	}

	m := Model{
		sess:         session.New(sessOpts...),
		difficulties: difficulties,
		keys:         DefaultKeyMap(),
		help:         h,
		styles:       styles,
		screen:       core.NewScreen(runtime.ScreenW, max(runtime.ScreenH-1, 0)),
		store:        opts.Store,
		logger:       logger,
		runtime:      runtime,
		cfg:          opts.Config,
		player:       opts.Player,
		shotDir:      shotDir,
		credits:      newCreditsRoll(opts.Config.Credits),
		best:         make(map[session.Level]int),
	}
	m.loadBest()
	return m, nil
}

// loadBest reads the best saved score of every difficulty.
func (m *Model) loadBest() {
	if m.store == nil {
		return
	}
	for _, d := range m.difficulties {
		score, err := m.store.HighScore(d.Level.String())
		if err != nil {
			m.logger.Warn("cannot load high score", "difficulty", d.Level, "err", err)
			continue
		}
		if score > 0 {
			m.best[d.Level] = score
		}
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		if m.board != nil {
			next, _ := m.board.Update(msg)
			board := next.(ScoreboardModel)
			m.board = &board
		}
		return m, nil

	case TickMsg:
		if m.sess.Phase() == session.PhaseCredits {
			m.credits.Tick(max(m.screen.Height()-2, 0))
		}
		return m, tickCmd(m.runtime.TickRate)

	case tea.KeyMsg:
		if m.board != nil {
			return m.updateBoard(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	intent := m.keys.Route(m.sess.Phase(), msg)

	switch intent.Kind {
	case IntentQuit:
		m.quitting = true
		return m, tea.Quit

	case IntentScreenshot:
		m.saveScreenshot()

	case IntentScoreboard:
		board := NewScoreboardModel(m.store, m.difficulties, m.selected, m.cfg.Scores.Limit,
			m.runtime.ScreenW, m.runtime.ScreenH, m.styles)
		m.board = &board

	case IntentSelect:
		m.selectDifficulty(intent.Index)

	case IntentCycle:
		n := len(m.difficulties)
		m.selectDifficulty(((m.selected+intent.Index)%n + n) % n)

	case IntentMove:
		m.handle(session.MoveEvent(intent.Dir))

	case IntentEvent:
		m.handle(session.Event{Kind: intent.Event})
	}

	return m, nil
}

func (m Model) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	next, cmd := m.board.Update(msg)
	board := next.(ScoreboardModel)

	switch {
	case board.IsQuitting():
		m.quitting = true
		return m, tea.Quit
	case board.IsGoingBack():
		m.board = nil
		return m, nil
	}

	m.board = &board
	return m, cmd
}

func (m *Model) selectDifficulty(i int) {
	if i < 0 || i >= len(m.difficulties) {
		return
	}
	m.sess.SelectDifficulty(m.difficulties[i])
	if m.sess.Difficulty().Level == m.difficulties[i].Level {
		m.selected = i
	}
}

// handle forwards one event to the session and reacts to the transitions
// the views care about.
func (m *Model) handle(e session.Event) {
	_, accepted := session.Next(m.sess.Phase(), e.Kind)

	outcome, err := m.sess.Handle(e)
	if err != nil {
		m.logger.Error("cannot generate maze", "difficulty", m.sess.Difficulty().Level, "err", err)
		return
	}
	if !accepted {
		return
	}

	switch e.Kind {
	case session.EventStart, session.EventRestart:
		v := m.sess.State()
		m.rank = 0
		m.logger.Info("maze generated",
			"difficulty", v.Difficulty.Level,
			"size", v.Grid.Size(),
			"seed", v.Seed,
			"shortest", v.ShortestPath,
		)
	case session.EventOpenCredits:
		m.credits.Reset()
	}

	if outcome.Won {
		m.recordWin()
	}
}

// recordWin logs the finished run and saves it once.
func (m *Model) recordWin() {
	v := m.sess.State()
	m.logger.Info("maze escaped",
		"difficulty", v.Difficulty.Level,
		"moves", v.Moves,
		"elapsed", v.Elapsed.Round(time.Millisecond),
		"score", v.Score,
	)

	if m.store == nil || !m.cfg.Scores.Save {
		return
	}

	run, err := m.store.SaveRun(storage.Run{
		Player:       m.player,
		Difficulty:   v.Difficulty.Level.String(),
		MazeSize:     v.Grid.Size(),
		Seed:         v.Seed,
		Moves:        v.Moves,
		Elapsed:      v.Elapsed,
		Score:        v.Score,
		ShortestPath: v.ShortestPath,
	})
	if err != nil {
		m.logger.Warn("cannot save run", "err", err)
		return
	}

	if rank, err := m.store.Rank(run.Difficulty, run.Score); err == nil {
		m.rank = rank
	}
	if best, ok := m.best[v.Difficulty.Level]; !ok || v.Score > best {
		m.best[v.Difficulty.Level] = v.Score
	}
	m.logger.Debug("run saved", "run_id", run.RunID, "rank", m.rank)
}

func (m Model) frame() frame {
	return frame{
		view:         m.sess.State(),
		difficulties: m.difficulties,
		selected:     m.selected,
		best:         m.best,
		display:      m.cfg.Display,
		player:       m.player,
		rank:         m.rank,
		credits:      m.credits,
	}
}

// saveScreenshot writes the current screen as plain text.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	drawFrame(m.screen, m.frame())

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	name := fmt.Sprintf("maze_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.shotDir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.board != nil {
		return m.board.View()
	}

	drawFrame(m.screen, m.frame())
	return RenderScreen(m.screen, m.styles) + "\n" + m.help.View(m.keys.HelpFor(m.sess.Phase()))
}

// Phase returns the session phase.
func (m Model) Phase() session.Phase {
	return m.sess.Phase()
}

// State returns the session snapshot.
func (m Model) State() session.View {
	return m.sess.State()
}

// Rank returns the leaderboard position of the last saved run, or 0.
func (m Model) Rank() int {
	return m.rank
}

// ScoreboardOpen reports whether the scoreboard is showing.
func (m Model) ScoreboardOpen() bool {
	return m.board != nil
}

// LastScreenshot returns the path of the most recent screenshot.
func (m Model) LastScreenshot() string {
	return m.lastShot
}

// Run starts a local Bubble Tea program.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
