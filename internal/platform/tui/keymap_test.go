package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/maze-escape/internal/maze"
	"github.com/vovakirdan/maze-escape/internal/session"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	keyUp    = tea.KeyMsg{Type: tea.KeyUp}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyLeft  = tea.KeyMsg{Type: tea.KeyLeft}
	keyRight = tea.KeyMsg{Type: tea.KeyRight}
	keySpace = tea.KeyMsg{Type: tea.KeySpace}
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEscape}
	keyTab   = tea.KeyMsg{Type: tea.KeyTab}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestRoute(t *testing.T) {
	k := DefaultKeyMap()
	event := func(e session.EventKind) Intent { return Intent{Kind: IntentEvent, Event: e} }
	move := func(d maze.Direction) Intent { return Intent{Kind: IntentMove, Dir: d} }

	tests := []struct {
		name  string
		phase session.Phase
		msg   tea.KeyMsg
		want  Intent
	}{
		{"menu 1 selects easy", session.PhaseMenu, runes("1"), Intent{Kind: IntentSelect, Index: 0}},
		{"menu 3 selects hard", session.PhaseMenu, runes("3"), Intent{Kind: IntentSelect, Index: 2}},
		{"menu up cycles back", session.PhaseMenu, keyUp, Intent{Kind: IntentCycle, Index: -1}},
		{"menu j cycles forward", session.PhaseMenu, runes("j"), Intent{Kind: IntentCycle, Index: 1}},
		{"menu space starts", session.PhaseMenu, keySpace, event(session.EventStart)},
		{"menu enter starts", session.PhaseMenu, keyEnter, event(session.EventStart)},
		{"menu c opens credits", session.PhaseMenu, runes("c"), event(session.EventOpenCredits)},
		{"menu tab opens scores", session.PhaseMenu, keyTab, Intent{Kind: IntentScoreboard}},
		{"menu q quits", session.PhaseMenu, runes("q"), Intent{Kind: IntentQuit}},
		{"menu esc ignored", session.PhaseMenu, keyEsc, Intent{}},
		{"menu r ignored", session.PhaseMenu, runes("r"), Intent{}},

		{"playing arrow up", session.PhasePlaying, keyUp, move(maze.DirUp)},
		{"playing w", session.PhasePlaying, runes("w"), move(maze.DirUp)},
		{"playing s", session.PhasePlaying, runes("s"), move(maze.DirDown)},
		{"playing h", session.PhasePlaying, runes("h"), move(maze.DirLeft)},
		{"playing arrow right", session.PhasePlaying, keyRight, move(maze.DirRight)},
		{"playing r restarts", session.PhasePlaying, runes("r"), event(session.EventRestart)},
		{"playing p pauses", session.PhasePlaying, runes("p"), event(session.EventPause)},
		{"playing esc escapes", session.PhasePlaying, keyEsc, event(session.EventEscape)},
		{"playing q ignored", session.PhasePlaying, runes("q"), Intent{}},
		{"playing 1 ignored", session.PhasePlaying, runes("1"), Intent{}},

		{"paused p resumes", session.PhasePaused, runes("p"), event(session.EventPause)},
		{"paused r restarts", session.PhasePaused, runes("r"), event(session.EventRestart)},
		{"paused esc escapes", session.PhasePaused, keyEsc, event(session.EventEscape)},
		{"paused arrows ignored", session.PhasePaused, keyLeft, Intent{}},

		{"game over r restarts", session.PhaseGameOver, runes("r"), event(session.EventRestart)},
		{"game over esc escapes", session.PhaseGameOver, keyEsc, event(session.EventEscape)},
		{"game over arrows ignored", session.PhaseGameOver, keyDown, Intent{}},
		{"game over p ignored", session.PhaseGameOver, runes("p"), Intent{}},

		{"credits esc returns", session.PhaseCredits, keyEsc, event(session.EventEscape)},
		{"credits space ignored", session.PhaseCredits, keySpace, Intent{}},

		{"ctrl+c quits anywhere", session.PhasePlaying, keyCtrlC, Intent{Kind: IntentQuit}},
		{"ctrl+c quits in credits", session.PhaseCredits, keyCtrlC, Intent{Kind: IntentQuit}},
		{"ctrl+s screenshots", session.PhaseGameOver, keyCtrlS, Intent{Kind: IntentScreenshot}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, k.Route(tc.phase, tc.msg))
		})
	}
}

func TestHelpForEveryPhase(t *testing.T) {
	k := DefaultKeyMap()

	for _, p := range []session.Phase{
		session.PhaseMenu, session.PhasePlaying, session.PhasePaused,
		session.PhaseGameOver, session.PhaseCredits,
	} {
		assert.NotEmpty(t, k.HelpFor(p).ShortHelp(), p.String())
	}

	paused := k.HelpFor(session.PhasePaused).ShortHelp()
	assert.Equal(t, "resume", paused[0].Help().Desc)
	// The shared binding keeps its own description.
	assert.Equal(t, "pause", k.Pause.Help().Desc)
}
