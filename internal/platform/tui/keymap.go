package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/maze-escape/internal/maze"
	"github.com/vovakirdan/maze-escape/internal/session"
)

// KeyMap defines every key binding of the game screens.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Easy       key.Binding
	Medium     key.Binding
	Hard       key.Binding
	PrevLevel  key.Binding
	NextLevel  key.Binding
	Start      key.Binding
	Credits    key.Binding
	Scores     key.Binding
	Restart    key.Binding
	Pause      key.Binding
	Back       key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
	Screenshot key.Binding
}

// DefaultKeyMap returns the default bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "w", "k"),
			key.WithHelp("↑/w", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Easy: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "easy"),
		),
		Medium: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "medium"),
		),
		Hard: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "hard"),
		),
		PrevLevel: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/↓", "difficulty"),
		),
		NextLevel: key.NewBinding(
			key.WithKeys("down", "j"),
		),
		Start: key.NewBinding(
			key.WithKeys(" ", "enter"),
			key.WithHelp("space", "start"),
		),
		Credits: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "credits"),
		),
		Scores: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "scores"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "menu"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
		),
	}
}

// IntentKind classifies what a key press asks for.
type IntentKind int

const (
	IntentNone       IntentKind = iota
	IntentEvent                 // Send Event to the session
	IntentMove                  // Move the player in Dir
	IntentSelect                // Select difficulty slot Index
	IntentCycle                 // Move the difficulty highlight by Index
	IntentScoreboard            // Open the scoreboard
	IntentScreenshot            // Write the screen to a file
	IntentQuit                  // Leave the program
)

// Intent is the result of routing one key press.
type Intent struct {
	Kind  IntentKind
	Event session.EventKind
	Dir   maze.Direction
	Index int
}

// Route maps a key press to an intent for the given phase. Keys that mean
// nothing in the phase return IntentNone.
func (k KeyMap) Route(phase session.Phase, msg tea.KeyMsg) Intent {
	switch {
	case key.Matches(msg, k.ForceQuit):
		return Intent{Kind: IntentQuit}
	case key.Matches(msg, k.Screenshot):
		return Intent{Kind: IntentScreenshot}
	}

	event := func(e session.EventKind) Intent {
		return Intent{Kind: IntentEvent, Event: e}
	}

	switch phase {
	case session.PhaseMenu:
		switch {
		case key.Matches(msg, k.Easy):
			return Intent{Kind: IntentSelect, Index: 0}
		case key.Matches(msg, k.Medium):
			return Intent{Kind: IntentSelect, Index: 1}
		case key.Matches(msg, k.Hard):
			return Intent{Kind: IntentSelect, Index: 2}
		case key.Matches(msg, k.PrevLevel):
			return Intent{Kind: IntentCycle, Index: -1}
		case key.Matches(msg, k.NextLevel):
			return Intent{Kind: IntentCycle, Index: 1}
		case key.Matches(msg, k.Start):
			return event(session.EventStart)
		case key.Matches(msg, k.Credits):
			return event(session.EventOpenCredits)
		case key.Matches(msg, k.Scores):
			return Intent{Kind: IntentScoreboard}
		case key.Matches(msg, k.Quit):
			return Intent{Kind: IntentQuit}
		}

	case session.PhasePlaying:
		switch {
		case key.Matches(msg, k.Up):
			return Intent{Kind: IntentMove, Dir: maze.DirUp}
		case key.Matches(msg, k.Down):
			return Intent{Kind: IntentMove, Dir: maze.DirDown}
		case key.Matches(msg, k.Left):
			return Intent{Kind: IntentMove, Dir: maze.DirLeft}
		case key.Matches(msg, k.Right):
			return Intent{Kind: IntentMove, Dir: maze.DirRight}
		case key.Matches(msg, k.Restart):
			return event(session.EventRestart)
		case key.Matches(msg, k.Pause):
			return event(session.EventPause)
		case key.Matches(msg, k.Back):
			return event(session.EventEscape)
		}

	case session.PhasePaused:
		switch {
		case key.Matches(msg, k.Pause):
			return event(session.EventPause)
		case key.Matches(msg, k.Restart):
			return event(session.EventRestart)
		case key.Matches(msg, k.Back):
			return event(session.EventEscape)
		}

	case session.PhaseGameOver:
		switch {
		case key.Matches(msg, k.Restart):
			return event(session.EventRestart)
		case key.Matches(msg, k.Back):
			return event(session.EventEscape)
		}

	case session.PhaseCredits:
		if key.Matches(msg, k.Back) {
			return event(session.EventEscape)
		}
	}

	return Intent{}
}

// phaseHelp adapts the bindings of one phase to help.KeyMap.
type phaseHelp []key.Binding

func (p phaseHelp) ShortHelp() []key.Binding { return p }

func (p phaseHelp) FullHelp() [][]key.Binding { return [][]key.Binding{p} }

// HelpFor returns the bindings shown in the help bar for a phase.
func (k KeyMap) HelpFor(phase session.Phase) help.KeyMap {
	switch phase {
	case session.PhaseMenu:
		return phaseHelp{k.Easy, k.Medium, k.Hard, k.PrevLevel, k.Start, k.Credits, k.Scores, k.Quit}
	case session.PhasePlaying:
		return phaseHelp{k.Up, k.Down, k.Left, k.Right, k.Pause, k.Restart, k.Back}
	case session.PhasePaused:
		return phaseHelp{withHelp(k.Pause, "resume"), k.Restart, k.Back}
	case session.PhaseGameOver:
		return phaseHelp{withHelp(k.Restart, "play again"), k.Back}
	case session.PhaseCredits:
		return phaseHelp{k.Back}
	}
	return phaseHelp{}
}

// withHelp returns a copy of b with a different description.
func withHelp(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}
