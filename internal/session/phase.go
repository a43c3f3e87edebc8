package session

import "github.com/vovakirdan/maze-escape/internal/maze"

// Phase is a named state of the session state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
	PhasePaused
	PhaseCredits
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "Menu"
	case PhasePlaying:
		return "Playing"
	case PhaseGameOver:
		return "GameOver"
	case PhasePaused:
		return "Paused"
	case PhaseCredits:
		return "Credits"
	default:
		return "Unknown"
	}
}

// EventKind identifies an input the state machine reacts to.
type EventKind int

const (
	EventSelectDifficulty EventKind = iota
	EventStart
	EventMove
	EventRestart
	EventEscape
	EventPause
	EventOpenCredits
	EventReachExit // raised by the session itself after a winning move
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventSelectDifficulty:
		return "SelectDifficulty"
	case EventStart:
		return "Start"
	case EventMove:
		return "Move"
	case EventRestart:
		return "Restart"
	case EventEscape:
		return "Escape"
	case EventPause:
		return "Pause"
	case EventOpenCredits:
		return "OpenCredits"
	case EventReachExit:
		return "ReachExit"
	default:
		return "Unknown"
	}
}

// Event is a single input to the session. Direction is read only for
// EventMove and Difficulty only for EventSelectDifficulty.
type Event struct {
	Kind       EventKind
	Direction  maze.Direction
	Difficulty Difficulty
}

// MoveEvent builds an EventMove.
func MoveEvent(d maze.Direction) Event {
	return Event{Kind: EventMove, Direction: d}
}

// SelectEvent builds an EventSelectDifficulty.
func SelectEvent(d Difficulty) Event {
	return Event{Kind: EventSelectDifficulty, Difficulty: d}
}

// Next is the transition function of the session. It returns the phase
// reached by applying kind in phase, and false when the pair has no
// transition, in which case the input is ignored.
func Next(phase Phase, kind EventKind) (Phase, bool) {
	switch phase {
	case PhaseMenu:
		switch kind {
		case EventSelectDifficulty:
			return PhaseMenu, true
		case EventStart:
			return PhasePlaying, true
		case EventOpenCredits:
			return PhaseCredits, true
		}

	case PhasePlaying:
		switch kind {
		case EventMove, EventRestart:
			return PhasePlaying, true
		case EventReachExit:
			return PhaseGameOver, true
		case EventEscape:
			return PhaseMenu, true
		case EventPause:
			return PhasePaused, true
		}

	case PhasePaused:
		switch kind {
		case EventPause, EventRestart:
			return PhasePlaying, true
		case EventEscape:
			return PhaseMenu, true
		}

	case PhaseGameOver:
		switch kind {
		case EventRestart:
			return PhasePlaying, true
		case EventEscape:
			return PhaseMenu, true
		}

	case PhaseCredits:
		if kind == EventEscape {
			return PhaseMenu, true
		}
	}

	return phase, false
}
