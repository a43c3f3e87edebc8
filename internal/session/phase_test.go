package session

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextTransitionTable(t *testing.T) {
	phases := []Phase{PhaseMenu, PhasePlaying, PhaseGameOver, PhasePaused, PhaseCredits}
	kinds := []EventKind{
		EventSelectDifficulty, EventStart, EventMove, EventRestart,
		EventEscape, EventPause, EventOpenCredits, EventReachExit,
	}

	type key struct {
		phase Phase
		kind  EventKind
	}
	defined := map[key]Phase{
		{PhaseMenu, EventSelectDifficulty}: PhaseMenu,
		{PhaseMenu, EventStart}:            PhasePlaying,
		{PhaseMenu, EventOpenCredits}:      PhaseCredits,
		{PhasePlaying, EventMove}:          PhasePlaying,
		{PhasePlaying, EventRestart}:       PhasePlaying,
		{PhasePlaying, EventReachExit}:     PhaseGameOver,
		{PhasePlaying, EventEscape}:        PhaseMenu,
		{PhasePlaying, EventPause}:         PhasePaused,
		{PhasePaused, EventPause}:          PhasePlaying,
		{PhasePaused, EventRestart}:        PhasePlaying,
		{PhasePaused, EventEscape}:         PhaseMenu,
		{PhaseGameOver, EventRestart}:      PhasePlaying,
		{PhaseGameOver, EventEscape}:       PhaseMenu,
		{PhaseCredits, EventEscape}:        PhaseMenu,
	}

	for _, p := range phases {
		for _, k := range kinds {
			t.Run(fmt.Sprintf("%v/%v", p, k), func(t *testing.T) {
				got, ok := Next(p, k)
				want, isDefined := defined[key{p, k}]
				assert.Equal(t, isDefined, ok)
				if isDefined {
					assert.Equal(t, want, got)
				} else {
					assert.Equal(t, p, got, "ignored input must keep the phase")
				}
			})
		}
	}
}

func TestPhaseAndEventNames(t *testing.T) {
	assert.Equal(t, "GameOver", PhaseGameOver.String())
	assert.Equal(t, "Unknown", Phase(99).String())
	assert.Equal(t, "ReachExit", EventReachExit.String())
	assert.Equal(t, "Unknown", EventKind(99).String())
}
