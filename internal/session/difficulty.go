package session

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/maze-escape/internal/maze"
)

// Level is the enumerated difficulty class.
type Level int

const (
	Easy Level = iota
	Medium
	Hard
)

// Levels lists every difficulty class in menu order.
var Levels = []Level{Easy, Medium, Hard}

// String returns the lower-case identifier used in config files and storage.
func (l Level) String() string {
	switch l {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return "unknown"
	}
}

// ParseLevel converts "easy", "medium" or "hard" (any case) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return Easy, fmt.Errorf("session: unknown difficulty %q", s)
}

// Difficulty describes one difficulty class: the maze size it generates,
// its display label and the bonus added to the score on a win.
type Difficulty struct {
	Level Level
	Label string
	Size  int
	Bonus int
}

// Validate checks that the difficulty can produce a maze.
func (d Difficulty) Validate() error {
	if err := maze.ValidateSize(d.Size); err != nil {
		return fmt.Errorf("session: difficulty %q: %w", d.Label, err)
	}
	if d.Bonus < 0 {
		return fmt.Errorf("session: difficulty %q: negative bonus %d", d.Label, d.Bonus)
	}
	return nil
}

// DefaultDifficulties returns the stock Easy/Medium/Hard classes.
func DefaultDifficulties() []Difficulty {
	return []Difficulty{
		{Level: Easy, Label: "Easy", Size: 15, Bonus: 0},
		{Level: Medium, Label: "Medium", Size: 25, Bonus: 500},
		{Level: Hard, Label: "Hard", Size: 35, Bonus: 1000},
	}
}
