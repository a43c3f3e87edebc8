package config

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/maze-escape/internal/session"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that every difficulty can produce a maze and that the
// display glyphs and credits are usable.
func (c GameConfig) Validate() error {
	if len(c.Difficulties) == 0 {
		return fmt.Errorf("config: %w: no difficulties defined", ErrInvalidConfig)
	}
	if _, err := c.SessionDifficulties(); err != nil {
		return err
	}

	if c.Scores.Limit < 0 {
		return fmt.Errorf("config: %w: scores.limit must not be negative", ErrInvalidConfig)
	}
	if c.Credits.ScrollEvery < 0 {
		return fmt.Errorf("config: %w: credits.scroll_every must not be negative", ErrInvalidConfig)
	}
	for i, line := range c.Credits.Lines {
		switch line.Style {
		case "", CreditTitle, CreditHeading, CreditName, CreditRole, CreditNote:
		default:
			return fmt.Errorf("config: %w: credits line %d: unknown style %q", ErrInvalidConfig, i, line.Style)
		}
		if line.Gap < 0 {
			return fmt.Errorf("config: %w: credits line %d: negative gap", ErrInvalidConfig, i)
		}
	}

	d := c.Display
	if d.CellWidth < 1 || d.CellWidth > 3 {
		return fmt.Errorf("config: %w: display.cell_width must be 1..3, got %d", ErrInvalidConfig, d.CellWidth)
	}
	glyphs := []struct{ name, value string }{
		{"wall", d.Wall}, {"floor", d.Floor}, {"player", d.Player},
		{"start", d.Start}, {"exit", d.Exit},
	}
	for _, g := range glyphs {
		if utf8.RuneCountInString(g.value) != 1 {
			return fmt.Errorf("config: %w: display.%s must be a single character, got %q", ErrInvalidConfig, g.name, g.value)
		}
	}
	return nil
}

// SessionDifficulties converts the configured classes to session difficulties
// in file order. Levels must be unique and every size must pass
// maze.ValidateSize; the size error is wrapped so errors.Is(err,
// maze.ErrInvalidSize) holds.
func (c GameConfig) SessionDifficulties() ([]session.Difficulty, error) {
	seen := make(map[session.Level]bool, len(c.Difficulties))
	out := make([]session.Difficulty, 0, len(c.Difficulties))

	for _, dc := range c.Difficulties {
		level, err := session.ParseLevel(dc.Level)
		if err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		if seen[level] {
			return nil, fmt.Errorf("config: %w: difficulty %q defined twice", ErrInvalidConfig, level)
		}
		seen[level] = true

		label := dc.Label
		if label == "" {
			s := level.String()
			label = strings.ToUpper(s[:1]) + s[1:]
		}

		d := session.Difficulty{Level: level, Label: label, Size: dc.Size, Bonus: dc.Bonus}
		if err := d.Validate(); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		out = append(out, d)
	}
	return out, nil
}

// Difficulty returns the configured class for level.
func (c GameConfig) Difficulty(level session.Level) (session.Difficulty, bool) {
	ds, err := c.SessionDifficulties()
	if err != nil {
		return session.Difficulty{}, false
	}
	for _, d := range ds {
		if d.Level == level {
			return d, true
		}
	}
	return session.Difficulty{}, false
}
