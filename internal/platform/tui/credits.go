package tui

import (
	"github.com/vovakirdan/maze-escape/internal/config"
	"github.com/vovakirdan/maze-escape/internal/core"
)

// creditRow is one rendered row of the credits roll; blank rows have no text.
type creditRow struct {
	text  string
	color core.Color
}

// creditsRoll scrolls the credits upward from the bottom of the view, one row
// every `every` ticks, and starts over once the last row has left the top.
type creditsRoll struct {
	rows   []creditRow
	every  int
	ticks  int
	offset int
}

func newCreditsRoll(cfg config.CreditsConfig) creditsRoll {
	var rows []creditRow
	for _, line := range cfg.Lines {
		rows = append(rows, creditRow{text: line.Text, color: creditColor(line.Style)})
		for range line.Gap {
			rows = append(rows, creditRow{})
		}
	}
	return creditsRoll{rows: rows, every: max(cfg.ScrollEvery, 1)}
}

func creditColor(style string) core.Color {
	switch style {
	case config.CreditTitle:
		return core.ColorTitle
	case config.CreditHeading:
		return core.ColorText
	case config.CreditName:
		return core.ColorAccent
	case config.CreditRole:
		return core.ColorMuted
	case config.CreditNote:
		return core.ColorStart
	}
	return core.ColorText
}

// Reset rewinds the roll to its first frame.
func (c *creditsRoll) Reset() {
	c.ticks = 0
	c.offset = 0
}

// Tick advances the animation for a view of the given height.
func (c *creditsRoll) Tick(viewH int) {
	c.ticks++
	if c.ticks < c.every {
		return
	}
	c.ticks = 0
	c.offset++
	if c.offset > len(c.rows)+viewH {
		c.offset = 0
	}
}

// Draw writes the visible rows into area.
func (c creditsRoll) Draw(s *core.Screen, area core.Rect) {
	top := area.Y + area.H - c.offset
	for i, row := range c.rows {
		y := top + i
		if y < area.Y || y >= area.Bottom() || row.text == "" {
			continue
		}
		drawCentered(s, area, y, row.text, row.color)
	}
}
