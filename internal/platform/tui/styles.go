package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/maze-escape/internal/core"
)

// Styles holds every lipgloss style the maze views use. Styles are created
// from a renderer so SSH sessions get the color profile of their own client.
type Styles struct {
	cells map[core.Color]lipgloss.Style

	Title    lipgloss.Style
	Muted    lipgloss.Style
	HelpKey  lipgloss.Style
	HelpDesc lipgloss.Style
	HelpSep  lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Box      lipgloss.Style
	Header   lipgloss.Style
	Selected lipgloss.Style
	Empty    lipgloss.Style
}

// NewStyles builds the style set for r. A nil renderer uses the default one.
func NewStyles(r *lipgloss.Renderer) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	fg := func(c string) lipgloss.Style {
		return r.NewStyle().Foreground(lipgloss.Color(c))
	}

	return Styles{
		cells: map[core.Color]lipgloss.Style{
			core.ColorDefault:  r.NewStyle(),
			core.ColorWall:     fg("63"),
			core.ColorFloor:    r.NewStyle(),
			core.ColorPlayer:   fg("14").Bold(true),
			core.ColorExit:     fg("9"),
			core.ColorStart:    fg("2"),
			core.ColorTrail:    fg("240"),
			core.ColorText:     fg("252"),
			core.ColorTitle:    fg("11").Bold(true),
			core.ColorAccent:   fg("13"),
			core.ColorMuted:    fg("245"),
			core.ColorSelected: fg("229").Background(lipgloss.Color("57")).Bold(true),
			core.ColorWarning:  fg("208"),
			core.ColorBorder:   fg("240"),
		},

		Title:    fg("229").Bold(true).MarginBottom(1),
		Muted:    fg("241"),
		HelpKey:  fg("245"),
		HelpDesc: fg("239"),
		HelpSep:  fg("237"),
		Tab:      fg("241"),
		TabOn:    fg("229").Background(lipgloss.Color("57")).Bold(true).Padding(0, 1),
		Box:      r.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1),
		Header:   r.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).BorderBottom(true).Bold(true).Padding(0, 1),
		Selected: fg("229").Background(lipgloss.Color("57")),
		Empty:    fg("241").Italic(true).Padding(2, 4),
	}
}

// Cell returns the style for a cell role.
func (s Styles) Cell(c core.Color) lipgloss.Style {
	if st, ok := s.cells[c]; ok {
		return st
	}
	return s.cells[core.ColorDefault]
}
