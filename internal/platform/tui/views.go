package tui

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/maze-escape/internal/config"
	"github.com/vovakirdan/maze-escape/internal/core"
	"github.com/vovakirdan/maze-escape/internal/maze"
	"github.com/vovakirdan/maze-escape/internal/session"
)

// Layout constants
const (
	sidebarWidth    = 26 // Width of the stats panel next to the maze
	minWidthSidebar = 60 // Narrower screens get a one-line status bar instead
)

// frame is everything the views need to draw one screen.
type frame struct {
	view         session.View
	difficulties []session.Difficulty
	selected     int                   // Highlighted difficulty in the menu
	best         map[session.Level]int // Best saved score per difficulty
	display      config.DisplayConfig
	player       string
	rank         int // Leaderboard position of the finished run, 0 if unknown
	credits      creditsRoll
}

// drawFrame renders the current phase into s.
func drawFrame(s *core.Screen, f frame) {
	s.Clear()
	switch f.view.Phase {
	case session.PhaseMenu:
		drawMenu(s, f)
	case session.PhaseCredits:
		drawCredits(s, f)
	case session.PhasePlaying, session.PhasePaused, session.PhaseGameOver:
		drawPlay(s, f)
	}
}

func drawMenu(s *core.Screen, f frame) {
	area := s.Bounds()
	contentH := 12 + len(f.difficulties)
	y := max((area.H-contentH)/2, 0)

	drawCentered(s, area, y, "M A Z E   E S C A P E", core.ColorTitle)
	y += 2
	drawCentered(s, area, y, "Find your way from the start to the exit", core.ColorMuted)
	y += 2
	drawCentered(s, area, y, "Select difficulty", core.ColorText)
	y++

	for i, d := range f.difficulties {
		marker := "  "
		color := core.ColorText
		if i == f.selected {
			marker = "▶ "
			color = core.ColorSelected
		}
		best := "   -"
		if score, ok := f.best[d.Level]; ok {
			best = fmt.Sprintf("%4d", score)
		}
		line := fmt.Sprintf("%s[%d] %-7s %2d×%-2d  best %s ", marker, i+1, d.Label, d.Size, d.Size, best)
		drawCentered(s, area, y, line, color)
		y++
	}

	y++
	drawCentered(s, area, y, "SPACE start   C credits   TAB scores   Q quit", core.ColorAccent)
	y += 2
	drawCentered(s, area, y, "Use the arrow keys, WASD or hjkl to move", core.ColorMuted)
	y++
	drawCentered(s, area, y, "Reach the exit to win!", core.ColorMuted)
	y += 2
	if f.player != "" {
		drawCentered(s, area, y, "playing as "+f.player, core.ColorMuted)
	}
}

func drawCredits(s *core.Screen, f frame) {
	area := s.Bounds()
	roll := core.NewRect(0, 0, area.W, max(area.H-2, 0))
	f.credits.Draw(s, roll)
	drawCentered(s, area, area.H-1, " Press ESC to return to menu ", core.ColorSelected)
}

// playLayout splits the screen into the maze area and the stats area.
func playLayout(w, h int) (mazeArea, stats core.Rect, wide bool) {
	if w >= minWidthSidebar {
		return core.NewRect(0, 0, w-sidebarWidth-1, h), core.NewRect(w-sidebarWidth, 0, sidebarWidth, h), true
	}
	return core.NewRect(0, 0, w, max(h-1, 0)), core.NewRect(0, h-1, w, 1), false
}

func drawPlay(s *core.Screen, f frame) {
	v := f.view
	if v.Grid == nil {
		return
	}

	// After a win the optimal route is revealed for comparison.
	var trail []maze.Position
	if v.Phase == session.PhaseGameOver {
		trail = maze.ShortestPath(v.Grid, maze.Start, v.Exit)
	}

	mazeArea, stats, wide := playLayout(s.Width(), s.Height())
	drawMaze(s, mazeArea, v, f.display, trail)
	if wide {
		drawSidebar(s, stats, f)
	} else {
		drawStatusLine(s, stats, f)
	}

	switch v.Phase {
	case session.PhasePaused:
		drawPauseOverlay(s, mazeArea)
	case session.PhaseGameOver:
		drawGameOver(s, mazeArea, f)
	}
}

// drawMaze draws the visible part of the grid, each cell CellWidth columns
// wide. Grids larger than the area scroll to keep the player in view; smaller
// grids are centered. Floor cells on trail are marked.
func drawMaze(s *core.Screen, area core.Rect, v session.View, d config.DisplayConfig, trail []maze.Position) {
	g := v.Grid
	cw := max(d.CellWidth, 1)
	visCols, visRows := area.W/cw, area.H
	if visCols <= 0 || visRows <= 0 {
		return
	}

	offX := core.ScrollOffset(g.Width(), visCols, v.Player.X)
	offY := core.ScrollOffset(g.Height(), visRows, v.Player.Y)
	cols, rows := min(g.Width(), visCols), min(g.Height(), visRows)
	originX := area.X + (area.W-cols*cw)/2
	originY := area.Y + (area.H-rows)/2

	wall, floor := glyph(d.Wall, '#'), glyph(d.Floor, ' ')
	start, exit, player := glyph(d.Start, 'S'), glyph(d.Exit, 'E'), glyph(d.Player, '@')

	onTrail := make(map[maze.Position]bool, len(trail))
	for _, p := range trail {
		onTrail[p] = true
	}

	for ry := range rows {
		for rx := range cols {
			p := maze.Position{X: offX + rx, Y: offY + ry}
			sx, sy := originX+rx*cw, originY+ry

			if p == v.Player {
				s.Set(sx, sy, player, core.ColorPlayer)
				for i := 1; i < cw; i++ {
					s.Set(sx+i, sy, floor, core.ColorFloor)
				}
				continue
			}

			r, c := floor, core.ColorFloor
			switch {
			case g.At(p) == maze.Wall:
				r, c = wall, core.ColorWall
			case p == v.Exit:
				r, c = exit, core.ColorExit
			case p == maze.Start:
				r, c = start, core.ColorStart
			case onTrail[p]:
				r, c = '·', core.ColorTrail
			}
			for i := range cw {
				s.Set(sx+i, sy, r, c)
			}
		}
	}
}

func drawSidebar(s *core.Screen, area core.Rect, f frame) {
	v := f.view
	s.DrawPanel(area, "Maze Escape", core.ColorBorder, core.ColorTitle)

	x, y := area.X+2, area.Y+2
	line := func(label, value string, c core.Color) {
		s.DrawText(x, y, label, core.ColorMuted)
		s.DrawText(x+11, y, value, c)
		y++
	}

	line("Difficulty", v.Difficulty.Label, core.ColorAccent)
	line("Maze", fmt.Sprintf("%d×%d", v.Grid.Width(), v.Grid.Height()), core.ColorText)
	line("Time", formatElapsed(v.Elapsed), timeColor(v.Phase))
	line("Moves", fmt.Sprintf("%d", v.Moves), core.ColorText)
	if v.Phase == session.PhaseGameOver {
		line("Score", fmt.Sprintf("%d", v.Score), core.ColorTitle)
	} else {
		line("Score", "-", core.ColorMuted)
	}
	if best, ok := f.best[v.Difficulty.Level]; ok {
		line("Best", fmt.Sprintf("%d", best), core.ColorText)
	}
	line("Seed", fmt.Sprintf("%d", v.Seed), core.ColorMuted)

	y++
	s.DrawText(x, y, "Controls", core.ColorText)
	y++
	for _, c := range []string{"arrows/wasd  move", "p  pause", "r  restart", "esc  menu"} {
		s.DrawText(x+1, y, c, core.ColorMuted)
		y++
	}

	y++
	d := f.display
	s.Set(x+1, y, glyph(d.Player, '@'), core.ColorPlayer)
	s.DrawText(x+3, y, "you", core.ColorMuted)
	s.Set(x+8, y, glyph(d.Start, 'S'), core.ColorStart)
	s.DrawText(x+10, y, "start", core.ColorMuted)
	s.Set(x+16, y, glyph(d.Exit, 'E'), core.ColorExit)
	s.DrawText(x+18, y, "exit", core.ColorMuted)
}

func drawStatusLine(s *core.Screen, area core.Rect, f frame) {
	v := f.view
	status := fmt.Sprintf(" %s  %s  moves %d", v.Difficulty.Label, formatElapsed(v.Elapsed), v.Moves)
	if v.Phase == session.PhaseGameOver {
		status += fmt.Sprintf("  score %d", v.Score)
	}
	s.FillRect(area, ' ', core.ColorSelected)
	s.DrawText(area.X, area.Y, status, core.ColorSelected)
}

// timeColor flags the stopped clock while paused.
func timeColor(p session.Phase) core.Color {
	if p == session.PhasePaused {
		return core.ColorWarning
	}
	return core.ColorText
}

func drawPauseOverlay(s *core.Screen, area core.Rect) {
	box := area.Centered(min(30, area.W), min(7, area.H))
	s.DrawPanel(box, "Paused", core.ColorBorder, core.ColorTitle)
	drawCentered(s, box, box.Y+2, "The clock is stopped", core.ColorText)
	drawCentered(s, box, box.Y+4, "P resume  R restart  ESC menu", core.ColorAccent)
}

func drawGameOver(s *core.Screen, area core.Rect, f frame) {
	v := f.view
	box := area.Centered(min(36, area.W), min(13, area.H))
	s.DrawPanel(box, "Escaped!", core.ColorBorder, core.ColorTitle)

	rows := []struct {
		label, value string
	}{
		{"Difficulty", v.Difficulty.Label},
		{"Time", formatElapsed(v.Elapsed)},
		{"Moves", fmt.Sprintf("%d", v.Moves)},
		{"Shortest path", fmt.Sprintf("%d", v.ShortestPath)},
		{"Score", fmt.Sprintf("%d", v.Score)},
	}
	if f.rank > 0 {
		rows = append(rows, struct{ label, value string }{"Rank", fmt.Sprintf("#%d", f.rank)})
	}

	y := box.Y + 2
	for _, r := range rows {
		s.DrawText(box.X+4, y, r.label, core.ColorMuted)
		s.DrawText(box.X+20, y, r.value, core.ColorText)
		y++
	}
	drawCentered(s, box, box.Bottom()-2, "R play again  ESC menu", core.ColorAccent)
}

// drawCentered writes text centered horizontally inside area on row y.
func drawCentered(s *core.Screen, area core.Rect, y int, text string, c core.Color) {
	x := area.X + (area.W-utf8.RuneCountInString(text))/2
	s.DrawText(max(x, area.X), y, text, c)
}

// glyph returns the first rune of a display setting.
func glyph(setting string, fallback rune) rune {
	r, size := utf8.DecodeRuneInString(setting)
	if size == 0 || r == utf8.RuneError {
		return fallback
	}
	return r
}

func formatElapsed(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}
