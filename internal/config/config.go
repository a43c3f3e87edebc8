// Package config provides YAML-based game configuration for maze-escape:
// difficulty classes, credits text, scoreboard behaviour and display glyphs.
package config

// GameConfig is the root of the maze.yaml document.
type GameConfig struct {
	Difficulties []DifficultyConfig `yaml:"difficulties"`
	Scores       ScoresConfig       `yaml:"scores"`
	Credits      CreditsConfig      `yaml:"credits"`
	Display      DisplayConfig      `yaml:"display"`

	// Source names where the config was loaded from. Not part of the file.
	Source string `yaml:"-"`
}

// DifficultyConfig defines one selectable difficulty class.
type DifficultyConfig struct {
	Level string `yaml:"level"` // "easy", "medium" or "hard"
	Label string `yaml:"label"` // Menu label; defaults to the capitalized level
	Size  int    `yaml:"size"`  // Odd maze edge length, at least 5
	Bonus int    `yaml:"bonus"` // Added to the score on a win
}

// ScoresConfig controls high-score persistence and the scoreboard.
type ScoresConfig struct {
	Save  bool `yaml:"save"`  // Persist won runs
	Limit int  `yaml:"limit"` // Rows shown per difficulty
}

// CreditsConfig defines the scrolling credits screen.
type CreditsConfig struct {
	ScrollEvery int          `yaml:"scroll_every"` // Ticks per one-row scroll step
	Lines       []CreditLine `yaml:"lines"`
}

// CreditLine is one entry of the credits roll.
type CreditLine struct {
	Text  string `yaml:"text"`
	Style string `yaml:"style"` // title, heading, name, role or note
	Gap   int    `yaml:"gap"`   // Blank rows after the line
}

// Credit line styles.
const (
	CreditTitle   = "title"
	CreditHeading = "heading"
	CreditName    = "name"
	CreditRole    = "role"
	CreditNote    = "note"
)

// DisplayConfig holds the glyphs used to draw the maze. Each glyph is a single
// rune; the renderer repeats it across CellWidth columns.
type DisplayConfig struct {
	CellWidth int    `yaml:"cell_width"`
	Wall      string `yaml:"wall"`
	Floor     string `yaml:"floor"`
	Player    string `yaml:"player"`
	Start     string `yaml:"start"`
	Exit      string `yaml:"exit"`
}
