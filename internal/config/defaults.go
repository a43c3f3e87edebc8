package config

import (
	_ "embed"
)

//go:embed defaults/maze.yaml
var defaultMazeYAML []byte

// DefaultYAML returns the embedded default maze.yaml.
func DefaultYAML() []byte {
	return defaultMazeYAML
}

// Default returns the hardcoded configuration. It mirrors defaults/maze.yaml
// and is used when even the embedded file cannot be parsed.
func Default() GameConfig {
	return GameConfig{
		Difficulties: []DifficultyConfig{
			{Level: "easy", Label: "Easy", Size: 15, Bonus: 0},
			{Level: "medium", Label: "Medium", Size: 25, Bonus: 500},
			{Level: "hard", Label: "Hard", Size: 35, Bonus: 1000},
		},
		Scores: ScoresConfig{
			Save:  true,
			Limit: 10,
		},
		Credits: CreditsConfig{
			ScrollEvery: 3,
			Lines: []CreditLine{
				{Text: "MAZE ESCAPE", Style: CreditTitle, Gap: 2},
				{Text: "Thank you for playing!", Style: CreditTitle},
			},
		},
		Display: DisplayConfig{
			CellWidth: 2,
			Wall:      "█",
			Floor:     " ",
			Player:    "●",
			Start:     "░",
			Exit:      "▓",
		},
		Source: "builtin",
	}
}
