package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-escape/internal/core"
	"github.com/vovakirdan/maze-escape/internal/platform/tui"
)

var (
	flagPlayer        string
	flagScreenshotDir string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start the game in this terminal.

Controls:
  1/2/3, ↑/↓     - Choose difficulty (menu)
  Space/Enter    - Start
  Arrows/WASD    - Move
  P              - Pause / resume
  R              - Restart with a new maze
  Esc            - Back to menu
  Tab            - High scores (menu)
  C              - Credits (menu)
  Ctrl+S         - Save a text screenshot
  Q/Ctrl+C       - Quit

Examples:
  maze-escape play
  maze-escape play --seed 42
  maze-escape play --config ./my-maze.yaml --player alice`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

// playFlags is shared by play and the root command.
func playFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("play", pflag.ContinueOnError)
	fs.StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded with your scores")
	fs.StringVar(&flagScreenshotDir, "screenshots", "", "Screenshot directory (default: ~/.maze-escape/screenshots)")
	return fs
}

func runPlay(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()

	// The TUI owns the terminal, so logs only go to --log-file.
	logger, closeLog := mustLogger(nil, "maze")
	defer closeLog()

	// Get terminal size early so the first frame fits
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	logger.Info("starting game", "config", cfg.Source, "seed", flagSeed, "size", fmt.Sprintf("%dx%d", width, height))

	store := openStore(logger)

	runErr := tui.Run(tui.Options{
		Config:        cfg,
		Runtime:       runtime,
		Store:         store,
		Logger:        logger,
		Player:        flagPlayer,
		ScreenshotDir: flagScreenshotDir,
	})

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		logger.Error("game exited", "error", runErr)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		closeLog()
		os.Exit(1)
	}
}
