// maze-escape is a terminal maze game: walk from the top-left start to the
// bottom-right exit in as little time and as few moves as you can.
//
// Usage:
//
//	maze-escape                      - Play in this terminal (same as play)
//	maze-escape play                 - Play in this terminal
//	maze-escape serve                - Start SSH server for remote play
//	maze-escape scores [difficulty]  - Show high scores
//	maze-escape generate             - Print a maze to stdout
//	maze-escape difficulties         - List the configured difficulties
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible mazes
//	--db <path>         - Set database path (default: ~/.maze-escape/scores.db)
//	--config <path>     - Use a custom maze.yaml
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/maze-escape/internal/config"
	"github.com/vovakirdan/maze-escape/internal/core"
	"github.com/vovakirdan/maze-escape/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfigPath string
	flagLogFile    string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maze-escape",
	Short: "Maze Escape - find the exit of a random maze in your terminal",
	Long: `Maze Escape generates a random perfect maze and drops you at the
top-left corner. Reach the exit at the bottom-right corner as fast as you can
and in as few moves as you can.

Available commands:
  play          - Play in this terminal (default)
  serve         - Start SSH server for remote play
  scores        - View high scores
  generate      - Print a maze without playing it
  difficulties  - List the configured difficulties

Examples:
  maze-escape
  maze-escape --seed 42
  maze-escape serve --ssh :2222
  maze-escape scores hard
  maze-escape generate --size 21 --solution`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", core.DefaultConfig().TickRate, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.maze-escape/scores.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "Path to custom maze.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	playCmd.Flags().AddFlagSet(playFlags())
	rootCmd.Flags().AddFlagSet(playFlags())

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(difficultiesCmd)
}

// mustLoadConfig loads maze.yaml or exits.
func mustLoadConfig() config.GameConfig {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// openStore opens the scores database. Failures are reported and the game
// continues without scores.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		logger.Warn("could not open scores database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}

// newLogger builds the logger for a command. Logs go to --log-file when set,
// otherwise to fallback. The returned func closes the log file.
func newLogger(fallback io.Writer, prefix string) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(strings.ToLower(flagLogLevel))
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q", flagLogLevel)
	}

	out, closeFn := fallback, func() {}
	if flagLogFile != "" {
		if dir := filepath.Dir(flagLogFile); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, nil, fmt.Errorf("cannot create log directory: %w", err)
			}
		}
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}
	if out == nil {
		out = io.Discard
	}

	logger := log.NewWithOptions(out, log.Options{
		Level:           level,
		Prefix:          prefix,
		ReportTimestamp: true,
	})
	return logger, closeFn, nil
}

// mustLogger is newLogger that exits on error.
func mustLogger(fallback io.Writer, prefix string) (*log.Logger, func()) {
	logger, closeFn, err := newLogger(fallback, prefix)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return logger, closeFn
}
