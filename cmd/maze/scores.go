package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/maze-escape/internal/platform/tui"
	"github.com/vovakirdan/maze-escape/internal/session"
	"github.com/vovakirdan/maze-escape/internal/storage"
)

var (
	flagScoresPlayer string
	flagScoresLimit  int
	flagScoresTUI    bool
	flagScoresClear  bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores [difficulty]",
	Short: "Show high scores",
	Long: `Display the best runs per difficulty, or of one difficulty when given.

Examples:
  maze-escape scores
  maze-escape scores hard
  maze-escape scores --player alice
  maze-escape scores --tui
  maze-escape scores medium --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().StringVar(&flagScoresPlayer, "player", "", "Show the latest runs of one player")
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 0, "Rows per difficulty (default: scores.limit from config)")
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Browse scores interactively")
	scoresCmd.Flags().BoolVar(&flagScoresClear, "clear", false, "Delete the runs of the difficulty (all runs if none given)")
}

func runScores(_ *cobra.Command, args []string) {
	cfg := mustLoadConfig()
	levels, err := cfg.SessionDifficulties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Narrow to one difficulty if requested
	selected := -1
	if len(args) == 1 {
		level, err := session.ParseLevel(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			fmt.Fprintln(os.Stderr, "Run 'maze-escape difficulties' to see available difficulties.")
			os.Exit(1)
		}
		for i, d := range levels {
			if d.Level == level {
				selected = i
			}
		}
		if selected < 0 {
			fmt.Fprintf(os.Stderr, "Error: difficulty %q is not configured\n", level)
			os.Exit(1)
		}
	}

	limit := flagScoresLimit
	if limit <= 0 {
		limit = cfg.Scores.Limit
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	switch {
	case flagScoresClear:
		err = clearScores(store, levels, selected)
	case flagScoresTUI:
		err = browseScores(store, levels, max(selected, 0), limit)
	case flagScoresPlayer != "":
		err = printPlayerRuns(store, flagScoresPlayer, limit)
	case selected >= 0:
		err = printTopRuns(store, levels[selected], limit)
	default:
		for i, d := range levels {
			if i > 0 {
				fmt.Println()
			}
			if err = printTopRuns(store, d, limit); err != nil {
				break
			}
		}
	}

	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func clearScores(store *storage.Store, levels []session.Difficulty, selected int) error {
	difficulty, what := "", "all difficulties"
	if selected >= 0 {
		difficulty = levels[selected].Level.String()
		what = levels[selected].Label
	}

	n, err := store.ClearRuns(difficulty)
	if err != nil {
		return err
	}
	fmt.Printf("Deleted %d run(s) from %s.\n", n, what)
	return nil
}

func browseScores(store *storage.Store, levels []session.Difficulty, start, limit int) error {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return tui.RunScoreboard(store, levels, start, limit, width, height)
}

func printTopRuns(store *storage.Store, d session.Difficulty, limit int) error {
	runs, err := store.TopRuns(d.Level.String(), limit)
	if err != nil {
		return err
	}

	fmt.Printf("High Scores - %s (%d×%d)\n", d.Label, d.Size, d.Size)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No scores recorded yet.")
		return nil
	}

	printRunTable(runs, false)

	stats, err := store.Stats(d.Level.String())
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Printf("Runs: %d  Best: %d  Average: %.0f  Fastest: %s  Fewest moves: %d\n",
		stats.Runs, stats.HighScore, stats.AvgScore, formatDuration(stats.BestTime), stats.FewestMoves)
	return nil
}

func printPlayerRuns(store *storage.Store, player string, limit int) error {
	runs, err := store.PlayerRuns(player, limit)
	if err != nil {
		return err
	}

	fmt.Printf("Latest runs - %s\n", player)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		return nil
	}
	printRunTable(runs, true)
	return nil
}

func printRunTable(runs []storage.Run, withDifficulty bool) {
	first := "Rank"
	if withDifficulty {
		first = "Level"
	}

	// Print header
	fmt.Printf("  %-6s  %-6s  %-6s  %-8s  %-12s  %s\n", first, "Score", "Moves", "Time", "Player", "Date")
	fmt.Printf("  %-6s  %-6s  %-6s  %-8s  %-12s  %s\n", "----", "-----", "-----", "----", "------", "----")

	for i, r := range runs {
		lead := fmt.Sprintf("#%d", i+1)
		if withDifficulty {
			lead = r.Difficulty
		}
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Printf("  %-6s  %-6d  %-6d  %-8s  %-12s  %s\n",
			lead, r.Score, r.Moves, formatDuration(r.Elapsed), player,
			r.CreatedAt.Local().Format("2006-01-02 15:04"))
	}
}

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.1fs", d.Seconds())
}

