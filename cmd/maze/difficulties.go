package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List the configured difficulties",
	Long:  `Shows the difficulty classes from the active maze.yaml.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func runDifficulties(_ *cobra.Command, _ []string) {
	cfg := mustLoadConfig()
	levels, err := cfg.SessionDifficulties()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Difficulties (config: %s):\n", cfg.Source)
	fmt.Println()

	// Print header
	fmt.Printf("  %-3s  %-8s  %-10s  %-7s  %s\n", "Key", "Level", "Label", "Size", "Bonus")
	fmt.Printf("  %-3s  %-8s  %-10s  %-7s  %s\n", "---", "-----", "-----", "----", "-----")

	for i, d := range levels {
		size := fmt.Sprintf("%d×%d", d.Size, d.Size)
		fmt.Printf("  %-3d  %-8s  %-10s  %-7s  %d\n", i+1, d.Level, d.Label, size, d.Bonus)
	}

	fmt.Println()
	fmt.Println("Run 'maze-escape' and press the key to choose a difficulty.")
}
