package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-blit/internal/registry"
	"github.com/vovakirdan/tui-blit/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [scene]",
	Short: "Show recorded run statistics",
	Long: `Display the most recent recorded runs, optionally filtered to one
scene.

Examples:
  blit stats
  blit stats bounce`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	sceneID := ""
	if len(args) == 1 {
		sceneID = args[0]
		if !registry.Exists(sceneID) {
			fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
			fmt.Fprintln(os.Stderr, "Run 'blit list' to see available scenes.")
			os.Exit(1)
		}
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	runs, err := store.RecentRuns(sceneID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	if sceneID != "" {
		fmt.Printf("Recent runs - %s\n", sceneID)
	} else {
		fmt.Println("Recent runs")
	}
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Run 'blit run <scene>' to record the first one.")
		return
	}

	// Print header
	fmt.Printf("  %-10s  %-10s  %-8s  %-10s  %s\n", "Scene", "Frames", "Avg FPS", "Duration", "Date")
	fmt.Printf("  %-10s  %-10s  %-8s  %-10s  %s\n", "-----", "------", "-------", "--------", "----")

	// Print runs
	for _, run := range runs {
		dateStr := run.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-10s  %-10d  %-8.1f  %-10s  %s\n",
			run.SceneID, run.Frames, run.AvgFPS, run.Duration.Round(100*time.Millisecond), dateStr)
	}

	if sceneID != "" {
		longest, err := store.LongestRun(sceneID)
		if err == nil && longest > 0 {
			fmt.Println()
			fmt.Printf("Longest run: %d frames\n", longest)
		}
	}
}
