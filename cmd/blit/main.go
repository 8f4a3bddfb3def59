// blit is a terminal pixel renderer. It draws RGBA frame buffers as
// half-block cells, two pixels per terminal row, and ships a set of
// demo scenes exercising the sprite compositor.
//
// Usage:
//
//	blit list              - List available scenes
//	blit run <scene>       - Render a scene in the terminal
//	blit view <image>      - Display a PNG/JPEG/GIF/BMP image
//	blit stats [scene]     - Show recorded run statistics
//	blit serve             - Start SSH server for remote viewing
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible scenes
//	--db <path>     - Set database path (default: ~/.tui-blit/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import scenes to register them
	_ "github.com/vovakirdan/tui-blit/internal/scenes/blank"
	_ "github.com/vovakirdan/tui-blit/internal/scenes/bounce"
	_ "github.com/vovakirdan/tui-blit/internal/scenes/cycle"
	_ "github.com/vovakirdan/tui-blit/internal/scenes/sprites"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blit",
	Short: "Render pixel graphics in your terminal",
	Long: `blit renders RGBA pixel buffers in the terminal using half-block
characters, packing two pixels into every cell.

Available commands:
  list     - Show all available scenes
  run      - Render a scene
  view     - Display an image file
  stats    - View recorded run statistics
  serve    - Start SSH server for remote viewing

Examples:
  blit list
  blit run bounce
  blit run sprites --seed 42
  blit view logo.png
  blit serve --ssh :2222
  blit stats bounce`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.tui-blit/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statsCmd)
}
