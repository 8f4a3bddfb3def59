package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blit/internal/config"
	"github.com/vovakirdan/tui-blit/internal/core"
	"github.com/vovakirdan/tui-blit/internal/platform/tui"
	"github.com/vovakirdan/tui-blit/internal/registry"
	"github.com/vovakirdan/tui-blit/internal/storage"
)

var flagConfig string

var runCmd = &cobra.Command{
	Use:   "run <scene>",
	Short: "Render a scene",
	Long: `Render the specified scene in the terminal.

Controls:
  P          - Pause
  R          - Restart with a new seed
  ?          - Toggle help
  Q/Ctrl+C   - Quit

Examples:
  blit run bounce
  blit run sprites --seed 42
  blit run cycle --fps 30
  blit run bounce --config ./my-renderer.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runRun,
}

func init() {
	runCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom renderer config YAML")
}

func runRun(cmd *cobra.Command, args []string) {
	sceneID := args[0]

	// Check if scene exists
	if !registry.Exists(sceneID) {
		fmt.Fprintf(os.Stderr, "Error: unknown scene %q\n", sceneID)
		fmt.Fprintln(os.Stderr, "Run 'blit list' to see available scenes.")
		os.Exit(1)
	}

	cfg, err := sceneConfig(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Create scene instance
	scene, err := registry.Create(sceneID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating scene: %v\n", err)
		os.Exit(1)
	}

	// Open run stats storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		// Continue without storage - rendering still works
		store = nil
	}

	runErr := tui.Run(scene, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running scene: %v\n", runErr)
		os.Exit(1)
	}
}

// sceneConfig builds the scene configuration from the renderer config
// file, the terminal size, and command-line flags. Flags win over the
// config file; the config file wins over terminal sizing.
func sceneConfig(cmd *cobra.Command) (core.SceneConfig, error) {
	rc, err := config.LoadRenderer(flagConfig)
	if err != nil {
		return core.SceneConfig{}, err
	}

	// Terminal size as the fallback when the config leaves dimensions 0
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	pw, ph := tui.PixelSize(width, height)

	cfg := core.SceneConfig{
		Width:    pw,
		Height:   ph,
		TickRate: rc.Loop.TickRate,
		Seed:     flagSeed,
	}
	if rc.Canvas.Width > 0 {
		cfg.Width = rc.Canvas.Width
		cfg.FixedSize = true
	}
	if rc.Canvas.Height > 0 {
		cfg.Height = rc.Canvas.Height
		cfg.FixedSize = true
	}
	if cmd.Flags().Changed("fps") {
		cfg.TickRate = flagFPS
	}
	return cfg, nil
}
