package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-blit/internal/assets"
	"github.com/vovakirdan/tui-blit/internal/config"
	"github.com/vovakirdan/tui-blit/internal/core"
	"github.com/vovakirdan/tui-blit/internal/platform/tui"
	"github.com/vovakirdan/tui-blit/internal/scenes/viewer"
)

var flagViewConfig string

var viewCmd = &cobra.Command{
	Use:   "view <image>",
	Short: "Display an image file in the terminal",
	Long: `Load a PNG, JPEG, GIF, or BMP file and render it centered in the
terminal. Transparent pixels composite over a dark background.

Examples:
  blit view logo.png
  blit view photo.jpg`,
	Args: cobra.ExactArgs(1),
	Run:  runView,
}

func init() {
	viewCmd.Flags().StringVar(&flagViewConfig, "config", "", "Path to custom renderer config YAML")
}

func runView(cmd *cobra.Command, args []string) {
	path := args[0]

	img, err := assets.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading image: %v\n", err)
		os.Exit(1)
	}

	rc, err := config.LoadRenderer(flagViewConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	pw, ph := tui.PixelSize(width, height)

	cfg := core.SceneConfig{
		Width:    pw,
		Height:   ph,
		TickRate: flagFPS,
	}

	scene := viewer.New(img, filepath.Base(path), rc.BackgroundPixel())

	// Viewing is not a recorded run, so no store
	if err := tui.Run(scene, nil, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error displaying image: %v\n", err)
		os.Exit(1)
	}
}
