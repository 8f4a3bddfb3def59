package config

import (
	_ "embed"
)

//go:embed defaults/renderer.yaml
var defaultRendererYAML []byte

// DefaultRendererConfig returns the default renderer configuration.
func DefaultRendererConfig() RendererConfig {
	return RendererConfig{
		Canvas: CanvasConfig{
			Width:      0, // Size to the terminal
			Height:     0,
			Background: "#000000",
		},
		Loop: LoopConfig{
			TickRate: 60,
		},
	}
}
