// Package config provides YAML-based renderer configuration loading.
package config

import (
	"fmt"

	"github.com/vovakirdan/tui-blit/internal/core"
)

// RendererConfig contains all tunable rendering parameters.
type RendererConfig struct {
	Canvas CanvasConfig `yaml:"canvas"`
	Loop   LoopConfig   `yaml:"loop"`
}

// CanvasConfig defines the frame buffer shape and base color.
type CanvasConfig struct {
	// Width and Height are in pixels. 0 means size to the terminal.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Background is a "#RRGGBB" hex color filling the canvas around
	// content that does not cover it, such as a viewed image.
	Background string `yaml:"background"`
}

// LoopConfig defines render loop timing.
type LoopConfig struct {
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// Validate checks the config for values the engine would reject.
func (c RendererConfig) Validate() error {
	if c.Canvas.Width < 0 || c.Canvas.Height < 0 {
		return fmt.Errorf("config: negative canvas dimensions %dx%d", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Loop.TickRate <= 0 {
		return fmt.Errorf("config: nonpositive tick rate %d", c.Loop.TickRate)
	}
	if c.Canvas.Background != "" {
		if _, err := core.ParseHex(c.Canvas.Background); err != nil {
			return fmt.Errorf("config: invalid background color: %w", err)
		}
	}
	return nil
}

// BackgroundPixel returns the parsed background color, or black if unset.
func (c RendererConfig) BackgroundPixel() core.Pixel {
	if c.Canvas.Background == "" {
		return core.Black
	}
	p, err := core.ParseHex(c.Canvas.Background)
	if err != nil {
		return core.Black
	}
	return p
}
