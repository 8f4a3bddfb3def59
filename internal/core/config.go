package core

// SceneConfig contains configuration passed to scenes at initialization.
// Scenes use this to size their content and for deterministic animation.
type SceneConfig struct {
	Width    int   // Frame buffer width in pixels
	Height   int   // Frame buffer height in pixels
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic scenes

	// FixedSize pins Width and Height for the whole run. The platform
	// keeps the configured canvas on terminal resize instead of
	// rebuilding the buffer to the new terminal size.
	FixedSize bool
}

// DefaultSceneConfig returns a SceneConfig with sensible defaults.
func DefaultSceneConfig() SceneConfig {
	return SceneConfig{
		Width:    160,
		Height:   96,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}
