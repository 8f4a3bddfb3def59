package tui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-blit/internal/core"
	"github.com/vovakirdan/tui-blit/internal/engine"
	"github.com/vovakirdan/tui-blit/internal/registry"
	"github.com/vovakirdan/tui-blit/internal/storage"
)

var statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

// Model is the Bubble Tea model driving one scene through the render
// loop. The terminal supplies the tick cadence; the model never renders
// outside a tick.
type Model struct {
	scene       registry.Scene
	surface     *Surface
	loop        *engine.Loop
	store       *storage.Store
	config      core.SceneConfig
	keys        KeyMap
	help        help.Model
	tick        int
	paused      bool
	quitting    bool
	runSaved    bool
	fixedCanvas bool
	err         error
}

// NewModel creates a model for the given scene. The config's Width and
// Height are in pixels; callers size them from the terminal with
// PixelSize.
func NewModel(scene registry.Scene, store *storage.Store, cfg core.SceneConfig) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	surface := NewSurface(cfg.Width, cfg.Height)
	scene.Reset(cfg)

	m := Model{
		scene:       scene,
		surface:     surface,
		loop:        engine.New(surface, nil),
		store:       store,
		config:      cfg,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		fixedCanvas: cfg.FixedSize,
	}

	// Start here so a bad canvas size surfaces through Run instead of
	// silently quitting the program
	if err := m.loop.Start(); err != nil {
		m.err = err
	}
	return m
}

// PixelSize converts a terminal size in cells to the pixel dimensions a
// scene renders at. One row is reserved for the status line; each
// remaining row shows two pixel rows.
func PixelSize(cols, rows int) (int, int) {
	w := core.Max(cols, 1)
	h := core.Max(rows-1, 1) * 2
	return w, h
}

// Err returns the error that stopped the session, if any.
func (m Model) Err() error {
	return m.err
}

// Init starts the tick schedule, or quits immediately if the loop
// failed to start.
func (m Model) Init() tea.Cmd {
	if m.err != nil {
		return tea.Quit
	}
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.saveRun()
		m.loop.Stop()
		m.surface.Close()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Pause):
		m.paused = !m.paused

	case key.Matches(msg, m.keys.Restart):
		m.config.Seed = time.Now().UnixNano()
		m.scene.Reset(m.config)
		m.tick = 0

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// handleResize rebuilds the surface and loop for the new terminal size.
// A stopped loop never restarts, so a fresh one replaces it.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if m.fixedCanvas {
		// The canvas size came from config; it wins over the terminal
		return m, nil
	}

	w, h := PixelSize(msg.Width, msg.Height)
	if sw, sh := m.surface.Size(); sw == w && sh == h {
		return m, nil
	}

	m.loop.Stop()
	m.surface.Close()

	m.config.Width = w
	m.config.Height = h
	m.surface = NewSurface(w, h)
	m.loop = engine.New(m.surface, nil)
	m.scene.Reset(m.config)
	m.tick = 0

	if err := m.loop.Start(); err != nil {
		m.err = err
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleTick runs one render tick and re-arms the timer.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.loop.State() != engine.StateRunning {
		return m, nil
	}
	if m.paused {
		return m, tickCmd(m.config.TickRate)
	}

	frame := m.scene.Step(m.tick)
	m.tick++

	if err := m.loop.Tick(frame); err != nil {
		var perr *engine.PresentationError
		if errors.As(err, &perr) || errors.Is(err, engine.ErrNotRunning) {
			// Unrecoverable: the loop has stopped itself
			m.err = err
			m.saveRun()
			m.quitting = true
			return m, tea.Quit
		}
		// Scene produced an invalid blit: a bug worth surfacing, not
		// worth killing the terminal over. Skip the frame.
		m.err = err
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun persists the run stats once per session.
func (m *Model) saveRun() {
	if m.store == nil || m.runSaved {
		return
	}
	stats := m.loop.Stats()
	if stats.Frames == 0 {
		return
	}

	avgFPS := 0.0
	if secs := stats.Elapsed.Seconds(); secs > 0 {
		avgFPS = float64(stats.Frames) / secs
	}
	//nolint:errcheck // Best-effort save, shutdown continues regardless
	m.store.SaveRun(m.scene.ID(), stats.Frames, avgFPS, stats.Elapsed)
	m.runSaved = true
}

// View renders the last presented frame plus a one-line status bar.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	status := m.scene.Title()
	if m.paused {
		status += " · paused"
	} else {
		stats := m.loop.Stats()
		status += "  " + statusStyle.Render(fmt.Sprintf("%d fps · %d frames", stats.FPS, stats.Frames))
	}
	status += "  " + m.help.View(m.keys)

	return m.surface.Frame() + "\n" + status
}

// Run starts the Bubble Tea program for a scene and blocks until exit.
func Run(scene registry.Scene, store *storage.Store, cfg core.SceneConfig) error {
	model := NewModel(scene, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(Model); ok && m.err != nil {
		return m.err
	}
	return nil
}
