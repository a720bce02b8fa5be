// Package game hosts the simulation in a raylib window: it feeds keyboard
// state into fixed steps, then draws the arena and HUD every frame.
package game

import (
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/laserscape/camera"
	"github.com/pthm-cable/laserscape/config"
	"github.com/pthm-cable/laserscape/sim"
	"github.com/pthm-cable/laserscape/systems"
	"github.com/pthm-cable/laserscape/telemetry"
	"github.com/pthm-cable/laserscape/ui"
)

// Options configures the game.
type Options struct {
	LogStats      bool                        // log window and perf stats via slog
	OutputDir     string                      // CSV output directory (empty = disabled)
	StatsCallback func(telemetry.WindowStats) // called on every flushed window
}

// Game holds the complete game state.
type Game struct {
	sim    *sim.Simulation
	camera *camera.Camera

	// Fixed-step clock
	accumulator time.Duration
	lastFrame   time.Time

	// UI
	hud           *ui.HUD
	shipPanel     *ui.ShipPanel
	perfPanel     *ui.PerfPanel
	controlsPanel *ui.ControlsPanel
	overlays      *ui.OverlayRegistry
	registry      *systems.SystemRegistry
	perf          *PerfStats

	// State
	paused       bool
	logStats     bool
	lastFrameLog int32

	// Window dimensions
	width, height float32
}

// NewGameWithOptions creates a new game. The raylib window must already be
// open.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	s, err := sim.New(cfg, sim.Options{
		LogStats:      opts.LogStats,
		OutputDir:     opts.OutputDir,
		StatsCallback: opts.StatsCallback,
	})
	if err != nil {
		return nil, err
	}

	g := &Game{
		sim:           s,
		camera:        camera.New(float64(cfg.Screen.Width), float64(cfg.Screen.Height)),
		hud:           ui.NewHUD(),
		shipPanel:     ui.NewShipPanel(260),
		perfPanel:     ui.NewPerfPanel(int32(cfg.Screen.Width)-280, 50),
		controlsPanel: ui.NewControlsPanel(10, 60, 280),
		overlays:      ui.NewOverlayRegistry(),
		registry:      systems.NewSystemRegistry(),
		perf:          NewPerfStats(),
		logStats:      opts.LogStats,
		width:         cfg.Derived.ScreenW32,
		height:        cfg.Derived.ScreenH32,
	}
	g.overlays.SetEnabled(ui.OverlayControls, true)
	return g, nil
}

// Update handles input and runs as many fixed steps as the elapsed frame
// time allows, capped at max_steps_per_frame.
func (g *Game) Update() {
	start := time.Now()
	defer func() { g.perf.Record("update", time.Since(start)) }()

	g.handleInput()

	now := time.Now()
	var frame time.Duration
	if !g.lastFrame.IsZero() {
		frame = now.Sub(g.lastFrame)
	}
	g.lastFrame = now
	g.sim.Perf().RecordFrame()

	if g.paused {
		return
	}

	cfg := g.sim.Config()
	step := cfg.Derived.Step
	maxSteps := cfg.Physics.MaxStepsPerFrame

	g.accumulator += frame
	keys := rlSource{}
	steps := 0
	for g.accumulator >= step && steps < maxSteps {
		g.sim.Step(keys)
		g.accumulator -= step
		steps++
	}

	// Drop whole steps we could not catch up on
	if g.accumulator >= step {
		g.accumulator %= step
	}

	if g.logStats && g.sim.Tick()-g.lastFrameLog >= cfg.Derived.TicksPerStats {
		g.lastFrameLog = g.sim.Tick()
		g.logFrameStats()
	}
}

// Draw renders the game.
func (g *Game) Draw() {
	start := time.Now()

	rl.BeginDrawing()
	rl.ClearBackground(rl.Color{R: 8, G: 10, B: 18, A: 255})

	g.drawArena()
	g.drawProjectiles()
	g.drawShips()
	g.drawOverlays()

	g.drawUI()

	rl.EndDrawing()

	g.perf.Record("draw", time.Since(start))
}

// drawUI renders the HUD and any enabled panels.
func (g *Game) drawUI() {
	screenW := int32(g.width)
	screenH := int32(g.height)
	cfg := g.sim.Config()

	g.hud.Draw(ui.HUDData{
		Title:        cfg.Screen.Title,
		Tick:         g.sim.Tick(),
		FPS:          rl.GetFPS(),
		Projectiles:  g.sim.ProjectileCount(),
		Paused:       g.paused,
		ScreenWidth:  screenW,
		ScreenHeight: screenH,
	})
	if g.hud.PauseButton(screenW, g.paused) {
		g.paused = !g.paused
	}

	g.shipPanel.Draw(g.sim.Ships(), screenH)

	if g.overlays.IsEnabled(ui.OverlayControls) {
		g.controlsPanel.Draw(cfg.Ships, g.overlays)
	}
	if g.overlays.IsEnabled(ui.OverlayPerf) {
		g.perfPanel.SetPosition(screenW-280, 50)
		g.perfPanel.Draw(ui.PerfPanelData{
			Stats:      g.sim.Perf().Stats(),
			FrameTimes: g.perf.Snapshot(),
			Registry:   g.registry,
		})
	}

	g.hud.DrawControls(screenH, "F1: Controls | P: Pause | R: Reset | Wheel/+/-: Zoom | Home: View | F11: Fullscreen")
}

// Unload releases all resources.
func (g *Game) Unload() {
	if err := g.sim.Close(); err != nil {
		logCloseError(err)
	}
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.sim.Tick()
}
