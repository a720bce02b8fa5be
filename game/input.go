package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/laserscape/input"
)

// rlSource reads held keys from raylib. input.Key values are raylib key
// codes, so no translation is needed.
type rlSource struct{}

func (rlSource) IsKeyDown(k input.Key) bool {
	return rl.IsKeyDown(int32(k))
}

// keyPressed reports whether k went down this frame.
func keyPressed(k input.Key) bool {
	return rl.IsKeyPressed(int32(k))
}

// handleInput processes window-level keys. Ship keys are read by the
// simulation through rlSource.
func (g *Game) handleInput() {
	g.handleResize()

	if keyPressed(input.KeyF11) {
		rl.ToggleFullscreen()
	}

	if keyPressed(input.KeyP) {
		g.paused = !g.paused
	}

	if keyPressed(input.KeyR) {
		g.sim.Reset()
		g.accumulator = 0
	}

	g.overlays.HandleKeys(keyPressed)
	g.handleCameraInput()
}

// handleCameraInput zooms and pans the view. Arrow keys are left to the
// ships, so panning uses a right-button drag.
func (g *Game) handleCameraInput() {
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		g.camera.ZoomBy(1.0 + float64(wheel)*0.1)
	}
	if keyPressed(input.KeyEqual) {
		g.camera.ZoomBy(1.2)
	}
	if keyPressed(input.KeyMinus) {
		g.camera.ZoomBy(1 / 1.2)
	}

	if rl.IsMouseButtonDown(rl.MouseButtonRight) {
		delta := rl.GetMouseDelta()
		g.camera.Pan(-delta.X, -delta.Y)
	}

	if keyPressed(input.KeyHome) {
		g.camera.Reset()
	}
}

// handleResize keeps the cached window size in sync.
func (g *Game) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	g.width = float32(rl.GetScreenWidth())
	g.height = float32(rl.GetScreenHeight())
	g.camera.Resize(float64(g.width), float64(g.height))
}
