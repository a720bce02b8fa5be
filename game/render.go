package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/laserscape/components"
	"github.com/pthm-cable/laserscape/config"
	"github.com/pthm-cable/laserscape/sim"
	"github.com/pthm-cable/laserscape/ui"
)

// shipSize is the nose-to-center length of a ship at scale 1.
const shipSize = 120.0

var (
	arenaColor      = rl.Color{R: 40, G: 48, B: 64, A: 255}
	despawnColor    = rl.Color{R: 90, G: 40, B: 40, A: 255}
	projectileColor = rl.Color{R: 255, G: 240, B: 160, A: 255}
	velocityColor   = rl.Color{R: 120, G: 220, B: 255, A: 255}
)

// toScreen maps world coordinates (origin at the arena center, +Y up) to
// screen pixels through the camera.
func (g *Game) toScreen(p r3.Vec) rl.Vector2 {
	x, y := g.camera.WorldToScreen(p.X, p.Y)
	return rl.Vector2{X: x, Y: y}
}

// drawArena outlines the ship arena.
func (g *Game) drawArena() {
	cfg := g.sim.Config()
	b := components.NewBounds(cfg.Derived.ArenaWidth, cfg.Derived.ArenaHeight)
	g.drawBounds(b, arenaColor)
}

// drawBounds outlines a world-space rectangle.
func (g *Game) drawBounds(b components.Bounds, color rl.Color) {
	topLeft := g.toScreen(r3.Vec{X: b.MinX, Y: b.MaxY})
	rl.DrawRectangleLinesEx(rl.Rectangle{
		X:      topLeft.X,
		Y:      topLeft.Y,
		Width:  float32(b.Width() * g.camera.Zoom),
		Height: float32(b.Height() * g.camera.Zoom),
	}, 1, color)
}

// drawShips renders each ship as a triangle pointing along its heading.
func (g *Game) drawShips() {
	for _, ship := range g.sim.Ships() {
		tr := ship.Transform
		r := shipSize * tr.Scale

		nose := g.toScreen(tr.ToWorld(r3.Vec{Y: r}))
		left := g.toScreen(tr.ToWorld(r3.Vec{X: -0.6 * r, Y: -0.7 * r}))
		right := g.toScreen(tr.ToWorld(r3.Vec{X: 0.6 * r, Y: -0.7 * r}))

		rl.DrawTriangle(nose, left, right, ui.ShipColor(ship.Color))
		rl.DrawTriangleLines(nose, left, right, rl.White)
	}
}

// drawProjectiles renders each projectile as a short line along its heading.
func (g *Game) drawProjectiles() {
	length := g.sim.Config().Projectile.Length
	g.sim.EachProjectile(func(tr components.Transform) {
		if !g.camera.IsVisible(tr.Position.X, tr.Position.Y, length) {
			return
		}
		tail := r3.Sub(tr.Position, r3.Scale(length, tr.Heading()))
		rl.DrawLineEx(g.toScreen(tail), g.toScreen(tr.Position), 2, projectileColor)
	})
}

// drawOverlays renders the enabled world-space debug overlays.
func (g *Game) drawOverlays() {
	cfg := g.sim.Config()

	if g.overlays.IsEnabled(ui.OverlayArena) {
		b := components.NewBounds(cfg.Derived.ArenaWidth, cfg.Derived.ArenaHeight)
		g.drawBounds(b, rl.SkyBlue)
	}
	if g.overlays.IsEnabled(ui.OverlayDespawn) {
		d := components.NewDespawnBounds(cfg.Arena.DespawnWidth, cfg.Arena.DespawnHeight)
		g.drawBounds(d.Bounds, despawnColor)
	}

	headings := g.overlays.IsEnabled(ui.OverlayHeadings)
	mounts := g.overlays.IsEnabled(ui.OverlayMounts)
	if !headings && !mounts {
		return
	}

	ships := g.sim.Ships()
	for i := range ships {
		if headings {
			g.drawHeading(ships[i])
		}
		if mounts {
			g.drawMounts(ships[i], shipConfig(cfg, ships[i].Name))
		}
	}
}

// drawHeading draws the heading and a scaled velocity vector for a ship.
func (g *Game) drawHeading(ship sim.ShipView) {
	tr := ship.Transform
	center := g.toScreen(tr.Position)
	nose := g.toScreen(r3.Add(tr.Position, r3.Scale(shipSize*tr.Scale*2, tr.Heading())))
	rl.DrawLineV(center, nose, rl.Gray)

	if ship.Speed > 0 {
		// Velocity is per tick; draw ten ticks of travel
		drift := r3.Add(tr.Position, r3.Scale(10, ship.Velocity))
		rl.DrawLineV(center, g.toScreen(drift), velocityColor)
	}
}

// drawMounts marks where each weapon spawns its projectiles.
func (g *Game) drawMounts(ship sim.ShipView, sc *config.ShipConfig) {
	if sc == nil {
		return
	}
	for i, wc := range sc.Weapons {
		p := g.toScreen(ship.Transform.ToWorld(wc.Offset.R3()))
		color := rl.Orange
		if i < len(ship.Cooldowns) && ship.Cooldowns[i].Ready {
			color = rl.Green
		}
		rl.DrawCircleV(p, 3, color)
	}
}

// shipConfig finds the config entry for the named ship.
func shipConfig(cfg *config.Config, name string) *config.ShipConfig {
	for i := range cfg.Ships {
		if cfg.Ships[i].Name == name {
			return &cfg.Ships[i]
		}
	}
	return nil
}
