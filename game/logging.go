package game

import (
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// logCloseError reports a failure to flush telemetry output on shutdown.
func logCloseError(err error) {
	slog.Error("failed to close telemetry output", "error", err)
}

// logFrameStats logs frame-level timings alongside the simulation perf.
func (g *Game) logFrameStats() {
	slog.Info("frame",
		"tick", g.sim.Tick(),
		"fps", rl.GetFPS(),
		"update_us", g.perf.Avg("update").Microseconds(),
		"draw_us", g.perf.Avg("draw").Microseconds(),
		"projectiles", g.sim.ProjectileCount(),
	)
}
