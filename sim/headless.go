package sim

import (
	"context"
	"log/slog"

	"github.com/pthm-cable/laserscape/input"
)

// RunScript steps the simulation with keys replayed from script until
// maxTicks is reached, the context is cancelled, or, when maxTicks is 0, the
// script ends. A nil script holds no keys. With neither a limit nor a script
// it runs until ctx is done. Returns the final tick.
func (s *Simulation) RunScript(ctx context.Context, script *input.Script, maxTicks int32) int32 {
	limit := maxTicks
	if limit <= 0 && script != nil {
		limit = script.End()
	}

	slog.Info("starting headless simulation",
		"max_ticks", maxTicks,
		"script_end", script.End(),
		"ships", len(s.cfg.Ships),
	)

	for limit <= 0 || s.tick < limit {
		if ctx.Err() != nil {
			slog.Info("headless simulation interrupted", "tick", s.tick)
			return s.tick
		}
		s.Step(script.Keys(s.tick))
	}

	slog.Info("max ticks reached", "tick", s.tick, "projectiles", s.ProjectileCount())
	return s.tick
}
