package sim

import (
	"log/slog"

	"gonum.org/v1/gonum/spatial/r3"
)

// flushTelemetry checks if the stats window should be flushed and emits it.
func (s *Simulation) flushTelemetry() {
	if !s.collector.ShouldFlush(s.tick) {
		return
	}

	speeds := s.sampleShipSpeeds()
	stats := s.collector.Flush(s.tick, s.ProjectileCount(), speeds)
	perfStats := s.perfCollector.Stats()

	if s.statsCallback != nil {
		s.statsCallback(stats)
	}

	if s.logStats {
		stats.LogStats()
		perfStats.LogStats()
	}

	if s.outputManager != nil {
		if err := s.outputManager.WriteTelemetry(stats); err != nil {
			slog.Error("failed to write telemetry", "error", err)
		}
		if err := s.outputManager.WritePerf(perfStats, stats.WindowEndTick); err != nil {
			slog.Error("failed to write perf", "error", err)
		}
	}
}

// sampleShipSpeeds collects the current speed of every ship.
func (s *Simulation) sampleShipSpeeds() []float64 {
	var speeds []float64
	query := s.shipFilter.Query()
	for query.Next() {
		_, _, vel, _ := query.Get()
		speeds = append(speeds, r3.Norm(vel.Vec))
	}
	return speeds
}
