package telemetry

import (
	"log/slog"
	"maps"
	"slices"

	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated statistics for a time window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`

	// Entity counts at window end
	Ships       int `csv:"ships"`
	Projectiles int `csv:"projectiles"`

	// Events during window
	Shots       int            `csv:"shots"`
	ShotsByShip map[string]int `csv:"-"`
	ShotsPerSec float64        `csv:"shots_per_sec"`
	Despawns    int            `csv:"despawns"`

	// Ship speed distribution (units per tick, sampled at window end)
	SpeedMean float64 `csv:"speed_mean"`
	SpeedP50  float64 `csv:"speed_p50"`
	SpeedP90  float64 `csv:"speed_p90"`
	SpeedMax  float64 `csv:"speed_max"`
}

// ComputeSpeedStats calculates mean, empirical percentiles and maximum of
// the given speeds. Returns zeros for an empty slice.
func ComputeSpeedStats(values []float64) (mean, p50, p90, maxSpeed float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}

	sorted := slices.Clone(values)
	slices.Sort(sorted)

	mean = stat.Mean(sorted, nil)
	p50 = stat.Quantile(0.5, stat.Empirical, sorted, nil)
	p90 = stat.Quantile(0.9, stat.Empirical, sorted, nil)
	maxSpeed = sorted[len(sorted)-1]

	return mean, p50, p90, maxSpeed
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int("window_start", int(s.WindowStartTick)),
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("ships", s.Ships),
		slog.Int("projectiles", s.Projectiles),
		slog.Int("shots", s.Shots),
		slog.Float64("shots_per_sec", s.ShotsPerSec),
		slog.Int("despawns", s.Despawns),
		slog.Float64("speed_mean", s.SpeedMean),
		slog.Float64("speed_p50", s.SpeedP50),
		slog.Float64("speed_p90", s.SpeedP90),
		slog.Float64("speed_max", s.SpeedMax),
	}
	for _, name := range slices.Sorted(maps.Keys(s.ShotsByShip)) {
		attrs = append(attrs, slog.Int("shots_"+name, s.ShotsByShip[name]))
	}
	return slog.GroupValue(attrs...)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats", "window", s)
}
