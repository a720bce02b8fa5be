package telemetry

import (
	"log/slog"
	"slices"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/pthm-cable/laserscape/systems"
)

// stepSample is the timing of one fixed step.
type stepSample struct {
	total  time.Duration
	phases map[string]time.Duration
}

// PerfCollector times the phases of each fixed step and keeps the last
// windowSize steps in a ring.
type PerfCollector struct {
	ring   []stepSample
	next   int
	filled int

	// Step in progress
	stepStart  time.Time
	phase      string
	phaseStart time.Time
	phases     map[string]time.Duration

	// Frame timing (graphics mode)
	lastFrame time.Time
	frame     time.Duration
}

// NewPerfCollector creates a collector averaging over the last windowSize
// steps. Non-positive sizes fall back to one second at 60 Hz.
func NewPerfCollector(windowSize int) *PerfCollector {
	if windowSize < 1 {
		windowSize = 60
	}
	return &PerfCollector{ring: make([]stepSample, windowSize)}
}

// StartTick begins timing a new fixed step.
func (p *PerfCollector) StartTick() {
	p.stepStart = time.Now()
	p.phases = make(map[string]time.Duration, len(systems.PhaseOrder))
	p.phase = ""
}

// StartPhase closes the running phase, if any, and starts timing phase.
func (p *PerfCollector) StartPhase(phase string) {
	now := time.Now()
	p.closePhase(now)
	p.phase = phase
	p.phaseStart = now
}

// EndTick closes the last phase and stores the step in the ring.
func (p *PerfCollector) EndTick() {
	now := time.Now()
	p.closePhase(now)

	p.ring[p.next] = stepSample{total: now.Sub(p.stepStart), phases: p.phases}
	p.next = (p.next + 1) % len(p.ring)
	p.filled = min(p.filled+1, len(p.ring))
}

func (p *PerfCollector) closePhase(now time.Time) {
	if p.phase != "" {
		p.phases[p.phase] += now.Sub(p.phaseStart)
	}
}

// RecordFrame marks the start of a rendered frame.
func (p *PerfCollector) RecordFrame() {
	now := time.Now()
	if !p.lastFrame.IsZero() {
		p.frame = now.Sub(p.lastFrame)
	}
	p.lastFrame = now
}

// PerfStats aggregates the steps currently in the window.
type PerfStats struct {
	AvgTickDuration time.Duration
	MinTickDuration time.Duration
	MaxTickDuration time.Duration
	P99TickDuration time.Duration

	// Per-phase mean duration and share of the mean step
	PhaseAvg map[string]time.Duration
	PhasePct map[string]float64

	TicksPerSecond float64

	// Frame timing (graphics mode)
	FrameDuration time.Duration
	FPS           float64
}

// Stats computes aggregates over the window.
func (p *PerfCollector) Stats() PerfStats {
	out := PerfStats{
		PhaseAvg:      make(map[string]time.Duration),
		PhasePct:      make(map[string]float64),
		FrameDuration: p.frame,
	}
	if p.frame > 0 {
		out.FPS = float64(time.Second) / float64(p.frame)
	}
	if p.filled == 0 {
		return out
	}

	totals := make([]float64, p.filled)
	phaseSum := make(map[string]float64)
	for i, s := range p.ring[:p.filled] {
		totals[i] = float64(s.total)
		for phase, d := range s.phases {
			phaseSum[phase] += float64(d)
		}
	}

	mean := stat.Mean(totals, nil)
	out.AvgTickDuration = time.Duration(mean)
	out.MinTickDuration = time.Duration(floats.Min(totals))
	out.MaxTickDuration = time.Duration(floats.Max(totals))

	slices.Sort(totals)
	out.P99TickDuration = time.Duration(stat.Quantile(0.99, stat.Empirical, totals, nil))

	n := float64(p.filled)
	for phase, sum := range phaseSum {
		avg := sum / n
		out.PhaseAvg[phase] = time.Duration(avg)
		if mean > 0 {
			out.PhasePct[phase] = avg / mean * 100
		}
	}
	if mean > 0 {
		out.TicksPerSecond = float64(time.Second) / mean
	}
	return out
}

// LogStats logs the window at info level, phases in step order.
func (s PerfStats) LogStats() {
	attrs := []any{
		"avg_tick_us", s.AvgTickDuration.Microseconds(),
		"p99_tick_us", s.P99TickDuration.Microseconds(),
		"max_tick_us", s.MaxTickDuration.Microseconds(),
		"ticks_per_sec", int(s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, "fps", int(s.FPS))
	}
	for _, phase := range systems.PhaseOrder {
		if pct := s.PhasePct[phase]; pct > 0.1 {
			attrs = append(attrs, phase+"_pct", float64(int(pct*10))/10)
		}
	}
	slog.Info("perf", attrs...)
}

// LogValue implements slog.LogValuer.
func (s PerfStats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Int64("avg_tick_us", s.AvgTickDuration.Microseconds()),
		slog.Int64("min_tick_us", s.MinTickDuration.Microseconds()),
		slog.Int64("max_tick_us", s.MaxTickDuration.Microseconds()),
		slog.Int64("p99_tick_us", s.P99TickDuration.Microseconds()),
		slog.Float64("ticks_per_sec", s.TicksPerSecond),
	}
	if s.FPS > 0 {
		attrs = append(attrs, slog.Float64("fps", s.FPS))
	}
	for _, phase := range systems.PhaseOrder {
		if pct, ok := s.PhasePct[phase]; ok {
			attrs = append(attrs, slog.Float64(phase+"_pct", pct))
		}
	}
	return slog.GroupValue(attrs...)
}

// PerfStatsCSV is one perf.csv row.
type PerfStatsCSV struct {
	WindowEnd         int32   `csv:"window_end"`
	AvgTickUS         int64   `csv:"avg_tick_us"`
	MinTickUS         int64   `csv:"min_tick_us"`
	MaxTickUS         int64   `csv:"max_tick_us"`
	P99TickUS         int64   `csv:"p99_tick_us"`
	TicksPerSec       float64 `csv:"ticks_per_sec"`
	FPS               float64 `csv:"fps"`
	InputPct          float64 `csv:"input_pct"`
	DragPct           float64 `csv:"drag_pct"`
	RotationPct       float64 `csv:"rotation_pct"`
	ThrustPct         float64 `csv:"thrust_pct"`
	BoundsPct         float64 `csv:"bounds_pct"`
	TranslationPct    float64 `csv:"translation_pct"`
	WeaponTimersPct   float64 `csv:"weapon_timers_pct"`
	WeaponFirePct     float64 `csv:"weapon_fire_pct"`
	ProjectileMovePct float64 `csv:"projectile_move_pct"`
	DespawnPct        float64 `csv:"despawn_pct"`
}

// ToCSV flattens the stats into a perf.csv row.
func (s PerfStats) ToCSV(windowEnd int32) PerfStatsCSV {
	pct := s.PhasePct
	return PerfStatsCSV{
		WindowEnd:         windowEnd,
		AvgTickUS:         s.AvgTickDuration.Microseconds(),
		MinTickUS:         s.MinTickDuration.Microseconds(),
		MaxTickUS:         s.MaxTickDuration.Microseconds(),
		P99TickUS:         s.P99TickDuration.Microseconds(),
		TicksPerSec:       s.TicksPerSecond,
		FPS:               s.FPS,
		InputPct:          pct[systems.PhaseInput],
		DragPct:           pct[systems.PhaseDrag],
		RotationPct:       pct[systems.PhaseRotation],
		ThrustPct:         pct[systems.PhaseThrust],
		BoundsPct:         pct[systems.PhaseBounds],
		TranslationPct:    pct[systems.PhaseTranslation],
		WeaponTimersPct:   pct[systems.PhaseWeaponTimers],
		WeaponFirePct:     pct[systems.PhaseWeaponFire],
		ProjectileMovePct: pct[systems.PhaseProjectileMove],
		DespawnPct:        pct[systems.PhaseDespawn],
	}
}
