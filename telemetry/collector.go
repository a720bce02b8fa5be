package telemetry

import "maps"

// Collector accumulates fire and despawn events within time windows and
// produces WindowStats.
type Collector struct {
	windowDurationSec   float64
	windowDurationTicks int32
	dt                  float64

	// Current window tracking
	windowStartTick int32

	// Event counters for current window
	shots    map[string]int
	despawns int
}

// NewCollector creates a new stats collector.
// windowDurationSec: how long each stats window lasts in simulation seconds
// dt: seconds per tick (used for tick-to-time conversion)
func NewCollector(windowDurationSec, dt float64) *Collector {
	ticksPerWindow := int32(windowDurationSec / dt)
	if ticksPerWindow < 1 {
		ticksPerWindow = 1
	}

	return &Collector{
		windowDurationSec:   windowDurationSec,
		windowDurationTicks: ticksPerWindow,
		dt:                  dt,
		shots:               make(map[string]int),
	}
}

// RecordShot records a projectile fired by the named ship.
func (c *Collector) RecordShot(owner string) {
	c.shots[owner]++
}

// RecordDespawn records a projectile leaving the arena.
func (c *Collector) RecordDespawn() {
	c.despawns++
}

// ShouldFlush returns true if enough ticks have passed to flush the window.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowDurationTicks
}

// Flush produces a WindowStats and resets counters for the next window.
// projectiles is the live projectile count at the end of the window and
// shipSpeeds holds the per-tick speed of every ship.
func (c *Collector) Flush(currentTick int32, projectiles int, shipSpeeds []float64) WindowStats {
	var total int
	for _, n := range c.shots {
		total += n
	}

	elapsed := float64(currentTick-c.windowStartTick) * c.dt
	var shotsPerSec float64
	if elapsed > 0 {
		shotsPerSec = float64(total) / elapsed
	}

	mean, p50, p90, maxSpeed := ComputeSpeedStats(shipSpeeds)

	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,

		Ships:       len(shipSpeeds),
		Projectiles: projectiles,

		Shots:       total,
		ShotsByShip: maps.Clone(c.shots),
		ShotsPerSec: shotsPerSec,
		Despawns:    c.despawns,

		SpeedMean: mean,
		SpeedP50:  p50,
		SpeedP90:  p90,
		SpeedMax:  maxSpeed,
	}

	// Reset for next window
	c.windowStartTick = currentTick
	clear(c.shots)
	c.despawns = 0

	return stats
}

// Reset discards the current window and restarts counting at tick.
func (c *Collector) Reset(tick int32) {
	c.windowStartTick = tick
	clear(c.shots)
	c.despawns = 0
}

// WindowDurationTicks returns the number of ticks per window.
func (c *Collector) WindowDurationTicks() int32 {
	return c.windowDurationTicks
}
