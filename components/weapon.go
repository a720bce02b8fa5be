package components

import (
	"time"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/laserscape/input"
)

// Timer is a one-shot countdown. A fresh timer is not finished.
type Timer struct {
	Duration time.Duration
	Elapsed  time.Duration
}

// NewTimer creates a timer that finishes after d.
func NewTimer(d time.Duration) Timer {
	return Timer{Duration: d}
}

// Tick advances the timer, saturating at Duration.
func (t *Timer) Tick(dt time.Duration) {
	t.Elapsed = min(t.Elapsed+dt, t.Duration)
}

// Finished reports whether the full duration has elapsed.
func (t *Timer) Finished() bool {
	return t.Elapsed >= t.Duration
}

// Remaining returns the time left before the timer finishes.
func (t *Timer) Remaining() time.Duration {
	return t.Duration - t.Elapsed
}

// Fraction returns elapsed/duration in [0, 1]. A zero-length timer is always 1.
func (t *Timer) Fraction() float64 {
	if t.Duration <= 0 {
		return 1
	}
	return float64(t.Elapsed) / float64(t.Duration)
}

// Reset restarts the countdown.
func (t *Timer) Reset() {
	t.Elapsed = 0
}

// Weapon fires projectiles while its trigger is held and the cooldown allows.
type Weapon struct {
	Trigger         input.Key
	Offset          r3.Vec // muzzle position in the owner's local frame
	Cooldown        Timer
	ProjectileSpeed float64 // units per second
}

// Weapons is the ordered weapon list of a ship. Each weapon cools down on its own.
type Weapons struct {
	List []Weapon
}
