package sim

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/laserscape/components"
	"github.com/pthm-cable/laserscape/input"
)

// CooldownView is a read-only snapshot of one weapon's cooldown.
type CooldownView struct {
	Trigger  input.Key
	Fraction float64 // 0 = just fired, 1 = ready
	Ready    bool
}

// ShipView is a read-only snapshot of a ship for rendering and the HUD.
type ShipView struct {
	Name      string
	Color     uint8
	Transform components.Transform
	Velocity  r3.Vec
	Speed     float64
	Cooldowns []CooldownView
}

// Ships returns a snapshot of every ship, in spawn order.
func (s *Simulation) Ships() []ShipView {
	var views []ShipView
	query := s.shipFilter.Query()
	for query.Next() {
		ship, tr, vel, weapons := query.Get()

		cooldowns := make([]CooldownView, len(weapons.List))
		for i := range weapons.List {
			w := &weapons.List[i]
			cooldowns[i] = CooldownView{
				Trigger:  w.Trigger,
				Fraction: w.Cooldown.Fraction(),
				Ready:    w.Cooldown.Finished(),
			}
		}

		views = append(views, ShipView{
			Name:      ship.Name,
			Color:     ship.Color,
			Transform: *tr,
			Velocity:  vel.Vec,
			Speed:     r3.Norm(vel.Vec),
			Cooldowns: cooldowns,
		})
	}
	return views
}

// EachProjectile calls fn with the transform of every live projectile.
func (s *Simulation) EachProjectile(fn func(tr components.Transform)) {
	query := s.projectileFilter.Query()
	for query.Next() {
		_, tr := query.Get()
		fn(*tr)
	}
}

// ProjectileCount returns the number of live projectiles.
func (s *Simulation) ProjectileCount() int {
	n := 0
	query := s.projectileFilter.Query()
	for query.Next() {
		n++
	}
	return n
}
