package sim

import (
	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/laserscape/components"
	"github.com/pthm-cable/laserscape/config"
)

// spawnShips creates one entity per configured ship.
func (s *Simulation) spawnShips() {
	for i := range s.cfg.Ships {
		s.spawnShip(&s.cfg.Ships[i])
	}
}

// spawnShip creates a ship entity at rest with fresh weapon cooldowns.
func (s *Simulation) spawnShip(sc *config.ShipConfig) ecs.Entity {
	tr := components.Transform{
		Position: sc.Spawn.R3(),
		Scale:    sc.Scale,
	}
	tr.RotateZ(sc.Rotation)

	vel := components.Velocity{}
	turn := components.TurnSpeed{}
	thrust := components.Thrust{}
	bounds := components.NewBounds(s.cfg.Derived.ArenaWidth, s.cfg.Derived.ArenaHeight)
	controls := components.MoveControls{
		Up:    sc.Controls.Up,
		Down:  sc.Controls.Down,
		Left:  sc.Controls.Left,
		Right: sc.Controls.Right,
	}

	weapons := components.Weapons{List: make([]components.Weapon, len(sc.Weapons))}
	for i, wc := range sc.Weapons {
		weapons.List[i] = components.Weapon{
			Trigger:         wc.Trigger,
			Offset:          wc.Offset.R3(),
			Cooldown:        components.NewTimer(wc.Cooldown),
			ProjectileSpeed: wc.ProjectileSpeed,
		}
	}

	ship := components.Ship{Name: sc.Name, Color: sc.Color}

	return s.shipMapper.NewEntity(&tr, &vel, &turn, &thrust, &bounds, &controls, &weapons, &ship)
}
