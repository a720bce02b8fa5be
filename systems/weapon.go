package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/laserscape/components"
	"github.com/pthm-cable/laserscape/input"
)

// Shot describes a projectile spawned by a weapon.
type Shot struct {
	Entity    ecs.Entity
	Owner     string
	Weapon    int
	Offset    r3.Vec // weapon offset in the owner's frame
	Transform components.Transform
	Speed     float64
}

// WeaponSystem ticks weapon cooldowns and fires weapons whose trigger is held.
type WeaponSystem struct {
	armed       *ecs.Filter1[components.Weapons]
	firing      *ecs.Filter3[components.Weapons, components.Transform, components.Ship]
	projectiles *ecs.Map4[components.Transform, components.ProjectileSpeed, components.DespawnBounds, components.Projectile]

	despawn components.DespawnBounds
	scale   float64

	// Shots collected during the query, spawned after it closes.
	pending []Shot
}

// NewWeaponSystem creates a new weapon system. Spawned projectiles get the
// given despawn bounds and render scale.
func NewWeaponSystem(w *ecs.World, despawn components.DespawnBounds, projectileScale float64) *WeaponSystem {
	return &WeaponSystem{
		armed:       ecs.NewFilter1[components.Weapons](w),
		firing:      ecs.NewFilter3[components.Weapons, components.Transform, components.Ship](w),
		projectiles: ecs.NewMap4[components.Transform, components.ProjectileSpeed, components.DespawnBounds, components.Projectile](w),
		despawn:     despawn,
		scale:       projectileScale,
	}
}

// TickTimers advances every cooldown that has not finished yet.
func (s *WeaponSystem) TickTimers(dt time.Duration) {
	query := s.armed.Query()
	for query.Next() {
		weapons := query.Get()
		for i := range weapons.List {
			cd := &weapons.List[i].Cooldown
			if !cd.Finished() {
				cd.Tick(dt)
			}
		}
	}
}

// Fire spawns one projectile for every weapon whose trigger is held and
// whose cooldown has finished, then resets that cooldown. Holding the
// trigger repeats at the cooldown rate.
func (s *WeaponSystem) Fire(keys input.Source) []Shot {
	s.pending = s.pending[:0]

	query := s.firing.Query()
	for query.Next() {
		weapons, tr, ship := query.Get()
		for i := range weapons.List {
			weapon := &weapons.List[i]
			if !keys.IsKeyDown(weapon.Trigger) || !weapon.Cooldown.Finished() {
				continue
			}
			weapon.Cooldown.Reset()
			s.pending = append(s.pending, Shot{
				Owner:  ship.Name,
				Weapon: i,
				Offset: weapon.Offset,
				Transform: components.Transform{
					Position: tr.ToWorld(weapon.Offset),
					Rotation: tr.Rotation,
					Scale:    s.scale,
				},
				Speed: weapon.ProjectileSpeed,
			})
		}
	}

	// The world is locked while a query is open; spawn afterwards.
	for i := range s.pending {
		shot := &s.pending[i]
		speed := components.ProjectileSpeed{Value: shot.Speed}
		bounds := s.despawn
		proj := components.Projectile{Owner: shot.Owner, Weapon: shot.Weapon}
		transform := shot.Transform
		shot.Entity = s.projectiles.NewEntity(&transform, &speed, &bounds, &proj)
	}

	return s.pending
}
