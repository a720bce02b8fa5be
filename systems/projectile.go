package systems

import (
	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/laserscape/components"
)

// Despawn describes a projectile removed for leaving its bounds.
type Despawn struct {
	Owner    string
	Position r3.Vec
}

// ProjectileSystem moves projectiles along their heading and removes them
// once they leave their despawn bounds.
type ProjectileSystem struct {
	world   *ecs.World
	moving  *ecs.Filter2[components.ProjectileSpeed, components.Transform]
	bounded *ecs.Filter3[components.DespawnBounds, components.Transform, components.Projectile]

	toRemove []ecs.Entity
	removed  []Despawn
}

// NewProjectileSystem creates a new projectile system.
func NewProjectileSystem(w *ecs.World) *ProjectileSystem {
	return &ProjectileSystem{
		world:   w,
		moving:  ecs.NewFilter2[components.ProjectileSpeed, components.Transform](w),
		bounded: ecs.NewFilter3[components.DespawnBounds, components.Transform, components.Projectile](w),
	}
}

// Move advances every projectile by speed*dt along its heading.
func (s *ProjectileSystem) Move(dt float64) {
	query := s.moving.Query()
	for query.Next() {
		speed, tr := query.Get()
		tr.Position = r3.Add(tr.Position, r3.Scale(speed.Value*dt, tr.Heading()))
	}
}

// DespawnOutside removes projectiles that lie outside their bounds and
// returns what was removed. The slice is reused by the next call.
func (s *ProjectileSystem) DespawnOutside() []Despawn {
	s.toRemove = s.toRemove[:0]
	s.removed = s.removed[:0]

	// First pass: collect (removal must wait for the query to finish)
	query := s.bounded.Query()
	for query.Next() {
		bounds, tr, proj := query.Get()
		if bounds.Outside(tr.Position) {
			s.toRemove = append(s.toRemove, query.Entity())
			s.removed = append(s.removed, Despawn{Owner: proj.Owner, Position: tr.Position})
		}
	}

	// Second pass: remove
	for _, e := range s.toRemove {
		s.world.RemoveEntity(e)
	}
	return s.removed
}
