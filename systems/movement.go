// Package systems contains ECS systems for the shooter.
package systems

import (
	"math"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/laserscape/components"
	"github.com/pthm-cable/laserscape/input"
)

// MovementParams holds the integration constants.
type MovementParams struct {
	DT        float64 // seconds per fixed step
	MoveAccel float64
	TurnAccel float64
	MoveDrag  float64
	TurnDrag  float64
}

// MovementSystem integrates ship motion as a sequence of passes:
// input, drag, rotation, thrust, bounds reflection, translation.
// Rotation runs before thrust so thrust follows the new heading, and
// reflection runs before translation so a bounce applies the same step.
type MovementSystem struct {
	params MovementParams

	controlled  *ecs.Filter3[components.TurnSpeed, components.Thrust, components.MoveControls]
	turning     *ecs.Filter1[components.TurnSpeed]
	moving      *ecs.Filter1[components.Velocity]
	rotating    *ecs.Filter2[components.TurnSpeed, components.Transform]
	thrusting   *ecs.Filter3[components.Velocity, components.Transform, components.Thrust]
	bounded     *ecs.Filter3[components.Transform, components.Bounds, components.Velocity]
	translating *ecs.Filter2[components.Velocity, components.Transform]
}

// NewMovementSystem creates a new movement system.
func NewMovementSystem(w *ecs.World, params MovementParams) *MovementSystem {
	return &MovementSystem{
		params:      params,
		controlled:  ecs.NewFilter3[components.TurnSpeed, components.Thrust, components.MoveControls](w),
		turning:     ecs.NewFilter1[components.TurnSpeed](w),
		moving:      ecs.NewFilter1[components.Velocity](w),
		rotating:    ecs.NewFilter2[components.TurnSpeed, components.Transform](w),
		thrusting:   ecs.NewFilter3[components.Velocity, components.Transform, components.Thrust](w),
		bounded:     ecs.NewFilter3[components.Transform, components.Bounds, components.Velocity](w),
		translating: ecs.NewFilter2[components.Velocity, components.Transform](w),
	}
}

// Update runs one fixed step of all movement passes in order.
func (s *MovementSystem) Update(keys input.Source) {
	s.ApplyInput(keys)
	s.DragTurning()
	s.DragVelocity()
	s.UpdateRotation()
	s.CalculateVelocity()
	s.KeepInBounds()
	s.UpdateTranslation()
}

// ApplyInput converts held keys into turn speed and thrust.
// Turn speed accumulates; thrust is replaced every step.
func (s *MovementSystem) ApplyInput(keys input.Source) {
	query := s.controlled.Query()
	for query.Next() {
		turn, thrust, controls := query.Get()

		var thrustMod, turnMod float64
		if keys.IsKeyDown(controls.Up) {
			thrustMod += s.params.MoveAccel
		}
		if keys.IsKeyDown(controls.Down) {
			thrustMod -= s.params.MoveAccel
		}
		if keys.IsKeyDown(controls.Right) {
			turnMod -= s.params.TurnAccel
		}
		if keys.IsKeyDown(controls.Left) {
			turnMod += s.params.TurnAccel
		}
		turn.Value += turnMod
		thrust.Value = thrustMod
	}
}

// DragTurning decays turn speed.
func (s *MovementSystem) DragTurning() {
	query := s.turning.Query()
	for query.Next() {
		turn := query.Get()
		turn.Value /= s.params.TurnDrag
	}
}

// DragVelocity decays velocity.
func (s *MovementSystem) DragVelocity() {
	query := s.moving.Query()
	for query.Next() {
		vel := query.Get()
		vel.Vec = r3.Scale(1/s.params.MoveDrag, vel.Vec)
	}
}

// UpdateRotation turns each entity by its turn speed.
func (s *MovementSystem) UpdateRotation() {
	query := s.rotating.Query()
	for query.Next() {
		turn, tr := query.Get()
		tr.RotateZ(turn.Value * s.params.DT)
	}
}

// CalculateVelocity adds thrust along the current heading.
func (s *MovementSystem) CalculateVelocity() {
	query := s.thrusting.Query()
	for query.Next() {
		vel, tr, thrust := query.Get()
		if thrust.Value == 0 {
			continue
		}
		vel.Vec = r3.Add(vel.Vec, r3.Scale(thrust.Value, tr.Heading()))
	}
}

// KeepInBounds points velocity back inside the bounds for every axis the
// entity has crossed. Position is left alone.
func (s *MovementSystem) KeepInBounds() {
	query := s.bounded.Query()
	for query.Next() {
		tr, bounds, vel := query.Get()
		vel.Vec = Reflect(tr.Position, *bounds, vel.Vec)
	}
}

// UpdateTranslation moves each entity by its velocity.
func (s *MovementSystem) UpdateTranslation() {
	query := s.translating.Query()
	for query.Next() {
		vel, tr := query.Get()
		tr.Position = r3.Add(tr.Position, vel.Vec)
	}
}

// Reflect returns vel with each axis on which pos lies beyond b replaced by
// half its magnitude, pointing back inside. Other axes are unchanged.
func Reflect(pos r3.Vec, b components.Bounds, vel r3.Vec) r3.Vec {
	if pos.X < b.MinX {
		vel.X = math.Abs(vel.X) / 2
	}
	if pos.Y < b.MinY {
		vel.Y = math.Abs(vel.Y) / 2
	}
	if pos.X > b.MaxX {
		vel.X = -math.Abs(vel.X) / 2
	}
	if pos.Y > b.MaxY {
		vel.Y = -math.Abs(vel.Y) / 2
	}
	return vel
}
