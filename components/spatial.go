package components

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Forward is the local heading of an unrotated entity.
var Forward = r3.Vec{Y: 1}

// axisZ is the rotation axis for all headings (out of the screen).
var axisZ = r3.Vec{Z: 1}

// Transform places an entity in the world.
// Positions are 2D embedded in 3D; Z is always zero.
type Transform struct {
	Position r3.Vec
	Rotation float64 // radians about +Z, counter-clockwise
	Scale    float64
}

// Velocity is displacement per tick.
type Velocity struct {
	r3.Vec
}

// TurnSpeed is the current angular rate in radians per second.
type TurnSpeed struct {
	Value float64
}

// Thrust is the forward acceleration requested this tick.
type Thrust struct {
	Value float64
}

// Rotate turns v by angle radians about +Z.
func Rotate(angle float64, v r3.Vec) r3.Vec {
	if angle == 0 {
		return v
	}
	return r3.NewRotation(angle, axisZ).Rotate(v)
}

// Heading returns the unit vector the entity faces.
func (t *Transform) Heading() r3.Vec {
	return Rotate(t.Rotation, Forward)
}

// RotateZ adds angle to the rotation, keeping it in [-Pi, Pi].
func (t *Transform) RotateZ(angle float64) {
	t.Rotation = normalizeAngle(t.Rotation + angle)
}

// ToWorld converts a point in the entity's local frame to world space.
// Scale is not applied; weapon offsets are authored in world units.
func (t *Transform) ToWorld(local r3.Vec) r3.Vec {
	return r3.Add(t.Position, Rotate(t.Rotation, local))
}

// normalizeAngle wraps an angle to [-Pi, Pi].
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a < -math.Pi {
		a += 2 * math.Pi
	}
	return a
}
