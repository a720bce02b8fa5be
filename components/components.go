// Package components defines ECS components for the shooter.
package components

import "github.com/pthm-cable/laserscape/input"

// MoveControls maps the four steering directions to keys.
type MoveControls struct {
	Up    input.Key
	Down  input.Key
	Left  input.Key
	Right input.Key
}

// Ship identifies a player ship.
type Ship struct {
	Name  string
	Color uint8 // palette index
}

// ProjectileSpeed is a projectile's speed in units per second.
type ProjectileSpeed struct {
	Value float64
}

// Projectile records where a projectile came from.
type Projectile struct {
	Owner  string
	Weapon int
}
