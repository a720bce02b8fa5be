package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/laserscape/components"
	"github.com/pthm-cable/laserscape/input"
)

const eps = 1e-9

func TestVelocityDecaysWithoutThrust(t *testing.T) {
	tw := newTestWorld()
	ship := tw.spawnShip("a", r3.Vec{}, r3.Vec{X: 3, Y: 4})
	sys := NewMovementSystem(tw.w, testParams)

	prev := r3.Norm(tw.velocities.Get(ship).Vec)
	for i := 0; i < 100; i++ {
		sys.Update(input.None)
		cur := r3.Norm(tw.velocities.Get(ship).Vec)
		require.LessOrEqual(t, cur, prev/testDrag+eps, "step %d", i)
		prev = cur
	}
	assert.Less(t, prev, 0.5)
}

func TestApplyInput(t *testing.T) {
	tests := []struct {
		name       string
		keys       input.KeyState
		wantThrust float64
		wantTurn   float64
	}{
		{"nothing held", input.Held(), 0, 0},
		{"up", input.Held(input.KeyW), testAccel, 0},
		{"down", input.Held(input.KeyS), -testAccel, 0},
		{"up and down cancel", input.Held(input.KeyW, input.KeyS), 0, 0},
		{"left turns positive", input.Held(input.KeyA), 0, testAccel},
		{"right turns negative", input.Held(input.KeyD), 0, -testAccel},
		{"other ship keys ignored", input.Held(input.KeyI, input.KeyJ), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld()
			ship := tw.spawnShip("a", r3.Vec{}, r3.Vec{})
			sys := NewMovementSystem(tw.w, testParams)

			sys.ApplyInput(tt.keys)
			assert.InDelta(t, tt.wantThrust, tw.thrusts.Get(ship).Value, eps)
			assert.InDelta(t, tt.wantTurn, tw.turns.Get(ship).Value, eps)
		})
	}
}

func TestThrustIsRecomputedEachStep(t *testing.T) {
	tw := newTestWorld()
	ship := tw.spawnShip("a", r3.Vec{}, r3.Vec{})
	sys := NewMovementSystem(tw.w, testParams)

	sys.ApplyInput(input.Held(input.KeyW))
	sys.ApplyInput(input.Held(input.KeyW))
	assert.InDelta(t, testAccel, tw.thrusts.Get(ship).Value, eps, "thrust does not accumulate")

	sys.ApplyInput(input.None)
	assert.Equal(t, 0.0, tw.thrusts.Get(ship).Value)
}

func TestTurnSpeedAccumulatesAndDecays(t *testing.T) {
	tw := newTestWorld()
	ship := tw.spawnShip("a", r3.Vec{}, r3.Vec{})
	sys := NewMovementSystem(tw.w, testParams)

	sys.Update(input.Held(input.KeyA))
	first := tw.turns.Get(ship).Value
	assert.InDelta(t, testAccel/testTDrag, first, eps)

	sys.Update(input.Held(input.KeyA))
	assert.InDelta(t, (first+testAccel)/testTDrag, tw.turns.Get(ship).Value, eps)

	sys.Update(input.None)
	assert.Less(t, tw.turns.Get(ship).Value, (first+testAccel)/testTDrag)
}

func TestThrustFollowsPostTurnHeading(t *testing.T) {
	tw := newTestWorld()
	ship := tw.spawnShip("a", r3.Vec{}, r3.Vec{})
	sys := NewMovementSystem(tw.w, testParams)

	sys.Update(input.Held(input.KeyW, input.KeyA))

	rot := tw.transforms.Get(ship).Rotation
	require.Greater(t, rot, 0.0)
	assert.InDelta(t, testAccel/testTDrag*testDT, rot, eps)

	vel := tw.velocities.Get(ship)
	assert.InDelta(t, -testAccel*math.Sin(rot), vel.X, eps)
	assert.InDelta(t, testAccel*math.Cos(rot), vel.Y, eps)

	pos := tw.transforms.Get(ship).Position
	assert.InDelta(t, vel.X, pos.X, eps, "translation uses this step's velocity")
	assert.InDelta(t, vel.Y, pos.Y, eps)
}

func TestDragAppliesBeforeThrust(t *testing.T) {
	tw := newTestWorld()
	ship := tw.spawnShip("a", r3.Vec{}, r3.Vec{Y: 1})
	sys := NewMovementSystem(tw.w, testParams)

	sys.Update(input.Held(input.KeyW))
	assert.InDelta(t, 1/testDrag+testAccel, tw.velocities.Get(ship).Y, eps)
}

func TestReflect(t *testing.T) {
	b := components.NewBounds(200, 100)
	vel := r3.Vec{X: 4, Y: -6}
	tests := []struct {
		name string
		pos  r3.Vec
		want r3.Vec
	}{
		{"inside", r3.Vec{}, r3.Vec{X: 4, Y: -6}},
		{"on edge", r3.Vec{X: 100, Y: -50}, r3.Vec{X: 4, Y: -6}},
		{"past left", r3.Vec{X: -101}, r3.Vec{X: 2, Y: -6}},
		{"past right", r3.Vec{X: 101}, r3.Vec{X: -2, Y: -6}},
		{"past bottom", r3.Vec{Y: -51}, r3.Vec{X: 4, Y: 3}},
		{"past top", r3.Vec{Y: 51}, r3.Vec{X: 4, Y: -3}},
		{"past corner", r3.Vec{X: 101, Y: -51}, r3.Vec{X: -2, Y: 3}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reflect(tt.pos, b, vel))
		})
	}
}

func TestReflectLeavesOrthogonalAxis(t *testing.T) {
	b := components.NewBounds(200, 100)
	for _, vy := range []float64{-5, 0, 7.25} {
		got := Reflect(r3.Vec{X: -150}, b, r3.Vec{X: -8, Y: vy})
		assert.Equal(t, vy, got.Y)
		assert.Equal(t, 4.0, got.X)
	}
}

func TestBounceTakesEffectSameStep(t *testing.T) {
	tw := newTestWorld()
	// Arena is 1280 wide, so x < -640 is outside
	ship := tw.spawnShip("a", r3.Vec{X: -700, Y: 10}, r3.Vec{X: -10, Y: 3})
	sys := NewMovementSystem(tw.w, testParams)

	sys.Update(input.None)

	vel := tw.velocities.Get(ship)
	assert.InDelta(t, 10/testDrag/2, vel.X, eps)
	assert.InDelta(t, 3/testDrag, vel.Y, eps)

	pos := tw.transforms.Get(ship).Position
	assert.InDelta(t, -700+10/testDrag/2, pos.X, eps)
	assert.Less(t, pos.X, -640.0, "position is not corrected, only pushed")
}

func TestShipsMoveIndependently(t *testing.T) {
	tw := newTestWorld()
	a := tw.spawnShip("a", r3.Vec{X: -100}, r3.Vec{})
	b := tw.spawnShip("b", r3.Vec{X: 100}, r3.Vec{})

	// Ship b steers with IJKL
	ijkl := components.MoveControls{Up: input.KeyI, Down: input.KeyK, Left: input.KeyJ, Right: input.KeyL}
	*tw.controls.Get(b) = ijkl

	sys := NewMovementSystem(tw.w, testParams)
	sys.Update(input.Held(input.KeyI))

	assert.Equal(t, 0.0, tw.velocities.Get(a).Y)
	assert.InDelta(t, testAccel, tw.velocities.Get(b).Y, eps)
}
