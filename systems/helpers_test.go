package systems

import (
	"time"

	"github.com/mlange-42/ark/ecs"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/laserscape/components"
	"github.com/pthm-cable/laserscape/input"
)

const (
	testDT    = 1.0 / 60.0
	testStep  = time.Second / 60
	testDrag  = 1.03
	testTDrag = 1.05
	testAccel = 0.2
)

var testParams = MovementParams{
	DT:        testDT,
	MoveAccel: testAccel,
	TurnAccel: testAccel,
	MoveDrag:  testDrag,
	TurnDrag:  testTDrag,
}

var wasd = components.MoveControls{Up: input.KeyW, Down: input.KeyS, Left: input.KeyA, Right: input.KeyD}

// testWorld bundles a world with mappers for ships and projectiles.
type testWorld struct {
	w     *ecs.World
	ships *ecs.Map8[
		components.Transform,
		components.Velocity,
		components.TurnSpeed,
		components.Thrust,
		components.Bounds,
		components.MoveControls,
		components.Weapons,
		components.Ship,
	]
	transforms  *ecs.Map[components.Transform]
	velocities  *ecs.Map[components.Velocity]
	turns       *ecs.Map[components.TurnSpeed]
	thrusts     *ecs.Map[components.Thrust]
	controls    *ecs.Map[components.MoveControls]
	weapons     *ecs.Map[components.Weapons]
	projectiles *ecs.Map4[components.Transform, components.ProjectileSpeed, components.DespawnBounds, components.Projectile]
}

func newTestWorld() *testWorld {
	w := ecs.NewWorld()
	return &testWorld{
		w: w,
		ships: ecs.NewMap8[
			components.Transform,
			components.Velocity,
			components.TurnSpeed,
			components.Thrust,
			components.Bounds,
			components.MoveControls,
			components.Weapons,
			components.Ship,
		](w),
		transforms:  ecs.NewMap[components.Transform](w),
		velocities:  ecs.NewMap[components.Velocity](w),
		turns:       ecs.NewMap[components.TurnSpeed](w),
		thrusts:     ecs.NewMap[components.Thrust](w),
		controls:    ecs.NewMap[components.MoveControls](w),
		weapons:     ecs.NewMap[components.Weapons](w),
		projectiles: ecs.NewMap4[components.Transform, components.ProjectileSpeed, components.DespawnBounds, components.Projectile](w),
	}
}

// spawnShip creates a ship at pos with velocity vel inside a 1280x720 arena.
func (tw *testWorld) spawnShip(name string, pos, vel r3.Vec, weapons ...components.Weapon) ecs.Entity {
	tr := components.Transform{Position: pos, Scale: 1}
	v := components.Velocity{Vec: vel}
	turn := components.TurnSpeed{}
	thrust := components.Thrust{}
	bounds := components.NewBounds(1280, 720)
	controls := wasd
	ws := components.Weapons{List: weapons}
	ship := components.Ship{Name: name}
	return tw.ships.NewEntity(&tr, &v, &turn, &thrust, &bounds, &controls, &ws, &ship)
}

// spawnProjectile creates a projectile at pos facing rotation.
func (tw *testWorld) spawnProjectile(pos r3.Vec, rotation, speed float64, bounds components.DespawnBounds) ecs.Entity {
	tr := components.Transform{Position: pos, Rotation: rotation, Scale: 1}
	sp := components.ProjectileSpeed{Value: speed}
	proj := components.Projectile{Owner: "test"}
	return tw.projectiles.NewEntity(&tr, &sp, &bounds, &proj)
}

// countProjectiles counts live projectile entities.
func (tw *testWorld) countProjectiles() int {
	n := 0
	query := ecs.NewFilter1[components.Projectile](tw.w).Query()
	for query.Next() {
		n++
	}
	return n
}
