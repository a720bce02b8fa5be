package systems

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/laserscape/components"
)

func TestProjectileMovesAlongHeading(t *testing.T) {
	tw := newTestWorld()
	up := tw.spawnProjectile(r3.Vec{}, 0, 60, testDespawn)
	left := tw.spawnProjectile(r3.Vec{}, math.Pi/2, 120, testDespawn)
	sys := NewProjectileSystem(tw.w)

	sys.Move(testDT)

	p := tw.transforms.Get(up).Position
	assert.InDelta(t, 0, p.X, eps)
	assert.InDelta(t, 1, p.Y, eps)

	p = tw.transforms.Get(left).Position
	assert.InDelta(t, -2, p.X, eps)
	assert.InDelta(t, 0, p.Y, eps)
}

func TestProjectileDespawnedExactlyOnce(t *testing.T) {
	tw := newTestWorld()
	bounds := components.NewDespawnBounds(200, 110) // top edge at 55
	e := tw.spawnProjectile(r3.Vec{}, 0, 600, bounds) // 10 units per step
	sys := NewProjectileSystem(tw.w)

	var removedAt []int
	for tick := 1; tick <= 20; tick++ {
		sys.Move(testDT)
		for _, d := range sys.DespawnOutside() {
			assert.Equal(t, "test", d.Owner)
			assert.Greater(t, d.Position.Y, 55.0)
			removedAt = append(removedAt, tick)
		}
	}

	assert.Equal(t, []int{6}, removedAt, "first step with y > 55 is y = 60")
	assert.False(t, tw.w.Alive(e))
	assert.Equal(t, 0, tw.countProjectiles())
}

func TestProjectileOnEdgeIsKept(t *testing.T) {
	tw := newTestWorld()
	bounds := components.NewDespawnBounds(200, 100)
	corner := tw.spawnProjectile(r3.Vec{X: 100, Y: -50}, 0, 0, bounds)
	sys := NewProjectileSystem(tw.w)

	assert.Empty(t, sys.DespawnOutside())
	assert.True(t, tw.w.Alive(corner))
}

func TestDespawnOnEachEdge(t *testing.T) {
	bounds := components.NewDespawnBounds(200, 100)
	tests := []struct {
		name string
		pos  r3.Vec
	}{
		{"left", r3.Vec{X: -100.5}},
		{"right", r3.Vec{X: 100.5}},
		{"bottom", r3.Vec{Y: -50.5}},
		{"top", r3.Vec{Y: 50.5}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tw := newTestWorld()
			inside := tw.spawnProjectile(r3.Vec{}, 0, 0, bounds)
			outside := tw.spawnProjectile(tt.pos, 0, 0, bounds)
			sys := NewProjectileSystem(tw.w)

			removed := sys.DespawnOutside()
			require.Len(t, removed, 1)
			assert.Equal(t, tt.pos, removed[0].Position)
			assert.True(t, tw.w.Alive(inside))
			assert.False(t, tw.w.Alive(outside))
		})
	}
}

func TestDespawnIgnoresShips(t *testing.T) {
	tw := newTestWorld()
	ship := tw.spawnShip("a", r3.Vec{X: 5000}, r3.Vec{})
	sys := NewProjectileSystem(tw.w)

	assert.Empty(t, sys.DespawnOutside())
	assert.True(t, tw.w.Alive(ship))
}
