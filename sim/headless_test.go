package sim

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/laserscape/input"
)

const fireScript = `
steps:
  - {from: 0, to: 40, hold: [W, SPACE]}
  - {from: 20, to: 30, hold: [A]}
`

func TestRunScriptStopsAtScriptEnd(t *testing.T) {
	s := newSim(t, "", Options{})
	script, err := input.ParseScript([]byte(fireScript))
	require.NoError(t, err)

	end := s.RunScript(context.Background(), script, 0)

	assert.Equal(t, int32(40), end)
	red := shipByName(t, s, "red")
	assert.Greater(t, red.Transform.Position.Y, 0.0)
	assert.Greater(t, red.Transform.Rotation, 0.0, "A was held for ten ticks")
	// SPACE fires on steps 15 and 30; the first shot crosses the top
	// despawn edge (y = 450) on step 39
	assert.Equal(t, 1, s.ProjectileCount())
}

func TestRunScriptMaxTicksOverridesScript(t *testing.T) {
	s := newSim(t, "", Options{})
	script, err := input.ParseScript([]byte(fireScript))
	require.NoError(t, err)

	assert.Equal(t, int32(10), s.RunScript(context.Background(), script, 10))
	assert.Zero(t, s.ProjectileCount())
}

func TestRunScriptWithoutScript(t *testing.T) {
	s := newSim(t, "", Options{})

	assert.Equal(t, int32(25), s.RunScript(context.Background(), nil, 25))
	assert.Zero(t, shipByName(t, s, "red").Speed)
}

func TestRunScriptHonoursCancel(t *testing.T) {
	s := newSim(t, "", Options{})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Zero(t, s.RunScript(ctx, nil, 0))
}
