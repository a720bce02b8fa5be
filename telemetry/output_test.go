package telemetry

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pthm-cable/laserscape/config"
)

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func TestOutputManagerDisabled(t *testing.T) {
	om, err := NewOutputManager("")
	require.NoError(t, err)
	assert.Nil(t, om)

	// All methods are nil-safe
	assert.NoError(t, om.WriteTelemetry(WindowStats{}))
	assert.NoError(t, om.WritePerf(PerfStats{}, 0))
	assert.NoError(t, om.WriteConfig(config.Defaults()))
	assert.Empty(t, om.Dir())
	assert.NoError(t, om.Close())
}

func TestOutputManagerWritesCSV(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "run")
	om, err := NewOutputManager(dir)
	require.NoError(t, err)
	assert.Equal(t, dir, om.Dir())

	require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: 300, Shots: 4, ShotsByShip: map[string]int{"red": 4}}))
	require.NoError(t, om.WriteTelemetry(WindowStats{WindowEndTick: 600, Despawns: 2}))
	require.NoError(t, om.WritePerf(PerfStats{AvgTickDuration: time.Millisecond}, 300))
	require.NoError(t, om.Close())

	lines := readLines(t, filepath.Join(dir, "telemetry.csv"))
	require.Len(t, lines, 3, "one header and two rows")
	assert.True(t, strings.HasPrefix(lines[0], "window_end,sim_time,ships,projectiles,shots"))
	assert.NotContains(t, lines[0], "window_start")
	assert.True(t, strings.HasPrefix(lines[1], "300,"))
	assert.True(t, strings.HasPrefix(lines[2], "600,"))

	lines = readLines(t, filepath.Join(dir, "perf.csv"))
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "weapon_fire_pct")
	assert.True(t, strings.HasPrefix(lines[1], "300,1000,"))
}

func TestOutputManagerWriteConfig(t *testing.T) {
	dir := t.TempDir()
	om, err := NewOutputManager(dir)
	require.NoError(t, err)
	defer om.Close()

	require.NoError(t, om.WriteConfig(config.Defaults()))

	cfg, err := config.Load(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Len(t, cfg.Ships, 2)
	assert.Equal(t, config.Defaults().Physics, cfg.Physics)
}
