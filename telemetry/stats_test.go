package telemetry

import (
	"maps"
	"math"
	"slices"
	"testing"
)

func TestComputeSpeedStats(t *testing.T) {
	tests := []struct {
		name                                string
		values                              []float64
		wantMean, wantP50, wantP90, wantMax float64
	}{
		{"empty slice", []float64{}, 0, 0, 0, 0},
		{"single element", []float64{5.0}, 5, 5, 5, 5},
		{"unsorted", []float64{3, 1, 2, 4}, 2.5, 2, 4, 4},
		{"ten descending", []float64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, 5.5, 5, 9, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, p50, p90, maxSpeed := ComputeSpeedStats(tt.values)
			if math.Abs(mean-tt.wantMean) > 0.001 {
				t.Errorf("mean = %v, want %v", mean, tt.wantMean)
			}
			if p50 != tt.wantP50 {
				t.Errorf("p50 = %v, want %v", p50, tt.wantP50)
			}
			if p90 != tt.wantP90 {
				t.Errorf("p90 = %v, want %v", p90, tt.wantP90)
			}
			if maxSpeed != tt.wantMax {
				t.Errorf("max = %v, want %v", maxSpeed, tt.wantMax)
			}
		})
	}
}

func TestComputeSpeedStatsLeavesInputUnsorted(t *testing.T) {
	values := []float64{3, 1, 2}
	ComputeSpeedStats(values)

	// Sorting happens on a copy
	if !slices.Equal(values, []float64{3, 1, 2}) {
		t.Errorf("input was reordered: %v", values)
	}
}

func TestCollector_Flush(t *testing.T) {
	c := NewCollector(1, 0.1) // 10 ticks per window

	if got := c.WindowDurationTicks(); got != 10 {
		t.Fatalf("WindowDurationTicks() = %d, want 10", got)
	}
	if c.ShouldFlush(9) || !c.ShouldFlush(10) {
		t.Error("expected flush exactly at tick 10")
	}

	c.RecordShot("red")
	c.RecordShot("red")
	c.RecordShot("blue")
	c.RecordDespawn()

	stats := c.Flush(10, 2, []float64{1, 3})

	if stats.WindowStartTick != 0 || stats.WindowEndTick != 10 {
		t.Errorf("window = [%d, %d], want [0, 10]", stats.WindowStartTick, stats.WindowEndTick)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 1e-9 {
		t.Errorf("SimTimeSec = %v, want 1", stats.SimTimeSec)
	}
	if stats.Shots != 3 || stats.Despawns != 1 {
		t.Errorf("shots/despawns = %d/%d, want 3/1", stats.Shots, stats.Despawns)
	}
	if want := map[string]int{"red": 2, "blue": 1}; !maps.Equal(stats.ShotsByShip, want) {
		t.Errorf("ShotsByShip = %v, want %v", stats.ShotsByShip, want)
	}
	if math.Abs(stats.ShotsPerSec-3.0) > 1e-9 {
		t.Errorf("ShotsPerSec = %v, want 3", stats.ShotsPerSec)
	}
	if stats.Ships != 2 || stats.Projectiles != 2 {
		t.Errorf("ships/projectiles = %d/%d, want 2/2", stats.Ships, stats.Projectiles)
	}
	if stats.SpeedMean != 2.0 {
		t.Errorf("SpeedMean = %v, want 2", stats.SpeedMean)
	}

	// Counters reset and the window advances
	next := c.Flush(20, 0, nil)
	if next.WindowStartTick != 10 {
		t.Errorf("next window starts at %d, want 10", next.WindowStartTick)
	}
	if next.Shots != 0 || next.Despawns != 0 || len(next.ShotsByShip) != 0 {
		t.Errorf("counters not reset: %+v", next)
	}

	// Flushed stats keep their own counts
	if stats.ShotsByShip["red"] != 2 {
		t.Errorf("earlier window changed after flush: %v", stats.ShotsByShip)
	}
}

func TestCollector_MinimumWindow(t *testing.T) {
	c := NewCollector(0, 1.0/60)

	if got := c.WindowDurationTicks(); got != 1 {
		t.Errorf("WindowDurationTicks() = %d, want 1", got)
	}
}

func TestCollector_Reset(t *testing.T) {
	c := NewCollector(1, 0.1)
	c.RecordShot("red")
	c.RecordDespawn()
	c.Reset(50)

	if c.ShouldFlush(55) {
		t.Error("window restarted at 50 should not flush at 55")
	}

	stats := c.Flush(60, 0, nil)
	if stats.WindowStartTick != 50 {
		t.Errorf("WindowStartTick = %d, want 50", stats.WindowStartTick)
	}
	if stats.Shots != 0 || stats.Despawns != 0 {
		t.Errorf("counts survived reset: shots %d despawns %d", stats.Shots, stats.Despawns)
	}
}
