// Package sim runs the fixed-step shooter simulation without any window or
// renderer, so it can be driven by the raylib frame loop or headlessly.
package sim

import (
	"log/slog"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/laserscape/components"
	"github.com/pthm-cable/laserscape/config"
	"github.com/pthm-cable/laserscape/input"
	"github.com/pthm-cable/laserscape/systems"
	"github.com/pthm-cable/laserscape/telemetry"
)

// Options configures a Simulation.
type Options struct {
	LogStats      bool                        // log window and perf stats via slog
	OutputDir     string                      // CSV output directory (empty = disabled)
	StatsCallback func(telemetry.WindowStats) // called on every flushed window
}

// Simulation owns the ECS world and steps every system in a fixed order.
type Simulation struct {
	cfg   *config.Config
	world *ecs.World

	shipMapper *ecs.Map8[
		components.Transform,
		components.Velocity,
		components.TurnSpeed,
		components.Thrust,
		components.Bounds,
		components.MoveControls,
		components.Weapons,
		components.Ship,
	]
	shipFilter       *ecs.Filter4[components.Ship, components.Transform, components.Velocity, components.Weapons]
	projectileFilter *ecs.Filter2[components.Projectile, components.Transform]

	movement    *systems.MovementSystem
	weapons     *systems.WeaponSystem
	projectiles *systems.ProjectileSystem

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	statsCallback func(telemetry.WindowStats)
	logStats      bool

	tick    int32
	scratch []ecs.Entity
}

// New creates a simulation from cfg and spawns the configured ships.
func New(cfg *config.Config, opts Options) (*Simulation, error) {
	world := ecs.NewWorld()

	s := &Simulation{
		cfg:   cfg,
		world: world,
		shipMapper: ecs.NewMap8[
			components.Transform,
			components.Velocity,
			components.TurnSpeed,
			components.Thrust,
			components.Bounds,
			components.MoveControls,
			components.Weapons,
			components.Ship,
		](world),
		shipFilter:       ecs.NewFilter4[components.Ship, components.Transform, components.Velocity, components.Weapons](world),
		projectileFilter: ecs.NewFilter2[components.Projectile, components.Transform](world),

		movement: systems.NewMovementSystem(world, systems.MovementParams{
			DT:        cfg.Physics.DT,
			MoveAccel: cfg.Physics.MoveAccel,
			TurnAccel: cfg.Physics.TurnAccel,
			MoveDrag:  cfg.Physics.MoveDrag,
			TurnDrag:  cfg.Physics.TurnDrag,
		}),
		weapons: systems.NewWeaponSystem(world,
			components.NewDespawnBounds(cfg.Arena.DespawnWidth, cfg.Arena.DespawnHeight),
			cfg.Projectile.Scale,
		),
		projectiles: systems.NewProjectileSystem(world),

		collector:     telemetry.NewCollector(cfg.Telemetry.StatsWindow, cfg.Physics.DT),
		perfCollector: telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		statsCallback: opts.StatsCallback,
		logStats:      opts.LogStats,
	}

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	s.outputManager = om
	if err := om.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	s.spawnShips()
	return s, nil
}

// Step advances the simulation by one fixed step using the held keys.
func (s *Simulation) Step(keys input.Source) {
	s.perfCollector.StartTick()

	s.perfCollector.StartPhase(systems.PhaseInput)
	s.movement.ApplyInput(keys)

	s.perfCollector.StartPhase(systems.PhaseDrag)
	s.movement.DragTurning()
	s.movement.DragVelocity()

	s.perfCollector.StartPhase(systems.PhaseRotation)
	s.movement.UpdateRotation()

	s.perfCollector.StartPhase(systems.PhaseThrust)
	s.movement.CalculateVelocity()

	s.perfCollector.StartPhase(systems.PhaseBounds)
	s.movement.KeepInBounds()

	s.perfCollector.StartPhase(systems.PhaseTranslation)
	s.movement.UpdateTranslation()

	s.perfCollector.StartPhase(systems.PhaseProjectileMove)
	s.projectiles.Move(s.cfg.Physics.DT)

	s.perfCollector.StartPhase(systems.PhaseDespawn)
	for range s.projectiles.DespawnOutside() {
		s.collector.RecordDespawn()
	}

	s.perfCollector.StartPhase(systems.PhaseWeaponTimers)
	s.weapons.TickTimers(s.cfg.Derived.Step)

	// Fired last: a projectile first moves and is bounds-checked on the
	// following step
	s.perfCollector.StartPhase(systems.PhaseWeaponFire)
	for _, shot := range s.weapons.Fire(keys) {
		s.collector.RecordShot(shot.Owner)
		slog.Debug("weapon fired",
			"tick", s.tick,
			"ship", shot.Owner,
			"weapon", shot.Weapon,
			"offset_x", shot.Offset.X,
			"offset_y", shot.Offset.Y,
			"x", shot.Transform.Position.X,
			"y", shot.Transform.Position.Y,
		)
	}

	s.perfCollector.EndTick()
	s.tick++

	s.flushTelemetry()
}

// Reset removes every projectile and respawns the ships at their configured
// spawn points. The tick counter keeps running.
func (s *Simulation) Reset() {
	s.scratch = s.scratch[:0]

	ships := s.shipFilter.Query()
	for ships.Next() {
		s.scratch = append(s.scratch, ships.Entity())
	}
	projectiles := s.projectileFilter.Query()
	for projectiles.Next() {
		s.scratch = append(s.scratch, projectiles.Entity())
	}

	for _, e := range s.scratch {
		s.world.RemoveEntity(e)
	}

	s.collector.Reset(s.tick)
	s.spawnShips()
	slog.Info("simulation reset", "tick", s.tick)
}

// Tick returns the number of fixed steps run so far.
func (s *Simulation) Tick() int32 {
	return s.tick
}

// Config returns the configuration the simulation was built with.
func (s *Simulation) Config() *config.Config {
	return s.cfg
}

// Perf returns the per-phase performance collector.
func (s *Simulation) Perf() *telemetry.PerfCollector {
	return s.perfCollector
}

// Close flushes and closes telemetry output.
func (s *Simulation) Close() error {
	return s.outputManager.Close()
}
