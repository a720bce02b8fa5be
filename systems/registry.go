package systems

// Phase identifiers for the fixed step, in execution order.
const (
	PhaseInput          = "input"
	PhaseDrag           = "drag"
	PhaseRotation       = "rotation"
	PhaseThrust         = "thrust"
	PhaseBounds         = "bounds"
	PhaseTranslation    = "translation"
	PhaseProjectileMove = "projectile_move"
	PhaseDespawn        = "despawn"
	PhaseWeaponTimers   = "weapon_timers"
	PhaseWeaponFire     = "weapon_fire"
)

// PhaseOrder lists every phase in execution order.
var PhaseOrder = []string{
	PhaseInput, PhaseDrag, PhaseRotation, PhaseThrust, PhaseBounds, PhaseTranslation,
	PhaseProjectileMove, PhaseDespawn, PhaseWeaponTimers, PhaseWeaponFire,
}

// SystemInfo describes a simulation system for UI display.
type SystemInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string // What this system does
	Category    string // Grouping (e.g., "movement", "weapons")
}

// SystemRegistry holds display metadata for the step phases.
type SystemRegistry struct {
	systems []SystemInfo
	byID    map[string]SystemInfo
}

// NewSystemRegistry creates a registry with all known systems.
func NewSystemRegistry() *SystemRegistry {
	reg := &SystemRegistry{
		byID: make(map[string]SystemInfo),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds all known systems to the registry.
// Update this when adding new systems. IDs double as perf phase names.
func (r *SystemRegistry) registerDefaults() {
	// Movement passes, in execution order
	r.Register(SystemInfo{ID: PhaseInput, Name: "Input", Description: "Converts held keys into thrust and turn speed", Category: "movement"})
	r.Register(SystemInfo{ID: PhaseDrag, Name: "Drag", Description: "Decays turn speed and velocity", Category: "movement"})
	r.Register(SystemInfo{ID: PhaseRotation, Name: "Rotation", Description: "Turns ships by their turn speed", Category: "movement"})
	r.Register(SystemInfo{ID: PhaseThrust, Name: "Thrust", Description: "Adds thrust along the heading", Category: "movement"})
	r.Register(SystemInfo{ID: PhaseBounds, Name: "Bounds", Description: "Reflects velocity at the arena edges", Category: "movement"})
	r.Register(SystemInfo{ID: PhaseTranslation, Name: "Translation", Description: "Moves ships by their velocity", Category: "movement"})

	// Projectiles
	r.Register(SystemInfo{ID: PhaseProjectileMove, Name: "Projectile Move", Description: "Advances projectiles along their heading", Category: "projectiles"})
	r.Register(SystemInfo{ID: PhaseDespawn, Name: "Despawn", Description: "Removes projectiles outside the arena", Category: "projectiles"})

	// Weapons
	r.Register(SystemInfo{ID: PhaseWeaponTimers, Name: "Weapon Timers", Description: "Ticks weapon cooldowns", Category: "weapons"})
	r.Register(SystemInfo{ID: PhaseWeaponFire, Name: "Weapon Fire", Description: "Spawns projectiles for held triggers", Category: "weapons"})
}

// Register adds a system to the registry.
func (r *SystemRegistry) Register(info SystemInfo) {
	r.systems = append(r.systems, info)
	r.byID[info.ID] = info
}

// GetName returns the display name for a system ID, or the ID itself if
// it is not registered.
func (r *SystemRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// Category returns the category of a system ID, or "" if unknown.
func (r *SystemRegistry) Category(id string) string {
	return r.byID[id].Category
}

// IDs returns all system IDs in registration order.
func (r *SystemRegistry) IDs() []string {
	ids := make([]string, len(r.systems))
	for i, info := range r.systems {
		ids[i] = info.ID
	}
	return ids
}
