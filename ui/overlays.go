package ui

import "github.com/pthm-cable/laserscape/input"

// OverlayID uniquely identifies an overlay.
type OverlayID string

// Standard overlay IDs.
const (
	OverlayArena    OverlayID = "arena"
	OverlayDespawn  OverlayID = "despawn"
	OverlayHeadings OverlayID = "headings"
	OverlayMounts   OverlayID = "mounts"
	OverlayPerf     OverlayID = "perf"
	OverlayControls OverlayID = "controls"
)

// OverlayDescriptor defines an overlay that can be toggled.
type OverlayDescriptor struct {
	ID       OverlayID // Unique identifier
	Name     string    // Display name
	Key      input.Key // Keyboard key to toggle
	Category string    // Grouping (e.g., "visual", "debug")
}

// OverlayRegistry manages overlay state and metadata.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	byID        map[OverlayID]OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry with default overlays.
func NewOverlayRegistry() *OverlayRegistry {
	reg := &OverlayRegistry{
		byID:    make(map[OverlayID]OverlayDescriptor),
		enabled: make(map[OverlayID]bool),
	}
	reg.registerDefaults()
	return reg
}

// registerDefaults adds standard overlays.
func (r *OverlayRegistry) registerDefaults() {
	r.Register(OverlayDescriptor{
		ID:       OverlayControls,
		Name:     "Controls",
		Key:      input.KeyF1,
		Category: "visual",
	})
	r.Register(OverlayDescriptor{
		ID:       OverlayArena,
		Name:     "Arena Bounds",
		Key:      input.KeyF2,
		Category: "visual",
	})
	r.Register(OverlayDescriptor{
		ID:       OverlayDespawn,
		Name:     "Despawn Bounds",
		Key:      input.KeyF3,
		Category: "visual",
	})
	r.Register(OverlayDescriptor{
		ID:       OverlayHeadings,
		Name:     "Headings",
		Key:      input.KeyF4,
		Category: "debug",
	})
	r.Register(OverlayDescriptor{
		ID:       OverlayMounts,
		Name:     "Weapon Mounts",
		Key:      input.KeyF5,
		Category: "debug",
	})
	r.Register(OverlayDescriptor{
		ID:       OverlayPerf,
		Name:     "Perf Panel",
		Key:      input.KeyF6,
		Category: "debug",
	})
}

// Register adds an overlay descriptor, initially disabled.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.byID[desc.ID] = desc
	r.enabled[desc.ID] = false
}

// Toggle switches an overlay on/off and returns the new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.byID[id]; !ok {
		return false
	}
	r.enabled[id] = !r.enabled[id]
	return r.enabled[id]
}

// SetEnabled explicitly sets an overlay's state.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	if _, ok := r.byID[id]; !ok {
		return
	}
	r.enabled[id] = enabled
}

// IsEnabled returns whether an overlay is active.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// ByCategory returns overlays filtered by category.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var result []OverlayDescriptor
	for _, desc := range r.descriptors {
		if desc.Category == category {
			result = append(result, desc)
		}
	}
	return result
}

// Categories returns all unique categories in order.
func (r *OverlayRegistry) Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, desc := range r.descriptors {
		if !seen[desc.Category] {
			seen[desc.Category] = true
			cats = append(cats, desc.Category)
		}
	}
	return cats
}

// HandleKeys toggles every overlay whose key pressed reports as pressed this
// frame.
func (r *OverlayRegistry) HandleKeys(pressed func(input.Key) bool) {
	for _, desc := range r.descriptors {
		if pressed(desc.Key) {
			r.Toggle(desc.ID)
		}
	}
}
