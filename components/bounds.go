package components

import "gonum.org/v1/gonum/spatial/r3"

// Bounds is an axis-aligned rectangle centered on the origin.
// Ships bounce off it.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// DespawnBounds removes projectiles that leave it.
type DespawnBounds struct {
	Bounds
}

// NewBounds returns the rectangle of the given width and height centered on the origin.
func NewBounds(width, height float64) Bounds {
	return Bounds{
		MinX: -width / 2,
		MinY: -height / 2,
		MaxX: width / 2,
		MaxY: height / 2,
	}
}

// NewDespawnBounds is NewBounds for projectiles.
func NewDespawnBounds(width, height float64) DespawnBounds {
	return DespawnBounds{Bounds: NewBounds(width, height)}
}

// Outside reports whether p strictly exceeds any edge. Points on an edge are inside.
func (b Bounds) Outside(p r3.Vec) bool {
	return p.X < b.MinX || p.Y < b.MinY || p.X > b.MaxX || p.Y > b.MaxY
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }
