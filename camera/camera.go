// Package camera provides a 2D camera for viewing the arena.
package camera

// Camera controls the viewport into the arena. World coordinates have their
// origin at the arena center with +Y up; screen coordinates have +Y down.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float64

	// Zoom level (1.0 = one world unit per pixel)
	Zoom float64

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float64

	// Zoom constraints
	MinZoom, MaxZoom float64

	// Region Fit frames, remembered for Reset
	fitW, fitH float64
}

// New creates a camera centered on the origin with 1:1 zoom.
func New(viewportW, viewportH float64) *Camera {
	return &Camera{
		Zoom:      1.0,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   0.1,
		MaxZoom:   4.0,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy float32) {
	sx = float32(c.ViewportW/2 + (wx-c.X)*c.Zoom)
	sy = float32(c.ViewportH/2 - (wy-c.Y)*c.Zoom)
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float64) {
	wx = c.X + (float64(sx)-c.ViewportW/2)/c.Zoom
	wy = c.Y - (float64(sy)-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// IsVisible returns true if a circle at (wx, wy) with given radius
// could be visible on screen (conservative check for culling).
func (c *Camera) IsVisible(wx, wy, radius float64) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Resize updates viewport dimensions, refitting if a fit region is set.
func (c *Camera) Resize(viewportW, viewportH float64) {
	if viewportW == c.ViewportW && viewportH == c.ViewportH {
		return
	}
	c.ViewportW = viewportW
	c.ViewportH = viewportH
	if c.fitW > 0 && c.fitH > 0 {
		c.Fit(c.fitW, c.fitH)
	}
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += float64(dx) / c.Zoom
	c.Y -= float64(dy) / c.Zoom
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float64) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float64) {
	c.SetZoom(c.Zoom * factor)
}

// Fit centers the camera and zooms so a worldW x worldH rectangle around the
// origin fills the viewport. Reset returns to this framing.
func (c *Camera) Fit(worldW, worldH float64) {
	c.fitW, c.fitH = worldW, worldH
	c.X, c.Y = 0, 0
	zoom := c.ViewportW / worldW
	if zy := c.ViewportH / worldH; zy < zoom {
		zoom = zy
	}
	c.SetZoom(zoom)
}

// Reset returns the camera to the fitted framing, or the origin at 1:1 zoom
// if Fit was never called.
func (c *Camera) Reset() {
	if c.fitW > 0 && c.fitH > 0 {
		c.Fit(c.fitW, c.fitH)
		return
	}
	c.X, c.Y = 0, 0
	c.Zoom = 1.0
}

// VisibleWorldBounds returns the world-coordinate bounds of the visible area.
func (c *Camera) VisibleWorldBounds() (minX, minY, maxX, maxY float64) {
	halfW := c.ViewportW / (2 * c.Zoom)
	halfH := c.ViewportH / (2 * c.Zoom)

	minX = c.X - halfW
	maxX = c.X + halfW
	minY = c.Y - halfH
	maxY = c.Y + halfH
	return
}

// absf returns the absolute value of x.
func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float64) float64 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
