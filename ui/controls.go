package ui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/laserscape/config"
)

// ControlsPanel renders the key bindings for every ship plus the overlay
// toggles.
type ControlsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
}

// NewControlsPanel creates a new controls panel.
func NewControlsPanel(x, y, width int32) *ControlsPanel {
	return &ControlsPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Draw renders the controls panel and returns the Y below it.
func (c *ControlsPanel) Draw(ships []config.ShipConfig, overlays *OverlayRegistry) int32 {
	r := c.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight

	categories := overlays.Categories()
	lines := 1
	for _, ship := range ships {
		lines += 3 + len(ship.Weapons)
	}
	for _, cat := range categories {
		lines += len(overlays.ByCategory(cat)) + 1
	}
	panelHeight := int32(lines)*lineHeight + padding*3

	r.DrawPanel(c.x, c.y, c.width, panelHeight)

	x := c.x + padding
	y := c.y + padding
	inner := c.width - padding*2

	rl.DrawText("Controls", x, y, 16, rl.White)
	y += lineHeight + 4

	for _, ship := range ships {
		y = r.DrawSectionHeader(x, y, ship.Name)
		steer := strings.Join([]string{
			ship.Controls.Up.String(), ship.Controls.Left.String(),
			ship.Controls.Down.String(), ship.Controls.Right.String(),
		}, "/")
		c.drawBinding(x, y, "Steer", steer, inner)
		y += lineHeight
		for i, w := range ship.Weapons {
			c.drawBinding(x, y, fmt.Sprintf("Weapon %d (%s)", i+1, w.Cooldown), w.Trigger.String(), inner)
			y += lineHeight
		}
		y += 4
	}

	for _, category := range categories {
		y = r.DrawSectionHeader(x, y, categoryLabel(category))
		for _, desc := range overlays.ByCategory(category) {
			c.drawToggle(x, y, desc, overlays.IsEnabled(desc.ID), inner)
			y += lineHeight
		}
		y += 4
	}

	return y
}

// drawBinding draws an action name with its key right aligned.
func (c *ControlsPanel) drawBinding(x, y int32, action, key string, width int32) {
	r := c.renderer
	rl.DrawText(action, x+14, y, r.Theme.FontSize, r.Theme.LabelColor)
	keyText := fmt.Sprintf("[%s]", key)
	keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
	rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, r.Theme.KeyColor)
}

// drawToggle draws a single overlay toggle line.
func (c *ControlsPanel) drawToggle(x, y int32, desc OverlayDescriptor, enabled bool, width int32) {
	r := c.renderer

	statusColor := r.Theme.ToggleOff
	nameColor := r.Theme.LabelColor
	if enabled {
		statusColor = r.Theme.ToggleOn
		nameColor = rl.White
	}
	rl.DrawRectangle(x, y+2, 8, 8, statusColor)
	rl.DrawText(desc.Name, x+14, y, r.Theme.FontSize, nameColor)

	keyText := fmt.Sprintf("[%s]", desc.Key)
	keyWidth := rl.MeasureText(keyText, r.Theme.FontSize)
	rl.DrawText(keyText, x+width-keyWidth, y, r.Theme.FontSize, r.Theme.KeyColor)
}

// categoryLabel returns a display label for a category.
func categoryLabel(cat string) string {
	switch cat {
	case "visual":
		return "Visual"
	case "debug":
		return "Debug"
	default:
		return cat
	}
}
