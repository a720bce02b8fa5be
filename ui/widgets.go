package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer handles all UI drawing with consistent styling.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the default theme.
func NewRenderer() *Renderer {
	return &Renderer{Theme: DefaultTheme()}
}

// DrawPanel draws a panel background with border.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rl.DrawRectangle(x, y, width, height, r.Theme.PanelBg)
	rl.DrawRectangleLines(x, y, width, height, r.Theme.PanelBorder)
}

// DrawSectionHeader draws a section header and returns the new Y position.
func (r *Renderer) DrawSectionHeader(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.HeaderFontSize, r.Theme.SectionHeader)
	return y + r.Theme.LineHeight
}

// DrawLabelValue draws a label and value on the same line.
func (r *Renderer) DrawLabelValue(x, y int32, label, value string) int32 {
	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.ValueColor)
	return y + r.Theme.LineHeight
}

// DrawCooldownBar draws a raygui progress bar for a [0, 1] cooldown fraction
// and returns the new Y position.
func (r *Renderer) DrawCooldownBar(x, y int32, label string, fraction float64, ready bool, width int32) int32 {
	barX := x + r.Theme.LabelWidth
	barWidth := width - r.Theme.LabelWidth - 50

	rl.DrawText(label+":", x, y, r.Theme.FontSize, r.Theme.LabelColor)

	bounds := rl.Rectangle{
		X:      float32(barX),
		Y:      float32(y + 2),
		Width:  float32(barWidth),
		Height: float32(r.Theme.BarHeight),
	}
	gui.ProgressBar(bounds, "", "", float32(fraction), 0, 1)

	status := fmt.Sprintf("%3.0f%%", fraction*100)
	color := r.Theme.ValueColor
	if ready {
		status = "READY"
		color = r.Theme.ToggleOn
	}
	rl.DrawText(status, barX+barWidth+5, y, r.Theme.FontSize, color)

	return y + r.Theme.LineHeight + 2
}
