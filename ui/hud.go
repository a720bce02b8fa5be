package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/laserscape/sim"
	"github.com/pthm-cable/laserscape/systems"
	"github.com/pthm-cable/laserscape/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title        string
	Tick         int32
	FPS          int32
	Projectiles  int
	Paused       bool
	ScreenWidth  int32
	ScreenHeight int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a new HUD renderer.
func NewHUD() *HUD {
	return &HUD{
		renderer: NewRenderer(),
	}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.White)

	rl.DrawText(
		fmt.Sprintf("Tick: %d | FPS: %d | Projectiles: %d", data.Tick, data.FPS, data.Projectiles),
		10, 35, 16, rl.LightGray,
	)

	if data.Paused {
		text := "PAUSED"
		w := rl.MeasureText(text, 40)
		rl.DrawText(text, (data.ScreenWidth-w)/2, data.ScreenHeight/2-20, 40, rl.Yellow)
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}

// PauseButton draws a raygui pause/resume button in the top-right corner and
// reports whether it was clicked this frame.
func (h *HUD) PauseButton(screenWidth int32, paused bool) bool {
	label := "Pause"
	if paused {
		label = "Resume"
	}
	bounds := rl.Rectangle{X: float32(screenWidth - 110), Y: 10, Width: 100, Height: 26}
	return gui.Button(bounds, label)
}

// ShipPanel renders per-ship speed and weapon cooldowns.
type ShipPanel struct {
	renderer *Renderer
	width    int32
}

// NewShipPanel creates a new ship panel.
func NewShipPanel(width int32) *ShipPanel {
	return &ShipPanel{
		renderer: NewRenderer(),
		width:    width,
	}
}

// Draw renders one block per ship, stacked from the bottom-left corner up.
func (p *ShipPanel) Draw(ships []sim.ShipView, screenHeight int32) {
	r := p.renderer
	padding := r.Theme.Padding
	lineHeight := r.Theme.LineHeight + 2

	bottom := screenHeight - 40
	for _, ship := range ships {
		height := lineHeight*int32(2+len(ship.Cooldowns)) + padding*2
		top := bottom - height
		r.DrawPanel(padding, top, p.width, height)

		x := padding * 2
		y := top + padding
		rl.DrawRectangle(x, y+2, 10, 10, ShipColor(ship.Color))
		rl.DrawText(ship.Name, x+16, y, r.Theme.HeaderFontSize, rl.White)
		y += lineHeight

		y = r.DrawLabelValue(x, y, "Speed", fmt.Sprintf("%.2f", ship.Speed))
		for _, cd := range ship.Cooldowns {
			y = r.DrawCooldownBar(x, y, cd.Trigger.String(), cd.Fraction, cd.Ready, p.width-padding*2)
		}

		bottom = top - padding
	}
}

// PerfPanelData holds performance metrics for display.
type PerfPanelData struct {
	Stats      telemetry.PerfStats
	FrameTimes map[string]time.Duration
	Registry   *systems.SystemRegistry
}

// PerfPanel renders the per-phase performance panel.
type PerfPanel struct {
	renderer *Renderer
	x, y     int32
}

// NewPerfPanel creates a new performance panel.
func NewPerfPanel(x, y int32) *PerfPanel {
	return &PerfPanel{
		renderer: NewRenderer(),
		x:        x,
		y:        y,
	}
}

// SetPosition updates the panel position.
func (p *PerfPanel) SetPosition(x, y int32) {
	p.x = x
	p.y = y
}

// Draw renders the performance panel.
func (p *PerfPanel) Draw(data PerfPanelData) {
	x := p.x
	y := p.y

	rl.DrawText("Step Performance", x, y, 16, rl.White)
	y += 20

	rl.DrawText(fmt.Sprintf("Tick: %s p99 %s (%d/s)",
		data.Stats.AvgTickDuration.Round(time.Microsecond),
		data.Stats.P99TickDuration.Round(time.Microsecond),
		int(data.Stats.TicksPerSecond)),
		x, y, 14, rl.Yellow)
	y += 16

	lastCategory := ""
	for _, phase := range systems.PhaseOrder {
		if data.Registry != nil {
			if cat := data.Registry.Category(phase); cat != lastCategory {
				lastCategory = cat
				rl.DrawText(cat, x, y, 12, p.renderer.Theme.SectionHeader)
				y += 14
			}
		}

		avg := data.Stats.PhaseAvg[phase]
		pct := data.Stats.PhasePct[phase]

		color := rl.LightGray
		if pct > 30 {
			color = rl.Red
		} else if pct > 15 {
			color = rl.Orange
		}

		displayName := phase
		if data.Registry != nil {
			displayName = data.Registry.GetName(phase)
		}

		rl.DrawText(
			fmt.Sprintf("  %-16s %6s %5.1f%%", displayName, avg.Round(time.Microsecond), pct),
			x, y, 12, color,
		)
		y += 14
	}

	if len(data.FrameTimes) > 0 {
		y += 6
		rl.DrawText("Frame", x, y, 14, rl.Yellow)
		y += 16
		for _, name := range []string{"update", "draw"} {
			rl.DrawText(fmt.Sprintf("%-16s %6s", name, data.FrameTimes[name].Round(time.Microsecond)), x, y, 12, rl.LightGray)
			y += 14
		}
	}
}
