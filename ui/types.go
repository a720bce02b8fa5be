// Package ui draws the heads-up display and debug panels on top of the arena.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling constants.
type Theme struct {
	PanelBg        rl.Color
	PanelBorder    rl.Color
	SectionHeader  rl.Color
	LabelColor     rl.Color
	ValueColor     rl.Color
	KeyColor       rl.Color
	ToggleOff      rl.Color
	ToggleOn       rl.Color
	Padding        int32
	LineHeight     int32
	LabelWidth     int32
	BarHeight      int32
	FontSize       int32
	HeaderFontSize int32
}

// DefaultTheme returns the default UI theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBg:        rl.Color{R: 20, G: 25, B: 30, A: 240},
		PanelBorder:    rl.Color{R: 60, G: 70, B: 80, A: 255},
		SectionHeader:  rl.Yellow,
		LabelColor:     rl.LightGray,
		ValueColor:     rl.LightGray,
		KeyColor:       rl.Color{R: 150, G: 150, B: 150, A: 255},
		ToggleOff:      rl.Color{R: 80, G: 80, B: 80, A: 255},
		ToggleOn:       rl.Color{R: 100, G: 200, B: 100, A: 255},
		Padding:        10,
		LineHeight:     16,
		LabelWidth:     60,
		BarHeight:      12,
		FontSize:       12,
		HeaderFontSize: 14,
	}
}

// ShipColors is the palette indexed by a ship's color index.
var ShipColors = []rl.Color{
	{R: 230, G: 70, B: 70, A: 255},
	{R: 80, G: 140, B: 240, A: 255},
	{R: 110, G: 210, B: 110, A: 255},
	{R: 240, G: 200, B: 80, A: 255},
}

// ShipColor returns the palette color for index, wrapping around.
func ShipColor(index uint8) rl.Color {
	return ShipColors[int(index)%len(ShipColors)]
}
