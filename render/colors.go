package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground        = tcell.NewRGBColor(10, 12, 24)    // Deep space
	RgbBackgroundPattern = tcell.NewRGBColor(40, 48, 80)    // Dim scanlines
	RgbPlayer            = tcell.NewRGBColor(120, 220, 255) // Cyan ship
	RgbEnemy             = tcell.NewRGBColor(255, 90, 90)   // Hostile red
	RgbEnemyFire         = tcell.NewRGBColor(255, 165, 0)   // Orange
	RgbPlayerFire        = tcell.NewRGBColor(255, 255, 120) // Pale yellow
	RgbPowerUpHeal       = tcell.NewRGBColor(80, 255, 120)  // Medkit green
	RgbPowerUpWeapon     = tcell.NewRGBColor(200, 120, 255) // Violet crate

	RgbHUD       = tcell.NewRGBColor(220, 220, 220) // Light gray
	RgbHUDBg     = tcell.NewRGBColor(26, 27, 38)    // Status bar background
	RgbLife      = tcell.NewRGBColor(255, 60, 90)   // Heart red
	RgbLifeLost  = tcell.NewRGBColor(90, 40, 50)    // Spent heart
	RgbHeatCool  = tcell.NewRGBColor(0, 200, 0)     // Ready
	RgbHeatHot   = tcell.NewRGBColor(255, 60, 0)    // Overheated
	RgbCharge    = tcell.NewRGBColor(100, 150, 255) // Charge meter
	RgbTrackBox  = tcell.NewRGBColor(135, 206, 250) // Track info frame
	RgbGameOver  = tcell.NewRGBColor(255, 0, 0)     // Final banner
	RgbStageDone = tcell.NewRGBColor(144, 238, 144) // Stage cleared banner
)

// Styles
var (
	styleBackground = tcell.StyleDefault.Background(RgbBackground)
	styleHUD        = tcell.StyleDefault.Foreground(RgbHUD).Background(RgbHUDBg)
)

// heatColor blends from hot to cool as ratio goes from 0 to 1
func heatColor(ratio float64) tcell.Color {
	ratio = min(max(ratio, 0), 1)
	hr, hg, hb := RgbHeatHot.RGB()
	cr, cg, cb := RgbHeatCool.RGB()
	lerp := func(a, b int32) int32 { return a + int32(float64(b-a)*ratio) }
	return tcell.NewRGBColor(lerp(hr, cr), lerp(hg, cg), lerp(hb, cb))
}
