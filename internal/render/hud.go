package render

import (
	"image/color"

	"chosenoffset.com/warren/internal/gamestate"
)

var (
	hudBackground = color.RGBA{24, 24, 28, 255}
	hudBorder     = color.RGBA{90, 90, 100, 255}
	healthGood    = color.RGBA{60, 190, 70, 255}
	healthBad     = color.RGBA{200, 50, 40, 255}
	ammoBarColor  = color.RGBA{210, 180, 60, 255}
	barBackdrop   = color.RGBA{50, 50, 56, 255}
)

// drawHUD fills the reserved strip below the viewport with the health and
// ammo bars plus inventory icons. Text labels are overlaid by the shell;
// the core only does pixel work here.
func (c *Compositor) drawHUD(fb *Framebuffer, gs *gamestate.GameState) {
	top := c.viewHeight
	fb.FillRect(0, top, c.screenWidth, top+c.hudHeight, hudBackground)
	fb.FillRect(0, top, c.screenWidth, top+2, hudBorder)

	barY := top + c.hudHeight/2 - 8
	barH := 16

	// Health bar
	barX := 40
	barW := c.screenWidth / 5
	fb.FillRect(barX, barY, barX+barW, barY+barH, barBackdrop)
	if gs.MaxHealth > 0 {
		frac := float64(gs.Health) / float64(gs.MaxHealth)
		col := healthGood
		if frac < 0.3 {
			col = healthBad
		}
		fb.FillRect(barX, barY, barX+int(float64(barW)*frac), barY+barH, col)
	}

	// Ammo bar, capped display at 200 rounds.
	ammoX := barX + barW + 60
	ammoW := c.screenWidth / 6
	fb.FillRect(ammoX, barY, ammoX+ammoW, barY+barH, barBackdrop)
	ammoFrac := float64(gs.Ammo) / 200
	if ammoFrac > 1 {
		ammoFrac = 1
	}
	fb.FillRect(ammoX, barY, ammoX+int(float64(ammoW)*ammoFrac), barY+barH, ammoBarColor)

	// Inventory icons: one small square per key and treasure.
	iconX := ammoX + ammoW + 60
	for i := 0; i < gs.Keys; i++ {
		fb.FillRect(iconX, barY, iconX+12, barY+barH, color.RGBA{230, 190, 60, 255})
		iconX += 18
	}
	for i := 0; i < gs.Treasure; i++ {
		fb.FillRect(iconX, barY+4, iconX+10, barY+barH-4, color.RGBA{240, 150, 40, 255})
		iconX += 16
	}
}
