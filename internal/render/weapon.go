package render

import "math"

// drawWeapon draws the first-person weapon overlay at the bottom center of
// the viewport, swapping in the muzzle-flash frame while firing. The
// overlay ignores the depth buffer: it is always in front of the world.
func (c *Compositor) drawWeapon(fb *Framebuffer, firing bool, heightOffset float64) {
	tex := c.textures.WeaponIdle
	if firing {
		tex = c.textures.WeaponFire
	}
	if tex == nil {
		return
	}

	w := tex.Bounds().Dx()
	h := tex.Bounds().Dy()
	x := (c.screenWidth - w) / 2
	// Counter-sway against the view bob so the weapon feels carried.
	y := c.viewHeight - h + 24 + int(math.Abs(heightOffset)/2)

	fb.DrawImage(tex, x, y)
}
