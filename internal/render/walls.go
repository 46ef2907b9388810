package render

import (
	"image/color"

	"chosenoffset.com/warren/internal/level"
	"chosenoffset.com/warren/internal/raycast"
)

var (
	ceilingColor = color.RGBA{58, 56, 62, 255}
	floorColor   = color.RGBA{82, 76, 70, 255}
)

// faceShade darkens east/west wall faces to fake a directional light, the
// classic light/dark alternation between axis orientations.
const faceShade = 0.62

// drawFloorCeiling fills the viewport halves around the (bobbing) horizon.
func (c *Compositor) drawFloorCeiling(fb *Framebuffer, heightOffset float64) {
	horizon := c.viewHeight/2 + int(heightOffset)
	if horizon < 0 {
		horizon = 0
	}
	if horizon > c.viewHeight {
		horizon = c.viewHeight
	}
	fb.FillRect(0, 0, c.screenWidth, horizon, ceilingColor)
	fb.FillRect(0, horizon, c.screenWidth, c.viewHeight, floorColor)
}

// drawWalls renders one textured vertical strip per ray. Strip height is
// inversely proportional to the perpendicular distance; misses draw
// nothing, leaving floor and ceiling running to the horizon.
func (c *Compositor) drawWalls(fb *Framebuffer, hits []raycast.Hit, heightOffset float64) {
	if len(hits) == 0 {
		return
	}
	stripWidth := float64(c.screenWidth) / float64(len(hits))
	horizon := float64(c.viewHeight)/2 + heightOffset

	for i, hit := range hits {
		if hit.Miss || hit.Distance < 0.1 {
			continue
		}

		wallHeight := float64(c.viewHeight) * level.BlockSize / hit.Distance
		top := horizon - wallHeight/2
		bottom := horizon + wallHeight/2

		drawStart := int(top)
		if drawStart < 0 {
			drawStart = 0
		}
		drawEnd := int(bottom)
		if drawEnd > c.viewHeight {
			drawEnd = c.viewHeight
		}

		tex := c.textures.Walls[hit.Kind]
		if tex == nil {
			tex = c.textures.Walls[level.Wall1]
		}
		texX := int(hit.Offset * TexSize)
		if texX < 0 {
			texX = 0
		}
		if texX >= TexSize {
			texX = TexSize - 1
		}

		shade := c.distanceShade(hit.Distance)
		if hit.Face.Vertical() {
			shade *= faceShade
		}

		stripStart := int(float64(i) * stripWidth)
		stripEnd := int(float64(i+1) * stripWidth)
		if stripEnd <= stripStart {
			stripEnd = stripStart + 1
		}

		for y := drawStart; y < drawEnd; y++ {
			texY := int((float64(y) - top) * TexSize / wallHeight)
			if texY < 0 {
				texY = 0
			}
			if texY >= TexSize {
				texY = TexSize - 1
			}
			pi := tex.PixOffset(texX, texY)
			col := color.RGBA{
				R: clampByte(float64(tex.Pix[pi]) * shade),
				G: clampByte(float64(tex.Pix[pi+1]) * shade),
				B: clampByte(float64(tex.Pix[pi+2]) * shade),
				A: 255,
			}
			for x := stripStart; x < stripEnd; x++ {
				fb.Set(x, y, col)
			}
		}
	}
}

// distanceShade fades walls toward black as they approach the view
// distance bound.
func (c *Compositor) distanceShade(dist float64) float64 {
	f := 1 - dist/c.maxViewDistance*0.85
	if f < 0.15 {
		f = 0.15
	}
	return f
}
