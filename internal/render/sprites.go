package render

import (
	"image"
	"image/color"
	"math"
	"sort"

	"chosenoffset.com/warren/internal/level"
)

// Billboard is the render view of one sprite: a world position, the texture
// to draw, and an optional red tint for damage flashes.
type Billboard struct {
	X, Y    float64
	Texture *image.RGBA
	Scale   float64
	Flash   bool
}

// projection is a billboard transformed into camera space.
type projection struct {
	billboard *Billboard
	screenX   float64
	depth     float64 // Distance along the view axis, world units
	size      float64 // On-screen width and height in pixels
}

// drawSprites projects billboards into camera space, sorts them far to
// near, and draws each as a camera-facing quad. Each column is tested
// against the wall depth buffer so walls occlude sprites correctly, and
// the painter order lets near sprites overdraw far ones.
func (c *Compositor) drawSprites(fb *Framebuffer, sprites []Billboard, px, py, facing, heightOffset float64, depth []float64) {
	if len(sprites) == 0 || len(depth) == 0 {
		return
	}

	dirX := math.Cos(facing)
	dirY := math.Sin(facing)
	// Camera plane sized to the FOV so sprite and wall projections agree.
	planeScale := math.Tan(c.fov / 2)
	planeX := -dirY * planeScale
	planeY := dirX * planeScale

	invDet := 1 / (planeX*dirY - dirX*planeY)

	projections := make([]projection, 0, len(sprites))
	for i := range sprites {
		s := &sprites[i]
		relX := s.X - px
		relY := s.Y - py

		transX := invDet * (dirY*relX - dirX*relY)
		transY := invDet * (-planeY*relX + planeX*relY)

		// Behind or on top of the camera.
		if transY <= level.BlockSize/8 {
			continue
		}

		screenX := float64(c.screenWidth) / 2 * (1 + transX/transY)
		size := float64(c.viewHeight) * level.BlockSize / transY * s.Scale
		if screenX+size/2 < 0 || screenX-size/2 > float64(c.screenWidth) {
			continue
		}

		projections = append(projections, projection{
			billboard: s,
			screenX:   screenX,
			depth:     transY,
			size:      size,
		})
	}

	sort.Slice(projections, func(i, j int) bool {
		return projections[i].depth > projections[j].depth
	})

	for i := range projections {
		c.drawProjection(fb, &projections[i], heightOffset, depth)
	}
}

func (c *Compositor) drawProjection(fb *Framebuffer, p *projection, heightOffset float64, depth []float64) {
	tex := p.billboard.Texture
	if tex == nil {
		return
	}
	texW := tex.Bounds().Dx()
	texH := tex.Bounds().Dy()

	horizon := float64(c.viewHeight)/2 + heightOffset
	// Anchor sprites to the floor line of a full wall at this depth rather
	// than centering them, so scaled-down sprites stand on the ground.
	fullHeight := float64(c.viewHeight) * level.BlockSize / p.depth
	bottom := horizon + fullHeight/2
	top := bottom - p.size
	left := p.screenX - p.size/2

	startX := int(left)
	endX := int(left + p.size)
	startY := int(top)
	endY := int(bottom)
	if startX < 0 {
		startX = 0
	}
	if endX > c.screenWidth {
		endX = c.screenWidth
	}
	if startY < 0 {
		startY = 0
	}
	if endY > c.viewHeight {
		endY = c.viewHeight
	}

	for x := startX; x < endX; x++ {
		ray := x * len(depth) / c.screenWidth
		if ray >= len(depth) {
			ray = len(depth) - 1
		}
		// Wall occlusion test per affected column.
		if p.depth >= depth[ray] {
			continue
		}

		texX := int((float64(x) - left) * float64(texW) / p.size)
		if texX < 0 || texX >= texW {
			continue
		}

		for y := startY; y < endY; y++ {
			texY := int((float64(y) - top) * float64(texH) / p.size)
			if texY < 0 || texY >= texH {
				continue
			}
			pi := tex.PixOffset(texX, texY)
			if tex.Pix[pi+3] < alphaThreshold {
				continue
			}
			col := color.RGBA{tex.Pix[pi], tex.Pix[pi+1], tex.Pix[pi+2], 255}
			if p.billboard.Flash {
				col.R = 255
				col.G /= 2
				col.B /= 2
			}
			fb.Set(x, y, col)
		}
	}
}
