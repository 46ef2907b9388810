// Package render composites the per-frame pixel buffer: floor and ceiling,
// textured wall strips from the raycast pass, depth-sorted billboard
// sprites, the weapon overlay, the HUD strip, and the fog-aware minimap,
// in that fixed order.
package render

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Framebuffer is the RGBA pixel buffer one frame is composed into. The
// buffer is owned by the compositor and blitted to the screen by the shell.
type Framebuffer struct {
	img    *image.RGBA
	width  int
	height int
}

// NewFramebuffer allocates a buffer of the given size.
func NewFramebuffer(width, height int) *Framebuffer {
	return &Framebuffer{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
	}
}

// Width returns the buffer width in pixels.
func (fb *Framebuffer) Width() int { return fb.width }

// Height returns the buffer height in pixels.
func (fb *Framebuffer) Height() int { return fb.height }

// Pix exposes the raw RGBA bytes for blitting to the display surface.
func (fb *Framebuffer) Pix() []byte { return fb.img.Pix }

// Set writes one pixel. Out-of-bounds writes are dropped.
func (fb *Framebuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return
	}
	i := fb.img.PixOffset(x, y)
	fb.img.Pix[i] = c.R
	fb.img.Pix[i+1] = c.G
	fb.img.Pix[i+2] = c.B
	fb.img.Pix[i+3] = c.A
}

// FillRect fills an axis-aligned rectangle, clipped to the buffer.
func (fb *Framebuffer) FillRect(x0, y0, x1, y1 int, c color.RGBA) {
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 > fb.width {
		x1 = fb.width
	}
	if y1 > fb.height {
		y1 = fb.height
	}
	for y := y0; y < y1; y++ {
		i := fb.img.PixOffset(x0, y)
		for x := x0; x < x1; x++ {
			fb.img.Pix[i] = c.R
			fb.img.Pix[i+1] = c.G
			fb.img.Pix[i+2] = c.B
			fb.img.Pix[i+3] = c.A
			i += 4
		}
	}
}

// Line draws a one-pixel line with integer Bresenham stepping.
func (fb *Framebuffer) Line(x0, y0, x1, y1 int, c color.RGBA) {
	dx := absInt(x1 - x0)
	dy := -absInt(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		fb.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawImage alpha-blits a texture at a position, skipping transparent
// pixels.
func (fb *Framebuffer) DrawImage(src *image.RGBA, x0, y0 int) {
	b := src.Bounds()
	for y := 0; y < b.Dy(); y++ {
		for x := 0; x < b.Dx(); x++ {
			i := src.PixOffset(b.Min.X+x, b.Min.Y+y)
			a := src.Pix[i+3]
			if a < alphaThreshold {
				continue
			}
			fb.Set(x0+x, y0+y, color.RGBA{src.Pix[i], src.Pix[i+1], src.Pix[i+2], 255})
		}
	}
}

// At returns the pixel at a position; used by the compositing tests.
func (fb *Framebuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.width || y >= fb.height {
		return color.RGBA{}
	}
	i := fb.img.PixOffset(x, y)
	return color.RGBA{
		R: fb.img.Pix[i],
		G: fb.img.Pix[i+1],
		B: fb.img.Pix[i+2],
		A: fb.img.Pix[i+3],
	}
}

// ExportPNG writes the current frame to a PNG file.
func (fb *Framebuffer) ExportPNG(path string) error {
	return gg.SavePNG(path, fb.img)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
