package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/aquilax/go-perlin"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"chosenoffset.com/warren/internal/gamestate"
	"chosenoffset.com/warren/internal/level"
)

// TexSize is the side length of all world textures in pixels.
const TexSize = 64

// alphaThreshold is the cutoff below which a texture pixel is treated as
// fully transparent when blitting sprites.
const alphaThreshold = 128

// enemyFrameCount covers the walk (4), attack (3), and death (3) tracks.
const enemyFrameCount = 10

// TextureSet holds every generated texture the compositor samples from.
// All art is synthesized at startup: noise-grained wall tiles plus drawn
// sprite and weapon frames.
type TextureSet struct {
	Walls       map[level.Cell]*image.RGBA
	EnemyFrames []*image.RGBA
	Pickups     map[gamestate.PickupKind]*image.RGBA
	Decorations []*image.RGBA
	WeaponIdle  *image.RGBA
	WeaponFire  *image.RGBA
}

// wallPalette maps wall kinds to their base colors.
var wallPalette = map[level.Cell]color.RGBA{
	level.Wall1:      {150, 60, 50, 255},  // Worn brick
	level.Wall2:      {70, 110, 75, 255},  // Mossy stone
	level.Wall3:      {80, 90, 120, 255},  // Slate panel
	level.Wall4:      {140, 125, 70, 255}, // Sandstone
	level.DoorClosed: {110, 80, 45, 255},  // Timber door
}

// GenerateTextures synthesizes the full texture set. Deterministic for a
// fixed seed so a reloaded level looks identical.
func GenerateTextures(seed int64) *TextureSet {
	noise := perlin.NewPerlin(2, 2, 3, seed)

	ts := &TextureSet{
		Walls:   make(map[level.Cell]*image.RGBA, len(wallPalette)),
		Pickups: make(map[gamestate.PickupKind]*image.RGBA, 4),
	}

	for kind, base := range wallPalette {
		ts.Walls[kind] = wallTexture(noise, base, kind)
	}

	ts.EnemyFrames = make([]*image.RGBA, enemyFrameCount)
	for i := range ts.EnemyFrames {
		ts.EnemyFrames[i] = enemyFrame(i)
	}

	ts.Pickups[gamestate.PickupHealth] = pickupTexture(gamestate.PickupHealth)
	ts.Pickups[gamestate.PickupAmmo] = pickupTexture(gamestate.PickupAmmo)
	ts.Pickups[gamestate.PickupKey] = pickupTexture(gamestate.PickupKey)
	ts.Pickups[gamestate.PickupTreasure] = pickupTexture(gamestate.PickupTreasure)

	ts.Decorations = make([]*image.RGBA, 4)
	for i := range ts.Decorations {
		ts.Decorations[i] = decorationTexture(i)
	}

	ts.WeaponIdle = weaponTexture(false)
	ts.WeaponFire = weaponTexture(true)

	return ts
}

// wallTexture builds a TexSize square tile: the base color modulated by
// perlin grain, with a mortar-line pattern for brick-like kinds and plank
// lines for doors.
func wallTexture(noise *perlin.Perlin, base color.RGBA, kind level.Cell) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, TexSize, TexSize))
	// Offset each kind into a different region of the noise field so tiles
	// do not share grain.
	off := float64(kind) * 17.3

	for y := 0; y < TexSize; y++ {
		for x := 0; x < TexSize; x++ {
			n := noise.Noise2D(float64(x)/9+off, float64(y)/9+off) // -1..1
			f := 1 + 0.25*n
			c := scaleColor(base, f)

			switch kind {
			case level.Wall1, level.Wall4:
				// Brick courses: darken mortar lines.
				if y%16 == 0 || (x+8*((y/16)%2))%32 == 0 {
					c = scaleColor(c, 0.55)
				}
			case level.DoorClosed:
				// Vertical planks with a cross brace.
				if x%13 == 0 || y == TexSize/2 || y == TexSize/2+1 {
					c = scaleColor(c, 0.5)
				}
			case level.Wall3:
				if y%22 == 0 {
					c = scaleColor(c, 0.6)
				}
			}

			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// enemyFrame draws one frame of the rat sheet: frames 0-3 walk, 4-6 attack,
// 7-9 death.
func enemyFrame(frame int) *image.RGBA {
	dc := gg.NewContext(TexSize, TexSize)

	cx := float64(TexSize) / 2
	body := color.RGBA{120, 95, 80, 255}
	belly := color.RGBA{90, 70, 60, 255}
	eye := color.RGBA{220, 40, 40, 255}

	switch {
	case frame >= 7: // Death: body flattens to the floor frame by frame.
		squash := float64(frame-6) * 6
		dc.SetColor(body)
		dc.DrawEllipse(cx, 52, 22, 12-squash/3)
		dc.Fill()
	case frame >= 4: // Attack: lunge forward, mouth open.
		lunge := float64(frame-4) * 3
		dc.SetColor(body)
		dc.DrawEllipse(cx, 40-lunge, 18, 16)
		dc.Fill()
		dc.SetColor(belly)
		dc.DrawEllipse(cx, 46-lunge, 13, 9)
		dc.Fill()
		dc.SetColor(eye)
		dc.DrawCircle(cx-6, 34-lunge, 2.5)
		dc.DrawCircle(cx+6, 34-lunge, 2.5)
		dc.Fill()
		dc.SetColor(color.RGBA{40, 20, 20, 255})
		dc.DrawEllipse(cx, 44-lunge, 5, 4) // open mouth
		dc.Fill()
	default: // Walk: legs alternate with the frame index.
		legOff := float64(frame%2)*4 - 2
		dc.SetColor(body)
		dc.DrawEllipse(cx, 40, 16, 14)
		dc.Fill()
		dc.SetColor(belly)
		dc.DrawEllipse(cx, 45, 11, 8)
		dc.Fill()
		// Ears
		dc.SetColor(body)
		dc.DrawCircle(cx-9, 28, 5)
		dc.DrawCircle(cx+9, 28, 5)
		dc.Fill()
		dc.SetColor(eye)
		dc.DrawCircle(cx-5, 35, 2)
		dc.DrawCircle(cx+5, 35, 2)
		dc.Fill()
		// Feet
		dc.SetColor(belly)
		dc.DrawEllipse(cx-10, 54+legOff, 4, 3)
		dc.DrawEllipse(cx+10, 54-legOff, 4, 3)
		dc.Fill()
	}

	return toRGBA(dc.Image())
}

func pickupTexture(kind gamestate.PickupKind) *image.RGBA {
	dc := gg.NewContext(TexSize, TexSize)
	cx, cy := float64(TexSize)/2, float64(TexSize)*0.7

	switch kind {
	case gamestate.PickupHealth:
		dc.SetColor(color.RGBA{235, 235, 235, 255})
		dc.DrawCircle(cx, cy, 13)
		dc.Fill()
		dc.SetColor(color.RGBA{200, 30, 30, 255})
		dc.DrawRectangle(cx-3, cy-9, 6, 18)
		dc.DrawRectangle(cx-9, cy-3, 18, 6)
		dc.Fill()
	case gamestate.PickupAmmo:
		dc.SetColor(color.RGBA{70, 90, 50, 255})
		dc.DrawRectangle(cx-12, cy-8, 24, 16)
		dc.Fill()
		dc.SetColor(color.RGBA{210, 180, 60, 255})
		for i := 0; i < 3; i++ {
			dc.DrawRectangle(cx-9+float64(i)*7, cy-14, 4, 8)
		}
		dc.Fill()
	case gamestate.PickupKey:
		dc.SetColor(color.RGBA{230, 190, 60, 255})
		dc.DrawCircle(cx-6, cy-4, 6)
		dc.Stroke()
		dc.SetLineWidth(4)
		dc.DrawLine(cx-1, cy+1, cx+12, cy+12)
		dc.Stroke()
		dc.DrawLine(cx+8, cy+12, cx+12, cy+8)
		dc.Stroke()
	case gamestate.PickupTreasure:
		dc.SetColor(color.RGBA{120, 80, 40, 255})
		dc.DrawRectangle(cx-14, cy-10, 28, 18)
		dc.Fill()
		dc.SetColor(color.RGBA{240, 200, 70, 255})
		dc.DrawRectangle(cx-14, cy-4, 28, 4)
		dc.DrawCircle(cx, cy-2, 3)
		dc.Fill()
	}

	return toRGBA(dc.Image())
}

func decorationTexture(variant int) *image.RGBA {
	dc := gg.NewContext(TexSize, TexSize)
	cx := float64(TexSize) / 2

	switch variant {
	case 0: // Pillar
		dc.SetColor(color.RGBA{130, 130, 140, 255})
		dc.DrawRectangle(cx-7, 8, 14, 52)
		dc.Fill()
		dc.SetColor(color.RGBA{100, 100, 110, 255})
		dc.DrawRectangle(cx-10, 4, 20, 6)
		dc.DrawRectangle(cx-10, 58, 20, 6)
		dc.Fill()
	case 1: // Barrel
		dc.SetColor(color.RGBA{125, 85, 50, 255})
		dc.DrawEllipse(cx, 44, 14, 18)
		dc.Fill()
		dc.SetColor(color.RGBA{80, 55, 35, 255})
		dc.DrawRectangle(cx-14, 38, 28, 3)
		dc.DrawRectangle(cx-14, 50, 28, 3)
		dc.Fill()
	case 2: // Hanging lamp
		dc.SetColor(color.RGBA{90, 90, 95, 255})
		dc.DrawRectangle(cx-1, 0, 2, 22)
		dc.Fill()
		dc.SetColor(color.RGBA{250, 220, 130, 255})
		dc.DrawCircle(cx, 28, 7)
		dc.Fill()
	default: // Bone pile
		dc.SetColor(color.RGBA{215, 210, 190, 255})
		dc.DrawEllipse(cx-6, 54, 9, 4)
		dc.DrawEllipse(cx+7, 52, 7, 4)
		dc.DrawCircle(cx+2, 46, 5)
		dc.Fill()
	}

	return toRGBA(dc.Image())
}

// weaponTexture draws the first-person weapon overlay at double resolution
// and downsamples it for a softer silhouette.
func weaponTexture(firing bool) *image.RGBA {
	const w, h = 512, 384
	dc := gg.NewContext(w, h)

	// Barrel
	dc.SetColor(color.RGBA{55, 55, 60, 255})
	dc.DrawRectangle(226, 60, 60, 220)
	dc.Fill()
	dc.SetColor(color.RGBA{80, 80, 88, 255})
	dc.DrawRectangle(238, 60, 16, 220)
	dc.Fill()
	// Body and grip
	dc.SetColor(color.RGBA{70, 55, 40, 255})
	dc.DrawRectangle(200, 270, 112, 70)
	dc.Fill()
	dc.SetColor(color.RGBA{50, 40, 30, 255})
	dc.DrawRectangle(216, 330, 80, 54)
	dc.Fill()

	if firing {
		dc.SetColor(color.RGBA{255, 230, 120, 230})
		dc.DrawCircle(256, 44, 40)
		dc.Fill()
		dc.SetColor(color.RGBA{255, 160, 40, 200})
		dc.DrawCircle(256, 44, 24)
		dc.Fill()
	}

	scaled := imaging.Resize(dc.Image(), w/2, h/2, imaging.Lanczos)
	return toRGBA(scaled)
}

func scaleColor(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: clampByte(float64(c.R) * f),
		G: clampByte(float64(c.G) * f),
		B: clampByte(float64(c.B) * f),
		A: c.A,
	}
}

func clampByte(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
