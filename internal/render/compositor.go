package render

import (
	"chosenoffset.com/warren/internal/fog"
	"chosenoffset.com/warren/internal/gamestate"
	"chosenoffset.com/warren/internal/level"
	"chosenoffset.com/warren/internal/raycast"
)

// Compositor assembles a complete frame from its layers. Layers are drawn
// back to front in a fixed order: floor and ceiling, walls, sprites, the
// weapon overlay, the HUD strip, and finally the minimap on top.
type Compositor struct {
	screenWidth     int
	viewHeight      int
	hudHeight       int
	fov             float64
	maxViewDistance float64
	textures        *TextureSet
	fb              *Framebuffer
}

// NewCompositor builds a compositor for the given viewport geometry.
func NewCompositor(screenWidth, viewHeight, hudHeight int, fov, maxViewDistance float64, textures *TextureSet) *Compositor {
	return &Compositor{
		screenWidth:     screenWidth,
		viewHeight:      viewHeight,
		hudHeight:       hudHeight,
		fov:             fov,
		maxViewDistance: maxViewDistance,
		textures:        textures,
		fb:              NewFramebuffer(screenWidth, viewHeight+hudHeight),
	}
}

// Frame carries everything the compositor needs to draw one frame.
type Frame struct {
	Grid         *level.Grid
	Fog          *fog.Tracker
	Hits         []raycast.Hit
	Depth        []float64
	Sprites      []Billboard
	Markers      []MapMarker
	State        *gamestate.GameState
	PlayerX      float64
	PlayerY      float64
	Facing       float64
	HeightOffset float64
	WeaponFiring bool
}

// Render draws the frame into the internal framebuffer and returns it.
// The returned buffer is owned by the compositor and reused every frame.
func (c *Compositor) Render(f *Frame) *Framebuffer {
	c.drawFloorCeiling(c.fb, f.HeightOffset)
	c.drawWalls(c.fb, f.Hits, f.HeightOffset)
	c.drawSprites(c.fb, f.Sprites, f.PlayerX, f.PlayerY, f.Facing, f.HeightOffset, f.Depth)
	c.drawWeapon(c.fb, f.WeaponFiring, f.HeightOffset)
	c.drawHUD(c.fb, f.State)
	c.drawMinimap(c.fb, f.Grid, f.Fog, f.Markers, f.PlayerX, f.PlayerY, f.Facing)
	return c.fb
}

// Framebuffer exposes the compositor's buffer, mainly for tests.
func (c *Compositor) Framebuffer() *Framebuffer { return c.fb }
