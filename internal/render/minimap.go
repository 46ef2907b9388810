package render

import (
	"image/color"
	"math"

	"chosenoffset.com/warren/internal/fog"
	"chosenoffset.com/warren/internal/level"
)

const (
	minimapCell   = 6
	minimapMargin = 12
)

var (
	mapWallVisible  = color.RGBA{190, 190, 200, 255}
	mapWallExplored = color.RGBA{95, 95, 105, 255}
	mapFloorVisible = color.RGBA{120, 115, 105, 255}
	mapFloorDim     = color.RGBA{60, 58, 54, 255}
	mapDoorColor    = color.RGBA{150, 105, 55, 255}
	mapExitColor    = color.RGBA{70, 200, 90, 255}
	mapPlayerColor  = color.RGBA{255, 240, 90, 255}
	mapEnemyColor   = color.RGBA{230, 60, 50, 255}
	mapPickupColor  = color.RGBA{240, 170, 40, 255}
)

// MapMarker is a world-position dot for the minimap (enemy or pickup).
type MapMarker struct {
	X, Y  float64
	Enemy bool
}

// drawMinimap renders the fog-of-war map in the top-right corner of the
// viewport. Currently visible cells are bright, explored-but-unseen cells
// dimmed, never-seen cells are simply not drawn. Markers only show when
// their cell is currently visible.
func (c *Compositor) drawMinimap(fb *Framebuffer, g *level.Grid, f *fog.Tracker, markers []MapMarker, px, py, facing float64) {
	originX := c.screenWidth - g.Width()*minimapCell - minimapMargin
	originY := minimapMargin

	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			state := f.At(x, y)
			if state == fog.Unseen {
				continue
			}
			visible := state == fog.Visible

			var col color.RGBA
			switch cell := g.At(x, y); {
			case cell == level.Exit:
				col = mapExitColor
				if !visible {
					col = scaleColor(col, 0.5)
				}
			case cell == level.DoorClosed || cell == level.DoorOpen:
				col = mapDoorColor
				if !visible {
					col = scaleColor(col, 0.5)
				}
			case cell.IsWall():
				col = mapWallExplored
				if visible {
					col = mapWallVisible
				}
			default:
				col = mapFloorDim
				if visible {
					col = mapFloorVisible
				}
			}

			cx := originX + x*minimapCell
			cy := originY + y*minimapCell
			fb.FillRect(cx, cy, cx+minimapCell, cy+minimapCell, col)
		}
	}

	for _, m := range markers {
		gx, gy := level.WorldToCell(m.X, m.Y)
		if f.At(gx, gy) != fog.Visible {
			continue
		}
		col := mapPickupColor
		if m.Enemy {
			col = mapEnemyColor
		}
		mx := originX + gx*minimapCell + 1
		my := originY + gy*minimapCell + 1
		fb.FillRect(mx, my, mx+minimapCell-2, my+minimapCell-2, col)
	}

	// Player dot plus facing tick.
	pxPix := originX + int(px/level.BlockSize*minimapCell)
	pyPix := originY + int(py/level.BlockSize*minimapCell)
	fb.FillRect(pxPix-2, pyPix-2, pxPix+2, pyPix+2, mapPlayerColor)
	fb.Line(pxPix, pyPix,
		pxPix+int(math.Cos(facing)*2.5*minimapCell),
		pyPix+int(math.Sin(facing)*2.5*minimapCell),
		mapPlayerColor)
}
