// Package raycast implements the per-frame DDA grid traversal that produces
// the wall depth buffer the renderer composites from.
package raycast

import (
	"math"

	"chosenoffset.com/warren/internal/level"
)

// Face identifies which face of a wall cell a ray struck. North is the face
// on the -Y side of the cell (screen-up).
type Face uint8

const (
	FaceNorth Face = iota
	FaceSouth
	FaceEast
	FaceWest
)

// Vertical reports whether the face lies on a vertical grid line (east/west
// faces). The compositor darkens these to fake directional lighting.
func (f Face) Vertical() bool {
	return f == FaceEast || f == FaceWest
}

// Hit is the result of casting a single ray. Distances are world units.
type Hit struct {
	Distance float64    // Perpendicular (fisheye-corrected) distance
	RayDist  float64    // Euclidean distance along the ray
	CellX    int        // Hit cell grid coordinates
	CellY    int
	Face     Face       // Which face of the cell was struck
	Offset   float64    // Fractional position along the face, 0..1
	Kind     level.Cell // Wall kind of the hit cell
	Miss     bool       // True when the ray reached MaxDistance unobstructed
}

// Caster casts fans of rays against a grid. The zero value is not usable;
// construct with New.
type Caster struct {
	FOV         float64 // Field of view in radians
	MaxDistance float64 // Distance bound in world units; beyond it a ray is a miss
}

// New returns a caster with the given field of view and a distance bound.
func New(fov, maxDistance float64) *Caster {
	return &Caster{FOV: fov, MaxDistance: maxDistance}
}

// CastFan casts n rays evenly spread across the FOV centered on the facing
// angle and returns one hit per ray, left to right. The per-angle result is
// independent of n.
func (c *Caster) CastFan(g *level.Grid, px, py, facing float64, n int) []Hit {
	hits := make([]Hit, n)
	for i := 0; i < n; i++ {
		angle := facing - c.FOV/2 + c.FOV*(float64(i)+0.5)/float64(n)
		hits[i] = c.Cast(g, px, py, angle)
		// Fisheye correction: project the ray length onto the view axis.
		hits[i].Distance = hits[i].RayDist * math.Cos(angle-facing)
	}
	return hits
}

// Cast advances a single ray from the world position through the grid until
// it strikes a sight-blocking cell or exceeds MaxDistance. It is a pure
// function of the grid and the pose; Distance is left equal to RayDist and
// fisheye correction is applied by CastFan, which knows the view axis.
func (c *Caster) Cast(g *level.Grid, px, py, angle float64) Hit {
	// Work in cell units, scale back to world units at the end.
	posX := px / level.BlockSize
	posY := py / level.BlockSize
	rayDirX := math.Cos(angle)
	rayDirY := math.Sin(angle)

	mapX := int(posX)
	mapY := int(posY)

	// An axis-parallel ray divides by zero here, which in float arithmetic
	// yields +Inf and cleanly disables stepping on that axis.
	deltaDistX := math.Abs(1 / rayDirX)
	deltaDistY := math.Abs(1 / rayDirY)

	var sideDistX, sideDistY float64
	var stepX, stepY int

	if rayDirX < 0 {
		stepX = -1
		sideDistX = (posX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - posX) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (posY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - posY) * deltaDistY
	}

	maxDistCells := c.MaxDistance / level.BlockSize
	// A ray crossing the whole grid visits at most width+height cells; the
	// cap guards against malformed grids with holes in the border.
	maxSteps := g.Width() + g.Height()

	sideX := true
	for step := 0; step < maxSteps; step++ {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			sideX = true
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			sideX = false
		}

		var rayDist float64
		if sideX {
			rayDist = (float64(mapX) - posX + (1-float64(stepX))/2) / rayDirX
		} else {
			rayDist = (float64(mapY) - posY + (1-float64(stepY))/2) / rayDirY
		}
		if rayDist > maxDistCells {
			break
		}

		cell := g.At(mapX, mapY)
		if !cell.BlocksSight() {
			continue
		}

		hit := Hit{
			RayDist: rayDist * level.BlockSize,
			CellX:   mapX,
			CellY:   mapY,
			Kind:    cell,
		}
		hit.Distance = hit.RayDist

		var wallX float64
		if sideX {
			if stepX > 0 {
				hit.Face = FaceWest
			} else {
				hit.Face = FaceEast
			}
			wallX = posY + rayDist*rayDirY
		} else {
			if stepY > 0 {
				hit.Face = FaceNorth
			} else {
				hit.Face = FaceSouth
			}
			wallX = posX + rayDist*rayDirX
		}
		wallX -= math.Floor(wallX)

		// Flip the offset on two faces so textures read left-to-right when
		// looking at the wall instead of mirroring.
		if (sideX && rayDirX > 0) || (!sideX && rayDirY < 0) {
			wallX = 1 - wallX
		}
		hit.Offset = wallX
		return hit
	}

	return Hit{
		Distance: c.MaxDistance,
		RayDist:  c.MaxDistance,
		Miss:     true,
	}
}

// DepthBuffer extracts the per-ray perpendicular distances from a fan of
// hits. It is rebuilt every frame and consumed by sprite occlusion tests.
func DepthBuffer(hits []Hit) []float64 {
	depth := make([]float64, len(hits))
	for i, h := range hits {
		depth[i] = h.Distance
	}
	return depth
}

// LineOfSight walks the same DDA stepping from one world point toward
// another, terminating at the target cell rather than at MaxDistance. It
// reports whether no sight-blocking cell is crossed strictly before the
// target; the target cell itself may be a wall (a wall you can see).
func LineOfSight(g *level.Grid, x0, y0, x1, y1 float64) bool {
	tx, ty := level.WorldToCell(x1, y1)
	sx, sy := level.WorldToCell(x0, y0)
	if tx == sx && ty == sy {
		return true
	}

	posX := x0 / level.BlockSize
	posY := y0 / level.BlockSize
	dx := x1 - x0
	dy := y1 - y0
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return true
	}
	rayDirX := dx / dist
	rayDirY := dy / dist

	mapX, mapY := sx, sy
	deltaDistX := math.Abs(1 / rayDirX)
	deltaDistY := math.Abs(1 / rayDirY)

	var sideDistX, sideDistY float64
	var stepX, stepY int
	if rayDirX < 0 {
		stepX = -1
		sideDistX = (posX - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - posX) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (posY - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - posY) * deltaDistY
	}

	maxSteps := g.Width() + g.Height()
	for step := 0; step < maxSteps; step++ {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
		} else {
			sideDistY += deltaDistY
			mapY += stepY
		}
		if mapX == tx && mapY == ty {
			return true
		}
		if g.At(mapX, mapY).BlocksSight() {
			return false
		}
	}
	return false
}
