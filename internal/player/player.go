// Package player holds the player's pose and applies movement commands
// against the level grid.
package player

import (
	"math"

	"chosenoffset.com/warren/internal/level"
)

// Default movement tuning, overridable through the engine config.
const (
	DefaultMoveSpeed = 7.0
	DefaultRotSpeed  = math.Pi / 33
	bobAmplitude     = 6.0
	bobFrequency     = 0.35
)

// Pose is the player's continuous position, facing angle, and view height
// offset (walk bob).
type Pose struct {
	X, Y         float64
	Angle        float64
	HeightOffset float64
}

// Player mutates a Pose from movement commands, collision-checked against
// the grid.
type Player struct {
	Pose
	MoveSpeed float64
	RotSpeed  float64

	bobPhase float64
}

// New places a player at a world position facing the given angle.
func New(x, y, angle float64) *Player {
	return &Player{
		Pose:      Pose{X: x, Y: y, Angle: angle},
		MoveSpeed: DefaultMoveSpeed,
		RotSpeed:  DefaultRotSpeed,
	}
}

// Apply executes one frame's worth of commands against the grid.
func (p *Player) Apply(cmds []Command, g *level.Grid) {
	moved := false
	for _, cmd := range cmds {
		dirX := math.Cos(p.Angle)
		dirY := math.Sin(p.Angle)

		switch cmd {
		case Forward:
			moved = p.tryMove(g, dirX*p.MoveSpeed, dirY*p.MoveSpeed) || moved
		case Backward:
			moved = p.tryMove(g, -dirX*p.MoveSpeed, -dirY*p.MoveSpeed) || moved
		case StrafeLeft:
			moved = p.tryMove(g, dirY*p.MoveSpeed, -dirX*p.MoveSpeed) || moved
		case StrafeRight:
			moved = p.tryMove(g, -dirY*p.MoveSpeed, dirX*p.MoveSpeed) || moved
		case RotateLeft:
			p.Angle -= p.RotSpeed
		case RotateRight:
			p.Angle += p.RotSpeed
		}
	}

	if moved {
		p.bobPhase += bobFrequency
	}
	p.HeightOffset = math.Sin(p.bobPhase) * bobAmplitude
}

// tryMove attempts a displacement, sliding along whichever axis is free
// when the combined move is blocked. Walking into a closed door opens it
// instead of moving. Returns whether the position changed.
func (p *Player) tryMove(g *level.Grid, dx, dy float64) bool {
	nx := p.X + dx
	ny := p.Y + dy

	p.openDoorAt(g, nx, ny)

	switch {
	case g.WalkableAt(nx, ny):
		p.X, p.Y = nx, ny
		return true
	case g.WalkableAt(nx, p.Y):
		p.X = nx
		return true
	case g.WalkableAt(p.X, ny):
		p.Y = ny
		return true
	}
	return false
}

func (p *Player) openDoorAt(g *level.Grid, wx, wy float64) {
	cx, cy := level.WorldToCell(wx, wy)
	g.OpenDoor(cx, cy)
}

// ClampToFloor snaps a pose that ended up inside a non-walkable cell (for
// example pushed there by outside code) to the center of the nearest
// walkable cell. A valid pose is returned unchanged.
func (p *Player) ClampToFloor(g *level.Grid) {
	if g.WalkableAt(p.X, p.Y) {
		return
	}

	px, py := level.WorldToCell(p.X, p.Y)
	bestDist := math.MaxFloat64
	found := false
	var bx, by float64

	// Search outward in growing rings; the first ring with a walkable cell
	// contains the nearest one.
	maxR := g.Width() + g.Height()
	for r := 1; r <= maxR && !found; r++ {
		for dy := -r; dy <= r; dy++ {
			for dx := -r; dx <= r; dx++ {
				if absInt(dx) != r && absInt(dy) != r {
					continue
				}
				if !g.At(px+dx, py+dy).Walkable() {
					continue
				}
				cx, cy := level.CellCenter(px+dx, py+dy)
				d := math.Hypot(cx-p.X, cy-p.Y)
				if d < bestDist {
					bestDist = d
					bx, by = cx, cy
					found = true
				}
			}
		}
	}

	if found {
		p.X, p.Y = bx, by
	}
}

// CellPosition returns the grid cell the player currently occupies.
func (p *Player) CellPosition() (int, int) {
	return level.WorldToCell(p.X, p.Y)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
